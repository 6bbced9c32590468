//go:build whisper_cpp

package engine

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"runtime"
	"strconv"
	"strings"
	"sync"
	"time"

	whisperpkg "github.com/ggerganov/whisper.cpp/bindings/go/pkg/whisper"
	"github.com/rs/zerolog/log"

	"github.com/verbatik/speechkit/native"
	"github.com/verbatik/speechkit/speech"
)

// whisperEngine is the whisper.cpp-backed implementation of Engine.
type whisperEngine struct {
	*resultStore
	model     whisperpkg.Model
	threads   uint
	language  string
	sessionID string
	mu        sync.Mutex // Protect concurrent access to the model
}

func NewEngine(modelPath string) (Engine, error) {
	threads := uint(runtime.NumCPU())
	if v := os.Getenv("WHISPER_THREADS"); v != "" {
		if n, err := strconv.Atoi(v); err == nil && n > 0 {
			threads = uint(n)
			log.Info().Int("threads", n).Msg("whisper: using configured thread count")
		}
	} else {
		log.Info().Uint("threads", threads).Msg("whisper: using default thread count (CPU cores)")
	}

	language := "auto"
	if v := os.Getenv("WHISPER_LANGUAGE"); v != "" {
		language = v
		log.Info().Str("language", v).Msg("whisper: using configured language")
	}

	m, err := whisperpkg.New(modelPath)
	if err != nil {
		return nil, fmt.Errorf("load model: %w", err)
	}

	log.Info().Str("model", modelPath).Msg("whisper: model loaded successfully")
	return &whisperEngine{
		resultStore: newResultStore(),
		model:       m,
		threads:     threads,
		language:    language,
		sessionID:   newResultID(),
	}, nil
}

func (e *whisperEngine) Close() error {
	if e.model != nil {
		e.model.Close()
	}
	return nil
}

// Recognize runs a full-context transcription over the samples and stores the
// outcome as a result record. Engine failures do not surface as plain errors:
// they become canceled results carrying the error payload, so every outcome
// of a recognition is a handle.
func (e *whisperEngine) Recognize(samples []float32) (native.Handle, error) {
	// Serialize access to the model to prevent concurrent processing crashes
	e.mu.Lock()
	defer e.mu.Unlock()

	if len(samples) < 1600 {
		// < 100ms of audio: nothing a model run could recognize
		log.Debug().Int("samples", len(samples)).Msg("whisper: too-short audio, no match")
		return e.addNoMatch(samples, speech.NoMatchInitialSilenceTimeout), nil
	}

	ctx, err := e.model.NewContext()
	if err != nil {
		return e.addCanceled(fmt.Errorf("create context: %w", err)), nil
	}
	ctx.SetThreads(e.threads)
	_ = ctx.SetLanguage(e.language)
	ctx.SetSplitOnWord(true)
	ctx.SetTokenTimestamps(true)

	if err := ctx.Process(samples, nil, nil, nil); err != nil {
		log.Error().Err(err).Int("samples", len(samples)).Msg("whisper: process failed")
		return e.addCanceled(fmt.Errorf("process audio: %w", err)), nil
	}

	type jsonSegment struct {
		Text  string `json:"text"`
		Start int64  `json:"startMs"`
		End   int64  `json:"endMs"`
	}
	var (
		texts    []string
		segments []jsonSegment
		first    time.Duration = -1
		last     time.Duration
	)
	for {
		seg, err := ctx.NextSegment()
		if err != nil {
			if err != io.EOF {
				log.Warn().Err(err).Msg("whisper: error reading segment")
			}
			break
		}
		text := strings.TrimSpace(seg.Text)
		if text == "" {
			continue
		}
		texts = append(texts, text)
		segments = append(segments, jsonSegment{
			Text:  text,
			Start: seg.Start.Milliseconds(),
			End:   seg.End.Milliseconds(),
		})
		if first < 0 {
			first = seg.Start
		}
		last = seg.End
	}

	full := strings.TrimSpace(strings.Join(texts, " "))
	if full == "" {
		log.Debug().Int("samples", len(samples)).Msg("whisper: no speech recognized")
		return e.addNoMatch(samples, speech.NoMatchNotRecognized), nil
	}

	lang := ctx.Language()
	if lang == "" {
		lang = ctx.DetectedLanguage()
	}
	payload, _ := json.Marshal(segments)

	rec := &resultRecord{
		id:       newResultID(),
		reason:   int32(speech.ReasonRecognizedSpeech),
		text:     full,
		offset:   durationTicks(first),
		duration: durationTicks(last - first),
	}
	h := e.add(rec, map[int32]string{
		int32(speech.PropertySessionID):           e.sessionID,
		int32(speech.PropertyRecognitionLanguage): lang,
		int32(speech.PropertyResponseJSONResult):  string(payload),
	})

	log.Debug().
		Str("resultId", rec.id).
		Str("text", full).
		Str("lang", lang).
		Int("segments", len(segments)).
		Msg("whisper: transcription complete")
	return h, nil
}

func (e *whisperEngine) addNoMatch(samples []float32, reason speech.NoMatchReason) native.Handle {
	rec := &resultRecord{
		id:            newResultID(),
		reason:        int32(speech.ReasonNoMatch),
		duration:      uint64(len(samples)) * ticksPerSample,
		noMatchReason: int32(reason),
	}
	return e.add(rec, map[int32]string{
		int32(speech.PropertySessionID): e.sessionID,
	})
}

func (e *whisperEngine) addCanceled(cause error) native.Handle {
	detail, _ := json.Marshal(map[string]string{"error": cause.Error()})
	rec := &resultRecord{
		id:                newResultID(),
		reason:            int32(speech.ReasonCanceled),
		canceledReason:    int32(speech.CancellationError),
		canceledErrorCode: int32(speech.ErrRuntime),
	}
	return e.add(rec, map[int32]string{
		int32(speech.PropertySessionID):                e.sessionID,
		int32(speech.PropertyResponseJSONErrorDetails): string(detail),
	})
}

// durationTicks converts a duration into 100ns ticks.
func durationTicks(d time.Duration) uint64 {
	if d <= 0 {
		return 0
	}
	return uint64(d.Nanoseconds() / 100)
}
