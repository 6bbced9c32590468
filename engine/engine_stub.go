//go:build !whisper_cpp

package engine

import (
	"github.com/rs/zerolog/log"

	"github.com/verbatik/speechkit/native"
	"github.com/verbatik/speechkit/speech"
)

// Default stub (no cgo) so the project builds without the whisper_cpp tag.
// It recognizes nothing: every Recognize yields a no-match result with real
// ids, timing, and session metadata, which is enough to exercise the whole
// result layer without a model.
type stubEngine struct {
	*resultStore
	sessionID string
}

func NewEngine(modelPath string) (Engine, error) {
	return &stubEngine{
		resultStore: newResultStore(),
		sessionID:   newResultID(),
	}, nil
}

func (e *stubEngine) Close() error { return nil }

func (e *stubEngine) Recognize(samples []float32) (native.Handle, error) {
	rec := &resultRecord{
		id:            newResultID(),
		reason:        int32(speech.ReasonNoMatch),
		duration:      uint64(len(samples)) * ticksPerSample,
		noMatchReason: int32(speech.NoMatchNotRecognized),
	}
	if len(samples) == 0 {
		rec.noMatchReason = int32(speech.NoMatchInitialSilenceTimeout)
	}

	h := e.add(rec, map[int32]string{
		int32(speech.PropertySessionID): e.sessionID,
	})
	log.Debug().Str("resultId", rec.id).Int("samples", len(samples)).Msg("stub: produced no-match result")
	return h, nil
}
