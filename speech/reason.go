package speech

import "strconv"

// ResultReason classifies the overall outcome of a recognition operation.
// Values match the engine's raw reason codes.
type ResultReason int32

const (
	// ReasonNoMatch indicates speech could not be recognized.
	ReasonNoMatch ResultReason = 0
	// ReasonCanceled indicates recognition was canceled.
	ReasonCanceled ResultReason = 1
	// ReasonRecognizingSpeech indicates an intermediate (partial) result.
	ReasonRecognizingSpeech ResultReason = 2
	// ReasonRecognizedSpeech indicates a final recognized result.
	ReasonRecognizedSpeech ResultReason = 3
)

func (r ResultReason) String() string {
	switch r {
	case ReasonNoMatch:
		return "no match"
	case ReasonCanceled:
		return "canceled"
	case ReasonRecognizingSpeech:
		return "recognizing speech"
	case ReasonRecognizedSpeech:
		return "recognized speech"
	}
	return "reason(" + strconv.Itoa(int(r)) + ")"
}

// CancellationReason classifies why a result was canceled.
type CancellationReason int32

const (
	// CancellationError indicates the engine reported an error.
	CancellationError CancellationReason = 1
	// CancellationEndOfStream indicates the input stream ended.
	CancellationEndOfStream CancellationReason = 2
)

func (r CancellationReason) String() string {
	switch r {
	case CancellationError:
		return "error"
	case CancellationEndOfStream:
		return "end of stream"
	}
	return "cancellation(" + strconv.Itoa(int(r)) + ")"
}

// CancellationErrorCode refines a CancellationError cancellation. ErrNone is
// the no-error sentinel used whenever the cancellation reason is not an error.
type CancellationErrorCode int32

const (
	ErrNone                  CancellationErrorCode = 0
	ErrAuthenticationFailure CancellationErrorCode = 1
	ErrBadRequest            CancellationErrorCode = 2
	ErrTooManyRequests       CancellationErrorCode = 3
	ErrForbidden             CancellationErrorCode = 4
	ErrConnectionFailure     CancellationErrorCode = 5
	ErrServiceTimeout        CancellationErrorCode = 6
	ErrServiceError          CancellationErrorCode = 7
	ErrServiceUnavailable    CancellationErrorCode = 8
	ErrRuntime               CancellationErrorCode = 9
)

func (c CancellationErrorCode) String() string {
	switch c {
	case ErrNone:
		return "none"
	case ErrAuthenticationFailure:
		return "authentication failure"
	case ErrBadRequest:
		return "bad request"
	case ErrTooManyRequests:
		return "too many requests"
	case ErrForbidden:
		return "forbidden"
	case ErrConnectionFailure:
		return "connection failure"
	case ErrServiceTimeout:
		return "service timeout"
	case ErrServiceError:
		return "service error"
	case ErrServiceUnavailable:
		return "service unavailable"
	case ErrRuntime:
		return "runtime error"
	}
	return "error(" + strconv.Itoa(int(c)) + ")"
}

// NoMatchReason classifies why no speech was recognized.
type NoMatchReason int32

const (
	NoMatchNotRecognized         NoMatchReason = 1
	NoMatchInitialSilenceTimeout NoMatchReason = 2
	NoMatchInitialBabbleTimeout  NoMatchReason = 3
	NoMatchKeywordNotRecognized  NoMatchReason = 4
)

func (r NoMatchReason) String() string {
	switch r {
	case NoMatchNotRecognized:
		return "not recognized"
	case NoMatchInitialSilenceTimeout:
		return "initial silence timeout"
	case NoMatchInitialBabbleTimeout:
		return "initial babble timeout"
	case NoMatchKeywordNotRecognized:
		return "keyword not recognized"
	}
	return "nomatch(" + strconv.Itoa(int(r)) + ")"
}
