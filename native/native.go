// Package native defines the call contract between the result layer and a
// recognition engine. The contract is C-style: every accessor takes an opaque
// handle and returns a signed status code, zero meaning success. String
// accessors take a maximum length and silently truncate at it; truncation is
// never an error.
package native

import "strconv"

// Handle is an opaque token identifying a resource owned by an engine.
// Handle 0 is reserved and always invalid.
type Handle uint64

// InvalidHandle marks a handle that refers to nothing.
const InvalidHandle Handle = 0

// Status is a native call result code. Zero means success; any non-zero
// value is a failure. Unknown codes are passed through unmodified.
type Status int32

const (
	StatusOK             Status = 0
	StatusInvalidArg     Status = 1
	StatusInvalidHandle  Status = 2
	StatusNotFound       Status = 3
	StatusRuntimeFailure Status = 4
)

// OK reports whether the call succeeded.
func (s Status) OK() bool { return s == StatusOK }

func (s Status) String() string {
	switch s {
	case StatusOK:
		return "ok"
	case StatusInvalidArg:
		return "invalid argument"
	case StatusInvalidHandle:
		return "invalid handle"
	case StatusNotFound:
		return "not found"
	case StatusRuntimeFailure:
		return "runtime failure"
	}
	return "status(" + strconv.Itoa(int(s)) + ")"
}

// API is the set of accessor calls an engine exposes over result handles.
// All calls are synchronous and blocking. Reason and error codes cross the
// boundary as raw int32 values; the caller casts them into its own
// enumerations without validating unknown values.
type API interface {
	// GetPropertyBag resolves the secondary property-bag handle for a result.
	// The bag's lifetime is tied to the result handle; it is never released
	// on its own.
	GetPropertyBag(result Handle) (Handle, Status)

	// GetResultID reads the unique result id, truncated at max characters.
	GetResultID(result Handle, max int) (string, Status)

	// GetReason reads the raw result reason code.
	GetReason(result Handle) (int32, Status)

	// GetText reads the recognized text, truncated at max characters.
	GetText(result Handle, max int) (string, Status)

	// GetOffset reads the offset of the recognized speech in 100ns ticks.
	GetOffset(result Handle) (uint64, Status)

	// GetDuration reads the duration of the recognized speech in 100ns ticks.
	GetDuration(result Handle) (uint64, Status)

	// GetCanceledReason reads the raw cancellation reason code.
	GetCanceledReason(result Handle) (int32, Status)

	// GetCanceledErrorCode reads the raw cancellation error code.
	GetCanceledErrorCode(result Handle) (int32, Status)

	// GetNoMatchReason reads the raw no-match reason code.
	GetNoMatchReason(result Handle) (int32, Status)

	// GetProperty looks up a property-bag string by key id. Unset keys
	// return the empty string with StatusOK.
	GetProperty(bag Handle, id int32) (string, Status)

	// ReleaseResult releases a result handle and everything derived from it.
	// Must be invoked exactly once per successfully acquired handle; the
	// engine does not guard against double release.
	ReleaseResult(result Handle) Status
}
