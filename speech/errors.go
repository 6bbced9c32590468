package speech

import (
	"errors"
	"fmt"

	"github.com/verbatik/speechkit/native"
)

var (
	// ErrInvalidHandle is returned when an operation is attempted against a
	// result whose native handle has already been released.
	ErrInvalidHandle = errors.New("speech: result handle already released")

	// ErrReasonMismatch is returned by the detail factories when the source
	// result is not in the logical state the detail type describes.
	ErrReasonMismatch = errors.New("speech: result reason does not match requested details")
)

// NativeCallError reports a native accessor call that returned a non-success
// status. The operation that triggered the call is aborted; nothing partial
// is observable afterwards.
type NativeCallError struct {
	Call   string
	Status native.Status
}

func (e *NativeCallError) Error() string {
	return fmt.Sprintf("speech: native call %s failed: %s", e.Call, e.Status)
}

// Is matches any NativeCallError with the same status, so callers can test
// for a status without caring which accessor surfaced it.
func (e *NativeCallError) Is(target error) bool {
	t, ok := target.(*NativeCallError)
	return ok && e.Status == t.Status
}

func nativeErr(call string, st native.Status) error {
	return &NativeCallError{Call: call, Status: st}
}
