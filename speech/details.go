package speech

// CancellationDetails elaborates on a canceled result: why it was canceled
// and, when the cancellation reports an error, which error. It is a pure
// snapshot; it keeps no reference to the source result once constructed.
type CancellationDetails struct {
	reason       CancellationReason
	errorCode    CancellationErrorCode
	errorDetails string
}

// CancellationDetailsFromResult builds cancellation details for a canceled
// result. The source result must still be open and must have
// Reason() == ReasonCanceled; otherwise ErrReasonMismatch is returned. The
// native reads happen here and only here — the returned details outlive the
// source result freely.
func CancellationDetailsFromResult(r *Result) (*CancellationDetails, error) {
	if !r.h.valid() {
		return nil, ErrInvalidHandle
	}
	if r.Reason() != ReasonCanceled {
		return nil, ErrReasonMismatch
	}

	api, h := r.api(), r.handle()

	reason, st := api.GetCanceledReason(h)
	if !st.OK() {
		return nil, nativeErr("get_canceled_reason", st)
	}
	code, st := api.GetCanceledErrorCode(h)
	if !st.OK() {
		return nil, nativeErr("get_canceled_error_code", st)
	}

	return &CancellationDetails{
		reason:       CancellationReason(reason),
		errorCode:    CancellationErrorCode(code),
		errorDetails: r.Properties().GetProperty(PropertyResponseJSONErrorDetails),
	}, nil
}

// Reason returns why the result was canceled.
func (d *CancellationDetails) Reason() CancellationReason { return d.reason }

// ErrorCode returns the error behind an error cancellation. ErrNone when
// Reason is not CancellationError.
func (d *CancellationDetails) ErrorCode() CancellationErrorCode { return d.errorCode }

// ErrorDetails returns the engine's error payload, if any.
func (d *CancellationDetails) ErrorDetails() string { return d.errorDetails }

// NoMatchDetails elaborates on a no-match result. Like CancellationDetails it
// is a snapshot with no handle dependency after construction.
type NoMatchDetails struct {
	reason NoMatchReason
}

// NoMatchDetailsFromResult builds no-match details for a result with
// Reason() == ReasonNoMatch; any other reason returns ErrReasonMismatch and a
// closed result returns ErrInvalidHandle.
func NoMatchDetailsFromResult(r *Result) (*NoMatchDetails, error) {
	if !r.h.valid() {
		return nil, ErrInvalidHandle
	}
	if r.Reason() != ReasonNoMatch {
		return nil, ErrReasonMismatch
	}

	reason, st := r.api().GetNoMatchReason(r.handle())
	if !st.OK() {
		return nil, nativeErr("get_no_match_reason", st)
	}
	return &NoMatchDetails{reason: NoMatchReason(reason)}, nil
}

// Reason returns why nothing was recognized.
func (d *NoMatchDetails) Reason() NoMatchReason { return d.reason }
