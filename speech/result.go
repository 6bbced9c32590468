// Package speech wraps opaque recognition-result handles produced by a native
// speech engine behind immutable snapshot values. A Result performs all of
// its native reads once, at construction; afterwards its fields are plain
// data, safe for concurrent reads, with no further engine interaction until
// Close releases the underlying handle.
package speech

import "github.com/verbatik/speechkit/native"

// maxCharCount caps bounded native string reads. Data beyond the cap is
// silently dropped, matching the native buffer contract.
const maxCharCount = 1024

// Result is a point-in-time snapshot of one recognition result. It owns the
// native handle it was constructed from and releases it exactly once, on
// Close. Construct with FromHandle.
type Result struct {
	h     resultHandle
	props PropertyCollection

	resultID string
	reason   ResultReason
	text     string
	offset   uint64
	duration uint64
}

// FromHandle wraps a native result handle in a Result. Ownership of the
// handle transfers to the Result on entry; the caller must not release it.
//
// All field reads happen here, in order: property bag, result id, reason,
// text, offset, duration. Any accessor returning a non-success status aborts
// construction with a NativeCallError, and the handle is released before the
// error returns so the exactly-once release contract holds on every path.
func FromHandle(api native.API, h native.Handle) (*Result, error) {
	if h == native.InvalidHandle {
		return nil, ErrInvalidHandle
	}

	owned := acquireResult(api, h)

	props, err := resolveProperties(api, h)
	if err != nil {
		_ = owned.release()
		return nil, err
	}

	r := &Result{h: owned, props: props}
	if err := r.populate(api, h); err != nil {
		_ = r.h.release()
		return nil, err
	}
	return r, nil
}

func (r *Result) populate(api native.API, h native.Handle) error {
	id, st := api.GetResultID(h, maxCharCount)
	if !st.OK() {
		return nativeErr("get_result_id", st)
	}
	r.resultID = id

	reason, st := api.GetReason(h)
	if !st.OK() {
		return nativeErr("get_reason", st)
	}
	r.reason = ResultReason(reason)

	text, st := api.GetText(h, maxCharCount)
	if !st.OK() {
		return nativeErr("get_text", st)
	}
	r.text = text

	offset, st := api.GetOffset(h)
	if !st.OK() {
		return nativeErr("get_offset", st)
	}
	r.offset = offset

	duration, st := api.GetDuration(h)
	if !st.OK() {
		return nativeErr("get_duration", st)
	}
	r.duration = duration

	return nil
}

// ResultID returns the unique id of the recognition operation.
func (r *Result) ResultID() string { return r.resultID }

// Reason returns the outcome classification of the recognition.
func (r *Result) Reason() ResultReason { return r.reason }

// Text returns the normalized recognized text. May be empty.
func (r *Result) Text() string { return r.text }

// Offset returns the offset of the recognized speech in 100ns ticks.
func (r *Result) Offset() uint64 { return r.offset }

// Duration returns the duration of the recognized speech in 100ns ticks.
func (r *Result) Duration() uint64 { return r.duration }

// Properties returns the result's property bag view. The view is valid until
// Close is called.
func (r *Result) Properties() *PropertyCollection { return &r.props }

// Close releases the underlying native handle. The first call releases;
// subsequent calls are no-ops. Close must happen after all property lookups
// and detail-factory calls against this result have completed; it must not
// run concurrently with them.
func (r *Result) Close() error {
	return r.h.release()
}

// handle exposes the raw native handle to trusted code in this package.
// Returns InvalidHandle once the result is closed.
func (r *Result) handle() native.Handle { return r.h.raw }

func (r *Result) api() native.API { return r.h.api }
