package speech

import "github.com/verbatik/speechkit/native"

// resultHandle owns exactly one native result handle. Acquiring is plain
// storage and never fails; release happens at most once. The stored handle is
// marked invalid immediately after the release call, so the native release,
// which is not itself idempotent, is never invoked twice through this owner.
//
// Only sibling code in this package may read the raw handle, and only while
// the owner is still valid.
type resultHandle struct {
	api native.API
	raw native.Handle
}

func acquireResult(api native.API, raw native.Handle) resultHandle {
	return resultHandle{api: api, raw: raw}
}

func (h *resultHandle) valid() bool { return h.raw != native.InvalidHandle }

// release invalidates the handle and releases the native resource. Safe to
// call on an already-released handle; the second call is a no-op.
func (h *resultHandle) release() error {
	if !h.valid() {
		return nil
	}
	raw := h.raw
	h.raw = native.InvalidHandle
	if st := h.api.ReleaseResult(raw); !st.OK() {
		return nativeErr("release_result", st)
	}
	return nil
}
