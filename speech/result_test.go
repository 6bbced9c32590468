package speech

import (
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/verbatik/speechkit/native"
)

// fakeAPI is an in-test native layer serving a single canned result. Any one
// call can be forced to fail, and release invocations are counted per handle.
type fakeAPI struct {
	id       string
	reason   int32
	text     string
	offset   uint64
	duration uint64

	bag   native.Handle
	props map[int32]string

	canceledReason    int32
	canceledErrorCode int32
	noMatchReason     int32

	failCall   string
	failStatus native.Status

	releases map[native.Handle]int
}

func newFakeAPI() *fakeAPI {
	return &fakeAPI{
		id:       "b9e553e2c43b4f0a8e2e1d9f8c7a6b5d",
		reason:   int32(ReasonRecognizedSpeech),
		text:     "hello world",
		offset:   1_000_000,
		duration: 12_500_000,
		bag:      native.Handle(77),
		props:    map[int32]string{},
		releases: map[native.Handle]int{},
	}
}

func (f *fakeAPI) status(call string) native.Status {
	if f.failCall == call {
		if f.failStatus != native.StatusOK {
			return f.failStatus
		}
		return native.StatusRuntimeFailure
	}
	return native.StatusOK
}

func (f *fakeAPI) GetPropertyBag(result native.Handle) (native.Handle, native.Status) {
	if st := f.status("get_property_bag"); !st.OK() {
		return native.InvalidHandle, st
	}
	return f.bag, native.StatusOK
}

func (f *fakeAPI) GetResultID(result native.Handle, max int) (string, native.Status) {
	if st := f.status("get_result_id"); !st.OK() {
		return "", st
	}
	return clip(f.id, max), native.StatusOK
}

func (f *fakeAPI) GetReason(result native.Handle) (int32, native.Status) {
	if st := f.status("get_reason"); !st.OK() {
		return 0, st
	}
	return f.reason, native.StatusOK
}

func (f *fakeAPI) GetText(result native.Handle, max int) (string, native.Status) {
	if st := f.status("get_text"); !st.OK() {
		return "", st
	}
	return clip(f.text, max), native.StatusOK
}

func (f *fakeAPI) GetOffset(result native.Handle) (uint64, native.Status) {
	if st := f.status("get_offset"); !st.OK() {
		return 0, st
	}
	return f.offset, native.StatusOK
}

func (f *fakeAPI) GetDuration(result native.Handle) (uint64, native.Status) {
	if st := f.status("get_duration"); !st.OK() {
		return 0, st
	}
	return f.duration, native.StatusOK
}

func (f *fakeAPI) GetCanceledReason(result native.Handle) (int32, native.Status) {
	if st := f.status("get_canceled_reason"); !st.OK() {
		return 0, st
	}
	return f.canceledReason, native.StatusOK
}

func (f *fakeAPI) GetCanceledErrorCode(result native.Handle) (int32, native.Status) {
	if st := f.status("get_canceled_error_code"); !st.OK() {
		return 0, st
	}
	return f.canceledErrorCode, native.StatusOK
}

func (f *fakeAPI) GetNoMatchReason(result native.Handle) (int32, native.Status) {
	if st := f.status("get_no_match_reason"); !st.OK() {
		return 0, st
	}
	return f.noMatchReason, native.StatusOK
}

func (f *fakeAPI) GetProperty(bag native.Handle, id int32) (string, native.Status) {
	if st := f.status("get_property"); !st.OK() {
		return "", st
	}
	if bag != f.bag {
		return "", native.StatusInvalidHandle
	}
	return f.props[id], native.StatusOK
}

func (f *fakeAPI) ReleaseResult(result native.Handle) native.Status {
	f.releases[result]++
	return native.StatusOK
}

func clip(v string, max int) string {
	if len(v) > max {
		return v[:max]
	}
	return v
}

func TestFromHandleSnapshot(t *testing.T) {
	api := newFakeAPI()

	r, err := FromHandle(api, native.Handle(1))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, api.id, r.ResultID())
	assert.Equal(t, ReasonRecognizedSpeech, r.Reason())
	assert.Equal(t, "hello world", r.Text())
	assert.Equal(t, uint64(1_000_000), r.Offset())
	assert.Equal(t, uint64(12_500_000), r.Duration())

	// Fields are a point-in-time snapshot: mutating the native layer after
	// construction must not show through.
	api.text = "changed"
	api.reason = int32(ReasonCanceled)
	api.duration = 0

	for i := 0; i < 3; i++ {
		assert.Equal(t, "hello world", r.Text())
		assert.Equal(t, ReasonRecognizedSpeech, r.Reason())
		assert.Equal(t, uint64(12_500_000), r.Duration())
	}
}

func TestFromHandleAccessorFailure(t *testing.T) {
	calls := []string{
		"get_property_bag",
		"get_result_id",
		"get_reason",
		"get_text",
		"get_offset",
		"get_duration",
	}

	for _, call := range calls {
		t.Run(call, func(t *testing.T) {
			api := newFakeAPI()
			api.failCall = call
			api.failStatus = native.StatusRuntimeFailure

			r, err := FromHandle(api, native.Handle(1))
			require.Error(t, err)
			assert.Nil(t, r)

			var nce *NativeCallError
			require.True(t, errors.As(err, &nce))
			assert.Equal(t, call, nce.Call)
			assert.Equal(t, native.StatusRuntimeFailure, nce.Status)

			// Ownership transferred on entry, so the failure path must
			// still have released the handle exactly once.
			assert.Equal(t, 1, api.releases[native.Handle(1)])
		})
	}
}

func TestFromHandleInvalid(t *testing.T) {
	api := newFakeAPI()

	r, err := FromHandle(api, native.InvalidHandle)
	assert.Nil(t, r)
	assert.ErrorIs(t, err, ErrInvalidHandle)
	assert.Empty(t, api.releases)
}

func TestCloseReleasesExactlyOnce(t *testing.T) {
	api := newFakeAPI()

	r, err := FromHandle(api, native.Handle(5))
	require.NoError(t, err)

	require.NoError(t, r.Close())
	require.NoError(t, r.Close())
	require.NoError(t, r.Close())

	assert.Equal(t, 1, api.releases[native.Handle(5)])
}

func TestOwnershipTransfer(t *testing.T) {
	api := newFakeAPI()

	first, err := FromHandle(api, native.Handle(9))
	require.NoError(t, err)

	// Hand the result through a couple of owners before anyone closes it.
	second := first
	first = nil
	ch := make(chan *Result, 1)
	ch <- second
	third := <-ch

	assert.Equal(t, api.id, third.ResultID())
	require.NoError(t, third.Close())
	assert.Equal(t, 1, api.releases[native.Handle(9)])
	_ = first
}

func TestResultIDTruncatedAt1024(t *testing.T) {
	api := newFakeAPI()
	api.id = strings.Repeat("a", 1500)

	r, err := FromHandle(api, native.Handle(1))
	require.NoError(t, err)
	defer r.Close()

	assert.Len(t, r.ResultID(), 1024)
	assert.Equal(t, strings.Repeat("a", 1024), r.ResultID())
}

func TestTextTruncatedAt1024(t *testing.T) {
	api := newFakeAPI()
	api.text = strings.Repeat("x", 4096)

	r, err := FromHandle(api, native.Handle(1))
	require.NoError(t, err)
	defer r.Close()

	assert.Len(t, r.Text(), 1024)
}

func TestIndependentResultsReverseRelease(t *testing.T) {
	apiA := newFakeAPI()
	apiA.id = "result-a"
	apiB := newFakeAPI()
	apiB.id = "result-b"

	a, err := FromHandle(apiA, native.Handle(1))
	require.NoError(t, err)
	b, err := FromHandle(apiB, native.Handle(2))
	require.NoError(t, err)

	// Reverse construction order.
	require.NoError(t, b.Close())
	require.NoError(t, a.Close())

	assert.Equal(t, map[native.Handle]int{2: 1}, apiB.releases)
	assert.Equal(t, map[native.Handle]int{1: 1}, apiA.releases)
}

func TestUnknownReasonCodePassedThrough(t *testing.T) {
	api := newFakeAPI()
	api.reason = 42

	r, err := FromHandle(api, native.Handle(1))
	require.NoError(t, err)
	defer r.Close()

	assert.Equal(t, ResultReason(42), r.Reason())
	assert.Equal(t, "reason(42)", r.Reason().String())
}
