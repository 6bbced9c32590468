package engine

import (
	"crypto/rand"
	"encoding/hex"

	"github.com/verbatik/speechkit/native"
)

// ticksPerSample at 16kHz: one tick is 100ns, one sample is 62.5us.
const ticksPerSample = 625

// resultRecord is the engine-side state behind one result handle.
type resultRecord struct {
	id       string
	reason   int32
	text     string
	offset   uint64
	duration uint64

	canceledReason    int32
	canceledErrorCode int32
	noMatchReason     int32

	bag native.Handle
}

// propertyBag is the engine-side state behind one property-bag handle.
type propertyBag struct {
	values map[int32]string
}

// resultStore implements the native accessor contract over an in-memory
// handle table. Both engine variants embed it; Recognize implementations add
// records, the result layer reads them back through the native.API calls.
type resultStore struct {
	handles *table
}

func newResultStore() *resultStore {
	return &resultStore{handles: newTable()}
}

// add stores a record plus its property bag and returns the result handle.
// The bag handle lives and dies with the result handle.
func (s *resultStore) add(rec *resultRecord, props map[int32]string) native.Handle {
	if props == nil {
		props = map[int32]string{}
	}
	rec.bag = s.handles.create(&propertyBag{values: props})
	return s.handles.create(rec)
}

func (s *resultStore) result(h native.Handle) (*resultRecord, bool) {
	v, ok := s.handles.get(h)
	if !ok {
		return nil, false
	}
	rec, ok := v.(*resultRecord)
	return rec, ok
}

func (s *resultStore) GetPropertyBag(result native.Handle) (native.Handle, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return native.InvalidHandle, native.StatusInvalidHandle
	}
	return rec.bag, native.StatusOK
}

func (s *resultStore) GetResultID(result native.Handle, max int) (string, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return "", native.StatusInvalidHandle
	}
	return truncate(rec.id, max), native.StatusOK
}

func (s *resultStore) GetReason(result native.Handle) (int32, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return 0, native.StatusInvalidHandle
	}
	return rec.reason, native.StatusOK
}

func (s *resultStore) GetText(result native.Handle, max int) (string, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return "", native.StatusInvalidHandle
	}
	return truncate(rec.text, max), native.StatusOK
}

func (s *resultStore) GetOffset(result native.Handle) (uint64, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return 0, native.StatusInvalidHandle
	}
	return rec.offset, native.StatusOK
}

func (s *resultStore) GetDuration(result native.Handle) (uint64, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return 0, native.StatusInvalidHandle
	}
	return rec.duration, native.StatusOK
}

func (s *resultStore) GetCanceledReason(result native.Handle) (int32, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return 0, native.StatusInvalidHandle
	}
	return rec.canceledReason, native.StatusOK
}

func (s *resultStore) GetCanceledErrorCode(result native.Handle) (int32, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return 0, native.StatusInvalidHandle
	}
	return rec.canceledErrorCode, native.StatusOK
}

func (s *resultStore) GetNoMatchReason(result native.Handle) (int32, native.Status) {
	rec, ok := s.result(result)
	if !ok {
		return 0, native.StatusInvalidHandle
	}
	return rec.noMatchReason, native.StatusOK
}

func (s *resultStore) GetProperty(bag native.Handle, id int32) (string, native.Status) {
	v, ok := s.handles.get(bag)
	if !ok {
		return "", native.StatusInvalidHandle
	}
	pb, ok := v.(*propertyBag)
	if !ok {
		return "", native.StatusInvalidHandle
	}
	return pb.values[id], native.StatusOK
}

func (s *resultStore) ReleaseResult(result native.Handle) native.Status {
	v, ok := s.handles.drop(result)
	if !ok {
		return native.StatusInvalidHandle
	}
	rec, ok := v.(*resultRecord)
	if !ok {
		return native.StatusInvalidHandle
	}
	// The bag is derived from the result and goes with it.
	s.handles.drop(rec.bag)
	return native.StatusOK
}

// live returns the number of live handles, results and bags both.
func (s *resultStore) live() int { return s.handles.size() }

func truncate(v string, max int) string {
	if max >= 0 && len(v) > max {
		return v[:max]
	}
	return v
}

// newResultID mints a 32-char hex result id.
func newResultID() string {
	var b [16]byte
	if _, err := rand.Read(b[:]); err != nil {
		// crypto/rand does not fail on supported platforms
		panic(err)
	}
	return hex.EncodeToString(b[:])
}
