package speech

import "github.com/verbatik/speechkit/native"

// PropertyID identifies a key in a result's property bag. The key space is a
// fixed enumeration; values match the engine's raw key codes.
type PropertyID int32

const (
	// PropertyRecognitionLanguage is the language the engine recognized in.
	PropertyRecognitionLanguage PropertyID = 3001
	// PropertySessionID is the id of the session that produced the result.
	PropertySessionID PropertyID = 3002
	// PropertyResponseJSONResult is the engine's detailed response payload.
	PropertyResponseJSONResult PropertyID = 5000
	// PropertyResponseJSONErrorDetails is the engine's error payload for
	// canceled results.
	PropertyResponseJSONErrorDetails PropertyID = 5001
)

// PropertyCollection is a read-only key/string view over a result's property
// bag. The bag handle is derived from the owning result handle once, at
// construction; the collection does not own it and never releases it. It is
// valid exactly as long as the owning Result is.
//
// Lookups go to the engine on every call. The backing bag is immutable for
// the result's lifetime, so there is nothing to cache.
type PropertyCollection struct {
	api native.API
	bag native.Handle
}

func resolveProperties(api native.API, result native.Handle) (PropertyCollection, error) {
	bag, st := api.GetPropertyBag(result)
	if !st.OK() {
		return PropertyCollection{}, nativeErr("get_property_bag", st)
	}
	return PropertyCollection{api: api, bag: bag}, nil
}

// GetProperty returns the value stored under id, or the empty string if the
// key is unset or the lookup fails (including lookups against a result whose
// handle has been released).
func (p *PropertyCollection) GetProperty(id PropertyID) string {
	v, st := p.api.GetProperty(p.bag, int32(id))
	if !st.OK() {
		return ""
	}
	return v
}
