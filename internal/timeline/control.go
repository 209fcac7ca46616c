package timeline

import (
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/eval"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
)

// NoKeyframe marks an EditTarget or Selection that addresses base values
// rather than a keyframe.
const NoKeyframe = -1

// Selection is the editor's current selection: an object and, optionally,
// one of its keyframes.
type Selection struct {
	ObjectID string
	Keyframe int
}

// Select returns a selection of a whole object.
func Select(objectID string) Selection {
	return Selection{ObjectID: objectID, Keyframe: NoKeyframe}
}

// SelectKeyframe returns a selection of one keyframe of an object.
func SelectKeyframe(objectID string, index int) Selection {
	return Selection{ObjectID: objectID, Keyframe: index}
}

// EditTarget says where a property edit lands: an object's base value, or
// one keyframe's sparse values map. It is passed explicitly instead of
// being inferred from ambient selection state at each call site.
type EditTarget struct {
	ObjectID string
	Keyframe int
}

// BaseValue targets an object's base (non-animated) value.
func BaseValue(objectID string) EditTarget {
	return EditTarget{ObjectID: objectID, Keyframe: NoKeyframe}
}

// KeyframeValue targets one keyframe's values map.
func KeyframeValue(objectID string, index int) EditTarget {
	return EditTarget{ObjectID: objectID, Keyframe: index}
}

// Target derives the edit target from a selection: a selected keyframe
// redirects edits onto that keyframe, otherwise edits go to base values.
func (sel Selection) Target() EditTarget {
	return EditTarget{ObjectID: sel.ObjectID, Keyframe: sel.Keyframe}
}

func (et EditTarget) keyframe(o *scene.Object) (*keyframe.Keyframe, bool) {
	if et.ObjectID != o.ID || et.Keyframe == NoKeyframe {
		return nil, false
	}
	if et.Keyframe < 0 || et.Keyframe >= len(o.Track) {
		return nil, false
	}
	return &o.Track[et.Keyframe], true
}

// GetValue reads a property for display in the editing UI. With a keyframe
// targeted it returns that keyframe's own sparse value (base value when the
// keyframe does not define it), so the user sees the raw keyframe state and
// not the interpolated curve. Otherwise it returns the evaluator's value at
// the given local time. If axis is 0..2 and the value is a vector, the
// single component is returned as a Scalar.
func GetValue(o *scene.Object, property string, axis int, t float64, target EditTarget) keyframe.Value {
	var v keyframe.Value
	if kf, ok := target.keyframe(o); ok {
		if kv, defined := kf.Values[property]; defined {
			v = kv
		} else {
			v = o.Base[property]
		}
	} else {
		v = eval.Value(o.Base, o.Track, property, t)
	}
	if axis >= 0 {
		if vec, ok := v.(keyframe.Vec3); ok {
			return keyframe.Scalar(vec.Component(axis))
		}
	}
	return v
}

// SetValue routes a property edit to the target: a keyframe's values map,
// or the object's base value. With an axis given, the written vector is
// seeded from the keyframe's value (falling back to base) before the single
// component is replaced. When lockedScale is set and a single scale axis is
// edited, the edit becomes a uniform rescale: the new-to-old ratio on the
// edited axis is applied to all three components.
func SetValue(o *scene.Object, property string, value keyframe.Value, axis int, target EditTarget, lockedScale bool) bool {
	kf, onKeyframe := target.keyframe(o)

	current := func() keyframe.Value {
		if onKeyframe {
			if kv, defined := kf.Values[property]; defined {
				return kv
			}
		}
		return o.Base[property]
	}

	if lockedScale && property == "scale" && axis >= 0 {
		s, ok := value.(keyframe.Scalar)
		if !ok {
			return false
		}
		vec, ok := current().(keyframe.Vec3)
		if !ok {
			return false
		}
		old := vec.Component(axis)
		if old != 0 {
			ratio := float64(s) / old
			value = keyframe.Vec3{X: vec.X * ratio, Y: vec.Y * ratio, Z: vec.Z * ratio}
		} else {
			value = vec.WithComponent(axis, float64(s))
		}
		axis = -1
	}

	if axis >= 0 {
		s, ok := value.(keyframe.Scalar)
		if !ok {
			return false
		}
		vec, _ := current().(keyframe.Vec3)
		value = vec.WithComponent(axis, float64(s))
	}

	if onKeyframe {
		if kf.Values == nil {
			kf.Values = keyframe.Values{}
		}
		kf.Values[property] = value
		return true
	}
	if o.Base == nil {
		o.Base = keyframe.Values{}
	}
	o.Base[property] = value
	return true
}
