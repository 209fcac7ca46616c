// Package eval computes interpolated property values from sparse keyframe
// tracks. Evaluation is pure: it reads the track and base values and never
// mutates them, so re-evaluating at the same time is idempotent and safe to
// call once per rendered frame.
package eval

import (
	"sort"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
)

// Value returns the interpolated value of one property at local clip time t.
//
// The departure keyframe is the latest keyframe at or before t, the arrival
// keyframe the first one after t. Before the first keyframe the base value
// holds; past the last keyframe the last effective value holds. A keyframe
// that does not define the property falls back to the base value, never to
// an earlier keyframe's resolved value. The segment is eased by the arrival
// keyframe's easing id.
//
// Returns nil when the property is defined neither on any bracketing
// keyframe nor in the base values.
func Value(base keyframe.Values, tr keyframe.Track, property string, t float64) keyframe.Value {
	if len(tr) == 0 {
		return base[property]
	}

	departure, arrival := bracket(tr, t)
	if departure < 0 {
		// The implicit zero-state precedes the first keyframe: hold base.
		return base[property]
	}

	from := effective(base, tr[departure], property)
	to := effective(base, tr[arrival], property)
	if from == nil || to == nil {
		return base[property]
	}

	progress := 1.0
	if dt := tr[arrival].Time - tr[departure].Time; dt > 0 {
		progress = (t - tr[departure].Time) / dt
	}
	eased := ResolveEasing(tr[arrival].Easing)(progress)

	return lerp(from, to, eased)
}

// Snapshot evaluates every animatable property known to the object (base
// values plus any property captured on a keyframe) at local time t.
func Snapshot(base keyframe.Values, tr keyframe.Track, t float64) keyframe.Values {
	out := make(keyframe.Values)
	for _, p := range Properties(base, tr) {
		if v := Value(base, tr, p, t); v != nil {
			out[p] = v
		}
	}
	return out
}

// Properties returns the sorted union of property names present in the base
// values and on any keyframe of the track.
func Properties(base keyframe.Values, tr keyframe.Track) []string {
	seen := make(map[string]struct{}, len(base))
	for p := range base {
		seen[p] = struct{}{}
	}
	for _, kf := range tr {
		for p := range kf.Values {
			seen[p] = struct{}{}
		}
	}
	props := make([]string, 0, len(seen))
	for p := range seen {
		props = append(props, p)
	}
	sort.Strings(props)
	return props
}

// bracket locates the departure and arrival keyframe indices around t.
// departure is -1 when t precedes every keyframe; arrival equals departure
// when t is at or past the last keyframe.
func bracket(tr keyframe.Track, t float64) (departure, arrival int) {
	departure = -1
	for i := range tr {
		if tr[i].Time <= t {
			departure = i
		} else {
			break
		}
	}
	if departure < 0 {
		return -1, 0
	}
	arrival = departure
	if departure+1 < len(tr) {
		arrival = departure + 1
	}
	return departure, arrival
}

// effective resolves a keyframe's value for the property, falling back to
// the object's base value when the keyframe does not capture it.
func effective(base keyframe.Values, kf keyframe.Keyframe, property string) keyframe.Value {
	if v, ok := kf.Values[property]; ok {
		return v
	}
	return base[property]
}

// lerp interpolates between two values of the same kind. Mismatched kinds
// hold the departure value rather than guessing a conversion.
func lerp(from, to keyframe.Value, t float64) keyframe.Value {
	switch a := from.(type) {
	case keyframe.Scalar:
		if b, ok := to.(keyframe.Scalar); ok {
			return keyframe.Scalar(float64(a) + (float64(b)-float64(a))*t)
		}
	case keyframe.Vec3:
		if b, ok := to.(keyframe.Vec3); ok {
			return keyframe.Vec3{
				X: a.X + (b.X-a.X)*t,
				Y: a.Y + (b.Y-a.Y)*t,
				Z: a.Z + (b.Z-a.Z)*t,
			}
		}
	case keyframe.Color:
		if b, ok := to.(keyframe.Color); ok {
			return a.Blend(b, t)
		}
	}
	return from
}
