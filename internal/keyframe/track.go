package keyframe

import (
	"math"
	"sort"
)

// Epsilon is the minimum distinguishable distance in seconds between two
// keyframe times. An upsert closer than this to an existing keyframe merges
// into it instead of creating a near-duplicate.
const Epsilon = 0.01

// EasingLinear is the default easing id. An empty id means the same thing.
const EasingLinear = "none"

// Keyframe is one time-stamped sparse snapshot of property values,
// positioned in seconds local to its clip (time 0 = clip start).
type Keyframe struct {
	Time   float64 `yaml:"time"`
	Name   string  `yaml:"name,omitempty"`
	Easing string  `yaml:"easing,omitempty"`
	Values Values  `yaml:"values"`
}

// Clone returns a deep copy of the keyframe.
func (k Keyframe) Clone() Keyframe {
	k.Values = k.Values.Clone()
	return k
}

// Track is an object's ordered animation track. The zero value is an empty
// track ready for use. Invariant: keyframes are sorted ascending by time
// and no two keyframes lie within Epsilon of each other.
type Track []Keyframe

// RoundTime rounds a keyframe time to millisecond precision, the storage
// and display granularity of the timeline.
func RoundTime(t float64) float64 {
	return math.Round(t*1000) / 1000
}

// Upsert inserts a keyframe at the given local time, or merges values into
// an existing keyframe lying within Epsilon of it. A non-empty easing
// replaces the existing keyframe's easing on merge. Returns the updated
// track and the index of the affected keyframe.
func (tr Track) Upsert(t float64, values Values, easing string) (Track, int) {
	t = RoundTime(t)

	for i := range tr {
		if math.Abs(tr[i].Time-t) < Epsilon {
			if tr[i].Values == nil {
				tr[i].Values = make(Values, len(values))
			}
			tr[i].Values.Merge(values)
			if easing != "" {
				tr[i].Easing = easing
			}
			return tr, i
		}
	}

	kf := Keyframe{Time: t, Easing: easing, Values: values.Clone()}
	if kf.Values == nil {
		kf.Values = Values{}
	}
	tr = append(tr, kf)
	sort.SliceStable(tr, func(i, j int) bool { return tr[i].Time < tr[j].Time })

	for i := range tr {
		if tr[i].Time == t {
			return tr, i
		}
	}
	return tr, len(tr) - 1
}

// Remove deletes the keyframe at index. Out-of-range indices are a no-op
// and report false.
func (tr Track) Remove(index int) (Track, bool) {
	if index < 0 || index >= len(tr) {
		return tr, false
	}
	return append(tr[:index], tr[index+1:]...), true
}

// Clone returns a deep copy of the track.
func (tr Track) Clone() Track {
	if tr == nil {
		return nil
	}
	out := make(Track, len(tr))
	for i, kf := range tr {
		out[i] = kf.Clone()
	}
	return out
}

// Sorted reports whether the track invariant holds. Mutations through
// Upsert/Remove preserve it; externally built tracks can be checked before
// being accepted.
func (tr Track) Sorted() bool {
	for i := 1; i < len(tr); i++ {
		if tr[i].Time < tr[i-1].Time {
			return false
		}
	}
	return true
}
