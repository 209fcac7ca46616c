// Package timeline implements the structural edits users perform on clips
// and the routing of property edits to either an object's base values or a
// selected keyframe. Every operation validates its own preconditions and is
// a no-op reporting false when rejected, so a failed edit never leaves
// partial state behind.
package timeline

import (
	"math"

	"github.com/google/uuid"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
)

// Grid is the snap interval in seconds, and also the minimum clip duration
// a resize may produce.
const Grid = 0.5

// Snap rounds a raw dragged time to the nearest grid multiple.
func Snap(t float64) float64 {
	return math.Round(t/Grid) * Grid
}

// Move sets a clip's start time. The start is snapped when snapping is
// enabled and clamped to >= 0. Locked objects reject the move.
func Move(o *scene.Object, start float64, snap bool) bool {
	if !o.Editable() {
		return false
	}
	if snap {
		start = Snap(start)
	}
	if start < 0 {
		start = 0
	}
	o.Start = start
	return true
}

// truncateTrack drops the keyframes that no longer fit a clip's local
// interval after its duration shrank. Keyframe times are local, so a
// keyframe survives iff its time is still below the new duration.
func truncateTrack(tr keyframe.Track, duration float64) keyframe.Track {
	kept := tr[:0]
	for _, kf := range tr {
		if kf.Time < duration {
			kept = append(kept, kf)
		}
	}
	return kept
}

// ResizeLeft trims a clip from its left edge: start and duration change
// together so the clip's end time is preserved. Rejected when the resulting
// duration would drop below the grid interval. Keyframes past the new
// duration are dropped.
func ResizeLeft(o *scene.Object, start float64, snap bool) bool {
	if !o.Editable() {
		return false
	}
	if snap {
		start = Snap(start)
	}
	if start < 0 {
		start = 0
	}
	duration := o.End() - start
	if duration < Grid {
		return false
	}
	o.Start = start
	o.Duration = duration
	o.Track = truncateTrack(o.Track, duration)
	return true
}

// ResizeRight trims a clip from its right edge, changing its duration only.
// Rejected when the resulting duration would drop below the grid interval.
// Keyframes past the new duration are dropped.
func ResizeRight(o *scene.Object, duration float64, snap bool) bool {
	if !o.Editable() {
		return false
	}
	if snap {
		duration = Snap(duration)
	}
	if duration < Grid {
		return false
	}
	o.Duration = duration
	o.Track = truncateTrack(o.Track, duration)
	return true
}

// Split cuts a clip at global time t, which must lie strictly inside the
// clip interval. The original clip is truncated to end at t and keeps the
// keyframes that still fit its shortened local interval; the remainder
// becomes a new clip starting at t with an empty track and a " (Split)"
// name suffix. Keyframes are never redistributed onto the new clip.
func Split(s *scene.Scene, id string, t float64) (*scene.Object, bool) {
	o := s.Object(id)
	if o == nil || !o.Editable() {
		return nil, false
	}
	if t <= o.Start || t >= o.End() {
		return nil, false
	}

	right := o.Clone()
	right.ID = uuid.NewString()
	right.Name = o.Name + " (Split)"
	right.Start = t
	right.Duration = o.End() - t
	right.Track = nil

	o.Duration = t - o.Start
	o.Track = truncateTrack(o.Track, o.Duration)

	s.Add(right)
	return right, true
}

// Duplicate clones a clip, track included, under a fresh id and places the
// copy immediately after the source clip's end time.
func Duplicate(s *scene.Scene, id string) (*scene.Object, bool) {
	o := s.Object(id)
	if o == nil || !o.Editable() {
		return nil, false
	}
	dup := o.Clone()
	dup.ID = uuid.NewString()
	dup.Start = o.End()
	s.Add(dup)
	return dup, true
}

// Reorder moves the object at index from to index to in the display list.
// Ordering is presentational only and does not affect timing, so locked
// objects may be reordered too.
func Reorder(s *scene.Scene, from, to int) bool {
	if from < 0 || from >= len(s.Objects) || to < 0 || to >= len(s.Objects) {
		return false
	}
	if from == to {
		return true
	}
	o := s.Objects[from]
	rest := append(s.Objects[:from], s.Objects[from+1:]...)
	s.Objects = append(rest[:to], append([]*scene.Object{o}, rest[to:]...)...)
	return true
}
