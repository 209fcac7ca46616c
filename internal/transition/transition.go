// Package transition evaluates intro/outro transitions: how an object
// enters or leaves its clip interval. Transitions are independent of the
// object's keyframe track; they produce a weight and derived opacity,
// scale and offset contributions that the rendering layer composes on top
// of the evaluated keyframe state.
package transition

import (
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/eval"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
)

// Transition describes one intro or outro animation of a clip.
type Transition struct {
	Type           string        `yaml:"type"`
	Duration       float64       `yaml:"duration"`
	Delay          float64       `yaml:"delay,omitempty"`
	Fade           bool          `yaml:"fade,omitempty"`
	Scale          float64       `yaml:"scale,omitempty"`
	OffsetPosition keyframe.Vec3 `yaml:"offsetPosition,omitempty"`
	OffsetRotation keyframe.Vec3 `yaml:"offsetRotation,omitempty"`
	Easing         string        `yaml:"easing,omitempty"`
}

// State is the evaluated contribution of a transition at one instant.
// Weight is 0 when the object is fully transitioned out and 1 when fully
// present; the remaining fields are the weight applied to the transition's
// parameters.
type State struct {
	Weight         float64
	Opacity        float64
	Scale          float64
	OffsetPosition keyframe.Vec3
	OffsetRotation keyframe.Vec3
}

// Intro evaluates the transition as a clip entrance at local time t. The
// weight ramps from 0 to 1 over [Delay, Delay+Duration], shaped by the
// transition's easing.
func (tr *Transition) Intro(t float64) State {
	return tr.state(progress(t, tr.Delay, tr.Duration))
}

// Outro evaluates the transition as a clip exit at local time t for a clip
// of the given duration. The weight ramps from 1 back to 0, finishing Delay
// seconds before the clip end.
func (tr *Transition) Outro(t, clipDuration float64) State {
	end := clipDuration - tr.Delay
	return tr.state(progress(end-t, 0, tr.Duration))
}

func (tr *Transition) state(p float64) State {
	w := eval.ResolveEasing(tr.Easing)(p)
	st := State{Weight: w, Opacity: 1, Scale: 1}
	if tr.Fade {
		st.Opacity = w
	}
	if tr.Scale != 0 {
		st.Scale = tr.Scale + (1-tr.Scale)*w
	}
	inv := 1 - w
	st.OffsetPosition = keyframe.Vec3{
		X: tr.OffsetPosition.X * inv,
		Y: tr.OffsetPosition.Y * inv,
		Z: tr.OffsetPosition.Z * inv,
	}
	st.OffsetRotation = keyframe.Vec3{
		X: tr.OffsetRotation.X * inv,
		Y: tr.OffsetRotation.Y * inv,
		Z: tr.OffsetRotation.Z * inv,
	}
	return st
}

// progress clamps (t-delay)/duration into [0, 1]; a non-positive duration
// snaps straight to 1 once the delay has passed.
func progress(t, delay, duration float64) float64 {
	t -= delay
	if t <= 0 {
		return 0
	}
	if duration <= 0 || t >= duration {
		return 1
	}
	return t / duration
}
