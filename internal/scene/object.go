package scene

import (
	"github.com/google/uuid"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/transition"
)

// Kind discriminates the timeline object types.
type Kind string

const (
	KindMesh   Kind = "mesh"   // generic mesh primitive
	KindCamera Kind = "camera" // scene camera
	KindLight  Kind = "light"  // light source
	KindAudio  Kind = "audio"  // audio clip
	KindVideo  Kind = "video"  // video plane
	KindImage  Kind = "image"  // image plane
	KindShape  Kind = "shape"  // vector shape
	KindModel  Kind = "model"  // imported 3D model
	KindLottie Kind = "lottie" // vector animation
)

// Kinds lists every valid object kind.
var Kinds = []Kind{
	KindMesh, KindCamera, KindLight, KindAudio, KindVideo,
	KindImage, KindShape, KindModel, KindLottie,
}

// Valid reports whether k names a known kind.
func (k Kind) Valid() bool {
	for _, known := range Kinds {
		if k == known {
			return true
		}
	}
	return false
}

// Object is one timeline-placed entity: a clip interval
// [Start, Start+Duration), a base (non-animated) value per animatable
// property, an animation track with times local to the clip, and optional
// intro/outro transitions.
type Object struct {
	ID       string                 `yaml:"id"`
	Kind     Kind                   `yaml:"kind"`
	Name     string                 `yaml:"name"`
	Start    float64                `yaml:"start"`
	Duration float64                `yaml:"duration"`
	Locked   bool                   `yaml:"locked,omitempty"`
	Base     keyframe.Values        `yaml:"base"`
	Track    keyframe.Track         `yaml:"track,omitempty"`
	In       *transition.Transition `yaml:"in,omitempty"`
	Out      *transition.Transition `yaml:"out,omitempty"`
}

// NewObject creates an object of the given kind with a fresh id, a default clip
// placement, the base-value snapshot appropriate to its kind, and an empty
// track. Camera and light objects are created locked.
func NewObject(kind Kind, name string) *Object {
	o := &Object{
		ID:       uuid.NewString(),
		Kind:     kind,
		Name:     name,
		Start:    0,
		Duration: 5,
		Base:     baseValues(kind),
	}
	if kind == KindCamera || kind == KindLight {
		o.Locked = true
	}
	return o
}

// Editable reports whether structural timeline edits (move, resize, split,
// duplicate, delete) are allowed. Locked objects and camera/light kinds
// reject them.
func (o *Object) Editable() bool {
	return !o.Locked && o.Kind != KindCamera && o.Kind != KindLight
}

// End returns the clip's exclusive end time on the global timeline.
func (o *Object) End() float64 {
	return o.Start + o.Duration
}

// Clone deep-copies the object, keeping the same id. Callers duplicating a
// clip assign a fresh id themselves.
func (o *Object) Clone() *Object {
	c := *o
	c.Base = o.Base.Clone()
	c.Track = o.Track.Clone()
	if o.In != nil {
		in := *o.In
		c.In = &in
	}
	if o.Out != nil {
		out := *o.Out
		c.Out = &out
	}
	return &c
}

// baseValues is the initial property snapshot per kind. Which properties an
// object carries is decided here; the evaluator treats anything absent from
// both base and track as inapplicable.
func baseValues(kind Kind) keyframe.Values {
	v := keyframe.Values{
		"position": keyframe.Vec3{},
		"rotation": keyframe.Vec3{},
		"scale":    keyframe.Vec3{X: 1, Y: 1, Z: 1},
		"opacity":  keyframe.Scalar(1),
	}
	switch kind {
	case KindMesh, KindShape:
		v["color"] = keyframe.Color{R: 1, G: 1, B: 1}
		v["roughness"] = keyframe.Scalar(0.5)
		v["metalness"] = keyframe.Scalar(0)
		v["curvature"] = keyframe.Scalar(0)
	case KindModel:
		v["roughness"] = keyframe.Scalar(0.5)
		v["metalness"] = keyframe.Scalar(0)
	case KindCamera:
		v["position"] = keyframe.Vec3{Z: 10}
		v["fov"] = keyframe.Scalar(50)
		delete(v, "opacity")
	case KindLight:
		v["color"] = keyframe.Color{R: 1, G: 1, B: 1}
		v["intensity"] = keyframe.Scalar(1)
		delete(v, "opacity")
		delete(v, "scale")
	case KindAudio:
		v = keyframe.Values{"volume": keyframe.Scalar(1)}
	case KindVideo:
		v["volume"] = keyframe.Scalar(1)
	}
	return v
}
