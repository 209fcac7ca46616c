// Package scene holds the editable document: the object list with clip
// placements, animation tracks and scene-wide settings, plus its YAML
// serialization. The evaluation core reads this state; rendering observes
// it from outside and is never referenced here.
package scene

import (
	"fmt"
)

// Version is the scene document schema version written on export.
const Version = "1.0"

// Settings is scene-wide, non-per-object configuration. The evaluation
// core treats it as an opaque passthrough: it round-trips through the
// document untouched.
type Settings struct {
	Background string  `yaml:"background,omitempty"`
	Ambient    float64 `yaml:"ambient,omitempty"`
	Grid       bool    `yaml:"grid,omitempty"`
	Aspect     string  `yaml:"aspect,omitempty"`
	Bloom      float64 `yaml:"bloom,omitempty"`
	Vignette   float64 `yaml:"vignette,omitempty"`
}

// Scene is one editing document.
type Scene struct {
	Version  string    `yaml:"version"`
	Settings Settings  `yaml:"settings"`
	Objects  []*Object `yaml:"objects"`
}

// New returns a scene containing the load-bearing camera object.
func New() *Scene {
	return &Scene{
		Version:  Version,
		Settings: Settings{Background: "#111111", Ambient: 0.5, Aspect: "16:9"},
		Objects:  []*Object{NewObject(KindCamera, "Camera")},
	}
}

// Object finds an object by id, or nil.
func (s *Scene) Object(id string) *Object {
	for _, o := range s.Objects {
		if o.ID == id {
			return o
		}
	}
	return nil
}

// Add appends an object to the scene.
func (s *Scene) Add(o *Object) {
	s.Objects = append(s.Objects, o)
}

// Delete removes the object with the given id. Locked objects and the
// camera cannot be deleted; the attempt is a no-op reporting false.
func (s *Scene) Delete(id string) bool {
	for i, o := range s.Objects {
		if o.ID != id {
			continue
		}
		if !o.Editable() {
			return false
		}
		s.Objects = append(s.Objects[:i], s.Objects[i+1:]...)
		return true
	}
	return false
}

// End returns the timeline length: the latest clip end over all objects.
func (s *Scene) End() float64 {
	end := 0.0
	for _, o := range s.Objects {
		if o.End() > end {
			end = o.End()
		}
	}
	return end
}

// Validate checks the document invariants: known kinds, positive
// durations, non-negative starts, exactly one camera, sorted tracks with
// keyframe times inside the clip's local interval [0, duration).
func (s *Scene) Validate() error {
	cameras := 0
	for _, o := range s.Objects {
		if !o.Kind.Valid() {
			return fmt.Errorf("object %q: unknown kind %q", o.Name, o.Kind)
		}
		if o.Kind == KindCamera {
			cameras++
		}
		if o.Duration <= 0 {
			return fmt.Errorf("object %q: duration must be positive, got %g", o.Name, o.Duration)
		}
		if o.Start < 0 {
			return fmt.Errorf("object %q: start must be >= 0, got %g", o.Name, o.Start)
		}
		if !o.Track.Sorted() {
			return fmt.Errorf("object %q: track is not sorted by time", o.Name)
		}
		for _, kf := range o.Track {
			if kf.Time < 0 || kf.Time >= o.Duration {
				return fmt.Errorf("object %q: keyframe at %gs is outside [0, %gs)", o.Name, kf.Time, o.Duration)
			}
		}
	}
	if cameras != 1 {
		return fmt.Errorf("scene must contain exactly one camera, found %d", cameras)
	}
	return nil
}
