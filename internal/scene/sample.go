package scene

import (
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/transition"
)

// Sample builds a small demonstration scene: a camera, a key light and two
// animated objects. Used by the CLI's init mode so a new workspace has
// something to evaluate and export.
func Sample() *Scene {
	s := New()

	light := NewObject(KindLight, "Key Light")
	light.Duration = 10
	s.Add(light)

	cube := NewObject(KindMesh, "Cube")
	cube.Duration = 6
	cube.Track, _ = cube.Track.Upsert(0, keyframe.Values{
		"position": keyframe.Vec3{X: -2},
	}, "")
	cube.Track, _ = cube.Track.Upsert(2.5, keyframe.Values{
		"position": keyframe.Vec3{X: 2, Y: 1},
		"color":    keyframe.Color{R: 1, G: 0.4, B: 0.2},
	}, "power2.inOut")
	cube.Track, _ = cube.Track.Upsert(5, keyframe.Values{
		"position": keyframe.Vec3{X: -2},
		"opacity":  keyframe.Scalar(0.25),
	}, "back.out")
	cube.In = &transition.Transition{
		Type: "rise", Duration: 0.8, Fade: true, Scale: 0.5,
		OffsetPosition: keyframe.Vec3{Y: -1}, Easing: "power1.out",
	}
	s.Add(cube)

	title := NewObject(KindImage, "Title Card")
	title.Start = 1
	title.Duration = 4
	title.Track, _ = title.Track.Upsert(0.5, keyframe.Values{
		"opacity": keyframe.Scalar(0),
	}, "")
	title.Track, _ = title.Track.Upsert(1.5, keyframe.Values{
		"opacity": keyframe.Scalar(1),
		"scale":   keyframe.Vec3{X: 1.2, Y: 1.2, Z: 1.2},
	}, "sine.inOut")
	title.Out = &transition.Transition{
		Type: "fade", Duration: 0.5, Fade: true,
	}
	s.Add(title)

	return s
}
