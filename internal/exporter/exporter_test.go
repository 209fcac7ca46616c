package exporter

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/transition"
)

func bakeScene(t *testing.T) *scene.Scene {
	t.Helper()
	s := scene.New()
	s.Objects[0].Duration = 2

	cube := scene.NewObject(scene.KindMesh, "Cube")
	cube.Duration = 2
	cube.Track, _ = cube.Track.Upsert(0, keyframe.Values{"opacity": keyframe.Scalar(0)}, "")
	cube.Track, _ = cube.Track.Upsert(1, keyframe.Values{"opacity": keyframe.Scalar(1)}, "")
	s.Add(cube)
	require.NoError(t, s.Validate())
	return s
}

func TestBakeFrameCountAndOrder(t *testing.T) {
	s := bakeScene(t)
	b := &Baker{FPS: 10, Workers: 4}

	bake, err := b.Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, 10, bake.FPS)
	assert.Equal(t, 2.0, bake.End)
	require.Len(t, bake.Frames, 21, "2s at 10fps inclusive of the final sample")

	for i, f := range bake.Frames {
		assert.Equal(t, i, f.Index)
		assert.InDelta(t, float64(i)/10, f.Time, 1e-9)
	}
}

func TestBakeIsDeterministic(t *testing.T) {
	s := bakeScene(t)

	first, err := (&Baker{FPS: 10, Workers: 8}).Run(context.Background(), s)
	require.NoError(t, err)
	second, err := (&Baker{FPS: 10, Workers: 1}).Run(context.Background(), s)
	require.NoError(t, err)

	assert.Equal(t, first.Frames, second.Frames, "parallel sampling must not change results")
}

func TestBakeSamplesInterpolatedValues(t *testing.T) {
	s := bakeScene(t)
	bake, err := (&Baker{FPS: 10}).Run(context.Background(), s)
	require.NoError(t, err)

	// Frame 5 = t=0.5, halfway through the cube's 0..1 opacity ramp.
	frame := bake.Frames[5]
	var cube *ObjectSample
	for i := range frame.Objects {
		if frame.Objects[i].Name == "Cube" {
			cube = &frame.Objects[i]
		}
	}
	require.NotNil(t, cube)
	assert.Equal(t, keyframe.Scalar(0.5), cube.Values["opacity"])
	assert.Equal(t, 1.0, cube.Weight)
}

func TestBakeAppliesTransitionWeights(t *testing.T) {
	s := bakeScene(t)
	s.Objects[1].In = &transition.Transition{Duration: 1, Fade: true}

	bake, err := (&Baker{FPS: 10}).Run(context.Background(), s)
	require.NoError(t, err)

	for _, o := range bake.Frames[5].Objects {
		if o.Name == "Cube" {
			assert.Equal(t, 0.5, o.Weight)
		}
	}
}

func TestBakeWrite(t *testing.T) {
	s := bakeScene(t)
	bake, err := (&Baker{FPS: 5}).Run(context.Background(), s)
	require.NoError(t, err)

	path := filepath.Join(t.TempDir(), "bake.yaml")
	require.NoError(t, Write(bake, path))
	assert.FileExists(t, path)
}

func TestBakeHonorsCancellation(t *testing.T) {
	s := bakeScene(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := (&Baker{FPS: 60, Workers: 2}).Run(ctx, s)
	assert.Error(t, err)
}
