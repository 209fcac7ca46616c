package timeline

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
)

func animatedObject(t *testing.T) *scene.Object {
	t.Helper()
	o := scene.NewObject(scene.KindMesh, "Cube")
	o.Track, _ = o.Track.Upsert(1, keyframe.Values{"opacity": keyframe.Scalar(0)}, "")
	o.Track, _ = o.Track.Upsert(3, keyframe.Values{"opacity": keyframe.Scalar(1)}, "")
	return o
}

func TestGetValueInterpolatesWithoutSelection(t *testing.T) {
	o := animatedObject(t)

	got := GetValue(o, "opacity", -1, 2, BaseValue(o.ID))
	assert.Equal(t, keyframe.Scalar(0.5), got)
}

func TestGetValueReadsSelectedKeyframeRaw(t *testing.T) {
	o := animatedObject(t)

	// The selected keyframe's own sparse value, not the curve.
	got := GetValue(o, "opacity", -1, 2, KeyframeValue(o.ID, 0))
	assert.Equal(t, keyframe.Scalar(0), got)

	// Property the keyframe doesn't define falls back to base.
	got = GetValue(o, "position", -1, 2, KeyframeValue(o.ID, 0))
	assert.Equal(t, keyframe.Vec3{}, got)
}

func TestGetValueAxisComponent(t *testing.T) {
	o := animatedObject(t)
	o.Base["position"] = keyframe.Vec3{X: 1, Y: 2, Z: 3}

	got := GetValue(o, "position", 1, 0, BaseValue(o.ID))
	assert.Equal(t, keyframe.Scalar(2), got)
}

func TestSetValueOnBase(t *testing.T) {
	o := animatedObject(t)

	require.True(t, SetValue(o, "opacity", keyframe.Scalar(0.25), -1, BaseValue(o.ID), false))
	assert.Equal(t, keyframe.Scalar(0.25), o.Base["opacity"])
	assert.Equal(t, keyframe.Scalar(0), o.Track[0].Values["opacity"], "keyframes untouched")
}

func TestSetValueOnSelectedKeyframe(t *testing.T) {
	o := animatedObject(t)

	require.True(t, SetValue(o, "opacity", keyframe.Scalar(0.75), -1, KeyframeValue(o.ID, 1), false))
	assert.Equal(t, keyframe.Scalar(0.75), o.Track[1].Values["opacity"])
	assert.Equal(t, keyframe.Scalar(1), o.Base["opacity"], "base untouched")
}

func TestSetValueAxisSeedsVectorFromBase(t *testing.T) {
	o := animatedObject(t)
	o.Base["position"] = keyframe.Vec3{X: 1, Y: 2, Z: 3}

	// The keyframe has no position: the written vector starts from base and
	// replaces only the edited axis.
	require.True(t, SetValue(o, "position", keyframe.Scalar(9), 2, KeyframeValue(o.ID, 0), false))
	assert.Equal(t, keyframe.Vec3{X: 1, Y: 2, Z: 9}, o.Track[0].Values["position"])
	assert.Equal(t, keyframe.Vec3{X: 1, Y: 2, Z: 3}, o.Base["position"])
}

func TestLockedScaleUniformRescale(t *testing.T) {
	o := animatedObject(t)
	o.Base["scale"] = keyframe.Vec3{X: 1, Y: 2, Z: 4}

	// Editing X from 1 to 2 with locked scale doubles every component.
	require.True(t, SetValue(o, "scale", keyframe.Scalar(2), 0, BaseValue(o.ID), true))
	assert.Equal(t, keyframe.Vec3{X: 2, Y: 4, Z: 8}, o.Base["scale"])
}

func TestLockedScaleZeroAxisFallsBackToComponentWrite(t *testing.T) {
	o := animatedObject(t)
	o.Base["scale"] = keyframe.Vec3{X: 0, Y: 2, Z: 4}

	require.True(t, SetValue(o, "scale", keyframe.Scalar(3), 0, BaseValue(o.ID), true))
	assert.Equal(t, keyframe.Vec3{X: 3, Y: 2, Z: 4}, o.Base["scale"])
}

func TestSetValueOutOfRangeKeyframeTargetsBase(t *testing.T) {
	o := animatedObject(t)

	require.True(t, SetValue(o, "opacity", keyframe.Scalar(0.1), -1, KeyframeValue(o.ID, 99), false))
	assert.Equal(t, keyframe.Scalar(0.1), o.Base["opacity"])
}

func TestSelectionTarget(t *testing.T) {
	sel := Select("obj")
	assert.Equal(t, BaseValue("obj"), sel.Target())

	sel = SelectKeyframe("obj", 2)
	assert.Equal(t, KeyframeValue("obj", 2), sel.Target())
}
