package keyframe

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUpsertKeepsTrackSorted(t *testing.T) {
	var tr Track

	tr, _ = tr.Upsert(2.0, Values{"opacity": Scalar(0.5)}, "")
	tr, _ = tr.Upsert(0.5, Values{"opacity": Scalar(1)}, "")
	tr, idx := tr.Upsert(1.0, Values{"opacity": Scalar(0.75)}, "")

	require.Len(t, tr, 3)
	assert.True(t, tr.Sorted())
	assert.Equal(t, 1, idx)
	assert.Equal(t, []float64{0.5, 1.0, 2.0}, []float64{tr[0].Time, tr[1].Time, tr[2].Time})
}

func TestUpsertMergesWithinEpsilon(t *testing.T) {
	var tr Track
	tr, _ = tr.Upsert(1.0, Values{"opacity": Scalar(1), "volume": Scalar(0.5)}, "sine.in")

	// 1.005 is closer than the 0.01s epsilon: merge, don't duplicate.
	tr, idx := tr.Upsert(1.005, Values{"opacity": Scalar(0)}, "back.out")

	require.Len(t, tr, 1)
	assert.Equal(t, 0, idx)
	assert.Equal(t, 1.0, tr[0].Time)
	assert.Equal(t, Scalar(0), tr[0].Values["opacity"], "merged value overwrites")
	assert.Equal(t, Scalar(0.5), tr[0].Values["volume"], "unrelated values survive the merge")
	assert.Equal(t, "back.out", tr[0].Easing, "non-empty easing replaces on merge")
}

func TestUpsertKeepsEasingWhenEmpty(t *testing.T) {
	var tr Track
	tr, _ = tr.Upsert(1.0, Values{"opacity": Scalar(1)}, "sine.in")
	tr, _ = tr.Upsert(1.0, Values{"opacity": Scalar(0)}, "")

	assert.Equal(t, "sine.in", tr[0].Easing)
}

func TestUpsertRoundsToMillisecond(t *testing.T) {
	var tr Track
	tr, _ = tr.Upsert(1.23456, Values{}, "")
	assert.Equal(t, 1.235, tr[0].Time)
}

func TestUpsertDoesNotAliasCallerValues(t *testing.T) {
	src := Values{"opacity": Scalar(1)}
	var tr Track
	tr, _ = tr.Upsert(0, src, "")

	src["opacity"] = Scalar(0)
	assert.Equal(t, Scalar(1), tr[0].Values["opacity"])
}

func TestRemove(t *testing.T) {
	var tr Track
	tr, _ = tr.Upsert(0, Values{}, "")
	tr, _ = tr.Upsert(1, Values{}, "")

	out, ok := tr.Remove(5)
	assert.False(t, ok)
	assert.Len(t, out, 2, "out-of-range removal is a no-op")

	out, ok = out.Remove(-1)
	assert.False(t, ok)
	assert.Len(t, out, 2)

	out, ok = out.Remove(0)
	assert.True(t, ok)
	require.Len(t, out, 1)
	assert.Equal(t, 1.0, out[0].Time)
}

func TestTrackCloneIsDeep(t *testing.T) {
	var tr Track
	tr, _ = tr.Upsert(0, Values{"position": Vec3{X: 1}}, "")

	clone := tr.Clone()
	clone[0].Values["position"] = Vec3{X: 9}

	assert.Equal(t, Vec3{X: 1}, tr[0].Values["position"])
}
