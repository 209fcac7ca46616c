package eval

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestEasingEndpoints(t *testing.T) {
	for _, id := range KnownEasings() {
		f := ResolveEasing(id)
		assert.InDelta(t, 0, f(0), 1e-9, "%s at 0", id)
		assert.InDelta(t, 1, f(1), 1e-9, "%s at 1", id)
	}
}

func TestEasingStaysInRangeForNonOvershootFamilies(t *testing.T) {
	ids := []string{
		"power1.in", "power1.out", "power1.inOut",
		"power4.in", "power4.out", "power4.inOut",
		"sine.in", "sine.out", "sine.inOut",
		"expo.in", "expo.out", "expo.inOut",
		"circ.in", "circ.out", "circ.inOut",
		"bounce.in", "bounce.out", "bounce.inOut",
	}
	for _, id := range ids {
		f := ResolveEasing(id)
		prev := math.Inf(-1)
		monotonic := true
		for i := 0; i <= 100; i++ {
			v := f(float64(i) / 100)
			assert.GreaterOrEqual(t, v, -1e-9, "%s at %d%%", id, i)
			assert.LessOrEqual(t, v, 1+1e-9, "%s at %d%%", id, i)
			if v < prev {
				monotonic = false
			}
			prev = v
		}
		if id[:6] != "bounce" {
			assert.True(t, monotonic, "%s should be monotonic", id)
		}
	}
}

func TestResolveEasingFallsBackToLinear(t *testing.T) {
	for _, id := range []string{"", "none", "linear", "warp.out", "garbage"} {
		f := ResolveEasing(id)
		assert.Equal(t, 0.25, f(0.25), "id %q", id)
		assert.Equal(t, 0.6, f(0.6), "id %q", id)
	}
}

func TestBackOutOvershoots(t *testing.T) {
	f := ResolveEasing("back.out")
	overshot := false
	for i := 1; i < 100; i++ {
		if f(float64(i)/100) > 1 {
			overshot = true
		}
	}
	assert.True(t, overshot, "back.out should overshoot past 1 mid-curve")
}
