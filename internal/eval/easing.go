package eval

import "math"

// Func maps linear progress in [0, 1] to eased progress. Overshooting
// families (back, elastic) may leave [0, 1] in between but always satisfy
// f(0) = 0 and f(1) = 1.
type Func func(t float64) float64

// Linear is the identity easing, used for the "none" id and any id the
// registry does not know.
func Linear(t float64) float64 { return t }

// ResolveEasing maps an easing id like "power2.out" or "back.inOut" to its
// function. Empty, "none", "linear" and unknown ids resolve to Linear, so
// evaluation never fails on a bad id.
func ResolveEasing(id string) Func {
	if f, ok := easings[id]; ok {
		return f
	}
	return Linear
}

// KnownEasings returns the registered easing ids, for editor pickers.
func KnownEasings() []string {
	ids := make([]string, 0, len(easings))
	for id := range easings {
		ids = append(ids, id)
	}
	return ids
}

var easings map[string]Func

func init() {
	easings = map[string]Func{
		"none":   Linear,
		"linear": Linear,
	}
	register := func(name string, in Func) {
		easings[name+".in"] = in
		easings[name+".out"] = easeOut(in)
		easings[name+".inOut"] = easeInOut(in)
	}
	register("power1", func(t float64) float64 { return t * t })
	register("power2", func(t float64) float64 { return t * t * t })
	register("power3", func(t float64) float64 { return t * t * t * t })
	register("power4", func(t float64) float64 { return t * t * t * t * t })
	register("sine", func(t float64) float64 { return 1 - math.Cos(t*math.Pi/2) })
	register("expo", func(t float64) float64 {
		if t == 0 {
			return 0
		}
		return math.Pow(2, 10*(t-1))
	})
	register("circ", func(t float64) float64 { return 1 - math.Sqrt(1-t*t) })
	register("back", func(t float64) float64 {
		const s = 1.70158
		return t * t * ((s+1)*t - s)
	})
	register("elastic", func(t float64) float64 {
		if t == 0 || t == 1 {
			return t
		}
		return -math.Pow(2, 10*(t-1)) * math.Sin((t-1.075)*(2*math.Pi)/0.3)
	})
	easings["bounce.out"] = bounceOut
	easings["bounce.in"] = func(t float64) float64 { return 1 - bounceOut(1-t) }
	easings["bounce.inOut"] = easeInOut(func(t float64) float64 { return 1 - bounceOut(1-t) })
}

// easeOut mirrors an ease-in function: out(t) = 1 - in(1-t).
func easeOut(in Func) Func {
	return func(t float64) float64 { return 1 - in(1-t) }
}

// easeInOut runs the ease-in over the first half and its mirror over the
// second half.
func easeInOut(in Func) Func {
	return func(t float64) float64 {
		if t < 0.5 {
			return in(2*t) / 2
		}
		return 1 - in(2*(1-t))/2
	}
}

func bounceOut(t float64) float64 {
	const n, d = 7.5625, 2.75
	switch {
	case t < 1/d:
		return n * t * t
	case t < 2/d:
		t -= 1.5 / d
		return n*t*t + 0.75
	case t < 2.5/d:
		t -= 2.25 / d
		return n*t*t + 0.9375
	default:
		t -= 2.625 / d
		return n*t*t + 0.984375
	}
}
