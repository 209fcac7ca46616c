// Package player drives playback time over a scene and produces immutable
// evaluated snapshots for rendering observers. The player holds no
// rendering handle; a renderer polls Snapshot (or receives frames from Run)
// and never reaches back into the document.
package player

import (
	"context"
	"time"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/eval"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/transition"
)

// ObjectState is one object's evaluated state at an instant: interpolated
// property values at the clip-local time plus the intro/outro transition
// contributions, when the object declares them.
type ObjectState struct {
	ID     string
	Name   string
	Kind   scene.Kind
	Values keyframe.Values
	Intro  *transition.State
	Outro  *transition.State
}

// Snapshot is a frozen evaluated view of the scene at one time. It copies
// out of the document, so later edits never alias into a snapshot a
// renderer is still holding.
type Snapshot struct {
	Time    float64
	Objects []ObjectState
}

// Player advances a shared current time over one scene. All methods are
// meant to be called from a single editing/event loop; evaluation itself is
// a pure re-read and may be repeated freely at the same time value.
type Player struct {
	Scene *scene.Scene
	Loop  bool

	now     float64
	playing bool
}

// New returns a stopped player positioned at time zero.
func New(s *scene.Scene) *Player {
	return &Player{Scene: s}
}

// Time returns the current playback time in seconds.
func (p *Player) Time() float64 { return p.now }

// Playing reports whether the playback clock is advancing.
func (p *Player) Playing() bool { return p.playing }

// Play starts the playback clock.
func (p *Player) Play() { p.playing = true }

// Pause stops the playback clock without touching the current time.
func (p *Player) Pause() { p.playing = false }

// Seek jumps to time t, clamped to [0, scene end].
func (p *Player) Seek(t float64) {
	if t < 0 {
		t = 0
	}
	if end := p.Scene.End(); t > end {
		t = end
	}
	p.now = t
}

// Advance moves the clock forward by dt seconds when playing. Past the
// scene end it wraps to zero when looping, otherwise it clamps and pauses.
func (p *Player) Advance(dt float64) {
	if !p.playing || dt <= 0 {
		return
	}
	p.now += dt
	end := p.Scene.End()
	if p.now < end {
		return
	}
	if p.Loop && end > 0 {
		for p.now >= end {
			p.now -= end
		}
		return
	}
	p.now = end
	p.playing = false
}

// Snapshot evaluates every object whose clip interval contains the current
// time. Objects outside their interval are omitted.
func (p *Player) Snapshot() Snapshot {
	return p.At(p.now)
}

// At evaluates the scene at an arbitrary global time t.
func (p *Player) At(t float64) Snapshot {
	snap := Snapshot{Time: t}
	for _, o := range p.Scene.Objects {
		if t < o.Start || t >= o.End() {
			continue
		}
		local := t - o.Start
		st := ObjectState{
			ID:     o.ID,
			Name:   o.Name,
			Kind:   o.Kind,
			Values: eval.Snapshot(o.Base, o.Track, local),
		}
		if o.In != nil {
			in := o.In.Intro(local)
			st.Intro = &in
		}
		if o.Out != nil {
			out := o.Out.Outro(local, o.Duration)
			st.Outro = &out
		}
		snap.Objects = append(snap.Objects, st)
	}
	return snap
}

// Run plays the scene with a real-time ticker at the given frame rate,
// invoking onFrame with each evaluated snapshot until playback stops or the
// context is cancelled. Cancellation stops the clock only; the scene and
// its tracks are untouched.
func (p *Player) Run(ctx context.Context, fps int, onFrame func(Snapshot)) error {
	if fps <= 0 {
		fps = 30
	}
	ticker := time.NewTicker(time.Second / time.Duration(fps))
	defer ticker.Stop()

	p.Play()
	last := time.Now()
	for p.playing {
		select {
		case <-ctx.Done():
			p.Pause()
			return ctx.Err()
		case now := <-ticker.C:
			p.Advance(now.Sub(last).Seconds())
			last = now
			onFrame(p.Snapshot())
		}
	}
	return nil
}
