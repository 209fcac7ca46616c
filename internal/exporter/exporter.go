// Package exporter bakes a scene's timeline into per-frame evaluated
// samples, the hand-off format for an external encoder or renderer.
// Sampling is a pure read of the document, so frames are evaluated in
// parallel and still come out deterministic.
package exporter

import (
	"context"
	"math"
	"os"

	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/keyframe"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/player"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
)

// ObjectSample is one object's evaluated values inside a baked frame.
type ObjectSample struct {
	ID     string          `yaml:"id"`
	Name   string          `yaml:"name"`
	Kind   scene.Kind      `yaml:"kind"`
	Values keyframe.Values `yaml:"values"`
	Weight float64         `yaml:"weight"`
}

// Frame is one baked timeline sample.
type Frame struct {
	Index   int            `yaml:"frame"`
	Time    float64        `yaml:"time"`
	Objects []ObjectSample `yaml:"objects"`
}

// Bake holds a full baked timeline.
type Bake struct {
	Version string  `yaml:"version"`
	FPS     int     `yaml:"fps"`
	End     float64 `yaml:"end"`
	Frames  []Frame `yaml:"frames"`
}

// Baker samples scenes frame by frame.
type Baker struct {
	FPS     int
	Workers int
	Limit   float64 // cap on the baked timeline length; 0 = full timeline
}

// Run evaluates every frame of the scene's timeline. Frames are sampled
// concurrently by a bounded worker pool; the result is ordered by frame
// index regardless of completion order.
func (b *Baker) Run(ctx context.Context, s *scene.Scene) (*Bake, error) {
	fps := b.FPS
	if fps <= 0 {
		fps = 30
	}
	end := s.End()
	if b.Limit > 0 && b.Limit < end {
		end = b.Limit
	}
	count := int(math.Ceil(end*float64(fps))) + 1

	bake := &Bake{
		Version: scene.Version,
		FPS:     fps,
		End:     end,
		Frames:  make([]Frame, count),
	}

	p := player.New(s)
	g, ctx := errgroup.WithContext(ctx)
	workers := b.Workers
	if workers <= 0 {
		workers = 1
	}
	g.SetLimit(workers)

	for i := 0; i < count; i++ {
		i := i
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			t := keyframe.RoundTime(float64(i) / float64(fps))
			bake.Frames[i] = sampleFrame(p, i, t)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return bake, nil
}

func sampleFrame(p *player.Player, index int, t float64) Frame {
	snap := p.At(t)
	frame := Frame{Index: index, Time: t}
	for _, st := range snap.Objects {
		sample := ObjectSample{
			ID:     st.ID,
			Name:   st.Name,
			Kind:   st.Kind,
			Values: st.Values,
			Weight: 1,
		}
		if st.Intro != nil {
			sample.Weight *= st.Intro.Weight
		}
		if st.Outro != nil {
			sample.Weight *= st.Outro.Weight
		}
		frame.Objects = append(frame.Objects, sample)
	}
	return frame
}

// Write serializes a bake to a YAML file.
func Write(b *Bake, path string) error {
	data, err := yaml.Marshal(b)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
