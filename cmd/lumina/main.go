package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"
	"time"

	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/config"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/exporter"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/player"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/scene"
	"github.com/shifatmasud/Lumina-Motion-v1-sub001/internal/system"
)

var buildVersion = "dev"

func main() {
	scenePtr := flag.String("scene", "", "Scene YAML to load (default: latest file in -scene-dir)")
	sceneDirPtr := flag.String("scene-dir", "scenes", "Directory scanned for scene files")
	bakePtr := flag.String("bake", "", "Baked timeline output path (default: auto-generated next to the scene)")
	fpsPtr := flag.Int("fps", 30, "Sampling frame rate")
	workersPtr := flag.Int("workers", runtime.NumCPU(), "Parallel frame samplers")
	initPtr := flag.Bool("init", false, "Write a sample scene into -scene-dir and exit")
	previewPtr := flag.Bool("preview", false, "Play the scene in real time instead of baking")
	loopPtr := flag.Bool("loop", false, "Loop playback in preview mode")
	durationPtr := flag.Float64("duration", 0, "Bake only the first N seconds (0 = full timeline)")
	statsPtr := flag.Bool("stats", false, "Print a performance report after baking")
	flag.Parse()

	cfg := &config.Config{
		ScenePath:    *scenePtr,
		SceneDir:     *sceneDirPtr,
		BakePath:     *bakePtr,
		FPS:          *fpsPtr,
		Workers:      *workersPtr,
		Duration:     *durationPtr,
		Loop:         *loopPtr,
		ShowStats:    *statsPtr,
		BuildVersion: buildVersion,
	}

	if *initPtr {
		os.MkdirAll(cfg.SceneDir, 0755)
		path := scene.GeneratePath(cfg.SceneDir)
		if err := scene.Write(scene.Sample(), path); err != nil {
			log.Fatalf("[-] Failed to write sample scene: %v", err)
		}
		fmt.Printf("[+++] Sample scene written: %s\n", path)
		return
	}

	scenePath := cfg.ScenePath
	if scenePath == "" {
		latest, err := scene.FindLatest(cfg.SceneDir)
		if err != nil {
			log.Fatalf("[-] Error: %v. Run with -init to create a sample scene.", err)
		}
		scenePath = latest
		fmt.Printf("[*] Selected scene: %s\n", scenePath)
	}

	doc, err := scene.Read(scenePath)
	if err != nil {
		log.Fatalf("[-] Failed to load scene: %v", err)
	}
	fmt.Printf("[*] Objects: %d | Timeline: %.2fs | FPS: %d\n", len(doc.Objects), doc.End(), cfg.FPS)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if *previewPtr {
		p := player.New(doc)
		p.Loop = cfg.Loop
		err := p.Run(ctx, cfg.FPS, func(snap player.Snapshot) {
			fmt.Printf("[>] t=%.3fs visible=%d\n", snap.Time, len(snap.Objects))
		})
		if err != nil && err != context.Canceled {
			log.Fatalf("[-] Preview failed: %v", err)
		}
		return
	}

	bakePath := cfg.BakePath
	if bakePath == "" {
		base := filepath.Base(scenePath)
		bakePath = filepath.Join(filepath.Dir(scenePath), "bake_"+base)
	}

	start := time.Now()
	baker := &exporter.Baker{FPS: cfg.FPS, Workers: cfg.Workers, Limit: cfg.Duration}
	bake, err := baker.Run(ctx, doc)
	if err != nil {
		log.Fatalf("[-] Bake failed: %v", err)
	}
	if err := exporter.Write(bake, bakePath); err != nil {
		log.Fatalf("[-] Failed to write bake: %v", err)
	}

	if cfg.ShowStats {
		system.PrintReport(cfg.BuildVersion, len(bake.Frames), time.Since(start))
	}
	fmt.Printf("[+++] Done! Baked %d frames: %s\n", len(bake.Frames), bakePath)
}
