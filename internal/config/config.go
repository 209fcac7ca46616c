package config

// Config carries one CLI run's settings.
type Config struct {
	ScenePath    string  // scene document to load; empty = latest in SceneDir
	SceneDir     string  // directory scanned for scene files
	BakePath     string  // baked timeline output path
	FPS          int     // sampling/playback frame rate
	Workers      int     // parallel frame samplers
	Duration     float64 // 0 = bake the full timeline
	Loop         bool    // loop playback in preview mode
	ShowStats    bool    // print the performance report
	BuildVersion string
}
