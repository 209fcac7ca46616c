package scene

import (
	"fmt"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"time"
)

// GeneratePath creates a timestamped scene filename inside dir.
func GeneratePath(dir string) string {
	timestamp := time.Now().Format("2006-01-02_15-04-05")
	return filepath.Join(dir, fmt.Sprintf("scene_%s.yaml", timestamp))
}

// FindLatest returns the most recently modified scene file in dir.
func FindLatest(dir string) (string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return "", fmt.Errorf("failed to read scenes directory: %w", err)
	}

	var scenes []string
	for _, entry := range entries {
		name := strings.ToLower(entry.Name())
		if !entry.IsDir() && (strings.HasSuffix(name, ".yaml") || strings.HasSuffix(name, ".yml")) {
			scenes = append(scenes, filepath.Join(dir, entry.Name()))
		}
	}
	if len(scenes) == 0 {
		return "", fmt.Errorf("no scene files found in %s", dir)
	}

	sort.Slice(scenes, func(i, j int) bool {
		infoI, _ := os.Stat(scenes[i])
		infoJ, _ := os.Stat(scenes[j])
		return infoI.ModTime().After(infoJ.ModTime())
	})
	return scenes[0], nil
}
