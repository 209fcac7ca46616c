// Package system reports process and host figures for the baking
// performance report.
package system

import (
	"fmt"
	"os"
	"time"

	"github.com/shirou/gopsutil/v3/cpu"
	"github.com/shirou/gopsutil/v3/mem"
	"github.com/shirou/gopsutil/v3/process"
)

// Stats is a point-in-time snapshot of the resources the run consumed.
type Stats struct {
	ProcessRSS  uint64  // resident memory of this process, bytes
	HostUsedPct float64 // host memory in use, percent
	CPUCount    int
}

// Collect gathers process and host stats. Failures of individual probes
// leave their field zero; stats are informational only.
func Collect() Stats {
	var st Stats
	if p, err := process.NewProcess(int32(os.Getpid())); err == nil {
		if info, err := p.MemoryInfo(); err == nil && info != nil {
			st.ProcessRSS = info.RSS
		}
	}
	if vm, err := mem.VirtualMemory(); err == nil {
		st.HostUsedPct = vm.UsedPercent
	}
	if n, err := cpu.Counts(true); err == nil {
		st.CPUCount = n
	}
	return st
}

// PrintReport writes the performance summary of a bake run.
func PrintReport(build string, frames int, elapsed time.Duration) {
	st := Collect()
	effFPS := 0.0
	if elapsed > 0 {
		effFPS = float64(frames) / elapsed.Seconds()
	}
	fmt.Printf(
		"--- [PERFORMANCE REPORT] ---\n"+
			"Build: %s\n"+
			"Frames: %d\n"+
			"Total Time: %.2fs\n"+
			"Effective FPS: %.2f\n"+
			"Process RSS: %.1f MB\n"+
			"Host Memory Used: %.1f%%\n"+
			"Logical CPUs: %d\n"+
			"----------------------------\n",
		build, frames, elapsed.Seconds(), effFPS,
		float64(st.ProcessRSS)/(1024*1024), st.HostUsedPct, st.CPUCount,
	)
}
