package game

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	errProfileCooldown = errors.New("capture on cooldown")
	errProfileBusy     = errors.New("already profiling")
)

// Profiler captures a CPU profile and an execution trace when the frame rate drops
type Profiler struct {
	mu              sync.Mutex
	isProfiling     bool
	lastCaptureTime time.Time
	captureCooldown time.Duration
	profilesDir     string
	captureDuration time.Duration

	// fps below minFPS after warmup triggers a capture
	minFPS  float64
	warmup  time.Duration
	started time.Time
}

// NewProfiler creates a profiler writing into dir. Captures trigger below minFPS.
func NewProfiler(dir string, minFPS float64) (*Profiler, error) {
	if err := os.MkdirAll(dir, 0755); err != nil {
		return nil, fmt.Errorf("create profiles dir: %w", err)
	}

	return &Profiler{
		captureCooldown: 10 * time.Second,
		profilesDir:     dir,
		captureDuration: 5 * time.Second,
		minFPS:          minFPS,
		warmup:          3 * time.Second,
		started:         time.Now(),
	}, nil
}

// ShouldCapture reports whether fps measured at now warrants a new capture
func (p *Profiler) ShouldCapture(fps float64, now time.Time) bool {
	p.mu.Lock()
	defer p.mu.Unlock()

	if fps >= p.minFPS || p.isProfiling {
		return false
	}
	if now.Sub(p.started) < p.warmup {
		return false
	}
	return p.lastCaptureTime.IsZero() || now.Sub(p.lastCaptureTime) >= p.captureCooldown
}

// CaptureProfile starts a background CPU profile and trace
func (p *Profiler) CaptureProfile(reason string) error {
	p.mu.Lock()
	defer p.mu.Unlock()

	if !p.lastCaptureTime.IsZero() && time.Since(p.lastCaptureTime) < p.captureCooldown {
		return fmt.Errorf("%w (last capture was %v ago)", errProfileCooldown, time.Since(p.lastCaptureTime))
	}
	if p.isProfiling {
		return errProfileBusy
	}

	p.isProfiling = true
	p.lastCaptureTime = time.Now()

	baseName := fmt.Sprintf("fps-drop-%s-%s", p.lastCaptureTime.Format("20060102-150405"), reason)

	go func() {
		defer func() {
			p.mu.Lock()
			p.isProfiling = false
			p.mu.Unlock()
		}()

		var wg sync.WaitGroup
		wg.Add(2)
		go func() {
			defer wg.Done()
			if err := p.captureCPUProfile(baseName); err != nil {
				fmt.Printf("Error capturing CPU profile: %v\n", err)
			}
		}()
		go func() {
			defer wg.Done()
			if err := p.captureTrace(baseName); err != nil {
				fmt.Printf("Error capturing trace: %v\n", err)
			}
		}()
		wg.Wait()

		p.analyzeProfile(baseName)
	}()

	return nil
}

func (p *Profiler) captureCPUProfile(baseName string) error {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	file, err := os.Create(profilePath)
	if err != nil {
		return fmt.Errorf("failed to create profile file: %w", err)
	}
	defer file.Close()

	if err := pprof.StartCPUProfile(file); err != nil {
		return fmt.Errorf("failed to start CPU profile: %w", err)
	}
	time.Sleep(p.captureDuration)
	pprof.StopCPUProfile()

	fmt.Printf("CPU profile saved to: %s\n", profilePath)
	return nil
}

func (p *Profiler) captureTrace(baseName string) error {
	tracePath := filepath.Join(p.profilesDir, baseName+".trace")

	file, err := os.Create(tracePath)
	if err != nil {
		return fmt.Errorf("failed to create trace file: %w", err)
	}
	defer file.Close()

	if err := trace.Start(file); err != nil {
		return fmt.Errorf("failed to start trace: %w", err)
	}
	time.Sleep(p.captureDuration)
	trace.Stop()

	fmt.Printf("Trace saved to: %s\n", tracePath)
	return nil
}

// analyzeProfile prints where the capture went and a memory summary
func (p *Profiler) analyzeProfile(baseName string) {
	profilePath := filepath.Join(p.profilesDir, baseName+".cpu.prof")

	info, err := os.Stat(profilePath)
	if err != nil {
		fmt.Printf("Warning: Could not analyze profile: %v\n", err)
		return
	}

	fmt.Printf("\n=== Performance Analysis: %s ===\n", baseName)
	fmt.Printf("Profile file: %s (%.2f KB)\n", profilePath, float64(info.Size())/1024)
	fmt.Printf("  go tool pprof -http=:8080 %s\n", profilePath)

	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	fmt.Printf("Memory: Alloc=%d KB Sys=%d KB NumGC=%d HeapObjects=%d\n",
		m.Alloc/1024, m.Sys/1024, m.NumGC, m.HeapObjects)
}

// IsProfiling returns whether a profile capture is currently in progress
func (p *Profiler) IsProfiling() bool {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.isProfiling
}
