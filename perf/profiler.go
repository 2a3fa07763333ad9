// Package perf records CPU profiles and execution traces when the game's
// frame rate drops.
package perf

import (
	"errors"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"runtime"
	"runtime/pprof"
	"runtime/trace"
	"sync"
	"time"
)

var (
	// ErrCooldown is returned when a capture ran too recently
	ErrCooldown = errors.New("perf: capture on cooldown")

	// ErrBusy is returned while a capture is still recording
	ErrBusy = errors.New("perf: capture in progress")
)

// Drop describes the game at the moment the frame rate fell
type Drop struct {
	At        time.Time
	FPS       float64
	Tick      uint64
	Batteries int
	Charge    float64
	VehicleX  float64
}

// Name is the file stem shared by every artefact of one capture
func (d Drop) Name() string {
	return fmt.Sprintf("drop-%s-tick%d-fps%.0f", d.At.Format("20060102-150405"), d.Tick, d.FPS)
}

func (d Drop) String() string {
	return fmt.Sprintf("tick %d at %.0f FPS: %d batteries placed, charge %.1f, vehicle x=%.0f",
		d.Tick, d.FPS, d.Batteries, d.Charge, d.VehicleX)
}

// Recorder writes a CPU profile, a trace and a summary for each Drop
type Recorder struct {
	dir      string
	window   time.Duration
	cooldown time.Duration

	mu       sync.Mutex
	busy     bool
	lastDrop time.Time
	wg       sync.WaitGroup
}

// NewRecorder creates dir and records window-long captures into it
func NewRecorder(dir string, window time.Duration) (*Recorder, error) {
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("profile dir: %w", err)
	}
	return &Recorder{dir: dir, window: window, cooldown: 10 * time.Second}, nil
}

// Capture starts recording d in the background
func (r *Recorder) Capture(d Drop) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if r.busy {
		return ErrBusy
	}
	if !r.lastDrop.IsZero() && d.At.Sub(r.lastDrop) < r.cooldown {
		return fmt.Errorf("%w: last capture %v ago", ErrCooldown, d.At.Sub(r.lastDrop).Round(time.Second))
	}
	r.busy = true
	r.lastDrop = d.At

	r.wg.Add(1)
	go r.record(d)
	return nil
}

func (r *Recorder) record(d Drop) {
	defer r.wg.Done()
	defer func() {
		r.mu.Lock()
		r.busy = false
		r.mu.Unlock()
	}()

	stem := filepath.Join(r.dir, d.Name())
	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		if err := r.recordCPU(stem + ".cpu.prof"); err != nil {
			log.Printf("cpu profile: %v", err)
		}
	}()
	go func() {
		defer wg.Done()
		if err := r.recordTrace(stem + ".trace"); err != nil {
			log.Printf("trace: %v", err)
		}
	}()
	wg.Wait()

	if err := r.writeSummary(stem+".txt", d); err != nil {
		log.Printf("profile summary: %v", err)
		return
	}
	log.Printf("frame drop at %s recorded, view with: go tool pprof -http=:8080 %s.cpu.prof", d, stem)
}

func (r *Recorder) recordCPU(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := pprof.StartCPUProfile(f); err != nil {
		return err
	}
	time.Sleep(r.window)
	pprof.StopCPUProfile()
	return nil
}

func (r *Recorder) recordTrace(path string) error {
	f, err := os.Create(path)
	if err != nil {
		return err
	}
	defer f.Close()

	if err := trace.Start(f); err != nil {
		return err
	}
	time.Sleep(r.window)
	trace.Stop()
	return nil
}

// writeSummary stores the drop and the heap right after the capture
func (r *Recorder) writeSummary(path string, d Drop) error {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	body := fmt.Sprintf("%s\nheap alloc %d KB, sys %d KB, objects %d\ngc runs %d, total pause %v\n",
		d, m.Alloc/1024, m.Sys/1024, m.HeapObjects, m.NumGC, time.Duration(m.PauseTotalNs))
	return os.WriteFile(path, []byte(body), 0o644)
}

// Busy reports whether a capture is still recording
func (r *Recorder) Busy() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.busy
}

// Wait blocks until every started capture has finished
func (r *Recorder) Wait() {
	r.wg.Wait()
}
