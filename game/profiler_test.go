package game

import (
	"testing"
	"time"
)

func TestProfilerShouldCapture(t *testing.T) {
	p, err := NewProfiler(t.TempDir(), 45)
	if err != nil {
		t.Fatalf("NewProfiler: %v", err)
	}
	start := p.started

	if p.ShouldCapture(20, start.Add(time.Second)) {
		t.Error("captured during warmup")
	}
	if p.ShouldCapture(60, start.Add(5*time.Second)) {
		t.Error("captured at a healthy frame rate")
	}
	if !p.ShouldCapture(20, start.Add(5*time.Second)) {
		t.Error("no capture on a drop after warmup")
	}

	p.lastCaptureTime = start.Add(5 * time.Second)
	if p.ShouldCapture(20, start.Add(8*time.Second)) {
		t.Error("captured during cooldown")
	}
	if !p.ShouldCapture(20, start.Add(16*time.Second)) {
		t.Error("no capture once the cooldown expired")
	}
}
