// frame_timer.go - Frames-per-second and milliseconds-per-frame sampling

/*
(c) 2024 - 2026 Zayn Otley
License: GPLv3 or later
*/

package glasspane

import "time"

// FrameTimer counts frames and converts the count into FPS and MS once every
// sampling window. The figures only change at window boundaries.
type FrameTimer struct {
	window      time.Duration
	frames      int
	windowStart time.Time
	fps         int
	ms          int
}

func NewFrameTimer(now time.Time) *FrameTimer {
	return &FrameTimer{window: time.Second, windowStart: now}
}

// Reset starts a fresh window at now and clears the published figures.
func (ft *FrameTimer) Reset(now time.Time) {
	ft.frames = 0
	ft.windowStart = now
	ft.fps = 0
	ft.ms = 0
}

// Tick records one frame. It reports whether the window closed and the figures
// were republished.
func (ft *FrameTimer) Tick(now time.Time) bool {
	ft.frames++
	elapsed := now.Sub(ft.windowStart)
	if elapsed < ft.window {
		return false
	}
	ft.ms = 1000 / ft.frames
	ft.fps = int(float64(ft.frames) / elapsed.Seconds())
	ft.windowStart = now
	ft.frames = 0
	return true
}

func (ft *FrameTimer) FPS() int {
	return ft.fps
}

func (ft *FrameTimer) MS() int {
	return ft.ms
}
