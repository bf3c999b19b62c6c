// Package anim is the contract and implementation for the animation
// interpolator collaborator (§6): given a batch of window moves, it runs a
// fixed-duration ease-in-out position interpolation at a configured frame
// rate, bracketing each window with Begin/End animation requests. Size is
// jumped at the midpoint and confirmed at the end; only position is
// interpolated across frames. Unlike pkg/ax/pkg/osnotify/pkg/hotkey this
// package has no OS dependency — the interpolation math is pure — so it
// carries no build-tag split.
package anim

import (
	"context"
	"math"
	"time"
)

// Rect mirrors the other collaborator contracts' rectangle shape without
// importing them, keeping this package dependency-free.
type Rect struct {
	X, Y, W, H int
}

// Job is one window's animated move: its identity (the Driver's own key
// space — the reactor passes a window's WindowId.String()), its start and
// end rectangles, whether it is newly appearing this batch (§4.6: a new
// window jumps to its target size immediately rather than appearing to
// grow from zero), and the txid the reactor attached to the geometry
// request this animation is fulfilling.
type Job struct {
	Window  string
	From    Rect
	To      Rect
	IsNew   bool
	Txid    uint64
}

// Driver is the per-app worker surface an animation batch drives: Begin
// and End bracket the sequence (suppressing the worker's own move/resize
// notifications for the duration, per §4.5), SetPosition is called once
// per frame, SetSize only at the new-window jump, the midpoint, and the
// final frame.
type Driver interface {
	Begin(window string)
	SetPosition(window string, x, y int)
	SetSize(window string, w, h int)
	End(window string)
}

// Runner drives a batch of Jobs through a Driver at a fixed duration and
// frame rate.
type Runner struct {
	duration     time.Duration
	fps          int
	easeExponent float64
}

// NewRunner creates a Runner. A zero or negative fps defaults to 100 (§6:
// "~100 frames per second"); a zero or negative duration defaults to 300ms
// (§6: "~300 ms"); a zero or negative easeExponent defaults to 2 (a
// quadratic ease).
func NewRunner(duration time.Duration, fps int, easeExponent float64) *Runner {
	if fps <= 0 {
		fps = 100
	}
	if duration <= 0 {
		duration = 300 * time.Millisecond
	}
	if easeExponent <= 0 {
		easeExponent = 2
	}
	return &Runner{duration: duration, fps: fps, easeExponent: easeExponent}
}

// Run interpolates every job's position across the Runner's configured
// duration/fps, resizing new windows immediately, jumping every window's
// size at the midpoint and the end, then closes each bracket. It runs
// inline on the calling goroutine (§5's design note: "runs inline in the
// reactor turn that created it, so layout updates during an animation are
// serialized after it completes"). On ctx cancellation it skips straight
// to the final frame, placing every window at its target position and
// size, and still closes every bracket, so no window is left without a
// matching End.
func (r *Runner) Run(ctx context.Context, driver Driver, jobs []Job) int {
	if len(jobs) == 0 {
		return 0
	}

	for _, j := range jobs {
		driver.Begin(j.Window)
		if j.IsNew {
			driver.SetSize(j.Window, j.To.W, j.To.H)
		}
	}

	frameCount := int(r.duration * time.Duration(r.fps) / time.Second)
	if frameCount < 1 {
		frameCount = 1
	}
	midFrame := frameCount / 2
	interval := r.duration / time.Duration(frameCount)

	frames := 0
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for frame := 1; frame <= frameCount; frame++ {
		select {
		case <-ctx.Done():
			frame = frameCount // fall through to final frame below, then stop
		case <-ticker.C:
		}

		t := float64(frame) / float64(frameCount)
		eased := easeInOut(t, r.easeExponent)

		for _, j := range jobs {
			x := lerp(j.From.X, j.To.X, eased)
			y := lerp(j.From.Y, j.To.Y, eased)
			driver.SetPosition(j.Window, x, y)

			if frame == midFrame || frame == frameCount {
				driver.SetSize(j.Window, j.To.W, j.To.H)
			}
		}
		frames++

		if frame == frameCount {
			break
		}
	}

	for _, j := range jobs {
		driver.End(j.Window)
	}
	return frames
}

// RunSkipToEnd applies each job's final rectangle with no interpolation.
// Each window still gets four driver calls, not one: Begin, SetPosition to
// the target origin, SetSize to the target size, and End. Used when
// animations are disabled
// (headless runs, or a config opt-out; §9's supplemented "skip to end"
// mode from the original implementation).
func (r *Runner) RunSkipToEnd(driver Driver, jobs []Job) {
	for _, j := range jobs {
		driver.Begin(j.Window)
		driver.SetPosition(j.Window, j.To.X, j.To.Y)
		driver.SetSize(j.Window, j.To.W, j.To.H)
		driver.End(j.Window)
	}
}

func lerp(from, to int, t float64) int {
	return int(math.Round(float64(from) + (float64(to-from) * t)))
}

// easeInOut is a symmetric ease: the first half accelerates as tᵉ, the
// second half decelerates as the mirror image, matching a typical UI
// ease-in-out curve for any exponent ≥ 1.
func easeInOut(t, exponent float64) float64 {
	if t < 0.5 {
		return 0.5 * math.Pow(2*t, exponent)
	}
	return 1 - 0.5*math.Pow(2*(1-t), exponent)
}
