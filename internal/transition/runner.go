package transition

import (
	"log/slog"
	"sync"
)

// Scheduler hands pipeline stages to the animation layer. Schedule runs work
// as one discrete unit and must invoke done only after the stage's scheduled
// visual changes (opacity/size interpolation included) have been fully
// committed. The pipeline relies on that callback for its ordering
// guarantee.
type Scheduler interface {
	Schedule(name string, work func(), done func())
}

// ImmediateScheduler runs each stage synchronously with no animation. Used
// for the initial layout and in tests.
type ImmediateScheduler struct{}

// Schedule runs work and completes immediately.
func (ImmediateScheduler) Schedule(name string, work func(), done func()) {
	work()
	done()
}

// Runner owns the transition queue of one window. All construction and all
// stage execution happen on the window's UI-affinity goroutine; a transition
// requested while another is in flight is queued behind it, never
// interleaved.
type Runner struct {
	sched  Scheduler
	host   Host
	logger *slog.Logger

	mu      sync.Mutex
	queue   []*Transition
	running bool
}

// NewRunner creates a runner driving stages through the given scheduler.
// A nil logger falls back to slog.Default().
func NewRunner(sched Scheduler, host Host, logger *slog.Logger) *Runner {
	if logger == nil {
		logger = slog.Default()
	}
	return &Runner{sched: sched, host: host, logger: logger}
}

// SetOnTop records the window's on-top flag for the post-transition stage.
func (r *Runner) SetOnTop(onTop bool) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.host.OnTop = onTop
}

// Enqueue submits a transition. It starts immediately when idle and is
// queued behind the in-flight transition otherwise.
func (r *Runner) Enqueue(t *Transition) {
	r.mu.Lock()
	if r.running {
		r.queue = append(r.queue, t)
		r.mu.Unlock()
		r.logger.Debug("transition queued", "name", t.Name)
		return
	}
	r.running = true
	host := r.host
	r.mu.Unlock()

	r.start(t, host)
}

// InFlight reports whether a transition is currently running.
func (r *Runner) InFlight() bool {
	r.mu.Lock()
	defer r.mu.Unlock()
	return r.running
}

func (r *Runner) start(t *Transition, host Host) {
	stages := BuildPipeline(t, host)
	names := make([]string, len(stages))
	for i, s := range stages {
		names[i] = s.ID.String()
	}
	r.logger.Debug("transition starting", "name", t.Name, "stages", names)
	r.advance(t, stages, 0)
}

func (r *Runner) advance(t *Transition, stages []Stage, idx int) {
	if idx >= len(stages) {
		r.finish(t)
		return
	}
	stage := stages[idx]
	r.sched.Schedule(t.Name+"/"+stage.ID.String(), stage.Run, func() {
		r.advance(t, stages, idx+1)
	})
}

func (r *Runner) finish(t *Transition) {
	r.logger.Debug("transition finished", "name", t.Name)

	r.mu.Lock()
	if len(r.queue) == 0 {
		r.running = false
		r.mu.Unlock()
		return
	}
	next := r.queue[0]
	r.queue = r.queue[1:]
	host := r.host
	r.mu.Unlock()

	r.start(next, host)
}
