package ui

import (
	"sync"
	"time"

	"fyne.io/fyne/v2"
)

// AnimationScheduler drives transition stages through the toolkit's
// animation clock. The stage's target values are committed up front; the
// completion callback fires once the stage's animation window has elapsed,
// which is what keeps stages strictly ordered.
type AnimationScheduler struct {
	duration time.Duration
}

// NewAnimationScheduler creates a scheduler with the standard stage duration.
func NewAnimationScheduler() *AnimationScheduler {
	return &AnimationScheduler{duration: StageDuration}
}

// Schedule runs the stage work and signals completion at the end of the
// animation tick that reaches 1.0. The guard makes sure done fires exactly
// once even if the driver repeats the final tick.
func (s *AnimationScheduler) Schedule(name string, work func(), done func()) {
	work()

	var once sync.Once
	anim := fyne.NewAnimation(s.duration, func(f float32) {
		if f >= 1 {
			once.Do(done)
		}
	})
	anim.Curve = fyne.AnimationEaseInOut
	anim.Start()
}
