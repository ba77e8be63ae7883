package gui

import "github.com/sheikhrachel/go-life/utils"

// advancer decides on each frame whether the engine should step
type advancer struct {
	stepper  *utils.FixedStep
	auto     bool
	maxGens  uint64
	tickOnce bool
}

// requestStep queues a single manual step
func (a *advancer) requestStep() {
	a.tickOnce = true
}

func (a *advancer) toggleAuto() {
	a.auto = !a.auto
	a.stepper.Reset()
}

// shouldStep consumes a pending manual step or a due auto step. Once the
// generation limit is reached nothing stays queued.
func (a *advancer) shouldStep(generation uint64) bool {
	if a.maxGens > 0 && generation >= a.maxGens {
		a.tickOnce = false
		return false
	}
	if a.tickOnce || (a.auto && a.stepper.ShouldStep()) {
		a.tickOnce = false
		return true
	}
	return false
}
