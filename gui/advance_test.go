package gui

import (
	"testing"
	"time"

	"github.com/sheikhrachel/go-life/utils"
)

func TestAdvancerManualStep(t *testing.T) {
	a := &advancer{stepper: utils.NewFixedStep(time.Second)}
	if a.shouldStep(0) {
		t.Fatal("stepped without a request")
	}
	a.requestStep()
	if !a.shouldStep(0) {
		t.Fatal("manual request ignored")
	}
	if a.shouldStep(1) {
		t.Fatal("manual request consumed twice")
	}
}

func TestAdvancerLimitClearsPendingStep(t *testing.T) {
	a := &advancer{stepper: utils.NewFixedStep(time.Second), maxGens: 2}
	a.requestStep()
	if a.shouldStep(2) {
		t.Fatal("stepped past the generation limit")
	}
	if a.tickOnce {
		t.Fatal("request still queued at the generation limit")
	}
	// raising the limit must not replay the old request
	a.maxGens = 0
	if a.shouldStep(2) {
		t.Fatal("stale request replayed")
	}
}

func TestAdvancerToggleAuto(t *testing.T) {
	a := &advancer{stepper: utils.NewFixedStep(utils.MinAutoProgressionTime)}
	a.toggleAuto()
	if !a.auto {
		t.Fatal("auto not enabled")
	}
	a.shouldStep(0)
	time.Sleep(3 * utils.MinAutoProgressionTime)
	if !a.shouldStep(0) {
		t.Fatal("auto step not due after period elapsed")
	}
	a.toggleAuto()
	time.Sleep(3 * utils.MinAutoProgressionTime)
	if a.shouldStep(0) {
		t.Fatal("stepped with auto disabled")
	}
}
