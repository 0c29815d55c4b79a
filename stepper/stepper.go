// Package stepper tracks a current step within [1, steps].
package stepper

import (
	"math"
)

// Stepper is a bounded one-indexed position.
type Stepper struct {
	step  int
	steps int
}

// New creates a stepper at initial, or at 1 when initial is out of range.
func New(steps, initial int) *Stepper {

	stp := &Stepper{steps: steps, step: 1}
	if initial >= 1 && initial <= steps {
		stp.step = initial
	}
	return stp
}

// Step returns the current step.
func (stp *Stepper) Step() int {
	return stp.step
}

// Steps returns the number of steps.
func (stp *Stepper) Steps() int {
	return stp.steps
}

// SetSteps changes the number of steps, pulling the current step back
// into range.
func (stp *Stepper) SetSteps(steps int) {

	stp.steps = steps
	if stp.step > steps {
		stp.step = max(steps, 1)
	}
}

// CanGoForwards reports whether a next step exists.
func (stp *Stepper) CanGoForwards() bool {
	return stp.step < stp.steps
}

// CanGoBackwards reports whether a previous step exists.
func (stp *Stepper) CanGoBackwards() bool {
	return stp.step > 1
}

// PercentComplete returns the share of steps before the current one,
// floored to decimals places.
func (stp *Stepper) PercentComplete(decimals int) float64 {

	if stp.steps <= 0 {
		return 0
	}

	scale := math.Pow(10, float64(max(decimals, 0)))
	pct := float64(stp.step-1) / float64(stp.steps) * 100
	return math.Floor(pct*scale) / scale
}

// Next advances one step if possible.
func (stp *Stepper) Next() {
	if stp.CanGoForwards() {
		stp.step++
	}
}

// Previous goes back one step if possible.
func (stp *Stepper) Previous() {
	if stp.CanGoBackwards() {
		stp.step--
	}
}

// GoTo moves to step, ignoring steps out of range.
func (stp *Stepper) GoTo(step int) {
	if step >= 1 && step <= stp.steps {
		stp.step = step
	}
}
