package scheduler

import (
	"errors"

	"github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"
)

const (
	// DefaultMinutesPerRegularWeek is a 5-day, 8-hour work week.
	DefaultMinutesPerRegularWeek = 5 * 8 * 60

	// DefaultQuantumMs is one hour of regular work time.
	DefaultQuantumMs int64 = 60 * 60 * 1000

	// MinutesPerRealWeek is a full calendar week. One quantum of regular
	// work time spans quantum × (real week / regular week) of calendar time.
	MinutesPerRealWeek = 7 * 24 * 60
)

// Options configures the reduction of an issue forest to a scheduling
// instance and the translation of the solved schedule back to calendar time.
type Options struct {
	Contributors []domain.Contributor

	// MinutesPerRegularWeek is the length of a regular work week in
	// minutes. Zero means DefaultMinutesPerRegularWeek.
	MinutesPerRegularWeek int

	// QuantumMs is the resolution of the schedule in milliseconds of
	// regular work time. Zero means DefaultQuantumMs.
	QuantumMs int64

	// MinActivityDuration is the minimum length of a schedule fragment,
	// in quanta. Zero means 1.
	MinActivityDuration int64

	// PredictionStartMs anchors quantized time zero, in epoch milliseconds.
	PredictionStartMs int64
}

var (
	ErrNoContributors  = errors.New("scheduling requires at least one contributor")
	ErrInvalidQuantum  = errors.New("time quantum must be positive")
	ErrInvalidWeek     = errors.New("regular week minutes must be positive")
	ErrInvalidSpeed    = errors.New("contributor weekly minutes must be positive")
	ErrInvalidDuration = errors.New("minimum activity duration must be positive")
)

// WithDefaults returns a copy of o with zero-valued fields replaced by the
// documented defaults.
func (o Options) WithDefaults() Options {
	if o.MinutesPerRegularWeek == 0 {
		o.MinutesPerRegularWeek = DefaultMinutesPerRegularWeek
	}
	if o.QuantumMs == 0 {
		o.QuantumMs = DefaultQuantumMs
	}
	if o.MinActivityDuration == 0 {
		o.MinActivityDuration = 1
	}
	return o
}

// Validate checks o after defaults have been applied.
func (o Options) Validate() error {
	if len(o.Contributors) == 0 {
		return ErrNoContributors
	}
	if o.QuantumMs <= 0 {
		return ErrInvalidQuantum
	}
	if o.MinutesPerRegularWeek <= 0 {
		return ErrInvalidWeek
	}
	if o.MinActivityDuration <= 0 {
		return ErrInvalidDuration
	}
	for _, c := range o.Contributors {
		if c.MinutesPerWeek <= 0 {
			return ErrInvalidSpeed
		}
	}
	return nil
}
