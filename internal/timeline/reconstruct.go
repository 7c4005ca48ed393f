// Package timeline turns raw issue state history into normalized activity
// intervals and composes reconstructed past timelines with forecasts.
package timeline

import "github.com/Tubbz-alt/project-planning-for-you-track/internal/domain"

// ActivityState classifies one raw tracker event.
type ActivityState int

const (
	StateUnknown ActivityState = iota
	StateInactive
	StateActive
)

// StateEvent is one raw, possibly noisy event from an issue's history.
// Events must arrive in chronological order.
type StateEvent struct {
	TimeMs int64
	State  ActivityState
}

// transition marks the start of an active or inactive phase. The sequence
// strictly alternates and always begins with an active phase; transitions are
// working state private to this package.
type transition struct {
	timeMs int64
	active bool
}

// ReconstructOptions configures one reconstruction call.
type ReconstructOptions struct {
	// AssigneeID tags every produced activity; empty means unknown.
	AssigneeID string

	// MinDurationMs removes any active or inactive phase shorter than
	// this. When a short active phase follows a short inactive gap, the
	// gap is the one removed: ambiguity resolves toward "still active".
	MinDurationMs int64

	// EndMs closes a trailing active phase, typically "now" or the
	// issue's last update. domain.OpenEnded leaves it open instead.
	EndMs int64

	// ResolveUnknown maps an unknown event to active or inactive, given
	// the state the stream was in before the event. Nil resolves every
	// unknown to active.
	ResolveUnknown func(prev ActivityState) ActivityState
}

// Reconstruct denoises a chronological event stream into the minimal
// activity list for one issue. All produced activities have IsWaiting=false;
// waiting periods only exist on the forecast side of a plan.
func Reconstruct(events []StateEvent, opts ReconstructOptions) []domain.IssueActivity {
	ts := normalize(events, opts)

	var out []domain.IssueActivity
	for i, tr := range ts {
		if !tr.active {
			continue
		}
		end := domain.OpenEnded
		if i+1 < len(ts) {
			end = ts[i+1].timeMs
		}
		out = append(out, domain.IssueActivity{
			AssigneeID: opts.AssigneeID,
			StartMs:    tr.timeMs,
			EndMs:      end,
		})
	}
	return out
}

// normalize runs the online, bounded-lookback normalization: events are
// appended one at a time, and restoring the invariants (strictly increasing
// timestamps, alternating classification, no short phase) may retract the
// previous one or two transitions, never more and only at the tail.
func normalize(events []StateEvent, opts ReconstructOptions) []transition {
	var ts []transition

	stateAfter := func() ActivityState {
		if len(ts)%2 == 1 {
			return StateActive
		}
		return StateInactive
	}

	for _, ev := range events {
		s := ev.State
		if s == StateUnknown {
			if opts.ResolveUnknown != nil {
				s = opts.ResolveUnknown(stateAfter())
			}
			if s != StateInactive {
				s = StateActive
			}
		}
		if s == stateAfter() {
			continue
		}
		ts = push(ts, ev.TimeMs, opts.MinDurationMs)
	}

	// Synthetic closing transition. A trailing unknown state has already
	// resolved to active above. A pending short inactive gap still gets
	// removed here, but the final active phase may stay short.
	if len(ts)%2 == 1 && opts.EndMs != domain.OpenEnded {
		last := ts[len(ts)-1]
		switch {
		case opts.EndMs <= last.timeMs:
			ts = ts[:len(ts)-1]
		case pendingShortGap(ts, opts.MinDurationMs):
			ts = ts[:len(ts)-2]
			ts = append(ts, transition{timeMs: opts.EndMs, active: false})
		default:
			ts = append(ts, transition{timeMs: opts.EndMs, active: false})
		}
	}
	return ts
}

// push appends a state flip at timeMs, retracting at most the previous two
// transitions to keep the invariants.
//
// An inactive gap cannot be judged against the minimum duration until the
// event ending it arrives, so a short gap is appended anyway and the
// decision deferred: when the following active phase closes, a pending short
// gap is removed — regardless of whether that active phase is itself long
// (the two activities merge) or short (ambiguity resolves toward "still
// active"). A short active phase after a properly long gap is a noise blip
// and is dropped instead.
func push(ts []transition, timeMs, minDur int64) []transition {
	if len(ts) == 0 {
		return append(ts, transition{timeMs: timeMs, active: true})
	}

	last := ts[len(ts)-1]
	if !last.active {
		// Becoming active. A zero-length gap collapses immediately;
		// any other gap is kept and judged when the phase it starts
		// comes to an end.
		if timeMs <= last.timeMs {
			return ts[:len(ts)-1]
		}
		return append(ts, transition{timeMs: timeMs, active: true})
	}

	// Becoming inactive, closing the active phase [last, timeMs).
	if pendingShortGap(ts, minDur) {
		ts = ts[:len(ts)-2]
		return append(ts, transition{timeMs: timeMs, active: false})
	}
	if timeMs-last.timeMs < minDur || timeMs == last.timeMs {
		return ts[:len(ts)-1]
	}
	return append(ts, transition{timeMs: timeMs, active: false})
}

// pendingShortGap reports whether the tail of ts is an active transition
// whose preceding inactive gap was below the minimum duration.
func pendingShortGap(ts []transition, minDur int64) bool {
	n := len(ts)
	return n >= 2 && ts[n-1].active && ts[n-1].timeMs-ts[n-2].timeMs < minDur
}
