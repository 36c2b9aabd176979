package leave

import (
	"github.com/tempohr/tempo-backend-go/internal/domain/leave"
)

// effect is what a leave request does to the annual-leave balance in a given
// state: nothing, or an annual deduction of some number of calendar days.
// Only a request that is both annual and approved is effective.
type effect struct {
	annual bool
	days   int
}

func noEffect() effect { return effect{} }

func annualEffect(days int) effect { return effect{annual: true, days: days} }

// effectOf classifies a request's persisted state. For the prior side of a
// transition the memoized DaysDeducted is authoritative, so callers pass it
// explicitly rather than recounting the span.
func effectOf(typ leave.Type, status leave.Status, days int) effect {
	if typ == leave.TypeAnnual && status == leave.StatusApproved {
		return annualEffect(days)
	}
	return noEffect()
}

// balanceDelta is the signed balance adjustment for a transition between two
// effects. Positive credits days back, negative deducts.
//
//	none   -> none:      0
//	none   -> annual(d): -d
//	annual(p) -> none:   +p
//	annual(p) -> annual(d): p - d   (0 when unchanged)
func balanceDelta(oldEff, newEff effect) int {
	delta := 0
	if oldEff.annual {
		delta += oldEff.days
	}
	if newEff.annual {
		delta -= newEff.days
	}
	return delta
}

// Reconciliation is the outcome of applying a leave-request transition to an
// employee's annual-leave balance.
type Reconciliation struct {
	// DaysDeducted is the charge for the request's NEW state; it must be
	// persisted on the request so the next edit or delete reverses the
	// right amount.
	DaysDeducted int

	// Delta is the signed balance adjustment.
	Delta int

	// UpdatedBalance is the resulting balance.
	UpdatedBalance int
}

// reconcile computes the balance adjustment when a leave request moves from
// its prior persisted state (nil on create) to next (nil on delete).
// It fails with leave.ErrInsufficientLeaveBalance before anything is
// written when the adjustment would drive the balance negative.
func reconcile(prior *leave.LeaveRequest, next *leave.LeaveRequest, currentBalance int) (Reconciliation, error) {
	oldEff := noEffect()
	if prior != nil {
		oldEff = effectOf(prior.Type, prior.Status, prior.DaysDeducted)
	}

	newEff := noEffect()
	if next != nil {
		days := 0
		if next.Type == leave.TypeAnnual && next.Status == leave.StatusApproved {
			days = next.CalendarDays()
		}
		newEff = effectOf(next.Type, next.Status, days)
	}

	delta := balanceDelta(oldEff, newEff)
	updated := currentBalance + delta
	if updated < 0 {
		return Reconciliation{}, leave.ErrInsufficientLeaveBalance
	}

	return Reconciliation{
		DaysDeducted:   newEff.days,
		Delta:          delta,
		UpdatedBalance: updated,
	}, nil
}
