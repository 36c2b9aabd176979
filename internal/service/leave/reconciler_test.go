package leave

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tempohr/tempo-backend-go/internal/domain/leave"
)

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func request(typ leave.Type, status leave.Status, start, end string, daysDeducted int) *leave.LeaveRequest {
	return &leave.LeaveRequest{
		Type:         typ,
		Status:       status,
		StartDate:    date(start),
		EndDate:      date(end),
		DaysDeducted: daysDeducted,
	}
}

func TestCalendarDays(t *testing.T) {
	cases := []struct {
		start, end string
		want       int
	}{
		{"2025-03-10", "2025-03-10", 1},
		{"2025-03-10", "2025-03-14", 5},
		{"2025-02-27", "2025-03-02", 4},  // month boundary
		{"2025-12-30", "2026-01-02", 4},  // year boundary
		{"2024-02-28", "2024-03-01", 3},  // leap day
		{"2025-03-14", "2025-03-10", 0},  // inverted range
	}
	for _, c := range cases {
		got := leave.CalendarDays(date(c.start), date(c.end))
		assert.Equal(t, c.want, got, "CalendarDays(%s, %s)", c.start, c.end)
	}
}

// Every row of the transition table, including both degenerate prior states
// (create) and degenerate next states (delete).
func TestReconcile_TransitionTable(t *testing.T) {
	cases := []struct {
		name             string
		prior            *leave.LeaveRequest
		next             *leave.LeaveRequest
		balance          int
		wantDelta        int
		wantDays         int
		wantBalance      int
	}{
		{
			name:        "create non-effective",
			prior:       nil,
			next:        request(leave.TypeSick, leave.StatusApproved, "2025-03-10", "2025-03-12", 0),
			balance:     20,
			wantDelta:   0,
			wantDays:    0,
			wantBalance: 20,
		},
		{
			name:        "create approved annual deducts span",
			prior:       nil,
			next:        request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 0),
			balance:     20,
			wantDelta:   -5,
			wantDays:    5,
			wantBalance: 15,
		},
		{
			name:        "create submitted annual is not effective",
			prior:       nil,
			next:        request(leave.TypeAnnual, leave.StatusSubmitted, "2025-03-10", "2025-03-14", 0),
			balance:     20,
			wantDelta:   0,
			wantDays:    0,
			wantBalance: 20,
		},
		{
			name:        "non-effective to non-effective",
			prior:       request(leave.TypeSick, leave.StatusApproved, "2025-03-10", "2025-03-12", 0),
			next:        request(leave.TypeSick, leave.StatusRejected, "2025-03-10", "2025-03-12", 0),
			balance:     20,
			wantDelta:   0,
			wantDays:    0,
			wantBalance: 20,
		},
		{
			name:        "approval of pending annual deducts",
			prior:       request(leave.TypeAnnual, leave.StatusSubmitted, "2025-03-10", "2025-03-12", 0),
			next:        request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-12", 0),
			balance:     20,
			wantDelta:   -3,
			wantDays:    3,
			wantBalance: 17,
		},
		{
			name:        "rejection of approved annual credits back memo",
			prior:       request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			next:        request(leave.TypeAnnual, leave.StatusRejected, "2025-03-10", "2025-03-14", 5),
			balance:     15,
			wantDelta:   +5,
			wantDays:    0,
			wantBalance: 20,
		},
		{
			name:        "type change away from annual credits back memo",
			prior:       request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			next:        request(leave.TypeUnpaid, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			balance:     15,
			wantDelta:   +5,
			wantDays:    0,
			wantBalance: 20,
		},
		{
			name:        "approved annual with unchanged dates is idempotent",
			prior:       request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			next:        request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			balance:     15,
			wantDelta:   0,
			wantDays:    5,
			wantBalance: 15,
		},
		{
			name:        "approved annual extended pays only the difference",
			prior:       request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			next:        request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-16", 5),
			balance:     15,
			wantDelta:   -2,
			wantDays:    7,
			wantBalance: 13,
		},
		{
			name:        "approved annual shortened credits the difference",
			prior:       request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			next:        request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-11", 5),
			balance:     15,
			wantDelta:   +3,
			wantDays:    2,
			wantBalance: 18,
		},
		{
			name:        "delete approved annual credits back memo",
			prior:       request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 5),
			next:        nil,
			balance:     15,
			wantDelta:   +5,
			wantDays:    0,
			wantBalance: 20,
		},
		{
			name:        "delete non-effective request is a no-op",
			prior:       request(leave.TypeSick, leave.StatusApproved, "2025-03-10", "2025-03-14", 0),
			next:        nil,
			balance:     15,
			wantDelta:   0,
			wantDays:    0,
			wantBalance: 15,
		},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			rec, err := reconcile(c.prior, c.next, c.balance)
			require.NoError(t, err)
			assert.Equal(t, c.wantDelta, rec.Delta, "delta")
			assert.Equal(t, c.wantDays, rec.DaysDeducted, "days deducted")
			assert.Equal(t, c.wantBalance, rec.UpdatedBalance, "updated balance")
		})
	}
}

func TestReconcile_InsufficientBalance(t *testing.T) {
	next := request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-12", 0)

	_, err := reconcile(nil, next, 2)
	assert.ErrorIs(t, err, leave.ErrInsufficientLeaveBalance)
}

func TestReconcile_ExactBalanceIsAllowed(t *testing.T) {
	next := request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-12", 0)

	rec, err := reconcile(nil, next, 3)
	require.NoError(t, err)
	assert.Equal(t, 0, rec.UpdatedBalance)
}

// Round-trip: approve an annual request, then reject it; the balance and the
// memoized deduction both return to their starting point.
func TestReconcile_RoundTrip(t *testing.T) {
	created := request(leave.TypeAnnual, leave.StatusApproved, "2025-06-02", "2025-06-06", 0)

	rec, err := reconcile(nil, created, 20)
	require.NoError(t, err)
	assert.Equal(t, 15, rec.UpdatedBalance)
	assert.Equal(t, 5, rec.DaysDeducted)

	created.DaysDeducted = rec.DaysDeducted
	rejected := *created
	rejected.Status = leave.StatusRejected

	rec2, err := reconcile(created, &rejected, rec.UpdatedBalance)
	require.NoError(t, err)
	assert.Equal(t, 20, rec2.UpdatedBalance)
	assert.Equal(t, 0, rec2.DaysDeducted)
}

// The memo field is authoritative for reversal: even if the stored dates
// would count differently today, the prior effect reverses DaysDeducted.
func TestReconcile_MemoDrivesReversal(t *testing.T) {
	prior := request(leave.TypeAnnual, leave.StatusApproved, "2025-03-10", "2025-03-14", 4)
	next := request(leave.TypeAnnual, leave.StatusCancelled, "2025-03-10", "2025-03-14", 4)

	rec, err := reconcile(prior, next, 10)
	require.NoError(t, err)
	assert.Equal(t, +4, rec.Delta)
	assert.Equal(t, 14, rec.UpdatedBalance)
}
