package models

import "testing"

func confirmationsWith(statuses ...ConfirmationStatus) []Confirmation {
	out := make([]Confirmation, len(statuses))
	for i, s := range statuses {
		out[i] = Confirmation{ID: int64(i + 1), Status: s}
	}
	return out
}

func TestCountStatusesSumsToTotal(t *testing.T) {
	tests := []struct {
		name     string
		statuses []ConfirmationStatus
		want     StatusCounts
	}{
		{
			name:     "empty set",
			statuses: nil,
			want:     StatusCounts{},
		},
		{
			name:     "all pending",
			statuses: []ConfirmationStatus{StatusPending, StatusPending, StatusPending},
			want:     StatusCounts{Total: 3, Pending: 3},
		},
		{
			name: "mixed statuses",
			statuses: []ConfirmationStatus{
				StatusPending, StatusApproved, StatusApproved,
				StatusRejected, StatusCompleted,
			},
			want: StatusCounts{Total: 5, Pending: 1, Approved: 2, Rejected: 1, Completed: 1},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := CountStatuses(confirmationsWith(tt.statuses...))
			if got != tt.want {
				t.Errorf("CountStatuses() = %+v, want %+v", got, tt.want)
			}
			if sum := got.Pending + got.Approved + got.Rejected + got.Completed; sum != got.Total {
				t.Errorf("per-status counts sum to %d, total is %d", sum, got.Total)
			}
		})
	}
}

func TestCountStatusesIsStable(t *testing.T) {
	confirmations := confirmationsWith(StatusPending, StatusApproved, StatusCompleted)

	first := CountStatuses(confirmations)
	second := CountStatuses(confirmations)
	if first != second {
		t.Errorf("recounting the same set changed the result: %+v then %+v", first, second)
	}
}

func TestMergeAcrossClasses(t *testing.T) {
	// Two classes in one event: counts are merged from per-class grouped
	// counts and the rates follow the merged totals.
	classA := CountStatuses(confirmationsWith(StatusApproved, StatusApproved, StatusPending))
	classB := CountStatuses(confirmationsWith(StatusRejected, StatusCompleted))

	event := classA.Merge(classB)

	want := StatusCounts{Total: 5, Pending: 1, Approved: 2, Rejected: 1, Completed: 1}
	if event != want {
		t.Fatalf("merged counts = %+v, want %+v", event, want)
	}
	if got := event.CompletionRate(); got != 20 {
		t.Errorf("CompletionRate() = %v, want 20", got)
	}
	if got := event.ApprovalRate(); got != 40 {
		t.Errorf("ApprovalRate() = %v, want 40", got)
	}
}

func TestMergeWithZeroIsIdentity(t *testing.T) {
	c := StatusCounts{Total: 4, Pending: 1, Approved: 2, Completed: 1}
	if got := c.Merge(StatusCounts{}); got != c {
		t.Errorf("Merge(zero) = %+v, want %+v", got, c)
	}
}

func TestRatesOnEmptySet(t *testing.T) {
	var c StatusCounts
	if got := c.ApprovalRate(); got != 0 {
		t.Errorf("ApprovalRate() on empty set = %v, want 0", got)
	}
	if got := c.CompletionRate(); got != 0 {
		t.Errorf("CompletionRate() on empty set = %v, want 0", got)
	}
}

func TestBadge(t *testing.T) {
	tests := []struct {
		name   string
		counts StatusCounts
		want   StatusBadge
	}{
		{
			name:   "high completion wins",
			counts: StatusCounts{Total: 5, Completed: 4, Approved: 1},
			want:   BadgeWellCompleted,
		},
		{
			name:   "completion exactly at cutoff",
			counts: StatusCounts{Total: 5, Completed: 4, Pending: 1},
			want:   BadgeWellCompleted,
		},
		{
			name:   "approval at cutoff without completion",
			counts: StatusCounts{Total: 10, Approved: 7, Pending: 3},
			want:   BadgeInProgress,
		},
		{
			name:   "mostly unanswered",
			counts: StatusCounts{Total: 10, Pending: 6, Approved: 2, Rejected: 2},
			want:   BadgeAwaitingResponse,
		},
		{
			name:   "heavily rejected",
			counts: StatusCounts{Total: 10, Rejected: 6, Pending: 2, Approved: 2},
			want:   BadgeNeedsReview,
		},
		{
			name:   "empty set needs review",
			counts: StatusCounts{},
			want:   BadgeNeedsReview,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.counts.Badge(); got != tt.want {
				t.Errorf("Badge() = %q, want %q", got, tt.want)
			}
		})
	}
}
