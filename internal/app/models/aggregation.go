package models

// StatusCounts holds the derived per-status totals over a set of
// confirmations. Counts are always recomputed from the underlying records,
// never stored or incrementally mutated.
type StatusCounts struct {
	Total     int `json:"totalStudents"`
	Pending   int `json:"pendingCount"`
	Approved  int `json:"approvedCount"`
	Rejected  int `json:"rejectedCount"`
	Completed int `json:"completedCount"`
}

// CountStatuses computes status counts over a confirmation set in one pass
func CountStatuses(confirmations []Confirmation) StatusCounts {
	var c StatusCounts
	for i := range confirmations {
		c.Total++
		switch confirmations[i].Status {
		case StatusPending:
			c.Pending++
		case StatusApproved:
			c.Approved++
		case StatusRejected:
			c.Rejected++
		case StatusCompleted:
			c.Completed++
		}
	}
	return c
}

// Merge returns the element-wise sum of two count sets
func (c StatusCounts) Merge(other StatusCounts) StatusCounts {
	return StatusCounts{
		Total:     c.Total + other.Total,
		Pending:   c.Pending + other.Pending,
		Approved:  c.Approved + other.Approved,
		Rejected:  c.Rejected + other.Rejected,
		Completed: c.Completed + other.Completed,
	}
}

// ApprovalRate is the percentage of approved confirmations, 0 for an empty set
func (c StatusCounts) ApprovalRate() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Approved) / float64(c.Total) * 100
}

// CompletionRate is the percentage of completed confirmations, 0 for an empty set
func (c StatusCounts) CompletionRate() float64 {
	if c.Total == 0 {
		return 0
	}
	return float64(c.Completed) / float64(c.Total) * 100
}

// StatusBadge buckets the continuous rates into a discrete severity for display
type StatusBadge string

const (
	BadgeWellCompleted    StatusBadge = "well_completed"
	BadgeInProgress       StatusBadge = "in_progress"
	BadgeAwaitingResponse StatusBadge = "awaiting_response"
	BadgeNeedsReview      StatusBadge = "needs_review"
)

// Badge threshold cutoffs. The 70% approval cutoff is the canonical value.
const (
	badgeCompletionCutoff = 80
	badgeApprovalCutoff   = 70
)

// Badge derives the display badge from the counts. Every view shares this
// single derivation.
func (c StatusCounts) Badge() StatusBadge {
	switch {
	case c.CompletionRate() >= badgeCompletionCutoff:
		return BadgeWellCompleted
	case c.ApprovalRate() >= badgeApprovalCutoff:
		return BadgeInProgress
	case c.Pending > c.Approved+c.Rejected+c.Completed:
		return BadgeAwaitingResponse
	default:
		return BadgeNeedsReview
	}
}
