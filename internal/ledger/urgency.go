package ledger

import "time"

// Urgency classifies how close an outstanding disbursement is to its
// due date. The bands mirror the review thresholds used on the
// deadline board: 5, 10 and 21 days.
type Urgency string

const (
	UrgencyOverdue  Urgency = "overdue"
	UrgencyCritical Urgency = "critical" // 0-5 days left
	UrgencyWarning  Urgency = "warning"  // 6-10 days left
	UrgencyOK       Urgency = "ok"       // 11-21 days left
	UrgencyDistant  Urgency = "distant"  // beyond the grace window
)

// DaysRemaining counts whole calendar days from asOf to due. Negative
// means the deadline has passed.
func DaysRemaining(due, asOf time.Time) int {
	d := midnight(due).Sub(midnight(asOf))
	return int(d.Hours() / 24)
}

// ClassifyUrgency maps a days-remaining count onto its band.
func ClassifyUrgency(daysLeft int) Urgency {
	switch {
	case daysLeft < 0:
		return UrgencyOverdue
	case daysLeft <= 5:
		return UrgencyCritical
	case daysLeft <= 10:
		return UrgencyWarning
	case daysLeft <= 21:
		return UrgencyOK
	default:
		return UrgencyDistant
	}
}

func midnight(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
