package model

import "time"

// Attention classifies how urgently a job needs action, derived from its
// interview and follow-up dates relative to now. It is presentation-only state
// and is never persisted.
type Attention int

const (
	AttentionNormal Attention = iota
	AttentionSoon
	AttentionUrgent
)

func (a Attention) String() string {
	switch a {
	case AttentionUrgent:
		return "urgent"
	case AttentionSoon:
		return "soon"
	default:
		return "normal"
	}
}

// JobAttention computes the attention level for a job at the given instant.
//
// Urgent: the next follow-up date is strictly before today.
// Soon: the interview is within the next 7 days, or the follow-up within 3.
// Unparsable dates count as "no date set" and never raise attention.
func JobAttention(j Job, now time.Time) Attention {
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC)

	if d, ok := ParseDay(j.NextFollowup); ok {
		if d.Before(today) {
			return AttentionUrgent
		}
		if !d.After(today.AddDate(0, 0, 3)) {
			return AttentionSoon
		}
	}
	if d, ok := ParseDay(j.InterviewDate); ok {
		if !d.Before(today) && !d.After(today.AddDate(0, 0, 7)) {
			return AttentionSoon
		}
	}
	return AttentionNormal
}
