package model

import "time"

// Status is the lifecycle stage of a job application. The declaration order is
// the cycle order for manual status changes and the order statuses are listed
// in pickers and statistics.
type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
	StatusWithdrawn Status = "Withdrawn"
)

// StatusOptions returns the statuses in cycle order.
func StatusOptions() []Status {
	return []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn}
}

// ParseStatus normalizes a stored status string. Unknown or empty values map
// to Applied so a half-edited file never produces an out-of-enum status.
func ParseStatus(s string) Status {
	switch Status(s) {
	case StatusApplied, StatusInterview, StatusOffer, StatusRejected, StatusWithdrawn:
		return Status(s)
	default:
		return StatusApplied
	}
}

// Next cycles to the following status, wrapping after Withdrawn.
func (s Status) Next() Status {
	opts := StatusOptions()
	for i, o := range opts {
		if o == s {
			return opts[(i+1)%len(opts)]
		}
	}
	return opts[0]
}

// Priority orders statuses for the status+date sort mode. Lower sorts first.
// Unknown statuses sink to the bottom.
func (s Status) Priority() int {
	switch s {
	case StatusInterview:
		return 1
	case StatusApplied:
		return 2
	case StatusOffer:
		return 3
	case StatusRejected:
		return 4
	case StatusWithdrawn:
		return 5
	default:
		return 999
	}
}

// Emoji is the list badge for a status.
func (s Status) Emoji() string {
	switch s {
	case StatusInterview:
		return "🎯"
	case StatusOffer:
		return "✅"
	case StatusRejected:
		return "❌"
	case StatusWithdrawn:
		return "🚫"
	default:
		return "📋"
	}
}

// Job is one tracked application. All date fields are plain YYYY-MM-DD strings
// as entered by the user; parsing happens only at sort/attention time so a bad
// date never blocks loading or editing.
//
// ID is a session-scoped identity assigned by the store. It is never persisted:
// two jobs with identical fields are still distinct records, and selection and
// focus track IDs rather than list positions.
type Job struct {
	ID int64 `json:"-"`

	Company     string `json:"company"`
	Position    string `json:"position"`
	DateApplied string `json:"date_applied"`
	Status      Status `json:"status"`
	Link        string `json:"link"`
	Notes       string `json:"notes"`

	InterviewDate string `json:"interview_date"`
	InterviewTime string `json:"interview_time"`
	InterviewType string `json:"interview_type"`

	LastContact  string `json:"last_contact"`
	NextFollowup string `json:"next_followup"`

	SalaryMin     string `json:"salary_min"`
	SalaryMax     string `json:"salary_max"`
	SalaryOffered string `json:"salary_offered"`

	RecruiterName  string `json:"recruiter_name"`
	RecruiterEmail string `json:"recruiter_email"`
	RecruiterPhone string `json:"recruiter_phone"`
}

// ParseDay parses a YYYY-MM-DD string. ok is false for empty or malformed
// values; callers treat that as "no date set".
func ParseDay(s string) (time.Time, bool) {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		return time.Time{}, false
	}
	return t, true
}
