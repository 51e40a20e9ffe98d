package tui

// modalKind identifies the single active overlay. Exactly one modal may be
// open at a time and a modal never opens another; the main command table is
// suspended while modal != modalNone.
type modalKind int

const (
	modalNone modalKind = iota
	modalAdd
	modalQuickAdd
	modalFilter
	modalDetail
	modalConfirmDelete
	modalConfirmBulkDelete
	modalBulkStatus
	modalStats
	modalTimeline
	modalReminders
)

// entryStep is one prompt of a multi-step entry flow.
type entryStep struct {
	title    string
	prompt   string
	field    string
	required bool
}

// Field keys used by the entry flows; finalizeEntry maps them onto the job.
const (
	fieldCompany       = "company"
	fieldPosition      = "position"
	fieldLink          = "link"
	fieldNotes         = "notes"
	fieldInterviewDate = "interview_date"
	fieldInterviewTime = "interview_time"
	fieldInterviewType = "interview_type"
	fieldNextFollowup  = "next_followup"
	fieldSalaryMin     = "salary_min"
	fieldDateApplied   = "date_applied"
)
