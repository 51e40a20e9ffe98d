package tui

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrg327/job-tracker/internal/model"
	"github.com/mrg327/job-tracker/internal/store"
)

// addSteps is the full entry flow; quickAddSteps the abbreviated one. Both
// end on the date-applied step, which is pre-filled with today.
func addSteps() []entryStep {
	return []entryStep{
		{"Company Name", "Enter company name:", fieldCompany, true},
		{"Job Position", "Enter job position/title:", fieldPosition, true},
		{"Application Link", "Enter job posting URL (optional):", fieldLink, false},
		{"Notes", "Enter any notes (optional):", fieldNotes, false},
		{"Interview Date", "Interview date YYYY-MM-DD (optional):", fieldInterviewDate, false},
		{"Interview Time", "Interview time HH:MM (optional):", fieldInterviewTime, false},
		{"Interview Type", "Interview type, e.g. phone/onsite (optional):", fieldInterviewType, false},
		{"Next Follow-up", "Next follow-up YYYY-MM-DD (optional):", fieldNextFollowup, false},
		{"Salary Range", "Salary minimum (optional):", fieldSalaryMin, false},
		{"Application Date", "Date applied:", fieldDateApplied, false},
	}
}

func quickAddSteps() []entryStep {
	return []entryStep{
		{"Company Name", "Enter company name:", fieldCompany, true},
		{"Job Position", "Enter job position/title:", fieldPosition, true},
		{"Application Date", "Date applied:", fieldDateApplied, false},
	}
}

// openEntry starts a multi-step entry flow. template is non-nil for the
// duplicate command: the new record inherits the template's company, link,
// notes, salary range, and recruiter contact, while position and date are
// entered fresh. (The inheritance set is product policy, not an invariant.)
func (m *appModel) openEntry(kind modalKind, template *model.Job) {
	es := &entryState{
		kind:   kind,
		values: map[string]string{},
	}
	if kind == modalAdd {
		es.steps = addSteps()
	} else {
		es.steps = quickAddSteps()
	}

	if template != nil {
		es.values[fieldCompany] = template.Company
		es.values[fieldLink] = template.Link
		es.values[fieldNotes] = template.Notes
		es.values["salary_max"] = template.SalaryMax
		es.values[fieldSalaryMin] = template.SalaryMin
		es.values["recruiter_name"] = template.RecruiterName
		es.values["recruiter_email"] = template.RecruiterEmail
		es.values["recruiter_phone"] = template.RecruiterPhone
	}

	es.input = textinput.New()
	es.input.CharLimit = 200
	es.input.Width = 50
	es.input.Focus()
	m.entry = es
	m.modal = kind
	m.primeEntryInput()
}

// primeEntryInput resets the input for the current step, pre-filling the date
// step with today and any step whose field was seeded by a template.
func (m *appModel) primeEntryInput() {
	es := m.entry
	step := es.steps[es.idx]
	es.input.SetValue("")
	if v, ok := es.values[step.field]; ok && v != "" {
		es.input.SetValue(v)
	}
	if step.field == fieldDateApplied && es.input.Value() == "" {
		es.input.SetValue(store.Today())
	}
	es.input.CursorEnd()
}

func (m appModel) updateEntry(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	es := m.entry
	switch msg.String() {
	case "esc", "ctrl+g":
		// Cancel discards every partially collected value.
		m.entry = nil
		m.modal = modalNone
		return m, nil

	case "enter":
		value := strings.TrimSpace(es.input.Value())
		step := es.steps[es.idx]
		if step.required && value == "" {
			// Stay on this step; nothing is stored.
			return m, nil
		}
		es.values[step.field] = value
		es.idx++
		if es.idx < len(es.steps) {
			m.primeEntryInput()
			return m, nil
		}
		m.finalizeEntry()
		return m, nil
	}

	var cmd tea.Cmd
	es.input, cmd = es.input.Update(msg)
	return m, cmd
}

// finalizeEntry constructs one record from the collected fields, appends it,
// persists, and focuses it in the displayed list (top of list when the new
// record is filtered out of view).
func (m *appModel) finalizeEntry() {
	v := m.entry.values
	dateApplied := v[fieldDateApplied]
	if dateApplied == "" {
		dateApplied = store.Today()
	}
	job := model.Job{
		Company:     v[fieldCompany],
		Position:    v[fieldPosition],
		DateApplied: dateApplied,
		Status:      model.StatusApplied,
		Link:        v[fieldLink],
		Notes:       v[fieldNotes],

		InterviewDate: v[fieldInterviewDate],
		InterviewTime: v[fieldInterviewTime],
		InterviewType: v[fieldInterviewType],
		NextFollowup:  v[fieldNextFollowup],

		SalaryMin: v[fieldSalaryMin],
		SalaryMax: v["salary_max"],

		RecruiterName:  v["recruiter_name"],
		RecruiterEmail: v["recruiter_email"],
		RecruiterPhone: v["recruiter_phone"],
	}

	appended := m.db.Append(job)
	m.entry = nil
	m.modal = modalNone
	m.saveBestEffort()
	m.focusJobID(appended.ID)
}
