package tui

import (
	"fmt"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	xansi "github.com/charmbracelet/x/ansi"

	"github.com/mrg327/job-tracker/internal/model"
)

func (m appModel) View() string {
	header := m.viewHeader()
	footer := m.viewFooter()

	bodyHeight := m.height - lipgloss.Height(header) - lipgloss.Height(footer)
	if bodyHeight < 3 {
		bodyHeight = 3
	}

	var body string
	if m.modal != modalNone {
		body = m.viewModal()
	} else {
		body = m.viewList(bodyHeight)
	}

	return strings.Join([]string{header, body, footer}, "\n")
}

func (m appModel) viewHeader() string {
	direction := "↓"
	if m.db.SortAscending {
		direction = "↑"
	}
	mode := "Date"
	if m.db.SortByStatus {
		mode = "Status+Date"
	}

	count := fmt.Sprintf("%d apps", len(m.db.Jobs))
	if m.db.FilterText != "" {
		count = fmt.Sprintf("%d/%d apps (filter: %q)", len(visibleJobs(m.db)), len(m.db.Jobs), m.db.FilterText)
	}

	path := m.store.Path
	if home, err := os.UserHomeDir(); err == nil && home != "" {
		path = strings.Replace(path, home, "~", 1)
	}

	text := fmt.Sprintf(" Job Tracker - Sort: %s %s - %s - Saved: %s ", mode, direction, count, path)
	st := lipgloss.NewStyle().Foreground(colorHeaderFg).Background(colorHeaderBg).Bold(true)
	if m.width > 0 {
		st = st.Width(m.width).Align(lipgloss.Center)
	}
	return st.Render(text)
}

func (m appModel) viewFooter() string {
	text := " [a]dd [A]quick [y]dup [d]el [s]tatus [v]iew [/]filter [c]lear | [t]sort [o]rder [x]stats [T]imeline [r]emind [m]ulti | [j/k]nav [q]uit "
	if m.multiSelect {
		text = fmt.Sprintf(" MULTI-SELECT (%d) - [space]toggle [*]all [s]tatus [d]elete [m/esc]done | [j/k]nav [q]uit ", len(m.selected))
	}
	st := lipgloss.NewStyle().Foreground(colorFooterFg).Background(colorFooterBg)
	if m.width > 0 {
		st = st.Width(m.width).Align(lipgloss.Center)
	}
	return st.Render(text)
}

// rowText builds the single-line summary for one displayed record.
func rowText(j *model.Job, selected bool, multiSelect bool, attention model.Attention) string {
	var b strings.Builder
	if multiSelect {
		if selected {
			b.WriteString(" [x]")
		} else {
			b.WriteString(" [ ]")
		}
	}
	fmt.Fprintf(&b, " %s [%s] %s - %s (%s)", j.Status.Emoji(), strings.ToUpper(string(j.Status)), j.Company, j.Position, j.DateApplied)
	switch attention {
	case model.AttentionUrgent:
		b.WriteString(" ‼ follow up overdue")
	case model.AttentionSoon:
		b.WriteString(" ⏰ coming up")
	}
	return b.String()
}

func (m appModel) viewList(height int) string {
	vis := visibleJobs(m.db)
	if len(vis) == 0 {
		if m.db.FilterText != "" {
			return styleMuted().Render("\n  No applications match the filter. Press [c] to clear it.")
		}
		return styleMuted().Render("\n  No job applications yet. Press [a] to add one.")
	}

	// Keep the cursor inside a window of the displayed list.
	top := 0
	if m.cursor >= height {
		top = m.cursor - height + 1
	}
	bottom := top + height
	if bottom > len(vis) {
		bottom = len(vis)
	}

	now := time.Now()
	lines := make([]string, 0, bottom-top)
	for i := top; i < bottom; i++ {
		j := vis[i]
		att := model.JobAttention(*j, now)
		line := rowText(j, m.selected[j.ID], m.multiSelect, att)
		if m.width > 0 && xansi.StringWidth(line) > m.width {
			line = xansi.Cut(line, 0, m.width-1) + "…"
		}
		lines = append(lines, styleForJob(*j, i == m.cursor, att).Render(line))
	}
	return strings.Join(lines, "\n")
}

func modalBodyWidth(width int) int {
	w := width - 12
	if w > 64 {
		w = 64
	}
	if w < 30 {
		w = 30
	}
	return w
}

// renderModalBox draws the single active overlay. Borders stay minimal: some
// terminals show background artifacts when nesting bordered components inside
// a colored modal.
func renderModalBox(width int, title string, content string) string {
	bodyW := modalBodyWidth(width)

	titleSt := lipgloss.NewStyle().
		Foreground(colorModalTitle).
		Bold(true).
		Width(bodyW).
		Align(lipgloss.Center)

	box := lipgloss.NewStyle().
		Foreground(colorModalFg).
		Background(colorModalBg).
		Border(lipgloss.RoundedBorder()).
		Padding(1, 2).
		Width(bodyW + 4)

	inner := titleSt.Render(title) + "\n\n" + content
	out := box.Render(inner)
	if width > lipgloss.Width(out) {
		out = lipgloss.NewStyle().Width(width).Align(lipgloss.Center).Render(out)
	}
	return out
}

func (m appModel) viewModal() string {
	switch m.modal {
	case modalAdd, modalQuickAdd:
		return m.viewEntryModal()
	case modalFilter:
		return m.viewFilterModal()
	case modalDetail:
		return m.viewDetailModal()
	case modalConfirmDelete:
		return m.viewConfirmDeleteModal()
	case modalConfirmBulkDelete:
		return m.viewConfirmBulkDeleteModal()
	case modalBulkStatus:
		return m.viewBulkStatusModal()
	case modalStats:
		return m.viewStatsModal()
	case modalTimeline:
		return m.viewTimelineModal()
	case modalReminders:
		return m.viewRemindersModal()
	default:
		return ""
	}
}

func (m appModel) viewEntryModal() string {
	es := m.entry
	if es == nil {
		return ""
	}
	step := es.steps[es.idx]
	req := " (Optional)"
	if step.required {
		req = " (Required)"
	}
	content := strings.Join([]string{
		styleMuted().Render(fmt.Sprintf("Step %d of %d", es.idx+1, len(es.steps))),
		"",
		step.prompt,
		es.input.View(),
		"",
		styleMuted().Render("enter: continue   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, step.title+req, content)
}

func (m appModel) viewFilterModal() string {
	content := strings.Join([]string{
		"Filter by company or position:",
		m.filterInput.View(),
		"",
		fmt.Sprintf("%d of %d applications match", m.filterPreview, len(m.db.Jobs)),
		"",
		styleMuted().Render("enter: apply   esc: cancel"),
	}, "\n")
	return renderModalBox(m.width, "Search / Filter", content)
}

func (m appModel) viewDetailModal() string {
	j, ok := m.focusedJob()
	if !ok {
		return ""
	}

	orNone := func(s string) string {
		if s == "" {
			return "None"
		}
		return s
	}

	lines := []string{
		"Company: " + j.Company,
		"Position: " + j.Position,
		fmt.Sprintf("Status: %s %s", j.Status.Emoji(), j.Status),
		"Date Applied: " + j.DateApplied,
		"Link: " + orNone(j.Link),
	}
	if j.InterviewDate != "" {
		iv := j.InterviewDate
		if j.InterviewTime != "" {
			iv += " " + j.InterviewTime
		}
		if j.InterviewType != "" {
			iv += " (" + j.InterviewType + ")"
		}
		lines = append(lines, "Interview: "+iv)
	}
	if j.LastContact != "" {
		lines = append(lines, "Last Contact: "+j.LastContact)
	}
	if j.NextFollowup != "" {
		lines = append(lines, "Next Follow-up: "+j.NextFollowup)
	}
	if j.SalaryMin != "" || j.SalaryMax != "" || j.SalaryOffered != "" {
		sal := j.SalaryMin
		if j.SalaryMax != "" {
			sal += " - " + j.SalaryMax
		}
		if j.SalaryOffered != "" {
			sal += " (offered: " + j.SalaryOffered + ")"
		}
		lines = append(lines, "Salary: "+strings.TrimSpace(sal))
	}
	if j.RecruiterName != "" || j.RecruiterEmail != "" || j.RecruiterPhone != "" {
		rec := strings.TrimSpace(strings.Join([]string{j.RecruiterName, j.RecruiterEmail, j.RecruiterPhone}, " "))
		lines = append(lines, "Recruiter: "+rec)
	}

	lines = append(lines, "Notes:")
	if notes := renderMarkdown(j.Notes, modalBodyWidth(m.width)); notes != "" {
		lines = append(lines, notes)
	} else {
		lines = append(lines, "None")
	}

	lines = append(lines, "", styleMuted().Render("press any key to close"))
	return renderModalBox(m.width, "Job Application Details", strings.Join(lines, "\n"))
}

func (m appModel) viewConfirmDeleteModal() string {
	j, ok := m.db.Find(m.confirmID)
	if !ok {
		return ""
	}
	content := strings.Join([]string{
		"Company: " + j.Company,
		"Position: " + j.Position,
		fmt.Sprintf("Status: %s", j.Status),
		"",
		"Are you sure you want to delete this application?",
		"",
		styleMuted().Render("[y]es delete   [n]o / esc cancel"),
	}, "\n")
	return renderModalBox(m.width, "Delete Job Application?", content)
}

func (m appModel) viewConfirmBulkDeleteModal() string {
	content := strings.Join([]string{
		fmt.Sprintf("Delete %d selected applications?", len(m.selected)),
		"",
		styleMuted().Render("[y]es delete   [n]o / esc cancel"),
	}, "\n")
	return renderModalBox(m.width, "Bulk Delete", content)
}

func (m appModel) viewBulkStatusModal() string {
	var b strings.Builder
	fmt.Fprintf(&b, "Set status for %d selected applications:\n\n", len(m.selected))
	for i, st := range model.StatusOptions() {
		marker := "  "
		if i == m.bulkStatusIdx {
			marker = "> "
		}
		line := fmt.Sprintf("%s%s %s", marker, st.Emoji(), st)
		if i == m.bulkStatusIdx {
			line = lipgloss.NewStyle().Bold(true).Render(line)
		}
		b.WriteString(line + "\n")
	}
	b.WriteString("\n" + styleMuted().Render("j/k: move   enter: apply   esc: cancel"))
	return renderModalBox(m.width, "Bulk Status", b.String())
}

func (m appModel) viewStatsModal() string {
	counts := map[model.Status]int{}
	for _, j := range m.db.Jobs {
		counts[j.Status]++
	}
	total := len(m.db.Jobs)

	var b strings.Builder
	fmt.Fprintf(&b, "Total applications: %d\n\n", total)
	for _, st := range model.StatusOptions() {
		n := counts[st]
		pct := 0
		if total > 0 {
			pct = n * 100 / total
		}
		bar := strings.Repeat("█", pct/5)
		b.WriteString(fmt.Sprintf("%s %-10s %3d  %3d%% %s\n", st.Emoji(), st, n, pct, bar))
	}
	b.WriteString("\n" + styleMuted().Render("press any key to close"))
	return renderModalBox(m.width, "Statistics", b.String())
}

func (m appModel) viewTimelineModal() string {
	// Bucket by YYYY-MM of date applied, newest bucket first. Records with
	// unparsable dates collect under a trailing "unknown" bucket.
	buckets := map[string][]*model.Job{}
	for i := range m.db.Jobs {
		j := &m.db.Jobs[i]
		key := "unknown"
		if d, ok := model.ParseDay(j.DateApplied); ok {
			key = d.Format("2006-01")
		}
		buckets[key] = append(buckets[key], j)
	}

	months := make([]string, 0, len(buckets))
	for k := range buckets {
		if k != "unknown" {
			months = append(months, k)
		}
	}
	sort.Sort(sort.Reverse(sort.StringSlice(months)))
	if _, ok := buckets["unknown"]; ok {
		months = append(months, "unknown")
	}

	var b strings.Builder
	if len(months) == 0 {
		b.WriteString("No applications yet.\n")
	}
	for _, month := range months {
		b.WriteString(lipgloss.NewStyle().Bold(true).Render(month) + "\n")
		for _, j := range buckets[month] {
			fmt.Fprintf(&b, "  %s %s - %s (%s)\n", j.Status.Emoji(), j.Company, j.Position, j.DateApplied)
		}
	}
	b.WriteString("\n" + styleMuted().Render("press any key to close"))
	return renderModalBox(m.width, "Timeline", b.String())
}

func (m appModel) viewRemindersModal() string {
	now := time.Now()
	var urgent, soon []*model.Job
	for i := range m.db.Jobs {
		j := &m.db.Jobs[i]
		switch model.JobAttention(*j, now) {
		case model.AttentionUrgent:
			urgent = append(urgent, j)
		case model.AttentionSoon:
			soon = append(soon, j)
		}
	}

	var b strings.Builder
	if len(urgent) == 0 && len(soon) == 0 {
		b.WriteString("Nothing needs attention right now.\n")
	}
	if len(urgent) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(colorUrgent).Bold(true).Render("Overdue follow-ups") + "\n")
		for _, j := range urgent {
			fmt.Fprintf(&b, "  ‼ %s - %s (follow up: %s)\n", j.Company, j.Position, j.NextFollowup)
		}
	}
	if len(soon) > 0 {
		b.WriteString(lipgloss.NewStyle().Foreground(colorSoon).Bold(true).Render("Coming up") + "\n")
		for _, j := range soon {
			line := fmt.Sprintf("  ⏰ %s - %s", j.Company, j.Position)
			if j.InterviewDate != "" {
				line += " (interview: " + j.InterviewDate + ")"
			} else if j.NextFollowup != "" {
				line += " (follow up: " + j.NextFollowup + ")"
			}
			b.WriteString(line + "\n")
		}
	}
	b.WriteString("\n" + styleMuted().Render("press any key to close"))
	return renderModalBox(m.width, "Reminders", b.String())
}
