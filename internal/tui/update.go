package tui

import (
	tea "github.com/charmbracelet/bubbletea"
)

func (m appModel) Init() tea.Cmd { return nil }

func (m appModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil

	case tea.KeyMsg:
		// An active modal owns input; the main command table is suspended
		// until it completes or is cancelled.
		if m.modal != modalNone {
			return m.updateModal(msg)
		}
		if m.multiSelect {
			return m.updateMultiSelect(msg)
		}
		return m.updateNormal(msg)
	}
	return m, nil
}

func (m appModel) updateNormal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveBestEffort()
		return m, tea.Quit

	case "a":
		m.openEntry(modalAdd, nil)
		return m, nil
	case "A":
		m.openEntry(modalQuickAdd, nil)
		return m, nil
	case "y":
		if j, ok := m.focusedJob(); ok {
			m.openEntry(modalQuickAdd, j)
		}
		return m, nil

	case "d":
		if j, ok := m.focusedJob(); ok {
			m.confirmID = j.ID
			m.modal = modalConfirmDelete
		}
		return m, nil

	case "s":
		if j, ok := m.focusedJob(); ok {
			m.withFocusPreserved(func() {
				j.Status = j.Status.Next()
			})
			m.saveBestEffort()
		}
		return m, nil

	case "v", "enter":
		if _, ok := m.focusedJob(); ok {
			m.modal = modalDetail
		}
		return m, nil

	case "/":
		m.openFilter()
		return m, nil
	case "c":
		if m.db.FilterText != "" {
			m.withFocusPreserved(func() { m.db.FilterText = "" })
			m.saveBestEffort()
		}
		return m, nil

	case "t":
		m.withFocusPreserved(func() { m.db.SortByStatus = !m.db.SortByStatus })
		m.saveBestEffort()
		return m, nil
	case "o":
		m.withFocusPreserved(func() { m.db.SortAscending = !m.db.SortAscending })
		m.saveBestEffort()
		return m, nil

	case "x":
		m.modal = modalStats
		return m, nil
	case "T":
		m.modal = modalTimeline
		return m, nil
	case "r":
		m.modal = modalReminders
		return m, nil

	case "m":
		m.multiSelect = true
		m.selected = map[int64]bool{}
		return m, nil

	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "g":
		m.cursor = 0
		return m, nil
	case "G":
		if n := len(visibleJobs(m.db)); n > 0 {
			m.cursor = n - 1
		}
		return m, nil
	}

	// Unrecognized keys are no-ops.
	return m, nil
}

func (m appModel) updateMultiSelect(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		m.saveBestEffort()
		return m, tea.Quit

	case "m", "esc":
		m.exitMultiSelect()
		return m, nil

	case " ":
		if j, ok := m.focusedJob(); ok {
			if m.selected[j.ID] {
				delete(m.selected, j.ID)
			} else {
				m.selected[j.ID] = true
			}
		}
		return m, nil

	case "*":
		// Select everything currently displayed, not the full canonical set.
		sel := map[int64]bool{}
		for _, j := range visibleJobs(m.db) {
			sel[j.ID] = true
		}
		m.selected = sel
		return m, nil

	case "s":
		if len(m.selected) > 0 {
			m.bulkStatusIdx = 0
			m.modal = modalBulkStatus
		}
		return m, nil

	case "d":
		if len(m.selected) > 0 {
			m.modal = modalConfirmBulkDelete
		}
		return m, nil

	case "j", "down":
		m.moveCursor(1)
		return m, nil
	case "k", "up":
		m.moveCursor(-1)
		return m, nil
	case "g":
		m.cursor = 0
		return m, nil
	case "G":
		if n := len(visibleJobs(m.db)); n > 0 {
			m.cursor = n - 1
		}
		return m, nil
	}

	// Normal-mode commands (add, duplicate, detail, …) are ignored while
	// selecting.
	return m, nil
}
