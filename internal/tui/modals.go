package tui

import (
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrg327/job-tracker/internal/model"
)

// updateModal routes input to the active overlay. Every path out of here
// either keeps the modal open or returns to modalNone; a modal never opens
// another modal.
func (m appModel) updateModal(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.modal {
	case modalAdd, modalQuickAdd:
		return m.updateEntry(msg)
	case modalFilter:
		return m.updateFilter(msg)
	case modalConfirmDelete:
		return m.updateConfirmDelete(msg)
	case modalConfirmBulkDelete:
		return m.updateConfirmBulkDelete(msg)
	case modalBulkStatus:
		return m.updateBulkStatus(msg)
	default:
		// Display-only dialogs (detail, stats, timeline, reminders): any key
		// closes.
		m.modal = modalNone
		return m, nil
	}
}

func (m *appModel) openFilter() {
	m.filterInput.SetValue(m.db.FilterText)
	m.filterInput.CursorEnd()
	m.filterInput.Focus()
	m.filterPreview = matchCount(m.db, m.filterInput.Value())
	m.modal = modalFilter
}

func (m appModel) updateFilter(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "esc", "ctrl+g":
		// Cancel leaves the previously committed filter untouched.
		m.modal = modalNone
		return m, nil

	case "enter":
		m.withFocusPreserved(func() {
			m.db.FilterText = m.filterInput.Value()
		})
		m.modal = modalNone
		m.saveBestEffort()
		return m, nil
	}

	// Every other keystroke live-updates the preview count without
	// committing anything.
	var cmd tea.Cmd
	m.filterInput, cmd = m.filterInput.Update(msg)
	m.filterPreview = matchCount(m.db, m.filterInput.Value())
	return m, cmd
}

func (m appModel) updateConfirmDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.withFocusPreserved(func() {
			m.db.Remove(m.confirmID)
		})
		m.confirmID = 0
		m.modal = modalNone
		m.saveBestEffort()
		return m, nil
	case "n", "N", "esc":
		m.confirmID = 0
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

func (m appModel) updateConfirmBulkDelete(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "y", "Y":
		m.withFocusPreserved(func() {
			m.db.RemoveAll(m.selected)
		})
		m.exitMultiSelect()
		m.modal = modalNone
		m.saveBestEffort()
		return m, nil
	case "n", "N", "esc":
		m.modal = modalNone
		return m, nil
	}
	return m, nil
}

func (m appModel) updateBulkStatus(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	opts := model.StatusOptions()
	switch msg.String() {
	case "esc", "ctrl+g":
		m.modal = modalNone
		return m, nil

	case "j", "down":
		if m.bulkStatusIdx < len(opts)-1 {
			m.bulkStatusIdx++
		}
		return m, nil
	case "k", "up":
		if m.bulkStatusIdx > 0 {
			m.bulkStatusIdx--
		}
		return m, nil

	case "enter":
		status := opts[m.bulkStatusIdx]
		m.withFocusPreserved(func() {
			for i := range m.db.Jobs {
				if m.selected[m.db.Jobs[i].ID] {
					m.db.Jobs[i].Status = status
				}
			}
		})
		// Bulk apply is one-shot: the selection does not stick around.
		m.exitMultiSelect()
		m.modal = modalNone
		m.saveBestEffort()
		return m, nil
	}
	return m, nil
}
