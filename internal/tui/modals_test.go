package tui

import (
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mrg327/job-tracker/internal/model"
)

func TestFilterModal_LivePreviewWithoutCommit(t *testing.T) {
	m := testModel(t,
		model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-01"},
		model.Job{Company: "Globex", Position: "SRE", DateApplied: "2024-01-02"},
		model.Job{Company: "Initech", Position: "Analyst", DateApplied: "2024-01-03"},
	)

	m = press(t, m, keyRune('/'))
	if m.modal != modalFilter {
		t.Fatalf("modal = %v, want filter", m.modal)
	}
	if m.filterPreview != 3 {
		t.Fatalf("empty preview = %d, want 3", m.filterPreview)
	}

	m = typeString(t, m, "acme")
	if m.filterPreview != 1 {
		t.Fatalf("preview = %d, want 1", m.filterPreview)
	}
	if m.db.FilterText != "" {
		t.Fatal("typing must not commit the filter")
	}
	if n := len(visibleJobs(m.db)); n != 3 {
		t.Fatal("displayed list must be unchanged while previewing")
	}
}

func TestFilterModal_EnterCommits(t *testing.T) {
	m := testModel(t,
		model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-01"},
		model.Job{Company: "Globex", Position: "SRE", DateApplied: "2024-01-02"},
	)
	m = press(t, m, keyRune('/'))
	m = typeString(t, m, "globex")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEnter})

	if m.db.FilterText != "globex" {
		t.Fatalf("committed filter = %q", m.db.FilterText)
	}
	if n := len(visibleJobs(m.db)); n != 1 {
		t.Fatalf("displayed = %d, want 1", n)
	}
	if m.modal != modalNone {
		t.Fatal("modal should close on commit")
	}
}

func TestFilterModal_CancelLeavesCommittedFilterUntouched(t *testing.T) {
	m := testModel(t,
		model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-01"},
		model.Job{Company: "Globex", Position: "SRE", DateApplied: "2024-01-02"},
	)
	m.db.FilterText = "acme"

	m = press(t, m, keyRune('/'))
	m = typeString(t, m, "globex")
	m = press(t, m, tea.KeyMsg{Type: tea.KeyEsc})

	if m.db.FilterText != "acme" {
		t.Fatalf("filter = %q, want previously committed value", m.db.FilterText)
	}
	if m.modal != modalNone {
		t.Fatal("modal should close on cancel")
	}
}

func TestFilterModal_DialogSeededWithCommittedFilter(t *testing.T) {
	m := testModel(t, model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-01"})
	m.db.FilterText = "acme"
	m = press(t, m, keyRune('/'))
	if got := m.filterInput.Value(); got != "acme" {
		t.Fatalf("seed = %q, want committed filter", got)
	}
}

func TestDisplayModals_CloseOnAnyKey(t *testing.T) {
	for _, open := range []rune{'x', 'T', 'r'} {
		m := testModel(t, fiveJobs()...)
		m = press(t, m, keyRune(open))
		if m.modal == modalNone {
			t.Fatalf("key %q should open a display modal", open)
		}
		m = press(t, m, keyRune('z'))
		if m.modal != modalNone {
			t.Fatalf("display modal for %q must close on any key", open)
		}
	}

	// Detail view behaves the same.
	m := testModel(t, fiveJobs()...)
	m = press(t, m, keyRune('v'))
	if m.modal != modalDetail {
		t.Fatalf("modal = %v, want detail", m.modal)
	}
	m = press(t, m, tea.KeyMsg{Type: tea.KeySpace})
	if m.modal != modalNone {
		t.Fatal("detail must close on any key")
	}
}

func TestModal_SuspendsMainCommandTable(t *testing.T) {
	m := testModel(t, fiveJobs()...)
	m = press(t, m, keyRune('x')) // stats modal open

	before := len(m.db.Jobs)
	m = press(t, m, keyRune('d')) // would open delete confirm in idle state
	if m.modal != modalNone {
		t.Fatal("the closing key must not reach the main dispatch")
	}
	if len(m.db.Jobs) != before {
		t.Fatal("no mutation may happen through a display modal")
	}
	// The next 'd' goes to the main table again.
	m = press(t, m, keyRune('d'))
	if m.modal != modalConfirmDelete {
		t.Fatalf("modal = %v, want delete confirm after modal closed", m.modal)
	}
}

func TestStatusCycle_PersistsEachStep(t *testing.T) {
	m := testModel(t, model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-01"})
	order := []model.Status{
		model.StatusInterview, model.StatusOffer, model.StatusRejected,
		model.StatusWithdrawn, model.StatusApplied,
	}
	for _, want := range order {
		m = press(t, m, keyRune('s'))
		if got := m.db.Jobs[0].Status; got != want {
			t.Fatalf("status = %s, want %s", got, want)
		}
	}

	// Each mutation saved synchronously: reload sees the final state.
	got := m.store.Load()
	if len(got.Jobs) != 1 || got.Jobs[0].Status != model.StatusApplied {
		t.Fatalf("persisted state = %+v", got.Jobs)
	}
}

func TestView_RowTokens(t *testing.T) {
	j := &model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-10", Status: model.StatusInterview}

	line := rowText(j, false, false, model.AttentionNormal)
	for _, want := range []string{"🎯", "[INTERVIEW]", "Acme - Engineer", "(2024-01-10)"} {
		if !strings.Contains(line, want) {
			t.Errorf("row %q missing %q", line, want)
		}
	}

	sel := rowText(j, true, true, model.AttentionNormal)
	if !strings.Contains(sel, "[x]") {
		t.Errorf("selected row %q missing checkbox", sel)
	}
	unsel := rowText(j, false, true, model.AttentionNormal)
	if !strings.Contains(unsel, "[ ]") {
		t.Errorf("unselected row %q missing empty checkbox", unsel)
	}

	urgent := rowText(j, false, false, model.AttentionUrgent)
	if !strings.Contains(urgent, "‼") {
		t.Errorf("urgent row %q missing badge", urgent)
	}
}

func TestView_RendersWithoutSize(t *testing.T) {
	// View must not panic before the first WindowSizeMsg.
	m := testModel(t, fiveJobs()...)
	if out := m.View(); out == "" {
		t.Fatal("empty view")
	}
	m = press(t, m, keyRune('v'))
	if out := m.View(); !strings.Contains(out, "Acme") && !strings.Contains(out, "Details") {
		t.Fatalf("detail view missing content: %q", out)
	}
}
