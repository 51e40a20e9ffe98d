package tui

import (
	"github.com/charmbracelet/bubbles/textinput"

	"github.com/mrg327/job-tracker/internal/model"
	"github.com/mrg327/job-tracker/internal/store"
)

// appModel is the single owner of all interactive state. The Bubble Tea loop
// is the one logical thread of control: every key is fully processed (state
// mutation + synchronous save) before the next is read.
type appModel struct {
	store store.Store
	db    *store.DB

	width  int
	height int

	// cursor indexes the displayed list (visibleJobs), not the canonical one.
	cursor int

	multiSelect bool
	// selected holds job identities, not positions, so it survives
	// re-projection. Only meaningful while multiSelect is true.
	selected map[int64]bool

	modal modalKind

	// entry holds the in-progress multi-step add/quick-add buffer while
	// modal is modalAdd or modalQuickAdd.
	entry *entryState

	// filterInput is the uncommitted filter dialog text; filterPreview the
	// live count of canonical records it would keep.
	filterInput   textinput.Model
	filterPreview int

	// confirmID is the job pending single-record delete confirmation.
	confirmID int64

	// bulkStatusIdx is the highlighted option in the bulk-status picker.
	bulkStatusIdx int
}

type entryState struct {
	kind   modalKind
	steps  []entryStep
	idx    int
	values map[string]string
	input  textinput.Model
}

func newAppModel(s store.Store, db *store.DB) appModel {
	m := appModel{
		store:    s,
		db:       db,
		selected: map[int64]bool{},
	}
	m.filterInput = textinput.New()
	m.filterInput.Placeholder = "company or position"
	m.filterInput.CharLimit = 100
	m.filterInput.Width = 40
	return m
}

// focusedJob returns the record under the cursor in the displayed list.
func (m appModel) focusedJob() (*model.Job, bool) {
	vis := visibleJobs(m.db)
	if m.cursor < 0 || m.cursor >= len(vis) {
		return nil, false
	}
	return vis[m.cursor], true
}

// withFocusPreserved runs a displayed-list-changing mutation while keeping
// focus on the same record identity when it is still displayed afterwards,
// clamping to the last valid index otherwise.
func (m *appModel) withFocusPreserved(mutate func()) {
	var focusID int64
	hadFocus := false
	if j, ok := m.focusedJob(); ok {
		focusID = j.ID
		hadFocus = true
	}

	mutate()

	vis := visibleJobs(m.db)
	if len(vis) == 0 {
		m.cursor = 0
		return
	}
	if hadFocus {
		for i, j := range vis {
			if j.ID == focusID {
				m.cursor = i
				return
			}
		}
	}
	if m.cursor >= len(vis) {
		m.cursor = len(vis) - 1
	}
	if m.cursor < 0 {
		m.cursor = 0
	}
}

// focusJobID points the cursor at the given identity, falling back to the top
// of the list when it is not displayed (e.g. filtered out).
func (m *appModel) focusJobID(id int64) {
	vis := visibleJobs(m.db)
	for i, j := range vis {
		if j.ID == id {
			m.cursor = i
			return
		}
	}
	m.cursor = 0
}

func (m *appModel) moveCursor(delta int) {
	vis := visibleJobs(m.db)
	if len(vis) == 0 {
		m.cursor = 0
		return
	}
	m.cursor += delta
	if m.cursor < 0 {
		m.cursor = 0
	}
	if m.cursor >= len(vis) {
		m.cursor = len(vis) - 1
	}
}

// exitMultiSelect turns multi-select off; the selection is only meaningful
// while the mode is active, so it is always cleared here.
func (m *appModel) exitMultiSelect() {
	m.multiSelect = false
	m.selected = map[int64]bool{}
}

func (m *appModel) saveBestEffort() {
	// Persistence failures are deliberately swallowed; the in-memory state
	// stays authoritative for the rest of the session.
	_ = m.store.Save(m.db)
}
