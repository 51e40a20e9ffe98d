package store

import (
	"encoding/json"
	"os"
	"strings"

	"github.com/mrg327/job-tracker/internal/model"
)

// MigrateLegacy performs the one-time conversion from the old task-list file.
// It runs only when the legacy file exists and the job file does not, and it
// never surfaces an error: any failure leaves a fresh empty state.
//
// Legacy items carry {text, completed}. The text splits on the first " - "
// into company and position when possible; completed tasks become Rejected
// applications, the rest Applied, all dated today. On success the legacy file
// is renamed with a .bak suffix so migration cannot repeat.
func (s Store) MigrateLegacy() {
	if s.LegacyPath == "" || s.Path == "" {
		return
	}
	if _, err := os.Stat(s.Path); err == nil {
		return
	}
	b, err := os.ReadFile(s.LegacyPath)
	if err != nil {
		return
	}

	var tasks []struct {
		Text      *string `json:"text"`
		Completed bool    `json:"completed"`
	}
	if err := json.Unmarshal(b, &tasks); err != nil {
		return
	}

	db := &DB{}
	today := Today()
	for _, t := range tasks {
		if t.Text == nil {
			continue
		}
		company := "Unknown Company"
		position := *t.Text
		if before, after, found := strings.Cut(*t.Text, " - "); found {
			company = before
			position = after
		}
		status := model.StatusApplied
		if t.Completed {
			status = model.StatusRejected
		}
		db.Append(model.Job{
			Company:     company,
			Position:    position,
			DateApplied: today,
			Status:      status,
		})
	}

	if err := s.Save(db); err != nil {
		return
	}
	_ = os.Rename(s.LegacyPath, s.LegacyPath+".bak")
}
