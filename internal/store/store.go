package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"time"

	"github.com/mrg327/job-tracker/internal/model"
)

const (
	jobFileName    = ".job_tracker.json"
	legacyFileName = ".planner_tasks.json"
)

// Store locates the persisted tracker file. All load paths are best effort:
// a missing or malformed file yields a fresh empty DB, never an error the
// interactive session has to handle.
type Store struct {
	Path       string
	LegacyPath string
}

// DefaultStore resolves the fixed home-relative file locations.
func DefaultStore() (Store, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return Store{}, err
	}
	return Store{
		Path:       filepath.Join(home, jobFileName),
		LegacyPath: filepath.Join(home, legacyFileName),
	}, nil
}

// DB is the canonical application state: the full job list plus the view
// preferences that persist across sessions. Display order is owned by the
// view projection; Jobs keeps file order.
type DB struct {
	SortByStatus  bool        `json:"sort_by_status"`
	SortAscending bool        `json:"sort_ascending"`
	FilterText    string      `json:"filter_text"`
	Jobs          []model.Job `json:"jobs"`

	nextID int64
}

// wireJob mirrors model.Job on disk but keeps the required fields as pointers
// so a record missing company/position/date_applied is distinguishable from
// one carrying empty strings. Unknown fields are ignored by encoding/json.
type wireJob struct {
	Company     *string `json:"company"`
	Position    *string `json:"position"`
	DateApplied *string `json:"date_applied"`
	Status      string  `json:"status"`
	Link        string  `json:"link"`
	Notes       string  `json:"notes"`

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

type wireFile struct {
	SortByStatus  bool              `json:"sort_by_status"`
	SortAscending bool              `json:"sort_ascending"`
	FilterText    string            `json:"filter_text"`
	Jobs          []json.RawMessage `json:"jobs"`
}

// Load reads the persisted state. The contract is all-or-nothing: any read,
// parse, or missing-required-field failure falls back to a fresh empty DB with
// default preferences rather than a partially loaded one.
func (s Store) Load() *DB {
	db, ok := s.tryLoad()
	if !ok {
		return &DB{}
	}
	return db
}

func (s Store) tryLoad() (*DB, bool) {
	b, err := os.ReadFile(s.Path)
	if err != nil {
		return nil, false
	}

	db := &DB{}
	var rawJobs []json.RawMessage

	var wrapper wireFile
	if err := json.Unmarshal(b, &wrapper); err == nil {
		db.SortByStatus = wrapper.SortByStatus
		db.SortAscending = wrapper.SortAscending
		db.FilterText = wrapper.FilterText
		rawJobs = wrapper.Jobs
	} else if err := json.Unmarshal(b, &rawJobs); err != nil {
		// Neither the wrapper object nor the legacy bare array.
		return nil, false
	}

	for _, raw := range rawJobs {
		var w wireJob
		if err := json.Unmarshal(raw, &w); err != nil {
			return nil, false
		}
		if w.Company == nil || w.Position == nil || w.DateApplied == nil {
			return nil, false
		}
		db.Jobs = append(db.Jobs, model.Job{
			ID:          db.NextID(),
			Company:     *w.Company,
			Position:    *w.Position,
			DateApplied: *w.DateApplied,
			Status:      model.ParseStatus(w.Status),
			Link:        w.Link,
			Notes:       w.Notes,

			InterviewDate: w.InterviewDate,
			InterviewTime: w.InterviewTime,
			InterviewType: w.InterviewType,

			LastContact:  w.LastContact,
			NextFollowup: w.NextFollowup,

			SalaryMin:     w.SalaryMin,
			SalaryMax:     w.SalaryMax,
			SalaryOffered: w.SalaryOffered,

			RecruiterName:  w.RecruiterName,
			RecruiterEmail: w.RecruiterEmail,
			RecruiterPhone: w.RecruiterPhone,
		})
	}
	return db, true
}

// Save writes the full canonical list plus view preferences. The write is
// atomic (temp file + rename) so a save racing process shutdown can never
// leave a truncated file behind. Callers treat failure as best effort; the
// in-memory state stays authoritative for the rest of the session.
func (s Store) Save(db *DB) error {
	out := struct {
		SortByStatus  bool        `json:"sort_by_status"`
		SortAscending bool        `json:"sort_ascending"`
		FilterText    string      `json:"filter_text"`
		Jobs          []model.Job `json:"jobs"`
	}{
		SortByStatus:  db.SortByStatus,
		SortAscending: db.SortAscending,
		FilterText:    db.FilterText,
		Jobs:          db.Jobs,
	}
	if out.Jobs == nil {
		out.Jobs = []model.Job{}
	}

	b, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return err
	}

	tmp := s.Path + ".tmp"
	if err := os.WriteFile(tmp, b, 0o644); err != nil {
		return err
	}
	if err := os.Rename(tmp, s.Path); err != nil {
		_ = os.Remove(tmp)
		return err
	}
	return nil
}

// NextID hands out session-scoped job identities. IDs restart from 1 on every
// load; they exist to give selection and focus a stable handle, not to be
// stored.
func (db *DB) NextID() int64 {
	db.nextID++
	return db.nextID
}

// Append adds a job to the canonical list, assigning its identity. The
// returned pointer aliases the stored record.
func (db *DB) Append(j model.Job) *model.Job {
	j.ID = db.NextID()
	db.Jobs = append(db.Jobs, j)
	return &db.Jobs[len(db.Jobs)-1]
}

// Remove deletes the job with the given identity, if present.
func (db *DB) Remove(id int64) {
	for i := range db.Jobs {
		if db.Jobs[i].ID == id {
			db.Jobs = append(db.Jobs[:i], db.Jobs[i+1:]...)
			return
		}
	}
}

// RemoveAll deletes every job whose identity is in ids.
func (db *DB) RemoveAll(ids map[int64]bool) {
	if len(ids) == 0 {
		return
	}
	kept := db.Jobs[:0]
	for _, j := range db.Jobs {
		if !ids[j.ID] {
			kept = append(kept, j)
		}
	}
	db.Jobs = kept
}

// Find returns the stored job with the given identity.
func (db *DB) Find(id int64) (*model.Job, bool) {
	for i := range db.Jobs {
		if db.Jobs[i].ID == id {
			return &db.Jobs[i], true
		}
	}
	return nil, false
}

// Today is the date stamp used for defaults and migration.
func Today() string {
	return time.Now().Format("2006-01-02")
}
