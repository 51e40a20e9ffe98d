package store

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/mrg327/job-tracker/internal/model"
)

func tempStore(t *testing.T) Store {
	t.Helper()
	dir := t.TempDir()
	return Store{
		Path:       filepath.Join(dir, ".job_tracker.json"),
		LegacyPath: filepath.Join(dir, ".planner_tasks.json"),
	}
}

func TestLoad_MissingFileIsEmpty(t *testing.T) {
	s := tempStore(t)
	db := s.Load()
	if len(db.Jobs) != 0 || db.SortByStatus || db.SortAscending || db.FilterText != "" {
		t.Fatalf("expected empty DB with default prefs, got %+v", db)
	}
}

func TestSaveLoad_RoundTrip(t *testing.T) {
	s := tempStore(t)
	db := &DB{SortByStatus: true, SortAscending: true, FilterText: "acme"}
	db.Append(model.Job{
		Company:        "Acme",
		Position:       "Engineer",
		DateApplied:    "2024-01-10",
		Status:         model.StatusInterview,
		Link:           "https://acme.example/jobs/1",
		Notes:          "Referred by *Sam*.",
		InterviewDate:  "2024-02-01",
		InterviewTime:  "14:00",
		InterviewType:  "onsite",
		LastContact:    "2024-01-20",
		NextFollowup:   "2024-01-28",
		SalaryMin:      "120000",
		SalaryMax:      "150000",
		SalaryOffered:  "",
		RecruiterName:  "Sam Doe",
		RecruiterEmail: "sam@acme.example",
		RecruiterPhone: "555-0100",
	})
	db.Append(model.Job{Company: "Globex", Position: "SRE", DateApplied: "2024-03-01"})

	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}

	got := s.Load()
	if got.SortByStatus != true || got.SortAscending != true || got.FilterText != "acme" {
		t.Fatalf("prefs not round-tripped: %+v", got)
	}
	if len(got.Jobs) != 2 {
		t.Fatalf("expected 2 jobs, got %d", len(got.Jobs))
	}
	want := db.Jobs[0]
	have := got.Jobs[0]
	want.ID, have.ID = 0, 0 // identity is session-scoped
	if want != have {
		t.Fatalf("field mismatch after round trip:\nwant %+v\nhave %+v", want, have)
	}
	if got.Jobs[0].ID == got.Jobs[1].ID {
		t.Fatal("loaded jobs must have distinct identities")
	}
}

func TestLoad_LegacyBareArray(t *testing.T) {
	s := tempStore(t)
	raw := `[{"company":"Acme","position":"Engineer","date_applied":"2024-01-10"}]`
	if err := os.WriteFile(s.Path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	db := s.Load()
	if len(db.Jobs) != 1 {
		t.Fatalf("expected 1 job, got %d", len(db.Jobs))
	}
	if db.SortByStatus || db.SortAscending || db.FilterText != "" {
		t.Fatal("legacy array must load with default preferences")
	}
	if db.Jobs[0].Status != model.StatusApplied {
		t.Fatalf("missing status must default to Applied, got %s", db.Jobs[0].Status)
	}
}

func TestLoad_MissingRequiredFieldFailsWhole(t *testing.T) {
	s := tempStore(t)
	raw := `{"jobs":[
		{"company":"Acme","position":"Engineer","date_applied":"2024-01-10"},
		{"company":"Globex","position":"SRE"}
	]}`
	if err := os.WriteFile(s.Path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	db := s.Load()
	if len(db.Jobs) != 0 {
		t.Fatalf("load must be all-or-nothing, got %d jobs", len(db.Jobs))
	}
}

func TestLoad_MalformedFileIsEmpty(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path, []byte("{not json"), 0o644); err != nil {
		t.Fatal(err)
	}
	db := s.Load()
	if len(db.Jobs) != 0 {
		t.Fatal("malformed file must yield empty state")
	}
}

func TestLoad_UnknownFieldsIgnored(t *testing.T) {
	s := tempStore(t)
	raw := `{"jobs":[{"company":"Acme","position":"Engineer","date_applied":"2024-01-10",
		"status":"Interview","favorite":true,"rating":5}],"theme":"dark"}`
	if err := os.WriteFile(s.Path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	db := s.Load()
	if len(db.Jobs) != 1 || db.Jobs[0].Status != model.StatusInterview {
		t.Fatalf("unknown fields must be ignored, got %+v", db.Jobs)
	}
}

func TestLoad_UnknownStatusDefaultsToApplied(t *testing.T) {
	s := tempStore(t)
	raw := `{"jobs":[{"company":"Acme","position":"Engineer","date_applied":"2024-01-10","status":"Ghosted"}]}`
	if err := os.WriteFile(s.Path, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}
	db := s.Load()
	if len(db.Jobs) != 1 || db.Jobs[0].Status != model.StatusApplied {
		t.Fatalf("unknown status must default to Applied, got %+v", db.Jobs)
	}
}

func TestSave_WritesWrapperFormat(t *testing.T) {
	s := tempStore(t)
	db := &DB{}
	db.Append(model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-10"})
	if err := s.Save(db); err != nil {
		t.Fatalf("save: %v", err)
	}

	b, err := os.ReadFile(s.Path)
	if err != nil {
		t.Fatal(err)
	}
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(b, &raw); err != nil {
		t.Fatalf("saved file is not a JSON object: %v", err)
	}
	for _, key := range []string{"sort_by_status", "sort_ascending", "filter_text", "jobs"} {
		if _, ok := raw[key]; !ok {
			t.Errorf("saved file missing %q", key)
		}
	}
}

func TestSave_FailureLeavesSessionIntact(t *testing.T) {
	dir := t.TempDir()
	s := Store{Path: filepath.Join(dir, "missing", "nested", ".job_tracker.json")}
	db := &DB{}
	db.Append(model.Job{Company: "Acme", Position: "Engineer", DateApplied: "2024-01-10"})
	if err := s.Save(db); err == nil {
		t.Fatal("expected save into missing directory to fail")
	}
	if len(db.Jobs) != 1 {
		t.Fatal("failed save must not touch in-memory state")
	}
}

func TestRemoveAll(t *testing.T) {
	db := &DB{}
	a := db.Append(model.Job{Company: "A", Position: "x", DateApplied: "2024-01-01"})
	b := db.Append(model.Job{Company: "B", Position: "x", DateApplied: "2024-01-02"})
	c := db.Append(model.Job{Company: "C", Position: "x", DateApplied: "2024-01-03"})

	db.RemoveAll(map[int64]bool{a.ID: true, c.ID: true})
	if len(db.Jobs) != 1 || db.Jobs[0].ID != b.ID {
		t.Fatalf("expected only B to remain, got %+v", db.Jobs)
	}

	db.Remove(b.ID)
	if len(db.Jobs) != 0 {
		t.Fatal("expected empty list")
	}
}

func TestMigrateLegacy(t *testing.T) {
	s := tempStore(t)
	raw := `[{"text":"Acme - Engineer","completed":true},{"text":"just a note","completed":false}]`
	if err := os.WriteFile(s.LegacyPath, []byte(raw), 0o644); err != nil {
		t.Fatal(err)
	}

	s.MigrateLegacy()

	db := s.Load()
	if len(db.Jobs) != 2 {
		t.Fatalf("expected 2 migrated jobs, got %d", len(db.Jobs))
	}
	first := db.Jobs[0]
	if first.Company != "Acme" || first.Position != "Engineer" || first.Status != model.StatusRejected {
		t.Fatalf("bad migration of split text: %+v", first)
	}
	if first.DateApplied != Today() {
		t.Fatalf("migrated date_applied = %q, want today", first.DateApplied)
	}
	second := db.Jobs[1]
	if second.Company != "Unknown Company" || second.Position != "just a note" || second.Status != model.StatusApplied {
		t.Fatalf("bad migration of unsplit text: %+v", second)
	}

	if _, err := os.Stat(s.LegacyPath); !os.IsNotExist(err) {
		t.Fatal("legacy file should have been renamed")
	}
	if _, err := os.Stat(s.LegacyPath + ".bak"); err != nil {
		t.Fatalf("expected .bak rename: %v", err)
	}
}

func TestMigrateLegacy_SkipsWhenJobFileExists(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.Path, []byte(`{"jobs":[]}`), 0o644); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(s.LegacyPath, []byte(`[{"text":"Acme - Engineer"}]`), 0o644); err != nil {
		t.Fatal(err)
	}

	s.MigrateLegacy()

	if _, err := os.Stat(s.LegacyPath); err != nil {
		t.Fatal("legacy file must be untouched when a job file already exists")
	}
	if got := s.Load(); len(got.Jobs) != 0 {
		t.Fatal("existing job file must win over legacy data")
	}
}

func TestMigrateLegacy_MalformedIsSilentNoop(t *testing.T) {
	s := tempStore(t)
	if err := os.WriteFile(s.LegacyPath, []byte("not json"), 0o644); err != nil {
		t.Fatal(err)
	}

	s.MigrateLegacy()

	if _, err := os.Stat(s.Path); !os.IsNotExist(err) {
		t.Fatal("failed migration must not create a job file")
	}
	if _, err := os.Stat(s.LegacyPath); err != nil {
		t.Fatal("failed migration must leave the legacy file alone")
	}
}
