package tui

import (
	"sort"
	"strings"
	"time"

	"github.com/mrg327/job-tracker/internal/model"
	"github.com/mrg327/job-tracker/internal/store"
)

// Sentinel keys for unparsable dates: earliest when sorting ascending,
// latest when descending, matching the legacy tracker's ordering.
var (
	dayMin = time.Date(1, 1, 1, 0, 0, 0, 0, time.UTC)
	dayMax = time.Date(9999, 12, 31, 0, 0, 0, 0, time.UTC)
)

// visibleJobs derives the displayed list from the canonical one: filter first
// (preserving canonical order), then sort. Pure with respect to db; the
// returned pointers alias db.Jobs so identity survives the projection.
func visibleJobs(db *store.DB) []*model.Job {
	filter := strings.ToLower(strings.TrimSpace(db.FilterText))

	var out []*model.Job
	for i := range db.Jobs {
		j := &db.Jobs[i]
		if filter != "" && !jobMatches(j, filter) {
			continue
		}
		out = append(out, j)
	}

	if db.SortByStatus {
		sortByStatusDate(out)
	} else {
		sortByDate(out, db.SortAscending)
	}
	return out
}

func jobMatches(j *model.Job, lowerFilter string) bool {
	return strings.Contains(strings.ToLower(j.Company), lowerFilter) ||
		strings.Contains(strings.ToLower(j.Position), lowerFilter)
}

// matchCount reports how many canonical records a candidate filter would
// keep. Used by the filter dialog's live preview; an empty candidate matches
// everything.
func matchCount(db *store.DB, candidate string) int {
	filter := strings.ToLower(strings.TrimSpace(candidate))
	if filter == "" {
		return len(db.Jobs)
	}
	n := 0
	for i := range db.Jobs {
		if jobMatches(&db.Jobs[i], filter) {
			n++
		}
	}
	return n
}

func sortDate(j *model.Job, unparsable time.Time) time.Time {
	if d, ok := model.ParseDay(j.DateApplied); ok {
		return d
	}
	return unparsable
}

func sortByDate(jobs []*model.Job, ascending bool) {
	sentinel := dayMax
	if ascending {
		sentinel = dayMin
	}
	sort.SliceStable(jobs, func(a, b int) bool {
		da, db := sortDate(jobs[a], sentinel), sortDate(jobs[b], sentinel)
		if ascending {
			return da.Before(db)
		}
		return da.After(db)
	})
}

func sortByStatusDate(jobs []*model.Job) {
	// Status priority ascending; within a status group dates are always
	// newest-first, regardless of the global sort direction.
	sort.SliceStable(jobs, func(a, b int) bool {
		pa, pb := jobs[a].Status.Priority(), jobs[b].Status.Priority()
		if pa != pb {
			return pa < pb
		}
		return sortDate(jobs[a], dayMin).After(sortDate(jobs[b], dayMin))
	})
}
