package pending

import (
	"maps"
	"slices"
	"strings"
	"sync"
	"time"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// Store owns the pending state of one school and writes mutations
// through to the local cache under that school's keys.
type Store struct {
	mu     sync.RWMutex
	state  *State
	cache  contract.LocalCache
	school string
	now    func() time.Time
}

// NewStore returns the store of schoolID seeded from the local cache. A nil
// cache keeps pending edits in memory only.
func NewStore(cache contract.LocalCache, schoolID string) *Store {
	s := &Store{cache: cache, school: schoolID, now: time.Now}
	s.state = load(cache, schoolID)
	return s
}

// SchoolID returns the school whose edits this store holds.
func (s *Store) SchoolID() string { return s.school }

// dispatch applies an action and persists whatever it dirtied.
func (s *Store) dispatch(action Action) {
	s.mu.Lock()
	defer s.mu.Unlock()
	next, changed := reduce(s.state, action)
	s.state = next
	s.persist(changed)
}

// SetPendingScore records a local edit. Empty code or column is ignored.
func (s *Store) SetPendingScore(indicatorCode, column, value, source string) {
	s.dispatch(SetPendingScore{
		IndicatorCode: indicatorCode,
		Column:        column,
		Value:         value,
		Source:        source,
		Timestamp:     s.now().UnixMilli(),
	})
}

// SetPendingComment records a local comment edit.
func (s *Store) SetPendingComment(indicatorCode, comment string) {
	s.dispatch(SetPendingComment{IndicatorCode: indicatorCode, Comment: comment, Timestamp: s.now().UnixMilli()})
}

// ClearForSource discards the pending scores of one source.
func (s *Store) ClearForSource(source string) { s.dispatch(ClearForSource{Source: source}) }

// ClearSynced discards the pushed entries that were not edited since the push.
func (s *Store) ClearSynced(scores []schema.PendingEntry, comments schema.PendingComments) {
	s.dispatch(ClearSynced{Scores: scores, Comments: comments})
}

// ClearComments discards all pending comments.
func (s *Store) ClearComments() { s.dispatch(ClearComments{}) }

// ClearAllPending discards every pending score and comment.
func (s *Store) ClearAllPending() { s.dispatch(ClearAllPending{}) }

// SetSyncing sets the in-flight flag.
func (s *Store) SetSyncing(syncing bool) { s.dispatch(SetSyncing{Syncing: syncing}) }

// SetLastSync records a successful sync time.
func (s *Store) SetLastSync(t time.Time) { s.dispatch(SetLastSync{Time: t}) }

// SetError records the session error. An empty message clears it.
func (s *Store) SetError(message string) { s.dispatch(SetError{Message: message}) }

// GetValue returns the effective value of an indicator column.
// A non-empty pending edit wins over the remote value.
func (s *Store) GetValue(indicatorCode, column, remote string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.state.LTScores[indicatorCode][column]; ok && p.Value != "" {
		return p.Value
	}
	return remote
}

// GetComment returns the effective comment of an indicator.
func (s *Store) GetComment(indicatorCode, remote string) string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if p, ok := s.state.Comments[indicatorCode]; ok {
		return p.Comment
	}
	return remote
}

// GetPendingForSource lists the pending scores of one source ordered by indicator and column.
func (s *Store) GetPendingForSource(source string) []schema.PendingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []schema.PendingEntry
	for code, cols := range s.state.LTScores {
		for col, p := range cols {
			if p.Source != source {
				continue
			}
			out = append(out, schema.PendingEntry{
				IndicatorCode: code,
				Column:        col,
				Value:         p.Value,
				Source:        p.Source,
				Timestamp:     p.Timestamp,
			})
		}
	}
	sortEntries(out)
	return out
}

// Entries lists every pending score ordered by indicator and column.
func (s *Store) Entries() []schema.PendingEntry {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]schema.PendingEntry, 0, len(s.state.LTScores))
	for code, cols := range s.state.LTScores {
		for col, p := range cols {
			out = append(out, schema.PendingEntry{
				IndicatorCode: code, Column: col, Value: p.Value, Source: p.Source, Timestamp: p.Timestamp,
			})
		}
	}
	sortEntries(out)
	return out
}

func sortEntries(entries []schema.PendingEntry) {
	slices.SortFunc(entries, func(a, b schema.PendingEntry) int {
		if c := strings.Compare(a.IndicatorCode, b.IndicatorCode); c != 0 {
			return c
		}
		return strings.Compare(a.Column, b.Column)
	})
}

// Sources returns the distinct sources that have pending scores, sorted.
func (s *Store) Sources() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	seen := make(map[string]struct{})
	for _, cols := range s.state.LTScores {
		for _, p := range cols {
			seen[p.Source] = struct{}{}
		}
	}
	return slices.Sorted(maps.Keys(seen))
}

// PendingComments returns a copy of the pending comments.
func (s *Store) PendingComments() schema.PendingComments {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return maps.Clone(s.state.Comments)
}

// PendingValues returns pending values as indicator code -> column -> value.
func (s *Store) PendingValues() map[string]map[string]string {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[string]map[string]string, len(s.state.LTScores))
	for code, cols := range s.state.LTScores {
		values := make(map[string]string, len(cols))
		for col, p := range cols {
			values[col] = p.Value
		}
		out[code] = values
	}
	return out
}

// HasPendingChanges reports whether any score or comment is unsynced.
func (s *Store) HasPendingChanges() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.state.LTScores) > 0 || len(s.state.Comments) > 0
}

// PendingCount returns the number of unsynced scores plus comments.
func (s *Store) PendingCount() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Count()
}

// Snapshot returns a deep copy of the current state.
func (s *Store) Snapshot() *State {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.state.Clone()
}

// Status returns the session sync status.
func (s *Store) Status() schema.SyncStatus {
	s.mu.RLock()
	defer s.mu.RUnlock()
	status := schema.SyncStatus{
		IsSyncing:    s.state.IsSyncing,
		Error:        s.state.Error,
		PendingCount: s.state.Count(),
	}
	if s.state.LastSyncTime != nil {
		t := *s.state.LastSyncTime
		status.LastSyncTime = &t
	}
	return status
}
