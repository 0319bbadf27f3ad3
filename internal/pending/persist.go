package pending

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// Local cache key prefixes. Entries are stored per school as "<prefix>:<school>".
const (
	ScoresKey   = "sse_pending_scores"
	CommentsKey = "sse_pending_comments"
	LastSyncKey = "sse_last_sync"
)

// CacheVersion is the layout version written with every entry.
// Entries with any other version are wiped on load.
const CacheVersion = 1

// Warn reports best-effort failures. Tests replace it to capture output.
var Warn = contract.LogWarn

// ScopedKey returns the cache key of base for schoolID. An empty school
// uses the bare key.
func ScopedKey(base, schoolID string) string {
	if schoolID == "" {
		return base
	}
	return base + ":" + schoolID
}

// persist writes the dirtied entries. Failures are reported and swallowed.
func (s *Store) persist(changed dirty) {
	if s.cache == nil || changed == 0 {
		return
	}
	ts := s.now().Unix()
	if changed&dirtyScores != 0 {
		s.writeJSON(ScopedKey(ScoresKey, s.school), s.state.LTScores, ts)
	}
	if changed&dirtyComments != 0 {
		s.writeJSON(ScopedKey(CommentsKey, s.school), s.state.Comments, ts)
	}
	if changed&dirtyLastSync != 0 && s.state.LastSyncTime != nil {
		s.writeJSON(ScopedKey(LastSyncKey, s.school), s.state.LastSyncTime.UTC().Format(time.RFC3339Nano), ts)
	}
}

func (s *Store) writeJSON(key string, value any, ts int64) {
	data, err := json.Marshal(value)
	if err != nil {
		Warn(fmt.Sprintf("failed to encode %s", key), err)
		return
	}
	if err := s.cache.Set(key, data, CacheVersion, ts); err != nil {
		Warn(fmt.Sprintf("failed to persist %s", key), err)
	}
}

// load rebuilds the state of schoolID from the cache. Unreadable entries are
// wiped and treated as empty.
func load(cache contract.LocalCache, schoolID string) *State {
	state := NewState()
	if cache == nil {
		return state
	}
	scoresKey := ScopedKey(ScoresKey, schoolID)
	commentsKey := ScopedKey(CommentsKey, schoolID)
	lastSyncKey := ScopedKey(LastSyncKey, schoolID)

	var scores schema.PendingScores
	if readEntry(cache, scoresKey, &scores) {
		for code, cols := range scores {
			if code == "" || len(cols) == 0 {
				continue
			}
			for col, p := range cols {
				if col == "" {
					continue
				}
				if state.LTScores[code] == nil {
					state.LTScores[code] = make(map[string]schema.PendingScore)
				}
				state.LTScores[code][col] = p
			}
		}
	}

	var comments schema.PendingComments
	if readEntry(cache, commentsKey, &comments) {
		for code, c := range comments {
			if code != "" {
				state.Comments[code] = c
			}
		}
	}

	var lastSync string
	if readEntry(cache, lastSyncKey, &lastSync) {
		t, err := time.Parse(time.RFC3339Nano, lastSync)
		if err != nil {
			wipe(cache, lastSyncKey, err)
		} else {
			state.LastSyncTime = &t
		}
	}
	return state
}

// readEntry decodes one cache entry into out. It returns false when the
// entry is missing or was wiped.
func readEntry(cache contract.LocalCache, key string, out any) bool {
	data, version, _, err := cache.Get(key)
	if errors.Is(err, sql.ErrNoRows) {
		return false
	}
	if err != nil {
		Warn(fmt.Sprintf("failed to read %s", key), err)
		return false
	}
	if version != CacheVersion {
		wipe(cache, key, fmt.Errorf("cache version %d, expected %d", version, CacheVersion))
		return false
	}
	if err := json.Unmarshal(data, out); err != nil {
		wipe(cache, key, err)
		return false
	}
	return true
}

func wipe(cache contract.LocalCache, key string, cause error) {
	Warn("discarding local state", &contract.CorruptedStateError{Key: key, Err: cause})
	if err := cache.Delete(key); err != nil {
		Warn(fmt.Sprintf("failed to delete %s", key), err)
	}
}
