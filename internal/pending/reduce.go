package pending

import (
	"time"

	"github.com/huangsam/schoolscore/schema"
)

// dirty marks which durable entries an action changes.
type dirty uint8

const (
	dirtyScores dirty = 1 << iota
	dirtyComments
	dirtyLastSync
)

// Action is a state transition understood by Reduce.
type Action interface {
	apply(s *State) dirty
}

// SetPendingScore upserts the pending value of one indicator column.
type SetPendingScore struct {
	IndicatorCode string
	Column        string
	Value         string
	Source        string
	Timestamp     int64
}

func (a SetPendingScore) apply(s *State) dirty {
	if a.IndicatorCode == "" || a.Column == "" {
		return 0
	}
	cols, ok := s.LTScores[a.IndicatorCode]
	if !ok {
		cols = make(map[string]schema.PendingScore)
		s.LTScores[a.IndicatorCode] = cols
	}
	cols[a.Column] = schema.PendingScore{Value: a.Value, Source: a.Source, Timestamp: a.Timestamp}
	return dirtyScores
}

// SetPendingComment upserts the pending comment of one indicator.
type SetPendingComment struct {
	IndicatorCode string
	Comment       string
	Timestamp     int64
}

func (a SetPendingComment) apply(s *State) dirty {
	if a.IndicatorCode == "" {
		return 0
	}
	s.Comments[a.IndicatorCode] = schema.PendingComment{Comment: a.Comment, Timestamp: a.Timestamp}
	return dirtyComments
}

// ClearForSource removes every pending score recorded for Source.
// Comments are left alone.
type ClearForSource struct {
	Source string
}

func (a ClearForSource) apply(s *State) dirty {
	var changed dirty
	for code, cols := range s.LTScores {
		for col, p := range cols {
			if p.Source == a.Source {
				delete(cols, col)
				changed = dirtyScores
			}
		}
		if len(cols) == 0 {
			delete(s.LTScores, code)
			changed = dirtyScores
		}
	}
	return changed
}

// ClearSynced removes the pushed scores and comments that are still
// unchanged. An entry edited again after the push stays pending.
type ClearSynced struct {
	Scores   []schema.PendingEntry
	Comments schema.PendingComments
}

func (a ClearSynced) apply(s *State) dirty {
	var changed dirty
	for _, e := range a.Scores {
		cols := s.LTScores[e.IndicatorCode]
		p, ok := cols[e.Column]
		if !ok || p.Timestamp != e.Timestamp || p.Value != e.Value || p.Source != e.Source {
			continue
		}
		delete(cols, e.Column)
		if len(cols) == 0 {
			delete(s.LTScores, e.IndicatorCode)
		}
		changed |= dirtyScores
	}
	for code, pushed := range a.Comments {
		if current, ok := s.Comments[code]; ok && current == pushed {
			delete(s.Comments, code)
			changed |= dirtyComments
		}
	}
	return changed
}

// ClearComments drops all pending comments.
type ClearComments struct{}

func (ClearComments) apply(s *State) dirty {
	clear(s.Comments)
	return dirtyComments
}

// ClearAllPending drops all pending scores and comments.
type ClearAllPending struct{}

func (ClearAllPending) apply(s *State) dirty {
	clear(s.LTScores)
	clear(s.Comments)
	return dirtyScores | dirtyComments
}

// SetSyncing toggles the in-flight sync flag.
type SetSyncing struct {
	Syncing bool
}

func (a SetSyncing) apply(s *State) dirty {
	s.IsSyncing = a.Syncing
	return 0
}

// SetLastSync records the time of the last successful sync.
type SetLastSync struct {
	Time time.Time
}

func (a SetLastSync) apply(s *State) dirty {
	t := a.Time
	s.LastSyncTime = &t
	return dirtyLastSync
}

// SetError records or clears (empty message) the session sync error.
type SetError struct {
	Message string
}

func (a SetError) apply(s *State) dirty {
	s.Error = a.Message
	return 0
}

// Reduce returns the state that results from applying action to state.
// The input state is never modified. A nil state is treated as empty.
func Reduce(state *State, action Action) *State {
	next, _ := reduce(state, action)
	return next
}

func reduce(state *State, action Action) (*State, dirty) {
	if state == nil {
		state = NewState()
	}
	next := state.Clone()
	if action == nil {
		return next, 0
	}
	return next, action.apply(next)
}
