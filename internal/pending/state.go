// Package pending holds unsynced local edits and mirrors them to the local cache.
package pending

import (
	"maps"
	"time"

	"github.com/huangsam/schoolscore/schema"
)

// State is the in-memory model of pending edits plus session sync status.
type State struct {
	LTScores     schema.PendingScores
	Comments     schema.PendingComments
	IsSyncing    bool
	LastSyncTime *time.Time
	Error        string
}

// NewState returns an empty, well-formed state.
func NewState() *State {
	return &State{
		LTScores: make(schema.PendingScores),
		Comments: make(schema.PendingComments),
	}
}

// Clone returns a deep copy of the state.
func (s *State) Clone() *State {
	out := &State{
		LTScores:  make(schema.PendingScores, len(s.LTScores)),
		Comments:  maps.Clone(s.Comments),
		IsSyncing: s.IsSyncing,
		Error:     s.Error,
	}
	if out.Comments == nil {
		out.Comments = make(schema.PendingComments)
	}
	for code, cols := range s.LTScores {
		out.LTScores[code] = maps.Clone(cols)
	}
	if s.LastSyncTime != nil {
		t := *s.LastSyncTime
		out.LastSyncTime = &t
	}
	return out
}

// Count returns the number of pending score entries plus pending comments.
func (s *State) Count() int {
	n := len(s.Comments)
	for _, cols := range s.LTScores {
		n += len(cols)
	}
	return n
}
