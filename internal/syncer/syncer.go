// Package syncer pushes pending local edits to the remote store.
package syncer

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"slices"
	"time"

	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/internal/pending"
	"github.com/huangsam/schoolscore/schema"
)

// Coordinator reconciles one school's pending store against the remote store.
// Callers serialize calls per source; IsSyncing in the store status reflects an in-flight save.
type Coordinator struct {
	store    *pending.Store
	remote   contract.RemoteStore
	schoolID string
	now      func() time.Time
}

// NewCoordinator wires a pending store to a remote store for one school.
func NewCoordinator(store *pending.Store, remote contract.RemoteStore, schoolID string) *Coordinator {
	return &Coordinator{store: store, remote: remote, schoolID: schoolID, now: time.Now}
}

// SavePendingForSource pushes the pending scores of one source plus every
// pending comment. Pending state is cleared only when every write succeeds,
// and only for entries left unchanged since they were read.
func (c *Coordinator) SavePendingForSource(ctx context.Context, source string) (schema.SyncResult, error) {
	if err := c.checkSchool(); err != nil {
		return schema.SyncResult{Source: source}, err
	}
	entries := c.store.GetPendingForSource(source)
	comments := c.store.PendingComments()

	result := schema.SyncResult{Source: source}
	if len(entries) == 0 && len(comments) == 0 {
		result.Success = true
		return result, nil
	}

	c.store.SetSyncing(true)
	defer c.store.SetSyncing(false)

	if err := c.push(ctx, entries, comments); err != nil {
		c.store.SetError(contract.ErrSyncFailed.Error())
		return result, &contract.SyncError{Source: source, Err: err}
	}

	syncedAt := c.now()
	c.store.ClearSynced(entries, comments)
	c.store.SetLastSync(syncedAt)
	c.store.SetError("")

	result.Success = true
	result.Count = len(entries)
	result.Comments = len(comments)
	result.SyncedAt = syncedAt
	return result, nil
}

func (c *Coordinator) checkSchool() error {
	if c.store.SchoolID() != c.schoolID {
		return fmt.Errorf("%w: store holds %q, saving for %q", contract.ErrSchoolMismatch, c.store.SchoolID(), c.schoolID)
	}
	return nil
}

func (c *Coordinator) push(ctx context.Context, entries []schema.PendingEntry, comments schema.PendingComments) error {
	if len(entries) > 0 {
		writes := make([]schema.LTScoreWrite, 0, len(entries))
		for _, e := range entries {
			writes = append(writes, schema.LTScoreWrite{
				IndicatorCode: e.IndicatorCode,
				Column:        e.Column,
				Value:         e.Value,
				Source:        e.Source,
			})
		}
		if err := c.remote.BatchUpsertLTScores(ctx, c.schoolID, writes); err != nil {
			return fmt.Errorf("batch score write: %w", err)
		}
	}

	// Every comment is attempted; saved siblings stay saved when one fails
	var errs []error
	for _, code := range slices.Sorted(maps.Keys(comments)) {
		if err := c.remote.UpsertComment(ctx, c.schoolID, code, comments[code].Comment); err != nil {
			errs = append(errs, fmt.Errorf("comment %s: %w", code, err))
		}
	}
	return errors.Join(errs...)
}

// SaveAll saves every source with pending scores, then any remaining comments.
// Sources are attempted independently and their errors joined.
func (c *Coordinator) SaveAll(ctx context.Context) ([]schema.SyncResult, error) {
	if err := c.checkSchool(); err != nil {
		return nil, err
	}
	var results []schema.SyncResult
	var errs []error
	for _, source := range c.store.Sources() {
		res, err := c.SavePendingForSource(ctx, source)
		results = append(results, res)
		if err != nil {
			errs = append(errs, err)
		}
	}
	if len(c.store.PendingComments()) > 0 {
		res, err := c.SavePendingForSource(ctx, "")
		results = append(results, res)
		if err != nil {
			errs = append(errs, err)
		}
	}
	return results, errors.Join(errs...)
}

// SaveChecklistScore validates and writes one checklist answer straight to the remote store.
func (c *Coordinator) SaveChecklistScore(ctx context.Context, indicatorCode, value, source string) error {
	code, err := contract.SanitizeIndicatorCode(indicatorCode)
	if err != nil {
		return err
	}
	score, err := contract.ValidateScore(value)
	if err != nil {
		return err
	}
	src, err := contract.SanitizeSource(source)
	if err != nil {
		return err
	}
	if err := c.remote.UpsertIndicatorScore(ctx, c.schoolID, code, score, src); err != nil {
		return &contract.SyncError{Source: src, Err: err}
	}
	return nil
}
