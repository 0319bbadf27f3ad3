package iocache

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"io/fs"
	"time"

	"github.com/google/uuid"
	"github.com/huangsam/schoolscore/internal/contract"
	"github.com/huangsam/schoolscore/schema"
)

// Table names for the remote score store.
const (
	indicatorScoresTable = "indicator_scores"
	ltScoresTable        = "lt_scores"
	commentsTable        = "indicator_comments"
	settingsTable        = "settings"
	surveyResponsesTable = "survey_responses"
)

// remoteTables lists every remote table in creation order.
var remoteTables = []string{indicatorScoresTable, ltScoresTable, commentsTable, settingsTable, surveyResponsesTable}

// RemoteStoreImpl implements the RemoteStore interface over database/sql.
type RemoteStoreImpl struct {
	db      *sql.DB
	backend schema.DatabaseBackend
	now     func() time.Time
}

var _ contract.RemoteStore = &RemoteStoreImpl{} // Compile-time check

// NewRemoteStore creates a new RemoteStore with the specified backend and
// ensures every table exists.
func NewRemoteStore(backend schema.DatabaseBackend, connStr string) (*RemoteStoreImpl, error) {
	if backend == schema.NoneBackend {
		return &RemoteStoreImpl{backend: backend, now: time.Now}, nil
	}

	db, err := openDB(backend, connStr, GetRemoteDBFilePath())
	if err != nil {
		return nil, err
	}

	if err := createRemoteTables(db); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("failed to create remote tables: %w", err)
	}

	return &RemoteStoreImpl{db: db, backend: backend, now: time.Now}, nil
}

// createRemoteTables applies the embedded up migrations as idempotent DDL.
func createRemoteTables(db *sql.DB) error {
	files, err := fs.Glob(migrationsFS, "migrations/*.up.sql")
	if err != nil {
		return err
	}
	for _, name := range files {
		ddl, err := migrationsFS.ReadFile(name)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", name, err)
		}
		if _, err := db.Exec(string(ddl)); err != nil {
			return fmt.Errorf("failed to apply %s: %w", name, err)
		}
	}
	return nil
}

// errRemoteDisabled is returned for every call against the none backend.
var errRemoteDisabled = errors.New("remote store is disabled (backend none)")

func (rs *RemoteStoreImpl) check() error {
	if rs.backend == schema.NoneBackend || rs.db == nil {
		return errRemoteDisabled
	}
	return nil
}

func (rs *RemoteStoreImpl) q(query string) string {
	return rebind(rs.backend, query)
}

func (rs *RemoteStoreImpl) table(name string) string {
	return quoteTableName(name, rs.backend)
}

// withTx runs fn inside a transaction and commits when fn succeeds.
func (rs *RemoteStoreImpl) withTx(ctx context.Context, fn func(tx *sql.Tx) error) error {
	tx, err := rs.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	if err := fn(tx); err != nil {
		_ = tx.Rollback()
		return err
	}
	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit transaction: %w", err)
	}
	return nil
}

// GetIndicatorScores returns every checklist score row recorded for a school.
func (rs *RemoteStoreImpl) GetIndicatorScores(ctx context.Context, schoolID string) ([]schema.IndicatorScoreRow, error) {
	if err := rs.check(); err != nil {
		return nil, err
	}
	query := rs.q(fmt.Sprintf(`SELECT indicator_code, source, score_value, updated_at FROM %s
		WHERE school_id = ? ORDER BY indicator_code, source`, rs.table(indicatorScoresTable)))
	rows, err := rs.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query indicator scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.IndicatorScoreRow
	for rows.Next() {
		var r schema.IndicatorScoreRow
		var value string
		var updated int64
		if err := rows.Scan(&r.IndicatorCode, &r.Source, &value, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan indicator score: %w", err)
		}
		r.SchoolID = schoolID
		r.Value = schema.IndicatorValue(value)
		r.UpdatedAt = time.UnixMilli(updated)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetLTScores returns every LT column value recorded for a school.
func (rs *RemoteStoreImpl) GetLTScores(ctx context.Context, schoolID string) ([]schema.LTScoreRow, error) {
	if err := rs.check(); err != nil {
		return nil, err
	}
	query := rs.q(fmt.Sprintf(`SELECT indicator_code, lt_column, score_value, source, updated_at FROM %s
		WHERE school_id = ? ORDER BY indicator_code, lt_column`, rs.table(ltScoresTable)))
	rows, err := rs.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query LT scores: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.LTScoreRow
	for rows.Next() {
		var r schema.LTScoreRow
		var updated int64
		if err := rows.Scan(&r.IndicatorCode, &r.Column, &r.Value, &r.Source, &updated); err != nil {
			return nil, fmt.Errorf("failed to scan LT score: %w", err)
		}
		r.SchoolID = schoolID
		r.UpdatedAt = time.UnixMilli(updated)
		out = append(out, r)
	}
	return out, rows.Err()
}

// GetComments returns indicator comments keyed by indicator code.
func (rs *RemoteStoreImpl) GetComments(ctx context.Context, schoolID string) (map[string]string, error) {
	if err := rs.check(); err != nil {
		return nil, err
	}
	query := rs.q(fmt.Sprintf(`SELECT indicator_code, comment_text FROM %s WHERE school_id = ?`, rs.table(commentsTable)))
	rows, err := rs.db.QueryContext(ctx, query, schoolID)
	if err != nil {
		return nil, fmt.Errorf("failed to query comments: %w", err)
	}
	defer func() { _ = rows.Close() }()

	out := make(map[string]string)
	for rows.Next() {
		var code, text string
		if err := rows.Scan(&code, &text); err != nil {
			return nil, fmt.Errorf("failed to scan comment: %w", err)
		}
		out[code] = text
	}
	return out, rows.Err()
}

// GetIndicatorDataPoints returns the checklist data points for one indicator.
func (rs *RemoteStoreImpl) GetIndicatorDataPoints(ctx context.Context, schoolID, indicatorCode string) ([]schema.DataPoint, error) {
	if err := rs.check(); err != nil {
		return nil, err
	}
	query := rs.q(fmt.Sprintf(`SELECT source, score_value FROM %s
		WHERE school_id = ? AND indicator_code = ? ORDER BY source`, rs.table(indicatorScoresTable)))
	rows, err := rs.db.QueryContext(ctx, query, schoolID, indicatorCode)
	if err != nil {
		return nil, fmt.Errorf("failed to query data points: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.DataPoint
	for rows.Next() {
		var dp schema.DataPoint
		var value string
		if err := rows.Scan(&dp.Source, &value); err != nil {
			return nil, fmt.Errorf("failed to scan data point: %w", err)
		}
		dp.Value = schema.IndicatorValue(value)
		out = append(out, dp)
	}
	return out, rows.Err()
}

// UpsertIndicatorScore writes a checklist score. A null value removes the row.
func (rs *RemoteStoreImpl) UpsertIndicatorScore(ctx context.Context, schoolID, indicatorCode string, value schema.IndicatorValue, source string) error {
	if err := rs.check(); err != nil {
		return err
	}
	return rs.withTx(ctx, func(tx *sql.Tx) error {
		if value == schema.NullValue {
			query := rs.q(fmt.Sprintf(`DELETE FROM %s WHERE school_id = ? AND indicator_code = ? AND source = ?`, rs.table(indicatorScoresTable)))
			_, err := tx.ExecContext(ctx, query, schoolID, indicatorCode, source)
			return err
		}
		query := rs.q(upsertQuery(rs.backend, indicatorScoresTable,
			[]string{"school_id", "indicator_code", "source", "score_value", "updated_at"},
			[]string{"school_id", "indicator_code", "source"}))
		if _, err := tx.ExecContext(ctx, query, schoolID, indicatorCode, source, string(value), rs.now().UnixMilli()); err != nil {
			return fmt.Errorf("failed to upsert indicator score %s: %w", indicatorCode, err)
		}
		return nil
	})
}

// UpsertLTScore writes one LT column value.
func (rs *RemoteStoreImpl) UpsertLTScore(ctx context.Context, schoolID, indicatorCode, column, value, source string) error {
	return rs.BatchUpsertLTScores(ctx, schoolID, []schema.LTScoreWrite{
		{IndicatorCode: indicatorCode, Column: column, Value: value, Source: source},
	})
}

// BatchUpsertLTScores writes every value in a single transaction.
// An empty value removes the column.
func (rs *RemoteStoreImpl) BatchUpsertLTScores(ctx context.Context, schoolID string, writes []schema.LTScoreWrite) error {
	if err := rs.check(); err != nil {
		return err
	}
	if len(writes) == 0 {
		return nil
	}

	upsert := rs.q(upsertQuery(rs.backend, ltScoresTable,
		[]string{"school_id", "indicator_code", "lt_column", "score_value", "source", "updated_at"},
		[]string{"school_id", "indicator_code", "lt_column"}))
	remove := rs.q(fmt.Sprintf(`DELETE FROM %s WHERE school_id = ? AND indicator_code = ? AND lt_column = ?`, rs.table(ltScoresTable)))
	ts := rs.now().UnixMilli()

	return rs.withTx(ctx, func(tx *sql.Tx) error {
		for _, w := range writes {
			var err error
			if w.Value == "" {
				_, err = tx.ExecContext(ctx, remove, schoolID, w.IndicatorCode, w.Column)
			} else {
				_, err = tx.ExecContext(ctx, upsert, schoolID, w.IndicatorCode, w.Column, w.Value, w.Source, ts)
			}
			if err != nil {
				return fmt.Errorf("failed to write LT score %s/%s: %w", w.IndicatorCode, w.Column, err)
			}
		}
		return nil
	})
}

// UpsertComment writes an indicator comment. An empty comment deletes it.
func (rs *RemoteStoreImpl) UpsertComment(ctx context.Context, schoolID, indicatorCode, comment string) error {
	if err := rs.check(); err != nil {
		return err
	}
	return rs.withTx(ctx, func(tx *sql.Tx) error {
		if comment == "" {
			query := rs.q(fmt.Sprintf(`DELETE FROM %s WHERE school_id = ? AND indicator_code = ?`, rs.table(commentsTable)))
			_, err := tx.ExecContext(ctx, query, schoolID, indicatorCode)
			return err
		}
		query := rs.q(upsertQuery(rs.backend, commentsTable,
			[]string{"school_id", "indicator_code", "comment_text", "updated_at"},
			[]string{"school_id", "indicator_code"}))
		if _, err := tx.ExecContext(ctx, query, schoolID, indicatorCode, comment, rs.now().UnixMilli()); err != nil {
			return fmt.Errorf("failed to upsert comment %s: %w", indicatorCode, err)
		}
		return nil
	})
}

// GetSetting returns the decoded JSON value of a setting and whether it exists.
func (rs *RemoteStoreImpl) GetSetting(ctx context.Context, key string) (any, bool, error) {
	if err := rs.check(); err != nil {
		return nil, false, err
	}
	var raw string
	query := rs.q(fmt.Sprintf(`SELECT setting_value FROM %s WHERE setting_key = ?`, rs.table(settingsTable)))
	err := rs.db.QueryRowContext(ctx, query, key).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read setting %s: %w", key, err)
	}
	var value any
	if err := json.Unmarshal([]byte(raw), &value); err != nil {
		return nil, false, fmt.Errorf("failed to decode setting %s: %w", key, err)
	}
	return value, true, nil
}

// SetSetting stores any JSON-encodable value under key.
func (rs *RemoteStoreImpl) SetSetting(ctx context.Context, key string, value any) error {
	if err := rs.check(); err != nil {
		return err
	}
	raw, err := json.Marshal(value)
	if err != nil {
		return fmt.Errorf("failed to encode setting %s: %w", key, err)
	}
	query := rs.q(upsertQuery(rs.backend, settingsTable,
		[]string{"setting_key", "setting_value", "updated_at"}, []string{"setting_key"}))
	if _, err := rs.db.ExecContext(ctx, query, key, string(raw), rs.now().UnixMilli()); err != nil {
		return fmt.Errorf("failed to write setting %s: %w", key, err)
	}
	return nil
}

// SubmitSurveyResponse records one rating. A repeated submission by the same
// respondent for the same indicator replaces the earlier one.
func (rs *RemoteStoreImpl) SubmitSurveyResponse(ctx context.Context, response schema.SurveyResponse) error {
	if err := rs.check(); err != nil {
		return err
	}
	if response.ID == "" {
		response.ID = uuid.NewString()
	}
	if response.SubmittedAt.IsZero() {
		response.SubmittedAt = rs.now()
	}
	online := 0
	if response.Online {
		online = 1
	}
	query := rs.q(upsertQuery(rs.backend, surveyResponsesTable,
		[]string{"school_id", "survey_kind", "respondent_id", "indicator_code", "response_id", "rating", "online_flag", "review_status", "submitted_at"},
		[]string{"school_id", "survey_kind", "respondent_id", "indicator_code"}))
	_, err := rs.db.ExecContext(ctx, query,
		response.SchoolID, string(response.Kind), response.RespondentID, response.IndicatorCode,
		response.ID, response.Rating, online, string(response.Status), response.SubmittedAt.UnixMilli())
	if err != nil {
		return fmt.Errorf("failed to record survey response: %w", err)
	}
	return nil
}

// ListSurveyResponses returns all responses of one survey kind for a school.
func (rs *RemoteStoreImpl) ListSurveyResponses(ctx context.Context, schoolID string, kind schema.SurveyKind) ([]schema.SurveyResponse, error) {
	if err := rs.check(); err != nil {
		return nil, err
	}
	query := rs.q(fmt.Sprintf(`SELECT response_id, respondent_id, indicator_code, rating, online_flag, review_status, submitted_at
		FROM %s WHERE school_id = ? AND survey_kind = ? ORDER BY respondent_id, indicator_code`, rs.table(surveyResponsesTable)))
	rows, err := rs.db.QueryContext(ctx, query, schoolID, string(kind))
	if err != nil {
		return nil, fmt.Errorf("failed to query survey responses: %w", err)
	}
	defer func() { _ = rows.Close() }()

	var out []schema.SurveyResponse
	for rows.Next() {
		r := schema.SurveyResponse{SchoolID: schoolID, Kind: kind}
		var online int
		var status string
		var submitted int64
		if err := rows.Scan(&r.ID, &r.RespondentID, &r.IndicatorCode, &r.Rating, &online, &status, &submitted); err != nil {
			return nil, fmt.Errorf("failed to scan survey response: %w", err)
		}
		r.Online = online != 0
		r.Status = schema.RespondentStatus(status)
		r.SubmittedAt = time.UnixMilli(submitted)
		out = append(out, r)
	}
	return out, rows.Err()
}

// SetRespondentStatus applies a moderation status to every response of a respondent.
func (rs *RemoteStoreImpl) SetRespondentStatus(ctx context.Context, schoolID string, kind schema.SurveyKind, respondentID string, status schema.RespondentStatus) error {
	if err := rs.check(); err != nil {
		return err
	}
	return rs.withTx(ctx, func(tx *sql.Tx) error {
		var count int
		countQuery := rs.q(fmt.Sprintf(`SELECT COUNT(*) FROM %s WHERE school_id = ? AND survey_kind = ? AND respondent_id = ?`,
			rs.table(surveyResponsesTable)))
		if err := tx.QueryRowContext(ctx, countQuery, schoolID, string(kind), respondentID).Scan(&count); err != nil {
			return fmt.Errorf("failed to look up respondent: %w", err)
		}
		if count == 0 {
			return fmt.Errorf("no %s survey responses for respondent %s", kind, respondentID)
		}
		query := rs.q(fmt.Sprintf(`UPDATE %s SET review_status = ? WHERE school_id = ? AND survey_kind = ? AND respondent_id = ?`,
			rs.table(surveyResponsesTable)))
		if _, err := tx.ExecContext(ctx, query, string(status), schoolID, string(kind), respondentID); err != nil {
			return fmt.Errorf("failed to update respondent status: %w", err)
		}
		return nil
	})
}

// Close closes the underlying connection.
func (rs *RemoteStoreImpl) Close() error {
	if rs.db != nil {
		return rs.db.Close()
	}
	return nil
}

// GetStatus returns row counts per table and the latest score update.
func (rs *RemoteStoreImpl) GetStatus() (schema.RemoteStatus, error) {
	status := schema.RemoteStatus{
		Backend:    string(rs.backend),
		Connected:  rs.db != nil,
		TableSizes: make(map[string]int64),
	}
	if rs.check() != nil {
		return status, nil
	}

	for _, table := range remoteTables {
		var count int64
		if err := rs.db.QueryRow(fmt.Sprintf("SELECT COUNT(*) FROM %s", rs.table(table))).Scan(&count); err != nil {
			return status, fmt.Errorf("failed to count rows in %s: %w", table, err)
		}
		status.TableSizes[table] = count
	}

	var latest int64
	for _, table := range []string{indicatorScoresTable, ltScoresTable, commentsTable} {
		var ts sql.NullInt64
		if err := rs.db.QueryRow(fmt.Sprintf("SELECT MAX(updated_at) FROM %s", rs.table(table))).Scan(&ts); err != nil {
			return status, fmt.Errorf("failed to get last update in %s: %w", table, err)
		}
		if ts.Valid && ts.Int64 > latest {
			latest = ts.Int64
		}
	}
	if latest > 0 {
		status.LastUpdated = time.UnixMilli(latest)
	}
	return status, nil
}
