package history

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"

	corehistory "github.com/SeleneMelo/Constrained-Pit-Limit-Problem-CPIT/core/history"
)

// SQLiteStore persists convergence history in a SQLite database.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore opens or creates the database at path and ensures schema.
func NewSQLiteStore(path string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	schema := `CREATE TABLE IF NOT EXISTS run_history (
        id INTEGER PRIMARY KEY AUTOINCREMENT,
        run_id TEXT,
        instance TEXT,
        generation INTEGER,
        best_value REAL,
        created_at INTEGER
    );`
	if _, err := db.Exec(schema); err != nil {
		if cerr := db.Close(); cerr != nil {
			return nil, fmt.Errorf("close db: %v (schema err: %w)", cerr, err)
		}
		return nil, err
	}
	return &SQLiteStore{db: db}, nil
}

// Append writes the records to the database.
func (s *SQLiteStore) Append(ctx context.Context, recs []corehistory.Record) error {
	for _, r := range recs {
		_, err := s.db.ExecContext(ctx,
			`INSERT INTO run_history (run_id, instance, generation, best_value, created_at)
            VALUES (?, ?, ?, ?, ?)`,
			r.RunID, r.Instance, r.Generation, r.BestValue, r.CreatedAt.Unix())
		if err != nil {
			return err
		}
	}
	return nil
}

// Query returns records matching q ordered by generation.
func (s *SQLiteStore) Query(ctx context.Context, q corehistory.Query) ([]corehistory.Record, error) {
	var args []any
	query := `SELECT run_id, instance, generation, best_value, created_at FROM run_history WHERE 1=1`
	if q.RunID != "" {
		query += ` AND run_id = ?`
		args = append(args, q.RunID)
	}
	if q.Instance != "" {
		query += ` AND instance = ?`
		args = append(args, q.Instance)
	}
	if !q.Since.IsZero() {
		query += ` AND created_at >= ?`
		args = append(args, q.Since.Unix())
	}
	query += ` ORDER BY run_id, generation`
	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer func() { _ = rows.Close() }()
	var res []corehistory.Record
	for rows.Next() {
		var r corehistory.Record
		var ts int64
		if err := rows.Scan(&r.RunID, &r.Instance, &r.Generation, &r.BestValue, &ts); err != nil {
			return nil, err
		}
		r.CreatedAt = time.Unix(ts, 0).UTC()
		res = append(res, r)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return res, nil
}

// Close closes the underlying database.
func (s *SQLiteStore) Close() error { return s.db.Close() }
