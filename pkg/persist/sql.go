package persist

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/EDDiscovery/EliteDangerousCore-sub005/pkg/dispatch"

	_ "github.com/lib/pq"
	_ "modernc.org/sqlite"
)

// Dialect selects placeholder syntax.
type Dialect int

const (
	SQLite Dialect = iota
	Postgres
)

// DriverName returns the database/sql driver for d.
func (d Dialect) DriverName() string {
	if d == Postgres {
		return "postgres"
	}
	return "sqlite"
}

// bind rewrites "?" placeholders for the dialect.
func (d Dialect) bind(query string) string {
	if d != Postgres {
		return query
	}
	var b strings.Builder
	n := 0
	for _, r := range query {
		if r == '?' {
			n++
			fmt.Fprintf(&b, "$%d", n)
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

// SQLPersister keeps one row per distinct snapshot.
type SQLPersister struct {
	db      *sql.DB
	dialect Dialect
	now     func() time.Time
}

// NewSQLPersister creates the snapshots table if needed.
func NewSQLPersister(ctx context.Context, db *sql.DB, dialect Dialect) (*SQLPersister, error) {
	s := &SQLPersister{db: db, dialect: dialect, now: time.Now}
	if err := s.migrate(ctx); err != nil {
		return nil, fmt.Errorf("migrate snapshots table: %w", err)
	}
	return s, nil
}

func (s *SQLPersister) migrate(ctx context.Context) error {
	query := `
	CREATE TABLE IF NOT EXISTS snapshots (
		id TEXT PRIMARY KEY,
		hash TEXT NOT NULL,
		version BIGINT NOT NULL,
		events BIGINT NOT NULL,
		last_seq BIGINT NOT NULL,
		projections TEXT NOT NULL,
		body TEXT NOT NULL,
		persisted_at TEXT NOT NULL
	)`
	_, err := s.db.ExecContext(ctx, query)
	return err
}

// Persist upserts snap. A snapshot already stored only has its version and
// persisted_at refreshed.
func (s *SQLPersister) Persist(ctx context.Context, snap *dispatch.Snapshot) error {
	rec := RecordOf(snap)
	names, err := json.Marshal(rec.Projections)
	if err != nil {
		return err
	}
	query := s.dialect.bind(`
	INSERT INTO snapshots (id, hash, version, events, last_seq, projections, body, persisted_at)
	VALUES (?, ?, ?, ?, ?, ?, ?, ?)
	ON CONFLICT(id) DO UPDATE SET version = excluded.version, persisted_at = excluded.persisted_at`)
	_, err = s.db.ExecContext(ctx, query,
		rec.ID, rec.Hash, int64(rec.Version), rec.Events, int64(rec.LastSeq),
		string(names), string(rec.Body), s.now().UTC().Format(time.RFC3339Nano),
	)
	if err != nil {
		return fmt.Errorf("insert snapshot: %w", err)
	}
	return nil
}

// Latest returns the most recently persisted snapshot.
func (s *SQLPersister) Latest(ctx context.Context) (*Record, error) {
	query := `SELECT id, hash, version, events, last_seq, projections, body FROM snapshots ORDER BY persisted_at DESC LIMIT 1`
	var (
		rec              Record
		version, lastSeq int64
		names, body      string
	)
	err := s.db.QueryRowContext(ctx, query).Scan(&rec.ID, &rec.Hash, &version, &rec.Events, &lastSeq, &names, &body)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("query latest snapshot: %w", err)
	}
	rec.Version = uint64(version)
	rec.LastSeq = uint64(lastSeq)
	rec.Body = json.RawMessage(body)
	if err := json.Unmarshal([]byte(names), &rec.Projections); err != nil {
		return nil, fmt.Errorf("parse projection names: %w", err)
	}
	if err := rec.Verify(); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Close closes the database.
func (s *SQLPersister) Close() error { return s.db.Close() }
