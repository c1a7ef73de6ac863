package recorder

import (
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/rs/zerolog/log"
	_ "modernc.org/sqlite"

	"KlineScope/internal/model"
)

// SQLiteRecorder persists indicator snapshots to a SQLite database.
type SQLiteRecorder struct {
	db *sql.DB
	mu sync.Mutex
}

// NewSQLiteRecorder opens (or creates) the SQLite database and runs migrations.
func NewSQLiteRecorder(dbPath string) (*SQLiteRecorder, error) {
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("open sqlite: %w", err)
	}

	// WAL lets the chart front end read while the scheduler writes.
	if _, err := db.Exec("PRAGMA journal_mode=WAL"); err != nil {
		db.Close()
		return nil, fmt.Errorf("set WAL mode: %w", err)
	}

	r := &SQLiteRecorder{db: db}
	if err := r.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("migrate: %w", err)
	}

	log.Info().Str("path", dbPath).Msg("sqlite recorder opened")
	return r, nil
}

func (r *SQLiteRecorder) migrate() error {
	stmts := []string{
		`CREATE TABLE IF NOT EXISTS indicator_snapshots (
			symbol      TEXT PRIMARY KEY,
			name        TEXT,
			code        TEXT,
			bar_date    TEXT,
			close       REAL,
			ma_json     TEXT,
			dif         REAL,
			dea         REAL,
			macd        REAL,
			k           REAL,
			d           REAL,
			j           REAL,
			last_price  REAL,
			avg_price   REAL,
			pre_price   REAL,
			change_rate REAL,
			taken_at    INTEGER NOT NULL
		)`,
		`CREATE INDEX IF NOT EXISTS idx_snapshots_taken ON indicator_snapshots(taken_at)`,
	}

	for _, s := range stmts {
		if _, err := r.db.Exec(s); err != nil {
			return fmt.Errorf("exec %q: %w", s[:40], err)
		}
	}
	return nil
}

// RecordSnapshot replaces the stored snapshot of snap.Symbol.
func (r *SQLiteRecorder) RecordSnapshot(snap *model.Snapshot) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ma, err := json.Marshal(snap.MA)
	if err != nil {
		return fmt.Errorf("encode ma: %w", err)
	}

	_, err = r.db.Exec(`INSERT OR REPLACE INTO indicator_snapshots
		(symbol, name, code, bar_date, close, ma_json, dif, dea, macd, k, d, j,
		 last_price, avg_price, pre_price, change_rate, taken_at)
		VALUES (?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?,?)`,
		snap.Symbol, snap.Name, snap.Code, snap.Date, nullable(snap.Close), string(ma),
		nullable(snap.DIF), nullable(snap.DEA), nullable(snap.MACD),
		nullable(snap.K), nullable(snap.D), nullable(snap.J),
		nullable(snap.LastPrice), nullable(snap.AvgPrice), nullable(snap.PrePrice), nullable(snap.ChangeRate),
		snap.TakenAt.Unix(),
	)
	return err
}

// Latest loads the stored snapshot of symbol.
func (r *SQLiteRecorder) Latest(symbol string) (*model.Snapshot, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	var (
		snap    = &model.Snapshot{Symbol: symbol}
		ma      string
		takenAt int64
		cols    [11]sql.NullFloat64
	)
	err := r.db.QueryRow(`SELECT name, code, bar_date, close, ma_json, dif, dea, macd, k, d, j,
		last_price, avg_price, pre_price, change_rate, taken_at
		FROM indicator_snapshots WHERE symbol = ?`, symbol).Scan(
		&snap.Name, &snap.Code, &snap.Date, &cols[0], &ma,
		&cols[1], &cols[2], &cols[3], &cols[4], &cols[5], &cols[6],
		&cols[7], &cols[8], &cols[9], &cols[10], &takenAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, fmt.Errorf("%s: %w", symbol, ErrNoSnapshot)
	}
	if err != nil {
		return nil, fmt.Errorf("query snapshot: %w", err)
	}

	if err := json.Unmarshal([]byte(ma), &snap.MA); err != nil {
		return nil, fmt.Errorf("decode ma: %w", err)
	}
	dst := []*model.Value{
		&snap.Close, &snap.DIF, &snap.DEA, &snap.MACD, &snap.K, &snap.D, &snap.J,
		&snap.LastPrice, &snap.AvgPrice, &snap.PrePrice, &snap.ChangeRate,
	}
	for i, c := range cols {
		if c.Valid {
			*dst[i] = model.Some(c.Float64)
		}
	}
	snap.TakenAt = time.Unix(takenAt, 0)
	return snap, nil
}

func (r *SQLiteRecorder) Close() error {
	log.Info().Msg("closing sqlite recorder")
	return r.db.Close()
}

// nullable maps a missing value to SQL NULL.
func nullable(v model.Value) sql.NullFloat64 {
	if f, ok := v.Get(); ok {
		v = model.Finite(f)
	}
	return sql.NullFloat64{Float64: v.Float, Valid: v.Valid}
}
