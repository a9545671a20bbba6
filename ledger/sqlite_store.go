package ledger

import (
	"context"
	"crypto/rand"
	"database/sql"
	"encoding/hex"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	_ "github.com/glebarez/go-sqlite"
	"github.com/insightloop/governor/explain"
	"github.com/insightloop/governor/govern"
)

type SQLiteStore struct {
	dsn string

	mu sync.Mutex
	db *sql.DB
}

func NewSQLiteStore(dsn string) (*SQLiteStore, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("missing sqlite dsn")
	}
	s := &SQLiteStore{dsn: dsn}
	if err := s.open(); err != nil {
		return nil, err
	}
	return s, nil
}

func (s *SQLiteStore) Append(ctx context.Context, rec explain.ExplainableAction) (string, error) {
	if s == nil {
		return "", fmt.Errorf("nil ledger store")
	}
	if err := s.ensureOpen(); err != nil {
		return "", err
	}

	id := strings.TrimSpace(rec.RecordID)
	if id == "" {
		id = "exp_" + randHex(12)
	}
	if rec.CreatedAt.IsZero() {
		rec.CreatedAt = time.Now().UTC()
	}

	chainJSON, err := json.Marshal(rec.CausalChain)
	if err != nil {
		return "", err
	}

	_, err = s.db.ExecContext(ctx, `
INSERT INTO explain_records (
  id, action_id, mode, admitted, confidence,
  risk_class, reversibility, user_summary,
  requested_mode, effective_mode, reason,
  causal_chain_json, created_at_unix_ns
) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
`, id, strings.TrimSpace(rec.ActionID), string(rec.Mode), boolInt(rec.Admitted), rec.Confidence,
		string(rec.RiskClass), string(rec.Reversibility), rec.UserSummary,
		string(rec.TechnicalDetail.RequestedMode), string(rec.TechnicalDetail.EffectiveMode), string(rec.TechnicalDetail.Reason),
		string(chainJSON), rec.CreatedAt.UTC().UnixNano(),
	)
	if err != nil {
		return "", err
	}
	return id, nil
}

func (s *SQLiteStore) Get(ctx context.Context, recordID string) (explain.ExplainableAction, bool, error) {
	if s == nil {
		return explain.ExplainableAction{}, false, fmt.Errorf("nil ledger store")
	}
	if err := s.ensureOpen(); err != nil {
		return explain.ExplainableAction{}, false, err
	}
	recordID = strings.TrimSpace(recordID)
	if recordID == "" {
		return explain.ExplainableAction{}, false, nil
	}

	row := s.db.QueryRowContext(ctx, selectColumns+` FROM explain_records WHERE id = ?`, recordID)
	rec, err := scanRecord(row)
	if err == sql.ErrNoRows {
		return explain.ExplainableAction{}, false, nil
	}
	if err != nil {
		return explain.ExplainableAction{}, false, err
	}
	return rec, true, nil
}

func (s *SQLiteStore) ListByAction(ctx context.Context, actionID string, limit int) ([]explain.ExplainableAction, error) {
	if s == nil {
		return nil, fmt.Errorf("nil ledger store")
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	actionID = strings.TrimSpace(actionID)
	if actionID == "" {
		return nil, nil
	}
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM explain_records WHERE action_id = ? ORDER BY created_at_unix_ns DESC LIMIT ?`,
		actionID, clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (s *SQLiteStore) Recent(ctx context.Context, limit int) ([]explain.ExplainableAction, error) {
	if s == nil {
		return nil, fmt.Errorf("nil ledger store")
	}
	if err := s.ensureOpen(); err != nil {
		return nil, err
	}
	rows, err := s.db.QueryContext(ctx,
		selectColumns+` FROM explain_records ORDER BY created_at_unix_ns DESC LIMIT ?`,
		clampLimit(limit))
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	return collectRecords(rows)
}

func (s *SQLiteStore) Close() error {
	if s == nil {
		return nil
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		err := s.db.Close()
		s.db = nil
		return err
	}
	return nil
}

const selectColumns = `
SELECT
  id, action_id, mode, admitted, confidence,
  risk_class, reversibility, user_summary,
  requested_mode, effective_mode, reason,
  causal_chain_json, created_at_unix_ns`

type rowScanner interface {
	Scan(dest ...any) error
}

func scanRecord(row rowScanner) (explain.ExplainableAction, error) {
	var (
		rec           explain.ExplainableAction
		admitted      int
		mode          string
		riskClass     string
		reversibility string
		requestedMode string
		effectiveMode string
		reason        string
		chainJSON     string
		createdAtNs   int64
	)
	err := row.Scan(
		&rec.RecordID, &rec.ActionID, &mode, &admitted, &rec.Confidence,
		&riskClass, &reversibility, &rec.UserSummary,
		&requestedMode, &effectiveMode, &reason,
		&chainJSON, &createdAtNs,
	)
	if err != nil {
		return explain.ExplainableAction{}, err
	}

	rec.Mode = govern.Mode(mode)
	rec.Admitted = admitted != 0
	rec.RiskClass = govern.RiskLevel(riskClass)
	rec.Reversibility = govern.Reversibility(reversibility)
	rec.TechnicalDetail = explain.TechnicalDetail{
		RequestedMode: govern.Mode(requestedMode),
		EffectiveMode: govern.Mode(effectiveMode),
		Reason:        govern.Reason(reason),
		Confidence:    rec.Confidence,
	}
	rec.CreatedAt = time.Unix(0, createdAtNs).UTC()
	_ = json.Unmarshal([]byte(chainJSON), &rec.CausalChain)
	return rec, nil
}

func collectRecords(rows *sql.Rows) ([]explain.ExplainableAction, error) {
	var out []explain.ExplainableAction
	for rows.Next() {
		rec, err := scanRecord(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, rec)
	}
	return out, rows.Err()
}

func (s *SQLiteStore) open() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.db != nil {
		return nil
	}
	db, err := sql.Open("sqlite", s.dsn)
	if err != nil {
		return err
	}
	s.db = db
	return s.migrate()
}

func (s *SQLiteStore) ensureOpen() error {
	if s.db != nil {
		return nil
	}
	return s.open()
}

func (s *SQLiteStore) migrate() error {
	if s.db == nil {
		return fmt.Errorf("sqlite db is not open")
	}
	_, err := s.db.Exec(`
CREATE TABLE IF NOT EXISTS explain_records (
  id TEXT PRIMARY KEY,
  action_id TEXT NOT NULL,
  mode TEXT NOT NULL,
  admitted INTEGER NOT NULL,
  confidence REAL NOT NULL,
  risk_class TEXT,
  reversibility TEXT,
  user_summary TEXT,
  requested_mode TEXT,
  effective_mode TEXT,
  reason TEXT,
  causal_chain_json TEXT,
  created_at_unix_ns INTEGER NOT NULL
);
CREATE INDEX IF NOT EXISTS idx_explain_records_action ON explain_records(action_id, created_at_unix_ns);
`)
	return err
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return 50
	}
	if limit > 500 {
		return 500
	}
	return limit
}

func boolInt(b bool) int {
	if b {
		return 1
	}
	return 0
}

func randHex(nbytes int) string {
	if nbytes <= 0 {
		nbytes = 12
	}
	b := make([]byte, nbytes)
	_, _ = rand.Read(b)
	return hex.EncodeToString(b)
}
