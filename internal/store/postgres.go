package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"

	"github.com/achyuthrachur/cdd-onboarding-demo-sub000/internal/audit"
)

// PostgresStore is the PostgreSQL-backed DataStore.
type PostgresStore struct {
	db *sqlx.DB
}

// NewPostgresStore opens a connection, verifies it, and ensures the
// schema exists so a fresh database is usable immediately.
func NewPostgresStore(dsn string) (*PostgresStore, error) {
	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("connect to postgres: %w", err)
	}
	s := &PostgresStore{db: db}
	if err := s.InitSchema(context.Background()); err != nil {
		db.Close() //nolint:errcheck // already failing
		return nil, err
	}
	return s, nil
}

// NewPostgresStoreWithDB wraps an existing connection (used by tests).
func NewPostgresStoreWithDB(db *sqlx.DB) *PostgresStore {
	return &PostgresStore{db: db}
}

func (s *PostgresStore) Close() error { return s.db.Close() }

const schema = `
CREATE TABLE IF NOT EXISTS audit_entity (
    entity_id           TEXT PRIMARY KEY,
    name                TEXT NOT NULL,
    jurisdiction        TEXT NOT NULL DEFAULT '',
    party_type          TEXT NOT NULL DEFAULT '',
    inherent_risk_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    design_risk_score   DOUBLE PRECISION NOT NULL DEFAULT 0
);

CREATE TABLE IF NOT EXISTS audit_workbook (
    workbook_id  TEXT PRIMARY KEY,
    auditor_id   TEXT NOT NULL,
    auditor_name TEXT NOT NULL DEFAULT '',
    status       TEXT NOT NULL DEFAULT 'DRAFT',
    created_at   TIMESTAMPTZ NOT NULL DEFAULT now(),
    published_at TIMESTAMPTZ
);

CREATE TABLE IF NOT EXISTS audit_row (
    workbook_id         TEXT NOT NULL REFERENCES audit_workbook(workbook_id) ON DELETE CASCADE,
    seq                 INT NOT NULL,
    entity_id           TEXT NOT NULL,
    entity_name         TEXT NOT NULL DEFAULT '',
    jurisdiction        TEXT NOT NULL DEFAULT '',
    party_type          TEXT NOT NULL DEFAULT '',
    inherent_risk_score DOUBLE PRECISION NOT NULL DEFAULT 0,
    design_risk_score   DOUBLE PRECISION NOT NULL DEFAULT 0,
    attribute_id        TEXT NOT NULL,
    attribute_name      TEXT NOT NULL DEFAULT '',
    attribute_category  TEXT NOT NULL DEFAULT '',
    auditor_id          TEXT NOT NULL DEFAULT '',
    auditor_name        TEXT NOT NULL DEFAULT '',
    result              TEXT NOT NULL DEFAULT '',
    comment             TEXT NOT NULL DEFAULT '',
    PRIMARY KEY (workbook_id, entity_id, attribute_id)
);
`

// InitSchema creates the tables if they do not exist.
func (s *PostgresStore) InitSchema(ctx context.Context) error {
	if _, err := s.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("init schema: %w", err)
	}
	return nil
}

func (s *PostgresStore) SeedEntities(ctx context.Context, entities []audit.Entity) error {
	const q = `INSERT INTO audit_entity
        (entity_id, name, jurisdiction, party_type, inherent_risk_score, design_risk_score)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (entity_id) DO NOTHING`
	for _, e := range entities {
		if _, err := s.db.ExecContext(ctx, q,
			e.EntityID, e.Name, e.Jurisdiction, e.PartyType, e.InherentRiskScore, e.DesignRiskScore); err != nil {
			return fmt.Errorf("seed entity %s: %w", e.EntityID, err)
		}
	}
	return nil
}

func (s *PostgresStore) ListEntities(ctx context.Context) ([]audit.Entity, error) {
	const q = `SELECT entity_id, name, jurisdiction, party_type, inherent_risk_score, design_risk_score
        FROM audit_entity ORDER BY entity_id`
	var out []audit.Entity
	if err := s.db.SelectContext(ctx, &out, q); err != nil {
		return nil, fmt.Errorf("list entities: %w", err)
	}
	return out, nil
}

// SaveWorkbook upserts the workbook header and replaces its rows in one
// transaction.
func (s *PostgresStore) SaveWorkbook(ctx context.Context, wb *audit.GeneratedWorkbook) error {
	if wb.WorkbookID == "" {
		return fmt.Errorf("save workbook: missing workbook id")
	}
	tx, err := s.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("begin save workbook: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck // no-op after commit

	const header = `INSERT INTO audit_workbook
        (workbook_id, auditor_id, auditor_name, status, created_at, published_at)
        VALUES ($1, $2, $3, $4, $5, $6)
        ON CONFLICT (workbook_id) DO UPDATE
        SET status = EXCLUDED.status, published_at = EXCLUDED.published_at`
	if _, err := tx.ExecContext(ctx, header,
		wb.WorkbookID, wb.AuditorID, wb.AuditorName, wb.Status, wb.CreatedAt, wb.PublishedAt); err != nil {
		return fmt.Errorf("save workbook %s: %w", wb.WorkbookID, err)
	}

	if _, err := tx.ExecContext(ctx, `DELETE FROM audit_row WHERE workbook_id = $1`, wb.WorkbookID); err != nil {
		return fmt.Errorf("clear rows for workbook %s: %w", wb.WorkbookID, err)
	}

	const rowq = `INSERT INTO audit_row
        (workbook_id, seq, entity_id, entity_name, jurisdiction, party_type,
         inherent_risk_score, design_risk_score, attribute_id, attribute_name,
         attribute_category, auditor_id, auditor_name, result, comment)
        VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9, $10, $11, $12, $13, $14, $15)`
	for i, row := range wb.Rows {
		if _, err := tx.ExecContext(ctx, rowq,
			wb.WorkbookID, i, row.EntityID, row.EntityName, row.Jurisdiction, row.PartyType,
			row.InherentRiskScore, row.DesignRiskScore, row.AttributeID, row.AttributeName,
			row.AttributeCategory, row.AuditorID, row.AuditorName, row.Result, row.Comment); err != nil {
			return fmt.Errorf("save row %d of workbook %s: %w", i, wb.WorkbookID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("commit workbook %s: %w", wb.WorkbookID, err)
	}
	return nil
}

// workbookHeader maps the audit_workbook table without the rows slice.
type workbookHeader struct {
	WorkbookID  string               `db:"workbook_id"`
	AuditorID   string               `db:"auditor_id"`
	AuditorName string               `db:"auditor_name"`
	Status      audit.WorkbookStatus `db:"status"`
	CreatedAt   sql.NullTime         `db:"created_at"`
	PublishedAt sql.NullTime         `db:"published_at"`
}

func (h workbookHeader) toWorkbook() audit.GeneratedWorkbook {
	wb := audit.GeneratedWorkbook{
		WorkbookID:  h.WorkbookID,
		AuditorID:   h.AuditorID,
		AuditorName: h.AuditorName,
		Status:      h.Status,
	}
	if h.CreatedAt.Valid {
		wb.CreatedAt = h.CreatedAt.Time
	}
	if h.PublishedAt.Valid {
		at := h.PublishedAt.Time
		wb.PublishedAt = &at
	}
	return wb
}

func (s *PostgresStore) GetWorkbook(ctx context.Context, workbookID string) (*audit.GeneratedWorkbook, error) {
	const q = `SELECT workbook_id, auditor_id, auditor_name, status, created_at, published_at
        FROM audit_workbook WHERE workbook_id = $1`
	var h workbookHeader
	if err := s.db.GetContext(ctx, &h, q, workbookID); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, fmt.Errorf("get workbook %s: %w", workbookID, ErrNotFound)
		}
		return nil, fmt.Errorf("get workbook %s: %w", workbookID, err)
	}

	wb := h.toWorkbook()
	rows, err := s.loadRows(ctx, workbookID)
	if err != nil {
		return nil, err
	}
	wb.Rows = rows
	return &wb, nil
}

func (s *PostgresStore) ListWorkbooks(ctx context.Context) ([]audit.GeneratedWorkbook, error) {
	const q = `SELECT workbook_id, auditor_id, auditor_name, status, created_at, published_at
        FROM audit_workbook ORDER BY created_at, auditor_id`
	var headers []workbookHeader
	if err := s.db.SelectContext(ctx, &headers, q); err != nil {
		return nil, fmt.Errorf("list workbooks: %w", err)
	}

	out := make([]audit.GeneratedWorkbook, 0, len(headers))
	for _, h := range headers {
		wb := h.toWorkbook()
		rows, err := s.loadRows(ctx, wb.WorkbookID)
		if err != nil {
			return nil, err
		}
		wb.Rows = rows
		out = append(out, wb)
	}
	return out, nil
}

func (s *PostgresStore) loadRows(ctx context.Context, workbookID string) ([]audit.WorkbookRow, error) {
	const q = `SELECT entity_id, entity_name, jurisdiction, party_type,
        inherent_risk_score, design_risk_score, attribute_id, attribute_name,
        attribute_category, auditor_id, auditor_name, result, comment
        FROM audit_row WHERE workbook_id = $1 ORDER BY seq`
	var rows []audit.WorkbookRow
	if err := s.db.SelectContext(ctx, &rows, q, workbookID); err != nil {
		return nil, fmt.Errorf("load rows for workbook %s: %w", workbookID, err)
	}
	return rows, nil
}

func (s *PostgresStore) UpdateRowResult(ctx context.Context, workbookID, entityID, attributeID string, result audit.TestResult, comment string) error {
	const q = `UPDATE audit_row SET result = $1, comment = $2
        WHERE workbook_id = $3 AND entity_id = $4 AND attribute_id = $5`
	res, err := s.db.ExecContext(ctx, q, result, comment, workbookID, entityID, attributeID)
	if err != nil {
		return fmt.Errorf("update row (%s, %s) in workbook %s: %w", entityID, attributeID, workbookID, err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("update row (%s, %s) in workbook %s: %w", entityID, attributeID, workbookID, err)
	}
	if n == 0 {
		return fmt.Errorf("update row (%s, %s) in workbook %s: %w", entityID, attributeID, workbookID, ErrNotFound)
	}
	return nil
}

func (s *PostgresStore) Reset(ctx context.Context) error {
	for _, q := range []string{
		`DELETE FROM audit_row`,
		`DELETE FROM audit_workbook`,
		`DELETE FROM audit_entity`,
	} {
		if _, err := s.db.ExecContext(ctx, q); err != nil {
			return fmt.Errorf("reset: %w", err)
		}
	}
	return nil
}
