package postgres

import (
	"context"
	"database/sql"
	_ "embed"
	"errors"
	"fmt"

	"latinaempire/internal/domain"

	"github.com/lib/pq"
)

// uniqueViolation is the Postgres SQLSTATE for unique_violation.
const uniqueViolation = "23505"

//go:embed schema.sql
var schemaSQL string

// EnsureSchema creates the leads table and its indexes if they are missing.
func EnsureSchema(ctx context.Context, db *sql.DB) error {
	if _, err := db.ExecContext(ctx, schemaSQL); err != nil {
		return fmt.Errorf("ensure schema: %w", err)
	}
	return nil
}

type leadRepository struct {
	DB *sql.DB
}

// NewLeadRepository returns a domain.LeadRepository implemented with Postgres.
func NewLeadRepository(db *sql.DB) domain.LeadRepository {
	return &leadRepository{DB: db}
}

func (r *leadRepository) Create(ctx context.Context, l *domain.Lead) error {
	query := `
		INSERT INTO leads (id, kind, name, email, phone, subject, message, source, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8, $9)
	`
	_, err := r.DB.ExecContext(ctx, query,
		l.ID, l.Kind, nullString(l.Name), l.Email, nullString(l.Phone),
		nullString(l.Subject), nullString(l.Message), nullString(l.Source), l.CreatedAt,
	)
	if err != nil {
		var perr *pq.Error
		if errors.As(err, &perr) && perr.Code == uniqueViolation {
			return fmt.Errorf("lead %s for %s: %w", l.Kind, l.Email, domain.ErrDuplicate)
		}
		return err
	}
	return nil
}

func (r *leadRepository) List(ctx context.Context, kind string, params domain.PaginationParams) ([]*domain.Lead, error) {
	query := `
		SELECT id, kind, name, email, phone, subject, message, source, created_at
		FROM leads
		WHERE ($1 = '' OR kind = $1)
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, kind, params.Limit(), params.Offset())
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var leads []*domain.Lead
	for rows.Next() {
		var (
			l                                     domain.Lead
			name, phone, subject, message, source sql.NullString
		)
		if err := rows.Scan(&l.ID, &l.Kind, &name, &l.Email, &phone, &subject, &message, &source, &l.CreatedAt); err != nil {
			return nil, err
		}
		l.Name = name.String
		l.Phone = phone.String
		l.Subject = subject.String
		l.Message = message.String
		l.Source = source.String
		leads = append(leads, &l)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}
	return leads, nil
}

func (r *leadRepository) Count(ctx context.Context, kind string) (int, error) {
	var n int
	err := r.DB.QueryRowContext(ctx, `SELECT COUNT(*) FROM leads WHERE ($1 = '' OR kind = $1)`, kind).Scan(&n)
	if err != nil {
		return 0, err
	}
	return n, nil
}

func nullString(s string) sql.NullString {
	return sql.NullString{String: s, Valid: s != ""}
}
