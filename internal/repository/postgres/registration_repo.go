package postgres

import (
	"context"
	"database/sql"
	"errors"

	"campusevents/internal/domain"
)

type registrationRepository struct {
	DB *sql.DB
}

func NewRegistrationRepository(db *sql.DB) domain.RegistrationRepository {
	return &registrationRepository{
		DB: db,
	}
}

// Put writes the registration under its derived id. The upsert replaces
// every user-supplied column, so a resubmission overwrites the prior
// record instead of failing on the key conflict.
func (r *registrationRepository) Put(ctx context.Context, reg *domain.Registration) error {
	query := `
		INSERT INTO registrations (id, event_id, name, usn, email, semester, created_at)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		ON CONFLICT (id) DO UPDATE SET
			name = EXCLUDED.name,
			usn = EXCLUDED.usn,
			email = EXCLUDED.email,
			semester = EXCLUDED.semester,
			created_at = EXCLUDED.created_at
	`
	_, err := r.DB.ExecContext(ctx, query, reg.ID, reg.EventID, reg.Name, reg.USN, reg.Email, reg.Semester, reg.CreatedAt)
	return err
}

func (r *registrationRepository) GetByID(ctx context.Context, id string) (*domain.Registration, error) {
	query := `
		SELECT id, event_id, name, usn, email, semester, created_at
		FROM registrations
		WHERE id = $1
	`
	reg := &domain.Registration{}
	err := r.DB.QueryRowContext(ctx, query, id).
		Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.USN, &reg.Email, &reg.Semester, &reg.CreatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrNotFound
		}
		return nil, err
	}
	return reg, nil
}

func (r *registrationRepository) ListByEventID(ctx context.Context, eventID string, params domain.PaginationParams) ([]*domain.Registration, int, error) {
	var total int
	countQuery := `SELECT COUNT(*) FROM registrations WHERE event_id = $1`
	if err := r.DB.QueryRowContext(ctx, countQuery, eventID).Scan(&total); err != nil {
		return nil, 0, err
	}

	query := `
		SELECT id, event_id, name, usn, email, semester, created_at
		FROM registrations
		WHERE event_id = $1
		ORDER BY created_at DESC
		LIMIT $2 OFFSET $3
	`
	rows, err := r.DB.QueryContext(ctx, query, eventID, params.PageSize, params.Offset())
	if err != nil {
		return nil, 0, err
	}
	defer rows.Close()

	regs := make([]*domain.Registration, 0)
	for rows.Next() {
		reg := &domain.Registration{}
		if err := rows.Scan(&reg.ID, &reg.EventID, &reg.Name, &reg.USN, &reg.Email, &reg.Semester, &reg.CreatedAt); err != nil {
			return nil, 0, err
		}
		regs = append(regs, reg)
	}
	if err := rows.Err(); err != nil {
		return nil, 0, err
	}
	return regs, total, nil
}
