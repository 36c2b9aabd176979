package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tempohr/tempo-backend-go/internal/domain/overtime"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
)

type compensationRepository struct {
	db *database.DB
}

func NewCompensationRepository(db *database.DB) overtime.CompensationRepository {
	return &compensationRepository{db: db}
}

// Create implements overtime.CompensationRepository.
func (r *compensationRepository) Create(ctx context.Context, comp overtime.Compensation) (overtime.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO overtime_compensations (
			id, employee_id, company_id, date, compensated_hours, reason
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		comp.EmployeeID,
		comp.CompanyID,
		comp.Date,
		comp.CompensatedHours,
		comp.Reason,
	).Scan(&comp.ID, &comp.CreatedAt, &comp.UpdatedAt)

	if err != nil {
		return overtime.Compensation{}, fmt.Errorf("failed to create overtime compensation: %w", err)
	}

	return comp, nil
}

// GetByID implements overtime.CompensationRepository.
func (r *compensationRepository) GetByID(ctx context.Context, id string, companyID string) (overtime.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.company_id, c.date, c.compensated_hours,
			   c.reason, c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM overtime_compensations c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.id = $1 AND c.company_id = $2
	`

	var comp overtime.Compensation
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&comp.ID, &comp.EmployeeID, &comp.CompanyID, &comp.Date, &comp.CompensatedHours,
		&comp.Reason, &comp.CreatedAt, &comp.UpdatedAt,
		&comp.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return overtime.Compensation{}, overtime.ErrCompensationNotFound
		}
		return overtime.Compensation{}, fmt.Errorf("failed to get overtime compensation by ID: %w", err)
	}

	return comp, nil
}

// Update implements overtime.CompensationRepository.
func (r *compensationRepository) Update(ctx context.Context, comp overtime.Compensation) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE overtime_compensations
		SET date = $1, compensated_hours = $2, reason = $3, updated_at = $4
		WHERE id = $5 AND company_id = $6
	`

	commandTag, err := q.Exec(ctx, query,
		comp.Date, comp.CompensatedHours, comp.Reason, time.Now(),
		comp.ID, comp.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update overtime compensation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return overtime.ErrCompensationNotFound
	}

	return nil
}

// Delete implements overtime.CompensationRepository.
func (r *compensationRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM overtime_compensations WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete overtime compensation: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return overtime.ErrCompensationNotFound
	}

	return nil
}

// List implements overtime.CompensationRepository.
func (r *compensationRepository) List(ctx context.Context, companyID string) ([]overtime.Compensation, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT c.id, c.employee_id, c.company_id, c.date, c.compensated_hours,
			   c.reason, c.created_at, c.updated_at,
			   e.full_name AS employee_name
		FROM overtime_compensations c
		LEFT JOIN employees e ON e.id = c.employee_id
		WHERE c.company_id = $1
		ORDER BY c.date DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query overtime compensations: %w", err)
	}
	defer rows.Close()

	var comps []overtime.Compensation
	for rows.Next() {
		var comp overtime.Compensation
		err := rows.Scan(
			&comp.ID, &comp.EmployeeID, &comp.CompanyID, &comp.Date, &comp.CompensatedHours,
			&comp.Reason, &comp.CreatedAt, &comp.UpdatedAt,
			&comp.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan overtime compensation: %w", err)
		}
		comps = append(comps, comp)
	}

	return comps, nil
}
