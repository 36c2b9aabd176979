package postgresql

import (
	"context"
	"fmt"
	"time"

	"github.com/jackc/pgx/v5"
	"github.com/tempohr/tempo-backend-go/internal/domain/authorization"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
)

type authorizationRepository struct {
	db *database.DB
}

func NewAuthorizationRepository(db *database.DB) authorization.AuthorizationRepository {
	return &authorizationRepository{db: db}
}

// Create implements authorization.AuthorizationRepository.
func (r *authorizationRepository) Create(ctx context.Context, auth authorization.Authorization) (authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		INSERT INTO authorizations (
			id, employee_id, company_id, type, date, requested_time, reason, status
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7
		) RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, query,
		auth.EmployeeID,
		auth.CompanyID,
		auth.Type,
		auth.Date,
		auth.RequestedTime,
		auth.Reason,
		auth.Status,
	).Scan(&auth.ID, &auth.CreatedAt, &auth.UpdatedAt)

	if err != nil {
		return authorization.Authorization{}, fmt.Errorf("failed to create authorization: %w", err)
	}

	return auth, nil
}

// GetByID implements authorization.AuthorizationRepository.
func (r *authorizationRepository) GetByID(ctx context.Context, id string, companyID string) (authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT au.id, au.employee_id, au.company_id, au.type, au.date,
			   au.requested_time, au.reason, au.status, au.created_at, au.updated_at,
			   e.full_name AS employee_name
		FROM authorizations au
		LEFT JOIN employees e ON e.id = au.employee_id
		WHERE au.id = $1 AND au.company_id = $2
	`

	var auth authorization.Authorization
	err := q.QueryRow(ctx, query, id, companyID).Scan(
		&auth.ID, &auth.EmployeeID, &auth.CompanyID, &auth.Type, &auth.Date,
		&auth.RequestedTime, &auth.Reason, &auth.Status, &auth.CreatedAt, &auth.UpdatedAt,
		&auth.EmployeeName,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return authorization.Authorization{}, authorization.ErrAuthorizationNotFound
		}
		return authorization.Authorization{}, fmt.Errorf("failed to get authorization by ID: %w", err)
	}

	return auth, nil
}

// Update implements authorization.AuthorizationRepository.
func (r *authorizationRepository) Update(ctx context.Context, auth authorization.Authorization) error {
	q := GetQuerier(ctx, r.db)

	query := `
		UPDATE authorizations
		SET type = $1, date = $2, requested_time = $3, reason = $4, status = $5, updated_at = $6
		WHERE id = $7 AND company_id = $8
	`

	commandTag, err := q.Exec(ctx, query,
		auth.Type, auth.Date, auth.RequestedTime, auth.Reason, auth.Status,
		time.Now(), auth.ID, auth.CompanyID,
	)
	if err != nil {
		return fmt.Errorf("failed to update authorization: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return authorization.ErrAuthorizationNotFound
	}

	return nil
}

// Delete implements authorization.AuthorizationRepository.
func (r *authorizationRepository) Delete(ctx context.Context, id string, companyID string) error {
	q := GetQuerier(ctx, r.db)

	query := `DELETE FROM authorizations WHERE id = $1 AND company_id = $2`

	commandTag, err := q.Exec(ctx, query, id, companyID)
	if err != nil {
		return fmt.Errorf("failed to delete authorization: %w", err)
	}
	if commandTag.RowsAffected() == 0 {
		return authorization.ErrAuthorizationNotFound
	}

	return nil
}

// List implements authorization.AuthorizationRepository.
func (r *authorizationRepository) List(ctx context.Context, companyID string) ([]authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT au.id, au.employee_id, au.company_id, au.type, au.date,
			   au.requested_time, au.reason, au.status, au.created_at, au.updated_at,
			   e.full_name AS employee_name
		FROM authorizations au
		LEFT JOIN employees e ON e.id = au.employee_id
		WHERE au.company_id = $1
		ORDER BY au.date DESC
	`

	rows, err := q.Query(ctx, query, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query authorizations: %w", err)
	}
	defer rows.Close()

	var auths []authorization.Authorization
	for rows.Next() {
		var auth authorization.Authorization
		err := rows.Scan(
			&auth.ID, &auth.EmployeeID, &auth.CompanyID, &auth.Type, &auth.Date,
			&auth.RequestedTime, &auth.Reason, &auth.Status, &auth.CreatedAt, &auth.UpdatedAt,
			&auth.EmployeeName,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authorization: %w", err)
		}
		auths = append(auths, auth)
	}

	return auths, nil
}

// ListByEmployeeAndDate implements authorization.AuthorizationRepository.
func (r *authorizationRepository) ListByEmployeeAndDate(ctx context.Context, employeeID string, date time.Time, companyID string) ([]authorization.Authorization, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, employee_id, company_id, type, date, requested_time,
			   reason, status, created_at, updated_at
		FROM authorizations
		WHERE employee_id = $1
		  AND date = $2
		  AND company_id = $3
	`

	rows, err := q.Query(ctx, query, employeeID, date, companyID)
	if err != nil {
		return nil, fmt.Errorf("failed to query authorizations by date: %w", err)
	}
	defer rows.Close()

	var auths []authorization.Authorization
	for rows.Next() {
		var auth authorization.Authorization
		err := rows.Scan(
			&auth.ID, &auth.EmployeeID, &auth.CompanyID, &auth.Type, &auth.Date,
			&auth.RequestedTime, &auth.Reason, &auth.Status, &auth.CreatedAt, &auth.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan authorization: %w", err)
		}
		auths = append(auths, auth)
	}

	return auths, nil
}
