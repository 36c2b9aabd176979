package postgresql

import (
	"context"
	"fmt"

	"github.com/jackc/pgx/v5"
	"github.com/tempohr/tempo-backend-go/internal/domain/schedule"
	"github.com/tempohr/tempo-backend-go/internal/pkg/database"
)

type workScheduleRepository struct {
	db *database.DB
}

func NewWorkScheduleRepository(db *database.DB) schedule.WorkScheduleRepository {
	return &workScheduleRepository{db: db}
}

// GetByCompany implements schedule.WorkScheduleRepository.
func (r *workScheduleRepository) GetByCompany(ctx context.Context, companyID string) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	query := `
		SELECT id, company_id, created_at, updated_at
		FROM work_schedules
		WHERE company_id = $1
	`

	var sched schedule.WorkSchedule
	err := q.QueryRow(ctx, query, companyID).Scan(
		&sched.ID, &sched.CompanyID, &sched.CreatedAt, &sched.UpdatedAt,
	)
	if err != nil {
		if err == pgx.ErrNoRows {
			return schedule.WorkSchedule{}, schedule.ErrScheduleNotFound
		}
		return schedule.WorkSchedule{}, fmt.Errorf("failed to get work schedule: %w", err)
	}

	daysQuery := `
		SELECT id, work_schedule_id, weekday, is_work_day, start_time, end_time,
			   break_duration_minutes, overtime_threshold_hours, overtime_rate_multiplier,
			   created_at, updated_at
		FROM work_schedule_days
		WHERE work_schedule_id = $1
		ORDER BY weekday ASC
	`

	rows, err := q.Query(ctx, daysQuery, sched.ID)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to query schedule days: %w", err)
	}
	defer rows.Close()

	for rows.Next() {
		var day schedule.DaySetting
		err := rows.Scan(
			&day.ID, &day.WorkScheduleID, &day.Weekday, &day.IsWorkDay,
			&day.StartTime, &day.EndTime, &day.BreakDurationMinutes,
			&day.OvertimeThresholdHours, &day.OvertimeRateMultiplier,
			&day.CreatedAt, &day.UpdatedAt,
		)
		if err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to scan schedule day: %w", err)
		}
		sched.Days = append(sched.Days, day)
	}

	return sched, nil
}

// Upsert implements schedule.WorkScheduleRepository. The schedule row is
// created on first write; the seven day rows are replaced wholesale so the
// stored week always matches the last submitted one.
func (r *workScheduleRepository) Upsert(ctx context.Context, sched schedule.WorkSchedule) (schedule.WorkSchedule, error) {
	q := GetQuerier(ctx, r.db)

	upsertSchedule := `
		INSERT INTO work_schedules (id, company_id)
		VALUES (uuidv7(), $1)
		ON CONFLICT (company_id)
		DO UPDATE SET updated_at = NOW()
		RETURNING id, created_at, updated_at
	`

	err := q.QueryRow(ctx, upsertSchedule, sched.CompanyID).Scan(
		&sched.ID, &sched.CreatedAt, &sched.UpdatedAt,
	)
	if err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to upsert work schedule: %w", err)
	}

	if _, err := q.Exec(ctx, `DELETE FROM work_schedule_days WHERE work_schedule_id = $1`, sched.ID); err != nil {
		return schedule.WorkSchedule{}, fmt.Errorf("failed to clear schedule days: %w", err)
	}

	insertDay := `
		INSERT INTO work_schedule_days (
			id, work_schedule_id, weekday, is_work_day, start_time, end_time,
			break_duration_minutes, overtime_threshold_hours, overtime_rate_multiplier
		) VALUES (
			uuidv7(), $1, $2, $3, $4, $5, $6, $7, $8
		) RETURNING id, created_at, updated_at
	`

	for i := range sched.Days {
		day := &sched.Days[i]
		day.WorkScheduleID = sched.ID
		err := q.QueryRow(ctx, insertDay,
			sched.ID,
			day.Weekday,
			day.IsWorkDay,
			day.StartTime,
			day.EndTime,
			day.BreakDurationMinutes,
			day.OvertimeThresholdHours,
			day.OvertimeRateMultiplier,
		).Scan(&day.ID, &day.CreatedAt, &day.UpdatedAt)
		if err != nil {
			return schedule.WorkSchedule{}, fmt.Errorf("failed to insert schedule day: %w", err)
		}
	}

	return sched, nil
}
