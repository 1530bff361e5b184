package postgres

import (
	"context"
	"database/sql"
	"errors"

	"pet-health-journal/internal/domain/alerts"
	"pet-health-journal/internal/insights/patterns"

	"github.com/jackc/pgx/v5/pgconn"
)

type AlertsRepo struct {
	db *sql.DB
}

func NewAlertsRepo(db *sql.DB) *AlertsRepo {
	return &AlertsRepo{db: db}
}

const alertColumns = `
	id, pet_id,
	pattern_type, alert_level, title, message,
	status, first_detected, last_detected, resolved_at`

func (r *AlertsRepo) Create(ctx context.Context, a alerts.Alert) error {
	_, err := r.db.ExecContext(ctx, `
		INSERT INTO pet_alerts (`+alertColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10)
	`,
		a.ID,
		a.PetID,
		string(a.PatternType),
		string(a.Level),
		a.Title,
		a.Message,
		string(a.Status),
		a.FirstDetected,
		a.LastDetected,
		toNullTime(a.ResolvedAt),
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return alerts.ErrConflict
		}
		return err
	}
	return nil
}

func (r *AlertsRepo) Update(ctx context.Context, a alerts.Alert) error {
	res, err := r.db.ExecContext(ctx, `
		UPDATE pet_alerts
		SET
			alert_level = $2,
			title = $3,
			message = $4,
			status = $5,
			last_detected = $6,
			resolved_at = $7
		WHERE id = $1
	`,
		a.ID,
		string(a.Level),
		a.Title,
		a.Message,
		string(a.Status),
		a.LastDetected,
		toNullTime(a.ResolvedAt),
	)
	if err != nil {
		return err
	}
	n, _ := res.RowsAffected()
	if n == 0 {
		return alerts.ErrNotFound
	}
	return nil
}

func (r *AlertsRepo) ListByPet(ctx context.Context, petID string, status alerts.Status) ([]alerts.Alert, error) {
	rows, err := r.db.QueryContext(ctx, `
		SELECT `+alertColumns+`
		FROM pet_alerts
		WHERE pet_id = $1 AND ($2 = '' OR status = $2)
		ORDER BY first_detected DESC, pattern_type ASC
	`, petID, string(status))
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]alerts.Alert, 0)
	for rows.Next() {
		var a alerts.Alert
		var pattern, level, st string
		var resolved sql.NullTime
		if err := rows.Scan(
			&a.ID,
			&a.PetID,
			&pattern,
			&level,
			&a.Title,
			&a.Message,
			&st,
			&a.FirstDetected,
			&a.LastDetected,
			&resolved,
		); err != nil {
			return nil, err
		}
		a.PatternType = patterns.Type(pattern)
		a.Level = patterns.Level(level)
		a.Status = alerts.Status(st)
		if resolved.Valid {
			t := resolved.Time
			a.ResolvedAt = &t
		}
		out = append(out, a)
	}
	return out, rows.Err()
}
