package postgres

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"time"

	"pet-health-journal/internal/domain/checkins"
	"pet-health-journal/internal/insights/observation"

	"github.com/jackc/pgx/v5/pgconn"
)

// código SQLSTATE de unique_violation
const uniqueViolation = "23505"

type CheckInsRepo struct {
	db *sql.DB
}

func NewCheckInsRepo(db *sql.DB) *CheckInsRepo {
	return &CheckInsRepo{db: db}
}

const checkInColumns = `
	id, pet_id, check_in_date,
	appetite, water_intake, energy_level, stool_quality, vomiting, mobility, mood,
	additional_symptoms, free_text, emergency_flagged,
	recorded_by, created_at`

func (r *CheckInsRepo) Create(ctx context.Context, c checkins.CheckIn) error {
	o := c.Observation

	symptoms := o.AdditionalSymptoms
	if symptoms == nil {
		symptoms = []string{}
	}
	rawSymptoms, err := json.Marshal(symptoms)
	if err != nil {
		return err
	}

	_, err = r.db.ExecContext(ctx, `
		INSERT INTO daily_checkins (`+checkInColumns+`
		) VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,$13,$14,$15)
	`,
		c.ID,
		c.PetID,
		o.CheckInDate,
		string(o.Appetite),
		string(o.WaterIntake),
		string(o.EnergyLevel),
		string(o.StoolQuality),
		string(o.Vomiting),
		string(o.Mobility),
		string(o.Mood),
		string(rawSymptoms),
		o.FreeText,
		o.EmergencyFlagged,
		c.RecordedBy,
		c.CreatedAt,
	)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == uniqueViolation {
			return checkins.ErrConflict
		}
		return err
	}
	return nil
}

func (r *CheckInsRepo) GetByDate(ctx context.Context, petID, date string) (checkins.CheckIn, error) {
	row := r.db.QueryRowContext(ctx, `
		SELECT `+checkInColumns+`
		FROM daily_checkins
		WHERE pet_id = $1 AND check_in_date = $2
	`, petID, date)

	c, err := scanCheckIn(row)
	if errors.Is(err, sql.ErrNoRows) {
		return checkins.CheckIn{}, checkins.ErrNotFound
	}
	return c, err
}

func (r *CheckInsRepo) ListByPet(ctx context.Context, petID string, f checkins.ListFilter) ([]checkins.CheckIn, error) {
	petID = strings.TrimSpace(petID)
	if petID == "" {
		return nil, nil
	}

	var (
		where = []string{"pet_id = $1"}
		args  = []any{petID}
	)
	if f.From != "" {
		args = append(args, f.From)
		where = append(where, fmt.Sprintf("check_in_date >= $%d", len(args)))
	}
	if f.To != "" {
		args = append(args, f.To)
		where = append(where, fmt.Sprintf("check_in_date <= $%d", len(args)))
	}

	q := `SELECT ` + checkInColumns + `
		FROM daily_checkins
		WHERE ` + strings.Join(where, " AND ") + `
		ORDER BY check_in_date DESC`
	if f.Limit > 0 {
		args = append(args, f.Limit)
		q += fmt.Sprintf(" LIMIT $%d", len(args))
	}

	rows, err := r.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	out := make([]checkins.CheckIn, 0)
	for rows.Next() {
		c, err := scanCheckIn(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func scanCheckIn(s scanner) (checkins.CheckIn, error) {
	var c checkins.CheckIn
	var date time.Time
	var appetite, water, energy, stool, vomiting, mobility, mood string
	var symptoms []byte
	if err := s.Scan(
		&c.ID,
		&c.PetID,
		&date,
		&appetite,
		&water,
		&energy,
		&stool,
		&vomiting,
		&mobility,
		&mood,
		&symptoms,
		&c.Observation.FreeText,
		&c.Observation.EmergencyFlagged,
		&c.RecordedBy,
		&c.CreatedAt,
	); err != nil {
		return checkins.CheckIn{}, err
	}

	o := &c.Observation
	o.CheckInDate = date.Format(checkins.DateLayout)
	o.Appetite = observation.Appetite(appetite)
	o.WaterIntake = observation.WaterIntake(water)
	o.EnergyLevel = observation.EnergyLevel(energy)
	o.StoolQuality = observation.StoolQuality(stool)
	o.Vomiting = observation.Vomiting(vomiting)
	o.Mobility = observation.Mobility(mobility)
	o.Mood = observation.Mood(mood)

	o.AdditionalSymptoms = []string{}
	if len(symptoms) > 0 {
		if err := json.Unmarshal(symptoms, &o.AdditionalSymptoms); err != nil {
			return checkins.CheckIn{}, fmt.Errorf("decode additional_symptoms: %w", err)
		}
	}
	return c, nil
}
