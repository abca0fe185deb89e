package repository

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type IncidentRepository struct {
	db *pgxpool.Pool
}

func NewIncidentRepository(db *pgxpool.Pool) service.IncidentRepository {
	return &IncidentRepository{
		db: db,
	}
}

// CreateIncident inserts the dispatch record for a fire event. Rows are
// insert-only; concurrent dispatches never contend for the same row.
func (r *IncidentRepository) CreateIncident(ctx context.Context, incident *models.Incident) error {
	query := `
		INSERT INTO incidents (fireduino_id, department_id, sms_record_id)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		incident.FireduinoID,
		incident.DepartmentID,
		incident.SMSRecordID,
	).Scan(&incident.ID, &incident.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident: %w", err)
	}
	return nil
}

// CreateSMSRecord appends an SMS log entry for a department
func (r *IncidentRepository) CreateSMSRecord(ctx context.Context, record *models.SMSRecord) error {
	query := `
		INSERT INTO sms_records (department_id)
		VALUES ($1) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, record.DepartmentID).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create sms record: %w", err)
	}
	return nil
}

// GetByID returns an incident by its id
func (r *IncidentRepository) GetByID(ctx context.Context, id int64) (*models.Incident, error) {
	incident := &models.Incident{}
	query := `
		SELECT id, fireduino_id, department_id, sms_record_id, created_at
		FROM incidents
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&incident.ID,
		&incident.FireduinoID,
		&incident.DepartmentID,
		&incident.SMSRecordID,
		&incident.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("incident with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get incident by id: %w", err)
	}
	return incident, nil
}

// ListByEstablishment returns an establishment's incidents, newest first
func (r *IncidentRepository) ListByEstablishment(ctx context.Context, establishmentID int64, page, pageSize int) ([]*models.Incident, error) {
	offset := (page - 1) * pageSize

	query := `
		SELECT i.id, i.fireduino_id, i.department_id, i.sms_record_id, i.created_at
		FROM incidents i
		JOIN fireduinos f ON f.id = i.fireduino_id
		WHERE f.establishment_id = $1
		ORDER BY i.created_at DESC
		LIMIT $2 OFFSET $3;
	`
	rows, err := r.db.Query(ctx, query, establishmentID, pageSize, offset)
	if err != nil {
		return nil, fmt.Errorf("failed to list incidents: %w", err)
	}
	defer rows.Close()

	incidents := make([]*models.Incident, 0)
	for rows.Next() {
		incident := &models.Incident{}
		err := rows.Scan(
			&incident.ID,
			&incident.FireduinoID,
			&incident.DepartmentID,
			&incident.SMSRecordID,
			&incident.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident row: %w", err)
		}
		incidents = append(incidents, incident)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return incidents, nil
}

// CountSince counts an establishment's incidents created after the given time
func (r *IncidentRepository) CountSince(ctx context.Context, establishmentID int64, since time.Time) (int, error) {
	query := `
		SELECT COUNT(*)
		FROM incidents i
		JOIN fireduinos f ON f.id = i.fireduino_id
		WHERE f.establishment_id = $1 AND i.created_at >= $2;
	`
	var count int
	err := r.db.QueryRow(ctx, query, establishmentID, since).Scan(&count)
	if err != nil {
		return 0, fmt.Errorf("failed to count incidents: %w", err)
	}
	return count, nil
}

// CreateReport attaches a cause report to an incident. The unique constraint
// on incident_id enforces one report per incident.
func (r *IncidentRepository) CreateReport(ctx context.Context, report *models.IncidentReport) error {
	query := `
		INSERT INTO incident_reports (incident_id, user_id, cause_text)
		VALUES ($1, $2, $3) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		report.IncidentID,
		report.UserID,
		report.CauseText,
	).Scan(&report.ID, &report.CreatedAt, &report.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create incident report: %w", err)
	}
	return nil
}

// UpdateReport edits the cause text of an existing report in place
func (r *IncidentRepository) UpdateReport(ctx context.Context, report *models.IncidentReport) error {
	query := `
		UPDATE incident_reports SET
			cause_text = $1,
			updated_at = NOW()
		WHERE id = $2;
	`
	cmdTag, err := r.db.Exec(ctx, query, report.CauseText, report.ID)
	if err != nil {
		return fmt.Errorf("failed to update incident report: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("report with id %d: %w", report.ID, service.ErrNotFound)
	}
	return nil
}

// GetReportByID returns an incident report by its id
func (r *IncidentRepository) GetReportByID(ctx context.Context, id int64) (*models.IncidentReport, error) {
	report := &models.IncidentReport{}
	query := `
		SELECT id, incident_id, user_id, cause_text, created_at, updated_at
		FROM incident_reports
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&report.ID,
		&report.IncidentID,
		&report.UserID,
		&report.CauseText,
		&report.CreatedAt,
		&report.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("report with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get report by id: %w", err)
	}
	return report, nil
}

// ListSMSHistory returns SMS records tied to an establishment's incidents,
// newest first
// ListReportsByEstablishment returns the cause reports attached to an
// establishment's incidents, newest first
func (r *IncidentRepository) ListReportsByEstablishment(ctx context.Context, establishmentID int64) ([]*models.IncidentReport, error) {
	query := `
		SELECT r.id, r.incident_id, r.user_id, r.cause_text, r.created_at, r.updated_at
		FROM incident_reports r
		JOIN incidents i ON i.id = r.incident_id
		JOIN fireduinos f ON f.id = i.fireduino_id
		WHERE f.establishment_id = $1
		ORDER BY r.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list incident reports: %w", err)
	}
	defer rows.Close()

	reports := make([]*models.IncidentReport, 0)
	for rows.Next() {
		report := &models.IncidentReport{}
		err := rows.Scan(
			&report.ID,
			&report.IncidentID,
			&report.UserID,
			&report.CauseText,
			&report.CreatedAt,
			&report.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan incident report row: %w", err)
		}
		reports = append(reports, report)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return reports, nil
}

func (r *IncidentRepository) ListSMSHistory(ctx context.Context, establishmentID int64) ([]*models.SMSRecord, error) {
	query := `
		SELECT s.id, s.department_id, s.created_at
		FROM sms_records s
		JOIN incidents i ON i.sms_record_id = s.id
		JOIN fireduinos f ON f.id = i.fireduino_id
		WHERE f.establishment_id = $1
		ORDER BY s.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list sms history: %w", err)
	}
	defer rows.Close()

	records := make([]*models.SMSRecord, 0)
	for rows.Next() {
		record := &models.SMSRecord{}
		err := rows.Scan(&record.ID, &record.DepartmentID, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan sms record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}
