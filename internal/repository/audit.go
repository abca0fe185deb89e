package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type AuditRepository struct {
	db *pgxpool.Pool
}

func NewAuditRepository(db *pgxpool.Pool) service.AuditRepository {
	return &AuditRepository{
		db: db,
	}
}

// CreateAccessLog inserts a device access entry. An unknown device or user
// trips the foreign key and maps to ErrNotFound.
func (r *AuditRepository) CreateAccessLog(ctx context.Context, log *models.AccessLog) error {
	query := `
		INSERT INTO access_logs (user_id, fireduino_id)
		VALUES ($1, $2) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, log.UserID, log.FireduinoID).Scan(&log.ID, &log.CreatedAt)
	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.ForeignKeyViolation {
			return fmt.Errorf("access log for fireduino %d: %w", log.FireduinoID, service.ErrNotFound)
		}
		return fmt.Errorf("failed to create access log: %w", err)
	}
	return nil
}

// ListAccessLogs returns device access entries for an establishment's
// devices, newest first
func (r *AuditRepository) ListAccessLogs(ctx context.Context, establishmentID int64) ([]*models.AccessLog, error) {
	query := `
		SELECT a.id, a.user_id, a.fireduino_id, a.created_at
		FROM access_logs a
		JOIN fireduinos f ON f.id = a.fireduino_id
		WHERE f.establishment_id = $1
		ORDER BY a.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list access logs: %w", err)
	}
	defer rows.Close()

	logs := make([]*models.AccessLog, 0)
	for rows.Next() {
		entry := &models.AccessLog{}
		err := rows.Scan(&entry.ID, &entry.UserID, &entry.FireduinoID, &entry.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan access log row: %w", err)
		}
		logs = append(logs, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return logs, nil
}

// CreateLoginRecord inserts a successful sign-in entry
func (r *AuditRepository) CreateLoginRecord(ctx context.Context, record *models.LoginRecord) error {
	query := `
		INSERT INTO login_history (user_id)
		VALUES ($1) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query, record.UserID).Scan(&record.ID, &record.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create login record: %w", err)
	}
	return nil
}

// ListLoginHistory returns sign-ins by an establishment's users, newest first
func (r *AuditRepository) ListLoginHistory(ctx context.Context, establishmentID int64) ([]*models.LoginRecord, error) {
	query := `
		SELECT l.id, l.user_id, l.created_at
		FROM login_history l
		JOIN users u ON u.id = l.user_id
		WHERE u.establishment_id = $1
		ORDER BY l.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list login history: %w", err)
	}
	defer rows.Close()

	records := make([]*models.LoginRecord, 0)
	for rows.Next() {
		record := &models.LoginRecord{}
		err := rows.Scan(&record.ID, &record.UserID, &record.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan login record row: %w", err)
		}
		records = append(records, record)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return records, nil
}

// CreateReportEdit inserts an edit snapshot for a cause report
func (r *AuditRepository) CreateReportEdit(ctx context.Context, edit *models.ReportEdit) error {
	query := `
		INSERT INTO report_edits (report_id, user_id, previous_text)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		edit.ReportID,
		edit.UserID,
		edit.PreviousText,
	).Scan(&edit.ID, &edit.CreatedAt)
	if err != nil {
		return fmt.Errorf("failed to create report edit: %w", err)
	}
	return nil
}

// ListReportEdits returns edit snapshots for an establishment's reports,
// newest first
func (r *AuditRepository) ListReportEdits(ctx context.Context, establishmentID int64) ([]*models.ReportEdit, error) {
	query := `
		SELECT e.id, e.report_id, e.user_id, e.previous_text, e.created_at
		FROM report_edits e
		JOIN incident_reports r ON r.id = e.report_id
		JOIN incidents i ON i.id = r.incident_id
		JOIN fireduinos f ON f.id = i.fireduino_id
		WHERE f.establishment_id = $1
		ORDER BY e.created_at DESC;
	`
	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list report edits: %w", err)
	}
	defer rows.Close()

	edits := make([]*models.ReportEdit, 0)
	for rows.Next() {
		edit := &models.ReportEdit{}
		err := rows.Scan(&edit.ID, &edit.ReportID, &edit.UserID, &edit.PreviousText, &edit.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("failed to scan report edit row: %w", err)
		}
		edits = append(edits, edit)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return edits, nil
}
