package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/jackc/pgerrcode"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/jackc/pgx/v5/pgxpool"
)

type FireduinoRepository struct {
	db *pgxpool.Pool
}

func NewFireduinoRepository(db *pgxpool.Pool) service.FireduinoRepository {
	return &FireduinoRepository{
		db: db,
	}
}

// Create inserts a new fireduino under its establishment
func (r *FireduinoRepository) Create(ctx context.Context, device *models.Fireduino) error {
	query := `
		INSERT INTO fireduinos (establishment_id, mac, name)
		VALUES ($1, $2, $3) RETURNING id, created_at;
	`
	err := r.db.QueryRow(ctx, query,
		device.EstablishmentID,
		device.MAC,
		device.Name,
	).Scan(&device.ID, &device.CreatedAt)
	if err != nil {
		// The (establishment, mac) and (establishment, name) pairs are both
		// unique; either collision surfaces as ErrAlreadyRegistered.
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgerrcode.UniqueViolation {
			return fmt.Errorf("fireduino %s/%s: %w", device.MAC, device.Name, service.ErrAlreadyRegistered)
		}
		return fmt.Errorf("failed to create fireduino: %w", err)
	}
	return nil
}

// GetByMAC returns a device by its (establishment, mac) identity pair
func (r *FireduinoRepository) GetByMAC(ctx context.Context, establishmentID int64, mac string) (*models.Fireduino, error) {
	device := &models.Fireduino{}
	query := `
		SELECT id, establishment_id, mac, name, created_at
		FROM fireduinos
		WHERE establishment_id = $1 AND mac = $2;
	`
	err := r.db.QueryRow(ctx, query, establishmentID, mac).Scan(
		&device.ID,
		&device.EstablishmentID,
		&device.MAC,
		&device.Name,
		&device.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("fireduino %s in establishment %d: %w", mac, establishmentID, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get fireduino by mac: %w", err)
	}
	return device, nil
}

// ListByEstablishment returns all devices of an establishment
func (r *FireduinoRepository) ListByEstablishment(ctx context.Context, establishmentID int64) ([]*models.Fireduino, error) {
	query := `
		SELECT id, establishment_id, mac, name, created_at
		FROM fireduinos
		WHERE establishment_id = $1
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query, establishmentID)
	if err != nil {
		return nil, fmt.Errorf("failed to list fireduinos: %w", err)
	}
	defer rows.Close()

	devices := make([]*models.Fireduino, 0)
	for rows.Next() {
		device := &models.Fireduino{}
		err := rows.Scan(
			&device.ID,
			&device.EstablishmentID,
			&device.MAC,
			&device.Name,
			&device.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan fireduino row: %w", err)
		}
		devices = append(devices, device)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return devices, nil
}
