package repository

import (
	"context"
	"errors"
	"fmt"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
)

type EstablishmentRepository struct {
	db *pgxpool.Pool
}

func NewEstablishmentRepository(db *pgxpool.Pool) service.EstablishmentRepository {
	return &EstablishmentRepository{
		db: db,
	}
}

// Create inserts a new establishment
func (r *EstablishmentRepository) Create(ctx context.Context, establishment *models.Establishment) error {
	query := `
		INSERT INTO establishments (name, phone, address, latitude, longitude, invite_key, alert_template)
		VALUES ($1, $2, $3, $4, $5, $6, NULLIF($7, '')) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		establishment.Name,
		establishment.Phone,
		establishment.Address,
		establishment.Latitude,
		establishment.Longitude,
		establishment.InviteKey,
		establishment.AlertTemplate,
	).Scan(&establishment.ID, &establishment.CreatedAt, &establishment.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create establishment: %w", err)
	}
	return nil
}

// Update modifies an existing establishment
func (r *EstablishmentRepository) Update(ctx context.Context, establishment *models.Establishment) error {
	query := `
		UPDATE establishments SET
			name = $1,
			phone = $2,
			address = $3,
			latitude = $4,
			longitude = $5,
			invite_key = $6,
			alert_template = NULLIF($7, ''),
			updated_at = NOW()
		WHERE id = $8;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		establishment.Name,
		establishment.Phone,
		establishment.Address,
		establishment.Latitude,
		establishment.Longitude,
		establishment.InviteKey,
		establishment.AlertTemplate,
		establishment.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update establishment: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("establishment with id %d: %w", establishment.ID, service.ErrNotFound)
	}
	return nil
}

// GetByID returns an establishment by its id
func (r *EstablishmentRepository) GetByID(ctx context.Context, id int64) (*models.Establishment, error) {
	establishment := &models.Establishment{}
	query := `
		SELECT id, name, phone, address, latitude, longitude, invite_key,
			COALESCE(alert_template, ''), created_at, updated_at
		FROM establishments
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&establishment.ID,
		&establishment.Name,
		&establishment.Phone,
		&establishment.Address,
		&establishment.Latitude,
		&establishment.Longitude,
		&establishment.InviteKey,
		&establishment.AlertTemplate,
		&establishment.CreatedAt,
		&establishment.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("establishment with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get establishment by id: %w", err)
	}
	return establishment, nil
}

// List returns all establishments with their device counts
func (r *EstablishmentRepository) List(ctx context.Context) ([]*models.Establishment, error) {
	query := `
		SELECT e.id, e.name, e.phone, e.address, e.latitude, e.longitude, e.invite_key,
			COALESCE(e.alert_template, ''), COUNT(f.id), e.created_at, e.updated_at
		FROM establishments e
		LEFT JOIN fireduinos f ON f.establishment_id = e.id
		GROUP BY e.id
		ORDER BY e.id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list establishments: %w", err)
	}
	defer rows.Close()

	establishments := make([]*models.Establishment, 0)
	for rows.Next() {
		establishment := &models.Establishment{}
		err := rows.Scan(
			&establishment.ID,
			&establishment.Name,
			&establishment.Phone,
			&establishment.Address,
			&establishment.Latitude,
			&establishment.Longitude,
			&establishment.InviteKey,
			&establishment.AlertTemplate,
			&establishment.DeviceCount,
			&establishment.CreatedAt,
			&establishment.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan establishment row: %w", err)
		}
		establishments = append(establishments, establishment)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}
	return establishments, nil
}
