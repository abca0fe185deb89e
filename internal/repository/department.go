package repository

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/fireduino/fireduino-api/internal/models"
	"github.com/fireduino/fireduino-api/internal/service"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/redis/go-redis/v9"
)

const (
	departmentListCacheKey = "departments:all"
	departmentListCacheTTL = 5 * time.Minute
)

// DepartmentRepository persists fire departments. The full department list
// is read on every dispatch and changes rarely, so it is served through a
// Redis read-through cache.
type DepartmentRepository struct {
	db          *pgxpool.Pool
	redisClient *redis.Client
}

func NewDepartmentRepository(db *pgxpool.Pool, redisClient *redis.Client) service.DepartmentRepository {
	return &DepartmentRepository{
		db:          db,
		redisClient: redisClient,
	}
}

// Create inserts a new fire department
func (r *DepartmentRepository) Create(ctx context.Context, department *models.FireDepartment) error {
	query := `
		INSERT INTO fire_departments (name, phone, address, latitude, longitude)
		VALUES ($1, $2, $3, $4, $5) RETURNING id, created_at, updated_at;
	`
	err := r.db.QueryRow(ctx, query,
		department.Name,
		department.Phone,
		department.Address,
		department.Latitude,
		department.Longitude,
	).Scan(&department.ID, &department.CreatedAt, &department.UpdatedAt)
	if err != nil {
		return fmt.Errorf("failed to create department: %w", err)
	}

	r.invalidateListCache(ctx)
	return nil
}

// Update modifies an existing fire department
func (r *DepartmentRepository) Update(ctx context.Context, department *models.FireDepartment) error {
	query := `
		UPDATE fire_departments SET
			name = $1,
			phone = $2,
			address = $3,
			latitude = $4,
			longitude = $5,
			updated_at = NOW()
		WHERE id = $6;
	`
	cmdTag, err := r.db.Exec(ctx, query,
		department.Name,
		department.Phone,
		department.Address,
		department.Latitude,
		department.Longitude,
		department.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update department: %w", err)
	}

	if cmdTag.RowsAffected() == 0 {
		return fmt.Errorf("department with id %d: %w", department.ID, service.ErrNotFound)
	}

	r.invalidateListCache(ctx)
	return nil
}

// GetByID returns a fire department by its id
func (r *DepartmentRepository) GetByID(ctx context.Context, id int64) (*models.FireDepartment, error) {
	department := &models.FireDepartment{}
	query := `
		SELECT id, name, phone, address, latitude, longitude, created_at, updated_at
		FROM fire_departments
		WHERE id = $1;
	`
	err := r.db.QueryRow(ctx, query, id).Scan(
		&department.ID,
		&department.Name,
		&department.Phone,
		&department.Address,
		&department.Latitude,
		&department.Longitude,
		&department.CreatedAt,
		&department.UpdatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, fmt.Errorf("department with id %d: %w", id, service.ErrNotFound)
		}
		return nil, fmt.Errorf("failed to get department by id: %w", err)
	}
	return department, nil
}

// List returns all fire departments, preferring the Redis cache
func (r *DepartmentRepository) List(ctx context.Context) ([]*models.FireDepartment, error) {
	if cached, err := r.listFromCache(ctx); err == nil && cached != nil {
		return cached, nil
	}

	query := `
		SELECT id, name, phone, address, latitude, longitude, created_at, updated_at
		FROM fire_departments
		ORDER BY id;
	`
	rows, err := r.db.Query(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list departments: %w", err)
	}
	defer rows.Close()

	departments := make([]*models.FireDepartment, 0)
	for rows.Next() {
		department := &models.FireDepartment{}
		err := rows.Scan(
			&department.ID,
			&department.Name,
			&department.Phone,
			&department.Address,
			&department.Latitude,
			&department.Longitude,
			&department.CreatedAt,
			&department.UpdatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("failed to scan department row: %w", err)
		}
		departments = append(departments, department)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("error list iteration: %w", err)
	}

	r.setListCache(ctx, departments)
	return departments, nil
}

// listFromCache returns the cached department list, or nil on a miss
func (r *DepartmentRepository) listFromCache(ctx context.Context) ([]*models.FireDepartment, error) {
	val, err := r.redisClient.Get(ctx, departmentListCacheKey).Bytes()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to get departments from cache: %w", err)
	}

	departments := make([]*models.FireDepartment, 0)
	if err := json.Unmarshal(val, &departments); err != nil {
		return nil, fmt.Errorf("failed to unmarshal departments from cache: %w", err)
	}
	return departments, nil
}

// setListCache stores the department list with a TTL; cache errors are
// ignored, the database remains the source of truth
func (r *DepartmentRepository) setListCache(ctx context.Context, departments []*models.FireDepartment) {
	val, err := json.Marshal(departments)
	if err != nil {
		return
	}
	_ = r.redisClient.Set(ctx, departmentListCacheKey, val, departmentListCacheTTL).Err()
}

func (r *DepartmentRepository) invalidateListCache(ctx context.Context) {
	_ = r.redisClient.Del(ctx, departmentListCacheKey).Err()
}
