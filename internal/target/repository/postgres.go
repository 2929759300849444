package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, t *model.Target) error {
	query := `
        INSERT INTO targets (
            id, user_id, type, value, product_id, start_date, end_date,
            progress, achieved, created_at, updated_at
        )
        VALUES (
            :id, :user_id, :type, :value, :product_id, :start_date, :end_date,
            :progress, :achieved, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, t)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Target, error) {
	var t model.Target
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM targets WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Target, error) {
	var items []model.Target
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM targets ORDER BY created_at DESC`)
	return items, err
}

func (r *PGRepository) FindByUser(ctx context.Context, userID string) ([]model.Target, error) {
	var items []model.Target
	query := `SELECT * FROM targets WHERE user_id = $1 ORDER BY created_at DESC`
	err := r.DB.SelectContext(ctx, &items, query, userID)
	return items, err
}

func (r *PGRepository) FindActiveByUser(ctx context.Context, userID string, now time.Time) ([]model.Target, error) {
	var items []model.Target
	query := `SELECT * FROM targets WHERE user_id = $1 AND end_date >= $2 ORDER BY created_at`
	err := r.DB.SelectContext(ctx, &items, query, userID, now)
	return items, err
}

func (r *PGRepository) Update(ctx context.Context, t *model.Target) error {
	query := `
        UPDATE targets
        SET type = :type,
            value = :value,
            product_id = :product_id,
            start_date = :start_date,
            end_date = :end_date,
            progress = :progress,
            achieved = :achieved,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, t)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM targets WHERE id = $1`, id)
	return err
}
