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

func (r *PGRepository) Create(ctx context.Context, t *model.Transaction) error {
	query := `
        INSERT INTO transactions (
            id, type, amount, description, order_id, proof_url, created_by,
            created_at, updated_at
        )
        VALUES (
            :id, :type, :amount, :description, :order_id, :proof_url, :created_by,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, t)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Transaction, error) {
	var t model.Transaction
	err := r.DB.GetContext(ctx, &t, `SELECT * FROM transactions WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &t, nil
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM transactions WHERE id = $1`, id)
	return err
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Transaction, error) {
	var items []model.Transaction
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM transactions ORDER BY created_at DESC`)
	return items, err
}

func (r *PGRepository) FindRange(ctx context.Context, from, to time.Time) ([]model.Transaction, error) {
	var items []model.Transaction
	query := `
        SELECT * FROM transactions
        WHERE created_at >= $1 AND created_at <= $2
        ORDER BY created_at DESC
    `
	err := r.DB.SelectContext(ctx, &items, query, from, to)
	return items, err
}
