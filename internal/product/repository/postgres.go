package repository

import (
	"context"
	"database/sql"
	"errors"

	"github.com/distromate/backoffice-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) Create(ctx context.Context, p *model.Product) error {
	query := `
        INSERT INTO products (
            id, name, category, price, discount, stock_qty, in_stock,
            purchase_price, history, created_by, created_at, updated_at
        )
        VALUES (
            :id, :name, :category, :price, :discount, :stock_qty, :in_stock,
            :purchase_price, :history, :created_by, :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Product, error) {
	var p model.Product
	err := r.DB.GetContext(ctx, &p, `SELECT * FROM products WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindByNameCategory(ctx context.Context, name, category string) (*model.Product, error) {
	var p model.Product
	query := `SELECT * FROM products WHERE name = $1 AND category = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &p, query, name, category)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &p, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Product, error) {
	var items []model.Product
	err := r.DB.SelectContext(ctx, &items, `SELECT * FROM products ORDER BY created_at DESC`)
	return items, err
}

func (r *PGRepository) Update(ctx context.Context, p *model.Product) error {
	query := `
        UPDATE products
        SET name = :name,
            category = :category,
            price = :price,
            discount = :discount,
            stock_qty = :stock_qty,
            in_stock = :in_stock,
            purchase_price = :purchase_price,
            history = :history,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, p)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM products WHERE id = $1`, id)
	return err
}
