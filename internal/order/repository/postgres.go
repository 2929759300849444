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

func (r *PGRepository) Create(ctx context.Context, o *model.Order) error {
	query := `
        INSERT INTO orders (
            id, customer_id, created_by, order_number, cart, price, discount,
            payment, status, delivery_status, delivery_date, message,
            created_at, updated_at
        )
        VALUES (
            :id, :customer_id, :created_by, :order_number, :cart, :price, :discount,
            :payment, :status, :delivery_status, :delivery_date, :message,
            :created_at, :updated_at
        )
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) FindByID(ctx context.Context, id string) (*model.Order, error) {
	var o model.Order
	err := r.DB.GetContext(ctx, &o, `SELECT * FROM orders WHERE id = $1 LIMIT 1`, id)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindOpenCartByCustomer(ctx context.Context, customerID string) (*model.Order, error) {
	var o model.Order
	query := `SELECT * FROM orders WHERE customer_id = $1 AND status = $2 LIMIT 1`
	err := r.DB.GetContext(ctx, &o, query, customerID, model.OrderOpen)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, err
	}
	return &o, nil
}

func (r *PGRepository) FindAll(ctx context.Context) ([]model.Order, error) {
	var items []model.Order
	query := `
        SELECT o.*, c.name AS customer_name
        FROM orders o
        LEFT JOIN customers c ON c.id = o.customer_id
        ORDER BY o.created_at DESC
    `
	err := r.DB.SelectContext(ctx, &items, query)
	return items, err
}

func (r *PGRepository) Update(ctx context.Context, o *model.Order) error {
	query := `
        UPDATE orders
        SET order_number = :order_number,
            cart = :cart,
            price = :price,
            discount = :discount,
            payment = :payment,
            status = :status,
            delivery_status = :delivery_status,
            delivery_date = :delivery_date,
            message = :message,
            updated_at = :updated_at
        WHERE id = :id
    `
	_, err := r.DB.NamedExecContext(ctx, query, o)
	return err
}

func (r *PGRepository) Delete(ctx context.Context, id string) error {
	_, err := r.DB.ExecContext(ctx, `DELETE FROM orders WHERE id = $1`, id)
	return err
}

func (r *PGRepository) NextOrderNumber(ctx context.Context) (int64, error) {
	var next int64
	err := r.DB.GetContext(ctx, &next, `SELECT COALESCE(MAX(order_number), 0) + 1 FROM orders`)
	return next, err
}

func (r *PGRepository) FindByCreatorInWindow(ctx context.Context, createdBy string, from, to time.Time) ([]model.Order, error) {
	var items []model.Order
	query := `
        SELECT * FROM orders
        WHERE created_by = $1 AND created_at >= $2 AND created_at <= $3
        ORDER BY created_at
    `
	err := r.DB.SelectContext(ctx, &items, query, createdBy, from, to)
	return items, err
}

func (r *PGRepository) FindDueUnpaid(ctx context.Context, from, to time.Time) ([]model.Order, error) {
	var items []model.Order
	query := `
        SELECT * FROM orders
        WHERE status = $1
          AND payment IS NULL
          AND delivery_date >= $2 AND delivery_date < $3
        ORDER BY delivery_date
    `
	err := r.DB.SelectContext(ctx, &items, query, model.OrderSaved, from, to)
	return items, err
}
