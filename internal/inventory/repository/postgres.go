package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"

	"github.com/distromate/backoffice-service/internal/inventory/dto"
	"github.com/distromate/backoffice-service/internal/model"
	"github.com/jmoiron/sqlx"
)

type PGRepository struct {
	DB *sqlx.DB
}

func NewPGRepository(db *sqlx.DB) *PGRepository {
	return &PGRepository{DB: db}
}

func (r *PGRepository) AdjustStockWithMovement(ctx context.Context, productID string, delta int64, movement *model.StockMovement) (*model.Product, error) {
	tx, err := r.DB.BeginTxx(ctx, nil)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	// The delta is applied in SQL so concurrent adjustments cannot lose
	// updates; stock may go negative (backorders), in_stock just derives.
	var product model.Product
	query := `
        UPDATE products
        SET stock_qty = stock_qty + $1,
            in_stock = (stock_qty + $1) > 0,
            updated_at = now()
        WHERE id = $2
        RETURNING *
    `
	err = tx.GetContext(ctx, &product, query, delta, productID)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, nil
		}
		return nil, fmt.Errorf("failed to adjust stock: %w", err)
	}

	movement.StockQtyLeft = product.StockQty

	insertQuery := `
        INSERT INTO stock_movements (
            id, product_id, customer_id, sold_qty, stock_qty_left, created_at
        )
        VALUES (
            :id, :product_id, :customer_id, :sold_qty, :stock_qty_left, :created_at
        )
    `
	_, err = tx.NamedExecContext(ctx, insertQuery, movement)
	if err != nil {
		return nil, fmt.Errorf("failed to log movement: %w", err)
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}
	return &product, nil
}

func (r *PGRepository) ListMovements(ctx context.Context, f *dto.MovementFilters) ([]model.StockMovement, error) {
	conditions := []string{}
	args := map[string]interface{}{}

	if f.ProductID != "" {
		conditions = append(conditions, "product_id = :product_id")
		args["product_id"] = f.ProductID
	}
	if f.CustomerID != "" {
		conditions = append(conditions, "customer_id = :customer_id")
		args["customer_id"] = f.CustomerID
	}
	if f.From != nil {
		conditions = append(conditions, "created_at >= :from")
		args["from"] = *f.From
	}
	if f.To != nil {
		conditions = append(conditions, "created_at <= :to")
		args["to"] = *f.To
	}

	whereClause := ""
	if len(conditions) > 0 {
		whereClause = " WHERE " + strings.Join(conditions, " AND ")
	}

	query := "SELECT * FROM stock_movements" + whereClause + " ORDER BY created_at DESC"

	nstmt, err := r.DB.PrepareNamedContext(ctx, query)
	if err != nil {
		return nil, err
	}
	defer nstmt.Close()

	var items []model.StockMovement
	err = nstmt.SelectContext(ctx, &items, args)
	return items, err
}
