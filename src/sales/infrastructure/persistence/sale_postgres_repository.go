package persistence

import (
	"context"
	"database/sql"
	"fmt"

	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"

	"github.com/google/uuid"
)

// SalePostgresRepository implementa SaleRepository usando PostgreSQL.
// Sin lógica de negocio: insert, update de status y select.
type SalePostgresRepository struct {
	db *sql.DB
}

// NewSalePostgresRepository crea una nueva instancia del repositorio
func NewSalePostgresRepository(db *sql.DB) port.SaleRepository {
	return &SalePostgresRepository{
		db: db,
	}
}

// Create persiste una venta confirmada con sus items (atómicamente)
func (r *SalePostgresRepository) Create(ctx context.Context, sale *entity.CommittedSale) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	querySale := `
		INSERT INTO pos_sales (
			id, session_id, total_quantity, total_amount,
			display_label, currency, status, created_at
		) VALUES (
			$1, $2, $3, $4, $5, $6, 'completed', $7
		)
	`

	_, err = tx.ExecContext(ctx, querySale,
		sale.ID,
		sale.SessionID,
		sale.TotalQuantity,
		sale.TotalAmount,
		sale.DisplayLabel,
		sale.Currency,
		sale.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating pos_sale: %w", err)
	}

	queryItem := `
		INSERT INTO pos_sale_items (
			id, pos_sale_id, product_id, product_name,
			quantity, unit_price, line_total, position
		) VALUES (
			$1, $2, $3, $4, $5, $6, $7, $8
		)
	`

	// position preserva el orden de primer tap dentro del batch
	for i, item := range sale.LineItems {
		_, err = tx.ExecContext(ctx, queryItem,
			uuid.New(),
			sale.ID,
			item.ProductID,
			item.ProductName,
			item.Quantity,
			item.UnitPrice,
			item.LineTotal,
			i,
		)
		if err != nil {
			return fmt.Errorf("error creating pos_sale_item for product %s: %w", item.ProductID, err)
		}
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// Void marca una venta como anulada (undo). Idempotente.
func (r *SalePostgresRepository) Void(ctx context.Context, saleID uuid.UUID) error {
	query := `
		UPDATE pos_sales
		SET status = 'voided', voided_at = NOW()
		WHERE id = $1 AND status = 'completed'
	`

	_, err := r.db.ExecContext(ctx, query, saleID)
	if err != nil {
		return fmt.Errorf("error voiding pos_sale: %w", err)
	}

	return nil
}

// List retorna las ventas completadas (no anuladas) con sus items,
// más recientes primero
func (r *SalePostgresRepository) List(ctx context.Context, page, pageSize int) ([]*entity.CommittedSale, int, error) {
	var totalCount int
	queryCount := `SELECT COUNT(*) FROM pos_sales WHERE status = 'completed'`
	if err := r.db.QueryRowContext(ctx, queryCount).Scan(&totalCount); err != nil {
		return nil, 0, fmt.Errorf("error counting pos_sales: %w", err)
	}

	querySales := `
		SELECT id, session_id, total_quantity, total_amount,
			display_label, currency, created_at
		FROM pos_sales
		WHERE status = 'completed'
		ORDER BY created_at DESC
		LIMIT $1 OFFSET $2
	`

	rows, err := r.db.QueryContext(ctx, querySales, pageSize, (page-1)*pageSize)
	if err != nil {
		return nil, 0, fmt.Errorf("error querying pos_sales: %w", err)
	}
	defer rows.Close()

	var sales []*entity.CommittedSale

	for rows.Next() {
		sale := &entity.CommittedSale{}
		err := rows.Scan(
			&sale.ID,
			&sale.SessionID,
			&sale.TotalQuantity,
			&sale.TotalAmount,
			&sale.DisplayLabel,
			&sale.Currency,
			&sale.CreatedAt,
		)
		if err != nil {
			return nil, 0, fmt.Errorf("error scanning pos_sale: %w", err)
		}
		sales = append(sales, sale)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating pos_sales: %w", err)
	}

	// Items por venta (N+1 simple, las páginas son chicas)
	queryItems := `
		SELECT product_id, product_name, quantity, unit_price, line_total
		FROM pos_sale_items
		WHERE pos_sale_id = $1
		ORDER BY position
	`

	for _, sale := range sales {
		itemRows, err := r.db.QueryContext(ctx, queryItems, sale.ID)
		if err != nil {
			return nil, 0, fmt.Errorf("error querying pos_sale_items: %w", err)
		}

		var items []entity.PendingLineItem

		for itemRows.Next() {
			item := entity.PendingLineItem{}
			err := itemRows.Scan(
				&item.ProductID,
				&item.ProductName,
				&item.Quantity,
				&item.UnitPrice,
				&item.LineTotal,
			)
			if err != nil {
				itemRows.Close()
				return nil, 0, fmt.Errorf("error scanning pos_sale_item: %w", err)
			}
			items = append(items, item)
		}

		itemRows.Close()

		if err = itemRows.Err(); err != nil {
			return nil, 0, fmt.Errorf("error iterating pos_sale_items: %w", err)
		}

		sale.LineItems = items
	}

	return sales, totalCount, nil
}
