package persistence

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"

	"github.com/google/uuid"
)

// ProductPostgresRepository implementa ProductRepository usando PostgreSQL
type ProductPostgresRepository struct {
	db *sql.DB
}

// NewProductPostgresRepository crea una nueva instancia del repositorio
func NewProductPostgresRepository(db *sql.DB) port.ProductRepository {
	return &ProductPostgresRepository{
		db: db,
	}
}

// List retorna todos los productos del puesto
func (r *ProductPostgresRepository) List(ctx context.Context) ([]*entity.Product, error) {
	query := `
		SELECT id, name, cost, sell_price, stock, created_at
		FROM products
		ORDER BY created_at
	`

	rows, err := r.db.QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("error querying products: %w", err)
	}
	defer rows.Close()

	var products []*entity.Product

	for rows.Next() {
		p := &entity.Product{}
		err := rows.Scan(
			&p.ID,
			&p.Name,
			&p.Cost,
			&p.SellPrice,
			&p.Stock,
			&p.CreatedAt,
		)
		if err != nil {
			return nil, fmt.Errorf("error scanning product: %w", err)
		}
		products = append(products, p)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// GetByID retorna un producto por ID
func (r *ProductPostgresRepository) GetByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	query := `
		SELECT id, name, cost, sell_price, stock, created_at
		FROM products
		WHERE id = $1
	`

	p := &entity.Product{}
	err := r.db.QueryRowContext(ctx, query, productID).Scan(
		&p.ID,
		&p.Name,
		&p.Cost,
		&p.SellPrice,
		&p.Stock,
		&p.CreatedAt,
	)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, entity.ErrProductNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("error querying product: %w", err)
	}

	return p, nil
}

// Create persiste un producto nuevo
func (r *ProductPostgresRepository) Create(ctx context.Context, product *entity.Product) error {
	query := `
		INSERT INTO products (id, name, cost, sell_price, stock, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	_, err := r.db.ExecContext(ctx, query,
		product.ID,
		product.Name,
		product.Cost,
		product.SellPrice,
		product.Stock,
		product.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("error creating product: %w", err)
	}

	return nil
}

// AdjustStock suma delta al stock (delta negativo para ventas) y registra
// el movimiento, en una transacción. El WHERE protege el invariante de
// stock no-negativo: si no afecta filas, no había stock suficiente.
func (r *ProductPostgresRepository) AdjustStock(ctx context.Context, productID uuid.UUID, delta int, logType string) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("error starting transaction: %w", err)
	}
	defer tx.Rollback()

	queryUpdate := `
		UPDATE products
		SET stock = stock + $2
		WHERE id = $1 AND stock + $2 >= 0
	`

	result, err := tx.ExecContext(ctx, queryUpdate, productID, delta)
	if err != nil {
		return fmt.Errorf("error adjusting stock: %w", err)
	}

	affected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("error checking adjusted rows: %w", err)
	}
	if affected == 0 {
		// Producto inexistente o stock insuficiente: distinguir
		var exists bool
		if err := tx.QueryRowContext(ctx, `SELECT EXISTS (SELECT 1 FROM products WHERE id = $1)`, productID).Scan(&exists); err != nil {
			return fmt.Errorf("error checking product existence: %w", err)
		}
		if !exists {
			return entity.ErrProductNotFound
		}
		return entity.ErrInsufficientStock
	}

	queryLog := `
		INSERT INTO stock_logs (id, product_id, type, quantity, created_at)
		VALUES ($1, $2, $3, $4, NOW())
	`

	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}

	_, err = tx.ExecContext(ctx, queryLog, uuid.New(), productID, logType, quantity)
	if err != nil {
		return fmt.Errorf("error creating stock_log: %w", err)
	}

	if err = tx.Commit(); err != nil {
		return fmt.Errorf("error committing transaction: %w", err)
	}

	return nil
}

// ListStockLogs retorna los movimientos de stock de un producto
func (r *ProductPostgresRepository) ListStockLogs(ctx context.Context, productID uuid.UUID) ([]*entity.StockLog, error) {
	query := `
		SELECT id, product_id, type, quantity, created_at
		FROM stock_logs
		WHERE product_id = $1
		ORDER BY created_at DESC
	`

	rows, err := r.db.QueryContext(ctx, query, productID)
	if err != nil {
		return nil, fmt.Errorf("error querying stock_logs: %w", err)
	}
	defer rows.Close()

	var logs []*entity.StockLog

	for rows.Next() {
		l := &entity.StockLog{}
		err := rows.Scan(&l.ID, &l.ProductID, &l.Type, &l.Quantity, &l.CreatedAt)
		if err != nil {
			return nil, fmt.Errorf("error scanning stock_log: %w", err)
		}
		logs = append(logs, l)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating stock_logs: %w", err)
	}

	return logs, nil
}
