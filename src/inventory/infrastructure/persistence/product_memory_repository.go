package persistence

import (
	"context"
	"sort"
	"sync"
	"time"

	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"

	"github.com/google/uuid"
)

// ProductMemoryRepository implementa ProductRepository en memoria.
// Se usa cuando el servicio arranca sin base de datos (solo demo/tests);
// nada sobrevive al proceso.
type ProductMemoryRepository struct {
	mu       sync.RWMutex
	products map[uuid.UUID]entity.Product
	logs     map[uuid.UUID][]entity.StockLog
}

// NewProductMemoryRepository crea un repositorio en memoria vacío
func NewProductMemoryRepository() port.ProductRepository {
	return &ProductMemoryRepository{
		products: make(map[uuid.UUID]entity.Product),
		logs:     make(map[uuid.UUID][]entity.StockLog),
	}
}

// List retorna todos los productos, más antiguos primero
func (r *ProductMemoryRepository) List(ctx context.Context) ([]*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	out := make([]*entity.Product, 0, len(r.products))
	for _, p := range r.products {
		cp := p
		out = append(out, &cp)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.Before(out[j].CreatedAt) })
	return out, nil
}

// GetByID retorna un producto por ID
func (r *ProductMemoryRepository) GetByID(ctx context.Context, productID uuid.UUID) (*entity.Product, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	p, ok := r.products[productID]
	if !ok {
		return nil, entity.ErrProductNotFound
	}
	cp := p
	return &cp, nil
}

// Create guarda un producto nuevo
func (r *ProductMemoryRepository) Create(ctx context.Context, product *entity.Product) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.products[product.ID] = *product
	return nil
}

// AdjustStock aplica el delta y registra el movimiento
func (r *ProductMemoryRepository) AdjustStock(ctx context.Context, productID uuid.UUID, delta int, logType string) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	p, ok := r.products[productID]
	if !ok {
		return entity.ErrProductNotFound
	}
	if p.Stock+delta < 0 {
		return entity.ErrInsufficientStock
	}
	p.Stock += delta
	r.products[productID] = p

	quantity := delta
	if quantity < 0 {
		quantity = -quantity
	}
	r.logs[productID] = append(r.logs[productID], entity.StockLog{
		ID:        uuid.New(),
		ProductID: productID,
		Type:      logType,
		Quantity:  quantity,
		CreatedAt: time.Now(),
	})

	return nil
}

// ListStockLogs retorna los movimientos, más recientes primero
func (r *ProductMemoryRepository) ListStockLogs(ctx context.Context, productID uuid.UUID) ([]*entity.StockLog, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	logs := r.logs[productID]
	out := make([]*entity.StockLog, 0, len(logs))
	for i := len(logs) - 1; i >= 0; i-- {
		cp := logs[i]
		out = append(out, &cp)
	}
	return out, nil
}
