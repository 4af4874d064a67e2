package persistence

import (
	"context"
	"sort"
	"sync"

	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"

	"github.com/google/uuid"
)

// SaleMemoryRepository implementa SaleRepository en memoria (arranque sin
// base de datos y tests). Nada sobrevive al proceso.
type SaleMemoryRepository struct {
	mu     sync.RWMutex
	sales  map[uuid.UUID]entity.CommittedSale
	voided map[uuid.UUID]bool
}

// NewSaleMemoryRepository crea un repositorio en memoria vacío
func NewSaleMemoryRepository() port.SaleRepository {
	return &SaleMemoryRepository{
		sales:  make(map[uuid.UUID]entity.CommittedSale),
		voided: make(map[uuid.UUID]bool),
	}
}

// Create guarda la venta confirmada
func (r *SaleMemoryRepository) Create(ctx context.Context, sale *entity.CommittedSale) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	r.sales[sale.ID] = *sale
	return nil
}

// Void marca la venta como anulada
func (r *SaleMemoryRepository) Void(ctx context.Context, saleID uuid.UUID) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.sales[saleID]; ok {
		r.voided[saleID] = true
	}
	return nil
}

// List retorna las ventas no anuladas, más recientes primero
func (r *SaleMemoryRepository) List(ctx context.Context, page, pageSize int) ([]*entity.CommittedSale, int, error) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	all := make([]*entity.CommittedSale, 0, len(r.sales))
	for id, s := range r.sales {
		if r.voided[id] {
			continue
		}
		cp := s
		all = append(all, &cp)
	}
	sort.Slice(all, func(i, j int) bool { return all[i].CreatedAt.After(all[j].CreatedAt) })

	totalCount := len(all)
	start := (page - 1) * pageSize
	if start >= totalCount {
		return []*entity.CommittedSale{}, totalCount, nil
	}
	end := start + pageSize
	if end > totalCount {
		end = totalCount
	}
	return all[start:end], totalCount, nil
}
