package cache

import (
	"context"
	"log"
	"sync"

	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"

	"github.com/google/uuid"
)

// ProductCache cache en memoria del catálogo de productos.
// El camino caliente (tap de venta) lee precio y stock de acá, nunca de la
// base; se refresca en cada escritura de inventario.
type ProductCache struct {
	products map[uuid.UUID]entity.Product
	mu       sync.RWMutex
}

// NewProductCache crea un nuevo cache de productos
func NewProductCache() *ProductCache {
	return &ProductCache{
		products: make(map[uuid.UUID]entity.Product),
	}
}

// LoadFromRepo carga el catálogo completo desde el repositorio
func (c *ProductCache) LoadFromRepo(ctx context.Context, repo port.ProductRepository) error {
	log.Println("🔄 Loading product catalog into cache...")

	products, err := repo.List(ctx)
	if err != nil {
		log.Printf("⚠️  Warning: Could not load products: %v", err)
		return err
	}

	c.mu.Lock()
	defer c.mu.Unlock()

	c.products = make(map[uuid.UUID]entity.Product, len(products))
	for _, p := range products {
		c.products[p.ID] = *p
	}

	log.Printf("✅ Loaded %d products into cache", len(products))
	return nil
}

// Get obtiene un producto por ID
func (c *ProductCache) Get(id uuid.UUID) (entity.Product, bool) {
	c.mu.RLock()
	defer c.mu.RUnlock()

	p, ok := c.products[id]
	return p, ok
}

// Put inserta o actualiza un producto en el cache
func (c *ProductCache) Put(p entity.Product) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.products[p.ID] = p
}

// AdjustStock aplica un delta de stock en el cache (espejo del repositorio).
// Nunca deja el stock por debajo de cero.
func (c *ProductCache) AdjustStock(id uuid.UUID, delta int) {
	c.mu.Lock()
	defer c.mu.Unlock()

	p, ok := c.products[id]
	if !ok {
		return
	}
	p.Stock += delta
	if p.Stock < 0 {
		p.Stock = 0
	}
	c.products[id] = p
}

// Len retorna la cantidad de productos cacheados
func (c *ProductCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.products)
}
