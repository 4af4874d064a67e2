package usecase

import (
	"context"
	"fmt"
	"log"

	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"

	"github.com/shopspring/decimal"
)

// SeedCatalogUseCase carga el catálogo de muestra de un puesto de calle
// típico cuando la base está vacía (solo para demos y desarrollo)
type SeedCatalogUseCase struct {
	productRepo port.ProductRepository
}

// NewSeedCatalogUseCase crea una nueva instancia del caso de uso
func NewSeedCatalogUseCase(productRepo port.ProductRepository) *SeedCatalogUseCase {
	return &SeedCatalogUseCase{
		productRepo: productRepo,
	}
}

type seedProduct struct {
	name      string
	cost      string
	sellPrice string
	stock     int
}

// Catálogo de muestra de un puesto de street food
var sampleCatalog = []seedProduct{
	{"tempura", "6.00", "10.00", 100},
	{"fishballs", "5.50", "10.00", 100},
	{"kwek-kwek", "8.00", "15.00", 100},
	{"isaw", "4.00", "12.00", 50},
	{"gulaman", "7.00", "20.00", 30},
}

// Execute carga el catálogo de muestra si la base está vacía
func (uc *SeedCatalogUseCase) Execute(ctx context.Context) error {
	existing, err := uc.productRepo.List(ctx)
	if err != nil {
		return fmt.Errorf("error checking existing products: %w", err)
	}
	if len(existing) > 0 {
		log.Printf("Seed skipped: catalog already has %d products", len(existing))
		return nil
	}

	for _, sp := range sampleCatalog {
		cost, err := decimal.NewFromString(sp.cost)
		if err != nil {
			return fmt.Errorf("invalid seed cost for %s: %w", sp.name, err)
		}
		sellPrice, err := decimal.NewFromString(sp.sellPrice)
		if err != nil {
			return fmt.Errorf("invalid seed price for %s: %w", sp.name, err)
		}

		product, err := entity.NewProduct(sp.name, cost, sellPrice, sp.stock)
		if err != nil {
			return fmt.Errorf("invalid seed product %s: %w", sp.name, err)
		}
		if err := uc.productRepo.Create(ctx, product); err != nil {
			return fmt.Errorf("error seeding product %s: %w", sp.name, err)
		}
	}

	log.Printf("✅ Seeded %d sample products", len(sampleCatalog))
	return nil
}
