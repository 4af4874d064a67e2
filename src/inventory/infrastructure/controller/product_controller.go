package controller

import (
	"errors"
	"log"
	"net/http"

	"palengke/src/inventory/application/request"
	"palengke/src/inventory/application/response"
	"palengke/src/inventory/application/usecase"
	"palengke/src/inventory/domain/entity"
	"palengke/src/inventory/domain/port"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
)

// ProductController maneja las peticiones HTTP del catálogo de productos
type ProductController struct {
	listProductsUC *usecase.ListProductsUseCase
	addProductUC   *usecase.AddProductUseCase
	restockUC      *usecase.RestockProductUseCase
	productRepo    port.ProductRepository
}

// NewProductController crea una nueva instancia del controlador
func NewProductController(
	listProductsUC *usecase.ListProductsUseCase,
	addProductUC *usecase.AddProductUseCase,
	restockUC *usecase.RestockProductUseCase,
	productRepo port.ProductRepository,
) *ProductController {
	return &ProductController{
		listProductsUC: listProductsUC,
		addProductUC:   addProductUC,
		restockUC:      restockUC,
		productRepo:    productRepo,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *ProductController) RegisterRoutes(router *gin.RouterGroup) {
	products := router.Group("/products")
	{
		products.GET("", c.ListProducts)
		products.POST("", c.AddProduct)
		products.POST("/:product_id/restock", c.Restock)
		products.GET("/:product_id/stock-logs", c.StockLogs)
	}

	log.Println("Rutas Inventory disponibles:")
	log.Println("  GET    /api/v1/products")
	log.Println("  POST   /api/v1/products")
	log.Println("  POST   /api/v1/products/:product_id/restock")
	log.Println("  GET    /api/v1/products/:product_id/stock-logs")
}

// ListProducts lista el catálogo del puesto
func (c *ProductController) ListProducts(ctx *gin.Context) {
	items, err := c.listProductsUC.Execute(ctx.Request.Context())
	if err != nil {
		log.Printf("Error listing products: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}

// AddProduct crea un producto nuevo
func (c *ProductController) AddProduct(ctx *gin.Context) {
	var req request.AddProductRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.addProductUC.Execute(ctx.Request.Context(), &req)
	if err != nil {
		log.Printf("Error creating product: %v", err)
		if errors.Is(err, entity.ErrProductNameRequired) ||
			errors.Is(err, entity.ErrInvalidCost) ||
			errors.Is(err, entity.ErrInvalidSellPrice) ||
			errors.Is(err, entity.ErrInvalidStock) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusCreated, resp)
}

// Restock repone stock de un producto
func (c *ProductController) Restock(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	var req request.RestockRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	resp, err := c.restockUC.Execute(ctx.Request.Context(), productID, req.Quantity)
	if err != nil {
		log.Printf("Error restocking product %s: %v", productID, err)
		if errors.Is(err, entity.ErrProductNotFound) {
			ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
			return
		}
		if errors.Is(err, entity.ErrInvalidRestockQty) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// StockLogs lista los movimientos de stock de un producto
func (c *ProductController) StockLogs(ctx *gin.Context) {
	productID, err := uuid.Parse(ctx.Param("product_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	logs, err := c.productRepo.ListStockLogs(ctx.Request.Context(), productID)
	if err != nil {
		log.Printf("Error listing stock logs for %s: %v", productID, err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	items := make([]response.StockLogResponse, 0, len(logs))
	for _, l := range logs {
		items = append(items, response.StockLogResponse{
			ID:        l.ID,
			Type:      l.Type,
			Quantity:  l.Quantity,
			CreatedAt: l.CreatedAt,
		})
	}

	ctx.JSON(http.StatusOK, gin.H{
		"items":       items,
		"total_count": len(items),
	})
}
