package controller

import (
	"errors"
	"log"
	"net/http"

	"palengke/src/inventory/infrastructure/cache"
	"palengke/src/sales/application/request"
	"palengke/src/sales/application/response"
	"palengke/src/sales/application/usecase"
	"palengke/src/sales/domain/entity"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SaleController maneja las peticiones HTTP del POS tap-to-sell
type SaleController struct {
	sessions     *usecase.SessionManager
	productCache *cache.ProductCache
	listSalesUC  *usecase.ListSalesUseCase
}

// NewSaleController crea una nueva instancia del controlador
func NewSaleController(
	sessions *usecase.SessionManager,
	productCache *cache.ProductCache,
	listSalesUC *usecase.ListSalesUseCase,
) *SaleController {
	return &SaleController{
		sessions:     sessions,
		productCache: productCache,
		listSalesUC:  listSalesUC,
	}
}

// RegisterRoutes registra las rutas del controlador
func (c *SaleController) RegisterRoutes(router *gin.RouterGroup) {
	pos := router.Group("/pos")
	{
		pos.POST("/sessions", c.OpenSession)
		pos.DELETE("/sessions/:session_id", c.CloseSession)
		pos.POST("/sessions/:session_id/tap", c.Tap)
		pos.POST("/sessions/:session_id/undo", c.Undo)
		pos.GET("/sessions/:session_id/pending", c.Pending)
		pos.GET("/sales", c.ListSales)
	}

	log.Println("Rutas POS disponibles:")
	log.Println("  POST   /api/v1/pos/sessions")
	log.Println("  DELETE /api/v1/pos/sessions/:session_id")
	log.Println("  POST   /api/v1/pos/sessions/:session_id/tap  ⭐ (Tap-to-sell)")
	log.Println("  POST   /api/v1/pos/sessions/:session_id/undo")
	log.Println("  GET    /api/v1/pos/sessions/:session_id/pending")
	log.Println("  GET    /api/v1/pos/sales")
}

// OpenSession abre una sesión POS nueva (una por pantalla de venta)
func (c *SaleController) OpenSession(ctx *gin.Context) {
	sessionID := c.sessions.Open()
	ctx.JSON(http.StatusCreated, gin.H{
		"session_id": sessionID,
	})
}

// CloseSession cierra la sesión y desarma su agregador (cancela el timer
// en vuelo; una orden pendiente se descarta sin commit)
func (c *SaleController) CloseSession(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	if err := c.sessions.Close(sessionID); err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	ctx.JSON(http.StatusOK, gin.H{"closed": true})
}

// Tap registra un tap de venta sobre un producto. El stock se verifica acá
// (colaborador de inventario), no en el agregador: con stock va como venta,
// sin stock va como out_of_stock y la orden pendiente no se toca.
func (c *SaleController) Tap(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	agg, err := c.sessions.Get(sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	var req request.TapRequest
	if err := ctx.ShouldBindJSON(&req); err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{
			"error":   "Invalid request body",
			"details": err.Error(),
		})
		return
	}

	productID, err := uuid.Parse(req.ProductID)
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid product_id format"})
		return
	}

	quantity := req.Quantity
	if quantity == 0 {
		quantity = 1
	}

	// Lookup en el cache de inventario (camino caliente, sin DB)
	product, found := c.productCache.Get(productID)
	if !found {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Product not found"})
		return
	}

	if !product.InStock() {
		if err := agg.RecordOutOfStock(product.ID.String(), product.Name); err != nil {
			ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusOK, response.TapResponse{
			Result:      "out_of_stock",
			ProductID:   product.ID.String(),
			ProductName: product.Name,
		})
		return
	}

	var position *entity.Position
	if req.Position != nil {
		position = &entity.Position{X: req.Position.X, Y: req.Position.Y}
	}

	update, err := agg.RecordTap(product.ID.String(), product.Name, product.SellPrice, quantity, position)
	if err != nil {
		log.Printf("Error recording tap: %v", err)
		if errors.Is(err, entity.ErrInvalidQuantity) {
			ctx.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
			return
		}
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	resp := response.TapResponse{
		Result:      "sale",
		ProductID:   update.ProductID,
		ProductName: update.ProductName,
		Quantity:    update.Quantity,
		LineTotal:   update.LineTotal,
	}
	if update.Position != nil {
		resp.PositionX = &update.Position.X
		resp.PositionY = &update.Position.Y
	}

	ctx.JSON(http.StatusOK, resp)
}

// Undo cancela la orden pendiente y revierte la última venta confirmada,
// si existe. Un segundo undo sin venta intermedia no revierte nada.
func (c *SaleController) Undo(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	agg, err := c.sessions.Get(sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	sale, err := agg.Undo()
	if err != nil {
		ctx.JSON(http.StatusConflict, gin.H{"error": err.Error()})
		return
	}

	if sale == nil {
		ctx.JSON(http.StatusOK, response.UndoResponse{Undone: false})
		return
	}

	ctx.JSON(http.StatusOK, response.UndoResponse{
		Undone:        true,
		SaleID:        &sale.ID,
		DisplayLabel:  sale.DisplayLabel,
		TotalQuantity: sale.TotalQuantity,
		TotalAmount:   sale.TotalAmount,
	})
}

// Pending retorna la vista en vivo de la orden pendiente de la sesión
func (c *SaleController) Pending(ctx *gin.Context) {
	sessionID, ok := c.sessionID(ctx)
	if !ok {
		return
	}

	agg, err := c.sessions.Get(sessionID)
	if err != nil {
		ctx.JSON(http.StatusNotFound, gin.H{"error": "Session not found"})
		return
	}

	items := agg.PendingItems()

	resp := response.PendingOrderResponse{
		SessionID:   sessionID,
		State:       "idle",
		Items:       make([]response.PendingLineItemResponse, 0, len(items)),
		TotalAmount: decimal.Zero,
	}
	for _, item := range items {
		resp.Items = append(resp.Items, response.PendingLineItemResponse{
			ProductID:   item.ProductID,
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
			UnitPrice:   item.UnitPrice,
			LineTotal:   item.LineTotal,
		})
		resp.TotalQuantity += item.Quantity
		resp.TotalAmount = resp.TotalAmount.Add(item.LineTotal)
	}
	if len(items) > 0 {
		resp.State = "accumulating"
	}

	ctx.JSON(http.StatusOK, resp)
}

// ListSales lista las ventas confirmadas con paginación
func (c *SaleController) ListSales(ctx *gin.Context) {
	if c.listSalesUC == nil {
		ctx.JSON(http.StatusServiceUnavailable, gin.H{
			"error": "Sales list not available (database not configured)",
		})
		return
	}

	page, err := parsePageParam(ctx.DefaultQuery("page", "1"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page parameter"})
		return
	}

	pageSize, err := parsePageParam(ctx.DefaultQuery("page_size", "10"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid page_size parameter"})
		return
	}

	resp, err := c.listSalesUC.Execute(ctx.Request.Context(), page, pageSize)
	if err != nil {
		log.Printf("Error listing sales: %v", err)
		ctx.JSON(http.StatusInternalServerError, gin.H{"error": err.Error()})
		return
	}

	ctx.JSON(http.StatusOK, resp)
}

// sessionID parsea el path param :session_id
func (c *SaleController) sessionID(ctx *gin.Context) (uuid.UUID, bool) {
	sessionID, err := uuid.Parse(ctx.Param("session_id"))
	if err != nil {
		ctx.JSON(http.StatusBadRequest, gin.H{"error": "Invalid session_id format"})
		return uuid.Nil, false
	}
	return sessionID, true
}
