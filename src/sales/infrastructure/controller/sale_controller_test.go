package controller

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"
	"time"

	inventoryEntity "palengke/src/inventory/domain/entity"
	"palengke/src/inventory/infrastructure/cache"
	inventoryPersistence "palengke/src/inventory/infrastructure/persistence"
	"palengke/src/sales/application/response"
	"palengke/src/sales/application/usecase"
	"palengke/src/sales/infrastructure/notifier"
	salesPersistence "palengke/src/sales/infrastructure/persistence"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// testEnv arma el stack completo del POS contra repos en memoria, con una
// ventana de silencio corta para que los tests esperen commits reales.
type testEnv struct {
	router       *gin.Engine
	sessions     *usecase.SessionManager
	productCache *cache.ProductCache
	product      *inventoryEntity.Product
	soldOut      *inventoryEntity.Product
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()
	gin.SetMode(gin.TestMode)

	productRepo := inventoryPersistence.NewProductMemoryRepository()
	saleRepo := salesPersistence.NewSaleMemoryRepository()

	product, err := inventoryEntity.NewProduct("fishballs",
		decimal.RequireFromString("5.50"), decimal.RequireFromString("10.00"), 100)
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), product))

	soldOut, err := inventoryEntity.NewProduct("isaw",
		decimal.RequireFromString("4.00"), decimal.RequireFromString("12.00"), 0)
	require.NoError(t, err)
	require.NoError(t, productRepo.Create(context.Background(), soldOut))

	productCache := cache.NewProductCache()
	require.NoError(t, productCache.LoadFromRepo(context.Background(), productRepo))

	recorder := notifier.NewSaleRecorder(saleRepo, productRepo, productCache)
	composite := notifier.NewCompositeNotifier(recorder)

	sessions := usecase.NewSessionManager(25*time.Millisecond, "PHP", composite)
	t.Cleanup(sessions.CloseAll)

	listSalesUC := usecase.NewListSalesUseCase(saleRepo)

	router := gin.New()
	v1 := router.Group("/api/v1")
	NewSaleController(sessions, productCache, listSalesUC).RegisterRoutes(v1)

	return &testEnv{
		router:       router,
		sessions:     sessions,
		productCache: productCache,
		product:      product,
		soldOut:      soldOut,
	}
}

func (e *testEnv) do(method, path, body string) *httptest.ResponseRecorder {
	var reader *strings.Reader
	if body == "" {
		reader = strings.NewReader("")
	} else {
		reader = strings.NewReader(body)
	}
	req := httptest.NewRequest(method, path, reader)
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	e.router.ServeHTTP(w, req)
	return w
}

func (e *testEnv) openSession(t *testing.T) string {
	t.Helper()
	w := e.do(http.MethodPost, "/api/v1/pos/sessions", "")
	require.Equal(t, http.StatusCreated, w.Code)

	var resp map[string]string
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	require.NotEmpty(t, resp["session_id"])
	return resp["session_id"]
}

func (e *testEnv) tap(t *testing.T, sessionID, productID string) response.TapResponse {
	t.Helper()
	body := fmt.Sprintf(`{"product_id": %q}`, productID)
	w := e.do(http.MethodPost, "/api/v1/pos/sessions/"+sessionID+"/tap", body)
	require.Equal(t, http.StatusOK, w.Code, w.Body.String())

	var resp response.TapResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp
}

func (e *testEnv) listedSalesCount(t *testing.T) int {
	t.Helper()
	w := e.do(http.MethodGet, "/api/v1/pos/sales", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.ListSalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	return resp.TotalCount
}

func TestTapToSellFlow(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.openSession(t)
	productID := env.product.ID.String()

	// Dos taps del mismo producto: el segundo incrementa el line item
	resp := env.tap(t, sessionID, productID)
	assert.Equal(t, "sale", resp.Result)
	assert.Equal(t, 1, resp.Quantity)

	resp = env.tap(t, sessionID, productID)
	assert.Equal(t, "sale", resp.Result)
	assert.Equal(t, 2, resp.Quantity)
	assert.True(t, resp.LineTotal.Equal(decimal.RequireFromString("20.00")))

	// Vista en vivo: acumulando con un solo line item
	w := env.do(http.MethodGet, "/api/v1/pos/sessions/"+sessionID+"/pending", "")
	require.Equal(t, http.StatusOK, w.Code)

	var pending response.PendingOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, "accumulating", pending.State)
	require.Len(t, pending.Items, 1)
	assert.Equal(t, 2, pending.TotalQuantity)
	assert.True(t, pending.TotalAmount.Equal(decimal.RequireFromString("20.00")))

	// Pasada la ventana de silencio, la venta aparece en el listado
	require.Eventually(t, func() bool { return env.listedSalesCount(t) == 1 },
		2*time.Second, 10*time.Millisecond)

	// Y el stock cacheado refleja la deducción
	cached, ok := env.productCache.Get(env.product.ID)
	require.True(t, ok)
	assert.Equal(t, 98, cached.Stock)

	// La orden pendiente volvió a idle
	w = env.do(http.MethodGet, "/api/v1/pos/sessions/"+sessionID+"/pending", "")
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	assert.Equal(t, "idle", pending.State)
	assert.Empty(t, pending.Items)
}

func TestTapOutOfStockProduct(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.openSession(t)

	// Primero un tap válido para tener una orden en vuelo
	env.tap(t, sessionID, env.product.ID.String())

	resp := env.tap(t, sessionID, env.soldOut.ID.String())
	assert.Equal(t, "out_of_stock", resp.Result)
	assert.Equal(t, "isaw", resp.ProductName)
	assert.Zero(t, resp.Quantity)

	// El tap sin stock no tocó la orden pendiente
	w := env.do(http.MethodGet, "/api/v1/pos/sessions/"+sessionID+"/pending", "")
	var pending response.PendingOrderResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &pending))
	require.Len(t, pending.Items, 1)
	assert.Equal(t, env.product.ID.String(), pending.Items[0].ProductID)
}

func TestTapErrors(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.openSession(t)

	// session_id inválido
	w := env.do(http.MethodPost, "/api/v1/pos/sessions/not-a-uuid/tap",
		fmt.Sprintf(`{"product_id": %q}`, env.product.ID))
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Sesión inexistente
	w = env.do(http.MethodPost, "/api/v1/pos/sessions/00000000-0000-0000-0000-000000000001/tap",
		fmt.Sprintf(`{"product_id": %q}`, env.product.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Body sin product_id
	w = env.do(http.MethodPost, "/api/v1/pos/sessions/"+sessionID+"/tap", `{}`)
	assert.Equal(t, http.StatusBadRequest, w.Code)

	// Producto desconocido
	w = env.do(http.MethodPost, "/api/v1/pos/sessions/"+sessionID+"/tap",
		`{"product_id": "00000000-0000-0000-0000-000000000002"}`)
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestUndoRevertsLastSale(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.openSession(t)

	env.tap(t, sessionID, env.product.ID.String())
	require.Eventually(t, func() bool { return env.listedSalesCount(t) == 1 },
		2*time.Second, 10*time.Millisecond)

	w := env.do(http.MethodPost, "/api/v1/pos/sessions/"+sessionID+"/undo", "")
	require.Equal(t, http.StatusOK, w.Code)

	var undo response.UndoResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &undo))
	assert.True(t, undo.Undone)
	require.NotNil(t, undo.SaleID)
	assert.Equal(t, "fishballs", undo.DisplayLabel)

	// La venta anulada sale del listado y el stock vuelve
	require.Eventually(t, func() bool { return env.listedSalesCount(t) == 0 },
		2*time.Second, 10*time.Millisecond)
	cached, _ := env.productCache.Get(env.product.ID)
	assert.Equal(t, 100, cached.Stock)

	// Segundo undo sin venta intermedia: no revierte nada
	w = env.do(http.MethodPost, "/api/v1/pos/sessions/"+sessionID+"/undo", "")
	require.Equal(t, http.StatusOK, w.Code)
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &undo))
	assert.False(t, undo.Undone)
}

func TestCloseSessionDiscardsPendingOrder(t *testing.T) {
	env := newTestEnv(t)
	sessionID := env.openSession(t)

	env.tap(t, sessionID, env.product.ID.String())

	w := env.do(http.MethodDelete, "/api/v1/pos/sessions/"+sessionID, "")
	require.Equal(t, http.StatusOK, w.Code)

	// La sesión desapareció
	w = env.do(http.MethodPost, "/api/v1/pos/sessions/"+sessionID+"/tap",
		fmt.Sprintf(`{"product_id": %q}`, env.product.ID))
	assert.Equal(t, http.StatusNotFound, w.Code)

	// Y la orden en vuelo se descartó sin commit
	time.Sleep(100 * time.Millisecond)
	assert.Zero(t, env.listedSalesCount(t))

	// Cerrar dos veces: 404
	w = env.do(http.MethodDelete, "/api/v1/pos/sessions/"+sessionID, "")
	assert.Equal(t, http.StatusNotFound, w.Code)
}

func TestListSalesPagination(t *testing.T) {
	env := newTestEnv(t)

	w := env.do(http.MethodGet, "/api/v1/pos/sales?page=abc", "")
	assert.Equal(t, http.StatusBadRequest, w.Code)

	w = env.do(http.MethodGet, "/api/v1/pos/sales?page=2&page_size=5", "")
	require.Equal(t, http.StatusOK, w.Code)

	var resp response.ListSalesResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, 5, resp.PageSize)
}
