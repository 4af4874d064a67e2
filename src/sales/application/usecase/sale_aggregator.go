package usecase

import (
	"sync"
	"time"

	"palengke/src/sales/domain/entity"
	"palengke/src/sales/domain/port"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// DefaultQuietWindow es la ventana de silencio del debounce: cada tap la
// reinicia, y el commit recién dispara cuando pasa la ventana completa sin
// nuevos taps
const DefaultQuietWindow = 1500 * time.Millisecond

// SaleAggregator convierte una ráfaga de taps "producto vendido" en pocas
// ventas consolidadas. Un único timer compartido para toda la orden
// pendiente (no por producto): mientras sigan llegando taps dentro de la
// ventana, la canasta mixta se cierra como una sola venta.
//
// Estados: Idle (sin orden pendiente, sin timer) y Accumulating (orden no
// vacía, timer armado). El commit por timeout es el único camino que
// produce una CommittedSale.
//
// El callback de time.AfterFunc corre en su propia goroutine; el mutex más
// el contador de generación serializan taps y disparos de timer: un
// callback viejo que pierde la carrera contra un Stop() encuentra la
// generación cambiada y no hace nada.
type SaleAggregator struct {
	sessionID uuid.UUID
	window    time.Duration
	currency  string
	notifier  port.SaleNotifier

	mu         sync.Mutex
	pending    *entity.PendingOrder
	undoRecord *entity.CommittedSale
	timer      *time.Timer
	armGen     uint64
	closed     bool
}

// NewSaleAggregator crea un agregador para una sesión POS.
// window <= 0 usa DefaultQuietWindow.
func NewSaleAggregator(sessionID uuid.UUID, window time.Duration, currency string, notifier port.SaleNotifier) *SaleAggregator {
	if window <= 0 {
		window = DefaultQuietWindow
	}
	if currency == "" {
		currency = "PHP"
	}
	return &SaleAggregator{
		sessionID: sessionID,
		window:    window,
		currency:  currency,
		notifier:  notifier,
		pending:   entity.NewPendingOrder(),
	}
}

// RecordTap registra un evento de venta para un producto: inserta o
// incrementa su line item y reinicia el timer de la ventana de silencio.
// El stock ya fue verificado por el caller (si no hay stock, el caller usa
// RecordOutOfStock). Publica sincrónicamente el indicador en vivo y lo
// retorna para la respuesta HTTP.
func (a *SaleAggregator) RecordTap(productID, productName string, unitPrice decimal.Decimal, quantity int, position *entity.Position) (*entity.TapUpdate, error) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil, entity.ErrSessionClosed
	}

	item, err := a.pending.AddTap(productID, productName, unitPrice, quantity)
	if err != nil {
		a.mu.Unlock()
		return nil, err
	}

	// Reiniciar la ventana: cancela-y-reemplaza el timer compartido
	a.armGen++
	gen := a.armGen
	if a.timer != nil {
		a.timer.Stop()
	}
	a.timer = time.AfterFunc(a.window, func() { a.flush(gen) })

	update := entity.TapUpdate{
		ProductID:   item.ProductID,
		ProductName: item.ProductName,
		Quantity:    item.Quantity,
		LineTotal:   item.LineTotal,
		Position:    position,
	}
	a.mu.Unlock()

	a.notifier.TapRecorded(a.sessionID, update)
	return &update, nil
}

// RecordOutOfStock señala un tap sobre un producto sin stock. No toca la
// orden pendiente ni su timer: el vendedor puede tapear un producto agotado
// a mitad de una orden y esa orden sobrevive intacta.
func (a *SaleAggregator) RecordOutOfStock(productID, productName string) error {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return entity.ErrSessionClosed
	}
	a.mu.Unlock()

	a.notifier.OutOfStockTapped(a.sessionID, productID, productName)
	return nil
}

// flush cierra la orden pendiente cuando vence la ventana de silencio.
// Corre en la goroutine del timer; gen detecta disparos obsoletos.
func (a *SaleAggregator) flush(gen uint64) {
	a.mu.Lock()
	if a.closed || gen != a.armGen || a.pending.IsEmpty() {
		a.mu.Unlock()
		return
	}

	sale, err := entity.NewCommittedSale(a.sessionID, a.pending, a.currency)
	if err != nil {
		a.mu.Unlock()
		return
	}

	// Commit atómico: snapshot tomado, orden limpia, undo record reemplazado
	a.pending.Clear()
	a.undoRecord = sale
	a.timer = nil
	a.mu.Unlock()

	a.notifier.SaleCommitted(sale)
}

// Undo cancela de inmediato cualquier orden en vuelo (descartada, no
// commiteada) y luego, si existe un undo record, lo emite como reversa y lo
// consume. Un segundo Undo sin venta intermedia es un no-op.
// Retorna la venta revertida, o nil si no había.
func (a *SaleAggregator) Undo() (*entity.CommittedSale, error) {
	a.mu.Lock()
	if a.closed {
		a.mu.Unlock()
		return nil, entity.ErrSessionClosed
	}

	// Cancelar la orden pendiente sin commit
	a.armGen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending.Clear()

	rec := a.undoRecord
	a.undoRecord = nil
	a.mu.Unlock()

	if rec != nil {
		a.notifier.SaleUndone(rec)
	}
	return rec, nil
}

// PendingItems retorna el snapshot de la orden pendiente (vista en vivo)
func (a *SaleAggregator) PendingItems() []entity.PendingLineItem {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.pending.Items()
}

// Accumulating indica si hay una orden pendiente con timer armado
func (a *SaleAggregator) Accumulating() bool {
	a.mu.Lock()
	defer a.mu.Unlock()
	return !a.pending.IsEmpty()
}

// Close desarma el agregador al cerrar la sesión (unmount de pantalla).
// Cancela el timer pendiente para que ningún commit tardío dispare contra
// un observador ya destruido; la orden en vuelo se descarta sin commit.
func (a *SaleAggregator) Close() {
	a.mu.Lock()
	defer a.mu.Unlock()
	if a.closed {
		return
	}
	a.closed = true
	a.armGen++
	if a.timer != nil {
		a.timer.Stop()
		a.timer = nil
	}
	a.pending.Clear()
	a.undoRecord = nil
}
