package usecase

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	"palengke/src/report/application/response"
)

// DailyReportUseCase caso de uso para el reporte diario de ventas
type DailyReportUseCase struct {
	db       *sql.DB
	currency string
}

// NewDailyReportUseCase crea una nueva instancia del caso de uso
func NewDailyReportUseCase(db *sql.DB, currency string) *DailyReportUseCase {
	return &DailyReportUseCase{
		db:       db,
		currency: currency,
	}
}

// Execute genera el reporte diario para una fecha específica.
// Usa rango [from, to) sobre created_at (no DATE(created_at)) para
// aprovechar el índice.
func (uc *DailyReportUseCase) Execute(ctx context.Context, date string) (*response.DailyReportResponse, error) {
	parsedDate, err := time.Parse("2006-01-02", date)
	if err != nil {
		return nil, fmt.Errorf("invalid date format, expected YYYY-MM-DD: %w", err)
	}

	from := parsedDate
	to := parsedDate.AddDate(0, 0, 1)

	// Ventas completadas del día
	queryCompleted := `
		SELECT
			COUNT(*) as sales_count,
			COALESCE(SUM(total_quantity), 0) as total_quantity,
			COALESCE(SUM(total_amount), 0) as gross_total,
			MIN(created_at) as first_sale,
			MAX(created_at) as last_sale
		FROM pos_sales
		WHERE status = 'completed'
			AND created_at >= $1
			AND created_at < $2
	`

	resp := &response.DailyReportResponse{
		Date:     date,
		Currency: uc.currency,
	}

	var firstSale, lastSale sql.NullTime
	err = uc.db.QueryRowContext(ctx, queryCompleted, from, to).Scan(
		&resp.SalesCount,
		&resp.TotalQuantity,
		&resp.GrossTotal,
		&firstSale,
		&lastSale,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying pos_sales: %w", err)
	}

	// Ventas anuladas del día (undo)
	queryVoided := `
		SELECT
			COUNT(*) as voided_count,
			COALESCE(SUM(total_amount), 0) as voided_total
		FROM pos_sales
		WHERE status = 'voided'
			AND created_at >= $1
			AND created_at < $2
	`

	err = uc.db.QueryRowContext(ctx, queryVoided, from, to).Scan(
		&resp.VoidedCount,
		&resp.VoidedTotal,
	)
	if err != nil {
		return nil, fmt.Errorf("error querying voided pos_sales: %w", err)
	}

	if firstSale.Valid {
		resp.FirstSaleAt = &firstSale.Time
	}
	if lastSale.Valid {
		resp.LastSaleAt = &lastSale.Time
	}

	return resp, nil
}
