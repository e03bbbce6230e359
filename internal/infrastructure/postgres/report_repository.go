package postgres

import (
	"context"
	"fmt"

	"github.com/jhoicas/crm-api/internal/domain/entity"
	"github.com/jhoicas/crm-api/internal/domain/repository"
)

var _ repository.ReportRepository = (*ReportRepo)(nil)

// ReportRepo consultas de agregación de solo lectura sobre pedidos COMPLETED.
type ReportRepo struct {
	q Querier
}

// NewReportRepository construye el adaptador de reportes.
func NewReportRepository(q Querier) *ReportRepo {
	return &ReportRepo{q: q}
}

// TopClients agrupa los pedidos COMPLETED por cliente, suma el total y
// devuelve los limit mejores en orden descendente.
func (r *ReportRepo) TopClients(ctx context.Context, limit int) ([]repository.TopClientRow, error) {
	const query = `
	SELECT
	    c.id, c.name, c.lastname, c.company, c.email, c.cellphone, c.vendor, c.created_at,
	    SUM(o.total) AS total
	FROM orders o
	JOIN clients c ON c.id = o.client_id
	WHERE o.status = $1
	GROUP BY c.id, c.name, c.lastname, c.company, c.email, c.cellphone, c.vendor, c.created_at
	ORDER BY total DESC
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopClients: %w", err)
	}
	defer rows.Close()

	var results []repository.TopClientRow
	for rows.Next() {
		var row repository.TopClientRow
		if err := rows.Scan(
			&row.Client.ID, &row.Client.Name, &row.Client.Lastname, &row.Client.Company,
			&row.Client.Email, &row.Client.Cellphone, &row.Client.Vendor, &row.Client.CreatedAt,
			&row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.TopClients scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}

// TopVendors agrupa los pedidos COMPLETED por vendedor, suma el total y
// devuelve los limit mejores en orden descendente.
func (r *ReportRepo) TopVendors(ctx context.Context, limit int) ([]repository.TopVendorRow, error) {
	const query = `
	SELECT
	    u.id, u.name, u.lastname, u.email, u.created_at,
	    SUM(o.total) AS total
	FROM orders o
	JOIN users u ON u.id = o.vendor
	WHERE o.status = $1
	GROUP BY u.id, u.name, u.lastname, u.email, u.created_at
	ORDER BY total DESC
	LIMIT $2`

	rows, err := r.q.Query(ctx, query, entity.OrderStatusCompleted, limit)
	if err != nil {
		return nil, fmt.Errorf("report.TopVendors: %w", err)
	}
	defer rows.Close()

	var results []repository.TopVendorRow
	for rows.Next() {
		var row repository.TopVendorRow
		if err := rows.Scan(
			&row.Vendor.ID, &row.Vendor.Name, &row.Vendor.Lastname, &row.Vendor.Email,
			&row.Vendor.CreatedAt, &row.Total,
		); err != nil {
			return nil, fmt.Errorf("report.TopVendors scan: %w", err)
		}
		results = append(results, row)
	}
	return results, rows.Err()
}
