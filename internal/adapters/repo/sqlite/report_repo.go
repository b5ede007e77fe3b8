package sqlite

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/Masterminds/squirrel"
	"gorm.io/gorm"

	"github.com/phenrril/shopdesk/internal/domain"
)

// ReportRepo runs the read-only aggregates behind the reporting views. It
// builds SQL with squirrel and runs it on the underlying *sql.DB, bypassing
// the ORM for plain row scans.
type ReportRepo struct{ db *sql.DB }

func NewReportRepo(gdb *gorm.DB) (*ReportRepo, error) {
	sdb, err := gdb.DB()
	if err != nil {
		return nil, fmt.Errorf("unwrapping sql.DB: %w", err)
	}
	return &ReportRepo{db: sdb}, nil
}

func (r *ReportRepo) OrdersPerCustomer(ctx context.Context) ([]domain.CustomerOrderCount, error) {
	rows, err := squirrel.
		Select("c.id", "c.name", "COUNT(o.id) AS orders").
		From("customers c").
		LeftJoin("orders o ON o.customer_id = c.id").
		GroupBy("c.id", "c.name").
		OrderBy("orders DESC", "c.id ASC").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying orders per customer: %w", err)
	}
	defer rows.Close()

	var out []domain.CustomerOrderCount
	for rows.Next() {
		var c domain.CustomerOrderCount
		if err := rows.Scan(&c.CustomerID, &c.Name, &c.Orders); err != nil {
			return nil, fmt.Errorf("scanning orders per customer: %w", err)
		}
		out = append(out, c)
	}
	return out, rows.Err()
}

func (r *ReportRepo) OrdersPerDay(ctx context.Context) ([]domain.DailyOrderCount, error) {
	rows, err := squirrel.
		Select("date(created_at) AS day", "COUNT(*) AS orders").
		From("orders").
		GroupBy("day").
		OrderBy("day ASC").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying orders per day: %w", err)
	}
	defer rows.Close()

	var out []domain.DailyOrderCount
	for rows.Next() {
		var d domain.DailyOrderCount
		if err := rows.Scan(&d.Day, &d.Orders); err != nil {
			return nil, fmt.Errorf("scanning orders per day: %w", err)
		}
		out = append(out, d)
	}
	return out, rows.Err()
}

// Purchases returns one row per (customer, product) order line, the raw
// material for the shared-product relationship graph.
func (r *ReportRepo) Purchases(ctx context.Context) ([]domain.CustomerPurchase, error) {
	rows, err := squirrel.
		Select("o.customer_id", "oi.product_id").
		From("orders o").
		Join("order_items oi ON oi.order_id = o.id").
		RunWith(r.db).
		QueryContext(ctx)
	if err != nil {
		return nil, fmt.Errorf("querying purchases: %w", err)
	}
	defer rows.Close()

	var out []domain.CustomerPurchase
	for rows.Next() {
		var p domain.CustomerPurchase
		if err := rows.Scan(&p.CustomerID, &p.ProductID); err != nil {
			return nil, fmt.Errorf("scanning purchase: %w", err)
		}
		out = append(out, p)
	}
	return out, rows.Err()
}
