package usecase

import (
	"context"
	"path/filepath"

	"github.com/phenrril/shopdesk/internal/domain"
	"github.com/phenrril/shopdesk/internal/reports"
)

type ReportUC struct {
	Reports   domain.ReportRepo
	Customers domain.CustomerRepo
	ChartDir  string
}

// TopCustomers returns the n customers with the most orders and renders the
// bar chart next to the data. The chart path is returned alongside.
func (uc *ReportUC) TopCustomers(ctx context.Context, n int) ([]domain.CustomerOrderCount, string, error) {
	counts, err := uc.Reports.OrdersPerCustomer(ctx)
	if err != nil {
		return nil, "", err
	}
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}
	path := filepath.Join(uc.ChartDir, "top_customers.html")
	if err := reports.TopCustomersChart(counts, n, path); err != nil {
		return nil, "", err
	}
	return counts, path, nil
}

func (uc *ReportUC) OrdersOverTime(ctx context.Context) ([]domain.DailyOrderCount, string, error) {
	series, err := uc.Reports.OrdersPerDay(ctx)
	if err != nil {
		return nil, "", err
	}
	path := filepath.Join(uc.ChartDir, "orders_over_time.html")
	if err := reports.OrdersOverTimeChart(series, path); err != nil {
		return nil, "", err
	}
	return series, path, nil
}

func (uc *ReportUC) CustomerGraph(ctx context.Context, by string) (reports.GraphSnapshot, error) {
	customers, err := uc.Customers.List(ctx)
	if err != nil {
		return reports.GraphSnapshot{}, err
	}
	var purchases []domain.CustomerPurchase
	if by == reports.LinkBySharedProducts {
		if purchases, err = uc.Reports.Purchases(ctx); err != nil {
			return reports.GraphSnapshot{}, err
		}
	}
	g, err := reports.BuildCustomerGraph(customers, purchases, by)
	if err != nil {
		return reports.GraphSnapshot{}, err
	}
	return g.Snapshot(), nil
}
