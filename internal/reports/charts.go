package reports

import (
	"fmt"
	"io"
	"os"

	"github.com/go-echarts/go-echarts/v2/charts"
	"github.com/go-echarts/go-echarts/v2/opts"

	"github.com/phenrril/shopdesk/internal/domain"
)

// TopCustomersChart renders a bar chart of the n customers with the most
// orders to an HTML file. counts are expected ordered by order count
// descending, as OrdersPerCustomer returns them.
func TopCustomersChart(counts []domain.CustomerOrderCount, n int, path string) error {
	if n > 0 && len(counts) > n {
		counts = counts[:n]
	}

	xs := make([]string, 0, len(counts))
	data := make([]opts.BarData, 0, len(counts))
	for _, c := range counts {
		xs = append(xs, fmt.Sprintf("#%d %s", c.CustomerID, c.Name))
		data = append(data, opts.BarData{Value: c.Orders})
	}

	bar := charts.NewBar()
	bar.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: fmt.Sprintf("Top %d customers by order count", len(counts))}),
		charts.WithYAxisOpts(opts.YAxis{Name: "orders"}),
	)
	bar.SetXAxis(xs).AddSeries("orders", data)

	return render(bar, path)
}

// OrdersOverTimeChart renders the daily order count series as a line chart.
func OrdersOverTimeChart(series []domain.DailyOrderCount, path string) error {
	xs := make([]string, 0, len(series))
	data := make([]opts.LineData, 0, len(series))
	for _, d := range series {
		xs = append(xs, d.Day)
		data = append(data, opts.LineData{Value: d.Orders})
	}

	line := charts.NewLine()
	line.SetGlobalOptions(
		charts.WithTitleOpts(opts.Title{Title: "Orders per day"}),
		charts.WithYAxisOpts(opts.YAxis{Name: "orders"}),
	)
	line.SetXAxis(xs).AddSeries("orders", data)

	return render(line, path)
}

type renderer interface {
	Render(w io.Writer) error
}

func render(c renderer, path string) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("creating chart file %s: %w", path, err)
	}
	defer f.Close()
	if err := c.Render(f); err != nil {
		return fmt.Errorf("rendering chart %s: %w", path, err)
	}
	return nil
}
