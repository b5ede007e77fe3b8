package reports

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phenrril/shopdesk/internal/domain"
)

func testCustomers() []domain.Customer {
	return []domain.Customer{
		{ID: 1, Name: "Ann", City: "Riga"},
		{ID: 2, Name: "Bob", City: "Riga"},
		{ID: 3, Name: "Cid", City: "Oslo"},
	}
}

func TestBuildCustomerGraph(t *testing.T) {
	t.Run("linked by shared city", func(t *testing.T) {
		g, err := BuildCustomerGraph(testCustomers(), nil, LinkByCity)
		require.NoError(t, err)

		assert.Equal(t, 3, g.Nodes().Len())
		assert.True(t, g.HasEdgeBetween(1, 2))
		assert.False(t, g.HasEdgeBetween(1, 3))
		assert.Equal(t, "city", g.Reason(1, 2))
		assert.Equal(t, "city", g.Reason(2, 1))
	})

	t.Run("linked by common product", func(t *testing.T) {
		purchases := []domain.CustomerPurchase{
			{CustomerID: 1, ProductID: 10},
			{CustomerID: 3, ProductID: 10},
			{CustomerID: 2, ProductID: 20},
		}
		g, err := BuildCustomerGraph(testCustomers(), purchases, LinkBySharedProducts)
		require.NoError(t, err)

		assert.True(t, g.HasEdgeBetween(1, 3))
		assert.False(t, g.HasEdgeBetween(1, 2))
		assert.Equal(t, "product", g.Reason(3, 1))
	})

	t.Run("same customer buying twice adds no self loop", func(t *testing.T) {
		purchases := []domain.CustomerPurchase{
			{CustomerID: 1, ProductID: 10},
			{CustomerID: 1, ProductID: 10},
		}
		g, err := BuildCustomerGraph(testCustomers(), purchases, LinkBySharedProducts)
		require.NoError(t, err)
		assert.Equal(t, 0, g.Edges().Len())
	})

	t.Run("unknown link mode rejected", func(t *testing.T) {
		_, err := BuildCustomerGraph(testCustomers(), nil, "zodiac-sign")
		assert.Error(t, err)
	})

	t.Run("snapshot flattens nodes and edges", func(t *testing.T) {
		g, err := BuildCustomerGraph(testCustomers(), nil, LinkByCity)
		require.NoError(t, err)
		snap := g.Snapshot()
		assert.Len(t, snap.Nodes, 3)
		require.Len(t, snap.Edges, 1)
		assert.Equal(t, int64(1), snap.Edges[0].From)
		assert.Equal(t, int64(2), snap.Edges[0].To)
		assert.Equal(t, "city", snap.Edges[0].Reason)
	})
}

func TestCharts(t *testing.T) {
	t.Run("top customers bar chart renders", func(t *testing.T) {
		counts := []domain.CustomerOrderCount{
			{CustomerID: 1, Name: "Ann", Orders: 4},
			{CustomerID: 2, Name: "Bob", Orders: 1},
		}
		path := t.TempDir() + "/top.html"
		require.NoError(t, TopCustomersChart(counts, 5, path))
		assert.FileExists(t, path)
	})

	t.Run("orders over time line chart renders", func(t *testing.T) {
		series := []domain.DailyOrderCount{
			{Day: "2025-03-01", Orders: 2},
			{Day: "2025-03-02", Orders: 5},
		}
		path := t.TempDir() + "/series.html"
		require.NoError(t, OrdersOverTimeChart(series, path))
		assert.FileExists(t, path)
	})
}
