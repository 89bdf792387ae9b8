package console

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/tiendadam/storepanel/internal/domain"
)

func TestStatisticsFullReport(t *testing.T) {
	panel, out, db := newTestPanel(t, "")
	seedCatalog(t, db)

	panel.ShowStatistics()

	text := out.String()
	assert.Contains(t, text, "Products in catalog:    3")
	assert.Contains(t, text, "Registered customers:   2")
	assert.Contains(t, text, "Orders placed:          3")
	// T-Shirt and Poster tie at 19.99; the lowest id wins
	assert.Contains(t, text, "Most expensive product: T-Shirt (19.99 EUR)")
	assert.Contains(t, text, "Cheapest product:       Mug (5.00 EUR)")
	assert.Contains(t, text, "Best customer:          Ana Lopez (2 orders)")
	// 2x19.99 + 1x5.00 + 3x5.00
	assert.Contains(t, text, "Total revenue:          59.98 EUR")
}

func TestStatisticsEmptyStoreSkipsLines(t *testing.T) {
	panel, out, _ := newTestPanel(t, "")

	panel.ShowStatistics()

	text := out.String()
	assert.Contains(t, text, "Products in catalog:    0")
	assert.Contains(t, text, "Registered customers:   0")
	assert.Contains(t, text, "Orders placed:          0")
	assert.NotContains(t, text, "Most expensive product")
	assert.NotContains(t, text, "Cheapest product")
	assert.NotContains(t, text, "Best customer")
	assert.NotContains(t, text, "Total revenue")
}

func TestStatisticsBestCustomerTieLowestID(t *testing.T) {
	panel, out, db := newTestPanel(t, "")

	require.NoError(t, db.Create(&[]domain.Customer{
		{ID: 1, FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"},
		{ID: 2, FirstName: "Ben", LastName: "Smith", Email: "ben@example.com"},
	}).Error)
	require.NoError(t, db.Create(&[]domain.Order{
		{ID: 1, Date: "2024-01-01", CustomerID: 2},
		{ID: 2, Date: "2024-01-02", CustomerID: 1},
	}).Error)

	panel.ShowStatistics()

	assert.Contains(t, out.String(), "Best customer:          Ana Lopez (1 orders)")
}

func TestStatisticsCheapestTieLowestID(t *testing.T) {
	panel, out, db := newTestPanel(t, "")

	require.NoError(t, db.Create(&[]domain.Product{
		{ID: 1, Title: "Sticker", Description: "", Price: "2.50", Image: "s.jpg"},
		{ID: 2, Title: "Badge", Description: "", Price: "2.50", Image: "b.jpg"},
	}).Error)

	panel.ShowStatistics()

	assert.Contains(t, out.String(), "Cheapest product:       Sticker (2.50 EUR)")
	assert.Contains(t, out.String(), "Most expensive product: Sticker (2.50 EUR)")
}
