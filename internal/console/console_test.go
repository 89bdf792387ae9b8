package console

import (
	"bytes"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
	"github.com/tiendadam/storepanel/config"
	"github.com/tiendadam/storepanel/internal/app"
	"github.com/tiendadam/storepanel/internal/domain"
	"gorm.io/gorm"
)

// newTestPanel builds a panel over a fresh sqlite store with scripted
// input and captured output.
func newTestPanel(t *testing.T, input string) (*Panel, *bytes.Buffer, *gorm.DB) {
	t.Helper()

	cfg := config.DefaultConfig()
	cfg.Database.Type = "sqlite"
	cfg.Database.Name = filepath.Join(t.TempDir(), "store.db")
	cfg.Logger.FileEnable = false

	application := app.NewApplication(cfg)
	require.NoError(t, application.MigrateDB())
	t.Cleanup(application.Release)

	db, err := application.DB()
	require.NoError(t, err)

	out := &bytes.Buffer{}
	return NewPanel(application, strings.NewReader(input), out), out, db
}

// seedCatalog loads a small store: three products (two sharing the top
// price), two customers, three orders (one with no lines).
func seedCatalog(t *testing.T, db *gorm.DB) {
	t.Helper()

	require.NoError(t, db.Create(&[]domain.Product{
		{ID: 1, Title: "T-Shirt", Description: "Cotton shirt", Price: "19.99", Image: "tshirt.jpg"},
		{ID: 2, Title: "Mug", Description: "Ceramic mug", Price: "5.00", Image: "mug.jpg"},
		{ID: 3, Title: "Poster", Description: "Wall art", Price: "19.99", Image: "poster.jpg"},
	}).Error)

	require.NoError(t, db.Create(&[]domain.Customer{
		{ID: 1, FirstName: "Ana", LastName: "Lopez", Email: "ana@example.com"},
		{ID: 2, FirstName: "Ben", LastName: "Smith", Email: "ben@example.com"},
	}).Error)

	require.NoError(t, db.Create(&[]domain.Order{
		{ID: 1, Date: "2024-01-15", CustomerID: 1},
		{ID: 2, Date: "2024-02-20", CustomerID: 1},
		{ID: 3, Date: "2024-03-05", CustomerID: 2},
	}).Error)

	require.NoError(t, db.Create(&[]domain.OrderLine{
		{OrderID: 1, ProductID: 1, Quantity: 2},
		{OrderID: 1, ProductID: 2, Quantity: 1},
		{OrderID: 3, ProductID: 2, Quantity: 3},
	}).Error)
}

func productCount(t *testing.T, db *gorm.DB) int64 {
	t.Helper()
	var n int64
	require.NoError(t, db.Model(&domain.Product{}).Count(&n).Error)
	return n
}

func TestDatabaseDiagnosticKeepsPanelRunning(t *testing.T) {
	cfg := config.DefaultConfig()
	cfg.Database.Type = "oracle" // unreachable driver
	cfg.Logger.FileEnable = false

	application := app.NewApplication(cfg)
	out := &bytes.Buffer{}
	panel := NewPanel(application, strings.NewReader(""), out)

	panel.ListProducts()

	require.Contains(t, out.String(), "[!] Database connection error")
	require.Contains(t, out.String(), "Check that the database server is running.")
}
