package app

import (
	"net/http"
	"os"

	"gorm.io/gorm"

	"github.com/phenrril/shopdesk/internal/adapters/httpserver"
	"github.com/phenrril/shopdesk/internal/adapters/repo/sqlite"
	"github.com/phenrril/shopdesk/internal/config"
	"github.com/phenrril/shopdesk/internal/transfer"
	"github.com/phenrril/shopdesk/internal/usecase"
)

type App struct {
	DB         *gorm.DB
	CustomerUC *usecase.CustomerUC
	CatalogUC  *usecase.CatalogUC
	OrderUC    *usecase.OrderUC
	ReportUC   *usecase.ReportUC
	Exporter   *transfer.Exporter
	Importer   *transfer.Importer

	server *httpserver.Server
}

func NewApp(db *gorm.DB, cfg config.Config) (*App, error) {
	custRepo := sqlite.NewCustomerRepo(db)
	prodRepo := sqlite.NewProductRepo(db)
	orderRepo := sqlite.NewOrderRepo(db)
	reportRepo, err := sqlite.NewReportRepo(db)
	if err != nil {
		return nil, err
	}

	if err := os.MkdirAll(cfg.DataDir, 0o755); err != nil {
		return nil, err
	}

	app := &App{DB: db}
	app.CustomerUC = &usecase.CustomerUC{Customers: custRepo}
	app.CatalogUC = &usecase.CatalogUC{Products: prodRepo}
	app.OrderUC = &usecase.OrderUC{Orders: orderRepo, Products: prodRepo}
	app.ReportUC = &usecase.ReportUC{Reports: reportRepo, Customers: custRepo, ChartDir: cfg.DataDir}
	app.Exporter = transfer.NewExporter(db)
	app.Importer = transfer.NewImporter(db)

	app.server = httpserver.New(
		app.CustomerUC,
		app.CatalogUC,
		app.OrderUC,
		app.ReportUC,
		app.Exporter,
		app.Importer,
	)
	return app, nil
}

// Migrate creates the schema; safe to call every startup.
func (a *App) Migrate() error {
	return sqlite.Migrate(a.DB)
}

func (a *App) HTTPHandler() http.Handler {
	return a.server.Handler()
}
