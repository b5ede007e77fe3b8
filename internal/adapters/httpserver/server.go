package httpserver

import (
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"github.com/phenrril/shopdesk/internal/domain"
	"github.com/phenrril/shopdesk/internal/transfer"
	"github.com/phenrril/shopdesk/internal/usecase"
)

// Server is the interactive surface: three route groups mirror the
// customers, orders and reports views, plus admin import/export. It is glue
// over the usecases; all failure presentation to the caller happens here.
type Server struct {
	engine    *gin.Engine
	customers *usecase.CustomerUC
	catalog   *usecase.CatalogUC
	orders    *usecase.OrderUC
	reportsUC *usecase.ReportUC
	exporter  *transfer.Exporter
	importer  *transfer.Importer
}

func New(
	customers *usecase.CustomerUC,
	catalog *usecase.CatalogUC,
	orders *usecase.OrderUC,
	reportsUC *usecase.ReportUC,
	exporter *transfer.Exporter,
	importer *transfer.Importer,
) *Server {
	registerPhoneValidation()

	engine := gin.New()
	engine.Use(gin.Recovery(), RequestLogger())

	s := &Server{
		engine:    engine,
		customers: customers,
		catalog:   catalog,
		orders:    orders,
		reportsUC: reportsUC,
		exporter:  exporter,
		importer:  importer,
	}
	s.routes()
	return s
}

func (s *Server) Handler() http.Handler { return s.engine }

func (s *Server) routes() {
	api := s.engine.Group("/api")

	api.GET("/customers", s.listCustomers)
	api.POST("/customers", s.createCustomer)
	api.GET("/customers/:id", s.getCustomer)
	api.DELETE("/customers/:id", s.deleteCustomer)

	api.GET("/products", s.listProducts)
	api.POST("/products", s.createProduct)
	api.GET("/products/:id/discounted", s.discountedProduct)
	api.DELETE("/products/:id", s.deleteProduct)

	api.GET("/orders", s.listOrders)
	api.POST("/orders", s.createOrder)
	api.GET("/orders/:id", s.getOrder)
	api.DELETE("/orders/:id", s.deleteOrder)

	api.GET("/reports/top-customers", s.topCustomers)
	api.GET("/reports/orders-over-time", s.ordersOverTime)
	api.GET("/reports/customer-graph", s.customerGraph)

	api.POST("/admin/export", s.exportTables)
	api.POST("/admin/import", s.importTable)
}

// registerPhoneValidation teaches the gin binding validator the permissive
// phone shape the domain enforces, so DTO binding and domain validation
// agree.
func registerPhoneValidation() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("phone", func(fl validator.FieldLevel) bool {
			return domain.ValidPhone(fl.Field().String())
		})
	}
}
