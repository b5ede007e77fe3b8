package httpserver

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/gin-gonic/gin"

	"github.com/phenrril/shopdesk/internal/domain"
	"github.com/phenrril/shopdesk/internal/reports"
	"github.com/phenrril/shopdesk/internal/transfer"
	"github.com/phenrril/shopdesk/internal/usecase"
)

// fail maps the error taxonomy to HTTP statuses: validation 400, missing
// rows 404, storage constraints 409, transfer input problems 400. Nothing is
// retried here; a failure is local to the one request.
func fail(c *gin.Context, err error) {
	switch {
	case errors.Is(err, domain.ErrInvalidInput),
		errors.Is(err, transfer.ErrUnknownTable),
		errors.Is(err, transfer.ErrSchemaMismatch),
		errors.Is(err, transfer.ErrUnsupportedFormat):
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrNotFound):
		c.JSON(http.StatusNotFound, gin.H{"error": err.Error()})
	case errors.Is(err, domain.ErrDuplicate), errors.Is(err, domain.ErrForeignKey):
		c.JSON(http.StatusConflict, gin.H{"error": err.Error()})
	default:
		c.JSON(http.StatusInternalServerError, gin.H{"error": "internal error"})
	}
}

func pathID(c *gin.Context) (uint, bool) {
	id, err := strconv.ParseUint(c.Param("id"), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid id"})
		return 0, false
	}
	return uint(id), true
}

// --- customers ---

type createCustomerRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
	Phone string `json:"phone" binding:"required,phone"`
	City  string `json:"city"`
}

func (s *Server) listCustomers(c *gin.Context) {
	list, err := s.customers.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createCustomer(c *gin.Context) {
	var req createCustomerRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	cust, err := s.customers.Create(c.Request.Context(), req.Name, req.Email, req.Phone, req.City)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, cust)
}

func (s *Server) getCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	cust, err := s.customers.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, cust)
}

func (s *Server) deleteCustomer(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.customers.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- products ---

type createProductRequest struct {
	Name  string  `json:"name" binding:"required"`
	Price float64 `json:"price"`
	SKU   string  `json:"sku" binding:"required"`
}

func (s *Server) listProducts(c *gin.Context) {
	list, err := s.catalog.List(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, list)
}

func (s *Server) createProduct(c *gin.Context) {
	var req createProductRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	p, err := s.catalog.Create(c.Request.Context(), req.Name, req.Price, req.SKU)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, p)
}

func (s *Server) discountedProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	pct, err := strconv.ParseFloat(c.DefaultQuery("pct", "0"), 64)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid pct"})
		return
	}
	dp, err := s.catalog.Discounted(c.Request.Context(), id, pct)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, dp.Record())
}

func (s *Server) deleteProduct(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.catalog.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- orders ---

type orderLineRequest struct {
	ProductID uint `json:"product_id" binding:"required"`
	Quantity  int  `json:"quantity" binding:"required"`
}

type createOrderRequest struct {
	CustomerID uint               `json:"customer_id" binding:"required"`
	Lines      []orderLineRequest `json:"lines" binding:"required,dive"`
}

type orderResponse struct {
	domain.Order
	Total float64 `json:"total"`
}

func (s *Server) listOrders(c *gin.Context) {
	by := c.Query("by")
	switch by {
	case "", "total", "created_at":
	default:
		c.JSON(http.StatusBadRequest, gin.H{"error": "by must be total or created_at"})
		return
	}
	orders, err := s.orders.List(c.Request.Context(), usecase.ListFilter{
		Status: c.Query("status"),
		By:     by,
	})
	if err != nil {
		fail(c, err)
		return
	}
	out := make([]orderResponse, 0, len(orders))
	for _, o := range orders {
		out = append(out, orderResponse{Order: o, Total: o.Total()})
	}
	c.JSON(http.StatusOK, out)
}

func (s *Server) createOrder(c *gin.Context) {
	var req createOrderRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	lines := make([]usecase.OrderLine, 0, len(req.Lines))
	for _, ln := range req.Lines {
		lines = append(lines, usecase.OrderLine{ProductID: ln.ProductID, Quantity: ln.Quantity})
	}
	o, err := s.orders.Create(c.Request.Context(), req.CustomerID, lines)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusCreated, orderResponse{Order: *o, Total: o.Total()})
}

func (s *Server) getOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	o, err := s.orders.Get(c.Request.Context(), id)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, orderResponse{Order: *o, Total: o.Total()})
}

func (s *Server) deleteOrder(c *gin.Context) {
	id, ok := pathID(c)
	if !ok {
		return
	}
	if err := s.orders.Delete(c.Request.Context(), id); err != nil {
		fail(c, err)
		return
	}
	c.Status(http.StatusNoContent)
}

// --- reports ---

func (s *Server) topCustomers(c *gin.Context) {
	n, err := strconv.Atoi(c.DefaultQuery("n", "5"))
	if err != nil || n <= 0 {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid n"})
		return
	}
	counts, chart, err := s.reportsUC.TopCustomers(c.Request.Context(), n)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"top": counts, "chart": chart})
}

func (s *Server) ordersOverTime(c *gin.Context) {
	series, chart, err := s.reportsUC.OrdersOverTime(c.Request.Context())
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"series": series, "chart": chart})
}

func (s *Server) customerGraph(c *gin.Context) {
	by := c.DefaultQuery("by", reports.LinkByCity)
	snap, err := s.reportsUC.CustomerGraph(c.Request.Context(), by)
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, snap)
}

// --- bulk transfer ---

type exportRequest struct {
	Prefix   string `json:"prefix" binding:"required"`
	Workbook string `json:"workbook"`
}

func (s *Server) exportTables(c *gin.Context) {
	var req exportRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	m, err := s.exporter.Export(c.Request.Context(), req.Prefix)
	if err != nil {
		fail(c, err)
		return
	}
	if req.Workbook != "" {
		if err := s.exporter.ExportWorkbook(c.Request.Context(), req.Workbook); err != nil {
			fail(c, err)
			return
		}
	}
	c.JSON(http.StatusOK, m)
}

type importRequest struct {
	Table string `json:"table" binding:"required"`
	Path  string `json:"path" binding:"required"`
}

func (s *Server) importTable(c *gin.Context) {
	var req importRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": err.Error()})
		return
	}
	n, err := s.importer.Import(c.Request.Context(), req.Table, req.Path)
	if err != nil {
		fail(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"table": req.Table, "rows": n})
}
