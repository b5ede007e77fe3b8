package transfer

import "errors"

var (
	ErrUnknownTable      = errors.New("unknown table")
	ErrSchemaMismatch    = errors.New("source columns do not match table schema")
	ErrUnsupportedFormat = errors.New("unsupported file format")
)

// Tables lists the snapshot tables in export order.
var Tables = []string{"customers", "products", "orders", "order_items"}

// tableColumns fixes the column order for CSV headers and XLSX sheets.
var tableColumns = map[string][]string{
	"customers":   {"id", "name", "email", "phone", "city", "created_at"},
	"products":    {"id", "name", "price", "sku", "created_at"},
	"orders":      {"id", "customer_id", "created_at", "status"},
	"order_items": {"order_id", "product_id", "quantity", "unit_price"},
}

// tableOrder gives each snapshot a deterministic row order.
var tableOrder = map[string]string{
	"customers":   "id asc",
	"products":    "id asc",
	"orders":      "id asc",
	"order_items": "order_id asc, product_id asc",
}

func knownTable(name string) bool {
	_, ok := tableColumns[name]
	return ok
}
