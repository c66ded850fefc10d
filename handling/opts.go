package handling

import (
	"net/http"
	"strconv"

	"comanda_server/database"
	"comanda_server/structs/tables"
)

// OrderListOptions carries the query-string filters for listing orders.
type OrderListOptions struct {
	Status     *tables.OrderStatus
	Pagination database.Pagination
}

// ParseOrderListOptions reads the supported query parameters. Unknown or
// malformed values fall back to defaults rather than failing the request.
func ParseOrderListOptions(r *http.Request) OrderListOptions {
	opts := OrderListOptions{
		Pagination: database.Pagination{Page: 1, PageSize: 25},
	}

	if raw := r.URL.Query().Get("status"); raw != "" {
		status := tables.OrderStatus(raw)
		if status == tables.OrderStatusOpen || status == tables.OrderStatusClosed {
			opts.Status = &status
		}
	}

	if raw := r.URL.Query().Get("page"); raw != "" {
		if page, err := strconv.Atoi(raw); err == nil && page > 0 {
			opts.Pagination.Page = page
		}
	}

	if raw := r.URL.Query().Get("page_size"); raw != "" {
		if size, err := strconv.Atoi(raw); err == nil && size > 0 {
			opts.Pagination.PageSize = size
		}
	}

	return opts
}
