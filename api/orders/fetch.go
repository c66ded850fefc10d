package orders

import (
	"net/http"

	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	opts := handling.ParseOrderListOptions(r)

	result, err := orm.orderService.ListOrders(r.Context(), opts.Status, opts.Pagination)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(result),
		gecho.Send(),
	)
}

func (orm *OrderRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	order, err := orm.orderService.GetOrder(r.Context(), id)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(order),
		gecho.Send(),
	)
}
