package orders

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"
	"comanda_server/structs/tables"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleUpdateStatus(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.UpdateOrderStatusRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	order, err := orm.orderService.UpdateStatus(r.Context(), id, tables.OrderStatus(body.Status))
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Order updated"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
