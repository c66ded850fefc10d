package orders

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (orm *OrderRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.OrderRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	order, err := orm.orderService.CreateOrder(r.Context(), body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Order created"),
		gecho.WithData(order),
		gecho.Send(),
	)
}
