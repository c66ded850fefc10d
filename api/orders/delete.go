package orders

import (
	"net/http"

	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/MonkyMars/gecho/success"
)

func (orm *OrderRoutesManager) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	if err := orm.orderService.DeleteOrder(r.Context(), id); err != nil {
		handling.Error(w, err)
		return
	}

	success.NoContent(w, gecho.Send())
}
