package products

import (
	"net/http"

	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/MonkyMars/gecho/success"
)

func (prm *ProductRoutesManager) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	if err := prm.productService.DeleteProduct(r.Context(), id); err != nil {
		handling.Error(w, err)
		return
	}

	success.NoContent(w, gecho.Send())
}
