package products

import (
	"net/http"

	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
)

func (prm *ProductRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	products, err := prm.productService.GetAllProducts(r.Context())
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(products),
		gecho.Send(),
	)
}

func (prm *ProductRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	product, err := prm.productService.GetProductByID(r.Context(), id)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(product),
		gecho.Send(),
	)
}
