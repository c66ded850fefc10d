package products

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (prm *ProductRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateProductRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	product, err := prm.productService.CreateProduct(r.Context(), body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Product created"),
		gecho.WithData(product),
		gecho.Send(),
	)
}
