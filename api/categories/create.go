package categories

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *CategoryRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	category, err := crm.categoryService.CreateCategory(r.Context(), body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Category created"),
		gecho.WithData(category),
		gecho.Send(),
	)
}
