package categories

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (crm *CategoryRoutesManager) HandleUpdate(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.CategoryRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	category, err := crm.categoryService.UpdateCategory(r.Context(), id, body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Category updated"),
		gecho.WithData(category),
		gecho.Send(),
	)
}
