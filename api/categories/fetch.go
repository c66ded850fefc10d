package categories

import (
	"net/http"

	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
)

func (crm *CategoryRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	categories, err := crm.categoryService.GetAllCategories(r.Context())
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(categories),
		gecho.Send(),
	)
}

func (crm *CategoryRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	category, err := crm.categoryService.GetCategoryByID(r.Context(), id)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(category),
		gecho.Send(),
	)
}
