package users

import (
	"net/http"

	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
	"github.com/MonkyMars/gecho/success"
)

func (urm *UserRoutesManager) HandleDelete(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	if err := urm.userService.DeleteUser(r.Context(), id); err != nil {
		handling.Error(w, err)
		return
	}

	success.NoContent(w, gecho.Send())
}
