package users

import (
	"net/http"

	"comanda_server/api/middleware"
	"comanda_server/handling"

	"github.com/MonkyMars/gecho"
)

func (urm *UserRoutesManager) HandleList(w http.ResponseWriter, r *http.Request) {
	users, err := urm.userService.GetAllUsers(r.Context())
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(users),
		gecho.Send(),
	)
}

func (urm *UserRoutesManager) HandleFetch(w http.ResponseWriter, r *http.Request) {
	id, err := handling.UUIDParam(r, "id")
	if err != nil {
		handling.Error(w, err)
		return
	}

	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok || (claims.Sub != id && !claims.IsAdmin()) {
		gecho.Forbidden(w, gecho.WithMessage("Access denied"), gecho.Send())
		return
	}

	user, err := urm.userService.GetUserByID(r.Context(), id)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithData(user),
		gecho.Send(),
	)
}
