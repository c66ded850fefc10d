package users

import (
	"net/http"

	"comanda_server/api/middleware"
	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (urm *UserRoutesManager) HandleUpdate(w http.ResponseWriter, r *http.Request) {
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

	body, err := lib.ExtractAndValidateBody[structs.UpdateUserRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	// Only admins may change roles, including their own.
	if body.Role != nil && !claims.IsAdmin() {
		gecho.Forbidden(w, gecho.WithMessage("Only admins may change roles"), gecho.Send())
		return
	}

	user, err := urm.userService.UpdateUser(r.Context(), id, body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("User updated"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
