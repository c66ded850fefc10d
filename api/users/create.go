package users

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (urm *UserRoutesManager) HandleCreate(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.CreateUserRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	user, err := urm.userService.CreateUser(r.Context(), body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("User created"),
		gecho.WithData(user),
		gecho.Send(),
	)
}
