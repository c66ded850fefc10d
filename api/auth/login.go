package auth

import (
	"net/http"

	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (arm *AuthRoutesManager) HandleLogin(w http.ResponseWriter, r *http.Request) {
	body, err := lib.ExtractAndValidateBody[structs.LoginRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	result, err := arm.authService.Login(r.Context(), body)
	if err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Success(w,
		gecho.WithMessage("Login successful"),
		gecho.WithData(result),
		gecho.Send(),
	)
}
