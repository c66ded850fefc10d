package push

import (
	"net/http"

	"comanda_server/api/middleware"
	"comanda_server/handling"
	"comanda_server/lib"
	"comanda_server/structs"

	"github.com/MonkyMars/gecho"
)

func (prm *PushRoutesManager) HandleSubscribe(w http.ResponseWriter, r *http.Request) {
	claims, ok := middleware.GetClaimsFromContext(r.Context())
	if !ok {
		gecho.Unauthorized(w, gecho.WithMessage("Missing access token"), gecho.Send())
		return
	}

	body, err := lib.ExtractAndValidateBody[structs.SubscribeRequest](r)
	if err != nil {
		handling.Error(w, err)
		return
	}

	if _, err := prm.pushService.Subscribe(r.Context(), claims.Sub, body); err != nil {
		handling.Error(w, err)
		return
	}

	gecho.Created(w,
		gecho.WithMessage("Push subscription registered"),
		gecho.Send(),
	)
}
