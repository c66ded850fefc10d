package handling

import (
	"errors"
	"net/http"

	"github.com/MonkyMars/gecho"

	"comanda_server/config"
	"comanda_server/lib"
)

// Error maps a service error onto the appropriate HTTP response. Every
// handler funnels its failures through here so the mapping stays in one
// place.
func Error(w http.ResponseWriter, err error) {
	var validationErr *lib.ValidationError
	if errors.As(err, &validationErr) {
		gecho.BadRequest(w,
			gecho.WithMessage(validationErr.Error()),
			gecho.WithData(map[string]any{"errors": validationErr.Errors}),
			gecho.Send(),
		)
		return
	}

	var productErr *lib.ProductNotFoundError
	if errors.As(err, &productErr) {
		gecho.NotFound(w, gecho.WithMessage(productErr.Error()), gecho.Send())
		return
	}

	switch {
	case errors.Is(err, lib.ErrNotFound):
		gecho.NotFound(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrConflict):
		gecho.Conflict(w, gecho.WithMessage(err.Error()), gecho.Send())
	case errors.Is(err, lib.ErrInvalidCredentials):
		gecho.Unauthorized(w, gecho.WithMessage("Invalid credentials"), gecho.Send())
	case errors.Is(err, lib.ErrInvalidToken), errors.Is(err, lib.ErrExpiredToken):
		gecho.Unauthorized(w, gecho.WithMessage(err.Error()), gecho.Send())
	default:
		config.GetLogger().Error("Unhandled error in request", gecho.Field("error", err))
		gecho.InternalServerError(w, gecho.WithMessage("Internal server error"), gecho.Send())
	}
}
