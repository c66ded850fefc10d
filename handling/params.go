package handling

import (
	"net/http"

	"comanda_server/lib"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
)

// UUIDParam parses a UUID route parameter, returning a ValidationError the
// handler can pass straight to Error.
func UUIDParam(r *http.Request, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(chi.URLParam(r, name))
	if err != nil {
		return uuid.Nil, lib.NewValidationError(name, "must be a valid UUID")
	}
	return id, nil
}
