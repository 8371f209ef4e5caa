package httpx

import (
	"errors"
	"net/http"

	"github.com/pharmasync/pharmasync/internal/platform/memstore"
	"github.com/pharmasync/pharmasync/internal/shared"
)

// RespondError maps domain errors to HTTP responses using RFC7807.
// A verification NotFound verdict is an outcome, never routed through here.
func RespondError(w http.ResponseWriter, err error) {
	switch {
	case errors.Is(err, shared.ErrNotFound), errors.Is(err, memstore.ErrNotFound):
		Problem(w, http.StatusNotFound, "Not Found", err.Error())
	case errors.Is(err, shared.ErrEmptyQuery):
		Problem(w, http.StatusBadRequest, "Empty Query", "Please enter a product ID or batch number")
	case errors.Is(err, shared.ErrInvalidTransition):
		Problem(w, http.StatusConflict, "Invalid Transition", err.Error())
	case errors.Is(err, shared.ErrInvalidCredentials):
		Problem(w, http.StatusUnauthorized, "Unauthorized", "Invalid email or password")
	default:
		Problem(w, http.StatusInternalServerError, "Internal Error", "")
	}
}
