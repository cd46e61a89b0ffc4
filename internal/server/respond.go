package server

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/theirongolddev/switchride/internal/apperror"
	"github.com/theirongolddev/switchride/internal/carousel"
)

// ErrorResponse is the body of every non-2xx JSON reply.
type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message"`
	Param   string `json:"param,omitempty"`
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

func writeErrorResponse(w http.ResponseWriter, status int, message, param string) {
	writeJSON(w, status, ErrorResponse{
		Error:   http.StatusText(status),
		Message: message,
		Param:   param,
	})
}

// writeError answers with the status of err's kind. Unclassified errors are
// logged and reported with internalMessage only.
func (s *Service) writeError(w http.ResponseWriter, err error, internalMessage string) {
	if errors.Is(err, carousel.ErrPlayerStopped) {
		err = apperror.Unavailable("carousel is not running", err)
	}

	kind := apperror.KindOf(err)
	if kind == "" {
		s.log.WithError(err).Error(internalMessage)
		writeErrorResponse(w, http.StatusInternalServerError, internalMessage, "")
		return
	}
	writeErrorResponse(w, kind.Status(), err.Error(), apperror.ParamOf(err))
}
