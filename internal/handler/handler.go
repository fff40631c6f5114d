package handler

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"loja-api/internal/model"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog"
)

// writeJSON writes a response envelope with the given status code.
func writeJSON(w http.ResponseWriter, status int, resp model.Response) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(resp); err != nil {
		// Headers are already out; nothing useful left to do.
		return
	}
}

// writeData writes a success envelope carrying a single record.
func writeData(w http.ResponseWriter, status int, data interface{}) {
	writeJSON(w, status, model.Response{Success: true, Data: data})
}

// writeList writes a success envelope carrying a collection and its count.
func writeList(w http.ResponseWriter, data interface{}, count int) {
	writeJSON(w, http.StatusOK, model.Response{Success: true, Count: &count, Data: data})
}

// writeMessage writes a success envelope with a confirmation message and an
// optional record.
func writeMessage(w http.ResponseWriter, status int, message string, data interface{}) {
	writeJSON(w, status, model.Response{Success: true, Message: message, Data: data})
}

// writeError writes a failure envelope with the given status code.
func writeError(w http.ResponseWriter, status int, message string, logger zerolog.Logger) {
	logger.Error().Str("error", message).Int("status", status).Msg("handler error")
	writeJSON(w, status, model.Response{Success: false, Error: message})
}

// writeServiceError maps a service error to its HTTP status: validation
// failures to 400, missing records to 404, everything else to 500 with the
// error's message. The duplicate-email conflict falls in the 500 bucket.
func writeServiceError(w http.ResponseWriter, err error, logger zerolog.Logger) {
	var domainErr *model.DomainError
	if errors.As(err, &domainErr) {
		switch domainErr.Code {
		case model.ErrCodeValidation:
			writeError(w, http.StatusBadRequest, domainErr.Message, logger)
		case model.ErrCodeNotFound:
			writeError(w, http.StatusNotFound, domainErr.Message, logger)
		default:
			writeError(w, http.StatusInternalServerError, domainErr.Message, logger)
		}
		return
	}

	writeError(w, http.StatusInternalServerError, err.Error(), logger)
}

// idParam extracts the {id} path parameter as an int64.
func idParam(r *http.Request) (int64, error) {
	return strconv.ParseInt(chi.URLParam(r, "id"), 10, 64)
}
