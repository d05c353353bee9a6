package rest

import (
	"encoding/json"
	"errors"
	"listing-service/internal/core/domain"
	"net/http"
)

// WriteJSONError отправляет JSON-ответ с полем "error" и заданным статусом
func WriteJSONError(w http.ResponseWriter, statusCode int, message string) {
	RespondWithJSON(w, statusCode, map[string]string{"error": message})
}

// RespondWithJSON сериализует ответ целиком до записи заголовков,
// поэтому клиент никогда не получает половину ответа.
func RespondWithJSON(w http.ResponseWriter, code int, payload interface{}) {
	response, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Failed to marshal JSON response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json; charset=utf-8")
	w.WriteHeader(code)
	w.Write(response)
}

// statusForError сопоставляет доменные ошибки HTTP-статусам.
func statusForError(err error) (int, string) {
	switch {
	case errors.Is(err, domain.ErrInvalidCriterion):
		return http.StatusBadRequest, err.Error()
	case errors.Is(err, domain.ErrStoreUnavailable):
		return http.StatusInternalServerError, "Listing store is unavailable"
	default:
		return http.StatusInternalServerError, "Internal server error"
	}
}
