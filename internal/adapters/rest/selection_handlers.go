package rest

import (
	"bytes"
	"embed"
	"html/template"
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
)

//go:embed templates/index.html
var templatesFS embed.FS

var locationsFormTemplate = template.Must(template.ParseFS(templatesFS, "templates/index.html"))

type SelectionHandler struct {
	getLocationsUC    usecases_port.GetLocationsUseCase
	selectLocationsUC usecases_port.SelectLocationsUseCase
}

func NewSelectionHandler(getLocationsUC usecases_port.GetLocationsUseCase,
	selectLocationsUC usecases_port.SelectLocationsUseCase) *SelectionHandler {
	return &SelectionHandler{
		getLocationsUC:    getLocationsUC,
		selectLocationsUC: selectLocationsUC,
	}
}

// ShowLocationsForm обрабатывает GET / - форма с чекбоксом на каждую локацию.
func (h *SelectionHandler) ShowLocationsForm(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "ShowLocationsForm"})

	locations, err := h.getLocationsUC.Execute(r.Context())
	if err != nil {
		logger.Error("Use case failed", err, nil)
		status, _ := statusForError(err)
		http.Error(w, "Failed to load locations", status)
		return
	}

	var page bytes.Buffer
	if err := locationsFormTemplate.Execute(&page, struct{ Locations []string }{locations}); err != nil {
		logger.Error("Failed to render locations form", err, nil)
		http.Error(w, "Failed to render page", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	w.Write(page.Bytes())
}

// SelectLocations обрабатывает POST / - возвращает отмеченные локации JSON-списком.
func (h *SelectionHandler) SelectLocations(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{"handler": "SelectLocations"})

	if err := r.ParseForm(); err != nil {
		logger.Warn("Invalid form body", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, "Invalid form body")
		return
	}

	flags := make(map[string]string, len(r.PostForm))
	for name, values := range r.PostForm {
		if len(values) > 0 {
			flags[name] = values[0]
		}
	}

	selected, err := h.selectLocationsUC.Execute(r.Context(), flags)
	if err != nil {
		logger.Error("Use case failed", err, nil)
		status, message := statusForError(err)
		WriteJSONError(w, status, message)
		return
	}

	RespondWithJSON(w, http.StatusOK, selected)
}
