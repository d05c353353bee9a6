package rest

import (
	"listing-service/internal/contextkeys"
	"listing-service/internal/core/domain"
	"listing-service/internal/core/port"
	"listing-service/internal/core/port/usecases_port"
	"net/http"
)

type ListingHandler struct {
	searchListingsUC usecases_port.SearchListingsUseCase
	getLocationsUC   usecases_port.GetLocationsUseCase
}

func NewListingHandler(searchListingsUC usecases_port.SearchListingsUseCase,
	getLocationsUC usecases_port.GetLocationsUseCase) *ListingHandler {
	return &ListingHandler{
		searchListingsUC: searchListingsUC,
		getLocationsUC:   getLocationsUC,
	}
}

// SearchListings обрабатывает GET /api/v1/listings/search
// ?min_area=&max_area=&locations=A&locations=B&min_bedrooms=&max_bedrooms=
func (h *ListingHandler) SearchListings(w http.ResponseWriter, r *http.Request) {
	logger := contextkeys.LoggerFromContext(r.Context())

	// Разбираем все параметры до обращения к хранилищу
	criteria, err := domain.ParseCriteria(r.URL.Query())
	if err != nil {
		logger.Warn("Invalid search criteria", port.Fields{"error": err.Error()})
		WriteJSONError(w, http.StatusBadRequest, err.Error())
		return
	}

	h.respondWithSearch(w, r, criteria)
}

// ListListings обрабатывает GET /api/v1/listings - все объявления без фильтров.
func (h *ListingHandler) ListListings(w http.ResponseWriter, r *http.Request) {
	h.respondWithSearch(w, r, domain.Criteria{})
}

func (h *ListingHandler) respondWithSearch(w http.ResponseWriter, r *http.Request, criteria domain.Criteria) {
	handlerLogger := contextkeys.LoggerFromContext(r.Context()).WithFields(port.Fields{
		"handler": "SearchListings",
	})

	listings, err := h.searchListingsUC.Execute(r.Context(), criteria)
	if err != nil {
		handlerLogger.Error("Use case failed", err, nil)
		status, message := statusForError(err)
		WriteJSONError(w, status, message)
		return
	}

	handlerLogger.Info("Successfully found listings", port.Fields{"total_found": len(listings)})
	RespondWithJSON(w, http.StatusOK, EncodeListings(listings))
}

// GetLocations обрабатывает GET /api/v1/locations
func (h *ListingHandler) GetLocations(w http.ResponseWriter, r *http.Request) {
	locations, err := h.getLocationsUC.Execute(r.Context())
	if err != nil {
		contextkeys.LoggerFromContext(r.Context()).Error("Use case failed", err, port.Fields{"handler": "GetLocations"})
		status, message := statusForError(err)
		WriteJSONError(w, status, message)
		return
	}
	RespondWithJSON(w, http.StatusOK, locations)
}
