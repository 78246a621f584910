package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/internal/catalog/usecase/command"
	"github.com/pmslab/catalog-service/internal/catalog/usecase/query"
	"github.com/pmslab/catalog-service/pkg/validator"
)

// ProviderHandler handles HTTP requests for providers
type ProviderHandler struct {
	createHandler *command.CreateProviderHandler
	updateHandler *command.UpdateProviderHandler
	deleteHandler *command.DeleteProviderHandler
	filterHandler *query.FilterProvidersHandler
	getHandler    *query.GetProviderHandler
}

func NewProviderHandler(providers domain.ProviderRepository) *ProviderHandler {
	return &ProviderHandler{
		createHandler: command.NewCreateProviderHandler(providers),
		updateHandler: command.NewUpdateProviderHandler(providers),
		deleteHandler: command.NewDeleteProviderHandler(providers),
		filterHandler: query.NewFilterProvidersHandler(providers),
		getHandler:    query.NewGetProviderHandler(providers),
	}
}

func (h *ProviderHandler) RegisterRoutes(router *mux.Router, wrap RouteWrapper) {
	router.HandleFunc("/providers", wrap("/providers", h.FilterProviders)).Methods("GET")
	router.HandleFunc("/providers", wrap("/providers", h.CreateProvider)).Methods("POST")
	router.HandleFunc("/providers/{providerID}", wrap("/providers/{providerID}", h.GetProvider)).Methods("GET")
	router.HandleFunc("/providers/{providerID}", wrap("/providers/{providerID}", h.UpdateProvider)).Methods("PUT")
	router.HandleFunc("/providers/{providerID}", wrap("/providers/{providerID}", h.DeleteProvider)).Methods("DELETE")
}

type providerMessage struct {
	ProviderID int    `json:"providerID"`
	Status     int    `json:"status"`
	Message    string `json:"message"`
}

// FilterProviders handles GET /providers
func (h *ProviderHandler) FilterProviders(w http.ResponseWriter, r *http.Request) {
	validated, err := filterProvidersSchema.Validate(validator.Request{
		Query: queryToSection(r.URL.Query()),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	providers, err := h.filterHandler.Handle(r.Context(), query.FilterProvidersQuery{
		Name:  strField(validated.Query, "name"),
		Email: strField(validated.Query, "email"),
		Page:  pageFrom(validated.Query),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, providers)
}

// CreateProvider handles POST /providers
func (h *ProviderHandler) CreateProvider(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	validated, err := createProviderSchema.Validate(validator.Request{Body: body})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.createHandler.Handle(r.Context(), command.CreateProviderCommand{
		ProviderID: intField(validated.Body, "providerID", 0),
		Name:       strField(validated.Body, "name"),
		Website:    strField(validated.Body, "website"),
		Email:      strField(validated.Body, "email"),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, providerMessage{
		ProviderID: provider.ProviderID,
		Status:     http.StatusOK,
		Message:    "Provider Created Successfully",
	})
}

// GetProvider handles GET /providers/{providerID}
func (h *ProviderHandler) GetProvider(w http.ResponseWriter, r *http.Request) {
	validated, err := providerKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.getHandler.Handle(r.Context(), query.GetProviderQuery{
		ProviderID: intField(validated.Params, "providerID", 0),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, []domain.Provider{*provider})
}

// UpdateProvider handles PUT /providers/{providerID}
func (h *ProviderHandler) UpdateProvider(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body) == 0 {
		respondError(w, http.StatusBadRequest, "Request Body cannot be empty")
		return
	}

	validated, err := updateProviderSchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
		Body:   body,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.updateHandler.Handle(r.Context(), command.UpdateProviderCommand{
		ProviderID: intField(validated.Params, "providerID", 0),
		Fields:     validated.Body,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, provider)
}

// DeleteProvider handles DELETE /providers/{providerID}
func (h *ProviderHandler) DeleteProvider(w http.ResponseWriter, r *http.Request) {
	validated, err := providerKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	provider, err := h.deleteHandler.Handle(r.Context(), command.DeleteProviderCommand{
		ProviderID: intField(validated.Params, "providerID", 0),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, providerMessage{
		ProviderID: provider.ProviderID,
		Status:     http.StatusOK,
		Message:    "Provider deleted successfully",
	})
}
