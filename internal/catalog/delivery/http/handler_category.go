package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/internal/catalog/usecase/command"
	"github.com/pmslab/catalog-service/internal/catalog/usecase/query"
	"github.com/pmslab/catalog-service/pkg/validator"
)

// CategoryHandler handles HTTP requests for categories
type CategoryHandler struct {
	createHandler   *command.CreateCategoryHandler
	updateHandler   *command.UpdateCategoryHandler
	deleteHandler   *command.DeleteCategoryHandler
	filterHandler   *query.FilterCategoriesHandler
	getHandler      *query.GetCategoryHandler
	childrenHandler *query.GetSubCategoriesHandler
	productsHandler *query.GetCategoryProductsHandler
}

func NewCategoryHandler(categories domain.CategoryRepository, products domain.ProductRepository) *CategoryHandler {
	return &CategoryHandler{
		createHandler:   command.NewCreateCategoryHandler(categories),
		updateHandler:   command.NewUpdateCategoryHandler(categories),
		deleteHandler:   command.NewDeleteCategoryHandler(categories),
		filterHandler:   query.NewFilterCategoriesHandler(categories),
		getHandler:      query.NewGetCategoryHandler(categories),
		childrenHandler: query.NewGetSubCategoriesHandler(categories),
		productsHandler: query.NewGetCategoryProductsHandler(categories, products),
	}
}

func (h *CategoryHandler) RegisterRoutes(router *mux.Router, wrap RouteWrapper) {
	router.HandleFunc("/categories", wrap("/categories", h.FilterCategories)).Methods("GET")
	router.HandleFunc("/categories", wrap("/categories", h.CreateCategory)).Methods("POST")
	router.HandleFunc("/categories/{categoryID}", wrap("/categories/{categoryID}", h.GetCategory)).Methods("GET")
	router.HandleFunc("/categories/{categoryID}", wrap("/categories/{categoryID}", h.UpdateCategory)).Methods("PUT")
	router.HandleFunc("/categories/{categoryID}", wrap("/categories/{categoryID}", h.DeleteCategory)).Methods("DELETE")
	router.HandleFunc("/categories/{categoryID}/subCategories", wrap("/categories/{categoryID}/subCategories", h.GetSubCategories)).Methods("GET")
	router.HandleFunc("/categories/{categoryID}/products", wrap("/categories/{categoryID}/products", h.GetCategoryProducts)).Methods("GET")
}

type categoryMessage struct {
	CategoryID int    `json:"categoryID"`
	Status     int    `json:"status"`
	Message    string `json:"message"`
}

// FilterCategories handles GET /categories
func (h *CategoryHandler) FilterCategories(w http.ResponseWriter, r *http.Request) {
	validated, err := filterCategoriesSchema.Validate(validator.Request{
		Query: queryToSection(r.URL.Query()),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	categories, err := h.filterHandler.Handle(r.Context(), query.FilterCategoriesQuery{
		Name: strField(validated.Query, "name"),
		Page: pageFrom(validated.Query),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, categories)
}

// CreateCategory handles POST /categories
func (h *CategoryHandler) CreateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	validated, err := createCategorySchema.Validate(validator.Request{Body: body})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.createHandler.Handle(r.Context(), command.CreateCategoryCommand{
		CategoryID:       intField(validated.Body, "categoryID", 0),
		Name:             strField(validated.Body, "name"),
		ParentCategoryID: intField(validated.Body, "parentCategoryID", domain.NoParentCategory),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, categoryMessage{
		CategoryID: category.CategoryID,
		Status:     http.StatusOK,
		Message:    "Category Created Successfully",
	})
}

// GetCategory handles GET /categories/{categoryID}
func (h *CategoryHandler) GetCategory(w http.ResponseWriter, r *http.Request) {
	validated, err := categoryKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.getHandler.Handle(r.Context(), query.GetCategoryQuery{
		CategoryID: intField(validated.Params, "categoryID", 0),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, []domain.Category{*category})
}

// UpdateCategory handles PUT /categories/{categoryID}
func (h *CategoryHandler) UpdateCategory(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body) == 0 {
		respondError(w, http.StatusBadRequest, "Request Body cannot be empty")
		return
	}

	validated, err := updateCategorySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
		Body:   body,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.updateHandler.Handle(r.Context(), command.UpdateCategoryCommand{
		CategoryID: intField(validated.Params, "categoryID", 0),
		Fields:     validated.Body,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, category)
}

// DeleteCategory handles DELETE /categories/{categoryID}
func (h *CategoryHandler) DeleteCategory(w http.ResponseWriter, r *http.Request) {
	validated, err := categoryKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	category, err := h.deleteHandler.Handle(r.Context(), command.DeleteCategoryCommand{
		CategoryID: intField(validated.Params, "categoryID", 0),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, categoryMessage{
		CategoryID: category.CategoryID,
		Status:     http.StatusOK,
		Message:    "Category deleted successfully",
	})
}

// GetSubCategories handles GET /categories/{categoryID}/subCategories
func (h *CategoryHandler) GetSubCategories(w http.ResponseWriter, r *http.Request) {
	validated, err := categoryKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	children, err := h.childrenHandler.Handle(r.Context(), query.GetSubCategoriesQuery{
		CategoryID: intField(validated.Params, "categoryID", 0),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, children)
}

// GetCategoryProducts handles GET /categories/{categoryID}/products
func (h *CategoryHandler) GetCategoryProducts(w http.ResponseWriter, r *http.Request) {
	validated, err := categoryProductsSchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
		Query:  queryToSection(r.URL.Query()),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.productsHandler.Handle(r.Context(), query.GetCategoryProductsQuery{
		CategoryID: intField(validated.Params, "categoryID", 0),
		Page:       pageFrom(validated.Query),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}
