package http

import (
	"net/http"

	"github.com/gorilla/mux"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/internal/catalog/usecase/command"
	"github.com/pmslab/catalog-service/internal/catalog/usecase/query"
	"github.com/pmslab/catalog-service/kafka"
	"github.com/pmslab/catalog-service/pkg/validator"
)

// ProductHandler handles HTTP requests for products
type ProductHandler struct {
	createHandler  *command.CreateProductHandler
	updateHandler  *command.UpdateProductHandler
	deleteHandler  *command.DeleteProductHandler
	filterHandler  *query.FilterProductsHandler
	getHandler     *query.GetProductHandler
	similarHandler *query.SimilarProductsHandler
}

// NewProductHandler creates a product handler with its command and query
// handlers wired to the given repositories
func NewProductHandler(products domain.ProductRepository, providers domain.ProviderRepository, events *kafka.Publisher) *ProductHandler {
	return &ProductHandler{
		createHandler:  command.NewCreateProductHandler(products, events),
		updateHandler:  command.NewUpdateProductHandler(products, events),
		deleteHandler:  command.NewDeleteProductHandler(products, events),
		filterHandler:  query.NewFilterProductsHandler(products, providers),
		getHandler:     query.NewGetProductHandler(products),
		similarHandler: query.NewSimilarProductsHandler(products),
	}
}

func (h *ProductHandler) RegisterRoutes(router *mux.Router, wrap RouteWrapper) {
	router.HandleFunc("/products", wrap("/products", h.FilterProducts)).Methods("GET")
	router.HandleFunc("/products", wrap("/products", h.CreateProduct)).Methods("POST")
	router.HandleFunc("/products/{sku}", wrap("/products/{sku}", h.GetProduct)).Methods("GET")
	router.HandleFunc("/products/{sku}", wrap("/products/{sku}", h.UpdateProduct)).Methods("PUT")
	router.HandleFunc("/products/{sku}", wrap("/products/{sku}", h.DeleteProduct)).Methods("DELETE")
	router.HandleFunc("/products/{sku}/similar", wrap("/products/{sku}/similar", h.GetSimilarProducts)).Methods("GET")
}

type productMessage struct {
	SKU     string `json:"sku"`
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// FilterProducts handles GET /products
func (h *ProductHandler) FilterProducts(w http.ResponseWriter, r *http.Request) {
	validated, err := filterProductsSchema.Validate(validator.Request{
		Query: queryToSection(r.URL.Query()),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	products, err := h.filterHandler.Handle(r.Context(), query.FilterProductsQuery{
		Name:         strField(validated.Query, "name"),
		Status:       strField(validated.Query, "status"),
		Tags:         csvField(validated.Query, "qTags"),
		Attributes:   attrFilterField(validated.Query, "attributes"),
		ProviderName: strField(validated.Query, "provider"),
		Page:         pageFrom(validated.Query),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, products)
}

// CreateProduct handles POST /products
func (h *ProductHandler) CreateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}

	validated, err := createProductSchema.Validate(validator.Request{Body: body})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.createHandler.Handle(r.Context(), command.CreateProductCommand{
		SKU:        strField(validated.Body, "sku"),
		Name:       strField(validated.Body, "name"),
		CategoryID: intField(validated.Body, "categoryID", 0),
		QTags:      listField(validated.Body, "qTags"),
		Attributes: listMapField(validated.Body, "attributes"),
		Price:      floatField(validated.Body, "price"),
		ImageURLs:  listField(validated.Body, "imageURLs"),
		ProviderID: intField(validated.Body, "providerID", 0),
		LaunchDate: timeField(validated.Body, "launchDate"),
		Stock:      intField(validated.Body, "stock", 0),
		Status:     strField(validated.Body, "status"),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, productMessage{
		SKU:     product.SKU,
		Status:  http.StatusOK,
		Message: "Product Created Successfully",
	})
}

// GetProduct handles GET /products/{sku}
func (h *ProductHandler) GetProduct(w http.ResponseWriter, r *http.Request) {
	validated, err := productKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.getHandler.Handle(r.Context(), query.GetProductQuery{
		SKU: strField(validated.Params, "sku"),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, []domain.Product{*product})
}

// UpdateProduct handles PUT /products/{sku}
func (h *ProductHandler) UpdateProduct(w http.ResponseWriter, r *http.Request) {
	body, err := decodeBody(r)
	if err != nil {
		respondError(w, http.StatusBadRequest, "Invalid request body")
		return
	}
	if len(body) == 0 {
		respondError(w, http.StatusBadRequest, "Request Body cannot be empty")
		return
	}

	validated, err := updateProductSchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
		Body:   body,
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.updateHandler.Handle(r.Context(), command.UpdateProductCommand{
		SKU:    strField(validated.Params, "sku"),
		Fields: validated.Body,
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, product)
}

// DeleteProduct handles DELETE /products/{sku}
func (h *ProductHandler) DeleteProduct(w http.ResponseWriter, r *http.Request) {
	validated, err := productKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	product, err := h.deleteHandler.Handle(r.Context(), command.DeleteProductCommand{
		SKU: strField(validated.Params, "sku"),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}

	respondJSON(w, http.StatusOK, productMessage{
		SKU:     product.SKU,
		Status:  http.StatusOK,
		Message: "Product deleted successfully",
	})
}

// GetSimilarProducts handles GET /products/{sku}/similar
func (h *ProductHandler) GetSimilarProducts(w http.ResponseWriter, r *http.Request) {
	validated, err := productKeySchema.Validate(validator.Request{
		Params: varsToSection(mux.Vars(r)),
	})
	if err != nil {
		respondError(w, http.StatusBadRequest, err.Error())
		return
	}

	similar, err := h.similarHandler.Handle(r.Context(), query.SimilarProductsQuery{
		SKU:  strField(validated.Params, "sku"),
		Page: domain.DefaultPage(),
	})
	if err != nil {
		respondDomainError(w, r, err)
		return
	}
	respondJSON(w, http.StatusOK, similar)
}
