package http

import (
	"context"
	"net/http"
	"time"

	"github.com/gorilla/mux"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/readpref"

	"github.com/pmslab/catalog-service/internal/catalog/domain"
	"github.com/pmslab/catalog-service/kafka"
	"github.com/pmslab/catalog-service/pkg/config"
)

// RouteWrapper decorates a handler with cross-cutting middleware. The
// endpoint label is the route template, so metrics stay low-cardinality.
type RouteWrapper func(endpoint string, next http.HandlerFunc) http.HandlerFunc

// knownEndpoints is returned on unmatched routes so callers can discover
// the API surface
var knownEndpoints = []string{
	"GET /products",
	"POST /products",
	"GET /products/{sku}",
	"PUT /products/{sku}",
	"DELETE /products/{sku}",
	"GET /products/{sku}/similar",
	"GET /categories",
	"POST /categories",
	"GET /categories/{categoryID}",
	"PUT /categories/{categoryID}",
	"DELETE /categories/{categoryID}",
	"GET /categories/{categoryID}/subCategories",
	"GET /categories/{categoryID}/products",
	"GET /providers",
	"POST /providers",
	"GET /providers/{providerID}",
	"PUT /providers/{providerID}",
	"DELETE /providers/{providerID}",
	"GET /health",
}

type notFoundResponse struct {
	Status    int      `json:"status"`
	Message   string   `json:"message"`
	Endpoints []string `json:"endpoints"`
}

// RouterDeps carries everything the router needs
type RouterDeps struct {
	Products    domain.ProductRepository
	Categories  domain.CategoryRepository
	Providers   domain.ProviderRepository
	Events      *kafka.Publisher
	MongoClient *mongo.Client
	Metrics     *Metrics
	AuthConfig  config.AuthConfig
}

// NewRouter builds the full route table with auth and metrics applied to
// every resource endpoint
func NewRouter(deps RouterDeps) *mux.Router {
	router := mux.NewRouter()

	auth := AuthMiddleware(deps.AuthConfig)
	wrap := func(endpoint string, next http.HandlerFunc) http.HandlerFunc {
		return deps.Metrics.Instrument(endpoint, auth(next))
	}

	NewProductHandler(deps.Products, deps.Providers, deps.Events).RegisterRoutes(router, wrap)
	NewCategoryHandler(deps.Categories, deps.Products).RegisterRoutes(router, wrap)
	NewProviderHandler(deps.Providers).RegisterRoutes(router, wrap)

	router.HandleFunc("/health", healthHandler(deps.MongoClient)).Methods("GET")
	router.NotFoundHandler = http.HandlerFunc(notFoundHandler)

	return router
}

func notFoundHandler(w http.ResponseWriter, r *http.Request) {
	respondJSON(w, http.StatusNotFound, notFoundResponse{
		Status:    http.StatusNotFound,
		Message:   "Resource not found. Refer to the list of available endpoints.",
		Endpoints: knownEndpoints,
	})
}

type healthResponse struct {
	Status   string `json:"status"`
	Database string `json:"database"`
}

func healthHandler(client *mongo.Client) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		ctx, cancel := context.WithTimeout(r.Context(), 2*time.Second)
		defer cancel()

		if client != nil {
			if err := client.Ping(ctx, readpref.Primary()); err != nil {
				respondJSON(w, http.StatusServiceUnavailable, healthResponse{
					Status:   "degraded",
					Database: "unreachable",
				})
				return
			}
		}
		respondJSON(w, http.StatusOK, healthResponse{
			Status:   "ok",
			Database: "connected",
		})
	}
}
