// Package http is the JSON-over-HTTP boundary: it translates requests into
// service calls and maps the domain error taxonomy onto status codes.
package http

import (
	"net/http"

	"fleetrent-backend/internal/metrics"
	"fleetrent-backend/internal/service"

	"github.com/gorilla/mux"
)

// NewRouter wires every route and the middleware chain (request counting,
// then request logging).
func NewRouter(
	cars service.CarService,
	rentals service.RentalService,
	metricsSvc service.MetricsService,
	counter *metrics.RequestCounter,
) *mux.Router {
	carHandler := NewCarHandler(cars)
	rentalHandler := NewRentalHandler(rentals)
	systemHandler := NewSystemHandler(metricsSvc)

	router := mux.NewRouter()
	router.Use(CountRequests(counter))
	router.Use(LogRequests)

	api := router.PathPrefix("/api").Subrouter()
	api.HandleFunc("/cars", carHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/cars", carHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/cars/{id}", carHandler.Delete).Methods(http.MethodDelete)
	api.HandleFunc("/rentals", rentalHandler.List).Methods(http.MethodGet)
	api.HandleFunc("/rentals", rentalHandler.Create).Methods(http.MethodPost)
	api.HandleFunc("/rentals/{id}", rentalHandler.Update).Methods(http.MethodPut)
	api.HandleFunc("/rentals/{id}", rentalHandler.Delete).Methods(http.MethodDelete)

	router.HandleFunc("/health", systemHandler.Health).Methods(http.MethodGet)
	router.HandleFunc("/metrics", systemHandler.Metrics).Methods(http.MethodGet)

	return router
}
