package server

import (
	"log/slog"
	"net/http"

	"github.com/gorilla/mux"
)

// PageHandler is the set of page endpoints the router exposes.
type PageHandler interface {
	Home(w http.ResponseWriter, r *http.Request)
	State(w http.ResponseWriter, r *http.Request)
	City(w http.ResponseWriter, r *http.Request)
	CityMap(w http.ResponseWriter, r *http.Request)
	Business(w http.ResponseWriter, r *http.Request)
	Ping(w http.ResponseWriter, r *http.Request)
}

type Router struct {
	pageHandler PageHandler
	router      *mux.Router
	log         *slog.Logger
}

// NewRouter creates a router with the app's routes.
func NewRouter(
	pageHandler PageHandler,
	router *mux.Router,
	log *slog.Logger) *Router {
	return &Router{
		pageHandler: pageHandler,
		router:      router,
		log:         log,
	}
}

func (r *Router) RegisterRoutes() {
	r.router.Use(LoggingMiddleware(r.log), RecoverMiddleware)

	r.router.HandleFunc("/", r.pageHandler.Home).Methods("GET")
	r.router.HandleFunc("/state/{state}", r.pageHandler.State).Methods("GET")
	r.router.HandleFunc("/city/{cityState}/map", r.pageHandler.CityMap).Methods("GET")
	r.router.HandleFunc("/city/{cityState}", r.pageHandler.City).Methods("GET")
	r.router.HandleFunc("/business/{businessId}", r.pageHandler.Business).Methods("GET")

	r.router.HandleFunc("/ping", r.pageHandler.Ping).Methods("GET")
}
