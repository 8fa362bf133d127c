package handlers

import (
	"bytes"
	"encoding/json"
	"log/slog"
	"net/http"

	"directory-server/logger"
	"directory-server/pages"
	services "directory-server/service"
	"directory-server/util"

	"github.com/gorilla/mux"
)

const (
	STATE_PATH_VAR    = "state"
	CITY_PATH_VAR     = "cityState"
	BUSINESS_PATH_VAR = "businessId"
)

// PageHandler serves the directory's HTML pages.
type PageHandler struct {
	directory *services.DirectoryService
	renderer  *pages.Renderer
	log       *slog.Logger
}

func NewPageHandler(directory *services.DirectoryService, renderer *pages.Renderer, log *slog.Logger) *PageHandler {
	return &PageHandler{
		directory: directory,
		renderer:  renderer,
		log:       logger.Component(log, "PageHandler"),
	}
}

func (h *PageHandler) Home(w http.ResponseWriter, r *http.Request) {
	data, err := h.directory.HomeData(r.Context())
	if err != nil {
		h.internalError(w, "failed to load home data", err)
		return
	}
	h.writePage(w, http.StatusOK, pages.ComposeHome(data))
}

func (h *PageHandler) State(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)[STATE_PATH_VAR]
	data, err := h.directory.StateData(r.Context(), slug)
	if err != nil {
		h.internalError(w, "failed to load state data", err, slog.String("slug", slug))
		return
	}
	h.writePage(w, http.StatusOK, pages.ComposeState(slug, data))
}

func (h *PageHandler) City(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)[CITY_PATH_VAR]
	data, err := h.directory.CityData(r.Context(), slug)
	if err != nil {
		h.internalError(w, "failed to load city data", err, slog.String("slug", slug))
		return
	}
	h.writePage(w, http.StatusOK, pages.ComposeCity(slug, data))
}

// CityMap plots the city's providers with a known location.
func (h *PageHandler) CityMap(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)[CITY_PATH_VAR]
	data, err := h.directory.CityData(r.Context(), slug)
	if err != nil {
		h.internalError(w, "failed to load city data", err, slog.String("slug", slug))
		return
	}
	if data == nil {
		http.Error(w, "City not found", http.StatusNotFound)
		return
	}

	var buf bytes.Buffer
	title := "Electrolysis Providers in " + data.CityName + ", " + data.StateName
	plotted, err := util.PlotBusinessLocations(&buf, title, data.Businesses)
	if err != nil {
		h.internalError(w, "failed to plot city map", err, slog.String("slug", slug))
		return
	}
	h.log.Debug("plotted city map", slog.String("slug", slug), slog.Int("points", plotted))

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("error writing response", slog.Any("error", err))
	}
}

// Business renders the detail page, or the not-found page with a 404.
func (h *PageHandler) Business(w http.ResponseWriter, r *http.Request) {
	slug := mux.Vars(r)[BUSINESS_PATH_VAR]
	data, err := h.directory.BusinessData(r.Context(), slug)
	if err != nil {
		h.internalError(w, "failed to load business data", err, slog.String("slug", slug))
		return
	}

	page := pages.ComposeBusiness(data)
	status := http.StatusOK
	if page.NotFound {
		status = http.StatusNotFound
	}
	h.writePage(w, status, page)
}

func (h *PageHandler) Ping(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if err := json.NewEncoder(w).Encode(map[string]string{"status": "pong"}); err != nil {
		h.log.Error("error encoding ping response", slog.Any("error", err))
	}
}

func (h *PageHandler) writePage(w http.ResponseWriter, status int, page pages.Page) {
	var buf bytes.Buffer
	if err := h.renderer.Render(&buf, page); err != nil {
		h.internalError(w, "failed to render page", err, slog.String("template", page.TemplateName()))
		return
	}
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		h.log.Warn("error writing response", slog.Any("error", err))
	}
}

func (h *PageHandler) internalError(w http.ResponseWriter, msg string, err error, attrs ...any) {
	h.log.Error(msg, append(attrs, slog.Any("error", err))...)
	http.Error(w, "Internal server error", http.StatusInternalServerError)
}
