package api

import (
	_ "embed"
	"encoding/json"
	"net/http"

	"pingheaders/api/models"

	"github.com/gorilla/mux"
	"go.uber.org/zap"
)

const (
	IndexPath = "/"
	PingPath  = "/ping"
)

//go:embed static/index.html
var indexPage []byte

// Api routes GET / and GET /ping and answers everything else with an empty 404.
type Api struct {
	router *mux.Router
	logger *zap.Logger
	page   []byte
}

// New builds an Api serving the embedded diagnostic page on GET /.
func New(logger *zap.Logger) *Api {
	return NewWithPage(logger, indexPage)
}

// NewWithPage serves page on GET / instead of the embedded diagnostic page.
func NewWithPage(logger *zap.Logger, page []byte) *Api {
	router := mux.NewRouter()
	router.SkipClean(true)
	router.UseEncodedPath()

	api := &Api{
		router: router,
		logger: logger,
		page:   page,
	}

	router.HandleFunc(IndexPath, api.Index).Methods(http.MethodGet)
	router.HandleFunc(PingPath, api.Ping).Methods(http.MethodGet)

	// mux answers 405 on a path match with the wrong method; everything unmatched is a 404 here.
	router.NotFoundHandler = http.HandlerFunc(api.NotFound)
	router.MethodNotAllowedHandler = http.HandlerFunc(api.NotFound)

	return api
}

// ServeHTTP rejects non-GET /ping before the router sees it.
// Paths are matched as sent, so /%70ing is not /ping.
func (api *Api) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	if r.URL.EscapedPath() == PingPath && r.Method != http.MethodGet {
		api.NotFound(w, r)
		return
	}
	api.router.ServeHTTP(w, r)
}

// Index writes the configured page as text/html.
func (api *Api) Index(w http.ResponseWriter, r *http.Request) {
	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(api.page); err != nil {
		api.logger.Debug("write index page", zap.Error(err))
	}
	api.logRequest(r, "index", http.StatusOK)
}

// Ping echoes the request headers as a JSON object.
func (api *Api) Ping(w http.ResponseWriter, r *http.Request) {
	if r.Method != http.MethodGet {
		api.NotFound(w, r)
		return
	}

	body, err := json.Marshal(models.FromRequest(r))
	if err != nil {
		// unreachable: a map[string]string always marshals.
		api.logger.Error("marshal headers", zap.Error(err))
		api.NotFound(w, r)
		return
	}

	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(http.StatusOK)
	if _, err := w.Write(body); err != nil {
		api.logger.Debug("write ping response", zap.Error(err))
	}
	api.logRequest(r, "ping", http.StatusOK)
}

// NotFound writes a 404 with no body.
func (api *Api) NotFound(w http.ResponseWriter, r *http.Request) {
	w.WriteHeader(http.StatusNotFound)
	api.logRequest(r, "not_found", http.StatusNotFound)
}

func (api *Api) logRequest(r *http.Request, route string, status int) {
	api.logger.Debug("request",
		zap.String("method", r.Method),
		zap.String("path", r.URL.Path),
		zap.String("route", route),
		zap.Int("status", status),
	)
}
