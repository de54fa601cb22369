package controllers

import (
	"errors"
	json "github.com/goccy/go-json"
	"iconpicker/internal/catalog"
	"iconpicker/internal/migration"
	"iconpicker/internal/models"
	"iconpicker/internal/providers"
	"iconpicker/internal/services"
	"iconpicker/internal/structures"
	"net/http"
	"strconv"
)

const maxRequestBodySize = 1 << 20 // 1 MB

type ApiController struct {
	logger   providers.Logger
	catalog  services.CatalogServiceInterface
	fields   services.FieldServiceInterface
	pageSize int
}

func NewApiController(conf *structures.Config, logger providers.Logger, catalog services.CatalogServiceInterface, fields services.FieldServiceInterface) *ApiController {
	return &ApiController{
		logger:   logger,
		catalog:  catalog,
		fields:   fields,
		pageSize: conf.Catalog.PageSize,
	}
}

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(w http.ResponseWriter, status int, payload any) {
	gson, err := json.Marshal(payload)
	if err != nil {
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	_, _ = w.Write(gson)
}

func statusFor(err error) int {
	switch {
	case errors.Is(err, models.ErrConfigurationMissing),
		errors.Is(err, models.ErrConfigurationParse),
		errors.Is(err, catalog.ErrInvalidFilter),
		errors.Is(err, services.ErrInvalidSettings):
		return http.StatusUnprocessableEntity
	case errors.Is(err, models.ErrAssetFetch), errors.Is(err, models.ErrMigration):
		return http.StatusBadGateway
	case errors.Is(err, services.ErrMigrationRequired),
		errors.Is(err, migration.ErrNotRequired),
		errors.Is(err, migration.ErrInProgress),
		errors.Is(err, migration.ErrRetryRequired),
		errors.Is(err, migration.ErrNotFailed):
		return http.StatusConflict
	case errors.Is(err, services.ErrInvalidField):
		return http.StatusBadRequest
	default:
		return http.StatusInternalServerError
	}
}

// writeError turns a service error into a JSON message. Unexpected errors
// are logged and hidden from the client.
func writeError(w http.ResponseWriter, r *http.Request, logger providers.Logger, err error) {
	status := statusFor(err)
	message := err.Error()
	if status == http.StatusInternalServerError {
		logger.Errorf(providers.GetLogTypeByRequestType(r.Method), "%s %s: %s", r.Method, r.URL.Path, err)
		message = "Internal Server Error"
	}
	writeJSON(w, status, errorResponse{Error: message})
}

type catalogResponse struct {
	catalog.Page
	ActiveFilters []string        `json:"activeFilters"`
	Search        string          `json:"search"`
	Filters       []models.Filter `json:"filters"`
	IconPrefix    string          `json:"iconPrefix"`
}

// GetCatalog applies at most one browsing action to the state carried in the
// query and returns the resulting page.
func (ac *ApiController) GetCatalog(w http.ResponseWriter, r *http.Request) {
	cat, err := ac.catalog.Load(r.Context())
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	browser := catalog.NewBrowser(cat.Icons, ac.pageSize, catalog.State{
		ActiveFilters: q["filter"],
		Search:        q.Get("search"),
		Page:          max(page, 1),
	})

	value := q.Get("value")
	switch q.Get("action") {
	case "":
	case "toggle":
		browser.ToggleFilter(value)
	case "search":
		browser.SetSearch(value)
	case "page":
		n, err := strconv.Atoi(value)
		if err != nil {
			writeJSON(w, http.StatusBadRequest, errorResponse{Error: "page must be a number"})
			return
		}
		browser.SetPage(n)
	case "first":
		browser.First()
	case "prev":
		browser.Prev()
	case "next":
		err = browser.Next()
	case "last":
		err = browser.Last()
	default:
		writeJSON(w, http.StatusBadRequest, errorResponse{Error: "unknown action"})
		return
	}
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}

	view, err := browser.View()
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	state := browser.State()
	writeJSON(w, http.StatusOK, catalogResponse{
		Page:          view,
		ActiveFilters: state.ActiveFilters,
		Search:        state.Search,
		Filters:       cat.Filters,
		IconPrefix:    cat.GeneralOptions.IconPrefix,
	})
}

func (ac *ApiController) GetStyles(w http.ResponseWriter, r *http.Request) {
	cat, err := ac.catalog.Load(r.Context())
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	w.Header().Set("Content-Type", "text/css; charset=utf-8")
	w.WriteHeader(http.StatusOK)
	_, _ = w.Write([]byte(cat.Styles))
}

type fieldRequest struct {
	ItemID    string  `json:"itemId"`
	FieldPath string  `json:"fieldPath"`
	Icon      *string `json:"icon"`
}

func (ac *ApiController) SetField(w http.ResponseWriter, r *http.Request) {
	r.Body = http.MaxBytesReader(w, r.Body, maxRequestBodySize)
	var payload fieldRequest
	if err := json.NewDecoder(r.Body).Decode(&payload); err != nil {
		http.Error(w, "Bad Request", http.StatusBadRequest)
		return
	}

	var err error
	if payload.Icon == nil {
		err = ac.fields.Clear(r.Context(), payload.ItemID, payload.FieldPath)
	} else {
		err = ac.fields.Select(r.Context(), payload.ItemID, payload.FieldPath, *payload.Icon)
	}
	if err != nil {
		writeError(w, r, ac.logger, err)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}
