package handlers

import (
	"errors"
	"html/template"
	"net/http"
	"net/url"
	"os"
	"path/filepath"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/interfaces"
	"github.com/ternarybob/pricedash/internal/models"
	"github.com/ternarybob/pricedash/internal/pricing"
	"github.com/ternarybob/pricedash/internal/query"
)

type PageHandler struct {
	logger      arbor.ILogger
	templates   *template.Template
	pagesDir    string
	service     interfaces.SkuService
	config      common.DashboardConfig
	validate    *validator.Validate
	clientDebug bool
}

func NewPageHandler(logger arbor.ILogger, service interfaces.SkuService, config common.DashboardConfig) *PageHandler {
	// Find pages directory (in bin/ after build)
	pagesDir := findPagesDir()

	// Parse all HTML templates including partials
	templates := template.Must(template.New("pages").Funcs(templateFuncs()).ParseGlob(filepath.Join(pagesDir, "*.html")))
	template.Must(templates.ParseGlob(filepath.Join(pagesDir, "partials", "*.html")))

	return &PageHandler{
		logger:      logger,
		templates:   templates,
		pagesDir:    pagesDir,
		service:     service,
		config:      config,
		validate:    validator.New(),
		clientDebug: config.ClientDebug,
	}
}

// findPagesDir locates the pages directory
func findPagesDir() string {
	// Check common locations
	dirs := []string{
		"./pages",     // Running from project root
		"../pages",    // Running from bin/
		"../../pages", // Running from deeper location
		".",           // Current directory (for deployed bin/)
	}

	for _, dir := range dirs {
		if _, err := os.Stat(dir); err == nil {
			abs, _ := filepath.Abs(dir)
			return abs
		}
	}

	return "."
}

// templateFuncs exposes formatting and highlighting to the page templates
func templateFuncs() template.FuncMap {
	return template.FuncMap{
		"highlight": query.HighlightOrPlain,
		"currency":  pricing.FormatCurrency,
		"percent":   pricing.FormatPercent,
		"margin":    pricing.Margin,
		"inventory": pricing.FormatInventory,
		"trend":     pricing.Trend,
		"deref": func(v *float64) float64 {
			if v == nil {
				return 0
			}
			return *v
		},
		"add": func(a, b int) int {
			return a + b
		},
		"pageURL": pageURL,
	}
}

// pageURL links to another page of the dashboard keeping the current query and filters
func pageURL(req models.ListRequest, page int) template.URL {
	values := url.Values{}
	if req.Query != "" {
		values.Set("q", req.Query)
	}
	if req.Category != models.FilterAll {
		values.Set("category", req.Category)
	}
	if req.Storage != models.FilterAll {
		values.Set("storage", req.Storage)
	}
	if req.ActiveInventoryOnly {
		values.Set("active", "true")
	}
	values.Set("page", strconv.Itoa(page))
	return template.URL("/?" + values.Encode())
}

// DashboardHandler renders the searchable, filterable SKU table at /
func (h *PageHandler) DashboardHandler(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	if !RequireMethod(w, r, "GET") {
		return
	}

	data := h.baseData("dashboard")
	status := http.StatusOK

	req, err := ParseListRequest(r, h.config, h.validate)
	data["Request"] = req
	if err != nil {
		data["Error"] = err.Error()
		h.render(w, http.StatusBadRequest, "index.html", data)
		return
	}

	response, err := h.service.Query(r.Context(), req)
	if err == nil && req.Page > response.TotalPages {
		// Navigation is clamped to the last page
		req.Page = query.ClampPage(req.Page, response.TotalPages)
		data["Request"] = req
		response, err = h.service.Query(r.Context(), req)
	}
	if err != nil {
		message := msgListFailed
		if query.IsTextQuery(req.Query) {
			message = msgSearchFailed
		}
		h.logger.Error().Err(err).Str("q", req.Query).Msg(message)
		data["Error"] = message
		h.render(w, http.StatusInternalServerError, "index.html", data)
		return
	}

	from, to := query.Range(req.Page, req.PageSize, response.TotalMatching)
	data["Response"] = response
	data["Pages"] = query.PageWindow(req.Page, response.TotalPages)
	data["From"] = from
	data["To"] = to

	h.render(w, status, "index.html", data)
}

// SkuPageHandler renders the detail card at /sku/{id}
func (h *PageHandler) SkuPageHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := PathID(r, skuDetailPathPrefix)
	data := h.baseData("sku")
	data["ID"] = id

	if id == "" {
		data["NotFound"] = true
		h.render(w, http.StatusNotFound, "sku.html", data)
		return
	}

	record, err := h.service.GetSku(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrSkuNotFound) {
			data["NotFound"] = true
			h.render(w, http.StatusNotFound, "sku.html", data)
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg(msgDetailFailed)
		data["Error"] = msgDetailFailed
		h.render(w, http.StatusInternalServerError, "sku.html", data)
		return
	}

	data["Sku"] = record
	h.render(w, http.StatusOK, "sku.html", data)
}

func (h *PageHandler) baseData(pageName string) map[string]interface{} {
	return map[string]interface{}{
		"Page":        pageName,
		"ClientDebug": h.clientDebug,
		"Categories":  h.config.Categories,
		"Version":     common.Version,
	}
}

func (h *PageHandler) render(w http.ResponseWriter, status int, templateName string, data map[string]interface{}) {
	var buf strings.Builder
	if err := h.templates.ExecuteTemplate(&buf, templateName, data); err != nil {
		h.logger.Error().
			Err(err).
			Str("template", templateName).
			Msg("Failed to render page")
		http.Error(w, "Internal Server Error", http.StatusInternalServerError)
		return
	}

	w.Header().Set("Content-Type", "text/html; charset=utf-8")
	w.WriteHeader(status)
	w.Write([]byte(buf.String()))
}

// StaticFileHandler serves static files (CSS, JS, images)
func (h *PageHandler) StaticFileHandler(w http.ResponseWriter, r *http.Request) {
	staticDir := filepath.Join(h.pagesDir, "static")

	// Remove /static prefix from URL path
	path := strings.TrimPrefix(r.URL.Path, "/static/")
	fullPath := filepath.Join(staticDir, filepath.FromSlash(path))

	// Security check - prevent directory traversal
	if !strings.HasPrefix(fullPath, staticDir+string(filepath.Separator)) {
		http.NotFound(w, r)
		return
	}

	http.ServeFile(w, r, fullPath)
}
