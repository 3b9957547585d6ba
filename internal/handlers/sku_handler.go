package handlers

import (
	"errors"
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/interfaces"
	"github.com/ternarybob/pricedash/internal/query"
)

// User-facing failure messages and route prefixes
const (
	msgSkuNotFound      = "SKU not found"
	msgListFailed       = "Failed to fetch SKUs"
	msgSearchFailed     = "Failed to search SKUs"
	msgDetailFailed     = "Failed to fetch SKU details"
	msgInvalidSkuID     = "SKU id is required"
	skusPathPrefix      = "/api/skus/"
	skuDetailPathPrefix = "/sku/"
)

// SkuHandler serves the SKU list and detail JSON endpoints
type SkuHandler struct {
	service  interfaces.SkuService
	config   common.DashboardConfig
	validate *validator.Validate
	logger   arbor.ILogger
}

func NewSkuHandler(service interfaces.SkuService, config common.DashboardConfig, logger arbor.ILogger) *SkuHandler {
	if logger == nil {
		logger = common.GetLogger()
	}
	return &SkuHandler{
		service:  service,
		config:   config,
		validate: validator.New(),
		logger:   logger,
	}
}

// ListHandler handles GET /api/skus?q=&category=&storage=&active=&page=&pageSize=&seq=
// The client seq is echoed so the browser can discard out-of-order responses.
func (h *SkuHandler) ListHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	req, err := ParseListRequest(r, h.config, h.validate)
	if err != nil {
		WriteError(w, http.StatusBadRequest, err.Error())
		return
	}

	response, err := h.service.Query(r.Context(), req)
	if err != nil {
		message := msgListFailed
		if query.IsTextQuery(req.Query) {
			message = msgSearchFailed
		}
		h.logger.Error().Err(err).Str("q", req.Query).Msg(message)
		WriteError(w, http.StatusInternalServerError, message)
		return
	}

	WriteJSON(w, http.StatusOK, response)
}

// GetHandler handles GET /api/skus/{id}
func (h *SkuHandler) GetHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	id := PathID(r, skusPathPrefix)
	if id == "" {
		WriteError(w, http.StatusBadRequest, msgInvalidSkuID)
		return
	}

	record, err := h.service.GetSku(r.Context(), id)
	if err != nil {
		if errors.Is(err, interfaces.ErrSkuNotFound) {
			WriteError(w, http.StatusNotFound, msgSkuNotFound)
			return
		}
		h.logger.Error().Err(err).Str("id", id).Msg(msgDetailFailed)
		WriteError(w, http.StatusInternalServerError, msgDetailFailed)
		return
	}

	WriteJSON(w, http.StatusOK, record)
}
