package handlers

import (
	"errors"
	"net/http"
	"strconv"

	"github.com/ternarybob/arbor"
	"github.com/ternarybob/pricedash/internal/interfaces"
)

const (
	debugDocumentsPrefix = "/api/debug/documents/"
	defaultDebugLimit    = 10
	maxDebugLimit        = 100
)

// DebugHandler exposes raw store documents for connection checks.
// Routes are only registered outside production.
type DebugHandler struct {
	store             interfaces.DocumentStore
	defaultCollection string
	logger            arbor.ILogger
}

func NewDebugHandler(store interfaces.DocumentStore, defaultCollection string, logger arbor.ILogger) *DebugHandler {
	return &DebugHandler{
		store:             store,
		defaultCollection: defaultCollection,
		logger:            logger,
	}
}

// ListDocumentsHandler handles GET /api/debug/documents?collection=&limit=
func (h *DebugHandler) ListDocumentsHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	collection := valueOr(r.URL.Query().Get("collection"), h.defaultCollection)

	limit := defaultDebugLimit
	if limitStr := r.URL.Query().Get("limit"); limitStr != "" {
		l, err := strconv.Atoi(limitStr)
		if err != nil || l <= 0 || l > maxDebugLimit {
			WriteError(w, http.StatusBadRequest, "limit must be between 1 and 100")
			return
		}
		limit = l
	}

	docs, err := h.store.FetchMany(r.Context(), collection, limit)
	if err != nil {
		h.logger.Error().Err(err).Str("collection", collection).Msg("Failed to fetch debug documents")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch documents")
		return
	}

	total, err := h.store.Count(r.Context(), collection)
	if err != nil {
		h.logger.Warn().Err(err).Str("collection", collection).Msg("Failed to count documents")
		total = len(docs)
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"collection": collection,
		"count":      len(docs),
		"total":      total,
		"documents":  docs,
	})
}

// GetDocumentHandler handles GET /api/debug/documents/{key}?collection=
func (h *DebugHandler) GetDocumentHandler(w http.ResponseWriter, r *http.Request) {
	if !RequireMethod(w, r, "GET") {
		return
	}

	key := PathID(r, debugDocumentsPrefix)
	if key == "" {
		WriteError(w, http.StatusBadRequest, "document key is required")
		return
	}
	collection := valueOr(r.URL.Query().Get("collection"), h.defaultCollection)

	doc, err := h.store.FetchOne(r.Context(), collection, key)
	if err != nil {
		if errors.Is(err, interfaces.ErrDocumentNotFound) {
			WriteError(w, http.StatusNotFound, "Document not found")
			return
		}
		h.logger.Error().Err(err).Str("collection", collection).Str("key", key).Msg("Failed to fetch debug document")
		WriteError(w, http.StatusInternalServerError, "Failed to fetch document")
		return
	}

	WriteJSON(w, http.StatusOK, map[string]interface{}{
		"collection": collection,
		"id":         key,
		"data":       doc,
	})
}
