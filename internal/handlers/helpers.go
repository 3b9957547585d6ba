package handlers

import (
	"encoding/json"
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/ternarybob/pricedash/internal/common"
	"github.com/ternarybob/pricedash/internal/models"
)

// RequireMethod validates that the HTTP request uses the specified method.
// Returns true if the method matches, false otherwise (and writes error response).
func RequireMethod(w http.ResponseWriter, r *http.Request, method string) bool {
	if r.Method != method {
		http.Error(w, "Method not allowed", http.StatusMethodNotAllowed)
		return false
	}
	return true
}

// WriteJSON writes a JSON response with the specified status code and data.
func WriteJSON(w http.ResponseWriter, statusCode int, data interface{}) error {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(statusCode)
	return json.NewEncoder(w).Encode(data)
}

// WriteError writes a standard error JSON response.
func WriteError(w http.ResponseWriter, statusCode int, message string) error {
	return WriteJSON(w, statusCode, map[string]string{
		"status": "error",
		"error":  message,
	})
}

// PathID returns the path segment after prefix, or "" when it is empty or nested.
// Example: PathID("/api/skus/1001-1", "/api/skus/") -> "1001-1"
func PathID(r *http.Request, prefix string) string {
	id := strings.TrimPrefix(r.URL.Path, prefix)
	if id == r.URL.Path || id == "" || strings.Contains(id, "/") {
		return ""
	}
	return id
}

// ParseListRequest reads the dashboard list parameters from the query string.
// Missing filters default to "all", page to 1 and page size to the configured size.
func ParseListRequest(r *http.Request, config common.DashboardConfig, validate *validator.Validate) (models.ListRequest, error) {
	values := r.URL.Query()

	req := models.ListRequest{
		Query:    values.Get("q"),
		Category: valueOr(values.Get("category"), models.FilterAll),
		Storage:  valueOr(values.Get("storage"), models.FilterAll),
		Page:     1,
		PageSize: config.PageSize,
	}

	if active := values.Get("active"); active != "" {
		b, err := strconv.ParseBool(active)
		if err != nil {
			return req, fmt.Errorf("invalid active flag: %s", active)
		}
		req.ActiveInventoryOnly = b
	}

	if page := values.Get("page"); page != "" {
		p, err := strconv.Atoi(page)
		if err != nil {
			return req, fmt.Errorf("invalid page: %s", page)
		}
		req.Page = p
	}

	if pageSize := values.Get("pageSize"); pageSize != "" {
		ps, err := strconv.Atoi(pageSize)
		if err != nil {
			return req, fmt.Errorf("invalid pageSize: %s", pageSize)
		}
		req.PageSize = ps
	}

	if seq := values.Get("seq"); seq != "" {
		s, err := strconv.ParseUint(seq, 10, 64)
		if err != nil {
			return req, fmt.Errorf("invalid seq: %s", seq)
		}
		req.Seq = s
	}

	if err := validate.Struct(req); err != nil {
		return req, describeValidation(err)
	}

	return req, nil
}

// describeValidation turns validator errors into a short client-facing message
func describeValidation(err error) error {
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok || len(validationErrors) == 0 {
		return err
	}
	fields := make([]string, 0, len(validationErrors))
	for _, fieldErr := range validationErrors {
		fields = append(fields, fmt.Sprintf("%s (%s)", fieldErr.Field(), fieldErr.Tag()))
	}
	return fmt.Errorf("invalid parameters: %s", strings.Join(fields, ", "))
}

func valueOr(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}
