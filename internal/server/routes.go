// -----------------------------------------------------------------------
// Last Modified: Thursday, 9th October 2025 8:53:55 am
// Modified By: Bob McAllan
// -----------------------------------------------------------------------

package server

import (
	"net/http"
)

// setupRoutes configures all HTTP routes
func (s *Server) setupRoutes() *http.ServeMux {
	mux := http.NewServeMux()

	// UI Page routes (HTML templates)
	mux.HandleFunc("/", s.app.PageHandler.DashboardHandler)
	mux.HandleFunc("/sku/", s.app.PageHandler.SkuPageHandler)

	// Static files (CSS, JS, images)
	mux.HandleFunc("/static/", s.app.PageHandler.StaticFileHandler)

	// API routes - SKUs
	mux.HandleFunc("/api/skus", s.app.SkuHandler.ListHandler) // GET - list/search/filter/paginate
	mux.HandleFunc("/api/skus/", s.app.SkuHandler.GetHandler) // GET /{id}

	// API routes - System
	mux.HandleFunc("/api/version", s.app.APIHandler.VersionHandler)
	mux.HandleFunc("/api/health", s.app.APIHandler.HealthHandler)

	// Prometheus metrics
	metricsHandler := s.app.Metrics.Handler()
	mux.HandleFunc("/metrics", func(w http.ResponseWriter, r *http.Request) {
		RouteByMethod(w, r, MethodRouter{"GET": metricsHandler.ServeHTTP})
	})

	// API routes - Raw document inspection (development only)
	if s.app.DebugHandler != nil {
		mux.HandleFunc("/api/debug/documents", s.app.DebugHandler.ListDocumentsHandler)
		mux.HandleFunc("/api/debug/documents/", s.app.DebugHandler.GetDocumentHandler)
	}

	// 404 handler for unknown API routes
	mux.HandleFunc("/api/", s.app.APIHandler.NotFoundHandler)

	return mux
}
