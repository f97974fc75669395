package routes

import (
	"net/http"

	httpSwagger "github.com/swaggo/http-swagger"

	"ITINERARY_BACK-END/internal/config"
	"ITINERARY_BACK-END/internal/handlers"
	"ITINERARY_BACK-END/internal/middleware"
)

// Handlers groups every HTTP handler the API serves
type Handlers struct {
	Health        *handlers.HealthHandler
	Itineraries   *handlers.ItinerariesHandler
	Builder       *handlers.BuilderHandler
	Packages      *handlers.PackagesHandler
	Notifications *handlers.NotificationsHandler
	WebSocket     *handlers.WebSocketHandler
}

// SetupRoutes configures all application routes on mux
func SetupRoutes(mux *http.ServeMux, h Handlers, jwtCfg *config.JWTConfig) {
	auth := func(next http.HandlerFunc) http.HandlerFunc {
		return middleware.AuthMiddleware(next, jwtCfg)
	}

	// Health check routes
	mux.HandleFunc("GET /healthz", h.Health.HealthCheck)
	mux.HandleFunc("GET /livez", h.Health.LivenessCheck)
	mux.HandleFunc("GET /readyz", h.Health.ReadinessCheck)

	// API docs
	mux.Handle("GET /swagger/", httpSwagger.WrapHandler)

	// Itinerary routes
	mux.HandleFunc("GET /api/itineraries/{id}/days", auth(h.Itineraries.Days))
	mux.HandleFunc("GET /api/itineraries/{id}/items", auth(h.Itineraries.Items))
	mux.HandleFunc("GET /api/itineraries/{id}/summary", auth(h.Itineraries.Summary))
	mux.HandleFunc("POST /api/itineraries/{id}/lock", auth(h.Itineraries.Lock))
	mux.HandleFunc("DELETE /api/itineraries/{id}/lock", auth(h.Itineraries.Unlock))

	// Builder session routes
	mux.HandleFunc("POST /api/itineraries/{id}/builder", auth(h.Builder.Open))
	mux.HandleFunc("GET /api/itineraries/{id}/builder", auth(h.Builder.Get))
	mux.HandleFunc("DELETE /api/itineraries/{id}/builder", auth(h.Builder.Close))
	mux.HandleFunc("POST /api/itineraries/{id}/builder/generate", auth(h.Builder.Generate))
	mux.HandleFunc("PATCH /api/itineraries/{id}/builder/days/{dayIndex}", auth(h.Builder.UpdateDay))
	mux.HandleFunc("POST /api/itineraries/{id}/builder/selection", auth(h.Builder.BeginSelection))
	mux.HandleFunc("DELETE /api/itineraries/{id}/builder/selection", auth(h.Builder.CancelSelection))
	mux.HandleFunc("GET /api/itineraries/{id}/builder/selection/options", auth(h.Builder.Options))
	mux.HandleFunc("POST /api/itineraries/{id}/builder/selection/commit", auth(h.Builder.Commit))
	mux.HandleFunc("DELETE /api/itineraries/{id}/builder/items/{itemId}", auth(h.Builder.RemoveItem))

	// Catalog routes
	mux.HandleFunc("GET /api/packages/search", auth(h.Packages.Search))

	// Notification routes
	mux.HandleFunc("GET /api/notifications", auth(h.Notifications.ListNotifications))
	mux.HandleFunc("POST /api/notifications/read-all", auth(h.Notifications.MarkAllRead))
	mux.HandleFunc("POST /api/notifications/{id}/read", auth(h.Notifications.MarkRead))

	// Realtime events
	mux.HandleFunc("GET /api/ws", auth(h.WebSocket.Subscribe))

	// Root route
	mux.HandleFunc("GET /{$}", rootHandler)
}

func rootHandler(w http.ResponseWriter, r *http.Request) {
	w.Write([]byte("Itinerary backend is running."))
}
