package routes

import (
	"net/http"

	"github.com/unionlaw/lawfirm/internal/app"
	"github.com/unionlaw/lawfirm/internal/handler"
	"github.com/unionlaw/lawfirm/internal/middleware"
	"github.com/unionlaw/lawfirm/internal/storage"
)

func SetupRoutes(app *app.App) http.Handler {
	// Handlers
	health := handler.NewHealthHandler(app.Repos, app.Cfg.AppName)
	auth := handler.NewAuthHandler(app.AuthService)
	cases := handler.NewCaseHandler(app.CaseService)
	appointments := handler.NewAppointmentHandler(app.AppointmentService)
	videos := handler.NewVideoHandler(app.VideoService)
	admin := handler.NewAdminHandler(app.CaseService)

	metrics := middleware.NewMetrics("lawfirm")
	rateLimit := middleware.RateLimit(app.AuthLimiter)
	requireAuth := middleware.RequireAuth(app.AuthService)

	mux := http.NewServeMux()

	// ============================================================================
	// PUBLIC ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/{$}", health.Root)
	mux.HandleFunc("GET /api/health", health.Health)
	mux.Handle("GET /metrics", metrics.Handler())

	// Auth (rate limited)
	mux.HandleFunc("POST /api/auth/register", rateLimit(auth.Register))
	mux.HandleFunc("POST /api/auth/login", rateLimit(auth.Login))

	// Video catalog
	mux.HandleFunc("GET /api/videos", videos.List)
	mux.HandleFunc("GET /api/videos/{id}", videos.Get)

	// ============================================================================
	// AUTHENTICATED ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/auth/me", requireAuth(auth.Me))

	mux.HandleFunc("POST /api/cases", requireAuth(cases.Create))
	mux.HandleFunc("GET /api/cases", requireAuth(cases.List))
	mux.HandleFunc("GET /api/cases/{id}", requireAuth(cases.Get))

	mux.HandleFunc("POST /api/appointments", requireAuth(appointments.Create))
	mux.HandleFunc("GET /api/appointments", requireAuth(appointments.List))

	// ============================================================================
	// ADMIN ROUTES
	// ============================================================================

	mux.HandleFunc("GET /api/admin/cases", middleware.Route(admin.ListCases, requireAuth, middleware.RequireAdmin))
	mux.HandleFunc("PUT /api/admin/cases/{id}/status", middleware.Route(admin.UpdateCaseStatus, requireAuth, middleware.RequireAdmin))

	// Local attachments: a signed link from file_urls, or an admin bearer token.
	// S3 and MinIO links are presigned and never reach this server.
	if local, ok := app.Storage.(*storage.LocalStorage); ok {
		uploads := handler.NewUploadHandler(local)
		mux.HandleFunc("GET /uploads/{name}", uploads.Signed(middleware.Route(uploads.Serve, requireAuth, middleware.RequireAdmin)))
	}

	return middleware.Chain(mux,
		metrics.Middleware,
		middleware.RequestLogging,
		middleware.CORS(app.Cfg.CORSAllowedOrigins),
	)
}
