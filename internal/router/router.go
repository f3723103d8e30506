package router

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"

	"wordtrail-backend/internal/handlers"
	"wordtrail-backend/internal/middleware"
)

func New(
	checkinHandler *handlers.CheckinHandler,
	statisticsHandler *handlers.StatisticsHandler,
	reviewHandler *handlers.ReviewHandler,
	studyLogHandler *handlers.StudyLogHandler,
	testHandler *handlers.TestHandler,
	wrongWordHandler *handlers.WrongWordHandler,
	favoriteHandler *handlers.FavoriteHandler,
	dashboardHandler *handlers.DashboardHandler,
	rateLimiter *middleware.RateLimiter,
	frontendURL string,
) http.Handler {
	r := chi.NewRouter()

	// Global middleware
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)
	r.Use(chimiddleware.RealIP)
	r.Use(middleware.RequestID)
	r.Use(middleware.CORS(frontendURL))
	r.Use(rateLimiter.Middleware)

	// Health check
	r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"status":"ok"}`))
	})

	r.Route("/api", func(r chi.Router) {

		// ──── Check-in Routes ────
		r.Route("/checkin", func(r chi.Router) {
			r.Get("/logs", checkinHandler.Logs)
			r.Post("/today", checkinHandler.Today)
			r.Get("/stats", checkinHandler.Stats)
		})

		// ──── Statistics Routes ────
		r.Route("/statistics", func(r chi.Router) {
			r.Get("/daily/{user_id}", statisticsHandler.Daily)
			r.Get("/mastery/{user_id}", statisticsHandler.Mastery)
			r.Get("/weekly/{user_id}", statisticsHandler.Weekly)
			r.Get("/categories/{user_id}", statisticsHandler.Categories)
		})

		// ──── Review Schedule Routes ────
		r.Route("/review", func(r chi.Router) {
			r.Get("/", reviewHandler.List)
			r.Get("/due", reviewHandler.Due)
			r.Post("/create", reviewHandler.Create)
			r.Put("/{schedule_id}", reviewHandler.Update)
			r.Post("/{schedule_id}/complete", reviewHandler.Complete)
		})

		// ──── Study Log Routes ────
		r.Get("/studylog", studyLogHandler.List)
		r.Post("/study/log", studyLogHandler.Create)

		// ──── Test Routes ────
		r.Route("/tests", func(r chi.Router) {
			r.Get("/history", testHandler.History)
			r.Post("/results", testHandler.Submit)
		})

		// ──── Wrong Word Routes ────
		r.Route("/wrongwords", func(r chi.Router) {
			r.Get("/", wrongWordHandler.List)
			r.Post("/add", wrongWordHandler.Add)
			r.Delete("/{wrongword_id}", wrongWordHandler.Delete)
			r.Post("/mastered", wrongWordHandler.MarkMastered)
		})

		// ──── Favorite Routes ────
		r.Route("/favorite", func(r chi.Router) {
			r.Get("/", favoriteHandler.List)
			r.Post("/add", favoriteHandler.Add)
			r.Post("/remove", favoriteHandler.Remove)
			r.Delete("/{fav_id}", favoriteHandler.Delete)
		})

		// ──── Dashboard Routes ────
		r.Get("/dashboard/{user_id}", dashboardHandler.Summary)
	})

	return r
}
