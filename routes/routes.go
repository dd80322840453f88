package routes

import (
	"github.com/go-chi/chi/v5"
	chimiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/pmehta/healthtrack/config"
	"github.com/pmehta/healthtrack/controllers"
	"github.com/pmehta/healthtrack/llm"
	"github.com/pmehta/healthtrack/middleware"
	"github.com/pmehta/healthtrack/services"
	"github.com/pmehta/healthtrack/store"
)

// SetupRouter wires the six dashboard views onto a chi router. Every
// operation is a direct form submission from the shell; there is nothing
// running in the background.
func SetupRouter(cfg *config.Config, st *store.Store) *chi.Mux {
	ai := llm.NewClient(cfg.Model)

	profileSvc := services.NewProfileService(st)
	mealSvc := services.NewMealService(st, ai)
	exerciseSvc := services.NewExerciseService(st)
	coachSvc := services.NewCoachService(st, ai)
	reportSvc := services.NewReportService(st)

	profile := controllers.NewProfileController(profileSvc)
	meals := controllers.NewMealController(mealSvc, profileSvc)
	exercises := controllers.NewExerciseController(exerciseSvc)
	dashboard := controllers.NewDashboardController(reportSvc)
	reports := controllers.NewReportController(reportSvc)
	coach := controllers.NewCoachController(coachSvc)

	r := chi.NewRouter()
	r.Use(chimiddleware.Logger)
	r.Use(chimiddleware.Recoverer)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   cfg.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-API-Key"},
		AllowCredentials: true,
		MaxAge:           300,
	}))

	r.Get("/healthz", HealthCheck(st))

	r.Group(func(r chi.Router) {
		r.Use(middleware.APIKey(cfg.APIKey))

		// Profile Setup
		r.Get("/profile", profile.Get)
		r.Put("/profile", profile.Save)

		// Food Analysis
		r.Post("/meals/analyze", meals.Analyze)
		r.Post("/meals", meals.Save)
		r.Get("/meals", meals.List)

		// Exercise Tracker
		r.Post("/exercises/preview", exercises.Preview)
		r.Post("/exercises", exercises.Log)
		r.Get("/exercises", exercises.List)

		// Dashboard
		r.Get("/dashboard", dashboard.Get)

		// Progress Reports
		r.Get("/reports/calories", reports.CalorieTrend)
		r.Get("/reports/exercises", reports.ExerciseDistribution)

		// AI Health Coach
		r.Post("/coach", coach.Ask)
	})

	return r
}
