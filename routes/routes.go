package routes

import (
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/ldpsa/league-admin/handlers"
)

func SetupRoutes(
	router *chi.Mux,
	healthHandler *handlers.HealthHandler,
	userHandler *handlers.UserHandler,
	championshipHandler *handlers.ChampionshipHandler,
	reportHandler *handlers.PlayerReportHandler,
) {
	router.Use(chiMiddleware.Logger)
	router.Use(chiMiddleware.Recoverer)
	router.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: false,
	}))

	router.Get("/", healthHandler.Root)
	router.Get("/health", healthHandler.Health)

	router.Route("/users", func(r chi.Router) {
		r.Post("/", userHandler.CreateUser)
		r.Get("/", userHandler.ListUsers)
		r.Get("/{userID}", userHandler.GetUserByID)
		r.Put("/{userID}", userHandler.UpdateUser)
		r.Delete("/{userID}", userHandler.DeleteUser)
	})

	router.Route("/championships", func(r chi.Router) {
		r.Post("/", championshipHandler.CreateChampionship)
		r.Get("/", championshipHandler.ListChampionships)
		r.Get("/{championshipID}", championshipHandler.GetChampionshipByID)
		r.Put("/{championshipID}", championshipHandler.UpdateChampionship)
		r.Delete("/{championshipID}", championshipHandler.DeleteChampionship)
	})

	router.Route("/reports", func(r chi.Router) {
		r.Post("/", reportHandler.CreateReport)
		r.Get("/", reportHandler.ListReports)
		r.Get("/{reportID}", reportHandler.GetReportByID)
		r.Put("/{reportID}", reportHandler.UpdateReport)
		r.Delete("/{reportID}", reportHandler.DeleteReport)
	})
}
