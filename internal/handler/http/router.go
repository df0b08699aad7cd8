package http

import (
	"log/slog"
	"os"

	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	"github.com/go-chi/chi/v5"
	chiMiddleware "github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"
	"github.com/go-chi/httplog/v3"
)

const appVersion = "v1.0.0"

func NewRouter(appConfig config.AppConfig, logLevel slog.Level, boardHandler BoardHandler, employeeHandler EmployeeHandler, proxyHandler ProxyHandler) *chi.Mux {
	r := chi.NewRouter()
	logFormat := httplog.SchemaECS.Concise(appConfig.Env != "production")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       logLevel,
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "attendance-board"),
		slog.String("version", appVersion),
		slog.String("env", appConfig.Env),
	)

	r.Use(cors.Handler(cors.Options{
		AllowedOrigins:   []string{appConfig.FrontendURL},
		AllowCredentials: true,
		AllowedMethods:   []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Content-Type", "X-CSRF-Token"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		MaxAge:           300,
	}))

	r.Use(httplog.RequestLogger(logger, &httplog.Options{
		Level:  slog.LevelDebug,
		Schema: httplog.SchemaECS,
	}))

	r.Use(chiMiddleware.AllowContentEncoding("application/json"))
	r.Use(chiMiddleware.CleanPath)
	r.Use(chiMiddleware.Recoverer)
	r.Use(chiMiddleware.Heartbeat("/"))

	// Pass-through write route used by the browser UI. The handler answers 405
	// itself so every method reaches it.
	r.HandleFunc("/api/attendance", proxyHandler.UpdateAttendance)

	r.Route("/api/v1", func(r chi.Router) {

		r.Route("/board", func(r chi.Router) {
			r.Get("/", boardHandler.Load)
			r.Get("/state", boardHandler.State)
			r.Get("/range", boardHandler.Range)
			r.Get("/export", boardHandler.Export)
			r.Get("/events", boardHandler.Events)

			r.Route("/edits", func(r chi.Router) {
				r.Post("/", boardHandler.OpenEdit)
				r.Patch("/", boardHandler.UpdateDraft)
				r.Delete("/", boardHandler.CancelEdit)
				r.Post("/commit", boardHandler.CommitEdit)
			})

			r.Put("/employees/{id}/leave-days", boardHandler.AdjustLeaveDays)
		})

		r.Route("/employees", func(r chi.Router) {
			r.Get("/", employeeHandler.ListEmployees)
			r.Route("/{id}", func(r chi.Router) {
				r.Get("/attendance", employeeHandler.ListAttendance)
				r.Put("/leave-days", employeeHandler.AdjustLeaveDays)
			})
		})
	})

	return r
}
