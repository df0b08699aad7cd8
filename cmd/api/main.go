package main

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cmlabs-hris/attendance-board-go/internal/app"
	"github.com/cmlabs-hris/attendance-board-go/internal/config"
	appHTTP "github.com/cmlabs-hris/attendance-board-go/internal/handler/http"
	"github.com/cmlabs-hris/attendance-board-go/internal/pkg/cron"
)

func main() {
	cfg, err := config.Load()
	if err != nil {
		fmt.Println("Error loading config:", err)
		return
	}

	slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level: cfg.SlogLevel(),
	})))

	a, err := app.New(cfg, nil)
	if err != nil {
		slog.Error("Failed to initialize application", "error", err)
		os.Exit(1)
	}

	boardHandler := appHTTP.NewBoardHandler(a.BoardService, a.Hub)
	employeeHandler := appHTTP.NewEmployeeHandler(a.EmployeeService, a.AttendanceService)
	proxyHandler := appHTTP.NewProxyHandler(a.Upstream)

	router := appHTTP.NewRouter(cfg.App, cfg.SlogLevel(), boardHandler, employeeHandler, proxyHandler)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	scheduler := cron.NewScheduler(ctx)
	boardJobs := cron.NewBoardJobs(a.BoardService)
	scheduler.AddJob("board-refresh", cfg.Board.RefreshInterval, boardJobs.RefreshBoard)
	scheduler.Start()
	defer scheduler.Stop()

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	go func() {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		if err := server.Shutdown(shutdownCtx); err != nil {
			slog.Error("Server shutdown failed", "error", err)
		}
	}()

	fmt.Printf("Server running at http://localhost%s\n", server.Addr)
	if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
		slog.Error("Server error", "error", err)
	}
}
