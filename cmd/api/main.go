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

	"github.com/dayflow-hq/dayflow-backend-go/internal/config"
	appHTTP "github.com/dayflow-hq/dayflow-backend-go/internal/handler/http"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/database"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/jwt"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/tracing"
	"github.com/dayflow-hq/dayflow-backend-go/internal/pkg/vault"
	"github.com/dayflow-hq/dayflow-backend-go/internal/repository/postgresql"
	attendanceService "github.com/dayflow-hq/dayflow-backend-go/internal/service/attendance"
	authService "github.com/dayflow-hq/dayflow-backend-go/internal/service/auth"
	employeeService "github.com/dayflow-hq/dayflow-backend-go/internal/service/employee"
	identifierService "github.com/dayflow-hq/dayflow-backend-go/internal/service/identifier"
	leaveService "github.com/dayflow-hq/dayflow-backend-go/internal/service/leave"
	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

const serviceName = "dayflow-backend"

func main() {
	if err := run(); err != nil {
		slog.Error("server exited", slog.Any("error", err))
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}

	logger := newLogger(cfg)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	shutdownTracing, err := tracing.Init(ctx, logger, cfg.Tracing.OTLPEndpoint, serviceName, cfg.App.Env)
	if err != nil {
		return fmt.Errorf("init tracing: %w", err)
	}
	defer func() {
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		if err := shutdownTracing(shutdownCtx); err != nil {
			logger.Error("tracing shutdown failed", slog.Any("error", err))
		}
	}()

	db, err := database.NewPostgreSQLDB(cfg.DatabaseURL())
	if err != nil {
		return fmt.Errorf("connect to database: %w", err)
	}
	defer db.Close()

	employeeRepo := postgresql.NewEmployeeRepository(db)
	counterRepo := postgresql.NewCounterRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	txManager := postgresql.NewTxManager(db)

	jwtService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.TokenDuration)
	credentialVault := vault.NewBcryptVault()
	generator := identifierService.NewGenerator(counterRepo, cfg.Identity.OrgCode)

	authSvc := authService.NewAuthService(employeeRepo, jwtService, credentialVault)
	employeeSvc := employeeService.NewEmployeeService(employeeRepo, generator, credentialVault, cfg.Identity.DefaultPassword)
	attendanceSvc := attendanceService.NewAttendanceService(txManager, attendanceRepo, employeeRepo)
	leaveSvc := leaveService.NewLeaveService(txManager, leaveRequestRepo, employeeRepo)

	router := appHTTP.NewRouter(
		logger,
		jwtService,
		appHTTP.NewAuthHandler(authSvc),
		appHTTP.NewEmployeeHandler(employeeSvc),
		appHTTP.NewAttendanceHandler(attendanceSvc),
		appHTTP.NewLeaveHandler(leaveSvc),
		cfg.App.AllowedOrigins,
	)

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           otelhttp.NewHandler(router, "http.server"),
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		logger.Info("server listening",
			slog.Int("port", cfg.App.Port),
			slog.String("environment", cfg.App.Env),
		)
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("listen and serve: %w", err)
	case <-ctx.Done():
	}

	logger.Info("shutting down")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
	defer cancel()
	if err := server.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown: %w", err)
	}
	return nil
}

func newLogger(cfg *config.Config) *slog.Logger {
	level := slog.LevelInfo
	switch cfg.App.LogLevel {
	case "debug":
		level = slog.LevelDebug
	case "warn":
		level = slog.LevelWarn
	case "error":
		level = slog.LevelError
	}
	handler := slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{Level: level})
	return slog.New(handler).With(slog.String("app", serviceName))
}
