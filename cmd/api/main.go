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

	"github.com/hrms-server/hrms-backend-go/internal/config"
	appHTTP "github.com/hrms-server/hrms-backend-go/internal/handler/http"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/cron"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-server/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-server/hrms-backend-go/internal/service/attendance"
	auditService "github.com/hrms-server/hrms-backend-go/internal/service/audit"
	holidayService "github.com/hrms-server/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/hrms-server/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-server/hrms-backend-go/internal/service/report"
	userService "github.com/hrms-server/hrms-backend-go/internal/service/user"
	"github.com/go-chi/httplog/v3"
	"golang.org/x/sync/errgroup"
)

func main() {
	if err := run(); err != nil {
		slog.Error("Server exited with error", "error", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("error loading config: %w", err)
	}

	logFormat := httplog.SchemaECS.Concise(cfg.App.Env != "development")
	logger := slog.New(slog.NewJSONHandler(os.Stdout, &slog.HandlerOptions{
		Level:       cfg.SlogLevel(),
		ReplaceAttr: logFormat.ReplaceAttr,
	})).With(
		slog.String("app", "hrms-backend"),
		slog.String("env", cfg.App.Env),
	)
	slog.SetDefault(logger)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{
		MaxConns: cfg.Database.MaxConns,
		MinConns: cfg.Database.MinConns,
	})
	if err != nil {
		return fmt.Errorf("error connecting to database: %w", err)
	}
	defer db.Close()

	userRepo := postgresql.NewUserRepository(db)
	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	auditRepo := postgresql.NewAuditRepository(db)
	holidayRepo := postgresql.NewHolidayRepository(db)

	JWTService := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration)
	auditSvc := auditService.NewAuditService(auditRepo)
	leaveSvc := leaveService.NewLeaveService(postgresql.NewTransactor(db), leaveRequestRepo, userRepo, auditSvc)
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		leaveService.NewHalfDayChecker(leaveRequestRepo),
		auditSvc,
		cfg.Attendance.Location,
	)
	reportSvc := reportService.NewReportService(attendanceRepo)
	holidaySvc := holidayService.NewHolidayService(holidayRepo, auditSvc)
	userSvc := userService.NewUserService(userRepo, leaveRequestRepo, attendanceSvc)

	scheduler := cron.NewScheduler()
	cron.NewAttendanceJobs(attendanceSvc, cfg.Attendance.BackfillInterval).RegisterJobs(scheduler)
	scheduler.Start(ctx)

	router := appHTTP.NewRouter(JWTService, appHTTP.Handlers{
		Attendance: appHTTP.NewAttendanceHandler(attendanceSvc),
		Leave:      appHTTP.NewLeaveHandler(leaveSvc),
		Audit:      appHTTP.NewAuditHandler(auditSvc),
		Report:     appHTTP.NewReportHandler(reportSvc),
		Holiday:    appHTTP.NewHolidayHandler(holidaySvc),
		User:       appHTTP.NewUserHandler(userSvc),
	}, appHTTP.RouterOptions{
		Logger:         logger,
		AllowedOrigins: cfg.CORS.AllowedOrigins,
		LogLevel:       cfg.SlogLevel(),
	})

	server := &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.App.Port),
		Handler:           router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		slog.Info("Server running", "addr", server.Addr, "timezone", cfg.Attendance.Location.String())
		if err := server.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server error: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		slog.Info("Shutting down")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), 15*time.Second)
		defer cancel()

		err := server.Shutdown(shutdownCtx)
		scheduler.Stop()

		// Pending audit writes must land before the pool closes
		auditSvc.Wait()
		return err
	})

	if err := g.Wait(); err != nil {
		return err
	}

	slog.Info("Server stopped")
	return nil
}
