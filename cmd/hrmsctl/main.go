package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"

	"github.com/hrms-server/hrms-backend-go/internal/config"
	"github.com/hrms-server/hrms-backend-go/internal/domain/attendance"
	"github.com/hrms-server/hrms-backend-go/internal/domain/holiday"
	"github.com/hrms-server/hrms-backend-go/internal/domain/report"
	"github.com/hrms-server/hrms-backend-go/internal/domain/user"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/database"
	"github.com/hrms-server/hrms-backend-go/internal/pkg/jwt"
	"github.com/hrms-server/hrms-backend-go/internal/repository/postgresql"
	attendanceService "github.com/hrms-server/hrms-backend-go/internal/service/attendance"
	auditService "github.com/hrms-server/hrms-backend-go/internal/service/audit"
	holidayService "github.com/hrms-server/hrms-backend-go/internal/service/holiday"
	leaveService "github.com/hrms-server/hrms-backend-go/internal/service/leave"
	reportService "github.com/hrms-server/hrms-backend-go/internal/service/report"
	userService "github.com/hrms-server/hrms-backend-go/internal/service/user"
	"github.com/urfave/cli/v2"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:  "hrmsctl",
		Usage: "operator tooling for the HRMS backend",
		Flags: []cli.Flag{
			&cli.BoolFlag{Name: "verbose", Aliases: []string{"v"}, Usage: "log debug output to stderr"},
		},
		Before: func(c *cli.Context) error {
			level := slog.LevelWarn
			if c.Bool("verbose") {
				level = slog.LevelDebug
			}
			slog.SetDefault(slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: level})))
			return nil
		},
		Commands: []*cli.Command{
			backfillCommand,
			reportCommand,
			statsCommand,
			holidaysCommand,
			tokenCommand,
		},
	}
}

var dateRangeFlags = []cli.Flag{
	&cli.StringFlag{Name: "start-date", Usage: "first day, YYYY-MM-DD"},
	&cli.StringFlag{Name: "end-date", Usage: "last day, YYYY-MM-DD"},
}

var backfillCommand = &cli.Command{
	Name:  "backfill",
	Usage: "recompute worked time and flags for closed records stored without them",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "user-id", Usage: "restrict to one user"},
	}, dateRangeFlags...),
	Action: func(c *cli.Context) error {
		deps, err := openDeps(c.Context)
		if err != nil {
			return err
		}
		defer deps.Close()

		result, err := deps.attendance.Backfill(c.Context, attendance.BackfillRequest{
			UserID:    optionalFlag(c, "user-id"),
			StartDate: optionalFlag(c, "start-date"),
			EndDate:   optionalFlag(c, "end-date"),
		})
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "scanned=%d updated=%d failed=%d\n", result.Scanned, result.Updated, result.Failed)
		return nil
	},
}

var reportCommand = &cli.Command{
	Name:  "report",
	Usage: "print the attendance report as a table",
	Flags: append([]cli.Flag{
		&cli.StringFlag{Name: "department", Usage: "restrict to one department"},
	}, dateRangeFlags...),
	Action: func(c *cli.Context) error {
		deps, err := openDeps(c.Context)
		if err != nil {
			return err
		}
		defer deps.Close()

		result, err := deps.report.GenerateAttendanceReport(c.Context, report.AttendanceReportRequest{
			StartDate:  optionalFlag(c, "start-date"),
			EndDate:    optionalFlag(c, "end-date"),
			Department: optionalFlag(c, "department"),
		})
		if err != nil {
			return err
		}

		t := buildReportTable(result)
		t.SetOutputMirror(c.App.Writer)
		t.Render()
		return nil
	},
}

var statsCommand = &cli.Command{
	Name:  "stats",
	Usage: "print attendance and approved leave totals per active employee",
	Action: func(c *cli.Context) error {
		deps, err := openDeps(c.Context)
		if err != nil {
			return err
		}
		defer deps.Close()

		stats, err := deps.user.GetEmployeeStats(c.Context)
		if err != nil {
			return err
		}

		t := buildStatsTable(stats)
		t.SetOutputMirror(c.App.Writer)
		t.Render()
		return nil
	},
}

var holidaysCommand = &cli.Command{
	Name:  "holidays",
	Usage: "list the company holiday calendar",
	Flags: dateRangeFlags,
	Action: func(c *cli.Context) error {
		deps, err := openDeps(c.Context)
		if err != nil {
			return err
		}
		defer deps.Close()

		holidays, err := deps.holiday.ListHolidays(c.Context, holiday.ListFilter{
			StartDate: optionalFlag(c, "start-date"),
			EndDate:   optionalFlag(c, "end-date"),
		})
		if err != nil {
			return err
		}

		for _, h := range holidays {
			fmt.Fprintf(c.App.Writer, "%s  %s\n", h.Date, h.Description)
		}
		return nil
	},
}

var tokenCommand = &cli.Command{
	Name:  "token",
	Usage: "issue an access token for local testing",
	Flags: []cli.Flag{
		&cli.StringFlag{Name: "user-id", Required: true},
		&cli.StringFlag{Name: "name", Required: true},
		&cli.StringFlag{Name: "role", Value: string(user.RoleEmployee), Usage: "Employee, HR or Admin"},
	},
	Action: func(c *cli.Context) error {
		cfg, err := config.Load()
		if err != nil {
			return err
		}

		role := user.Role(c.String("role"))
		if _, ok := user.RolePermissions[role]; !ok {
			return fmt.Errorf("unknown role %q", role)
		}

		token, expiresAt, err := jwt.NewJWTService(cfg.JWT.Secret, cfg.JWT.AccessExpiration).
			GenerateAccessToken(c.String("user-id"), c.String("name"), role)
		if err != nil {
			return err
		}

		fmt.Fprintf(c.App.Writer, "%s\n# expires_at=%d\n", token, expiresAt)
		return nil
	},
}

func optionalFlag(c *cli.Context, name string) *string {
	if !c.IsSet(name) {
		return nil
	}
	v := c.String(name)
	return &v
}

type deps struct {
	db         *database.DB
	audit      *auditService.AuditServiceImpl
	attendance attendance.AttendanceService
	report     report.ReportService
	user       user.UserService
	holiday    holiday.HolidayService
}

func openDeps(ctx context.Context) (*deps, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}

	db, err := database.NewPostgreSQLDB(ctx, cfg.DatabaseURL(), database.PoolConfig{MaxConns: 4, MinConns: 1})
	if err != nil {
		return nil, fmt.Errorf("error connecting to database: %w", err)
	}

	attendanceRepo := postgresql.NewAttendanceRepository(db)
	leaveRequestRepo := postgresql.NewLeaveRequestRepository(db)
	auditSvc := auditService.NewAuditService(postgresql.NewAuditRepository(db))
	attendanceSvc := attendanceService.NewAttendanceService(
		attendanceRepo,
		leaveService.NewHalfDayChecker(leaveRequestRepo),
		auditSvc,
		cfg.Attendance.Location,
	)

	return &deps{
		db:         db,
		audit:      auditSvc,
		attendance: attendanceSvc,
		report:     reportService.NewReportService(attendanceRepo),
		user:       userService.NewUserService(postgresql.NewUserRepository(db), leaveRequestRepo, attendanceSvc),
		holiday:    holidayService.NewHolidayService(postgresql.NewHolidayRepository(db), auditSvc),
	}, nil
}

func (d *deps) Close() {
	d.audit.Wait()
	d.db.Close()
}
