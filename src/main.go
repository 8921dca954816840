package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/recover"
	"github.com/gofiber/swagger"
	"github.com/hibiken/asynq"
	"go.uber.org/zap"

	_ "scholar-duty-backend/docs"
	"scholar-duty-backend/src/config"
	"scholar-duty-backend/src/controllers"
	"scholar-duty-backend/src/database"
	"scholar-duty-backend/src/jobs"
	"scholar-duty-backend/src/logger"
	"scholar-duty-backend/src/middleware"
	"scholar-duty-backend/src/reconcile"
	"scholar-duty-backend/src/routes"
	"scholar-duty-backend/src/seeder"
	"scholar-duty-backend/src/services/attendance"
	"scholar-duty-backend/src/services/dashboard"
	"scholar-duty-backend/src/services/duties"
	"scholar-duty-backend/src/services/scholars"
	"scholar-duty-backend/src/services/snapshot"
	"scholar-duty-backend/src/utils"
)

// @title                       Scholar Duty Tracker API
// @version                     1.0
// @description                 Duty schedules, manual attendance and attendance-rate dashboards for work-study scholars.
// @BasePath                    /api
// @securityDefinitions.apikey  BearerAuth
// @in                          header
// @name                        Authorization
func main() {
	cfg, err := config.Load(os.Getenv("DUTY_CONFIG_FILE"))
	if err != nil {
		log.Fatalf("❌ Error loading config: %v", err)
	}

	lg, err := logger.New(cfg.Log)
	if err != nil {
		log.Fatalf("❌ Error building logger: %v", err)
	}
	defer lg.Sync()
	zap.ReplaceGlobals(lg)

	loc, err := cfg.Location()
	if err != nil {
		lg.Fatal("❌ Invalid time zone", zap.String("timezone", cfg.App.Timezone), zap.Error(err))
	}

	if err := database.ConnectMongoDB(cfg.Mongo); err != nil {
		lg.Fatal("❌ Error connecting to the database", zap.Error(err))
	}
	if err := database.InitRedis(context.Background(), cfg.Redis); err != nil {
		lg.Warn("⚠️ Redis unavailable, continuing without cache and background refresh", zap.Error(err))
	}
	database.InitAsynq(cfg.Redis)

	engine := reconcile.New(loc)
	source := snapshot.NewMongoSource(database.ScholarCollection, database.DutyCollection, database.AttendanceCollection, lg.Named("snapshot"))
	dash := dashboard.NewService(source, utils.NewRedisCache(database.RedisClient), engine, cfg.Cache.TTL, lg.Named("dashboard"))

	// a nil *asynq.Client must stay a nil interface
	var queue jobs.Enqueuer
	if database.AsynqClient != nil {
		queue = database.AsynqClient
	}
	onWrite := func(ctx context.Context) {
		dash.Invalidate(ctx)
		if err := jobs.EnqueueRefresh(ctx, queue, "write"); err != nil {
			lg.Warn("⚠️ could not enqueue dashboard refresh", zap.Error(err))
		}
	}

	attendanceSvc := attendance.NewService(database.AttendanceCollection, loc, lg.Named("attendance"), onWrite)
	dutySvc := duties.NewService(database.DutyCollection, lg.Named("duties"), onWrite)
	scholarSvc := scholars.NewService(database.ScholarCollection, lg.Named("scholars"), onWrite)
	refresh := jobs.NewRefreshHandler(dash, lg.Named("jobs"))

	if cfg.App.Seed {
		if err := seeder.SeedSampleData(context.Background(), scholarSvc, dutySvc, lg.Named("seeder")); err != nil {
			lg.Fatal("❌ Error seeding sample data", zap.Error(err))
		}
	}

	var (
		worker    *asynq.Server
		scheduler *asynq.Scheduler
	)
	if database.RedisClient != nil {
		opt := database.RedisClientOpt(cfg.Redis)
		worker = asynq.NewServer(opt, asynq.Config{Concurrency: 2})
		if err := worker.Start(jobs.NewServeMux(refresh)); err != nil {
			lg.Fatal("❌ Error starting asynq worker", zap.Error(err))
		}

		scheduler = asynq.NewScheduler(opt, &asynq.SchedulerOpts{Location: loc})
		entryID, err := jobs.RegisterSchedule(scheduler, cfg.Jobs.RefreshCron)
		if err != nil {
			lg.Fatal("❌ Error scheduling dashboard refresh", zap.String("cron", cfg.Jobs.RefreshCron), zap.Error(err))
		}
		if err := scheduler.Start(); err != nil {
			lg.Fatal("❌ Error starting asynq scheduler", zap.Error(err))
		}
		lg.Info("✅ Dashboard refresh scheduled", zap.String("cron", cfg.Jobs.RefreshCron), zap.String("entryId", entryID))
	}

	app := fiber.New()
	app.Use(recover.New())
	app.Use(middleware.Logger(lg.Named("http")))
	app.Use(cors.New(cors.Config{
		AllowOrigins:     cfg.Server.AllowOrigins,
		AllowMethods:     "GET,POST,PUT,PATCH,DELETE,OPTIONS",
		AllowHeaders:     "Origin, Content-Type, Accept, Authorization",
		AllowCredentials: false,
	}))

	app.Get("/swagger/*", swagger.HandlerDefault)

	routes.InitRoutes(app, routes.Controllers{
		Dashboard:  controllers.NewDashboardController(dash),
		Duties:     controllers.NewDutyController(dutySvc),
		Attendance: controllers.NewAttendanceController(attendanceSvc),
		Scholars:   controllers.NewScholarController(scholarSvc),
		Jobs:       controllers.NewJobsController(queue, refresh),
	}, []byte(cfg.Auth.JWTSecret))

	go func() {
		lg.Info("🚀 Server is running", zap.Int("port", cfg.Server.Port))
		if err := app.Listen(fmt.Sprintf(":%d", cfg.Server.Port)); err != nil {
			lg.Fatal("❌ Server stopped", zap.Error(err))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	lg.Info("🛑 Shutting down")

	if err := app.ShutdownWithTimeout(10 * time.Second); err != nil {
		lg.Warn("http shutdown", zap.Error(err))
	}
	if scheduler != nil {
		scheduler.Shutdown()
	}
	if worker != nil {
		worker.Shutdown()
	}
	if database.AsynqClient != nil {
		_ = database.AsynqClient.Close()
	}
	if database.RedisClient != nil {
		_ = database.RedisClient.Close()
	}

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := database.Disconnect(ctx); err != nil {
		lg.Warn("mongo disconnect", zap.Error(err))
	}
}
