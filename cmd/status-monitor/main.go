package main

import (
	"VCS_Status_Monitor/internal/status-monitor/api/handler"
	"VCS_Status_Monitor/internal/status-monitor/api/routes"
	"VCS_Status_Monitor/internal/status-monitor/checker"
	"VCS_Status_Monitor/internal/status-monitor/config"
	"VCS_Status_Monitor/internal/status-monitor/exporter"
	"VCS_Status_Monitor/internal/status-monitor/repository"
	"VCS_Status_Monitor/internal/status-monitor/scheduler"
	"VCS_Status_Monitor/internal/status-monitor/service"
	"VCS_Status_Monitor/pkg/infra"
	"VCS_Status_Monitor/pkg/logger"
	"VCS_Status_Monitor/pkg/mail"
	"VCS_Status_Monitor/pkg/middleware"
	"context"
	"errors"
	"fmt"
	"log"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/NYTimes/gziphandler"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/robfig/cron/v3"
	"github.com/spf13/pflag"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

func main() {
	envFile := pflag.String("env-file", "./.env", "path of the .env file")
	servicesFile := pflag.String("services-file", "", "path of the services seed file, overrides SERVICES_FILE")
	pflag.Parse()

	appConfig, err := config.LoadConfig(*envFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("load config error: %v", err))
	}
	if *servicesFile != "" {
		appConfig.Monitor.ServicesFile = *servicesFile
	}
	startedAt := time.Now()

	// set up logger
	fileSyncer, err := logger.NewReopenableWriteSyncer(appConfig.Server.LogFile)
	if err != nil {
		log.Fatal(fmt.Sprintf("open log file error: %v", err))
	}
	zapLogger := logger.NewLogger(appConfig.Server.LogLevel, appConfig.Server.LogFormat, fileSyncer).With(zap.String("service.name", "status-monitor"))
	defer zapLogger.Sync()
	stopReload := fileSyncer.ReloadOnSignal(zapLogger)
	defer stopReload()

	// set up database
	db, err := openDatabase(appConfig)
	if err != nil {
		zapLogger.Fatal("failed to connect to database", zap.String("driver", appConfig.Database.Driver), zap.Error(err))
	}
	zapLogger.Info("connected to database successfully", zap.String("driver", appConfig.Database.Driver))
	sqlDB, err := db.DB()
	if err != nil {
		zapLogger.Fatal("failed to get sql.DB from gorm", zap.Error(err))
	}
	defer sqlDB.Close()
	if err = repository.AutoMigrate(db); err != nil {
		zapLogger.Fatal("failed to migrate database", zap.Error(err))
	}

	// set up repositories
	var serviceRepo repository.ServiceRepository = repository.NewServiceRepository(db)
	if appConfig.Redis.Host != "" {
		redisClient, e := infra.NewRedisConnection(infra.RedisConfig{
			Host:     appConfig.Redis.Host,
			Port:     appConfig.Redis.Port,
			Password: appConfig.Redis.Password,
			DB:       appConfig.Redis.DB,
		})
		if e != nil {
			zapLogger.Fatal("failed to connect to redis", zap.Error(e))
		}
		zapLogger.Info("connected to redis successfully")
		defer redisClient.Close()
		serviceRepo = repository.NewCachedServiceRepository(redisClient, serviceRepo, appConfig.Redis.CacheTTL, zapLogger)
	}
	resultRepo := repository.NewCheckResultRepository(db)
	incidentRepo := repository.NewIncidentRepository(db)
	maintenanceRepo := repository.NewMaintenanceRepository(db)

	// set up exporters
	publisher := newPublisher(appConfig, zapLogger)
	defer func() {
		if e := publisher.Close(); e != nil {
			zapLogger.Error("failed to close exporters", zap.Error(e))
		}
	}()

	// set up services
	statusService := service.NewStatusService(serviceRepo, resultRepo, incidentRepo, maintenanceRepo, appConfig.Monitor.DefaultTimeoutMs)
	historyService := service.NewHistoryService(serviceRepo, resultRepo)
	incidentService := service.NewIncidentService(incidentRepo)
	maintenanceService := service.NewMaintenanceService(maintenanceRepo, zapLogger)
	mailSender := mail.NewMailSender(appConfig.Mail.Email, appConfig.Mail.Password, appConfig.Mail.Host, appConfig.Mail.Port)
	housekeepingService := service.NewHousekeepingService(serviceRepo, resultRepo, mailSender)

	definitions, err := config.LoadServiceDefinitions(appConfig.Monitor.ServicesFile)
	if err != nil {
		zapLogger.Fatal("failed to load services file", zap.String("path", appConfig.Monitor.ServicesFile), zap.Error(err))
	}
	seedCtx, seedCancel := context.WithTimeout(context.Background(), 30*time.Second)
	err = statusService.RegisterServices(seedCtx, definitions)
	seedCancel()
	if err != nil {
		zapLogger.Fatal("failed to register services", zap.Error(err))
	}
	zapLogger.Info("registered services", zap.Int("count", len(definitions)))

	// start checking
	serviceChecker := checker.NewChecker(checker.NewServiceClient(), resultRepo, publisher, time.Duration(appConfig.Monitor.DefaultTimeoutMs)*time.Millisecond, zapLogger)
	checkScheduler := scheduler.NewCheckScheduler(appConfig.Monitor.CheckInterval(), appConfig.Monitor.MaxCheckResults, zapLogger, serviceRepo, resultRepo, serviceChecker)
	checkScheduler.Start()

	// cron jobs
	cronJob := cron.New()
	_, err = cronJob.AddFunc("@daily", func() {
		ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
		defer cancel()
		deleted, e := housekeepingService.PurgeExpiredResults(ctx, appConfig.Monitor.RetentionDays)
		if e != nil {
			zapLogger.Error("failed to purge expired check results", zap.Error(e))
			return
		}
		zapLogger.Info("purged expired check results", zap.Int64("deleted", deleted))
	})
	if err != nil {
		zapLogger.Fatal("failed to create cron job for retention", zap.Error(err))
	}
	if appConfig.Monitor.MaintenanceAutoTransition {
		_, err = cronJob.AddFunc("@every 1m", func() {
			ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
			defer cancel()
			if _, e := maintenanceService.AutoTransition(ctx); e != nil {
				zapLogger.Error("failed to transition maintenance windows", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for maintenance", zap.Error(err))
		}
	}
	if appConfig.Mail.Host != "" {
		_, err = cronJob.AddFunc(appConfig.Mail.ReportCron, func() {
			ctx, cancel := context.WithTimeout(context.Background(), time.Minute)
			defer cancel()
			zapLogger.Info("sending daily report")
			if e := housekeepingService.SendDailyReport(ctx, appConfig.Mail.AdminMailAddress); e != nil {
				zapLogger.Error("failed to send daily report", zap.Error(e))
			}
		})
		if err != nil {
			zapLogger.Fatal("failed to create cron job for daily report", zap.Error(err))
		}
	}
	cronJob.Start()

	// set up http server
	gin.SetMode(gin.ReleaseMode)
	r := gin.New()
	r.Use(gin.Recovery(), middleware.RequestLogger(zapLogger), middleware.Metrics(), cors.New(newCorsConfig(appConfig.Server.CorsAllowedOrigins)))

	handlerLogger := handler.NewLogger(zapLogger)
	m := middleware.NewAuthMiddleware(appConfig.Server.RequireWriteScope, appConfig.Server.JWTSecret)
	rateLimiter := middleware.NewRateLimiter(appConfig.Server.RateLimitRPS, appConfig.Server.RateLimitBurst)

	routes.AddHealthRoutes(r, handler.NewHealthHandler(startedAt))
	r.GET("/metrics", gin.WrapH(promhttp.Handler()))
	api := r.Group("/api", rateLimiter.Handler())
	routes.AddStatusRoutes(api, handler.NewStatusHandler(handlerLogger, statusService, historyService))
	routes.AddHistoryRoutes(api, handler.NewHistoryHandler(handlerLogger, historyService))
	routes.AddIncidentRoutes(api, handler.NewIncidentHandler(handlerLogger, incidentService), m)
	routes.AddMaintenanceRoutes(api, handler.NewMaintenanceHandler(handlerLogger, maintenanceService), m)

	srv := &http.Server{
		Addr:    fmt.Sprintf(":%s", appConfig.Server.Port),
		Handler: gziphandler.GzipHandler(r),
	}
	go func() {
		zapLogger.Info(fmt.Sprintf("starting server on %s", srv.Addr))
		if e := srv.ListenAndServe(); e != nil && !errors.Is(e, http.ErrServerClosed) {
			zapLogger.Fatal("failed to start server", zap.Error(e))
		}
	}()

	quit := make(chan os.Signal, 1)
	signal.Notify(quit, syscall.SIGINT, syscall.SIGTERM)
	<-quit
	zapLogger.Info("shutting down server...")
	<-cronJob.Stop().Done()
	checkScheduler.Stop()
	ctx, cancel := context.WithTimeout(context.Background(), 30*time.Second)
	defer cancel()
	if err = srv.Shutdown(ctx); err != nil {
		zapLogger.Error("server forced to shutdown", zap.Error(err))
	}
	zapLogger.Info("server exiting")
}

func openDatabase(appConfig config.AppConfig) (*gorm.DB, error) {
	if appConfig.Database.Driver == config.DBDriverPostgres {
		return infra.NewPostgresConnection(infra.PostgresConfig{
			Host:     appConfig.Postgres.Host,
			Port:     appConfig.Postgres.Port,
			User:     appConfig.Postgres.User,
			Password: appConfig.Postgres.Password,
			DBName:   appConfig.Postgres.DBName,
			SSLMode:  appConfig.Postgres.SSLMode,
			MaxConns: appConfig.Postgres.MaxConns,
		})
	}
	return infra.NewSQLiteConnection(infra.SQLiteConfig{Path: appConfig.Database.SQLitePath})
}

// newPublisher builds a publisher for every configured exporter. Enabled backends
// that cannot be reached stop the process.
func newPublisher(appConfig config.AppConfig, zapLogger *zap.Logger) exporter.Publisher {
	var publishers []exporter.Publisher
	if len(appConfig.Kafka.Brokers) > 0 {
		publishers = append(publishers, exporter.NewKafkaPublisher(infra.NewKafkaWriter(appConfig.Kafka.Brokers, appConfig.Kafka.Topic)))
		zapLogger.Info("kafka exporter enabled", zap.Strings("brokers", appConfig.Kafka.Brokers), zap.String("topic", appConfig.Kafka.Topic))
	}
	if len(appConfig.Elasticsearch.Addresses) > 0 {
		esClient, err := infra.NewElasticSearchConnection(infra.ElasticsearchConfig{
			Addresses: appConfig.Elasticsearch.Addresses,
			Username:  appConfig.Elasticsearch.Username,
			Password:  appConfig.Elasticsearch.Password,
		})
		if err != nil {
			zapLogger.Fatal("failed to connect to elasticsearch", zap.Error(err))
		}
		zapLogger.Info("connected to elasticsearch successfully")
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		err = exporter.EnsureCheckResultIndex(ctx, esClient, appConfig.Elasticsearch.Index)
		cancel()
		if err != nil {
			zapLogger.Fatal("failed to create elasticsearch index", zap.String("index", appConfig.Elasticsearch.Index), zap.Error(err))
		}
		publishers = append(publishers, exporter.NewElasticPublisher(esClient, appConfig.Elasticsearch.Index))
	}
	if appConfig.Webhook.URL != "" {
		publishers = append(publishers, exporter.NewWebhookPublisher(appConfig.Webhook.URL, appConfig.Webhook.Timeout, appConfig.Webhook.RatePerMin, appConfig.Webhook.RateBurst))
		zapLogger.Info("webhook exporter enabled")
	}
	return exporter.NewMultiPublisher(publishers...)
}

func newCorsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", "Authorization", middleware.ScopesHeader},
		ExposeHeaders: []string{"Content-Length", "Content-Disposition"},
		MaxAge:        12 * time.Hour,
	}
	if len(origins) == 0 || (len(origins) == 1 && origins[0] == "*") {
		cfg.AllowAllOrigins = true
	} else {
		cfg.AllowOrigins = origins
	}
	return cfg
}
