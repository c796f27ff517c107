package main

import (
	"context"
	"errors"
	"net/http"
	"os/signal"
	"syscall"
	"time"

	"github.com/labstack/echo/v4"
	"go.uber.org/zap"
	"gorm.io/gorm"

	"cropcast/config"
	"cropcast/database"
	"cropcast/logger"
	"cropcast/pkg/ai"
	"cropcast/pkg/auth"
	"cropcast/pkg/climate"
	"cropcast/pkg/export"
	"cropcast/pkg/metrics"
	"cropcast/router"

	// Auth + Profile
	authCtrlImp "cropcast/pkg/auth/controllerImp"
	profileCtrlImp "cropcast/pkg/profile/controllerImp"
	profileRepoImp "cropcast/pkg/profile/repositoryImp"
	profileSvcImp "cropcast/pkg/profile/serviceImp"

	// Farm / Field / Crop / Reminder
	cropCtrlImp "cropcast/pkg/crop/controllerImp"
	cropRepoImp "cropcast/pkg/crop/repositoryImp"
	cropSvcImp "cropcast/pkg/crop/serviceImp"
	farmCtrlImp "cropcast/pkg/farm/controllerImp"
	farmRepoImp "cropcast/pkg/farm/repositoryImp"
	farmSvcImp "cropcast/pkg/farm/serviceImp"
	fieldCtrlImp "cropcast/pkg/field/controllerImp"
	fieldRepoImp "cropcast/pkg/field/repositoryImp"
	fieldSvcImp "cropcast/pkg/field/serviceImp"
	reminderCtrlImp "cropcast/pkg/reminder/controllerImp"
	reminderRepoImp "cropcast/pkg/reminder/repositoryImp"
	reminderSvcImp "cropcast/pkg/reminder/serviceImp"

	// AI workflows
	chatCtrlImp "cropcast/pkg/chat/controllerImp"
	chatRepoImp "cropcast/pkg/chat/repositoryImp"
	chatSvcImp "cropcast/pkg/chat/serviceImp"
	recCtrlImp "cropcast/pkg/recommend/controllerImp"
	recRepoImp "cropcast/pkg/recommend/repositoryImp"
	recSvcImp "cropcast/pkg/recommend/serviceImp"

	// Dashboard, export, health
	advisoryCtrlImp "cropcast/pkg/advisory/controllerImp"
	advisoryRepoImp "cropcast/pkg/advisory/repositoryImp"
	dashCtrlImp "cropcast/pkg/dashboard/controllerImp"
	dashSvcImp "cropcast/pkg/dashboard/serviceImp"
	exportCtrlImp "cropcast/pkg/export/controllerImp"
	healthCtrlImp "cropcast/pkg/health/controllerImp"
)

var version = "dev"

func main() {
	// 1) Config + logger
	cfg := config.Load()
	defer logger.Sync()

	// 2) DB (sqlite) + automigrate
	db, err := database.OpenSQLite(cfg.DBPath)
	if err != nil {
		logger.Fatal("open database", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	// 3) Oracles
	llm, err := newGenerator(ctx, cfg)
	if err != nil {
		logger.Fatal("generator", zap.Error(err))
	}
	weather := climate.NewOpenWeather(cfg.WeatherBaseURL, cfg.WeatherAPIKey)

	// 4) Echo
	e := newServer(cfg, db, llm, weather)

	go func() {
		logger.Info("listening", zap.String("port", cfg.Port), zap.String("version", version))
		if err := e.Start(":" + cfg.Port); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Fatal("server", zap.Error(err))
		}
	}()

	<-ctx.Done()
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := e.Shutdown(shutdownCtx); err != nil {
		logger.Error("shutdown", zap.Error(err))
	}
}

func newGenerator(ctx context.Context, cfg config.AppConfig) (ai.Client, error) {
	if cfg.AIProvider == "mock" {
		logger.Warn("using mock generator")
		return ai.NewMock(), nil
	}
	if cfg.GoogleAIAPIKey == "" {
		logger.Warn("GOOGLE_AI_API_KEY not set; AI endpoints will answer with a configuration error")
	}
	return ai.NewGemini(ctx, cfg.GoogleAIAPIKey, cfg.GenModel, cfg.GenBaseURL)
}

func newServer(cfg config.AppConfig, db *gorm.DB, llm ai.Client, weather climate.Oracle) *echo.Echo {
	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	issuer := auth.NewIssuer(cfg.JWTSecret, cfg.TokenTTL)

	// Repos
	profileRepo := profileRepoImp.New(db)
	farmRepo := farmRepoImp.New(db)
	fieldRepo := fieldRepoImp.New(db)
	cropRepo := cropRepoImp.New(db)
	reminderRepo := reminderRepoImp.New(db)
	recRepo := recRepoImp.New(db)
	chatRepo := chatRepoImp.New(db)
	advisoryRepo := advisoryRepoImp.New(db)

	// Services
	profileSvc := profileSvcImp.NewProfileService(profileRepo)
	farmSvc := farmSvcImp.NewFarmService(farmRepo)
	fieldSvc := fieldSvcImp.NewFieldService(fieldRepo, farmRepo)
	cropSvc := cropSvcImp.NewCropService(cropRepo, farmRepo)
	reminderSvc := reminderSvcImp.NewReminderService(reminderRepo)
	recSvc := recSvcImp.NewRecommendService(recRepo, fieldRepo, weather, llm)
	chatSvc := chatSvcImp.NewChatService(chatRepo, llm)
	dashSvc := dashSvcImp.NewDashboardService(profileRepo, farmRepo, cropRepo, advisoryRepo)

	generatorSet := cfg.AIProvider == "mock" || cfg.GoogleAIAPIKey != ""

	return router.New(e, issuer, cfg.EnableDevLogin, router.Handlers{
		Auth:      authCtrlImp.NewAuthController(profileSvc, issuer),
		Profile:   profileCtrlImp.New(profileSvc),
		Farm:      farmCtrlImp.New(farmSvc),
		Field:     fieldCtrlImp.New(fieldSvc),
		Crop:      cropCtrlImp.New(cropSvc),
		Reminder:  reminderCtrlImp.New(reminderSvc),
		Recommend: recCtrlImp.New(recSvc),
		Chat:      chatCtrlImp.New(chatSvc),
		Dashboard: dashCtrlImp.New(dashSvc),
		Advisory:  advisoryCtrlImp.New(advisoryRepo),
		Export:    exportCtrlImp.New(export.NewReporter(farmRepo, fieldRepo, cropRepo, recRepo)),
		Health:    healthCtrlImp.NewHealthCtrl(db, generatorSet, version),
		Metrics:   metrics.Handler(),
	})
}
