package router

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	echoMiddleware "github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"cropcast/logger"
	"cropcast/pkg/middleware"
)

type crud interface {
	List(echo.Context) error
	Create(echo.Context) error
	Patch(echo.Context) error
	Delete(echo.Context) error
}

// Handlers groups every controller the API mounts.
type Handlers struct {
	Auth interface {
		DevLogin(echo.Context) error
		WhoAmI(echo.Context) error
	}
	Profile interface {
		Get(echo.Context) error
		Update(echo.Context) error
	}
	Farm interface {
		crud
		Get(echo.Context) error
	}
	Field interface {
		crud
		Get(echo.Context) error
	}
	Crop     crud
	Reminder crud
	Recommend interface {
		Generate(echo.Context) error
		History(echo.Context) error
	}
	Chat interface {
		Send(echo.Context) error
		History(echo.Context) error
	}
	Dashboard interface {
		Dashboard(echo.Context) error
		Weather(echo.Context) error
	}
	Advisory interface {
		List(echo.Context) error
		Create(echo.Context) error
	}
	Export interface {
		Farm(echo.Context) error
	}
	Health  interface{ Health(echo.Context) error }
	Metrics echo.HandlerFunc
}

func New(e *echo.Echo, verifier middleware.TokenVerifier, devLogin bool, h Handlers) *echo.Echo {
	e.Use(echoMiddleware.Recover())
	e.Use(echoMiddleware.CORSWithConfig(echoMiddleware.CORSConfig{
		AllowOrigins: []string{"*"},
		AllowMethods: []string{http.MethodGet, http.MethodPost, http.MethodPut, http.MethodPatch, http.MethodDelete, http.MethodOptions},
		AllowHeaders: []string{"Content-Type", "Authorization", "X-Client-Info", "Apikey"},
	}))
	e.Use(requestLogger())

	e.GET("/health", h.Health.Health)
	if h.Metrics != nil {
		e.GET("/metrics", h.Metrics)
	}
	if devLogin {
		e.POST("/auth/token", h.Auth.DevLogin)
	}

	api := e.Group("", middleware.Bearer(verifier))

	api.GET("/auth/user", h.Auth.WhoAmI)
	api.GET("/profile", h.Profile.Get)
	api.PUT("/profile", h.Profile.Update)

	api.GET("/farms", h.Farm.List)
	api.POST("/farms", h.Farm.Create)
	api.GET("/farms/:id", h.Farm.Get)
	api.PATCH("/farms/:id", h.Farm.Patch)
	api.DELETE("/farms/:id", h.Farm.Delete)
	api.GET("/farms/:id/export", h.Export.Farm)

	api.GET("/farms/:id/fields", h.Field.List)
	api.POST("/farms/:id/fields", h.Field.Create)
	api.GET("/fields/:id", h.Field.Get)
	api.PATCH("/fields/:id", h.Field.Patch)
	api.DELETE("/fields/:id", h.Field.Delete)
	api.GET("/fields/:id/recommendations", h.Recommend.History)

	api.GET("/farms/:id/crops", h.Crop.List)
	api.POST("/farms/:id/crops", h.Crop.Create)
	api.PATCH("/crops/:id", h.Crop.Patch)
	api.DELETE("/crops/:id", h.Crop.Delete)

	api.GET("/reminders", h.Reminder.List)
	api.POST("/reminders", h.Reminder.Create)
	api.PATCH("/reminders/:id", h.Reminder.Patch)
	api.DELETE("/reminders/:id", h.Reminder.Delete)

	api.POST("/functions/v1/crop-recommendation", h.Recommend.Generate)
	api.POST("/functions/v1/cropcast-chat", h.Chat.Send)
	api.GET("/chat/messages", h.Chat.History)

	api.GET("/dashboard", h.Dashboard.Dashboard)
	api.GET("/weather", h.Dashboard.Weather)
	api.GET("/recommendations", h.Advisory.List)
	api.POST("/recommendations", h.Advisory.Create)

	return e
}

func requestLogger() echo.MiddlewareFunc {
	return echoMiddleware.RequestLoggerWithConfig(echoMiddleware.RequestLoggerConfig{
		LogMethod:    true,
		LogURI:       true,
		LogStatus:    true,
		LogLatency:   true,
		LogError:     true,
		HandleError:  true,
		LogRemoteIP:  true,
		LogRequestID: true,
		LogValuesFunc: func(c echo.Context, v echoMiddleware.RequestLoggerValues) error {
			fields := []zap.Field{
				zap.String("method", v.Method),
				zap.String("uri", v.URI),
				zap.Int("status", v.Status),
				zap.Duration("latency", v.Latency.Round(time.Microsecond)),
				zap.String("remote_ip", v.RemoteIP),
			}
			if uid := middleware.UserID(c); uid != "" {
				fields = append(fields, zap.String("uid", uid))
			}
			if v.Error != nil {
				logger.Warn("request", append(fields, zap.Error(v.Error))...)
				return nil
			}
			logger.Info("request", fields...)
			return nil
		},
	})
}
