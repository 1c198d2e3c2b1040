package handler

import (
	"net/http"

	"pousada-booking/internal/handler/api"
	"pousada-booking/internal/handler/middleware"
	"pousada-booking/internal/handler/validation"
	"pousada-booking/internal/pkg/config"

	"github.com/gin-gonic/gin"
	swaggerFiles "github.com/swaggo/files"
	ginSwagger "github.com/swaggo/gin-swagger"
)

type route struct {
	Method  string
	Path    string
	Handler gin.HandlerFunc
	Mw      []gin.HandlerFunc
}

// Handlers groups everything the router mounts.
type Handlers struct {
	Availability *api.AvailabilityHandler
	Reservation  *api.ReservationHandler
	ManualBlock  *api.ManualBlockHandler
	Auth         *middleware.AuthMiddleware
}

func NewRouter(engine *gin.Engine, cfg config.Config, h Handlers) error {
	if err := validation.Register(); err != nil {
		return err
	}
	setupMiddleware(engine, cfg)
	setupRoutes(engine, h)
	return nil
}

func setupMiddleware(engine *gin.Engine, cfg config.Config) {
	// Recovery must be first (outermost) to catch panics from all other middleware
	engine.Use(middleware.CustomRecovery())
	engine.Use(middleware.NewCORSMiddleware(cfg.CORS))
	engine.Use(middleware.LoggingMiddleware(nil, cfg.Log))
	engine.Use(middleware.ErrorHandler())
}

func setupRoutes(engine *gin.Engine, h Handlers) {
	engine.GET("/health", healthCheck)

	if gin.Mode() == gin.DebugMode {
		engine.GET("/swagger/*any", ginSwagger.WrapHandler(swaggerFiles.Handler))
	}

	apiGroup := engine.Group("/api")
	{
		accommodations := apiGroup.Group("/accommodations/:id")
		addRoutes(accommodations, []route{
			{Method: http.MethodGet, Path: "/availability", Handler: h.Availability.Calendar},
			{Method: http.MethodGet, Path: "/check-in-times", Handler: h.Availability.CheckInTimes},
			{Method: http.MethodPost, Path: "/quote", Handler: h.Availability.Quote},
		})

		addRoutes(apiGroup, []route{
			{Method: http.MethodPost, Path: "/reservations", Handler: h.Reservation.Create},
		})

		admin := apiGroup.Group("/admin")
		admin.Use(h.Auth.RequireAdmin())
		{
			addRoutes(admin.Group("/reservations"), []route{
				{Method: http.MethodGet, Path: "", Handler: h.Reservation.List},
				{Method: http.MethodGet, Path: "/:id", Handler: h.Reservation.Get},
				{Method: http.MethodPatch, Path: "/:id/status", Handler: h.Reservation.UpdateStatus},
			})
			addRoutes(admin.Group("/manual-blocks"), []route{
				{Method: http.MethodPost, Path: "", Handler: h.ManualBlock.Create},
				{Method: http.MethodGet, Path: "", Handler: h.ManualBlock.List},
				{Method: http.MethodDelete, Path: "/:id", Handler: h.ManualBlock.Delete},
			})
		}
	}
}

// @Summary Health check
// @Description Check if the service is healthy
// @Tags health
// @Produce json
// @Success 200 {object} map[string]string
// @Router /health [get]
func healthCheck(c *gin.Context) {
	c.JSON(http.StatusOK, gin.H{
		"status":  "ok",
		"message": "Service is healthy",
	})
}

func addRoutes(g *gin.RouterGroup, rs []route) {
	for _, r := range rs {
		h := r.Handler
		if len(r.Mw) > 0 {
			h = chainHandlers(append(r.Mw, r.Handler)...)
		}
		switch r.Method {
		case http.MethodGet:
			g.GET(r.Path, h)
		case http.MethodPost:
			g.POST(r.Path, h)
		case http.MethodPut:
			g.PUT(r.Path, h)
		case http.MethodPatch:
			g.PATCH(r.Path, h)
		case http.MethodDelete:
			g.DELETE(r.Path, h)
		default:
			g.Any(r.Path, h)
		}
	}
}

func chainHandlers(hs ...gin.HandlerFunc) gin.HandlerFunc {
	return func(c *gin.Context) {
		for _, h := range hs {
			h(c)
			if c.IsAborted() {
				return
			}
		}
	}
}
