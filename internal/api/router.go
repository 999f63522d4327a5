package api

import (
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"github.com/campusbook/reservation-backend/internal/auth"
	"github.com/campusbook/reservation-backend/internal/availability"
	availabilityHttp "github.com/campusbook/reservation-backend/internal/availability/http"
	"github.com/campusbook/reservation-backend/internal/file"
	fileHttp "github.com/campusbook/reservation-backend/internal/file/http"
	"github.com/campusbook/reservation-backend/internal/reason"
	reasonHttp "github.com/campusbook/reservation-backend/internal/reason/http"
	"github.com/campusbook/reservation-backend/internal/reservation"
	reservationHttp "github.com/campusbook/reservation-backend/internal/reservation/http"
	"github.com/campusbook/reservation-backend/internal/space"
	spaceHttp "github.com/campusbook/reservation-backend/internal/space/http"
	"github.com/campusbook/reservation-backend/internal/spacetype"
	spacetypeHttp "github.com/campusbook/reservation-backend/internal/spacetype/http"
	"github.com/campusbook/reservation-backend/internal/user"
	userHttp "github.com/campusbook/reservation-backend/internal/user/http"
)

// RouterConfig carries everything NewRouter needs to assemble the engine.
type RouterConfig struct {
	IsProduction       bool
	ProdOrigins        []string
	AllowedEmailDomain string

	UserService         user.Service
	SpaceTypeService    spacetype.Service
	ReasonService       reason.Service
	SpaceService        space.Service
	AvailabilityService availability.Service
	ReservationService  reservation.Service
	FileService         file.Service

	JWTManager *auth.JWTManager
}

// NewRouter assembles middleware (CORS, Logger, Recovery, Auth) and
// registers every module's routes under /v1.
func NewRouter(cfg RouterConfig) *gin.Engine {
	if cfg.IsProduction {
		gin.SetMode(gin.ReleaseMode)
	}

	r := gin.New()
	r.Use(gin.Logger(), gin.Recovery())

	corsConfig := cors.DefaultConfig()
	if cfg.IsProduction {
		corsConfig.AllowOrigins = cfg.ProdOrigins
	} else {
		corsConfig.AllowAllOrigins = true
	}
	corsConfig.AllowMethods = []string{"GET", "POST", "PUT", "PATCH", "DELETE", "OPTIONS"}
	corsConfig.AllowHeaders = []string{"Origin", "Content-Type", "Authorization"}
	r.Use(cors.New(corsConfig))

	authMiddleware := auth.AuthRequired(cfg.JWTManager)
	adminMiddleware := RequireAdmin(cfg.UserService)

	authHandler := NewAuthHandler(cfg.UserService, cfg.JWTManager, cfg.AllowedEmailDomain)
	userHandler := userHttp.NewHandler(cfg.UserService)
	spaceTypeHandler := spacetypeHttp.NewHandler(cfg.SpaceTypeService)
	reasonHandler := reasonHttp.NewHandler(cfg.ReasonService)
	spaceHandler := spaceHttp.NewHandler(cfg.SpaceService, cfg.FileService)
	availabilityHandler := availabilityHttp.NewHandler(cfg.AvailabilityService)
	reservationHandler := reservationHttp.NewHandler(cfg.ReservationService, cfg.UserService)
	fileHandler := fileHttp.NewHandler(cfg.FileService)

	v1 := r.Group("/v1")
	{
		v1.POST("/auth/google", authHandler.GoogleLogin)
		v1.GET("/auth/me", authMiddleware, authHandler.Me)

		userHttp.RegisterRoutes(v1, userHandler, authMiddleware, adminMiddleware)
		spacetypeHttp.RegisterRoutes(v1, spaceTypeHandler, authMiddleware, adminMiddleware)
		reasonHttp.RegisterRoutes(v1, reasonHandler, authMiddleware, adminMiddleware)
		spaceHttp.RegisterRoutes(v1, spaceHandler, authMiddleware, adminMiddleware)
		availabilityHttp.RegisterRoutes(v1, availabilityHandler, authMiddleware, adminMiddleware)
		reservationHttp.RegisterRoutes(v1, reservationHandler, authMiddleware, adminMiddleware)
		fileHttp.RegisterRoutes(v1, fileHandler)
	}

	return r
}
