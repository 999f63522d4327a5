package app

import (
	"fmt"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/campusbook/reservation-backend/internal/api"
	"github.com/campusbook/reservation-backend/internal/auth"
	"github.com/campusbook/reservation-backend/internal/availability"
	"github.com/campusbook/reservation-backend/internal/file"
	"github.com/campusbook/reservation-backend/internal/pkg/storage"
	"github.com/campusbook/reservation-backend/internal/reason"
	"github.com/campusbook/reservation-backend/internal/reservation"
	"github.com/campusbook/reservation-backend/internal/space"
	"github.com/campusbook/reservation-backend/internal/spacetype"
	"github.com/campusbook/reservation-backend/internal/user"
)

// Config holds the dependencies and settings required to start the application.
type Config struct {
	IsProduction       bool
	ProdOrigins        []string
	DBPool             *pgxpool.Pool
	JWTSecret          string
	JWTTTL             time.Duration
	AllowedEmailDomain string
	StoragePath        string
}

// Container holds the initialized components that are needed externally.
type Container struct {
	Router     *gin.Engine
	JWTManager *auth.JWTManager

	UserService         user.Service
	SpaceTypeService    spacetype.Service
	ReasonService       reason.Service
	SpaceService        space.Service
	AvailabilityService availability.Service
}

// NewContainer initializes all modules and returns the container.
func NewContainer(cfg Config) (*Container, error) {
	jwtManager := auth.NewJWTManager(cfg.JWTSecret, cfg.JWTTTL)

	store, err := storage.NewLocalStorage(cfg.StoragePath)
	if err != nil {
		return nil, fmt.Errorf("failed to init storage: %w", err)
	}

	// User module
	userRepo := user.NewPgxRepository(cfg.DBPool)
	userService := user.NewService(userRepo)

	// Space type catalog
	stRepo := spacetype.NewPgxRepository(cfg.DBPool)
	stService := spacetype.NewService(stRepo)

	// Reservation reason catalog
	reasonRepo := reason.NewPgxRepository(cfg.DBPool)
	reasonService := reason.NewService(reasonRepo)

	// Space registry
	spaceRepo := space.NewPgxRepository(cfg.DBPool)
	spaceService := space.NewService(spaceRepo, stService)

	// Availability schedule
	availRepo := availability.NewPgxRepository(cfg.DBPool)
	availService := availability.NewService(availRepo, spaceService)

	// Reservation module
	reservationRepo := reservation.NewPgxRepository(cfg.DBPool)
	reservationService := reservation.NewService(reservationRepo, spaceService, availService, userService)

	// File module (space photos)
	fileRepo := file.NewPgxRepository(cfg.DBPool)
	fileService := file.NewService(fileRepo, store)

	router := api.NewRouter(api.RouterConfig{
		IsProduction:        cfg.IsProduction,
		ProdOrigins:         cfg.ProdOrigins,
		AllowedEmailDomain:  cfg.AllowedEmailDomain,
		UserService:         userService,
		SpaceTypeService:    stService,
		ReasonService:       reasonService,
		SpaceService:        spaceService,
		AvailabilityService: availService,
		ReservationService:  reservationService,
		FileService:         fileService,
		JWTManager:          jwtManager,
	})

	return &Container{
		Router:     router,
		JWTManager: jwtManager,

		UserService:         userService,
		SpaceTypeService:    stService,
		ReasonService:       reasonService,
		SpaceService:        spaceService,
		AvailabilityService: availService,
	}, nil
}
