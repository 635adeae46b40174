// internal/app/server.go
package app

import (
	"context"
	"log"

	"fleetrent-service/internal/config"
	adminHandler "fleetrent-service/internal/handlers/admin"
	authHandler "fleetrent-service/internal/handlers/auth"
	rentalHandler "fleetrent-service/internal/handlers/rental"
	vehicleHandler "fleetrent-service/internal/handlers/vehicle"
	wsHandler "fleetrent-service/internal/handlers/websocket"
	"fleetrent-service/internal/middleware"
	"fleetrent-service/internal/pkg/jwt"
	"fleetrent-service/internal/repository/memory"
	authUsecase "fleetrent-service/internal/service/auth"
	rentalUsecase "fleetrent-service/internal/service/rental"
	vehicleUsecase "fleetrent-service/internal/service/vehicle"
	"fleetrent-service/internal/websocket"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

type Server struct {
	cfg    config.AppConfig
	engine *gin.Engine
	logger *zap.Logger
}

func NewServer() *Server {
	cfg := config.Load()
	gin.SetMode(cfg.GinMode)
	engine := gin.New()
	return &Server{cfg: cfg, engine: engine}
}

func (s *Server) Start() error {
	// ----- Logger -----
	level, err := zap.ParseAtomicLevel(s.cfg.LogLevel)
	if err != nil {
		level = zap.NewAtomicLevelAt(zap.InfoLevel)
	}
	logCfg := zap.NewProductionConfig()
	logCfg.Level = level
	logger, err := logCfg.Build()
	if err != nil {
		return err
	}
	defer logger.Sync()
	s.logger = logger

	// ----- In-memory state -----
	// One directory, registry, and ledger for the process lifetime. All
	// mutations go through the serialized API group, so the stores stay
	// lock-free.
	directory := memory.NewDirectory()
	registry := memory.NewRegistry()
	ledger := memory.NewLedger(registry)

	// ----- JWT Manager -----
	jwtManager := jwt.NewManager(s.cfg.JWT)

	// ----- WebSocket Hub -----
	hub := websocket.NewHub(logger)
	go hub.Run(context.Background())

	// A fleet or ledger mutation fans out to every connected dashboard.
	registry.Subscribe(hub.NotifyVehiclesChanged)
	ledger.Subscribe(hub.NotifyRentalsChanged)

	// ----- Services (Usecases) -----
	authService := authUsecase.NewAuthService(directory, jwtManager, logger)
	vehicleService := vehicleUsecase.NewVehicleService(registry, ledger, logger)
	rentalService := rentalUsecase.NewRentalService(ledger, registry, logger)

	// ----- Handlers -----
	authHandlerInst := authHandler.NewAuthHandler(authService, logger)
	vehicleHandlerInst := vehicleHandler.NewVehicleHandler(vehicleService, logger)
	rentalHandlerInst := rentalHandler.NewRentalHandler(rentalService, logger)
	adminHandlerInst := adminHandler.NewAdminHandler(authService, vehicleService, rentalService, logger)
	wsHandlerInst := wsHandler.NewWebSocketHandler(hub, authService, logger)

	// ----- Middlewares -----
	authMiddleware := middleware.NewAuthMiddleware(authService)

	s.engine.Use(
		middleware.RecoveryMiddleware(logger),
		middleware.LoggingMiddleware(logger),
		middleware.CORSMiddleware(),
	)

	// ----- Router -----
	handlers := &Handlers{
		AuthHandler:    authHandlerInst,
		VehicleHandler: vehicleHandlerInst,
		RentalHandler:  rentalHandlerInst,
		AdminHandler:   adminHandlerInst,
		WSHandler:      wsHandlerInst,
		AuthMiddleware: authMiddleware,
	}
	SetupRouter(s.engine, logger, handlers)

	// ----- Start HTTP -----
	log.Printf("server running on %s", s.cfg.HTTPAddr)
	return s.engine.Run(s.cfg.HTTPAddr)
}
