package config

import (
	"fmt"
	"os"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
	"github.com/jmoiron/sqlx"
	"github.com/sirupsen/logrus"

	"FintrackGolang/database/postgres"
	automationHandler "FintrackGolang/internal/api/automation/handler"
	automationRepository "FintrackGolang/internal/api/automation/repository"
	automationService "FintrackGolang/internal/api/automation/service"
	recurringHandler "FintrackGolang/internal/api/recurring/handler"
	recurringRepository "FintrackGolang/internal/api/recurring/repository"
	recurringService "FintrackGolang/internal/api/recurring/service"
	transactionHandler "FintrackGolang/internal/api/transaction/handler"
	transactionRepository "FintrackGolang/internal/api/transaction/repository"
	transactionService "FintrackGolang/internal/api/transaction/service"
	"FintrackGolang/internal/middleware"
	"FintrackGolang/pkg/redis"
	"FintrackGolang/pkg/utils"
)

type ServerOption func(*Server) error

type Server struct {
	engine      *fiber.App
	db          *sqlx.DB
	log         *logrus.Logger
	middleware  middleware.Middleware
	validator   *validator.Validate
	utils       utils.IUtils
	redisServer redis.IRedis
	handlers    []handler
}

type handler interface {
	Start(srv fiber.Router)
}

func NewServer(options ...ServerOption) (*Server, error) {
	server := &Server{}

	for _, option := range options {
		if err := option(server); err != nil {
			return nil, fmt.Errorf("failed to apply option: %w", err)
		}
	}

	if server.engine == nil {
		return nil, fmt.Errorf("fiber app is required")
	}
	if server.log == nil {
		return nil, fmt.Errorf("logger is required")
	}

	return server, nil
}

func WithFiber(fiberApp *fiber.App) ServerOption {
	return func(s *Server) error {
		s.engine = fiberApp
		return nil
	}
}

func WithLogger(logger *logrus.Logger) ServerOption {
	return func(s *Server) error {
		s.log = logger
		return nil
	}
}

func WithValidator(validator *validator.Validate) ServerOption {
	return func(s *Server) error {
		s.validator = validator
		return nil
	}
}

func WithDatabase() ServerOption {
	return func(s *Server) error {
		db, err := postgres.New()
		if err != nil {
			if s.log != nil {
				s.log.Errorf("Failed to connect to database: %v", err)
			}
			return fmt.Errorf("failed to create database connection: %w", err)
		}
		s.db = db
		return nil
	}
}

func WithRedisServer(redisServer redis.IRedis) ServerOption {
	return func(s *Server) error {
		s.redisServer = redisServer
		return nil
	}
}

func WithMiddleware() ServerOption {
	return func(s *Server) error {
		if s.log == nil {
			return fmt.Errorf("logger must be initialized before middleware")
		}
		s.middleware = middleware.New(s.log)
		return nil
	}
}

func WithUtils() ServerOption {
	return func(s *Server) error {
		s.utils = utils.New()
		return nil
	}
}

func (s *Server) RegisterHandler() {
	// Transactions Domain
	transactionRepo := transactionRepository.New(s.db, s.log)
	transactionServices := transactionService.NewTransactionService(s.log, transactionRepo)
	transactionHandlers := transactionHandler.New(s.log, s.validator, s.middleware, transactionServices)

	// Automation Rules Domain
	automationRepo := automationRepository.New(s.db, s.log)
	automationServices := automationService.NewAutomationService(s.log, automationRepo, transactionRepo, s.utils)
	automationHandlers := automationHandler.New(s.log, s.validator, s.middleware, automationServices)

	// Recurring Domain
	recurringRepo := recurringRepository.New(s.db, s.log)
	recurringServices := recurringService.NewRecurringService(s.log, recurringRepo, transactionRepo, s.redisServer, s.utils)
	recurringHandlers := recurringHandler.New(s.log, s.validator, s.middleware, recurringServices)

	s.setupHealthCheck()
	s.handlers = append(s.handlers, transactionHandlers, automationHandlers, recurringHandlers)
}

func (s *Server) Run() error {
	s.engine.Use(s.middleware.NewRequestIDMiddleware())
	s.engine.Use(middleware.LoggerConfig())
	s.engine.Use(s.middleware.NewRateLimiter)

	router := s.engine.Group("/api/v1")

	for _, h := range s.handlers {
		h.Start(router)
	}

	port := os.Getenv("APP_PORT")
	if port == "" {
		port = "3000"
	}

	return s.engine.Listen(fmt.Sprintf(":%s", port))
}

func (s *Server) setupHealthCheck() {
	s.engine.Get("/", func(ctx *fiber.Ctx) error {
		return ctx.JSON(fiber.Map{
			"message": "Server is Healthy!",
		})
	})
}
