package app

import (
	"fmt"

	"github.com/unionlaw/lawfirm/internal/config"
	"github.com/unionlaw/lawfirm/internal/db"
	"github.com/unionlaw/lawfirm/internal/middleware"
	"github.com/unionlaw/lawfirm/internal/repository"
	"github.com/unionlaw/lawfirm/internal/repository/mongostore"
	"github.com/unionlaw/lawfirm/internal/service"
	"github.com/unionlaw/lawfirm/internal/storage"
)

// DriverMongo selects the document store instead of a SQL database.
const DriverMongo = "mongo"

type App struct {
	Cfg                *config.Config
	Repos              *repository.Repositories
	Storage            storage.Storage
	AuthLimiter        *middleware.RateLimiter
	TokenService       *service.TokenService
	AuthService        *service.AuthService
	UserService        *service.UserService
	EmailService       *service.EmailService
	FileService        *service.FileService
	CaseService        *service.CaseService
	AppointmentService *service.AppointmentService
	VideoService       *service.VideoService
}

func New(cfg *config.Config) (*App, error) {
	repos, err := OpenRepositories(cfg)
	if err != nil {
		return nil, err
	}

	fileStorage, err := storage.New(cfg)
	if err != nil {
		_ = repos.Close()
		return nil, fmt.Errorf("failed to initialize storage: %w", err)
	}

	return Build(cfg, repos, fileStorage), nil
}

// OpenRepositories connects the store selected by DB_DRIVER. SQL stores are migrated on open.
func OpenRepositories(cfg *config.Config) (*repository.Repositories, error) {
	if cfg.DBDriver == DriverMongo {
		store, err := mongostore.NewStore(cfg.MongoURL, cfg.MongoDB)
		if err != nil {
			return nil, fmt.Errorf("failed to initialize mongo: %w", err)
		}
		return store.Repositories(), nil
	}

	database, err := db.Init(cfg.DBDriver, cfg.DBConnection)
	if err != nil {
		return nil, fmt.Errorf("failed to initialize database: %w", err)
	}

	err = db.RunMigrations(database.DB, cfg.DBDriver)
	if err != nil {
		_ = database.Close()
		return nil, fmt.Errorf("failed to run migrations: %w", err)
	}

	return repository.NewRepositories(database), nil
}

// Build wires the services on top of already opened repositories and storage.
func Build(cfg *config.Config, repos *repository.Repositories, fileStorage storage.Storage) *App {
	emailService := service.NewEmailService(
		cfg.ResendAPIKey,
		cfg.EmailFrom,
		cfg.AppURL,
		cfg.AppName,
		cfg.IsDevelopment(),
	)
	fileService := service.NewFileService(fileStorage)
	tokenService := service.NewTokenService(cfg.JWTSecret, cfg.JWTExpiry)

	return &App{
		Cfg:                cfg,
		Repos:              repos,
		Storage:            fileStorage,
		AuthLimiter:        middleware.NewRateLimiter(cfg.AuthRateLimit, cfg.AuthRateWindow),
		TokenService:       tokenService,
		AuthService:        service.NewAuthService(repos.Users, tokenService, emailService),
		UserService:        service.NewUserService(repos.Users),
		EmailService:       emailService,
		FileService:        fileService,
		CaseService:        service.NewCaseService(repos.Cases, repos.Users, fileService, emailService),
		AppointmentService: service.NewAppointmentService(repos.Appointments, cfg.ConsultationFee),
		VideoService:       service.NewVideoService(repos.Videos),
	}
}

// Close stops background work and releases the store.
func (a *App) Close() error {
	if a.AuthLimiter != nil {
		a.AuthLimiter.Stop()
	}
	if a.Repos != nil {
		return a.Repos.Close()
	}
	return nil
}
