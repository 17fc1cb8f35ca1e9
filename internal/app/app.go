package app

import (
	"context"
	"fmt"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"

	"github.com/fsdevblog/tagmark/internal/config"
	"github.com/fsdevblog/tagmark/internal/controllers"
	"github.com/fsdevblog/tagmark/internal/db"
	"github.com/fsdevblog/tagmark/internal/services"
)

type App struct {
	config     config.Config
	dbServices *services.Services
	Logger     *logrus.Logger
}

func New(conf config.Config) (*App, error) {
	dbServices, servicesErr := initServices(conf)
	if servicesErr != nil {
		return nil, fmt.Errorf("init services: %w", servicesErr)
	}

	return &App{
		config:     conf,
		dbServices: dbServices,
		Logger:     conf.Logger,
	}, nil
}

// Must вызывает панику если произошла ошибка.
func Must(a *App, err error) *App {
	if err != nil {
		panic(err)
	}
	return a
}

// Run запускает web сервер.
func (a *App) Run() error {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	errChan := make(chan error, 1)

	server := controllers.SetupRouter(controllers.RouterParams{
		URLService:     a.dbServices.URLService,
		SnippetService: a.dbServices.SnippetService,
		TagService:     a.dbServices.TagService,
		ViewsService:   a.dbServices.ViewsService,
		PingService:    a.dbServices.PingService,
		IndexResponse:  a.config.IndexResponse,
		Logger:         a.Logger,
	})

	go func() {
		if err := server.Run(a.config.ServerAddress); err != nil {
			errChan <- err
		}
	}()

	var serverErr error
	select {
	case <-ctx.Done():
		a.Logger.Info("Shutdown command received")
	case serverErr = <-errChan:
		a.Logger.WithError(serverErr).Error("router error")
	}

	return serverErr
}

// initServices создает подключение к базе данных и возвращает сервисный слой
// приложения. Схема мигрируется при подключении.
func initServices(appConf config.Config) (*services.Services, error) {
	conn, connErr := db.NewConnection(db.FactoryConfig{
		StorageType:  whatIsStorageType(&appConf),
		PostgresDSN:  appConf.DatabaseDSN,
		SQLiteDBPath: appConf.SQLiteDBPath,
	})
	if connErr != nil {
		return nil, connErr //nolint:wrapcheck
	}

	return services.Factory(conn, appConf.Logger), nil
}

func whatIsStorageType(appConf *config.Config) db.StorageType {
	if appConf.DatabaseDSN != "" {
		return db.StorageTypePostgres
	}
	return db.StorageTypeSQLite
}
