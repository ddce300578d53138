package wire

import (
	"sync"

	"consignment-server/cmd/config"
	authUsecases "consignment-server/internal/auth/usecases"
	"consignment-server/internal/infra/httpserver"
	"consignment-server/internal/infra/render"
	"consignment-server/internal/infra/sql"
)

var (
	databaseOnce     sync.Once
	databaseInstance *sql.DB
	healthChecker    httpserver.HealthChecker

	rendererOnce     sync.Once
	rendererInstance *render.TemplateRenderer
	rendererErr      error
)

func provideAppConfig() config.AppConfig {
	return config.LoadConfig()
}

// provideDatabase opens the store once per process so that every injector
// shares it. The local environment runs on a private in-memory sqlite database.
func provideDatabase(config config.AppConfig) sql.ORM {
	databaseOnce.Do(func() {
		opts := sql.Options{
			LogLevel:     config.Database.LogLevel,
			QueryTimeout: config.Database.QueryTimeout,
		}

		if config.IsLocal() {
			orm, err := sql.NewMemoryORM(opts)
			if err != nil {
				panic(err)
			}
			databaseInstance = orm
			healthChecker = orm
			return
		}

		if config.Database.URL != "" {
			db := sql.NewPosgreDatabase(config.Database.URL)
			if err := db.Open(); err != nil {
				panic(err)
			}
			healthChecker = db
		}

		orm, err := sql.NewPosgreORM(config.Database.DSN, opts)
		if err != nil {
			panic(err)
		}
		databaseInstance = orm
		if healthChecker == nil {
			healthChecker = orm
		}
	})

	return databaseInstance
}

func provideHealthChecker(config config.AppConfig) httpserver.HealthChecker {
	provideDatabase(config)
	return healthChecker
}

func provideRenderer() (*render.TemplateRenderer, error) {
	rendererOnce.Do(func() {
		rendererInstance, rendererErr = render.NewTemplateRenderer()
	})

	return rendererInstance, rendererErr
}

func provideAuthConfig(config config.AppConfig) authUsecases.AuthConfig {
	return authUsecases.AuthConfig{
		Secret:     []byte(config.Auth.JWTSecret),
		SessionTTL: config.Auth.SessionTTL,
	}
}
