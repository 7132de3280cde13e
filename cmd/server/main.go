package main

import (
	"go.uber.org/fx"

	"github.com/andrasnagy-data/campsite/internal/components/auth"
	"github.com/andrasnagy-data/campsite/internal/components/campsite"
	"github.com/andrasnagy-data/campsite/internal/server"
	"github.com/andrasnagy-data/campsite/internal/shared/config"
	"github.com/andrasnagy-data/campsite/internal/shared/database"
	"github.com/andrasnagy-data/campsite/internal/shared/logging"
	"github.com/andrasnagy-data/campsite/internal/shared/middleware"
)

func main() {
	fx.New(
		fx.Provide(
			config.NewConfig,
			logging.NewLogger,
			database.NewPgxPool,
			server.NewServer,
			server.NewHealthSrvc,
			server.NewHealthHandler,
			auth.NewRepo,
			auth.NewService,
			func(s *auth.Service) middleware.TokenVerifier { return s },
			middleware.NewAuthMiddleware,
			fx.Annotate(auth.NewRouter, fx.ResultTags(`name:"authRouter"`)),
			campsite.NewRepo,
			campsite.NewService,
			fx.Annotate(campsite.NewRouter, fx.ResultTags(`name:"campsiteRouter"`)),
		),
		fx.Invoke(
			database.RunMigrations,
			(*server.Server).Start,
		),
	).Run()
}
