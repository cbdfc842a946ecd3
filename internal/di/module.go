package di

import (
	"github.com/quickbite/quickbite/internal/adapter/payment"
	"github.com/quickbite/quickbite/internal/app"
	"github.com/quickbite/quickbite/internal/config"
	"github.com/quickbite/quickbite/internal/logger"
	"github.com/quickbite/quickbite/internal/pkg/auth"
	"github.com/quickbite/quickbite/internal/server/http/router"
	"github.com/quickbite/quickbite/internal/storage/postgres"
	"github.com/quickbite/quickbite/internal/usecase"
	"go.uber.org/fx"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		postgres.Module,
		payment.Module,
		usecase.Module,
		fx.Provide(func(s *postgres.Storage) app.HealthChecker { return s }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
