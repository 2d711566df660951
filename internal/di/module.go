package di

import (
	"go.uber.org/fx"

	"github.com/avoandes/avomarket/internal/app"
	"github.com/avoandes/avomarket/internal/config"
	"github.com/avoandes/avomarket/internal/letter"
	"github.com/avoandes/avomarket/internal/logger"
	"github.com/avoandes/avomarket/internal/pkg/auth"
	"github.com/avoandes/avomarket/internal/server/http/handlers"
	"github.com/avoandes/avomarket/internal/server/http/router"
	"github.com/avoandes/avomarket/internal/storage/memstore"
	"github.com/avoandes/avomarket/internal/usecase"
)

func Module(opts ...fx.Option) fx.Option {
	modules := []fx.Option{
		config.Module,
		logger.Module,
		auth.Module,
		memstore.Module,
		letter.Module,
		usecase.Module,
		fx.Provide(func(f *app.MarketFacade) handlers.MarketFacade { return f }),
		router.Module,
		app.Module,
	}
	modules = append(modules, opts...)
	return fx.Options(modules...)
}
