package server

import (
	"go.uber.org/fx"

	"github.com/LeJxrxm/bg3-planner/internal/server/httpserver"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
)

func Module() fx.Option {
	return fx.Module("server",
		fx.Provide(httpserver.Create),
		fx.Provide(svr.CreateEndpointGroups))
}
