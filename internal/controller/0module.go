package controller

import (
	"go.uber.org/fx"

	controllerapi "github.com/LeJxrxm/bg3-planner/internal/controller/api"
	controllermeta "github.com/LeJxrxm/bg3-planner/internal/controller/meta"
)

func Module() fx.Option {
	return fx.Module("controller",
		controllerapi.Module(),
		controllermeta.Module(),
	)
}
