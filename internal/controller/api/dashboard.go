package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
)

type Dashboard struct {
	DashboardService *service.Dashboard
}

func RegisterDashboard(api *svr.API, dashboardService *service.Dashboard) {
	c := &Dashboard{
		DashboardService: dashboardService,
	}

	api.Get("/dashboard/stats", c.Stats)
}

func (c *Dashboard) Stats(ctx *fiber.Ctx) error {
	stats, err := c.DashboardService.GetStats(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(stats)
}
