package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Poi struct {
	PoiService *service.Poi
}

func RegisterPoi(api *svr.API, poiService *service.Poi) {
	c := &Poi{
		PoiService: poiService,
	}

	api.Get("/pois", c.List)
	api.Post("/pois", c.Create)
	api.Get("/pois/:id", c.GetById)
	api.Put("/pois/:id", c.Update)
	api.Delete("/pois/:id", c.Delete)
}

func (c *Poi) List(ctx *fiber.Ctx) error {
	pois, total, err := c.PoiService.GetPois(ctx.UserContext(), rekuest.Pagination(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"pois":  pois,
		"total": total,
	})
}

func (c *Poi) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	poi, err := c.PoiService.GetPoiById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(poi)
}

func (c *Poi) Create(ctx *fiber.Ctx) error {
	var params types.SourceParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	poi, err := c.PoiService.CreatePoi(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(poi)
}

func (c *Poi) Update(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var params types.SourceParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	poi, err := c.PoiService.UpdatePoi(ctx.UserContext(), id, &params)
	if err != nil {
		return err
	}
	return ctx.JSON(poi)
}

func (c *Poi) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.PoiService.DeletePoi(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
