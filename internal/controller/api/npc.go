package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Npc struct {
	NpcService *service.Npc
}

func RegisterNpc(api *svr.API, npcService *service.Npc) {
	c := &Npc{
		NpcService: npcService,
	}

	api.Get("/npcs", c.List)
	api.Post("/npcs", c.Create)
	api.Get("/npcs/:id", c.GetById)
	api.Put("/npcs/:id", c.Update)
	api.Delete("/npcs/:id", c.Delete)
}

func (c *Npc) List(ctx *fiber.Ctx) error {
	npcs, total, err := c.NpcService.GetNpcs(ctx.UserContext(), rekuest.Pagination(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"npcs":  npcs,
		"total": total,
	})
}

func (c *Npc) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	npc, err := c.NpcService.GetNpcById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(npc)
}

func (c *Npc) Create(ctx *fiber.Ctx) error {
	var params types.SourceParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	npc, err := c.NpcService.CreateNpc(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(npc)
}

func (c *Npc) Update(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var params types.SourceParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	npc, err := c.NpcService.UpdateNpc(ctx.UserContext(), id, &params)
	if err != nil {
		return err
	}
	return ctx.JSON(npc)
}

func (c *Npc) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.NpcService.DeleteNpc(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
