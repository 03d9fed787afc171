package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Item struct {
	ItemService *service.Item
}

func RegisterItem(api *svr.API, itemService *service.Item) {
	c := &Item{
		ItemService: itemService,
	}

	api.Get("/items", c.List)
	api.Post("/items", c.Create)
	api.Get("/items/:id", c.GetById)
	api.Put("/items/:id", c.Update)
	api.Delete("/items/:id", c.Delete)
}

// @Summary      List Items
// @Tags         Item
// @Produce      json
// @Param        page          query     int     false  "1-based page"
// @Param        itemsPerPage  query     int     false  "page size (default 20)"
// @Param        search        query     string  false  "case-insensitive substring match on name"
// @Success      200           {object}  map[string]any
// @Failure      500           {object}  pgerr.PlannerError
// @Router       /api/items [GET]
func (c *Item) List(ctx *fiber.Ctx) error {
	filter := types.ItemFilter{Search: ctx.Query("search")}

	items, total, err := c.ItemService.GetItems(ctx.UserContext(), rekuest.Pagination(ctx), filter)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"items": items,
		"total": total,
	})
}

func (c *Item) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	item, err := c.ItemService.GetItemById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(item)
}

func (c *Item) Create(ctx *fiber.Ctx) error {
	var params types.ItemParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	item, err := c.ItemService.CreateItem(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(item)
}

func (c *Item) Update(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var params types.ItemParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	item, err := c.ItemService.UpdateItem(ctx.UserContext(), id, &params)
	if err != nil {
		return err
	}
	return ctx.JSON(item)
}

func (c *Item) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.ItemService.DeleteItem(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
