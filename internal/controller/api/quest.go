package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Quest struct {
	QuestService *service.Quest
}

func RegisterQuest(api *svr.API, questService *service.Quest) {
	c := &Quest{
		QuestService: questService,
	}

	api.Get("/quests", c.List)
	api.Post("/quests", c.Create)
	api.Get("/quests/:id", c.GetById)
	api.Put("/quests/:id", c.Update)
	api.Delete("/quests/:id", c.Delete)
}

// List returns a page of quests, each with its quest giver preloaded.
func (c *Quest) List(ctx *fiber.Ctx) error {
	quests, total, err := c.QuestService.GetQuests(ctx.UserContext(), rekuest.Pagination(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"quests": quests,
		"total":  total,
	})
}

func (c *Quest) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	quest, err := c.QuestService.GetQuestById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(quest)
}

func (c *Quest) Create(ctx *fiber.Ctx) error {
	var params types.QuestParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	quest, err := c.QuestService.CreateQuest(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(quest)
}

func (c *Quest) Update(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var params types.QuestParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	quest, err := c.QuestService.UpdateQuest(ctx.UserContext(), id, &params)
	if err != nil {
		return err
	}
	return ctx.JSON(quest)
}

func (c *Quest) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.QuestService.DeleteQuest(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
