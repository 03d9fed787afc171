package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Character struct {
	CharacterService *service.Character
}

func RegisterCharacter(api *svr.API, characterService *service.Character) {
	c := &Character{
		CharacterService: characterService,
	}

	api.Get("/characters", c.List)
	api.Post("/characters", c.Create)
	api.Get("/characters/:id", c.GetById)
	api.Put("/characters/:id", c.Update)
	api.Delete("/characters/:id", c.Delete)
}

// @Summary      List Characters
// @Tags         Character
// @Produce      json
// @Param        page          query     int  false  "1-based page"
// @Param        itemsPerPage  query     int  false  "page size (default 20)"
// @Success      200           {object}  map[string]any
// @Failure      500           {object}  pgerr.PlannerError
// @Router       /api/characters [GET]
func (c *Character) List(ctx *fiber.Ctx) error {
	characters, total, err := c.CharacterService.GetCharacters(ctx.UserContext(), rekuest.Pagination(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"characters": characters,
		"total":      total,
	})
}

// @Summary      Get a Character
// @Tags         Character
// @Produce      json
// @Param        id   path      int  true  "Character ID"
// @Success      200  {object}  model.Character
// @Failure      404  {object}  pgerr.PlannerError
// @Router       /api/characters/{id} [GET]
func (c *Character) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	character, err := c.CharacterService.GetCharacterById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(character)
}

// @Summary      Create a Character
// @Tags         Character
// @Accept       json
// @Produce      json
// @Param        character  body      types.CharacterParams  true  "Character"
// @Success      200        {object}  model.Character
// @Failure      400        {object}  pgerr.PlannerError
// @Router       /api/characters [POST]
func (c *Character) Create(ctx *fiber.Ctx) error {
	var params types.CharacterParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	character, err := c.CharacterService.CreateCharacter(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(character)
}

func (c *Character) Update(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var params types.CharacterParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	character, err := c.CharacterService.UpdateCharacter(ctx.UserContext(), id, &params)
	if err != nil {
		return err
	}
	return ctx.JSON(character)
}

func (c *Character) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.CharacterService.DeleteCharacter(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
