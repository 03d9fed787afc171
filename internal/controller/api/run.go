package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Run struct {
	RunService *service.Run
}

func RegisterRun(api *svr.API, runService *service.Run) {
	c := &Run{
		RunService: runService,
	}

	api.Get("/runs", c.List)
	api.Post("/runs", c.Create)
	api.Post("/runs/demo", c.CreateDemo)
	api.Get("/runs/:id", c.GetById)
	api.Delete("/runs/:id", c.Delete)

	api.Post("/runs/:id/characters", c.AttachCharacter)
	api.Delete("/runs/:id/characters/:characterId", c.DetachCharacter)

	api.Post("/runs/:id/assign-item", c.AssignSlotItem)
	api.Post("/runs/:id/characters/:characterId/items", c.AssignTrackedItem)
	api.Delete("/runs/:id/characters/:characterId/items/:itemId", c.UnassignItem)
}

func (c *Run) List(ctx *fiber.Ctx) error {
	runs, err := c.RunService.GetRuns(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(runs)
}

// GetById returns a run with its full roster: attached characters, and for
// each character the slot and tracked assignments scoped to this run.
func (c *Run) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	run, err := c.RunService.GetRunById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(run)
}

func (c *Run) Create(ctx *fiber.Ctx) error {
	var params types.RunParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	run, err := c.RunService.CreateRun(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(run)
}

// CreateDemo seeds a showcase run with a pre-built party so a fresh
// install has something to click through.
func (c *Run) CreateDemo(ctx *fiber.Ctx) error {
	run, err := c.RunService.CreateDemoRun(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(run)
}

func (c *Run) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.RunService.DeleteRun(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *Run) AttachCharacter(ctx *fiber.Ctx) error {
	runID, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var req types.AttachCharacterRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	rc, err := c.RunService.AttachCharacter(ctx.UserContext(), runID, req.CharacterID)
	if err != nil {
		return err
	}
	return ctx.JSON(rc)
}

func (c *Run) DetachCharacter(ctx *fiber.Ctx) error {
	runID, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}
	characterID, err := rekuest.PathID(ctx, "characterId")
	if err != nil {
		return err
	}

	if err := c.RunService.DetachCharacter(ctx.UserContext(), runID, characterID); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}

func (c *Run) AssignSlotItem(ctx *fiber.Ctx) error {
	runID, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var req types.SlotAssignmentRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	assignment, err := c.RunService.AssignSlotItem(ctx.UserContext(), runID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(assignment)
}

func (c *Run) AssignTrackedItem(ctx *fiber.Ctx) error {
	runID, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}
	characterID, err := rekuest.PathID(ctx, "characterId")
	if err != nil {
		return err
	}

	var req types.TrackedAssignmentRequest
	if err := rekuest.ValidBody(ctx, &req); err != nil {
		return err
	}

	assignment, err := c.RunService.AssignTrackedItem(ctx.UserContext(), runID, characterID, &req)
	if err != nil {
		return err
	}
	return ctx.JSON(assignment)
}

func (c *Run) UnassignItem(ctx *fiber.Ctx) error {
	runID, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}
	itemID, err := rekuest.PathID(ctx, "itemId")
	if err != nil {
		return err
	}

	if err := c.RunService.UnassignItem(ctx.UserContext(), runID, itemID); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
