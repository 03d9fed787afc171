package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
)

type EquipmentSlot struct {
	EquipmentSlotService *service.EquipmentSlot
}

func RegisterEquipmentSlot(api *svr.API, equipmentSlotService *service.EquipmentSlot) {
	c := &EquipmentSlot{
		EquipmentSlotService: equipmentSlotService,
	}

	api.Get("/equipment-slots", c.List)
}

// List returns every equipment slot in display order. The slot set is
// seeded at install time and never changes at runtime, so there is no
// pagination here.
func (c *EquipmentSlot) List(ctx *fiber.Ctx) error {
	slots, err := c.EquipmentSlotService.GetEquipmentSlots(ctx.UserContext())
	if err != nil {
		return err
	}
	return ctx.JSON(slots)
}
