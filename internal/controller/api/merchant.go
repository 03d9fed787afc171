package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/model/types"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
	"github.com/LeJxrxm/bg3-planner/internal/util/rekuest"
)

type Merchant struct {
	MerchantService *service.Merchant
}

func RegisterMerchant(api *svr.API, merchantService *service.Merchant) {
	c := &Merchant{
		MerchantService: merchantService,
	}

	api.Get("/merchants", c.List)
	api.Post("/merchants", c.Create)
	api.Get("/merchants/:id", c.GetById)
	api.Put("/merchants/:id", c.Update)
	api.Delete("/merchants/:id", c.Delete)
}

func (c *Merchant) List(ctx *fiber.Ctx) error {
	merchants, total, err := c.MerchantService.GetMerchants(ctx.UserContext(), rekuest.Pagination(ctx))
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{
		"merchants": merchants,
		"total":     total,
	})
}

func (c *Merchant) GetById(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	merchant, err := c.MerchantService.GetMerchantById(ctx.UserContext(), id)
	if err != nil {
		return err
	}
	return ctx.JSON(merchant)
}

func (c *Merchant) Create(ctx *fiber.Ctx) error {
	var params types.SourceParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	merchant, err := c.MerchantService.CreateMerchant(ctx.UserContext(), &params)
	if err != nil {
		return err
	}
	return ctx.JSON(merchant)
}

func (c *Merchant) Update(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	var params types.SourceParams
	if err := rekuest.ValidBody(ctx, &params); err != nil {
		return err
	}

	merchant, err := c.MerchantService.UpdateMerchant(ctx.UserContext(), id, &params)
	if err != nil {
		return err
	}
	return ctx.JSON(merchant)
}

func (c *Merchant) Delete(ctx *fiber.Ctx) error {
	id, err := rekuest.PathID(ctx, "id")
	if err != nil {
		return err
	}

	if err := c.MerchantService.DeleteMerchant(ctx.UserContext(), id); err != nil {
		return err
	}
	return ctx.JSON(fiber.Map{"success": true})
}
