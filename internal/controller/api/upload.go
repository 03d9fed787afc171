package api

import (
	"github.com/gofiber/fiber/v2"

	"github.com/LeJxrxm/bg3-planner/internal/pkg/pgerr"
	"github.com/LeJxrxm/bg3-planner/internal/server/svr"
	"github.com/LeJxrxm/bg3-planner/internal/service"
)

type Upload struct {
	UploadService *service.Upload
}

func RegisterUpload(api *svr.API, uploadService *service.Upload) {
	c := &Upload{
		UploadService: uploadService,
	}

	api.Post("/upload", c.Upload)
}

func (c *Upload) Upload(ctx *fiber.Ctx) error {
	file, err := ctx.FormFile("file")
	if err != nil {
		return pgerr.ErrInvalidReq.Msg("no file uploaded")
	}

	url, err := c.UploadService.SaveFile(file)
	if err != nil {
		return err
	}

	return ctx.JSON(fiber.Map{"url": url})
}
