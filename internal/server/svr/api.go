package svr

import (
	"github.com/gofiber/fiber/v2"
)

type API struct {
	fiber.Router
}

type Meta struct {
	fiber.Router
}

func CreateEndpointGroups(app *fiber.App) (*API, *Meta) {
	api := app.Group("/api")
	meta := app.Group("/api/_")

	return &API{Router: api}, &Meta{Router: meta}
}
