package app

import (
	"os"

	"github.com/rs/zerolog/log"
	"github.com/urfave/cli/v2"

	"github.com/LeJxrxm/bg3-planner/cmd/app/server"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/bininfo"
)

func Run() {
	app := &cli.App{
		Name:        "bg3planner",
		Description: "The BG3 Planner backend. Tracks playthroughs, party rosters and item wishlists. Built with Go, fiber, bun and go.uber.org/fx.",
		Version:     bininfo.Version,
		Commands: []*cli.Command{
			server.Command(),
		},
	}
	if err := app.Run(os.Args); err != nil {
		log.Fatal().Err(err).Msg("failed to run app")
	}
}
