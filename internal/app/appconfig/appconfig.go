package appconfig

import (
	"fmt"

	"github.com/joho/godotenv"
	"github.com/kelseyhightower/envconfig"
	"github.com/rs/zerolog/log"

	"github.com/LeJxrxm/bg3-planner/internal/app/appcontext"
)

type Config struct {
	ConfigSpec

	AppContext appcontext.Ctx
}

func Parse(ctx appcontext.Ctx) (*Config, error) {
	if err := godotenv.Load(); err != nil {
		log.Warn().Err(err).Msg("failed to load .env file")
	}

	var config ConfigSpec
	err := envconfig.Process("bg3planner", &config)
	if err != nil {
		_ = envconfig.Usage("bg3planner", &config)
		return nil, fmt.Errorf("failed to parse configuration: %w", err)
	}

	return &Config{
		ConfigSpec: config,
		AppContext: ctx,
	}, nil
}
