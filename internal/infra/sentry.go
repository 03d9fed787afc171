package infra

import (
	"github.com/getsentry/sentry-go"
	"github.com/rs/zerolog/log"

	"github.com/LeJxrxm/bg3-planner/internal/app/appconfig"
	"github.com/LeJxrxm/bg3-planner/internal/pkg/bininfo"
)

// SentryInit initializes sentry with side-effect
func SentryInit(conf *appconfig.Config) error {
	if conf.SentryDSN == "" {
		log.Warn().Msg("Sentry is disabled due to missing DSN.")
		return nil
	}
	log.Info().Msg("Initializing Sentry...")
	return sentry.Init(sentry.ClientOptions{
		Dsn:              conf.SentryDSN,
		Release:          "bg3-planner@" + bininfo.Version,
		Debug:            conf.DevMode,
		AttachStacktrace: true,
	})
}
