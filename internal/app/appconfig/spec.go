package appconfig

import (
	"time"
)

type ConfigSpec struct {
	// ServiceAddress is the listen address would listen on for serving service requests.
	ServiceAddress string `required:"true" split_words:"true" default:"localhost:9460"`

	// DevMode to indicate development mode. When true, the program would spin up utilities for
	// debugging and provide a more contextual message when encountered a panic. See
	// internal/server/httpserver/http.go for the actual implementation details.
	DevMode bool `split_words:"true"`

	// LogJsonStdout is whether to log JSON logs (instead of pretty-print logs) to stdout for
	// the ease of log collection.
	LogJSONStdout bool `envconfig:"LOG_JSON_STDOUT"`

	// TrustedProxies is a list of trusted proxies that are trusted to report a real IP via
	// the X-Forwarded-For header.
	TrustedProxies []string `required:"true" split_words:"true" default:"::1,127.0.0.1,10.0.0.0/8"`

	// PostgresDSN is the data source name for the PostgreSQL database. See
	// https://bun.uptrace.dev/postgres/#pgdriver for more details on how to construct a
	// PostgreSQL DSN.
	PostgresDSN string `required:"true" split_words:"true"`

	// BunDebugVerbose enables the bundebug query hook to log every query instead of only
	// failed ones.
	BunDebugVerbose bool `split_words:"true"`

	// SentryDSN is the DSN to report errors to. Sentry reporting is disabled when left empty.
	SentryDSN string `envconfig:"SENTRY_DSN"`

	// UploadDir is the directory uploaded images are written to. The directory is created
	// on demand and its content is served under /uploads.
	UploadDir string `split_words:"true" default:"public/uploads"`

	// HTTPServerShutdownTimeout is the timeout for the HTTP server to shutdown gracefully.
	HTTPServerShutdownTimeout time.Duration `envconfig:"HTTP_SERVER_SHUTDOWN_TIMEOUT" default:"60s"`
}
