// Package mavconfig holds process-wide, environment-driven
// configuration, read once and cached, in the same shape as the Config
// pattern this module's ambient stack follows elsewhere.
package mavconfig

import (
	"os"
	"strconv"
	"strings"

	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Config is the process-wide configuration. Zero value is never used
// directly by callers; GetConfig env-populates it on first call.
type Config struct {
	LogLevel       string
	ReadBufferSize int
	StrictMode     bool

	set bool
}

func intFromEnvDefault(key string, def int) int {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	n, err := strconv.Atoi(v)
	if err != nil {
		return def
	}
	return n
}

func boolFromEnvDefault(key string, def bool) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	b, err := strconv.ParseBool(v)
	if err != nil {
		return def
	}
	return b
}

func strFromEnvDefault(key string, def string) string {
	v, ok := os.LookupEnv(key)
	if !ok {
		return def
	}
	return v
}

var config Config

// GetConfig returns the process configuration, populating it from the
// environment on first call: MAVGEN_LOGLEVEL (default "info"),
// MAVGEN_READBUFFERSIZE (default 4096 — one MAVLink v2 frame's worst
// case is 280 bytes; this gives headroom for several queued frames),
// MAVGEN_STRICT (default false — whether the dialect parser aborts on a
// message id reused by more than one <message> in the same dialect,
// instead of the last-write-wins behavior a naive id->message map would
// otherwise give).
func GetConfig() Config {
	if !config.set {
		config.LogLevel = strings.ToLower(strFromEnvDefault("MAVGEN_LOGLEVEL", "info"))
		config.ReadBufferSize = intFromEnvDefault("MAVGEN_READBUFFERSIZE", 4096)
		config.StrictMode = boolFromEnvDefault("MAVGEN_STRICT", false)
		applyLogLevel(config.LogLevel)
		config.set = true
	}
	return config
}

// OverrideConfig replaces the cached configuration, e.g. from parsed CLI
// flags, and re-applies its log level.
func OverrideConfig(c Config) {
	c.set = true
	config = c
	applyLogLevel(c.LogLevel)
}

func applyLogLevel(level string) {
	lvl, err := zerolog.ParseLevel(level)
	if err != nil {
		log.Warn().Str("level", level).Msg("mavconfig: unrecognized MAVGEN_LOGLEVEL, defaulting to info")
		lvl = zerolog.InfoLevel
	}
	zerolog.SetGlobalLevel(lvl)
}
