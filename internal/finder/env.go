package finder

import (
	"os"
	"strconv"
)

const (
	envMaxFiles = "FPICK_MAX_FILES"
	envWorkers  = "FPICK_WORKERS"

	defaultMaxFiles   = 100000
	maxDisplayResults = 10000

	// minShardSize keeps tiny candidate lists on a single worker;
	// goroutine fan-out costs more than it saves below this size.
	minShardSize = 256

	// cancelCheckStride bounds how often a ranking worker polls its
	// context between candidates.
	cancelCheckStride = 512
)

func parseEnvInt(name string, fallback int) int {
	raw := os.Getenv(name)
	if raw == "" {
		return fallback
	}
	value, err := strconv.Atoi(raw)
	if err != nil {
		return fallback
	}
	return value
}
