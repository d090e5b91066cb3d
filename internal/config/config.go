package config

import (
	"os"
	"strconv"
)

type Mode string

const (
	// ModeOffline uses the local deterministic encoder; no network.
	ModeOffline Mode = "offline"
	// ModeOnline uses the Gemini embedding backend.
	ModeOnline Mode = "online"
)

type Config struct {
	Mode Mode

	// Gemini embedding backend (online mode)
	GeminiAPIKey string
	EmbedModel   string

	// grading behavior
	RuleThreshold float64
	GradeWorkers  int
	DebugGrading  bool
}

func FromEnv() Config {
	mode := Mode(os.Getenv("MODE"))
	if mode == "" {
		mode = ModeOffline
	}
	return Config{
		Mode:          mode,
		GeminiAPIKey:  os.Getenv("GEMINI_API_KEY"),
		EmbedModel:    envOr("EMBED_MODEL", "text-embedding-004"),
		RuleThreshold: envFloat("RULE_THRESHOLD", 0.2),
		GradeWorkers:  envInt("GRADE_WORKERS", 4),
		DebugGrading:  envBool("DEBUG_GRADING", false),
	}
}

func envOr(k, def string) string {
	v := os.Getenv(k)
	if v == "" {
		return def
	}
	return v
}

func envBool(k string, def bool) bool {
	switch os.Getenv(k) {
	case "1", "true", "TRUE", "yes", "YES":
		return true
	case "0", "false", "FALSE", "no", "NO":
		return false
	default:
		return def
	}
}

func envInt(k string, def int) int {
	if v, err := strconv.Atoi(os.Getenv(k)); err == nil {
		return v
	}
	return def
}

func envFloat(k string, def float64) float64 {
	if v, err := strconv.ParseFloat(os.Getenv(k), 64); err == nil {
		return v
	}
	return def
}
