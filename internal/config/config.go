package config

import (
	"log"
	"os"
	"strconv"
	"time"

	"github.com/joho/godotenv"
)

type Config struct {
	App       AppConfig
	EventLog  EventLogConfig
	Generator GeneratorConfig
	Metrics   MetricsConfig
}

type AppConfig struct {
	Environment string
	LogFilePath string
	Verbose     bool
}

type EventLogConfig struct {
	Path string
}

type GeneratorConfig struct {
	Delay time.Duration // pause between successive generated events
	Seed  int64         // 0 seeds from the clock
}

type MetricsConfig struct {
	FilePath string // prometheus textfile output, empty disables
}

func Load() *Config {
	if err := godotenv.Load(); err != nil {
		log.Println("Note: .env file not found, usage system environment")
	}

	env := getEnv("GO_ENV", "production")

	return &Config{
		App: AppConfig{
			Environment: env,
			LogFilePath: getEnv("APP_LOG_PATH", "simulator.log"),
			Verbose:     env == "development",
		},
		EventLog: EventLogConfig{
			Path: getEnv("EVENT_LOG_PATH", "ironmaiden_events.log"),
		},
		Generator: GeneratorConfig{
			Delay: getEnvAsDuration("GENERATE_DELAY", 200*time.Millisecond),
			Seed:  int64(getEnvAsInt("RANDOM_SEED", 0)),
		},
		Metrics: MetricsConfig{
			FilePath: getEnv("METRICS_FILE", ""),
		},
	}
}

func getEnv(key, fallback string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return fallback
}

func getEnvAsInt(key string, fallback int) int {
	strValue := getEnv(key, "")
	if value, err := strconv.Atoi(strValue); err == nil {
		return value
	}
	return fallback
}

func getEnvAsDuration(key string, fallback time.Duration) time.Duration {
	strValue := getEnv(key, "")
	if value, err := time.ParseDuration(strValue); err == nil && value >= 0 {
		return value
	}
	return fallback
}
