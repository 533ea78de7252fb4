package config

import "os"

type Config struct {
	DatabasePath      string
	Port              string
	ClubTimezone      string
	WeeklyCron        string
	StatusCron        string
	SlackBotToken     string
	SlackAdminChannel string
	LogLevel          string
	LogFormat         string
}

func Load() *Config {
	return &Config{
		DatabasePath:      getEnv("DATABASE_PATH", "./club.db"),
		Port:              getEnv("PORT", "3000"),
		ClubTimezone:      getEnv("CLUB_TIMEZONE", "Asia/Seoul"),
		WeeklyCron:        getEnv("WEEKLY_CRON", "0 0 * * 6"),
		StatusCron:        getEnv("STATUS_CRON", "0 6 * * *"),
		SlackBotToken:     getEnv("SLACK_BOT_TOKEN", ""),
		SlackAdminChannel: getEnv("SLACK_ADMIN_CHANNEL", ""),
		LogLevel:          getEnv("LOG_LEVEL", "info"),
		LogFormat:         getEnv("LOG_FORMAT", "json"),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}
