package config

import (
	"os"
	"time"
)

type Config struct {
	SlackBotToken        string
	SlackSigningSecret   string
	SlackReminderChannel string
	HuntflowServerURL    string
	HuntflowUserEmail    string
	HuntflowUserPassword string
	RedisHost            string
	RedisPort            string
	ChannelName          string
	Port                 string
	RequestTimeout       time.Duration
}

func Load() *Config {
	return &Config{
		SlackBotToken:        getEnv("SLACK_BOT_TOKEN", ""),
		SlackSigningSecret:   getEnv("SLACK_SIGNING_SECRET", ""),
		SlackReminderChannel: getEnv("SLACK_REMINDER_CHANNEL", ""),
		HuntflowServerURL:    getEnv("HUNTFLOW_SERVER_URL", "http://127.0.0.1:8888"),
		HuntflowUserEmail:    getEnv("HUNTFLOW_USER_EMAIL", ""),
		HuntflowUserPassword: getEnv("HUNTFLOW_USER_PASSWORD", ""),
		RedisHost:            getEnv("REDIS_HOST", "127.0.0.1"),
		RedisPort:            getEnv("REDIS_PORT", "16379"),
		ChannelName:          getEnv("CHANNEL_NAME", "hubot-huntflow-reloaded"),
		Port:                 getEnv("PORT", "3000"),
		RequestTimeout:       getDurationEnv("REQUEST_TIMEOUT", 10*time.Second),
	}
}

func getEnv(key, defaultValue string) string {
	if value := os.Getenv(key); value != "" {
		return value
	}
	return defaultValue
}

func getDurationEnv(key string, defaultValue time.Duration) time.Duration {
	if value := os.Getenv(key); value != "" {
		if d, err := time.ParseDuration(value); err == nil {
			return d
		}
	}
	return defaultValue
}
