package config

import (
	"os"
	"strconv"
	"sync"

	"github.com/joho/godotenv"
	"github.com/sirupsen/logrus"
)

type AppConfig struct {
	ServerAddr      string
	DataFile        string
	DatabaseURL     string
	StoreAllowReset bool
	SMTPHost        string
	SMTPPort        int
	SMTPUsername    string
	SMTPPassword    string
	SMTPFrom        string
}

var instance *AppConfig
var once sync.Once

func GetAppConfig() *AppConfig {
	once.Do(func() {
		instance = &AppConfig{}

		if err := godotenv.Load(); err != nil {
			logrus.Infof("no .env file loaded: %s", err.Error())
		}

		instance.ServerAddr = getEnv("SERVER_ADDR", ":8080")
		instance.DataFile = getEnv("DATA_FILE", "saved_data.csv")
		instance.DatabaseURL = getEnv("DATABASE_URL", "absence_tracker.db")
		instance.StoreAllowReset = getEnvAsBool("STORE_ALLOW_RESET", false)

		instance.SMTPHost = getEnv("SMTP_HOST", "")
		if instance.SMTPHost == "" {
			logrus.Fatal("could not get smtp host")
		}

		instance.SMTPPort = int(getEnvAsInt("SMTP_PORT", 587))

		instance.SMTPUsername = getEnv("SMTP_USERNAME", "")
		instance.SMTPPassword = getEnv("SMTP_PASSWORD", "")

		instance.SMTPFrom = getEnv("SMTP_FROM", "")
		if instance.SMTPFrom == "" {
			logrus.Fatal("could not get smtp sender address")
		}
	})

	return instance
}

func getEnv(key string, defaultVal string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}

	return defaultVal
}

func getEnvAsBool(name string, defaultVal bool) bool {
	valStr := getEnv(name, "")
	if val, err := strconv.ParseBool(valStr); err == nil {
		return val
	}

	return defaultVal
}

func getEnvAsInt(name string, defaultVal int64) int64 {
	valStr := getEnv(name, "")
	if val, err := strconv.Atoi(valStr); err == nil {
		return int64(val)
	}

	return defaultVal
}
