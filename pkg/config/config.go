package config

import (
	"os"
	"strconv"

	"github.com/joho/godotenv"
)

type Config struct {
	ServerPort      string
	Environment     string
	FirebaseProject string
	FirebaseApiKey  string

	CloudinaryCloudName string
	CloudinaryApiKey    string
	CloudinaryApiSecret string
	CloudinaryFolder    string

	FlutterwavePaymentLink string
	OpenWeatherApiKey      string

	LocalStoreDir string

	TypingIdleSeconds int64
}

func Load() (*Config, error) {
	godotenv.Load()

	config := &Config{
		ServerPort:      getEnv("SERVER_PORT", "8080"),
		Environment:     getEnv("ENVIRONMENT", "development"),
		FirebaseProject: getEnv("FIREBASE_PROJECT_ID", ""),
		FirebaseApiKey:  getEnv("FIREBASE_API_KEY", ""),

		CloudinaryCloudName: getEnv("CLOUDINARY_CLOUD_NAME", ""),
		CloudinaryApiKey:    getEnv("CLOUDINARY_API_KEY", ""),
		CloudinaryApiSecret: getEnv("CLOUDINARY_API_SECRET", ""),
		CloudinaryFolder:    getEnv("CLOUDINARY_FOLDER", "fieldtofork"),

		FlutterwavePaymentLink: getEnv("FLUTTERWAVE_PAYMENT_LINK", "https://sandbox.flutterwave.com/pay/ldsrzmkyd1gy"),
		OpenWeatherApiKey:      getEnv("OPENWEATHER_API_KEY", ""),

		LocalStoreDir: getEnv("LOCAL_STORE_DIR", "./data"),

		TypingIdleSeconds: getEnvAsInt64("TYPING_IDLE_SECONDS", 2),
	}

	return config, nil
}

func getEnv(key, defaultValue string) string {
	if value, exists := os.LookupEnv(key); exists {
		return value
	}
	return defaultValue
}

func getEnvAsInt64(key string, defaultValue int64) int64 {
	if value, exists := os.LookupEnv(key); exists {
		intValue, err := strconv.ParseInt(value, 10, 64)
		if err == nil {
			return intValue
		}
	}
	return defaultValue
}
