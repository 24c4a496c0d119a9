package config

import "os"

type Config struct {
	Port                string
	DBHost              string
	DBPort              string
	CacheHost           string
	CachePort           string
	JaegerAddress       string
	StripeSecretKey     string
	ClientURL           string
	CloudinaryCloudName string
	CloudinaryAPIKey    string
	CloudinaryAPISecret string
}

func NewConfig() *Config {
	return &Config{
		Port:                os.Getenv("EVENTSPHERE_SERVICE_PORT"),
		DBHost:              os.Getenv("EVENTSPHERE_DB_HOST"),
		DBPort:              os.Getenv("EVENTSPHERE_DB_PORT"),
		CacheHost:           os.Getenv("EVENTSPHERE_CACHE_HOST"),
		CachePort:           os.Getenv("EVENTSPHERE_CACHE_PORT"),
		JaegerAddress:       os.Getenv("JAEGER_ADDRESS"),
		StripeSecretKey:     os.Getenv("STRIPE_SECRET_KEY"),
		ClientURL:           os.Getenv("CLIENT_URL"),
		CloudinaryCloudName: os.Getenv("CLOUDINARY_CLOUD_NAME"),
		CloudinaryAPIKey:    os.Getenv("CLOUDINARY_API_KEY"),
		CloudinaryAPISecret: os.Getenv("CLOUDINARY_API_SECRET"),
	}
}
