package config

import (
	"os"
	"strings"
)

// Config is built once at startup and passed explicitly to the components that
// need it. The two token secrets are independent signing domains: a token
// signed with one is meaningless to the other.
type Config struct {
	Port              string
	DatabaseURL       string
	UserTokenSecret   []byte
	DoctorTokenSecret []byte
	RedisAddress      string
	RedisPassword     string
	AllowedOrigins    []string
}

func Load() *Config {
	dbURL := os.Getenv("DB_CONNECTION_STRING")
	if dbURL == "" {
		panic("DB_CONNECTION_STRING environment variable is required")
	}

	userSecret := os.Getenv("JWT_USER_SECRET")
	if userSecret == "" {
		panic("JWT_USER_SECRET environment variable is required")
	}

	doctorSecret := os.Getenv("JWT_DOCTOR_SECRET")
	if doctorSecret == "" {
		panic("JWT_DOCTOR_SECRET environment variable is required")
	}
	if userSecret == doctorSecret {
		panic("JWT_USER_SECRET and JWT_DOCTOR_SECRET must differ")
	}

	port := os.Getenv("PORT")
	if port == "" {
		port = "8080"
	}

	redisAddress := os.Getenv("REDIS_ADDRESS")
	if redisAddress == "" {
		redisAddress = "localhost:6379"
	}

	origins := []string{"*"}
	if v := os.Getenv("ALLOWED_ORIGINS"); v != "" {
		origins = strings.Split(v, ",")
	}

	return &Config{
		Port:              port,
		DatabaseURL:       dbURL,
		UserTokenSecret:   []byte(userSecret),
		DoctorTokenSecret: []byte(doctorSecret),
		RedisAddress:      redisAddress,
		RedisPassword:     os.Getenv("REDIS_PASSWORD"),
		AllowedOrigins:    origins,
	}
}
