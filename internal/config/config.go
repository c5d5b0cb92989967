package config

import (
	"strings"

	"github.com/spf13/viper"
)

// Config holds everything resolved once at startup and injected from main.
type Config struct {
	ListenAddr string
	LogLevel   string

	// Storage selects the cart persistence backend: memory, redis or postgres.
	Storage     string
	RedisAddr   string
	DatabaseURL string

	// APIBaseURL overrides the platform-derived catalog address when set.
	APIBaseURL string
	// Emulator marks an Android-emulator style environment where the host
	// loopback is reached through 10.0.2.2.
	Emulator bool
}

// Load reads configuration from CART_-prefixed environment variables with
// sane defaults for local development.
func Load() Config {
	v := viper.New()
	v.SetEnvPrefix("cart")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	v.SetDefault("listen_addr", ":8080")
	v.SetDefault("log_level", "info")
	v.SetDefault("storage", "redis")
	v.SetDefault("redis_addr", "localhost:6379")
	v.SetDefault("database_url", "")
	v.SetDefault("api_base_url", "")
	v.SetDefault("emulator", false)

	return Config{
		ListenAddr:  v.GetString("listen_addr"),
		LogLevel:    v.GetString("log_level"),
		Storage:     v.GetString("storage"),
		RedisAddr:   v.GetString("redis_addr"),
		DatabaseURL: v.GetString("database_url"),
		APIBaseURL:  v.GetString("api_base_url"),
		Emulator:    v.GetBool("emulator"),
	}
}
