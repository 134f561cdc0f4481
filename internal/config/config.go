package config

import (
	"fmt"
	"os"
	"strconv"
	"strings"
)

// Config aggregates every setting the service reads at startup.
type Config struct {
	Server  ServerConfig
	Discord DiscordConfig
	Images  ImageConfig
	Session SessionConfig
	Content ContentConfig
}

// Load reads configuration from environment variables.
func Load() (*Config, error) {
	server, err := loadServerConfig()
	if err != nil {
		return nil, err
	}

	discord, err := loadDiscordConfig()
	if err != nil {
		return nil, err
	}

	images, err := loadImageConfig()
	if err != nil {
		return nil, err
	}

	return &Config{
		Server:  server,
		Discord: discord,
		Images:  images,
		Session: SessionConfig{File: getEnvOrDefault("SESSION_FILE", "sessionData.json")},
		Content: ContentConfig{Dir: getEnvOrDefault("CONTENT_DIR", "response")},
	}, nil
}

// ServerConfig describes the embedded HTTP server.
type ServerConfig struct {
	Addr string
}

func loadServerConfig() (ServerConfig, error) {
	port := strings.TrimSpace(os.Getenv("PORT"))
	if port == "" {
		port = "8080"
	}

	if strings.Contains(port, ":") {
		// Accept ":8080" or "127.0.0.1:8080" verbatim.
		return ServerConfig{Addr: port}, nil
	}

	if strings.Contains(port, " ") {
		return ServerConfig{}, fmt.Errorf("invalid PORT value: %q", port)
	}

	return ServerConfig{Addr: ":" + port}, nil
}

// DiscordConfig describes the gateway connection.
type DiscordConfig struct {
	Token      string
	ChannelIDs []string
}

func loadDiscordConfig() (DiscordConfig, error) {
	token := strings.TrimSpace(os.Getenv("DISCORD_TOKEN"))
	if token == "" {
		return DiscordConfig{}, fmt.Errorf("DISCORD_TOKEN is required")
	}

	var channels []string
	for _, id := range strings.Split(os.Getenv("DISCORD_CHANNEL_ID"), ",") {
		if id = strings.TrimSpace(id); id != "" {
			channels = append(channels, id)
		}
	}

	return DiscordConfig{Token: token, ChannelIDs: channels}, nil
}

// ImageConfig describes image generation and caching.
type ImageConfig struct {
	Enabled bool
	APIKey  string
	Model   string
	Dir     string
}

func loadImageConfig() (ImageConfig, error) {
	enabled, err := parseBoolEnv("GENERATE_IMAGES", false)
	if err != nil {
		return ImageConfig{}, err
	}

	apiKey := strings.TrimSpace(os.Getenv("GENAI_API_KEY"))
	if enabled && apiKey == "" {
		return ImageConfig{}, fmt.Errorf("GENERATE_IMAGES is set but GENAI_API_KEY is missing")
	}

	return ImageConfig{
		Enabled: enabled,
		APIKey:  apiKey,
		Model:   getEnvOrDefault("GENAI_IMAGE_MODEL", "imagen-3.0-generate-002"),
		Dir:     getEnvOrDefault("IMAGE_DIR", "generated_images"),
	}, nil
}

// SessionConfig describes profile persistence.
type SessionConfig struct {
	File string
}

// ContentConfig describes where response templates live.
type ContentConfig struct {
	Dir string
}

func getEnvOrDefault(key, defaultValue string) string {
	if value := strings.TrimSpace(os.Getenv(key)); value != "" {
		return value
	}
	return defaultValue
}

func parseBoolEnv(key string, defaultValue bool) (bool, error) {
	raw := strings.TrimSpace(os.Getenv(key))
	if raw == "" {
		return defaultValue, nil
	}

	val, err := strconv.ParseBool(raw)
	if err != nil {
		return false, fmt.Errorf("invalid %s value %q: %w", key, raw, err)
	}
	return val, nil
}
