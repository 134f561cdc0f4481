package config_test

import (
	"testing"

	"github.com/influenxers/coachbot/internal/config"
)

func TestLoadDefaults(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("PORT", "")
	t.Setenv("DISCORD_CHANNEL_ID", "")
	t.Setenv("GENERATE_IMAGES", "")
	t.Setenv("GENAI_API_KEY", "")
	t.Setenv("SESSION_FILE", "")
	t.Setenv("CONTENT_DIR", "")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	if cfg.Server.Addr != ":8080" {
		t.Errorf("addr = %q", cfg.Server.Addr)
	}
	if len(cfg.Discord.ChannelIDs) != 0 {
		t.Errorf("channels = %v", cfg.Discord.ChannelIDs)
	}
	if cfg.Images.Enabled {
		t.Error("images should default off")
	}
	if cfg.Session.File != "sessionData.json" || cfg.Content.Dir != "response" {
		t.Errorf("unexpected paths: %+v", cfg)
	}
}

func TestLoadRequiresToken(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "")
	if _, err := config.Load(); err == nil {
		t.Fatal("expected error without DISCORD_TOKEN")
	}
}

func TestLoadChannelList(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("DISCORD_CHANNEL_ID", "123, 456 ,,789")

	cfg, err := config.Load()
	if err != nil {
		t.Fatal(err)
	}
	want := []string{"123", "456", "789"}
	if len(cfg.Discord.ChannelIDs) != len(want) {
		t.Fatalf("channels = %v", cfg.Discord.ChannelIDs)
	}
	for i, id := range want {
		if cfg.Discord.ChannelIDs[i] != id {
			t.Errorf("channel[%d] = %q, want %q", i, cfg.Discord.ChannelIDs[i], id)
		}
	}
}

func TestLoadImagesNeedKey(t *testing.T) {
	t.Setenv("DISCORD_TOKEN", "token-123")
	t.Setenv("GENERATE_IMAGES", "true")
	t.Setenv("GENAI_API_KEY", "")

	if _, err := config.Load(); err == nil {
		t.Fatal("expected error when images enabled without an API key")
	}
}
