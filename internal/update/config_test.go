package update

import (
	"testing"

	"github.com/sandeepkv93/tasklist/internal/config"
)

func TestRuntimeConfigDefaults(t *testing.T) {
	cfg := DefaultRuntimeConfig()
	if cfg.DefaultCategory != "personal" {
		t.Fatalf("unexpected default category: %+v", cfg)
	}
	if len(cfg.Categories) != 5 {
		t.Fatalf("expected built-in categories, got %+v", cfg.Categories)
	}
}

func TestRuntimeConfigFromConfig(t *testing.T) {
	base := config.Default()
	base.DefaultCategory = " Work "
	base.Categories = []string{"Work", "errands", "all"}

	cfg := RuntimeConfigFrom(base)
	if cfg.DefaultCategory != "work" {
		t.Fatalf("unexpected default category: %q", cfg.DefaultCategory)
	}
	cycle := cfg.categoryCycle()
	if len(cycle) != 3 || cycle[0] != "all" || cycle[1] != "work" || cycle[2] != "errands" {
		t.Fatalf("unexpected category cycle: %v", cycle)
	}

	base.Categories = nil
	if got := RuntimeConfigFrom(base).Categories; len(got) != 5 {
		t.Fatalf("expected fallback to built-in categories, got %v", got)
	}
}
