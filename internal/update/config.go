package update

import (
	"strings"

	"github.com/sandeepkv93/tasklist/internal/config"
	"github.com/sandeepkv93/tasklist/internal/model"
)

type RuntimeConfig struct {
	DefaultCategory model.Category
	Categories      []model.Category
}

func DefaultRuntimeConfig() RuntimeConfig {
	return RuntimeConfigFrom(config.Default())
}

// RuntimeConfigFrom keeps the parts of cfg the TUI needs. An empty category
// list falls back to the built-in categories.
func RuntimeConfigFrom(cfg config.Config) RuntimeConfig {
	out := RuntimeConfig{
		DefaultCategory: model.NormalizeCategory(cfg.DefaultCategory),
		Categories:      cfg.CategoryTags(),
	}
	if len(out.Categories) == 0 {
		out.Categories = model.Categories()
	}
	return out
}

// categoryCycle is the order the category filter steps through.
func (c RuntimeConfig) categoryCycle() []string {
	out := []string{"all"}
	seen := map[string]bool{"all": true}
	for _, category := range c.Categories {
		name := strings.ToLower(strings.TrimSpace(string(category)))
		if name != "" && !seen[name] {
			seen[name] = true
			out = append(out, name)
		}
	}
	return out
}
