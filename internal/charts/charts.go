// Package charts translates statistics snapshots into terminal chart
// configurations and renders them with lipgloss. The package owns chart
// lifecycle (update, destroy, export) and routes every chart interaction
// through a single swappable notify function.
package charts

import (
	"fmt"
	"math"
	"sort"

	"github.com/estantelabs/estante/internal/model"
)

// Chart identifiers.
const (
	ChartGenres = "generos"
	ChartLevels = "niveis"
)

// Slice is one entry of the genre distribution pie.
type Slice struct {
	Label      string
	Value      int
	Percent    float64
	Emphasized bool
}

// PieConfig describes the genre distribution chart: one slice per genre,
// label plus percentage, the largest slice visually emphasized.
type PieConfig struct {
	Title  string
	Slices []Slice
	Total  int
}

// Bar is one entry of the level distribution chart.
type Bar struct {
	Key     string
	Label   string
	Value   int
	Percent float64
}

// BarConfig describes the horizontal level distribution chart. Labels are
// display names, distinct from the storage keys.
type BarConfig struct {
	Title string
	Bars  []Bar
}

// GenrePie builds the pie configuration from a statistics snapshot. Slices
// are ordered by count descending, ties broken alphabetically, so rendering
// is deterministic regardless of map iteration order.
func GenrePie(stats model.Statistics) PieConfig {
	cfg := PieConfig{Title: "Distribuição por Gênero"}

	for _, count := range stats.Genres {
		cfg.Total += count
	}

	for genre, count := range stats.Genres {
		var pct float64
		if cfg.Total > 0 {
			pct = float64(count) / float64(cfg.Total) * 100
		}
		cfg.Slices = append(cfg.Slices, Slice{Label: genre, Value: count, Percent: pct})
	}

	sort.Slice(cfg.Slices, func(i, j int) bool {
		if cfg.Slices[i].Value != cfg.Slices[j].Value {
			return cfg.Slices[i].Value > cfg.Slices[j].Value
		}
		return cfg.Slices[i].Label < cfg.Slices[j].Label
	})

	if len(cfg.Slices) > 0 {
		cfg.Slices[0].Emphasized = true
	}

	return cfg
}

// LevelBars builds the horizontal bar configuration. Known levels keep
// their canonical order; unknown keys follow alphabetically.
func LevelBars(stats model.Statistics) BarConfig {
	cfg := BarConfig{Title: "Distribuição por Nível de Leitura"}

	total := 0
	for _, count := range stats.Levels {
		total += count
	}

	appendBar := func(key string) {
		count := stats.Levels[key]
		var pct float64
		if total > 0 {
			pct = float64(count) / float64(total) * 100
		}
		cfg.Bars = append(cfg.Bars, Bar{Key: key, Label: model.LevelLabel(key), Value: count, Percent: pct})
	}

	seen := make(map[string]bool)
	for _, key := range model.Levels() {
		if _, ok := stats.Levels[key]; ok {
			appendBar(key)
			seen[key] = true
		}
	}

	var extras []string
	for key := range stats.Levels {
		if !seen[key] {
			extras = append(extras, key)
		}
	}
	sort.Strings(extras)
	for _, key := range extras {
		appendBar(key)
	}

	return cfg
}

// RoundPercent formats a percentage the way the charts display it.
func RoundPercent(pct float64) string {
	return fmt.Sprintf("%.1f%%", math.Round(pct*10)/10)
}
