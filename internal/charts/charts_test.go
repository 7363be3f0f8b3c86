package charts

import (
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/estantelabs/estante/internal/model"
)

func sampleStats() model.Statistics {
	return model.Statistics{
		TotalBooks:  21,
		TotalGenres: 7,
		Genres: map[string]int{
			"fantasia": 8,
			"horror":   4,
			"aventura": 3,
			"comedia":  2,
			"distopia": 2,
		},
		Types: map[string]int{model.TypeFiction: 18, model.TypeNonFiction: 3},
		Levels: map[string]int{
			model.LevelBeginner:     5,
			model.LevelIntermediate: 8,
			model.LevelAdvanced:     8,
		},
	}
}

func TestGenrePie(t *testing.T) {
	cfg := GenrePie(sampleStats())

	require.Len(t, cfg.Slices, 5)
	assert.Equal(t, 19, cfg.Total)

	// Deterministic order: count descending, ties alphabetical.
	assert.Equal(t, "fantasia", cfg.Slices[0].Label)
	assert.Equal(t, "horror", cfg.Slices[1].Label)
	assert.Equal(t, "aventura", cfg.Slices[2].Label)
	assert.Equal(t, "comedia", cfg.Slices[3].Label)
	assert.Equal(t, "distopia", cfg.Slices[4].Label)

	// Exactly the first (largest) slice is emphasized.
	assert.True(t, cfg.Slices[0].Emphasized)
	for _, s := range cfg.Slices[1:] {
		assert.False(t, s.Emphasized)
	}

	assert.InDelta(t, 8.0/19.0*100, cfg.Slices[0].Percent, 0.0001)
}

func TestGenrePie_Empty(t *testing.T) {
	cfg := GenrePie(model.Statistics{})
	assert.Empty(t, cfg.Slices)
	assert.Zero(t, cfg.Total)
}

func TestLevelBars(t *testing.T) {
	cfg := LevelBars(sampleStats())

	require.Len(t, cfg.Bars, 3)

	// Canonical level order with display labels, not storage keys.
	assert.Equal(t, "Iniciante", cfg.Bars[0].Label)
	assert.Equal(t, "Intermediário", cfg.Bars[1].Label)
	assert.Equal(t, "Avançado", cfg.Bars[2].Label)
	assert.Equal(t, model.LevelBeginner, cfg.Bars[0].Key)
	assert.Equal(t, 5, cfg.Bars[0].Value)
}

func TestLevelBars_UnknownLevelKeysFollowCanonicalOnes(t *testing.T) {
	stats := model.Statistics{Levels: map[string]int{
		"mestre":            1,
		model.LevelBeginner: 2,
	}}

	cfg := LevelBars(stats)

	require.Len(t, cfg.Bars, 2)
	assert.Equal(t, "Iniciante", cfg.Bars[0].Label)
	// Unknown taxonomy keys pass through unchanged.
	assert.Equal(t, "mestre", cfg.Bars[1].Label)
}

func TestManager_NoDataState(t *testing.T) {
	m := NewManager()

	// Before any update both charts show the explicit no-data state.
	assert.Contains(t, m.Render(ChartGenres), "Sem dados de gêneros")
	assert.Contains(t, m.Render(ChartLevels), "Sem dados de níveis")

	m.Update(sampleStats())
	assert.Contains(t, m.Render(ChartGenres), "fantasia")
	assert.Contains(t, m.Render(ChartLevels), "Iniciante")

	// An empty mapping renders the no-data state, never an empty chart.
	m.Update(model.Statistics{})
	assert.Contains(t, m.Render(ChartGenres), "Sem dados de gêneros")

	m.Update(sampleStats())
	m.Destroy()
	assert.Contains(t, m.Render(ChartGenres), "Sem dados de gêneros")
}

func TestManager_SelectRoutesThroughNotify(t *testing.T) {
	var events []Event
	m := NewManager(WithNotify(func(e Event) {
		events = append(events, e)
	}))
	m.Update(sampleStats())

	m.Select(ChartGenres, 0)
	m.Select(ChartLevels, 1)
	m.Select(ChartGenres, 99) // out of range, ignored
	m.Select("inexistente", 0)

	require.Len(t, events, 2)
	assert.Equal(t, Event{Chart: ChartGenres, Label: "fantasia", Value: 8}, events[0])
	assert.Equal(t, Event{Chart: ChartLevels, Label: "Intermediário", Value: 8}, events[1])
}

func TestManager_Export(t *testing.T) {
	dir := t.TempDir()
	m := NewManager()
	m.Update(sampleStats())

	t.Run("txt", func(t *testing.T) {
		path, err := m.Export(dir, ChartGenres, "txt")
		require.NoError(t, err)
		assert.Equal(t, filepath.Join(dir, "grafico_generos.txt"), path)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "fantasia")
		assert.False(t, strings.Contains(string(content), "\x1b"), "exported text must not carry escape codes")
	})

	t.Run("json", func(t *testing.T) {
		path, err := m.Export(dir, ChartLevels, "json")
		require.NoError(t, err)

		content, err := os.ReadFile(path)
		require.NoError(t, err)
		assert.Contains(t, string(content), "Iniciante")
	})

	t.Run("unknown chart", func(t *testing.T) {
		_, err := m.Export(dir, "nada", "txt")
		assert.Error(t, err)
	})

	t.Run("unsupported format", func(t *testing.T) {
		_, err := m.Export(dir, ChartGenres, "png")
		assert.Error(t, err)
	})
}
