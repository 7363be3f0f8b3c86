package config

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/spf13/viper"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	viper.Reset()

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://localhost:5000", cfg.APIURL)
	assert.Equal(t, 15*time.Second, cfg.APITimeout)
	assert.Equal(t, ".", cfg.ExportDir)
	assert.Equal(t, 6, cfg.TopN)
	assert.True(t, cfg.Fallback)
}

func TestLoadOverrides(t *testing.T) {
	viper.Reset()
	viper.Set("api.url", "http://books.example.com")
	viper.Set("recommendations.top_n", 10)
	viper.Set("catalog.fallback", false)

	cfg, err := Load()
	require.NoError(t, err)

	assert.Equal(t, "http://books.example.com", cfg.APIURL)
	assert.Equal(t, 10, cfg.TopN)
	assert.False(t, cfg.Fallback)
}

func TestValidateRejectsBadValues(t *testing.T) {
	tests := []struct {
		name string
		cfg  Config
	}{
		{"empty url", Config{APIURL: "", APITimeout: time.Second, TopN: 6}},
		{"zero timeout", Config{APIURL: "http://x", APITimeout: 0, TopN: 6}},
		{"zero top_n", Config{APIURL: "http://x", APITimeout: time.Second, TopN: 0}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Error(t, tt.cfg.Validate())
		})
	}
}

func TestExpandPath(t *testing.T) {
	home, err := os.UserHomeDir()
	require.NoError(t, err)

	assert.Equal(t, filepath.Join(home, "exports"), ExpandPath("~/exports"))
	assert.Equal(t, home, ExpandPath("~"))
	assert.Equal(t, "", ExpandPath(""))

	t.Setenv("ESTANTE_TEST_DIR", "/tmp/estante")
	assert.Equal(t, "/tmp/estante", ExpandPath("$ESTANTE_TEST_DIR"))
}
