package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func clearEnv(t *testing.T) {
	t.Helper()
	for _, key := range []string{
		"TESA_POSITIVE", "TESA_NEGATIVE", "TESA_EMOJI_POSITIVE", "TESA_EMOJI_NEGATIVE",
		"TESA_EMOJI_HEX_COLUMN", "TESA_LEMMA_DICTIONARY", "TESA_EXTRA_STOPWORDS",
		"TESA_WORKERS", "TESA_LOG_LEVEL", "TESA_LOG_FORMAT",
	} {
		t.Setenv(key, "")
		os.Unsetenv(key)
	}
}

func TestLoadConfigDefaults(t *testing.T) {
	clearEnv(t)

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "hex", cfg.EmojiHexColumn)
	assert.Equal(t, 4, cfg.Workers)
	assert.Equal(t, "info", cfg.LogLevel)
	assert.Equal(t, "text", cfg.LogFormat)
	assert.False(t, cfg.ExtraStopWords)
	assert.Error(t, cfg.validate(), "lexicon paths are required")
}

func TestLoadConfigEnvironment(t *testing.T) {
	clearEnv(t)
	t.Setenv("TESA_POSITIVE", "pos.txt")
	t.Setenv("TESA_NEGATIVE", "neg.txt")
	t.Setenv("TESA_WORKERS", "9")
	t.Setenv("TESA_EXTRA_STOPWORDS", "true")

	cfg, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	require.NoError(t, err)
	assert.Equal(t, "pos.txt", cfg.Positive)
	assert.Equal(t, "neg.txt", cfg.Negative)
	assert.Equal(t, 9, cfg.Workers)
	assert.True(t, cfg.ExtraStopWords)
	assert.NoError(t, cfg.validate())
	assert.Equal(t, "pos.txt", cfg.sources().Positive)
}

func TestLoadConfigDotenv(t *testing.T) {
	clearEnv(t)
	path := filepath.Join(t.TempDir(), "test.env")
	require.NoError(t, os.WriteFile(path, []byte("TESA_POSITIVE=a.txt\nTESA_LOG_FORMAT=json\n"), 0o600))
	t.Cleanup(func() {
		os.Unsetenv("TESA_POSITIVE")
		os.Unsetenv("TESA_LOG_FORMAT")
	})

	cfg, err := loadConfig(path)
	require.NoError(t, err)
	assert.Equal(t, "a.txt", cfg.Positive)
	assert.Equal(t, "json", cfg.LogFormat)
}

func TestLoadConfigInvalid(t *testing.T) {
	clearEnv(t)
	t.Setenv("TESA_WORKERS", "many")

	_, err := loadConfig(filepath.Join(t.TempDir(), "missing.env"))
	assert.Error(t, err)
}

func TestConfigValidate(t *testing.T) {
	tests := []struct {
		cfg     Config
		wantErr bool
		desc    string
	}{
		{Config{Positive: "p", Negative: "n"}, false, "Minimal"},
		{Config{Negative: "n"}, true, "No positive list"},
		{Config{Positive: "p"}, true, "No negative list"},
		{Config{Positive: "p", Negative: "n", Workers: -1}, true, "Negative workers"},
	}
	for _, tt := range tests {
		t.Run(tt.desc, func(t *testing.T) {
			err := tt.cfg.validate()
			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestNewAnalyzerFromConfig(t *testing.T) {
	lemmas := filepath.Join(t.TempDir(), "lemmas.csv")
	require.NoError(t, os.WriteFile(lemmas, []byte("gooder,good\n"), 0o600))

	cfg := Config{
		Positive:        filepath.Join("..", "..", "testdata", "positive.txt"),
		Negative:        filepath.Join("..", "..", "testdata", "negative.txt"),
		LemmaDictionary: lemmas,
		ExtraStopWords:  true,
	}
	a, err := cfg.newAnalyzer(newLogger(&bytes.Buffer{}, "error", "text"))
	require.NoError(t, err)

	res, err := a.Score("gooder than never", tesaDefaults())
	require.NoError(t, err)
	assert.Equal(t, 1, res.Score)
}

func TestNewLogger(t *testing.T) {
	var buf bytes.Buffer
	logger := newLogger(&buf, "debug", "json")
	logger.Debug("hello", "n", 1)
	assert.Contains(t, buf.String(), `"msg":"hello"`)

	buf.Reset()
	logger = newLogger(&buf, "warn", "text")
	logger.Info("quiet")
	assert.Empty(t, buf.String())
	logger.Warn("loud")
	assert.Contains(t, buf.String(), "msg=loud")
}
