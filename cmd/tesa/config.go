package main

import (
	"errors"
	"fmt"
	"log/slog"

	"github.com/joho/godotenv"
	"go-simpler.org/env"

	"github.com/tsawler/tesa"
)

// Config is read from the environment and overridden by flags.
type Config struct {
	Positive        string `env:"TESA_POSITIVE"`
	Negative        string `env:"TESA_NEGATIVE"`
	EmojiPositive   string `env:"TESA_EMOJI_POSITIVE"`
	EmojiNegative   string `env:"TESA_EMOJI_NEGATIVE"`
	EmojiHexColumn  string `env:"TESA_EMOJI_HEX_COLUMN" default:"hex"`
	LemmaDictionary string `env:"TESA_LEMMA_DICTIONARY"`
	ExtraStopWords  bool   `env:"TESA_EXTRA_STOPWORDS" default:"false"`
	Workers         int    `env:"TESA_WORKERS" default:"4"`
	LogLevel        string `env:"TESA_LOG_LEVEL" default:"info"`
	LogFormat       string `env:"TESA_LOG_FORMAT" default:"text"`
}

// loadConfig reads an optional .env file and then the environment.
func loadConfig(dotenv ...string) (*Config, error) {
	if err := godotenv.Load(dotenv...); err != nil {
		slog.Debug("no .env file loaded", "error", err)
	}

	var cfg Config
	if err := env.Load(&cfg, nil); err != nil {
		return nil, fmt.Errorf("failed to load environment variables: %w", err)
	}
	return &cfg, nil
}

func (c *Config) validate() error {
	if c.Positive == "" {
		return errors.New("positive lexicon is required (-pos or TESA_POSITIVE)")
	}
	if c.Negative == "" {
		return errors.New("negative lexicon is required (-neg or TESA_NEGATIVE)")
	}
	if c.Workers < 0 {
		return fmt.Errorf("workers must not be negative, got %d", c.Workers)
	}
	return nil
}

func (c *Config) sources() tesa.LexiconSources {
	return tesa.LexiconSources{
		Positive:       c.Positive,
		Negative:       c.Negative,
		EmojiPositive:  c.EmojiPositive,
		EmojiNegative:  c.EmojiNegative,
		EmojiHexColumn: c.EmojiHexColumn,
	}
}

// newAnalyzer builds and loads an analyzer from the configuration.
func (c *Config) newAnalyzer(logger *slog.Logger) (*tesa.Analyzer, error) {
	var normOpts []tesa.NormalizerOptFunc
	if c.ExtraStopWords {
		normOpts = append(normOpts, tesa.UsingStopList(tesa.NewLibraryStopList(nil)))
	}
	if c.LemmaDictionary != "" {
		lem, err := tesa.LoadLemmaDictionary(c.LemmaDictionary)
		if err != nil {
			return nil, err
		}
		normOpts = append(normOpts, tesa.UsingLemmatizer(lem))
	}

	analyzer := tesa.NewAnalyzer(
		tesa.WithLogger(logger),
		tesa.WithNormalizer(tesa.NewNormalizer(normOpts...)),
	)
	if err := analyzer.Load(c.sources()); err != nil {
		return nil, err
	}
	return analyzer, nil
}
