// Command tesa scores the sentiment of tweets with a polarity lexicon.
//
//	tesa score [flags] TEXT...
//	tesa sentences [flags] TEXT
//	tesa batch [flags] -in tweets.csv -out sentiments.csv
//
// Lexicon paths and logging come from TESA_* environment variables (an
// optional .env file is read first); flags override them.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
	"os/signal"
	"strings"
	"time"

	"github.com/tsawler/tesa"
)

const usage = `usage:
  tesa score [flags] TEXT...
  tesa sentences [flags] TEXT
  tesa batch [flags] -in FILE -out FILE

run "tesa COMMAND -h" for the flags of a command`

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	code := run(ctx, os.Args[1:], os.Stdout, os.Stderr)
	stop()
	os.Exit(code)
}

// run returns the process exit code: 0 on success, 1 on a runtime error,
// 2 on a usage or configuration error.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	if len(args) == 0 {
		fmt.Fprintln(stderr, usage)
		return 2
	}

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	cmd, rest := args[0], args[1:]
	fs := flag.NewFlagSet("tesa "+cmd, flag.ContinueOnError)
	fs.SetOutput(stderr)
	fs.StringVar(&cfg.Positive, "pos", cfg.Positive, "positive word list, one term per line")
	fs.StringVar(&cfg.Negative, "neg", cfg.Negative, "negative word list, one term per line")
	fs.StringVar(&cfg.EmojiPositive, "emoji-pos", cfg.EmojiPositive, "positive emoji table (;-delimited, hex column)")
	fs.StringVar(&cfg.EmojiNegative, "emoji-neg", cfg.EmojiNegative, "negative emoji table (;-delimited, hex column)")
	fs.StringVar(&cfg.EmojiHexColumn, "emoji-hex-column", cfg.EmojiHexColumn, "header of the hex column in emoji tables")
	fs.StringVar(&cfg.LemmaDictionary, "lemmas", cfg.LemmaDictionary, "optional form,lemma dictionary")
	fs.BoolVar(&cfg.ExtraStopWords, "extra-stopwords", cfg.ExtraStopWords, "also drop the stopwords library's English list")
	fs.StringVar(&cfg.LogLevel, "log-level", cfg.LogLevel, "debug, info, warn or error")
	fs.StringVar(&cfg.LogFormat, "log-format", cfg.LogFormat, "text or json")
	opts := tesa.DefaultScoreOptions()
	fs.BoolVar(&opts.Stem, "stem", opts.Stem, "apply the Snowball stemmer")
	fs.BoolVar(&opts.Lemmatize, "lemmatize", opts.Lemmatize, "apply the lemmatizer (runs after -stem)")

	var in, out, textColumn string
	if cmd == "batch" {
		fs.StringVar(&in, "in", "", "input table with a header row")
		fs.StringVar(&out, "out", "sentiments.csv", "output table")
		fs.StringVar(&textColumn, "text-column", "text", "header of the text column")
		fs.IntVar(&cfg.Workers, "workers", cfg.Workers, "parallel scorers")
	}

	switch cmd {
	case "score", "sentences", "batch":
	case "-h", "-help", "--help", "help":
		fmt.Fprintln(stdout, usage)
		return 0
	default:
		fmt.Fprintf(stderr, "unknown command %q\n%s\n", cmd, usage)
		return 2
	}

	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}
	if err := cfg.validate(); err != nil {
		fmt.Fprintln(stderr, err)
		return 2
	}

	logger := newLogger(stderr, cfg.LogLevel, cfg.LogFormat)
	analyzer, err := cfg.newAnalyzer(logger)
	if err != nil {
		logger.Error("loading lexicon", "error", err)
		if errors.Is(err, tesa.ErrConfiguration) || errors.Is(err, tesa.ErrFormat) {
			return 2
		}
		return 1
	}

	switch cmd {
	case "score":
		if fs.NArg() == 0 {
			fmt.Fprintln(stderr, "score: no text given")
			return 2
		}
		for _, text := range fs.Args() {
			res, err := analyzer.Score(text, opts)
			if err != nil {
				logger.Error("scoring", "error", err)
				return 1
			}
			fmt.Fprintf(stdout, "%s\t%d\t%s\n", res.Label, res.Score, text)
		}

	case "sentences":
		text := strings.Join(fs.Args(), " ")
		results, err := analyzer.ScoreSentences(text, opts)
		if err != nil {
			logger.Error("scoring sentences", "error", err)
			return 1
		}
		for _, res := range results {
			fmt.Fprintf(stdout, "%d-%d\t%s\t%d\t%s\n", res.Start, res.End, res.Label, res.Score, res.Text)
		}

	case "batch":
		if in == "" {
			fmt.Fprintln(stderr, "batch: -in is required")
			return 2
		}
		if err := runBatch(ctx, analyzer, logger, in, out, textColumn, cfg.Workers, opts); err != nil {
			logger.Error("batch", "error", err)
			return 1
		}
	}
	return 0
}

func runBatch(ctx context.Context, analyzer *tesa.Analyzer, logger *slog.Logger, in, out, textColumn string, workers int, opts tesa.ScoreOptions) error {
	start := time.Now()

	src, err := os.Open(in)
	if err != nil {
		return err
	}
	defer src.Close()

	dst, err := os.Create(out)
	if err != nil {
		return err
	}

	cfg := tesa.DefaultBatchConfig()
	cfg.TextColumn = textColumn
	cfg.Workers = workers
	cfg.Options = opts

	summary, err := analyzer.ScoreCSV(ctx, src, dst, cfg)
	if cerr := dst.Close(); err == nil {
		err = cerr
	}
	if err != nil {
		return err
	}

	logger.Info("batch complete",
		"in", in,
		"out", out,
		"records", summary.Count,
		"negative", summary.Labels[tesa.Negative],
		"neutral", summary.Labels[tesa.Neutral],
		"positive", summary.Labels[tesa.Positive],
		"mean", summary.Mean,
		"stddev", summary.StdDev,
		"min", summary.Min,
		"max", summary.Max,
		"elapsed", time.Since(start))
	return nil
}
