// Command sluice filters and transforms lines of text on a pool of workers.
// It reads lines from stdin, keeps the ones matching SLUICE_PATTERN, applies
// SLUICE_TRANSFORM to them and writes the results to stdout. See Config for
// the full list of settings.
package main

import (
	"bufio"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/rs/zerolog"

	"github.com/weirlab/sluice"
)

func main() {
	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintln(os.Stderr, "sluice:", err)
		os.Exit(2)
	}

	level, err := zerolog.ParseLevel(cfg.LogLevel)
	if err != nil {
		level = zerolog.InfoLevel
	}
	logger := zerolog.New(zerolog.ConsoleWriter{Out: os.Stderr}).
		Level(level).
		With().Timestamp().Logger()

	logger.Debug().
		Int("workers", cfg.Workers).
		Str("pattern", cfg.Pattern).
		Str("transform", cfg.Transform).
		Msg("starting")

	if err := run(cfg, logger, os.Stdin, os.Stdout); err != nil {
		logger.Error().Err(err).Msg("pipeline failed")
		os.Exit(1)
	}
}

func run(cfg Config, logger zerolog.Logger, in io.Reader, out io.Writer) error {
	job := sluice.Fork(readLines(in))

	if cfg.Pattern != "" {
		job = sluice.ParFilter(job, func(line string) (bool, error) {
			return strings.Contains(line, cfg.Pattern), nil
		})
	}
	transformed := sluice.ParMap(job, transformFunc(cfg.Transform))

	opts := []sluice.JoinOption{sluice.WithName("stdin-pipeline")}
	if cfg.LogLevel == "trace" || cfg.LogLevel == "debug" {
		// The pipeline itself logs through log/slog; mirror it to stderr
		// alongside the command's own output when debugging.
		opts = append(opts, sluice.WithLogger(slog.New(slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{
			Level: slog.LevelDebug,
		}))))
	}
	results := sluice.Join(transformed, cfg.Workers, opts...)

	w := bufio.NewWriter(out)
	defer w.Flush()

	written := 0
	err := sluice.ForEach(sluice.Batch(results, cfg.BatchSize), func(lines []string) error {
		for _, line := range lines {
			if _, err := fmt.Fprintln(w, line); err != nil {
				return err
			}
		}
		written += len(lines)
		return w.Flush()
	})
	if err != nil {
		return err
	}

	logger.Info().Int("lines", written).Msg("done")
	return nil
}

// readLines converts a reader into a stream of its lines.
func readLines(r io.Reader) sluice.Stream[string] {
	return func(emit func(string) bool) error {
		sc := bufio.NewScanner(r)
		sc.Buffer(make([]byte, 0, 64*1024), 1024*1024)

		for sc.Scan() {
			if !emit(sc.Text()) {
				return nil
			}
		}
		return sc.Err()
	}
}

func transformFunc(name string) func(string) (string, error) {
	switch name {
	case "upper":
		return func(line string) (string, error) { return strings.ToUpper(line), nil }
	case "lower":
		return func(line string) (string, error) { return strings.ToLower(line), nil }
	case "trim":
		return func(line string) (string, error) { return strings.TrimSpace(line), nil }
	default:
		return func(line string) (string, error) { return line, nil }
	}
}
