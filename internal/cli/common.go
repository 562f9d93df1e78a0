package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"sort"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danieljhkim/travelbuddy/internal/attractions"
	"github.com/danieljhkim/travelbuddy/internal/clock"
	"github.com/danieljhkim/travelbuddy/internal/config"
	"github.com/danieljhkim/travelbuddy/internal/engine"
	"github.com/danieljhkim/travelbuddy/internal/fsops"
	"github.com/danieljhkim/travelbuddy/internal/itinerary"
	"github.com/danieljhkim/travelbuddy/internal/memory"
)

// newEngine creates a new engine with real implementations of all dependencies.
func newEngine(cmd *cobra.Command, opts *rootOptions) (*engine.Engine, error) {
	cfg, err := config.Load(opts.envFile)
	if err != nil {
		return nil, fmt.Errorf("failed to load config: %w", err)
	}
	if opts.storePath != "" {
		cfg.StorePath = opts.storePath
	}

	fs := fsops.NewRealFS()
	store := memory.NewFileStore(fs, cfg.StorePath)

	logger := newLogger(cmd.ErrOrStderr(), opts.verbose)
	logger.Debug("travelbuddy ready", "memory_path", store.Path(), "config_file", cfg.ConfigFile)

	builder, err := itinerary.NewBuilder(cfg.Policy())
	if err != nil {
		return nil, err
	}

	return engine.New(
		store,
		attractions.NewFinder(attractions.NewCatalogSource(fs, cfg.CatalogPath), cfg.MaxCandidates, logger),
		builder,
		&clock.RealClock{},
		logger,
	), nil
}

// newLogger returns a text logger on w; verbose enables debug output.
func newLogger(w io.Writer, verbose bool) *slog.Logger {
	level := slog.LevelWarn
	if verbose {
		level = slog.LevelDebug
	}
	return slog.New(slog.NewTextHandler(w, &slog.HandlerOptions{Level: level}))
}

// outputJSON writes v to w as indented JSON.
func outputJSON(w io.Writer, v interface{}) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// FormatError formats an error for display.
func FormatError(err error) string {
	return errorColor.Sprintf("Error: %v", err)
}

// parsePreferences turns key=value pairs into a preference map. Values are
// typed like YAML scalars, so "5" is a number and "true" a boolean.
func parsePreferences(pairs []string) (map[string]any, error) {
	prefs := make(map[string]any, len(pairs))
	for _, pair := range pairs {
		key, raw, ok := strings.Cut(pair, "=")
		key = strings.TrimSpace(key)
		if !ok || key == "" {
			return nil, fmt.Errorf("%w: preference %q must be key=value", engine.ErrValidation, pair)
		}
		prefs[key] = scalarValue(strings.TrimSpace(raw))
	}
	return prefs, nil
}

func scalarValue(raw string) any {
	if raw == "" {
		return raw
	}
	var v any
	if err := yaml.Unmarshal([]byte(raw), &v); err != nil {
		return raw
	}
	switch v.(type) {
	case string, int, float64, bool:
		return v
	default:
		return raw
	}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys(m map[string]any) []string {
	keys := make([]string, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}
