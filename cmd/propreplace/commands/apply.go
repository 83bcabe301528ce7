package commands

import (
	"context"
	"os"
	"strings"

	"github.com/gzm55/propreplace/cmd/propreplace/opts"
	"github.com/gzm55/propreplace/pkg/eval"
	"github.com/gzm55/propreplace/pkg/props"
	"github.com/gzm55/propreplace/pkg/replace"
	"github.com/gzm55/propreplace/pkg/report"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"gitlab.com/tozd/go/errors"
	"golang.org/x/sync/errgroup"
)

// OptsFunc builds the shared root options once flags are parsed
type OptsFunc func(ctx context.Context) (*opts.RootOpts, error)

// NewApplyCmd creates a new apply command
func NewApplyCmd(newOpts OptsFunc) *cobra.Command {
	var dryRun bool

	cmd := &cobra.Command{
		Use:   "apply FILE...",
		Short: "Apply replacement rules to one or more .properties files",
		Long: `Apply loads each .properties file, runs the configured replacement
rules against it and writes the result back in place.
It will:
1. Load the rule configuration
2. Load each properties file into its own store
3. Run every rule, in order, against the store
4. Write the rewritten file (unless --dry-run is set)`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx := cmd.Context()
			ctx = zerolog.Ctx(ctx).With().Str("command", "apply").Logger().WithContext(ctx)

			o, err := newOpts(ctx)
			if err != nil {
				return err
			}
			rules, err := o.Config.Rules()
			if err != nil {
				return errors.Errorf("building rules: %w", err)
			}

			// Each file gets its own store, so files are independent
			// and safe to process concurrently.
			g, gctx := errgroup.WithContext(ctx)
			for _, path := range args {
				path := path
				g.Go(func() error {
					return applyFile(gctx, o.Reporter, rules, path, dryRun)
				})
			}
			if err := g.Wait(); err != nil {
				return errors.Errorf("applying replacements: %w", err)
			}
			return nil
		},
	}

	cmd.Flags().BoolVar(&dryRun, "dry-run", false, "report changes without writing files")

	return cmd
}

// applyFile runs the rule list against a single properties file
func applyFile(ctx context.Context, reporter *report.Reporter, rules []replace.Rule, path string, dryRun bool) error {
	store, err := props.LoadFile(path)
	if err != nil {
		return errors.Errorf("loading %s: %w", path, err)
	}
	before := store.Clone()

	evaluator := eval.NewExprEvaluator(map[string]any{
		"props": storeEnv(store),
		"env":   environMap(),
	})

	replacer := replace.New(evaluator)
	if err := replacer.PerformReplacement(ctx, store, rules); err != nil {
		reporter.LogChange(report.Change{Type: report.PropertyError, Key: path, Target: path, Err: err})
		return errors.Errorf("replacing in %s: %w", path, err)
	}

	changed, created := reportChanges(reporter, before, store)
	reporter.LogSummary(path, changed, created, store.Len())

	if dryRun {
		return nil
	}
	if err := store.WriteFile(path, 0o644); err != nil {
		return errors.Errorf("writing %s: %w", path, err)
	}
	return nil
}

// reportChanges diffs the store against its pre-run copy and reports every
// created or changed property.
func reportChanges(reporter *report.Reporter, before, after *props.Map) (changed, created int) {
	for _, key := range after.Keys() {
		newValue, _ := after.Get(key)
		oldValue, existed := before.Get(key)
		switch {
		case !existed:
			created++
			reporter.LogChange(report.Change{
				Type:   report.PropertyCreated,
				Key:    key,
				Target: key,
				After:  newValue,
			})
		case oldValue != newValue:
			changed++
			reporter.LogChange(report.Change{
				Type:   report.PropertyChanged,
				Key:    key,
				Target: key,
				Before: oldValue,
				After:  newValue,
			})
		}
	}
	return changed, created
}

// storeEnv exposes the pre-run property values to expressions as
// props["some.key"]
func storeEnv(store *props.Map) map[string]any {
	env := make(map[string]any, store.Len())
	for _, key := range store.Keys() {
		value, _ := store.Get(key)
		env[key] = value
	}
	return env
}

// environMap exposes process environment variables as env["NAME"]
func environMap() map[string]any {
	env := map[string]any{}
	for _, kv := range os.Environ() {
		if k, v, ok := strings.Cut(kv, "="); ok {
			env[k] = v
		}
	}
	return env
}
