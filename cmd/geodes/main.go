package main

import (
	"fmt"
	"io"
	"os"
	"strings"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
	"github.com/olekukonko/tablewriter"
	"github.com/spf13/cobra"

	"github.com/napolitain/solver-geodes/internal/loader"
	"github.com/napolitain/solver-geodes/internal/logging"
	"github.com/napolitain/solver-geodes/internal/models"
	"github.com/napolitain/solver-geodes/internal/solver/geode"
)

var (
	inputFile  string
	configFile string
	horizon    int
	limit      int
	aggregate  string
	extended   bool
	noPrune    bool
	report     bool
	logLevel   string
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		color.New(color.FgRed).Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:   "geodes",
		Short: "Geode Blueprint Optimizer",
		Long: `Finds, for every robot blueprint read from stdin, the most geodes
that can be opened before time runs out, and prints the combined score.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			logging.InitWriter(cmd.ErrOrStderr(), logLevel)
		},
		RunE: runSolver,
	}

	rootCmd.Flags().StringVarP(&inputFile, "input", "i", "", "Path to blueprint file (default stdin)")
	rootCmd.Flags().StringVarP(&configFile, "config", "c", "", "Path to run config (.json or protobuf)")
	rootCmd.Flags().IntVarP(&horizon, "horizon", "t", models.DefaultHorizon, "Minutes available per blueprint")
	rootCmd.Flags().IntVarP(&limit, "limit", "n", 0, "Only use the first N blueprints (0 = all)")
	rootCmd.Flags().StringVarP(&aggregate, "aggregate", "a", string(models.AggregateQuality), "How to combine results: quality or product")
	rootCmd.Flags().BoolVar(&extended, "extended", false, "Extended variant: 32 minutes, first 3 blueprints, geode product")
	rootCmd.Flags().BoolVar(&noPrune, "no-prune", false, "Disable the production pruning heuristic")
	rootCmd.Flags().BoolVarP(&report, "report", "r", false, "Print a per-blueprint report instead of only the total")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "warn", "Log level: debug, info, warn, error")

	return rootCmd
}

// resolveConfig layers defaults, preset, config file and explicitly set flags
func resolveConfig(cmd *cobra.Command) (models.RunConfig, error) {
	cfg := models.DefaultRunConfig()
	if extended {
		cfg = models.ExtendedRunConfig()
	}

	if configFile != "" {
		var err error
		cfg, err = models.LoadRunConfig(configFile, cfg)
		if err != nil {
			return cfg, fmt.Errorf("loading config: %w", err)
		}
		logging.Info("loaded config", "path", configFile)
	}

	flags := cmd.Flags()
	if flags.Changed("horizon") {
		cfg.Horizon = horizon
	}
	if flags.Changed("limit") {
		cfg.Limit = limit
	}
	if flags.Changed("aggregate") {
		cfg.Aggregate = models.Aggregate(aggregate)
	}
	if flags.Changed("no-prune") {
		cfg.DisablePruning = noPrune
	}

	return cfg, models.ValidateRunConfig(cfg)
}

func runSolver(cmd *cobra.Command, args []string) error {
	cfg, err := resolveConfig(cmd)
	if err != nil {
		return err
	}

	var blueprints []*models.Blueprint
	if inputFile != "" {
		blueprints, err = loader.LoadBlueprints(inputFile)
	} else {
		blueprints, err = loader.ReadBlueprints(cmd.InOrStdin())
	}
	if err != nil {
		return err
	}
	if cfg.Limit > len(blueprints) {
		logging.Warn("limit exceeds blueprint count", "limit", cfg.Limit, "blueprints", len(blueprints))
	} else if cfg.Limit > 0 {
		blueprints = blueprints[:cfg.Limit]
	}
	logging.Info("loaded blueprints", "count", len(blueprints), "horizon", cfg.Horizon)

	results := geode.SolveAll(blueprints, geode.Options{
		Horizon:        cfg.Horizon,
		DisablePruning: cfg.DisablePruning,
		WithPlan:       report,
	})
	total := geode.Combine(results, cfg.Aggregate)

	out := cmd.OutOrStdout()
	if !report {
		fmt.Fprintln(out, total)
		return nil
	}

	printReport(out, cfg, results, total)
	return nil
}

var bannerStyle = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(lipgloss.Color("6")).
	Foreground(lipgloss.Color("6")).
	Bold(true).
	Padding(0, 2)

func printReport(out io.Writer, cfg models.RunConfig, results []geode.Result, total int) {
	infoColor := color.New(color.FgYellow)
	successColor := color.New(color.FgGreen, color.Bold)

	fmt.Fprintln(out, bannerStyle.Render("Geode Blueprint Optimizer"))
	fmt.Fprintln(out)

	infoColor.Fprintf(out, "📦 %d blueprints, %d minutes, %s\n\n", len(results), cfg.Horizon, cfg.Aggregate)

	table := tablewriter.NewTable(out,
		tablewriter.WithHeader([]string{"Blueprint", "Geodes", "Quality", "Nodes", "Time", "Build Order"}),
	)
	for _, r := range results {
		row := []string{
			fmt.Sprintf("%d", r.Blueprint.ID),
			fmt.Sprintf("%d", r.Geodes),
			fmt.Sprintf("%d", r.Quality()),
			fmt.Sprintf("%d", r.Nodes),
			r.Elapsed.Round(time.Microsecond).String(),
			formatPlan(r.Plan),
		}
		table.Append(row)
	}
	table.Render()

	label := "Quality level sum"
	if cfg.Aggregate == models.AggregateProduct {
		label = "Geode product"
	}
	successColor.Fprintf(out, "\n✓ %s: %d\n", label, total)
}

// formatPlan renders a plan as "clay@3 clay@5 obsidian@11 ..."
func formatPlan(plan *geode.Solution) string {
	if plan == nil || len(plan.Actions) == 0 {
		return "-"
	}
	parts := make([]string, 0, len(plan.Actions))
	for _, a := range plan.Actions {
		parts = append(parts, fmt.Sprintf("%s@%d", a.Robot, a.Minute))
	}
	return strings.Join(parts, " ")
}
