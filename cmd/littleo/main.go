package main

import (
	"fmt"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/snoonan2/theory-extraCredit/internal/config"
	"github.com/snoonan2/theory-extraCredit/internal/littleo"
	"github.com/snoonan2/theory-extraCredit/internal/logging"
	"github.com/snoonan2/theory-extraCredit/internal/tui"
	"github.com/snoonan2/theory-extraCredit/internal/viz"
)

var (
	configFile string
	preset     string
	points     []int
	workers    int
	theme      string
	verbose    bool
	plain      bool
	noFooter   bool
	plotHeight int
	plotWidth  int
)

// app is what every command needs once flags and config are resolved.
type app struct {
	cfg        *config.Config
	classifier *littleo.Classifier
	styles     viz.Styles
	log        *zap.Logger
}

// main registers commands and flags and runs the prompt when no subcommand
// is given. It exits with status 1 if the command returns an error.
func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:          "littleo",
		Short:        "list catalog growth rates that are little-o of a Big O expression",
		Args:         cobra.NoArgs,
		SilenceUsage: true,
		RunE:         runPrompt,
	}

	pf := rootCmd.PersistentFlags()
	pf.StringVar(&configFile, "config", "", "config file path (yaml)")
	pf.StringVar(&preset, "preset", "", "sample point preset")
	pf.IntSliceVar(&points, "points", nil, "sample points, e.g. 10,100,1000")
	pf.IntVar(&workers, "workers", config.DefaultWorkers, "goroutines used per classification")
	pf.StringVar(&theme, "theme", config.DefaultTheme, "color theme ("+strings.Join(viz.ThemeNames(), ", ")+")")
	pf.BoolVarP(&verbose, "verbose", "v", false, "log skipped samples to stderr")
	rootCmd.Flags().BoolVar(&plain, "plain", false, "use the line prompt instead of the interactive one")

	findCmd := &cobra.Command{
		Use:   "find [expression]",
		Short: "list entries that are little-o of the expression",
		Args:  cobra.ExactArgs(1),
		RunE:  runFind,
	}
	findCmd.Flags().BoolVar(&noFooter, "no-footer", false, "omit the explanation after the list")

	checkCmd := &cobra.Command{
		Use:   "check [candidate] [target]",
		Short: "show the ratio samples behind one verdict",
		Args:  cobra.ExactArgs(2),
		RunE:  runCheck,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [candidate] [target]",
		Short: "plot log10 of the sampled ratios",
		Args:  cobra.ExactArgs(2),
		RunE:  runPlot,
	}
	plotCmd.Flags().IntVar(&plotHeight, "height", config.DefaultPlotHeight, "plot height")
	plotCmd.Flags().IntVar(&plotWidth, "width", config.DefaultPlotWidth, "plot width")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list the catalog",
		Args:  cobra.NoArgs,
		RunE:  runList,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list sample point presets",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			fmt.Fprintln(w, "PRESET\tPOINTS")
			for _, name := range config.ListPresets() {
				fmt.Fprintf(w, "%s\t%v\n", name, config.GetPreset(name))
			}
			return w.Flush()
		},
	}

	rootCmd.AddCommand(findCmd, checkCmd, plotCmd, listCmd, presetsCmd)
	return rootCmd
}

// setup loads the config file, applies flags on top and builds the
// classifier. Flags only override the file when set explicitly.
func setup(cmd *cobra.Command) (*app, error) {
	cfg := config.DefaultConfig()
	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	flags := cmd.Flags()
	if flags.Changed("points") {
		cfg.Points = points
		cfg.Preset = ""
	}
	if flags.Changed("preset") {
		cfg.Preset = preset
	}
	if flags.Changed("workers") {
		cfg.Workers = workers
	}
	if flags.Changed("theme") {
		cfg.Theme = theme
	}
	if flags.Changed("height") {
		cfg.Plot.Height = plotHeight
	}
	if flags.Changed("width") {
		cfg.Plot.Width = plotWidth
	}

	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	samplePoints, err := cfg.SamplePoints()
	if err != nil {
		return nil, err
	}

	logger, err := logging.New(verbose)
	if err != nil {
		return nil, fmt.Errorf("failed to build logger: %w", err)
	}

	return &app{
		cfg: cfg,
		classifier: littleo.New(
			littleo.WithPoints(samplePoints),
			littleo.WithWorkers(cfg.Workers),
			littleo.WithLogger(logger),
		),
		styles: viz.NewStyles(viz.GetTheme(cfg.Theme)),
		log:    logger,
	}, nil
}

func runPrompt(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync(a.log)

	if plain || !isatty.IsTerminal(os.Stdin.Fd()) {
		return tui.RunPlain(cmd.InOrStdin(), cmd.OutOrStdout(), a.classifier, a.styles)
	}
	return tui.Run(a.classifier, a.styles)
}

func runFind(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync(a.log)

	expr := args[0]
	results := a.classifier.FindLittleO(expr)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, viz.Results(expr, results, a.styles))
	if !noFooter && !littleo.IsError(results) {
		fmt.Fprintln(out)
		fmt.Fprint(out, viz.Footer(expr, a.styles))
	}
	return nil
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync(a.log)

	v, err := a.classifier.Explain(args[0], args[1])
	if err != nil {
		return err
	}
	fmt.Fprint(cmd.OutOrStdout(), viz.VerdictTable(v, a.styles))
	return nil
}

func runPlot(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync(a.log)

	v, err := a.classifier.Explain(args[0], args[1])
	if err != nil {
		return err
	}

	graph := viz.RatioPlot(v, a.cfg.Plot.Height, a.cfg.Plot.Width)
	if graph == "" {
		return fmt.Errorf("not enough usable samples to plot %s against %s", v.Candidate, v.Target)
	}
	fmt.Fprintln(cmd.OutOrStdout(), graph)
	return nil
}

func runList(cmd *cobra.Command, args []string) error {
	a, err := setup(cmd)
	if err != nil {
		return err
	}
	defer logging.Sync(a.log)

	out := cmd.OutOrStdout()
	fmt.Fprint(out, viz.Menu(a.classifier.Catalog(), a.styles))
	fmt.Fprintln(out)

	w := tabwriter.NewWriter(out, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "#\tNAME\tKEY\tCLASS")
	for i, fn := range a.classifier.Catalog().Entries() {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", i+1, fn.Name, fn.Key, fn.Class)
	}
	return w.Flush()
}
