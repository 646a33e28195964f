package main

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"os/signal"
	"sort"
	"text/tabwriter"
	"time"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/san-kum/paaviz/internal/analysis"
	"github.com/san-kum/paaviz/internal/anim"
	"github.com/san-kum/paaviz/internal/automation"
	"github.com/san-kum/paaviz/internal/catalog"
	"github.com/san-kum/paaviz/internal/config"
	"github.com/san-kum/paaviz/internal/export"
	"github.com/san-kum/paaviz/internal/gui"
	"github.com/san-kum/paaviz/internal/storage"
	"github.com/san-kum/paaviz/internal/tui"
	"github.com/san-kum/paaviz/internal/viz"
)

var (
	dataDir    string
	configFile string
	preset     string
	logLevel   string

	subject   string
	asJSON    bool
	step      int
	reveal    bool
	pngOut    string
	gifOut    string
	size      int
	stride    int
	seconds   float64
	noColor   bool
	plotRows  int
	saveTrace bool
	outDir    string
	workers   int

	cfg    *config.Config
	logger *log.Logger
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	if err := newRootCmd().ExecuteContext(ctx); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	rootCmd := &cobra.Command{
		Use:           "paaviz",
		Short:         "PAA math study guide with animated solutions",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return setup(cmd.ErrOrStderr())
		},
		RunE: runTUI,
	}
	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".paaviz", "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")
	rootCmd.PersistentFlags().StringVar(&preset, "preset", "", "use preset configuration")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "log level (debug, info, warn, error)")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list problems",
		Args:  cobra.NoArgs,
		RunE:  listProblems,
	}
	listCmd.Flags().StringVar(&subject, "subject", "all", "filter by subject")
	listCmd.Flags().BoolVar(&asJSON, "json", false, "print as json")

	renderCmd := &cobra.Command{
		Use:   "render [id|category]",
		Short: "render one frame to png",
		Args:  cobra.ExactArgs(1),
		RunE:  renderFrame,
	}
	renderCmd.Flags().IntVar(&step, "step", 0, "animation step (0-359)")
	renderCmd.Flags().BoolVar(&reveal, "reveal", false, "show the solution")
	renderCmd.Flags().StringVarP(&pngOut, "output", "o", "frame.png", "output file")
	renderCmd.Flags().IntVar(&size, "size", anim.SurfaceSize, "output side in pixels")

	animateCmd := &cobra.Command{
		Use:   "animate [id|category]",
		Short: "export one animation cycle to gif",
		Args:  cobra.ExactArgs(1),
		RunE:  animateGIF,
	}
	animateCmd.Flags().BoolVar(&reveal, "reveal", false, "show the solution")
	animateCmd.Flags().StringVarP(&gifOut, "output", "o", "animation.gif", "output file")
	animateCmd.Flags().IntVar(&size, "size", anim.SurfaceSize, "output side in pixels")
	animateCmd.Flags().IntVar(&stride, "stride", 0, "keep every n-th step (default from config)")

	traceCmd := &cobra.Command{
		Use:   "trace [id|category]",
		Short: "plot ink coverage over one cycle",
		Args:  cobra.ExactArgs(1),
		RunE:  traceCoverage,
	}
	traceCmd.Flags().BoolVar(&reveal, "reveal", false, "show the solution")
	traceCmd.Flags().IntVar(&plotRows, "height", 12, "plot height")
	traceCmd.Flags().BoolVar(&saveTrace, "save", false, "save the trace to the data directory")

	runsCmd := &cobra.Command{
		Use:   "runs",
		Short: "list saved traces",
		Args:  cobra.NoArgs,
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot a saved trace",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotRows, "height", 12, "plot height")

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "print a saved trace as json",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	batchCmd := &cobra.Command{
		Use:   "batch [scenario.yaml]",
		Short: "run a scripted batch of exports",
		Args:  cobra.ExactArgs(1),
		RunE:  runBatch,
	}
	batchCmd.Flags().StringVar(&outDir, "out", "out", "output directory")
	batchCmd.Flags().IntVar(&workers, "workers", 4, "concurrent jobs")

	playCmd := &cobra.Command{
		Use:   "play [id|category]",
		Short: "play the animation in the terminal",
		Args:  cobra.ExactArgs(1),
		RunE:  playLive,
	}
	playCmd.Flags().BoolVar(&reveal, "reveal", false, "show the solution")
	playCmd.Flags().Float64Var(&seconds, "time", 10, "seconds to play")
	playCmd.Flags().BoolVar(&noColor, "no-color", false, "plain braille")

	windowCmd := &cobra.Command{
		Use:   "window [id]",
		Short: "open a problem in a desktop window",
		Args:  cobra.MaximumNArgs(1),
		RunE:  openWindow,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
			defer w.Flush()
			fmt.Fprintln(w, "PRESET\tINTERVAL\tREVEAL\tTHEME")
			for _, name := range config.ListPresets() {
				p, _ := config.GetPreset(name)
				fmt.Fprintf(w, "%s\t%d\t%d\t%s\n", name, p.IntervalMS, p.RevealMS, p.Theme)
			}
		},
	}

	themesCmd := &cobra.Command{
		Use:   "themes",
		Short: "list color themes",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			for _, name := range viz.ThemeNames() {
				t := viz.GetTheme(name)
				fmt.Fprintf(cmd.OutOrStdout(), "%s %s\n", viz.Badge(name, string(t.Primary)), viz.GradientText("■■■■■■■■", t.Primary, t.Accent))
			}
		},
	}

	rootCmd.AddCommand(listCmd, renderCmd, animateCmd, traceCmd, runsCmd, plotCmd, exportJSONCmd,
		batchCmd, playCmd, windowCmd, presetsCmd, themesCmd)
	return rootCmd
}

// setup loads the config file, applies the preset and flag overrides and
// builds the stderr logger. The TUI replaces the logger with a file one.
func setup(stderr io.Writer) error {
	cfg = config.DefaultConfig()
	if configFile != "" {
		c, err := config.Load(configFile)
		if err != nil {
			return err
		}
		cfg = c
	}
	if preset != "" {
		if err := cfg.Apply(preset); err != nil {
			return fmt.Errorf("%w (available: %v)", err, config.ListPresets())
		}
	}
	if logLevel != "" {
		cfg.Log.Level = logLevel
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	logger = newLogger(stderr, cfg)
	return nil
}

func newLogger(w io.Writer, cfg *config.Config) *log.Logger {
	return log.NewWithOptions(w, log.Options{
		Level:           cfg.LogLevel(),
		ReportTimestamp: true,
		TimeFormat:      time.Kitchen,
		Prefix:          "paaviz",
	})
}

func runTUI(cmd *cobra.Command, args []string) error {
	f, err := os.OpenFile(cfg.Log.File, os.O_CREATE|os.O_WRONLY|os.O_APPEND, 0o644)
	if err != nil {
		return fmt.Errorf("open log file: %w", err)
	}
	defer f.Close()
	return tui.Run(cmd.Context(), cfg, newLogger(f, cfg))
}

type problemRow struct {
	ID            int    `json:"id"`
	Subject       string `json:"subject"`
	Visualization string `json:"visualization"`
	Question      string `json:"question"`
	Correct       string `json:"correct"`
}

func listProblems(cmd *cobra.Command, args []string) error {
	s, err := catalog.ParseSubject(subject)
	if err != nil {
		return err
	}
	problems := catalog.BySubject(s)

	if asJSON {
		rows := make([]problemRow, len(problems))
		for i, p := range problems {
			rows[i] = problemRow{p.ID, p.Subject.String(), p.Visualization, p.Question, p.Correct}
		}
		enc := json.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent("", "  ")
		return enc.Encode(rows)
	}

	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tSUBJECT\tVISUALIZATION\tQUESTION")
	for _, p := range problems {
		fmt.Fprintf(w, "%d\t%s\t%s\t%s\n", p.ID, p.Subject, p.Visualization, p.Teaser(50))
	}
	return w.Flush()
}

func renderFrame(cmd *cobra.Command, args []string) error {
	in, err := automation.Resolve(args[0], reveal)
	if err != nil {
		return err
	}
	if step < 0 || step >= 360 {
		return fmt.Errorf("step %d out of range 0-359", step)
	}
	err = export.WriteFile(pngOut, func(w io.Writer) error {
		return export.PNG(w, in, anim.Step(step), size)
	})
	if err != nil {
		return err
	}
	logger.Info("frame written", "file", pngOut, "category", in.Category, "step", step, "reveal", in.Reveal)
	return nil
}

func animateGIF(cmd *cobra.Command, args []string) error {
	in, err := automation.Resolve(args[0], reveal)
	if err != nil {
		return err
	}
	if stride <= 0 {
		stride = cfg.Export.Stride
	}
	opts := export.GIFOptions{Stride: stride, DelayCS: cfg.Export.FrameDelayCS, Size: size}

	start := time.Now()
	var n int
	err = export.WriteFile(gifOut, func(w io.Writer) error {
		var err error
		n, err = export.GIF(w, in, opts)
		return err
	})
	if err != nil {
		return err
	}
	logger.Info("animation written", "file", gifOut, "frames", n, "took", time.Since(start).Round(time.Millisecond))
	return nil
}

func traceCoverage(cmd *cobra.Command, args []string) error {
	in, err := automation.Resolve(args[0], reveal)
	if err != nil {
		return err
	}
	tr, err := analysis.Run(in, analysis.Options{Stride: 2})
	if err != nil {
		return err
	}
	out := cmd.OutOrStdout()
	fmt.Fprintln(out, analysis.Plot(tr, 72, plotRows))
	fmt.Fprintf(out, "\nperiod: %d frames  distinct: %d  settles at: %d\n",
		analysis.Period(tr.Digests), analysis.Distinct(tr.Digests), analysis.SettlesAt(tr.Digests))
	printMetrics(out, tr.Metrics)

	if !saveTrace {
		return nil
	}
	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}
	runID, err := st.Save(tr)
	if err != nil {
		return err
	}
	fmt.Fprintf(out, "saved as %s\n", runID)
	return nil
}

func printMetrics(w io.Writer, m map[string]float64) {
	names := make([]string, 0, len(m))
	for name := range m {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		fmt.Fprintf(w, "  %-14s %.4f\n", name, m[name])
	}
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tCATEGORY\tREVEAL\tFRAMES\tmotion\tcoverage_mean\tTIMESTAMP")
	for _, r := range runs {
		fmt.Fprintf(w, "%s\t%s\t%t\t%d\t%.3f\t%.3f\t%s\n", r.ID, r.Category, r.Reveal, r.Frames,
			r.Metrics["motion"], r.Metrics["coverage_mean"], r.Timestamp.Format(time.RFC3339))
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	tr, err := storage.New(dataDir).LoadTrace(args[0])
	if err != nil {
		return err
	}
	fmt.Fprintln(cmd.OutOrStdout(), analysis.Plot(tr, 72, plotRows))
	printMetrics(cmd.OutOrStdout(), tr.Metrics)
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	tr, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSON(cmd.OutOrStdout(), meta, tr)
}

func runBatch(cmd *cobra.Command, args []string) error {
	sc, err := automation.LoadScenario(args[0])
	if err != nil {
		return err
	}
	logger.Info("running scenario", "name", sc.Name, "jobs", len(sc.Jobs), "workers", workers)
	results, err := automation.RunScenario(cmd.Context(), sc, automation.Options{
		Dir:     outDir,
		Workers: workers,
		DelayCS: cfg.Export.FrameDelayCS,
		Logger:  logger,
	})
	w := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "TARGET\tOUTPUT\tFRAMES\tSTATUS")
	for _, r := range results {
		status := "ok"
		if r.Err != nil {
			status = r.Err.Error()
		}
		fmt.Fprintf(w, "%s\t%s\t%d\t%s\n", r.Job.Target, r.Output, r.Frames, status)
	}
	w.Flush()
	return err
}

func playLive(cmd *cobra.Command, args []string) error {
	in, err := automation.Resolve(args[0], reveal)
	if err != nil {
		return err
	}
	ctx, cancel := context.WithTimeout(cmd.Context(), time.Duration(seconds*float64(time.Second)))
	defer cancel()

	title := in.Category
	if in.ProblemID > 0 {
		title = fmt.Sprintf("Problema #%d %s", in.ProblemID, in.Category)
	}
	lr := tui.NewLiveRenderer(cmd.OutOrStdout(), title, 0, 0, !noColor)
	d := anim.New(
		anim.WithInterval(cfg.Interval()),
		anim.WithLogger(logger.WithPrefix("anim")),
		anim.WithFrameHook(lr.OnFrame),
	)
	lr.Start()
	defer lr.Stop()
	if err := d.Start(ctx, in); err != nil {
		return err
	}
	<-ctx.Done()
	d.Stop()
	logger.Debug("playback finished", "frames", lr.Frames())
	return nil
}

func openWindow(cmd *cobra.Command, args []string) error {
	id := 1
	if len(args) == 1 {
		in, err := automation.Resolve(args[0], false)
		if err != nil {
			return err
		}
		if in.ProblemID == 0 {
			return fmt.Errorf("window needs a problem id, got %q", args[0])
		}
		id = in.ProblemID
	}
	return gui.Run(cmd.Context(), cfg, logger, id)
}
