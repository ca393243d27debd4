package main

import (
	"fmt"
	"math"
	"os"
	"sort"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/guptarohit/asciigraph"
	"github.com/spf13/cobra"

	"physlab/internal/classify"
	"physlab/internal/config"
	"physlab/internal/export"
	"physlab/internal/kinematics"
	"physlab/internal/recorder"
	"physlab/internal/registry"
	"physlab/internal/runs"
	"physlab/internal/session"
	"physlab/internal/viz"
)

var (
	dataDir    string
	configFile string
	dt         float64
	duration   float64
	fps        int
	csvPath    string
	setFlags   []string
	// compare
	compareKey    string
	compareValues string
	// problems
	probTitle string
	probModel string
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "physlab",
		Short: "textbook physics problems as live simulations",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", config.DefaultDataDir, "data directory")
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "config file path (yaml)")

	runCmd := &cobra.Command{
		Use:   "run [model]",
		Short: "run a model headless and print the recorded observables",
		Args:  cobra.ExactArgs(1),
		RunE:  runHeadless,
	}
	runCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "tick size")
	runCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration cap for unbounded models")
	runCmd.Flags().StringArrayVar(&setFlags, "set", nil, "parameter override key=value (repeatable)")
	runCmd.Flags().StringVar(&csvPath, "csv", "", "export recorded frames to CSV")

	liveCmd := &cobra.Command{
		Use:   "live [model]",
		Short: "run a model with live visualization and adjustable parameters",
		Args:  cobra.ExactArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	liveCmd.Flags().StringArrayVar(&setFlags, "set", nil, "parameter override key=value (repeatable)")
	liveCmd.Flags().StringVar(&csvPath, "csv", "physlab.csv", "CSV path for in-session export")

	solveCmd := &cobra.Command{
		Use:   "solve [problem text]",
		Short: "classify a problem statement and visualize it",
		Args:  cobra.MinimumNArgs(1),
		RunE:  runSolve,
	}
	solveCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	solveCmd.Flags().StringVar(&csvPath, "csv", "physlab.csv", "CSV path for in-session export")

	modelsCmd := &cobra.Command{
		Use:   "models",
		Short: "list models and their default parameters",
		RunE:  listModels,
	}

	compareCmd := &cobra.Command{
		Use:   "compare [model]",
		Short: "run one model across several values of a parameter and overlay the curves",
		Args:  cobra.ExactArgs(1),
		RunE:  runCompare,
	}
	compareCmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "tick size")
	compareCmd.Flags().Float64Var(&duration, "time", config.DefaultDuration, "duration cap for unbounded models")
	compareCmd.Flags().StringArrayVar(&setFlags, "set", nil, "parameter override key=value (repeatable)")
	compareCmd.Flags().StringVar(&compareKey, "param", "", "parameter to vary")
	compareCmd.Flags().StringVar(&compareValues, "values", "", "comma-separated values")
	compareCmd.MarkFlagRequired("param")
	compareCmd.MarkFlagRequired("values")

	problemsCmd := &cobra.Command{
		Use:   "problems",
		Short: "manage saved problem configurations",
	}
	problemsSaveCmd := &cobra.Command{
		Use:   "save",
		Short: "save a problem configuration",
		RunE:  saveProblem,
	}
	problemsSaveCmd.Flags().StringVar(&probTitle, "title", "", "problem title")
	problemsSaveCmd.Flags().StringVar(&probModel, "model", "", "model id")
	problemsSaveCmd.Flags().StringArrayVar(&setFlags, "set", nil, "parameter override key=value (repeatable)")
	problemsSaveCmd.MarkFlagRequired("title")
	problemsSaveCmd.MarkFlagRequired("model")
	problemsListCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved problems",
		RunE:  listProblems,
	}
	problemsRmCmd := &cobra.Command{
		Use:   "rm [id]",
		Short: "remove a saved problem",
		Args:  cobra.ExactArgs(1),
		RunE:  removeProblem,
	}
	problemsPlayCmd := &cobra.Command{
		Use:   "play [id]",
		Short: "load a saved problem into a live session",
		Args:  cobra.ExactArgs(1),
		RunE:  playProblem,
	}
	problemsPlayCmd.Flags().IntVar(&fps, "fps", config.DefaultFPS, "frame rate")
	problemsPlayCmd.Flags().StringVar(&csvPath, "csv", "physlab.csv", "CSV path for in-session export")
	problemsCmd.AddCommand(problemsSaveCmd, problemsListCmd, problemsRmCmd, problemsPlayCmd)

	rootCmd.AddCommand(runCmd, liveCmd, solveCmd, modelsCmd, compareCmd, problemsCmd)

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "error:", err)
		os.Exit(1)
	}
}

func loadConfig() *config.Config {
	if configFile == "" {
		return config.DefaultConfig()
	}
	cfg, err := config.Load(configFile)
	if err != nil {
		fmt.Fprintln(os.Stderr, "config:", err)
		return config.DefaultConfig()
	}
	return cfg
}

func parseSets(args []string) (map[string]float64, error) {
	out := make(map[string]float64, len(args))
	for _, s := range args {
		key, val, ok := strings.Cut(s, "=")
		if !ok {
			return nil, fmt.Errorf("invalid --set %q, want key=value", s)
		}
		v, err := strconv.ParseFloat(val, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid --set %q: %w", s, err)
		}
		out[key] = v
	}
	return out, nil
}

func buildModel(id string, cfg *config.Config) (kinematics.Model, error) {
	params, err := parseSets(setFlags)
	if err != nil {
		return nil, err
	}
	for k, v := range cfg.Params {
		if _, ok := params[k]; !ok {
			params[k] = v
		}
	}
	return registry.Build(id, params)
}

func runHeadless(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	model, err := buildModel(args[0], cfg)
	if err != nil {
		return err
	}

	sess, peakAt := simulate(model, dt, duration)

	frames := sess.Recorder().Frames()
	printSummary(args[0], sess, peakAt, frames)

	if series := sess.Recorder().Series(primaryField(model.Kind())); len(series) >= 2 {
		fmt.Println(asciigraph.Plot(series,
			asciigraph.Height(10),
			asciigraph.Width(90),
			asciigraph.Caption(primaryField(model.Kind()).String()),
		))
	}

	if csvPath != "" {
		if err := export.WriteCSVFile(csvPath, frames); err != nil {
			return err
		}
		fmt.Println("exported", csvPath)
	}
	return nil
}

// simulate drives a session to completion or to the duration cap with a
// fixed tick, the headless stand-in for a display frame source.
func simulate(model kinematics.Model, dt, maxTime float64) (*session.Session, float64) {
	peakAt := math.NaN()
	sess := session.New(model)
	sess.OnPeak(func(t float64) { peakAt = t })
	sess.Start()
	for sess.Phase() == session.Playing && sess.Clock() < maxTime {
		sess.Tick(dt)
	}
	if sess.Phase() == session.Playing {
		sess.Pause()
	}
	return sess, peakAt
}

func printSummary(id string, sess *session.Session, peakAt float64, frames []recorder.Frame) {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintf(w, "model\t%s\n", id)
	fmt.Fprintf(w, "phase\t%s\n", sess.Phase())
	fmt.Fprintf(w, "clock\t%.4f s\n", sess.Clock())
	if t := sess.Model().TerminalTime(); !math.IsInf(t, 1) {
		fmt.Fprintf(w, "terminal time\t%.4f s\n", t)
	}
	if !math.IsNaN(peakAt) {
		fmt.Fprintf(w, "peak at\t%.4f s\n", peakAt)
	}
	fmt.Fprintf(w, "frames\t%d\n", len(frames))
	if len(frames) > 0 {
		last := frames[len(frames)-1]
		fmt.Fprintf(w, "final velocity\t%.4f m/s\n", last.Velocity)
		fmt.Fprintf(w, "total energy\t%.4f J\n", last.Total)
	}
	w.Flush()
}

func primaryField(kind kinematics.Kind) recorder.Field {
	switch kind {
	case kinematics.KindSpring, kinematics.KindCircular:
		return recorder.FieldDisplacement
	case kinematics.KindPendulum:
		return recorder.FieldDisplacement
	}
	return recorder.FieldHeight
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	model, err := buildModel(args[0], cfg)
	if err != nil {
		return err
	}
	return viz.Run(args[0], model, fps, csvPath)
}

func runSolve(cmd *cobra.Command, args []string) error {
	text := strings.Join(args, " ")
	analysis, err := classify.Keyword{}.Classify(text)
	if err != nil {
		return err
	}

	fmt.Printf("model: %s\n", analysis.ModelID)
	keys := make([]string, 0, len(analysis.Parameters))
	for k := range analysis.Parameters {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		fmt.Printf("  %s = %.4g\n", k, analysis.Parameters[k])
	}

	model, err := registry.Build(analysis.ModelID, analysis.Parameters)
	if err != nil {
		return err
	}
	return viz.Run(analysis.ModelID, model, fps, csvPath)
}

func listModels(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "MODEL\tDEFAULTS")
	for _, id := range registry.IDs() {
		defaults, _ := registry.Defaults(id)
		keys := make([]string, 0, len(defaults))
		for k := range defaults {
			keys = append(keys, k)
		}
		sort.Strings(keys)
		parts := make([]string, len(keys))
		for i, k := range keys {
			parts[i] = fmt.Sprintf("%s=%.4g", k, defaults[k])
		}
		fmt.Fprintf(w, "%s\t%s\n", id, strings.Join(parts, " "))
	}
	return w.Flush()
}

func runCompare(cmd *cobra.Command, args []string) error {
	cfg := loadConfig()
	base, err := buildModel(args[0], cfg)
	if err != nil {
		return err
	}

	comp := runs.NewComparator()
	for _, raw := range strings.Split(compareValues, ",") {
		v, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return fmt.Errorf("invalid value %q: %w", raw, err)
		}
		model, err := base.WithParam(compareKey, v)
		if err != nil {
			return err
		}
		sess, _ := simulate(model, dt, duration)
		label := fmt.Sprintf("%s=%.4g", compareKey, v)
		comp.Save(label, args[0], model.Params(), sess.Recorder().Frames())
	}

	field := primaryField(base.Kind())
	series := make([][]float64, 0, comp.Len())
	labels := make([]string, 0, comp.Len())
	for _, r := range comp.List() {
		if s := recorder.SeriesOf(r.Frames, field); len(s) >= 2 {
			series = append(series, s)
			labels = append(labels, r.Label)
		}
	}
	if len(series) == 0 {
		return fmt.Errorf("no comparable data recorded")
	}
	fmt.Println(asciigraph.PlotMany(series,
		asciigraph.Height(12),
		asciigraph.Width(90),
		asciigraph.Caption(fmt.Sprintf("%s (%s)", field, strings.Join(labels, ", "))),
	))
	return nil
}
