package main

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"
	"text/tabwriter"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/san-kum/drainsim/internal/analysis"
	"github.com/san-kum/drainsim/internal/config"
	"github.com/san-kum/drainsim/internal/drain"
	"github.com/san-kum/drainsim/internal/fluid"
	"github.com/san-kum/drainsim/internal/metrics"
	"github.com/san-kum/drainsim/internal/storage"
	"github.com/san-kum/drainsim/internal/viz"
)

var (
	dataDir        string
	r1             float64
	r2             float64
	volumeLiters   float64
	outletDiameter float64
	cd             float64
	fluidName      string
	dt             float64
	configFile     string
	preset         string
	noSave         bool
)

func main() {
	rootCmd := &cobra.Command{
		Use:   "drainsim",
		Short: "frustum tank drainage simulator",
		Long:  "Simulates gravity drainage of a frustum-shaped tank through a small outlet,\nusing Torricelli's law with discharge-coefficient and viscosity corrections.",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".drainsim", "data directory")

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "run a drainage simulation",
		RunE:  runSimulation,
	}
	addTankFlags(runCmd)
	runCmd.Flags().BoolVar(&noSave, "no-save", false, "do not persist the run")

	compareCmd := &cobra.Command{
		Use:   "compare",
		Short: "run ideal and realistic drainage concurrently and compare",
		RunE:  compareRuns,
	}
	addTankFlags(compareCmd)

	fluidsCmd := &cobra.Command{
		Use:   "fluids",
		Short: "list the fluid catalog",
		RunE:  listFluids,
	}

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list saved runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot height vs time of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}

	ratesCmd := &cobra.Command{
		Use:   "rates [run_id]",
		Short: "finite-difference drain rate of a saved run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRates,
	}

	exportCSVCmd := &cobra.Command{
		Use:   "export-csv [run_id]",
		Short: "export run trace to CSV",
		Args:  cobra.ExactArgs(1),
		RunE:  exportCSV,
	}

	exportJSONCmd := &cobra.Command{
		Use:   "export-json [run_id]",
		Short: "export run data to JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportJSON,
	}

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list available presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, name := range config.ListPresets() {
				fmt.Println(name)
			}
			return nil
		},
	}

	liveCmd := &cobra.Command{
		Use:   "live",
		Short: "watch the tank drain in the terminal",
		RunE:  runLive,
	}
	addTankFlags(liveCmd)

	rootCmd.AddCommand(runCmd, compareCmd, fluidsCmd, listCmd, plotCmd, ratesCmd, exportCSVCmd, exportJSONCmd, presetsCmd, liveCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

func addTankFlags(cmd *cobra.Command) {
	cmd.Flags().Float64Var(&r1, "r1", config.DefaultR1, "upper radius (m)")
	cmd.Flags().Float64Var(&r2, "r2", config.DefaultR2, "lower radius (m)")
	cmd.Flags().Float64Var(&volumeLiters, "volume", config.DefaultVolumeLiters, "volume (L)")
	cmd.Flags().Float64Var(&outletDiameter, "outlet", config.DefaultOutletDiameter, "outlet diameter (m)")
	cmd.Flags().Float64Var(&cd, "cd", config.DefaultCd, "discharge coefficient")
	cmd.Flags().StringVar(&fluidName, "fluid", config.DefaultFluid, "fluid name")
	cmd.Flags().Float64Var(&dt, "dt", config.DefaultDt, "timestep (s)")
	cmd.Flags().StringVar(&configFile, "config", "", "config file path (yaml)")
	cmd.Flags().StringVar(&preset, "preset", "", "use preset configuration")
}

// buildConfig resolves preset < config file < flags, flags last.
func buildConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg := config.DefaultConfig()

	if preset != "" {
		p := config.GetPreset(preset)
		if p == nil {
			return nil, fmt.Errorf("unknown preset: %s (available: %v)", preset, config.ListPresets())
		}
		// Copy so flag overrides and clamping never touch the preset table.
		c := *p
		cfg = &c
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return nil, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("r1") {
		cfg.Tank.R1 = r1
	}
	if cmd.Flags().Changed("r2") {
		cfg.Tank.R2 = r2
	}
	if cmd.Flags().Changed("volume") {
		cfg.Tank.VolumeLiters = volumeLiters
	}
	if cmd.Flags().Changed("outlet") {
		cfg.Tank.OutletDiameter = outletDiameter
	}
	if cmd.Flags().Changed("cd") {
		cfg.Flow.DischargeCoefficient = cd
	}
	if cmd.Flags().Changed("fluid") {
		cfg.Flow.Fluid = fluidName
	}
	if cmd.Flags().Changed("dt") {
		cfg.Dt = dt
	}

	// Caller policy: clamp the coefficient into [0.5, 1.0] before the
	// core sees it.
	if cfg.Flow.DischargeCoefficient < 0.5 {
		fmt.Printf("note: discharge coefficient %.2f clamped to 0.5\n", cfg.Flow.DischargeCoefficient)
		cfg.Flow.DischargeCoefficient = 0.5
	}
	if cfg.Flow.DischargeCoefficient > 1.0 {
		fmt.Printf("note: discharge coefficient %.2f clamped to 1.0\n", cfg.Flow.DischargeCoefficient)
		cfg.Flow.DischargeCoefficient = 1.0
	}

	return cfg, nil
}

func bucketFromConfig(cfg *config.Config) (*drain.Bucket, error) {
	f, err := fluid.Lookup(cfg.Flow.Fluid)
	if err != nil {
		return nil, err
	}
	return drain.NewBucket(
		cfg.Tank.R1, cfg.Tank.R2, cfg.Tank.VolumeLiters,
		cfg.Tank.OutletDiameter, cfg.Flow.DischargeCoefficient, f,
	)
}

func runSimulation(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	bucket, err := bucketFromConfig(cfg)
	if err != nil {
		return err
	}

	bucket.AddMetric(metrics.NewPeakOutflow())
	bucket.AddMetric(metrics.NewMeanOutflow())
	bucket.AddMetric(metrics.NewDrainedVolume(cfg.Dt))

	fmt.Printf("tank height: %.4f m\n", bucket.Geometry().Height())
	fmt.Printf("outlet area: %.6e m²\n", bucket.Flow().OutletArea())
	fmt.Printf("fluid: %s, cd: %.2f, dt: %g s\n\n", cfg.Flow.Fluid, cfg.Flow.DischargeCoefficient, cfg.Dt)

	start := time.Now()
	result, err := bucket.Simulate(cfg.Dt)
	if err != nil {
		return err
	}
	elapsed := time.Since(start)

	fmt.Printf("completed in %v (%d samples)\n", elapsed, len(result.Trace))
	switch result.Reason {
	case drain.Drained:
		fmt.Printf("drain time: %.2f s\n", result.Trace.DrainTime())
	case drain.TimedOut:
		fmt.Printf("did not drain: hit the %.0f s safety cap at height %.4f m\n",
			drain.MaxDrainTime, result.Trace.Final().Height)
	}

	fmt.Println("\nmetrics:")
	for name, val := range result.Metrics {
		fmt.Printf("  %s: %.6f\n", name, val)
	}

	if !noSave {
		st := storage.New(dataDir)
		if err := st.Init(); err != nil {
			return err
		}
		runID, err := st.Save(cfg, result)
		if err != nil {
			return err
		}
		fmt.Printf("\nrun id: %s\n", runID)
	}

	return nil
}

func compareRuns(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}

	f, err := fluid.Lookup(cfg.Flow.Fluid)
	if err != nil {
		return err
	}

	pair, err := drain.NewPair(
		cfg.Tank.R1, cfg.Tank.R2, cfg.Tank.VolumeLiters,
		cfg.Tank.OutletDiameter, cfg.Flow.DischargeCoefficient, f,
	)
	if err != nil {
		return err
	}

	fmt.Println("running ideal and realistic drainage...")
	pr, err := pair.Run(cfg.Dt)
	if err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "RUN\tCD\tFLUID\tREASON\tDRAIN TIME\tSAMPLES")
	fmt.Fprintf(w, "ideal\t%.2f\t%s\t%s\t%.2fs\t%d\n",
		pair.Ideal.Flow().Cd(), pair.Ideal.Flow().Fluid().Name,
		pr.Ideal.Reason, pr.Ideal.Trace.DrainTime(), len(pr.Ideal.Trace))
	fmt.Fprintf(w, "realistic\t%.2f\t%s\t%s\t%.2fs\t%d\n",
		pair.Realistic.Flow().Cd(), pair.Realistic.Flow().Fluid().Name,
		pr.Realistic.Reason, pr.Realistic.Trace.DrainTime(), len(pr.Realistic.Trace))
	if err := w.Flush(); err != nil {
		return err
	}

	if pr.Ideal.Reason == drain.Drained && pr.Realistic.Reason == drain.Drained {
		fmt.Printf("\nrealistic/ideal drain time ratio: %.3f\n",
			pr.Realistic.Trace.DrainTime()/pr.Ideal.Trace.DrainTime())
	}

	fmt.Println()
	fmt.Println(viz.PlotComparison(pr, "height (m): ideal vs realistic"))

	return nil
}

func listFluids(cmd *cobra.Command, args []string) error {
	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "NAME\tDENSITY (kg/m³)\tDYN VISC (Pa·s)\tKIN VISC (m²/s)")
	for _, name := range fluid.Names() {
		p, err := fluid.Lookup(name)
		if err != nil {
			return err
		}
		fmt.Fprintf(w, "%s\t%.0f\t%.2e\t%.2e\n", p.Name, p.Density, p.DynamicViscosity, p.KinematicViscosity)
	}
	return w.Flush()
}

func listRuns(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	runs, err := st.List()
	if err != nil {
		return err
	}

	if len(runs) == 0 {
		fmt.Println("no runs found")
		return nil
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tTIME\tFLUID\tCD\tDT\tREASON\tDRAIN TIME")
	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%.2f\t%.3fs\t%s\t%.2fs\n",
			run.ID,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Fluid,
			run.DischargeCoefficient,
			run.Dt,
			run.Reason,
			run.DrainTime,
		)
	}
	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("fluid: %s, cd: %.2f, reason: %s\n\n", meta.Fluid, meta.DischargeCoefficient, meta.Reason)
	fmt.Println(viz.PlotTrace(trace, "water height (m) vs sample"))

	return nil
}

func plotRates(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data")
	}

	rates := analysis.Rates(trace)
	summary := analysis.Summarize(trace)

	fmt.Println(viz.PlotRates(rates, "dh/dt (m/s) vs sample"))
	fmt.Println()
	fmt.Printf("drain time:   %.2f s\n", summary.DrainTime)
	fmt.Printf("final height: %.6f m\n", summary.FinalHeight)
	fmt.Printf("peak rate:    %.6f m/s\n", summary.PeakRate)
	fmt.Printf("mean rate:    %.6f m/s\n", summary.MeanRate)

	return nil
}

func exportCSV(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	if len(trace) == 0 {
		return fmt.Errorf("no data to export")
	}

	w := csv.NewWriter(os.Stdout)
	defer w.Flush()

	if err := w.Write([]string{"time", "height"}); err != nil {
		return err
	}
	for _, sample := range trace {
		row := []string{
			strconv.FormatFloat(sample.Time, 'f', 6, 64),
			strconv.FormatFloat(sample.Height, 'f', 9, 64),
		}
		if err := w.Write(row); err != nil {
			return err
		}
	}

	return nil
}

func exportJSON(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}
	trace, err := st.LoadTrace(args[0])
	if err != nil {
		return err
	}
	return storage.ExportJSONStdout(meta, trace)
}

func runLive(cmd *cobra.Command, args []string) error {
	cfg, err := buildConfig(cmd)
	if err != nil {
		return err
	}
	bucket, err := bucketFromConfig(cfg)
	if err != nil {
		return err
	}
	if cfg.Dt <= 0 {
		return fmt.Errorf("%w: got %g", drain.ErrTimeStep, cfg.Dt)
	}

	m := viz.NewModel(bucket, cfg.Dt)
	p := tea.NewProgram(m)
	if _, err := p.Run(); err != nil {
		return err
	}
	return nil
}
