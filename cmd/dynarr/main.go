package main

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"text/tabwriter"
	"time"

	"github.com/spf13/cobra"

	"github.com/penev-ff/dynarr"
	"github.com/penev-ff/dynarr/internal/config"
	"github.com/penev-ff/dynarr/internal/storage"
	"github.com/penev-ff/dynarr/internal/viz"
	"github.com/penev-ff/dynarr/internal/workload"
)

var (
	dataDir    string
	configFile string
	seed       int64
	capacity   int
	plotWidth  int
	plotHeight int
)

// main registers the dynarr workload-lab commands and executes the root
// command, exiting with status 1 on error.
func main() {
	rootCmd := &cobra.Command{
		Use:   "dynarr",
		Short: "dynamic array workload lab",
	}

	rootCmd.PersistentFlags().StringVar(&dataDir, "data", ".dynarr", "data directory")

	runCmd := &cobra.Command{
		Use:   "run [preset]",
		Short: "replay a workload and store the recorded run",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runWorkload,
	}
	runCmd.Flags().StringVar(&configFile, "config", "", "workload config file (yaml)")
	runCmd.Flags().Int64Var(&seed, "seed", 0, "override workload seed")
	runCmd.Flags().IntVar(&capacity, "capacity", 0, "override initial capacity")

	listCmd := &cobra.Command{
		Use:   "list",
		Short: "list stored runs",
		RunE:  listRuns,
	}

	plotCmd := &cobra.Command{
		Use:   "plot [run_id]",
		Short: "plot length and capacity of a stored run",
		Args:  cobra.ExactArgs(1),
		RunE:  plotRun,
	}
	plotCmd.Flags().IntVar(&plotWidth, "width", 80, "plot width")
	plotCmd.Flags().IntVar(&plotHeight, "height", 10, "plot height")

	exportCmd := &cobra.Command{
		Use:   "export [run_id]",
		Short: "export run metadata as JSON",
		Args:  cobra.ExactArgs(1),
		RunE:  exportRun,
	}

	benchCmd := &cobra.Command{
		Use:   "bench",
		Short: "benchmark append throughput",
		RunE:  benchPush,
	}

	liveCmd := &cobra.Command{
		Use:   "live [preset]",
		Short: "replay a workload with live visualization",
		Args:  cobra.MaximumNArgs(1),
		RunE:  runLive,
	}
	liveCmd.Flags().StringVar(&configFile, "config", "", "workload config file (yaml)")
	liveCmd.Flags().Int64Var(&seed, "seed", 0, "override workload seed")

	presetsCmd := &cobra.Command{
		Use:   "presets",
		Short: "list built-in workload presets",
		RunE: func(cmd *cobra.Command, args []string) error {
			for _, p := range config.ListPresets() {
				fmt.Println(p)
			}
			return nil
		},
	}

	rootCmd.AddCommand(runCmd, listCmd, plotCmd, exportCmd, benchCmd, liveCmd, presetsCmd)

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// resolveWorkload layers preset, config file, and flag overrides the
// same way for run and live.
func resolveWorkload(cmd *cobra.Command, args []string) (workload.Workload, error) {
	cfg := config.DefaultConfig()

	if len(args) > 0 {
		preset := config.GetPreset(args[0])
		if preset == nil {
			return workload.Workload{}, fmt.Errorf("unknown preset: %s (available: %v)", args[0], config.ListPresets())
		}
		cfg = preset
	}

	if configFile != "" {
		loaded, err := config.Load(configFile)
		if err != nil {
			return workload.Workload{}, fmt.Errorf("failed to load config: %w", err)
		}
		cfg = loaded
	}

	if cmd.Flags().Changed("seed") {
		cfg.Seed = seed
	}
	if cmd.Flags().Changed("capacity") {
		cfg.Capacity = capacity
	}

	return cfg.ToWorkload(), nil
}

func runWorkload(cmd *cobra.Command, args []string) error {
	w, err := resolveWorkload(cmd, args)
	if err != nil {
		return err
	}

	st := storage.New(dataDir)
	if err := st.Init(); err != nil {
		return err
	}

	fmt.Printf("replaying %s...\n", w.Name)
	start := time.Now()

	result, err := workload.NewRunner(w.Seed).Run(context.Background(), w)
	if err != nil {
		return err
	}

	elapsed := time.Since(start)

	runID, err := st.Save(w, result)
	if err != nil {
		return err
	}

	fmt.Printf("completed in %v\n", elapsed)
	fmt.Printf("run id: %s\n", runID)
	fmt.Printf("operations: %d\n\n", result.Applied)
	fmt.Println(viz.Summary(w.Name, result.Metrics))

	return nil
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
	fmt.Fprintln(w, "ID\tWORKLOAD\tTIME\tOPS\tGROWS\tFINAL LEN/CAP")

	for _, run := range runs {
		fmt.Fprintf(w, "%s\t%s\t%s\t%d\t%.0f\t%.0f/%.0f\n",
			run.ID,
			run.Workload,
			run.Timestamp.Format("2006-01-02 15:04:05"),
			run.Applied,
			run.Metrics["grows"],
			run.Metrics["final_len"],
			run.Metrics["final_cap"],
		)
	}

	return w.Flush()
}

func plotRun(cmd *cobra.Command, args []string) error {
	runID := args[0]

	st := storage.New(dataDir)
	meta, err := st.Load(runID)
	if err != nil {
		return err
	}

	samples, err := st.LoadSamples(runID)
	if err != nil {
		return err
	}
	if len(samples) == 0 {
		return fmt.Errorf("no data to plot")
	}

	fmt.Printf("run: %s\n", meta.ID)
	fmt.Printf("workload: %s\n", meta.Workload)
	fmt.Printf("samples: %d\n\n", len(samples))

	fmt.Println(viz.PlotSamples(samples, plotWidth, plotHeight))
	return nil
}

func exportRun(cmd *cobra.Command, args []string) error {
	st := storage.New(dataDir)
	meta, err := st.Load(args[0])
	if err != nil {
		return err
	}

	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(meta)
}

func benchPush(cmd *cobra.Command, args []string) error {
	sizes := []int{1_000, 10_000, 100_000, 1_000_000}

	w := tabwriter.NewWriter(os.Stdout, 0, 0, 2, ' ', 0)
	fmt.Fprintln(w, "SIZE\tMODE\tTIME\tOPS/SEC\tGROWS")

	for _, size := range sizes {
		for _, reserved := range []bool{false, true} {
			a := dynarr.New[int]()
			mode := "grow"
			if reserved {
				a.Reserve(size)
				mode = "reserved"
			}

			start := time.Now()
			for i := 0; i < size; i++ {
				a.Push(i)
			}
			elapsed := time.Since(start)

			opsPerSec := float64(size) / elapsed.Seconds()
			fmt.Fprintf(w, "%d\t%s\t%v\t%.0f\t%d\n",
				size, mode, elapsed, opsPerSec, a.Stats().Grows)
		}
	}

	return w.Flush()
}

func runLive(cmd *cobra.Command, args []string) error {
	w, err := resolveWorkload(cmd, args)
	if err != nil {
		return err
	}
	return viz.RunLive(w)
}
