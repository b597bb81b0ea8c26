package main

import (
	"context"
	"fmt"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/benbarten/rustop/config"
	"github.com/benbarten/rustop/daemon"
	"github.com/benbarten/rustop/model"
	"github.com/benbarten/rustop/monitor"
	"github.com/benbarten/rustop/proc"
	"github.com/benbarten/rustop/ui"
)

type options struct {
	sortBy        string
	refreshRate   float64
	top           int
	filter        string
	user          string
	noKernel      bool
	humanReadable bool
	once          bool
	output        string
}

func main() {
	opts := &options{}

	rootCmd := &cobra.Command{
		Use:           "rustop",
		Short:         "A simple top-like process viewer",
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			return run(cmd, opts)
		},
	}

	flags := rootCmd.Flags()
	flags.StringVarP(&opts.sortBy, "sort-by", "s", "cpu", "sort processes by cpu, memory, or pid")
	flags.Float64VarP(&opts.refreshRate, "refresh-rate", "r", 1.0, "refresh rate in seconds")
	flags.IntVarP(&opts.top, "top", "t", 0, "show only the top N processes")
	flags.StringVarP(&opts.filter, "filter", "f", "", "filter processes by name (case-insensitive)")
	flags.StringVarP(&opts.user, "user", "u", "", "show only processes owned by the specified user")
	flags.BoolVarP(&opts.noKernel, "no-kernel", "k", false, "hide kernel processes")
	flags.BoolVarP(&opts.humanReadable, "human-readable", "H", false, "display memory in human-readable format (KB, MB, GB)")
	flags.BoolVar(&opts.once, "once", false, "render a single frame and exit")
	flags.StringVarP(&opts.output, "output", "o", "table", "output format for --once: table, json, or yaml")

	rootCmd.AddCommand(daemonCmd())

	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "rustop:", err)
		os.Exit(1)
	}
}

// buildView merges persisted config-file defaults with command-line flags;
// explicitly set flags win. Validation failures here are fatal before the
// monitor starts.
func buildView(cmd *cobra.Command, opts *options) (config.View, time.Duration, error) {
	fileCfg, _ := config.Load()

	if !cmd.Flags().Changed("sort-by") && fileCfg.SortBy != "" {
		opts.sortBy = fileCfg.SortBy
	}
	if !cmd.Flags().Changed("refresh-rate") && fileCfg.RefreshRate > 0 {
		opts.refreshRate = fileCfg.RefreshRate
	}
	if !cmd.Flags().Changed("top") && fileCfg.Top > 0 {
		opts.top = fileCfg.Top
	}
	if !cmd.Flags().Changed("filter") && fileCfg.Filter != "" {
		opts.filter = fileCfg.Filter
	}
	if !cmd.Flags().Changed("user") && fileCfg.User != "" {
		opts.user = fileCfg.User
	}
	if !cmd.Flags().Changed("no-kernel") {
		opts.noKernel = fileCfg.NoKernel
	}
	if !cmd.Flags().Changed("human-readable") {
		opts.humanReadable = fileCfg.HumanReadable
	}

	col, err := model.ParseSortColumn(opts.sortBy)
	if err != nil {
		return config.View{}, 0, err
	}

	interval := time.Duration(opts.refreshRate * float64(time.Second))
	if interval < config.MinRefresh {
		return config.View{}, 0, fmt.Errorf("refresh rate must be at least %v, got %v", config.MinRefresh, interval)
	}

	if cmd.Flags().Changed("top") && opts.top <= 0 {
		return config.View{}, 0, fmt.Errorf("--top must be a positive integer, got %d", opts.top)
	}

	switch opts.output {
	case "table", "json", "yaml":
	default:
		return config.View{}, 0, fmt.Errorf("unknown output format %q (want table, json, or yaml)", opts.output)
	}
	if opts.output != "table" && !opts.once {
		return config.View{}, 0, fmt.Errorf("--output %s requires --once", opts.output)
	}

	view := config.View{
		SortColumn: col,
		NameFilter: opts.filter,
		UserFilter: opts.user,
		ShowKernel: !opts.noKernel,
		TopN:       opts.top,
		HumanMem:   opts.humanReadable,
	}
	if err := view.Validate(); err != nil {
		return config.View{}, 0, err
	}
	return view, interval, nil
}

func run(cmd *cobra.Command, opts *options) error {
	view, interval, err := buildView(cmd, opts)
	if err != nil {
		return err
	}

	logger := log.New(os.Stderr, "[rustop] ", log.LstdFlags)
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	engine := monitor.NewEngine(proc.NewSource(), proc.CoreCount(), logger)

	if opts.once {
		return runOnce(ctx, engine, interval, view, opts.output)
	}
	return runTUI(ctx, engine, interval, view)
}

func runOnce(ctx context.Context, engine *monitor.Engine, interval time.Duration, view config.View, output string) error {
	return engine.RunOnce(ctx, interval, func(metrics []model.Metric, stats monitor.Stats) error {
		rows := monitor.BuildRows(metrics, view)

		switch output {
		case "json":
			return ui.WriteJSON(os.Stdout, rows)
		case "yaml":
			return ui.WriteYAML(os.Stdout, rows)
		default:
			return ui.Render(os.Stdout, rows, stats, view)
		}
	})
}

func runTUI(ctx context.Context, engine *monitor.Engine, interval time.Duration, view config.View) error {
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	p := tea.NewProgram(ui.NewModel(view, interval), tea.WithAltScreen())

	loopErr := make(chan error, 1)
	go func() {
		err := engine.Run(ctx, interval, func(metrics []model.Metric, stats monitor.Stats) error {
			ui.SendData(p, metrics, stats)
			return nil
		})
		loopErr <- err
		p.Quit()
	}()

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("terminal unavailable: %w", err)
	}

	// Unblock the refresh loop if the user quit from the TUI, then surface
	// a fatal loop error (e.g. repeated enumeration failures) if there was
	// one.
	cancel()
	if err := <-loopErr; err != nil && err != context.Canceled {
		return err
	}
	return nil
}

func daemonCmd() *cobra.Command {
	var refreshRate float64

	cmd := &cobra.Command{
		Use:   "daemon",
		Short: "Run the background alert daemon",
		RunE: func(cmd *cobra.Command, args []string) error {
			interval := time.Duration(refreshRate * float64(time.Second))
			if interval < config.MinRefresh {
				return fmt.Errorf("refresh rate must be at least %v, got %v", config.MinRefresh, interval)
			}

			logger := log.New(os.Stderr, "[rustop-daemon] ", log.LstdFlags)
			ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			d := daemon.New(interval, logger)
			if err := d.Run(ctx); err != nil && err != context.Canceled {
				return err
			}
			return nil
		},
	}

	cmd.Flags().Float64VarP(&refreshRate, "refresh-rate", "r", 1.0, "sampling interval in seconds")
	return cmd
}
