package main

import (
	"fmt"
	"os"
	"runtime/pprof"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/lumipallolabs/fx/internal/core"
	"github.com/lumipallolabs/fx/internal/logging"
	"github.com/lumipallolabs/fx/internal/model"
	"github.com/lumipallolabs/fx/internal/ui/tui"
)

var version = "dev"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var (
		tick    time.Duration
		reverse bool
		debug   bool
	)

	cmd := &cobra.Command{
		Use:           "fx [DirPath]",
		Short:         "Browse a directory in the terminal",
		Long:          `fx lists a directory, shows permissions, size and modification time of each entry, and lets you walk into subdirectories and back up.`,
		Version:       version,
		Args:          cobra.MaximumNArgs(1),
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if debug {
				logging.Enable()
			}

			dir, err := resolveDir(args)
			if err != nil {
				return err
			}

			order := model.SortAToZ
			if reverse {
				order = model.SortZToA
			}
			reporter := logging.NewReporter()
			ctrl, err := core.NewController(dir,
				core.WithSortOrder(order),
				core.WithReporter(reporter),
			)
			if err != nil {
				return err
			}

			stop, err := startProfile()
			if err != nil {
				return err
			}
			defer stop()

			p := tea.NewProgram(
				tui.NewApp(ctrl, tui.Config{Version: version, TickRate: tick, Reporter: reporter}),
				tea.WithAltScreen(),
			)
			_, err = p.Run()
			return err
		},
	}

	cmd.Flags().DurationVar(&tick, "tick", tui.DefaultTickRate, "redraw interval")
	cmd.Flags().BoolVar(&reverse, "reverse", false, "sort entries Z to A")
	cmd.Flags().BoolVar(&debug, "debug", false, "write a debug log to "+logging.LogFile)
	return cmd
}

// resolveDir returns the directory to open: the argument if given, else the
// working directory
func resolveDir(args []string) (string, error) {
	if len(args) == 0 {
		dir, err := os.Getwd()
		if err != nil {
			return "", fmt.Errorf("get working directory: %w", err)
		}
		return dir, nil
	}

	dir := args[0]
	info, err := os.Stat(dir)
	if err != nil {
		if os.IsNotExist(err) {
			return "", fmt.Errorf("specified directory does not exist: %s", dir)
		}
		return "", err
	}
	if !info.IsDir() {
		return "", fmt.Errorf("not a directory: %s", dir)
	}
	return dir, nil
}

// startProfile enables CPU profiling if the CPUPROFILE env var is set
func startProfile() (func(), error) {
	cpuProfile := os.Getenv("CPUPROFILE")
	if cpuProfile == "" {
		return func() {}, nil
	}

	f, err := os.Create(cpuProfile)
	if err != nil {
		return nil, fmt.Errorf("could not create CPU profile: %w", err)
	}
	if err := pprof.StartCPUProfile(f); err != nil {
		f.Close()
		return nil, fmt.Errorf("could not start CPU profile: %w", err)
	}
	logging.Debug.Infof("CPU profiling enabled, writing to %s", cpuProfile)

	return func() {
		pprof.StopCPUProfile()
		f.Close()
	}, nil
}
