package main

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"
	"golang.org/x/term"

	"github.com/npratt/dialogviz/internal/config"
	"github.com/npratt/dialogviz/internal/controller"
	"github.com/npratt/dialogviz/internal/dialogue"
	"github.com/npratt/dialogviz/internal/render"
	"github.com/npratt/dialogviz/internal/viewer"
)

var version = "dev"

// controllerOptions assembles controller options from config plus flag
// overrides shared by view and render.
func controllerOptions(cfg *config.Config, cmd *cobra.Command, logger *slog.Logger) []controller.Option {
	themeName := cfg.Theme
	if cmd.Flags().Changed(FlagTheme) {
		themeName = viper.GetString(FlagTheme)
	}

	repulsion := cfg.Sim.Repulsion
	if cmd.Flags().Changed(FlagRepulsion) {
		repulsion = config.ClampRepulsion(viper.GetFloat64(FlagRepulsion))
	}

	simCfg := cfg.SimConfig()
	simCfg.Repulsion = repulsion

	opts := []controller.Option{
		controller.WithLogger(logger),
		controller.WithTheme(themeName),
		controller.WithSimConfig(simCfg),
	}

	seed := cfg.Seed
	if cmd.Flags().Changed(FlagSeed) {
		seed = viper.GetInt64(FlagSeed)
	}
	if seed != 0 {
		opts = append(opts, controller.WithSeed(seed))
	}
	return opts
}

func main() {
	logLevel := &slog.LevelVar{}
	logger := slog.New(slog.NewJSONHandler(os.Stderr, &slog.HandlerOptions{Level: logLevel}))

	viper.SetEnvPrefix("DIALOGVIZ")
	viper.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	viper.AutomaticEnv()

	rootCmd := &cobra.Command{
		Use:   "dialogviz",
		Short: "Interactive force-directed viewer for dialogue trees",
		Long: `dialogviz renders a dialogue tree (a directed graph of narrative nodes)
as a live force-directed diagram. Nodes repel each other, choices act as
springs, and bidirectional pairs are drawn as divergent arcs.

The view command opens an interactive terminal viewer with node dragging,
zoom/pan, and runtime force tuning. The render command settles the layout
headlessly and writes an SVG.`,
		SilenceUsage: true,
	}

	rootCmd.PersistentFlags().Bool(FlagVerbose, false, "Enable verbose (debug) logging")
	rootCmd.PersistentFlags().String(FlagConfig, "", "Config file path (default: .dialogviz/config.yaml)")
	rootCmd.PersistentFlags().String(FlagLogFile, "", "Log file path")
	rootCmd.PersistentFlags().String(FlagTheme, "", "Color theme (dark/light/parchment)")
	rootCmd.PersistentFlags().Float64(FlagRepulsion, 0, "Node repulsion strength [100-5000]")
	rootCmd.PersistentFlags().Int64(FlagSeed, 0, "Layout jitter seed (0 = random)")

	rootCmd.PersistentFlags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	versionCmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("dialogviz %s\n", version)
		},
	}

	viewCmd := &cobra.Command{
		Use:   "view <dialogue.json>",
		Short: "Open the interactive viewer",
		Long: `Open a dialogue file in the interactive terminal viewer.

Drag nodes with the mouse while the rest of the layout keeps settling,
zoom with the wheel, and adjust the repulsion force at runtime.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if !term.IsTerminal(int(os.Stdout.Fd())) {
				return fmt.Errorf("stdout is not a terminal; use `dialogviz render` for file output")
			}

			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
			}

			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed(FlagLogFile) {
				cfg.Paths.Log = viper.GetString(FlagLogFile)
			}

			nodes, err := dialogue.LoadFile(args[0])
			if err != nil {
				return err
			}

			// Logs go to a rotating file while the viewer owns the
			// terminal.
			logDir := filepath.Dir(cfg.Paths.Log)
			if err := os.MkdirAll(logDir, 0755); err != nil {
				return fmt.Errorf("create log directory: %w", err)
			}
			logResult, err := SetupViewerLogger(logDir, logLevel, cfg.LogRotation)
			if err != nil {
				return err
			}
			defer func() { _ = logResult.Close() }()
			slog.SetDefault(logResult.Logger)

			logResult.Logger.Info("dialogviz starting",
				"version", version,
				"file", args[0],
				"nodes", len(nodes),
			)

			// Size is provisional; the viewer resizes the controller
			// to the real terminal dimensions on startup.
			ctrl := controller.New(cfg.Export.Width, cfg.Export.Height,
				controllerOptions(cfg, cmd, logResult.Logger)...)
			ctrl.Apply(controller.SetData{Nodes: nodes})

			return viewer.New(ctrl).Run()
		},
	}

	renderCmd := &cobra.Command{
		Use:   "render <dialogue.json>",
		Short: "Settle the layout headlessly and write an SVG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			if viper.GetBool(FlagVerbose) {
				logLevel.Set(slog.LevelDebug)
			}

			cfg, err := config.LoadConfig(viper.GetViper())
			if err != nil {
				return fmt.Errorf("load config: %w", err)
			}
			if cmd.Flags().Changed(FlagWidth) {
				cfg.Export.Width = viper.GetFloat64(FlagWidth)
			}
			if cmd.Flags().Changed(FlagHeight) {
				cfg.Export.Height = viper.GetFloat64(FlagHeight)
			}
			if cmd.Flags().Changed(FlagMaxTicks) {
				cfg.Export.MaxTicks = viper.GetInt(FlagMaxTicks)
			}

			nodes, err := dialogue.LoadFile(args[0])
			if err != nil {
				return err
			}

			ctrl := controller.New(cfg.Export.Width, cfg.Export.Height,
				controllerOptions(cfg, cmd, logger)...)
			ctrl.Apply(controller.SetData{Nodes: nodes})

			// Structural problems are warnings, never a failed render.
			for _, d := range ctrl.Diagnostics() {
				fmt.Fprintf(os.Stderr, "warning: %s\n", d.Message)
			}

			ticks := ctrl.RunToIdle(cfg.Export.MaxTicks)
			logger.Debug("layout settled", "ticks", ticks)

			svg := render.SVG(render.Options{
				Width:  cfg.Export.Width,
				Height: cfg.Export.Height,
				Theme:  ctrl.Theme(),
			}, ctrl.Nodes(), ctrl.Edges(), ctrl.Paths())

			out := viper.GetString(FlagOutput)
			if out == "" || out == "-" {
				fmt.Print(svg)
				return nil
			}
			if err := os.WriteFile(out, []byte(svg), 0644); err != nil {
				return fmt.Errorf("write svg: %w", err)
			}
			fmt.Printf("wrote %s (%d nodes, %d edges)\n", out, len(ctrl.Nodes()), len(ctrl.Edges()))
			return nil
		},
	}

	renderCmd.Flags().StringP(FlagOutput, "o", "", "Output file (default: stdout)")
	renderCmd.Flags().Float64(FlagWidth, 0, "Diagram width")
	renderCmd.Flags().Float64(FlagHeight, 0, "Diagram height")
	renderCmd.Flags().Int(FlagMaxTicks, 0, "Maximum simulation ticks before settling is cut off")
	renderCmd.Flags().VisitAll(func(f *pflag.Flag) {
		_ = viper.BindPFlag(f.Name, f)
	})

	rootCmd.AddCommand(versionCmd)
	rootCmd.AddCommand(viewCmd)
	rootCmd.AddCommand(renderCmd)

	if err := rootCmd.ExecuteContext(context.Background()); err != nil {
		logger.Error("command failed", "error", err)
		os.Exit(1)
	}
}
