package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/sheikhrachel/go-life/model"
	"github.com/sheikhrachel/go-life/utils"
)

type options struct {
	configFile  string
	patternFile string
	builtin     string
	generations int
	render      bool
	frameRate   string
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var opts options

	root := &cobra.Command{
		Use:          "go-life",
		Short:        "Conway's Game of Life on bounded, possibly jagged boards",
		SilenceUsage: true,
	}
	root.PersistentFlags().StringVarP(&opts.configFile, "config", "c", "", "path to a JSON config file")
	root.PersistentFlags().StringVarP(&opts.patternFile, "pattern", "p", "", "path to a text-art pattern file")
	root.PersistentFlags().StringVarP(&opts.builtin, "builtin", "b", defaultPattern,
		fmt.Sprintf("built-in pattern to use when no pattern file is given %v", model.BuiltinNames()))

	root.AddCommand(newRunCmd(&opts), newStepCmd(&opts))
	return root
}

func newRunCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "run",
		Short: "Animate the board until it dies out, cycles or hits the generation limit",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			logger, err := newLogger(config, cmd.ErrOrStderr())
			if err != nil {
				return err
			}
			board, err := loadBoard(config, opts.builtin)
			if err != nil {
				return err
			}

			renderer := model.NewTerminalRenderer()
			renderer.Out = cmd.OutOrStdout()

			result, err := runWithSignals(cmd.Context(), config, board, renderer, logger)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Stopped after %d generations: %s\n", result.Generations, result.Reason)
			return nil
		},
	}
	cmd.Flags().IntVarP(&opts.generations, "generations", "n", 0, "maximum number of generations (0 = unlimited)")
	cmd.Flags().BoolVar(&opts.render, "render", true, "draw every generation to the terminal")
	cmd.Flags().StringVar(&opts.frameRate, "frame-rate", "", "delay between generations, e.g. 150ms")
	return cmd
}

func newStepCmd(opts *options) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "step",
		Short: "Print the board after n generations",
		RunE: func(cmd *cobra.Command, _ []string) error {
			config, err := resolveConfig(cmd, opts)
			if err != nil {
				return err
			}
			board, err := loadBoard(config, opts.builtin)
			if err != nil {
				return err
			}
			board = advance(board, opts.generations)
			_, err = fmt.Fprintln(cmd.OutOrStdout(), model.Format(board, config.AliveRune(), config.DeadRune()))
			return err
		},
	}
	cmd.Flags().IntVarP(&opts.generations, "generations", "n", 1, "number of generations to advance")
	return cmd
}

// resolveConfig loads the config file and applies flag overrides
func resolveConfig(cmd *cobra.Command, opts *options) (utils.Config, error) {
	config, err := loadConfig(opts.configFile)
	if err != nil {
		return config, err
	}

	flags := cmd.Flags()
	if opts.patternFile != "" {
		config.PatternFile = opts.patternFile
	}
	if flags.Changed("render") {
		config.Render = opts.render
	}
	if flags.Changed("frame-rate") {
		if err = config.FrameRate.UnmarshalJSON([]byte(fmt.Sprintf("%q", opts.frameRate))); err != nil {
			return config, err
		}
	}
	if cmd.Name() == "run" && flags.Changed("generations") {
		config.MaxGenerations = opts.generations
	}

	return config, config.Validate()
}
