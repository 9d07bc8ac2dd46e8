package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"github.com/lixenwraith/ansidemo/config"
	"github.com/lixenwraith/ansidemo/demo"
	"github.com/lixenwraith/ansidemo/terminal"
)

// app carries state shared by the commands of one invocation
type app struct {
	cfgFile string
	cfg     config.Config
	logFile *os.File
}

func newRootCmd() *cobra.Command {
	a := &app{}

	root := &cobra.Command{
		Use:   "ansidemo",
		Short: "Demonstrate common terminal output patterns",
		Long: `ansidemo prints a colored status line, two kinds of same-line progress
output, a password prompt that does not echo, a y/n question and finally
an endless status loop until interrupted with Ctrl-C.`,
		Args:              cobra.NoArgs,
		SilenceUsage:      true,
		SilenceErrors:     true,
		PersistentPreRunE: a.setup,
		PersistentPostRun: a.teardown,
		RunE:              a.runDemo,
	}

	pf := root.PersistentFlags()
	pf.StringVar(&a.cfgFile, "config", "", "config file (toml, yaml or json)")
	pf.Bool(config.KeyDebug, false, "write debug logs to "+logDir+"/"+logFileName)
	pf.String(config.KeyColor, config.DefaultColor, "color output: auto, always or never")
	addDemoFlags(root.Flags())

	runCmd := &cobra.Command{
		Use:   "run",
		Short: "Run the full demo (default)",
		Args:  cobra.NoArgs,
		RunE:  a.runDemo,
	}
	addDemoFlags(runCmd.Flags())

	colorizeCmd := &cobra.Command{
		Use:   "colorize <color> [text...]",
		Short: "Print text wrapped in a color",
		Args:  cobra.MinimumNArgs(1),
		RunE:  a.runColorize,
	}

	colorsCmd := &cobra.Command{
		Use:   "colors",
		Short: "List the available colors and their escape sequences",
		Args:  cobra.NoArgs,
		RunE:  a.runColors,
	}

	root.AddCommand(runCmd, colorizeCmd, colorsCmd)
	return root
}

func addDemoFlags(fs *pflag.FlagSet) {
	fs.Int(config.KeyLines, config.DefaultLines, "progress lines per progress stage")
	fs.Duration(config.KeyInterval, config.DefaultInterval, "pause between progress lines and status updates")
}

// setup resolves configuration and logging before any command runs
func (a *app) setup(cmd *cobra.Command, args []string) error {
	v, err := config.New(a.cfgFile)
	if err != nil {
		return err
	}

	for _, key := range []string{config.KeyLines, config.KeyInterval, config.KeyColor, config.KeyDebug} {
		if f := cmd.Flags().Lookup(key); f != nil {
			if err := v.BindPFlag(key, f); err != nil {
				return fmt.Errorf("bind flag %s: %w", key, err)
			}
		}
	}

	cfg, err := config.Load(v)
	if err != nil {
		return err
	}
	a.cfg = cfg
	a.logFile = setupLogging(cfg.Debug)

	log.Debug().
		Str("command", cmd.Name()).
		Str("config", v.ConfigFileUsed()).
		Int("lines", cfg.Lines).
		Dur("interval", cfg.Interval).
		Stringer("color", cfg.Color).
		Msg("configured")
	return nil
}

func (a *app) teardown(cmd *cobra.Command, args []string) {
	if a.logFile != nil {
		a.logFile.Close()
		a.logFile = nil
	}
}

// writer builds the output writer for cmd, deciding color from the
// configured choice and the destination
func (a *app) writer(cmd *cobra.Command) *terminal.Writer {
	out := cmd.OutOrStdout()
	f, ok := out.(*os.File)
	if !ok {
		return terminal.NewWriter(out, terminal.DetectColorSupport(a.cfg.Color, -1))
	}

	color := terminal.DetectColorSupport(a.cfg.Color, int(f.Fd()))
	if f == os.Stdout {
		return terminal.NewStdoutWriter(color)
	}
	return terminal.NewWriter(f, color)
}

func (a *app) runDemo(cmd *cobra.Command, args []string) error {
	ctx, stop := signalContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	out := a.writer(cmd)
	prompt := terminal.NewPrompter(cmd.InOrStdin(), cmd.OutOrStdout())

	log.Info().Bool("color", out.ColorEnabled()).Bool("tty", prompt.IsTerminal()).Msg("demo start")
	err := demo.New(a.cfg, out, prompt, log.Logger).Run(ctx)
	if err != nil {
		var se *signalError
		if errors.As(context.Cause(ctx), &se) {
			log.Info().Stringer("signal", se.sig).Err(err).Msg("demo interrupted")
			return se
		}
		log.Error().Err(err).Msg("demo failed")
		return err
	}
	log.Info().Msg("demo done")
	return nil
}

func (a *app) runColorize(cmd *cobra.Command, args []string) error {
	c, err := terminal.ParseColor(args[0])
	if err != nil {
		return err
	}
	out := a.writer(cmd)
	return out.Println(out.Paint(strings.Join(args[1:], " "), c))
}

func (a *app) runColors(cmd *cobra.Command, args []string) error {
	out := a.writer(cmd)
	for _, c := range terminal.Colors() {
		name := fmt.Sprintf("%-6s", c)
		if err := out.Println(out.Paint(name, c), strconv.Quote(c.Sequence())); err != nil {
			return err
		}
	}
	return nil
}
