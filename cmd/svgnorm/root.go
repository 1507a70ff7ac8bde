package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/vasalvit/svgnorm"
)

func newRootCmd() *cobra.Command {
	var (
		scale    float64
		logLevel string
		svgFile  string
		fit      float64
	)

	cmd := &cobra.Command{
		Use:   "svgnorm [path-data ...]",
		Short: "Normalize SVG path data to absolute M, L, C and Z commands",
		Long: `Normalize SVG path data to absolute M, L, C and Z commands.

Each argument is normalized, scaled and printed on its own line. Without
arguments path data is read from stdin, one path per line. With --svg the
drawable elements of an icon document are printed instead.`,
		SilenceUsage: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := LoadConfig()
			if err != nil {
				return err
			}
			if cmd.Flags().Changed("scale") {
				cfg.Scale = scale
			}
			if cmd.Flags().Changed("log-level") {
				cfg.LogLevel = logLevel
			}
			if err := cfg.Validate(); err != nil {
				return err
			}
			svgnorm.SetLogger(newLogger(cmd.ErrOrStderr(), cfg.LogLevel))

			out := cmd.OutOrStdout()
			if svgFile != "" {
				return runIcon(out, svgFile, cfg.Scale, fit)
			}
			cache := svgnorm.NewCache(cfg.CacheSize, cfg.CacheTTL)
			if len(args) > 0 {
				for _, d := range args {
					fmt.Fprintln(out, cache.NormalizeAndScale(d, cfg.Scale))
				}
				return nil
			}
			return runLines(out, cmd.InOrStdin(), cache, cfg.Scale)
		},
	}

	cmd.Flags().Float64Var(&scale, "scale", 1, "factor applied to every coordinate")
	cmd.Flags().StringVar(&logLevel, "log-level", "warn", "log level (debug, info, warn, error)")
	cmd.Flags().StringVar(&svgFile, "svg", "", "icon document to normalize")
	cmd.Flags().Float64Var(&fit, "fit", 0, "scale the icon document so its viewBox fits this size")
	return cmd
}

func newLogger(w io.Writer, level string) *log.Logger {
	l := log.NewWithOptions(w, log.Options{
		ReportTimestamp: true,
		TimeFormat:      "15:04:05",
		Prefix:          "svgnorm",
	})
	if lvl, err := log.ParseLevel(level); err == nil {
		l.SetLevel(lvl)
	}
	return l
}

// runLines normalizes one path per input line. Blank lines are echoed
// blank to keep output aligned with input.
func runLines(out io.Writer, in io.Reader, cache *svgnorm.Cache, scale float64) error {
	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if strings.TrimSpace(line) == "" {
			fmt.Fprintln(out)
			continue
		}
		fmt.Fprintln(out, cache.NormalizeAndScale(line, scale))
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("reading path data: %w", err)
	}
	return nil
}

func runIcon(out io.Writer, file string, scale, fit float64) error {
	f, err := os.Open(file)
	if err != nil {
		return fmt.Errorf("opening icon: %w", err)
	}
	defer f.Close()

	icon, err := svgnorm.ParseSvgFromReader(f, filepath.Base(file), scale)
	if err != nil {
		return err
	}
	if fit > 0 {
		icon.SetScale(icon.ScaleToFit(fit))
	}
	for _, d := range icon.Normalized() {
		fmt.Fprintln(out, d)
	}
	return nil
}
