package main

import (
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/hupe1980/lloyd"
	"github.com/spf13/cobra"
)

type globalFlags struct {
	configPath string
	logLevel   string
	logFormat  string
}

func newRootCmd() *cobra.Command {
	g := &globalFlags{}

	cmd := &cobra.Command{
		Use:   "lloyd",
		Short: "Lloyd's k-means clustering for float32 sample files",
		Long: `lloyd clusters fixed-dimensional float32 samples with Lloyd's k-means.

Sample files hold consecutive little-endian float32 values, row-major, with
no header. Paths may be local files, s3://bucket/key or
minio://endpoint/bucket/key. Names ending in .zst or .lz4 are compressed.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, _ []string) error {
			if g.configPath == "" {
				return nil
			}
			return applyConfigFile(cmd, g.configPath)
		},
	}

	pf := cmd.PersistentFlags()
	pf.StringVar(&g.configPath, "config", "", "YAML file whose keys mirror flag names; explicit flags win")
	pf.StringVar(&g.logLevel, "log-level", "info", "log level (debug, info, warn, error)")
	pf.StringVar(&g.logFormat, "log-format", "text", "log format (text, json)")

	cmd.AddCommand(newFitCmd(g))
	cmd.AddCommand(newEvalCmd())
	cmd.AddCommand(newKernelsCmd())

	return cmd
}

func (g *globalFlags) logger(w io.Writer) (*lloyd.Logger, error) {
	var level slog.Level
	if err := level.UnmarshalText([]byte(g.logLevel)); err != nil {
		return nil, fmt.Errorf("invalid --log-level %q", g.logLevel)
	}

	opts := &slog.HandlerOptions{Level: level}
	switch strings.ToLower(g.logFormat) {
	case "text":
		return lloyd.NewLogger(slog.NewTextHandler(w, opts)), nil
	case "json":
		return lloyd.NewLogger(slog.NewJSONHandler(w, opts)), nil
	default:
		return nil, fmt.Errorf("invalid --log-format %q", g.logFormat)
	}
}
