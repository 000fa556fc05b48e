package main

import (
	_ "embed"
	"fmt"
	"io"
	"os"

	"github.com/spf13/cobra"

	"go.ytsaurus.tech/library/go/core/buildinfo"
	"go.ytsaurus.tech/library/go/core/log"

	"github.com/vbrozik/vb.utils/internal/document"
	"github.com/vbrozik/vb.utils/library/go/conf"
	"github.com/vbrozik/vb.utils/library/go/logsetup"
)

const appName = "vbutils"

var version = "dev"

//go:embed default_config.yaml
var defaultConfig []byte

type Config struct {
	Output string `yaml:"output"`
	Input  string `yaml:"input"`
	Lines  struct {
		ChunkSize      int    `yaml:"chunk_size"`
		Separator      string `yaml:"separator"`
		GroupSeparator string `yaml:"group_separator"`
	} `yaml:"lines"`
}

var (
	flagVerbose      int
	flagQuiet        int
	flagConfigPath   string
	flagInputFormat  string
	flagOutputFormat string
)

var (
	logger log.Logger
	config *conf.Config
	cfg    Config
)

var rootCmd = &cobra.Command{
	Use:               appName,
	Short:             "Tools for nested documents and line oriented text",
	Version:           version,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
}

func init() {
	if v := buildinfo.Info.ProgramVersion; v != "" {
		rootCmd.Version = v
	}

	rootCmd.PersistentFlags().CountVarP(&flagVerbose, "verbose", "v", "increase verbosity, may be repeated")
	rootCmd.PersistentFlags().CountVarP(&flagQuiet, "quiet", "q", "decrease verbosity, may be repeated")
	rootCmd.PersistentFlags().StringVar(&flagConfigPath, "config", "", "extra config file merged over the user config")
	rootCmd.PersistentFlags().StringVarP(&flagInputFormat, "input-format", "i", "", "input format: yaml, json or yson")
	rootCmd.PersistentFlags().StringVarP(&flagOutputFormat, "output-format", "o", "", "output format: yaml, json or yson")
	rootCmd.Flags().BoolP("version", "V", false, "print version and exit")
}

func setup(cmd *cobra.Command, args []string) error {
	l, err := logsetup.New(flagVerbose - flagQuiet)
	if err != nil {
		return err
	}
	logger = l

	opts := conf.Options{
		AppName:  appName,
		Defaults: defaultConfig,
		Logger:   logger,
	}
	if flagConfigPath != "" {
		opts.Files = []string{flagConfigPath}
	}

	config, err = conf.Load(opts)
	if err != nil {
		return err
	}
	if err := config.Decode(&cfg); err != nil {
		return err
	}

	if flagInputFormat != "" {
		cfg.Input = flagInputFormat
	}
	if flagOutputFormat != "" {
		cfg.Output = flagOutputFormat
	}
	return nil
}

func inputFormat() (document.Format, error) {
	return document.ParseFormat(cfg.Input)
}

func outputFormat() (document.Format, error) {
	f, err := document.ParseFormat(cfg.Output)
	if err != nil {
		return "", err
	}
	if f == document.FormatAuto {
		f = document.FormatYAML
	}
	return f, nil
}

func wrapRun(run func(w io.Writer, args []string) error) func(cmd *cobra.Command, args []string) {
	return func(cmd *cobra.Command, args []string) {
		if err := run(cmd.OutOrStdout(), args); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
			os.Exit(1)
		}
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		_, _ = fmt.Fprintf(os.Stderr, "%+v\n", err)
		os.Exit(1)
	}
}
