package main

import (
	"io"

	"github.com/spf13/cobra"

	"github.com/vbrozik/vb.utils/internal/document"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Inspect and initialize configuration",
}

var configShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Print effective configuration",
	Args:  cobra.NoArgs,
	Run:   wrapRun(doConfigShow),
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write effective configuration into the user config file",
	Args:  cobra.NoArgs,
	Run:   wrapRun(doConfigInit),
}

var flagForce bool

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "overwrite existing file")

	configCmd.AddCommand(configShowCmd)
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}

func doConfigShow(w io.Writer, args []string) error {
	out, err := outputFormat()
	if err != nil {
		return err
	}
	return document.Encode(w, config.Tree(), out)
}

func doConfigInit(w io.Writer, args []string) error {
	if err := config.Write(!flagForce); err != nil {
		return err
	}
	_, err := io.WriteString(w, config.UserFile()+"\n")
	return err
}
