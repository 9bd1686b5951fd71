package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"
)

var (
	cfgFile string
	verbose bool
)

var rootCmd = &cobra.Command{
	Use:   "procline",
	Short: "procline - typed procedures from the command line",
	Long: `procline runs typed procedures from single command lines such as

  draw -color=red 100 200

The built-in host is a small sketch canvas.

Commands:
  shell    - interactive shell with completion
  exec     - run one command line
  check    - parse and bind a command line without running it
  procs    - list procedures`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func Execute() error {
	err := rootCmd.Execute()
	if err != nil {
		printError(rootCmd.ErrOrStderr(), err)
	}
	return err
}

func init() {
	rootCmd.PersistentFlags().StringVar(&cfgFile, "config", "", "config file (default: procline.toml, procline.yaml or $PROCLINE_CONFIG)")
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "verbose output")
}

func printError(w io.Writer, err error) {
	fmt.Fprintf(w, "Error: %v\n", err)
}
