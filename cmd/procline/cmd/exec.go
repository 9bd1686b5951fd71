package cmd

import (
	"errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/procline/internal/shell"
)

var errCommandFailed = errors.New("command failed")

var execShow bool

var execCmd = &cobra.Command{
	Use:   "exec <command line>",
	Short: "Run one command line",
	Long: `Runs one command line on an empty canvas. The arguments are joined
with spaces. Named parameters start with '-', so put the line after '--'
or quote it as a whole:

  procline exec draw 100 200
  procline exec -- draw -color=red 100 200
  procline exec --show "text 'hello world' -at='10;10'"`,
	Args: cobra.MinimumNArgs(1),
	RunE: runExec,
}

func init() {
	execCmd.Flags().BoolVar(&execShow, "show", false, "print the canvas afterwards")
	rootCmd.AddCommand(execCmd)
}

func runExec(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	sh := shell.New(a.engine, a.canvas, shell.Options{
		Out:      cmd.OutOrStdout(),
		Logger:   a.logger,
		Describe: a.describe,
	})
	sh.Handle(strings.Join(args, " "))
	if sh.Failed() > 0 {
		return errCommandFailed
	}

	if execShow {
		sh.Handle("show -verbose")
	}
	return nil
}
