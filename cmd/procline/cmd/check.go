package cmd

import (
	"strings"

	"github.com/spf13/cobra"

	"github.com/msto63/procline/internal/shell"
)

var checkCmd = &cobra.Command{
	Use:   "check <command line>",
	Short: "Parse and bind a command line without running it",
	Long: `Checks that a command line names a known procedure, that every value
converts to its parameter's type and that no required parameter is missing.
Nothing is run. As with exec, put the line after '--' or quote it.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runCheck,
}

func init() {
	rootCmd.AddCommand(checkCmd)
}

func runCheck(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	sh := shell.New(a.engine, a.canvas, shell.Options{
		Out:    cmd.OutOrStdout(),
		Logger: a.logger,
	})
	if !sh.Check(strings.Join(args, " ")) {
		return errCommandFailed
	}
	return nil
}
