package cmd

import (
	"fmt"
	"os"

	"github.com/chzyer/readline"
	"github.com/spf13/cobra"

	"github.com/msto63/procline/internal/shell"
)

var shellCmd = &cobra.Command{
	Use:   "shell",
	Short: "Start the interactive shell",
	Long: `Reads command lines and runs them on the sketch canvas.

On a terminal the shell offers line editing and tab completion of procedure
names. Otherwise lines are read from standard input, so a script can be
piped in:

  procline shell < drawing.txt

Built-ins: help [name], alias <existing> <new>, exit`,
	Args: cobra.NoArgs,
	RunE: runShell,
}

func init() {
	rootCmd.AddCommand(shellCmd)
}

func runShell(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	interactive := cmd.InOrStdin() == os.Stdin && readline.DefaultIsTerminal()
	sh := shell.New(a.engine, a.canvas, shell.Options{
		Prompt:      a.cfg.Shell.Prompt,
		Interactive: interactive,
		In:          cmd.InOrStdin(),
		Out:         cmd.OutOrStdout(),
		Logger:      a.logger,
		Describe:    a.describe,
	})
	if err := sh.Run(); err != nil {
		return err
	}

	if !interactive && sh.Failed() > 0 {
		return fmt.Errorf("%d command(s) failed", sh.Failed())
	}
	return nil
}
