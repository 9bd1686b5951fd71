package cmd

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/spf13/cobra"
)

var procsCmd = &cobra.Command{
	Use:   "procs [filter]",
	Short: "List procedures",
	Long: `Lists the registered procedures with their signatures. Required
parameters are shown as <name:type>, optional ones as [name:type].
With a filter only procedures whose name contains it are listed.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runProcs,
}

func init() {
	rootCmd.AddCommand(procsCmd)
}

func runProcs(cmd *cobra.Command, args []string) error {
	a, err := newApp(cmd.OutOrStdout())
	if err != nil {
		return err
	}

	filter := ""
	if len(args) > 0 {
		filter = args[0]
	}

	r := lipgloss.NewRenderer(cmd.OutOrStdout())
	header := r.NewStyle().Bold(true).Padding(0, 1)
	cell := r.NewStyle().Padding(0, 1)

	t := table.New().
		Border(lipgloss.NormalBorder()).
		BorderStyle(r.NewStyle().Foreground(lipgloss.Color("#6B7280"))).
		StyleFunc(func(row, col int) lipgloss.Style {
			if row == table.HeaderRow {
				return header
			}
			return cell
		}).
		Headers("NAME", "SIGNATURE", "DESCRIPTION")

	suggestions := a.engine.Suggest(filter)
	for _, s := range suggestions {
		desc := s.Procedure.Description()
		if s.Procedure.IsAlias() {
			desc = fmt.Sprintf("alias of %s", s.Procedure.Origin().Name())
		}
		t.Row(s.Name, s.Label, desc)
	}

	if len(suggestions) == 0 {
		fmt.Fprintf(cmd.OutOrStdout(), "no procedure matches %q\n", filter)
		return nil
	}
	fmt.Fprintln(cmd.OutOrStdout(), t.Render())
	return nil
}
