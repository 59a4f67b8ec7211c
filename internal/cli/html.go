package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

func newHTMLCommand(a *app) *cobra.Command {
	var (
		sel   string
		index int
	)
	cmd := &cobra.Command{
		Use:   "html FILE",
		Short: "Print the outer HTML of one selected element",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			items, err := a.selectAll(args[0], sel)
			if err != nil {
				return err
			}
			w, err := items.At(index)
			if err != nil {
				return err
			}
			html, err := w.HTML()
			if err != nil {
				return err
			}
			fmt.Fprintln(cmd.OutOrStdout(), html)
			return nil
		},
	}
	cmd.Flags().StringVarP(&sel, "select", "s", "", "CSS selector")
	cmd.Flags().IntVarP(&index, "index", "i", 0, "which match to print")
	_ = cmd.MarkFlagRequired("select")
	return cmd
}
