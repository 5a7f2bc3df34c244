package main

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"
)

var cellFlags viewportFlags

var cellCmd = &cobra.Command{
	Use:   "cell <workbook.xlsx> <x> <y>",
	Short: "Print the cell under a viewport pixel",
	Args:  cobra.ExactArgs(3),
	RunE: func(cmd *cobra.Command, args []string) error {
		x, err := strconv.ParseFloat(args[1], 64)
		if err != nil {
			return fmt.Errorf("invalid x %q: %w", args[1], err)
		}
		y, err := strconv.ParseFloat(args[2], 64)
		if err != nil {
			return fmt.Errorf("invalid y %q: %w", args[2], err)
		}

		session, _, err := cellFlags.open(cmd.Context(), args[0])
		if err != nil {
			return err
		}
		addr, ok := session.ResolveAddress(x, y)
		if !ok {
			fmt.Fprintln(cmd.OutOrStdout(), "none")
			return nil
		}
		fmt.Fprintf(cmd.OutOrStdout(), "%s (%s)\n", addr, addr.Key())
		return nil
	},
}

func init() {
	cellFlags.register(cellCmd)
	rootCmd.AddCommand(cellCmd)
}
