package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Dima111000/shedule-zsm-1/pkg/bells"
)

var bellsCmd = &cobra.Command{
	Use:   "bells",
	Short: "Print the bell schedule",
	Run: func(cmd *cobra.Command, args []string) {
		for i, iv := range bells.All() {
			fmt.Printf("%d. %s\n", i+1, iv)
		}
	},
}

func init() {
	rootCmd.AddCommand(bellsCmd)
}
