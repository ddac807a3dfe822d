package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"
)

var catalogCmd = &cobra.Command{
	Use:   "catalog",
	Short: "Print the mandatory qualification catalog and the eligibility gates",
	Run: func(_ *cobra.Command, _ []string) {
		e := newEngine()

		for _, status := range e.filter.Describe() {
			e.logger.Info("eligibility strategy",
				zap.String("name", status.Name),
				zap.Strings("gates", status.Gates),
				zap.Any("details", status.Details),
			)
		}

		for _, name := range e.filter.Catalog().Names() {
			fmt.Println(name)
		}
	},
}

func init() {
	rootCmd.AddCommand(catalogCmd)
}
