package cmd

import (
	"log"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "go-easy-generation",
	Short: "go-easy-generation generates Go source from the types already declared in your program",
	Long: "go-easy-generation reads the named types and methods of a Go module, lets planners decide which " +
		"new definitions to derive from them, and writes those definitions to namespace folders under an output root",
	Run: func(cmd *cobra.Command, args []string) {
	},
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		log.Fatal(err)
	}
}
