package main

import (
	"fmt"
	"strings"

	"github.com/aretw0/stockroom"
	"github.com/spf13/cobra"
)

var versionCmd = &cobra.Command{
	Use:   "version",
	Short: "Print the version number of stockroom",
	Run: func(cmd *cobra.Command, args []string) {
		fmt.Printf("stockroom version %s\n", strings.TrimSpace(stockroom.Version))
	},
}

func init() {
	rootCmd.AddCommand(versionCmd)
}
