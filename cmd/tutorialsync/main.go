package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tutorialsync",
	Short: "Push local tutorial chapters to the admin content API",
	Long: `tutorialsync reads chapter directories from disk and creates the chapter
and its sections through the tutorials admin REST API.

A chapter directory holds a metadata.json descriptor and one subdirectory
per section, each with its own metadata.json and a content.md body.
Sections are synced in directory-name order.`,
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	rootCmd.PersistentFlags().String("config", "config.yaml", "path to config file")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
