package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var rootCmd = &cobra.Command{
	Use:   "tablegen",
	Short: "Generate Go table classes from a live PostgreSQL schema",
	Long: `tablegen inspects a relational schema and emits one Go source file per
table: a struct mirroring the table's columns, a zero-value constructor,
getters and setters, and optional query accessors.

Examples:

  tablegen init
  tablegen generate
  tablegen tables
`,
}

// Execute runs the CLI
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Println("❌", err)
		os.Exit(1)
	}
}

// Register subcommands
func init() {
	rootCmd.AddCommand(generateCmd)
	rootCmd.AddCommand(tablesCmd)
	rootCmd.AddCommand(initCmd)
	rootCmd.AddCommand(healthCmd)
}
