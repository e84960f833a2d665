package cmd

import (
	"context"
	"fmt"
	"os"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwallis/tablegen/database"
	"github.com/mwallis/tablegen/introspect"
	"github.com/mwallis/tablegen/naming"
	"github.com/mwallis/tablegen/utils"
)

var tablesURL string

func init() {
	tablesCmd.Flags().StringVar(&tablesURL, "url", "", "Database URL (defaults to DATABASE_URL)")
}

var tablesCmd = &cobra.Command{
	Use:   "tables",
	Short: "List the tables generation would cover",
	Long: `List every base table in the public schema with its column count and
the class name it would generate.

Examples:
  tablegen tables
  tablegen tables --url postgres://localhost:5432/app
`,
	Run: func(cmd *cobra.Command, args []string) {
		url := tablesURL
		if url == "" {
			url = utils.DatabaseURL()
		}

		ctx := context.Background()
		pool, err := database.Connect(ctx, url)
		if err != nil {
			fmt.Println("❌ Connecting to database:", err)
			os.Exit(1)
		}
		defer pool.Close()

		tables, err := introspect.ListTables(ctx, pool)
		if err != nil {
			fmt.Println("❌ Listing tables:", err)
			os.Exit(1)
		}
		if len(tables) == 0 {
			fmt.Println("⚠️  No base tables found in the public schema.")
			return
		}

		for _, table := range tables {
			cols, err := introspect.ListColumns(ctx, pool, table)
			if err != nil {
				color.Red("❌ %s: %v", table, err)
				continue
			}
			fmt.Printf("   %s (%d columns) -> %s.go\n", table, len(cols), naming.ClassName(table))
		}
		color.Green("✅ Found %d tables", len(tables))
	},
}
