package cmd

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/fatih/color"
	"github.com/spf13/cobra"

	"github.com/mwallis/tablegen/config"
	"github.com/mwallis/tablegen/database"
	"github.com/mwallis/tablegen/generator"
	"github.com/mwallis/tablegen/utils"
)

var (
	configFile     string
	outputDir      string
	packageName    string
	queryAccessors bool
	databaseURL    string
)

func init() {
	generateCmd.Flags().StringVarP(&configFile, "config", "c", config.DefaultFile, "Config YAML file to load")
	generateCmd.Flags().StringVarP(&outputDir, "output", "o", "", "Output directory for generated files (overrides config)")
	generateCmd.Flags().StringVarP(&packageName, "package", "p", "", "Package name for generated files (overrides config)")
	generateCmd.Flags().BoolVar(&queryAccessors, "query-accessors", false, "Emit row population, SELECT builder and fetch-all members")
	generateCmd.Flags().StringVar(&databaseURL, "url", "", "Database URL (defaults to DATABASE_URL)")
}

var generateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate one Go source file per database table",
	Long: `Generate table classes from the connected database.

Each base table in the public schema becomes <ClassName>.go in the
output directory: a struct with one field per column, a zero-value
constructor and getters/setters. With --query-accessors the file also
gets a row population method, a SELECT builder and a fetch-all function.

Examples:
  tablegen generate                     # Generate using tablegen.yaml (or defaults)
  tablegen generate -o ./internal/models -p models
  tablegen generate --query-accessors   # Include query accessor members
  tablegen generate --url postgres://localhost:5432/app
`,
	Run: func(cmd *cobra.Command, args []string) {
		cfg, err := loadConfig(cmd)
		if err != nil {
			fmt.Println("❌ Loading config:", err)
			os.Exit(1)
		}

		url := databaseURL
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

		results, err := generator.Run(ctx, pool, cfg, time.Now())
		if err != nil {
			fmt.Println("❌ Generating table classes:", err)
			os.Exit(1)
		}
		if len(results) == 0 {
			fmt.Println("⚠️  No tables matched.")
			return
		}

		generated := 0
		for _, res := range results {
			if res.Err != nil {
				color.Red("❌ %s: %v", res.Table, res.Err)
				continue
			}
			generated++
			fmt.Printf("   %s -> %s\n", res.Table, res.Path)
		}

		if generated == len(results) {
			color.Green("✅ Generated %d table classes in %s/", generated, cfg.OutputDir)
		} else {
			color.Yellow("⚠️  Generated %d of %d tables (see errors above)", generated, len(results))
		}
	},
}

// loadConfig reads the config file and layers explicitly set flags on
// top of it. A missing default config file just means defaults.
func loadConfig(cmd *cobra.Command) (config.Config, error) {
	cfg := config.Default()

	loaded, err := config.Load(configFile)
	switch {
	case err == nil:
		cfg = loaded
	case errors.Is(err, os.ErrNotExist) && !cmd.Flags().Changed("config"):
		// no config file, defaults apply
	default:
		return cfg, err
	}

	if cmd.Flags().Changed("output") {
		cfg.OutputDir = outputDir
	}
	if cmd.Flags().Changed("package") {
		cfg.PackageName = packageName
	}
	if cmd.Flags().Changed("query-accessors") {
		cfg.QueryAccessors = queryAccessors
	}
	return cfg, nil
}
