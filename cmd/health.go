package cmd

import (
	"context"
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/mwallis/tablegen/database"
	"github.com/mwallis/tablegen/utils"
)

var healthCmd = &cobra.Command{
	Use:   "health",
	Short: "Check database connectivity",
	Long: `Check if the database is accessible and responsive.

Examples:
  tablegen health                   # Check default database connection
  tablegen health --timeout 10s     # Set custom timeout
`,
	Run: func(cmd *cobra.Command, args []string) {
		if err := checkDatabaseHealth(); err != nil {
			fmt.Printf("❌ Database health check failed: %v\n", err)
			os.Exit(1)
		}
		fmt.Println("✅ Database is healthy and accessible")
	},
}

var (
	healthTimeout time.Duration
	healthURL     string
)

func init() {
	healthCmd.Flags().DurationVarP(&healthTimeout, "timeout", "t", 5*time.Second, "Timeout for health check")
	healthCmd.Flags().StringVar(&healthURL, "url", "", "Database URL (defaults to DATABASE_URL)")
}

func checkDatabaseHealth() error {
	ctx, cancel := context.WithTimeout(context.Background(), healthTimeout)
	defer cancel()

	url := healthURL
	if url == "" {
		url = utils.DatabaseURL()
	}

	pool, err := database.Connect(ctx, url)
	if err != nil {
		return err
	}
	defer pool.Close()

	var tableCount int
	query := `SELECT COUNT(*)
	FROM information_schema.tables
	WHERE table_schema = 'public' AND table_type = 'BASE TABLE'`

	if err := pool.QueryRow(ctx, query).Scan(&tableCount); err != nil {
		return fmt.Errorf("failed to count tables: %v", err)
	}

	fmt.Printf("📊 Found %d base tables in the public schema\n", tableCount)
	return nil
}
