package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/mwallis/tablegen/config"
)

var initCmd = &cobra.Command{
	Use:   "init",
	Short: "Create an example tablegen.yaml config file",
	Long: `Create an example tablegen.yaml in the current directory.

The config file holds the generation options; every value can also be
overridden per run with generate flags.

Examples:
  tablegen init
`,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stat(config.DefaultFile); err == nil {
			fmt.Println("❌ tablegen.yaml already exists!")
			return
		}

		content := `# tablegen generation options
# Directory the generated files are written to.
output_dir: models

# Package clause of generated files. Leave empty to omit the package
# declaration entirely.
package: models

# Also emit the row population method, the SELECT builder and the
# fetch-all function for each table.
query_accessors: false

# Import path of the dbaccess runtime package used by query accessors.
# Leave empty for the built-in default.
runtime_import: ""

# Only generate these tables. An empty list means every base table.
tables: []
`
		if err := os.WriteFile(config.DefaultFile, []byte(content), 0644); err != nil {
			fmt.Println("❌ Error creating tablegen.yaml:", err)
			return
		}
		fmt.Println("✅ Created tablegen.yaml example file.")
		fmt.Println("📝 Edit tablegen.yaml to configure generation")
		fmt.Println("🚀 Run 'tablegen generate' to create table classes from your database")
	},
}
