package main

import (
	"os"
	"strings"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
)

// rootCmd represents the base command when called without any subcommands.
var rootCmd = &cobra.Command{
	Use:   "busarb",
	Short: "Busarb simulates shared-bus ownership arbitration.",
	Long: `Busarb simulates a shared bus that is granted to competing ` +
		`clients by a weighted round-robin arbiter with atomic-lock ` +
		`support. It records a per-cycle ownership trace and reports ` +
		`the bandwidth share each client received.`,
}

// Execute adds all child commands to the root command and sets flags
// appropriately.
func Execute() {
	err := rootCmd.Execute()
	if err != nil {
		os.Exit(1)
	}
}

// applyEnvDefaults fills flags that the user did not set on the command line
// from BUSARB_* environment variables. A .env file in the working directory
// is loaded first.
func applyEnvDefaults(cmd *cobra.Command) {
	_ = godotenv.Load()

	cmd.Flags().VisitAll(func(f *pflag.Flag) {
		if f.Changed {
			return
		}

		envName := "BUSARB_" +
			strings.ToUpper(strings.ReplaceAll(f.Name, "-", "_"))
		if value, ok := os.LookupEnv(envName); ok {
			_ = cmd.Flags().Set(f.Name, value)
		}
	})
}
