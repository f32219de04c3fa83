// Package cli implements the cordstate CLI commands.
package cli

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"
)

var formatFlag string

// RootCmd is the top-level command.
var RootCmd = &cobra.Command{
	Use:   "cordstate",
	Short: "Inspect and move persisted registry state",
	Long: "cordstate works with persisted entity snapshots and archived audit batches.\n" +
		"Stores are configured through CORDCORE_* environment variables; a .env file\n" +
		"in the working directory is loaded first when present.",
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRun: func(cmd *cobra.Command, args []string) {
		_ = godotenv.Load()
	},
}

func init() {
	RootCmd.PersistentFlags().StringVarP(&formatFlag, "format", "f", "json", "Output format: json, yaml or text")
}

// render writes v to the command output in the selected format. Commands
// supply an optional text renderer; without one the text format falls back
// to YAML, which reads well enough on a terminal.
func render(cmd *cobra.Command, v any, text func(io.Writer)) error {
	out := cmd.OutOrStdout()
	switch formatFlag {
	case "json":
		b, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return err
		}
		fmt.Fprintln(out, string(b))
		return nil
	case "yaml":
		b, err := yaml.Marshal(v)
		if err != nil {
			return err
		}
		fmt.Fprint(out, string(b))
		return nil
	case "text":
		if text == nil {
			b, err := yaml.Marshal(v)
			if err != nil {
				return err
			}
			fmt.Fprint(out, string(b))
			return nil
		}
		text(out)
		return nil
	default:
		return fmt.Errorf("unknown format %q", formatFlag)
	}
}

// readInput returns the contents of the file named by args[0], or stdin
// when no file argument was given.
func readInput(cmd *cobra.Command, args []string) ([]byte, error) {
	if len(args) == 0 {
		return io.ReadAll(cmd.InOrStdin())
	}
	return os.ReadFile(args[0])
}
