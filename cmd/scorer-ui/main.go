// Command scorer-ui serves, renders and publishes the Passport Scorer
// interface footer.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/passport-scorer/scorer-ui/internal/config"
	uierrors "github.com/passport-scorer/scorer-ui/internal/errors"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		var ue *uierrors.UIError
		if errors.As(err, &ue) {
			fmt.Fprint(os.Stderr, ue.Format())
		} else {
			fmt.Fprintf(os.Stderr, "\033[31mError:\033[0m %s\n", err)
		}
		os.Exit(1)
	}
}

func newRootCmd() *cobra.Command {
	var configPath string

	rootCmd := &cobra.Command{
		Use:   "scorer-ui",
		Short: "Passport Scorer interface footer",
		Long: `scorer-ui renders the footer of the Passport Scorer interface.

It can serve the footer over HTTP (with a live websocket variant),
print it as HTML, or publish pre-rendered light and dark fragments
to an S3 bucket.

Configuration is read from scorer-ui.json in the working directory
when present, then overridden by SCORER_UI_* environment variables
and finally by command-line flags.`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	rootCmd.PersistentFlags().StringVarP(&configPath, "config", "c", "", "Path to "+config.ConfigFileName)

	rootCmd.AddCommand(
		serveCmd(&configPath),
		renderCmd(&configPath),
		publishCmd(&configPath),
		versionCmd(),
	)

	return rootCmd
}

// loadConfig reads the configuration file, then the environment. A missing
// default file falls back to defaults; a missing explicit file is an error.
func loadConfig(path string) (*config.Config, error) {
	explicit := path != ""
	if !explicit {
		path = config.ConfigFileName
	}

	cfg, err := config.LoadFile(path)
	if err != nil {
		if explicit || !uierrors.HasCode(err, "E100") {
			return nil, err
		}
		cfg = config.New()
	}

	if err := cfg.ApplyEnv(os.Getenv); err != nil {
		return nil, err
	}
	return cfg, nil
}

// success prints a success message.
func success(format string, args ...any) {
	fmt.Printf("\033[32m✓\033[0m %s\n", fmt.Sprintf(format, args...))
}

// info prints an info message.
func info(format string, args ...any) {
	fmt.Printf("  %s\n", fmt.Sprintf(format, args...))
}

// warn prints a warning message.
func warn(format string, args ...any) {
	fmt.Printf("\033[33m⚠\033[0m %s\n", fmt.Sprintf(format, args...))
}
