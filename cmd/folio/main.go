package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/unknitin07/unknaveen/pkg/folio"
)

var version = "dev"

var (
	configPath     string
	contentPath    string
	locale         string
	fullscreen     bool
	showBackground bool
	logLevel       string
)

var rootCmd = &cobra.Command{
	Use:   "folio",
	Short: "Controller-driven portfolio site",
	Long: `folio renders a personal portfolio as a native app: a handful of
pages behind a path-based router, navigated with a game controller
instead of a mouse.

Built for Brick-class handhelds; runs windowed on the desktop when
ENVIRONMENT=DEV is set. Config and content files are created with
defaults on first run, so the binary works out of the box.`,
	Version:      version,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		app, err := folio.Init(folio.Options{
			ConfigPath:     configPath,
			ContentPath:    contentPath,
			Locale:         locale,
			Fullscreen:     fullscreen,
			ShowBackground: showBackground,
		})
		if err != nil {
			return err
		}
		defer folio.Close()

		if logLevel != "" {
			folio.SetRawLogLevel(logLevel)
		}

		app.Run()
		return nil
	},
}

func init() {
	rootCmd.Flags().StringVarP(&configPath, "config", "c", "config.toml", "shell config file, created with defaults when missing")
	rootCmd.Flags().StringVar(&contentPath, "content", "", "portfolio content file (overrides config)")
	rootCmd.Flags().StringVar(&locale, "locale", "", "UI locale, e.g. en or de (overrides config)")
	rootCmd.Flags().BoolVar(&fullscreen, "fullscreen", false, "force fullscreen")
	rootCmd.Flags().BoolVar(&showBackground, "background", true, "render the theme background image")
	rootCmd.Flags().StringVar(&logLevel, "log-level", "", "log level: debug, info, warn, error (overrides config)")
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}
