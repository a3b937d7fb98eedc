// Package adminctl contains the CLI commands for managing the site over its
// admin API.
package adminctl

import (
	"os"

	"github.com/spf13/cobra"

	"github.com/huaxing/corpsite-api/internal/adminctl/output"
	"github.com/huaxing/corpsite-api/pkg/client"
)

var (
	apiURL    string
	tokenFile string
	noColor   bool

	apiClient *client.Client
	printer   *output.Printer
)

var rootCmd = &cobra.Command{
	Use:   "adminctl",
	Short: "Manage the corporate site from the command line",
	Long: `adminctl drives the site's admin API: content pages, the product
catalog, visitor messages, accounts and site settings.

Log in once; the credential is stored on disk and attached to every
subsequent command until it expires or you log out.

Example usage:
  adminctl login -u admin        # authenticate and store the credential
  adminctl pages list            # list editable pages
  adminctl messages list --status new
  adminctl logout`,
	SilenceUsage:  true,
	SilenceErrors: true,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		return initClient()
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().StringVar(&apiURL, "api", defaultAPIURL(), "base URL of the admin API")
	rootCmd.PersistentFlags().StringVar(&tokenFile, "token-file", "", "credential file (default: per-user config dir)")
	rootCmd.PersistentFlags().BoolVar(&noColor, "no-color", false, "disable colored output")
}

func defaultAPIURL() string {
	if v := os.Getenv("CORPSITE_API"); v != "" {
		return v
	}
	return "http://localhost:8080"
}

func initClient() error {
	printer = output.NewPrinter(!noColor)

	path := tokenFile
	if path == "" {
		var err error
		path, err = client.DefaultStorePath()
		if err != nil {
			return err
		}
	}

	store := client.NewFileStore(path)
	apiClient = client.New(apiURL, store, client.WithSessionExpiredHandler(func() {
		printer.Warn("session expired, run 'adminctl login' to continue")
	}))
	return nil
}

// session resolves the stored credential, or nil when not logged in.
func session() *client.Session {
	s, ok := client.NewResolver(apiClient.Store()).Resolve()
	if !ok {
		return nil
	}
	return s
}
