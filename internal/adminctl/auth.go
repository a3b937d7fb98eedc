package adminctl

import (
	"bufio"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
)

var loginCmd = &cobra.Command{
	Use:   "login",
	Short: "Authenticate and store the credential",
	Long: `Authenticate against the admin API and store the credential on disk.

Examples:
  adminctl login -u admin                # password read from the terminal
  adminctl login -u admin -p 's3cret'    # password on the command line`,
	RunE: runLogin,
}

var logoutCmd = &cobra.Command{
	Use:   "logout",
	Short: "Discard the stored credential",
	RunE:  runLogout,
}

var whoamiCmd = &cobra.Command{
	Use:   "whoami",
	Short: "Show the identity behind the stored credential",
	RunE:  runWhoami,
}

func init() {
	rootCmd.AddCommand(loginCmd, logoutCmd, whoamiCmd)

	loginCmd.Flags().StringP("username", "u", "", "account username")
	loginCmd.Flags().StringP("password", "p", "", "account password (prompted when omitted)")
	_ = loginCmd.MarkFlagRequired("username")
}

func runLogin(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")

	if password == "" {
		fmt.Fprint(os.Stderr, "Password: ")
		line, err := bufio.NewReader(os.Stdin).ReadString('\n')
		if err != nil {
			return err
		}
		password = strings.TrimRight(line, "\r\n")
	}

	user, err := apiClient.Login(cmd.Context(), username, password)
	if err != nil {
		return err
	}

	printer.Success("logged in as %s (%s)", printer.Bold(user.Username), user.Role)
	return nil
}

func runLogout(cmd *cobra.Command, args []string) error {
	if err := apiClient.Logout(cmd.Context()); err != nil {
		return err
	}
	printer.Success("logged out")
	return nil
}

func runWhoami(cmd *cobra.Command, args []string) error {
	s := session()
	if s == nil {
		printer.Info("not logged in")
		return nil
	}
	printer.Info("%s (%s)", printer.Bold(s.Username), s.Role)
	return nil
}
