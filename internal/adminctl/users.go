package adminctl

import (
	"github.com/spf13/cobra"

	"github.com/huaxing/corpsite-api/internal/adminctl/output"
	"github.com/huaxing/corpsite-api/pkg/client"
)

var usersCmd = &cobra.Command{
	Use:   "users",
	Short: "Manage admin-area accounts",
}

var usersListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List accounts",
	RunE:    runUsersList,
}

var usersCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Create an account",
	Long: `Create an admin-area account.

Examples:
  adminctl users create -u zhang -p 'changeme1' --role editor
  adminctl users create -u li -p 'changeme1' --role admin`,
	RunE: runUsersCreate,
}

var usersDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an account",
	Args:    cobra.ExactArgs(1),
	RunE:    runUsersDelete,
}

var usersPasswdCmd = &cobra.Command{
	Use:   "passwd <id>",
	Short: "Change an account password",
	Args:  cobra.ExactArgs(1),
	RunE:  runUsersPasswd,
}

func init() {
	rootCmd.AddCommand(usersCmd)
	usersCmd.AddCommand(usersListCmd, usersCreateCmd, usersDeleteCmd, usersPasswdCmd)

	usersListCmd.Flags().Bool("json", false, "output as JSON")

	usersCreateCmd.Flags().StringP("username", "u", "", "account username")
	usersCreateCmd.Flags().StringP("password", "p", "", "account password")
	usersCreateCmd.Flags().String("role", "editor", "account role (admin or editor)")
	_ = usersCreateCmd.MarkFlagRequired("username")
	_ = usersCreateCmd.MarkFlagRequired("password")

	usersPasswdCmd.Flags().StringP("password", "p", "", "new password")
	_ = usersPasswdCmd.MarkFlagRequired("password")
}

func runUsersList(cmd *cobra.Command, args []string) error {
	users, err := apiClient.ListUsers(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(users)
	}

	table := output.NewTable([]string{"ID", "USERNAME", "ROLE"})
	for _, u := range users {
		table.AddRow([]string{u.ID, u.Username, u.Role})
	}
	table.Render()
	return nil
}

func runUsersCreate(cmd *cobra.Command, args []string) error {
	username, _ := cmd.Flags().GetString("username")
	password, _ := cmd.Flags().GetString("password")
	role, _ := cmd.Flags().GetString("role")

	user, err := apiClient.CreateUser(cmd.Context(), client.UserInput{
		Username: username,
		Password: password,
		Role:     role,
	})
	if err != nil {
		return err
	}
	printer.Success("user %s created (%s)", printer.Bold(user.Username), user.Role)
	return nil
}

func runUsersDelete(cmd *cobra.Command, args []string) error {
	if err := apiClient.DeleteUser(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("user %s deleted", args[0])
	return nil
}

func runUsersPasswd(cmd *cobra.Command, args []string) error {
	password, _ := cmd.Flags().GetString("password")
	if err := apiClient.ChangeUserPassword(cmd.Context(), args[0], password); err != nil {
		return err
	}
	printer.Success("password updated")
	return nil
}
