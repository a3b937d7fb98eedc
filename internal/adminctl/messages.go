package adminctl

import (
	"github.com/spf13/cobra"

	"github.com/huaxing/corpsite-api/internal/adminctl/output"
)

var messagesCmd = &cobra.Command{
	Use:   "messages",
	Short: "Manage visitor inquiries",
}

var messagesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List inquiries",
	Long: `List visitor inquiries.

Examples:
  adminctl messages list                 # newest first
  adminctl messages list --status new    # only unhandled inquiries`,
	RunE: runMessagesList,
}

var messagesReadCmd = &cobra.Command{
	Use:   "read <id>",
	Short: "Mark an inquiry as read",
	Args:  cobra.ExactArgs(1),
	RunE:  runMessagesRead,
}

var messagesReplyCmd = &cobra.Command{
	Use:   "reply <id>",
	Short: "Record a reply to an inquiry",
	Args:  cobra.ExactArgs(1),
	RunE:  runMessagesReply,
}

var messagesDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Delete an inquiry",
	Args:    cobra.ExactArgs(1),
	RunE:    runMessagesDelete,
}

func init() {
	rootCmd.AddCommand(messagesCmd)
	messagesCmd.AddCommand(messagesListCmd, messagesReadCmd, messagesReplyCmd, messagesDeleteCmd)

	messagesListCmd.Flags().String("status", "", "filter by status (new, read, replied)")
	messagesListCmd.Flags().Int("page", 1, "page number")
	messagesListCmd.Flags().Int("limit", 20, "entries per page")
	messagesListCmd.Flags().Bool("json", false, "output as JSON")

	messagesReplyCmd.Flags().StringP("message", "m", "", "reply text")
	_ = messagesReplyCmd.MarkFlagRequired("message")
}

func runMessagesList(cmd *cobra.Command, args []string) error {
	status, _ := cmd.Flags().GetString("status")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	list, err := apiClient.ListMessages(cmd.Context(), status, page, limit)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(list)
	}

	table := output.NewTable([]string{"ID", "REFERENCE", "STATUS", "NAME", "EMAIL", "RECEIVED"})
	for _, m := range list.Data {
		table.AddRow([]string{
			m.ID,
			m.Reference,
			printer.MessageStatus(m.Status),
			m.Name,
			m.Email,
			m.CreatedAt.Format("2006-01-02 15:04"),
		})
	}
	table.Render()
	printer.Info("page %d of %d (%d total)", list.Pagination.Page, list.Pagination.TotalPages, list.Pagination.Total)
	return nil
}

func runMessagesRead(cmd *cobra.Command, args []string) error {
	message, err := apiClient.MarkMessageRead(cmd.Context(), args[0])
	if err != nil {
		return err
	}
	printer.Success("message %s marked %s", message.Reference, printer.MessageStatus(message.Status))
	return nil
}

func runMessagesReply(cmd *cobra.Command, args []string) error {
	reply, _ := cmd.Flags().GetString("message")
	message, err := apiClient.ReplyMessage(cmd.Context(), args[0], reply)
	if err != nil {
		return err
	}
	printer.Success("reply recorded for %s", message.Reference)
	return nil
}

func runMessagesDelete(cmd *cobra.Command, args []string) error {
	if err := apiClient.DeleteMessage(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("message %s deleted", args[0])
	return nil
}
