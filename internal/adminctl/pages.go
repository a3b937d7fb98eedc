package adminctl

import (
	"encoding/json"
	"os"

	"github.com/spf13/cobra"

	"github.com/huaxing/corpsite-api/internal/adminctl/output"
	"github.com/huaxing/corpsite-api/pkg/client"
)

var pagesCmd = &cobra.Command{
	Use:   "pages",
	Short: "Manage editable content pages",
}

var pagesListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List content pages",
	RunE:    runPagesList,
}

var pagesShowCmd = &cobra.Command{
	Use:   "show <key>",
	Short: "Show one page in full",
	Args:  cobra.ExactArgs(1),
	RunE:  runPagesShow,
}

var pagesUpdateCmd = &cobra.Command{
	Use:   "update <key>",
	Short: "Update a page's titles and content",
	Long: `Update a page. Only the provided fields change; omitted fields keep
their current value.

Examples:
  adminctl pages update about --title-en "About Us"
  adminctl pages update contact --content-zh-file contact_zh.md`,
	Args: cobra.ExactArgs(1),
	RunE: runPagesUpdate,
}

func init() {
	rootCmd.AddCommand(pagesCmd)
	pagesCmd.AddCommand(pagesListCmd, pagesShowCmd, pagesUpdateCmd)

	pagesListCmd.Flags().Bool("json", false, "output as JSON")
	pagesShowCmd.Flags().Bool("json", false, "output as JSON")

	pagesUpdateCmd.Flags().String("title-zh", "", "Chinese title")
	pagesUpdateCmd.Flags().String("title-en", "", "English title")
	pagesUpdateCmd.Flags().String("content-zh", "", "Chinese content")
	pagesUpdateCmd.Flags().String("content-en", "", "English content")
	pagesUpdateCmd.Flags().String("content-zh-file", "", "read Chinese content from a file")
	pagesUpdateCmd.Flags().String("content-en-file", "", "read English content from a file")
}

func runPagesList(cmd *cobra.Command, args []string) error {
	pages, err := apiClient.ListPages(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(pages)
	}

	table := output.NewTable([]string{"KEY", "TITLE (ZH)", "TITLE (EN)", "UPDATED"})
	for _, p := range pages {
		table.AddRow([]string{p.PageKey, p.TitleZH, p.TitleEN, p.UpdatedAt.Format("2006-01-02 15:04")})
	}
	table.Render()
	return nil
}

func runPagesShow(cmd *cobra.Command, args []string) error {
	page, err := apiClient.GetPage(cmd.Context(), args[0])
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(page)
	}

	printer.Info("%s", printer.Bold(page.PageKey))
	printer.Info("Title (zh): %s", page.TitleZH)
	printer.Info("Title (en): %s", page.TitleEN)
	printer.Info("")
	printer.Info("--- content (zh) ---")
	printer.Info("%s", page.ContentZH)
	printer.Info("--- content (en) ---")
	printer.Info("%s", page.ContentEN)
	return nil
}

func runPagesUpdate(cmd *cobra.Command, args []string) error {
	key := args[0]
	current, err := apiClient.GetPage(cmd.Context(), key)
	if err != nil {
		return err
	}

	input := client.PageInput{
		TitleZH:   current.TitleZH,
		TitleEN:   current.TitleEN,
		ContentZH: current.ContentZH,
		ContentEN: current.ContentEN,
	}

	applyFlag(cmd, "title-zh", &input.TitleZH)
	applyFlag(cmd, "title-en", &input.TitleEN)
	applyFlag(cmd, "content-zh", &input.ContentZH)
	applyFlag(cmd, "content-en", &input.ContentEN)
	if err := applyFileFlag(cmd, "content-zh-file", &input.ContentZH); err != nil {
		return err
	}
	if err := applyFileFlag(cmd, "content-en-file", &input.ContentEN); err != nil {
		return err
	}

	updated, err := apiClient.UpdatePage(cmd.Context(), key, input)
	if err != nil {
		return err
	}

	printer.Success("page %s updated", printer.Bold(updated.PageKey))
	return nil
}

// applyFlag overwrites dst only when the flag was set on the command line,
// so empty values can be assigned explicitly.
func applyFlag(cmd *cobra.Command, name string, dst *string) {
	if cmd.Flags().Changed(name) {
		*dst, _ = cmd.Flags().GetString(name)
	}
}

func applyFileFlag(cmd *cobra.Command, name string, dst *string) error {
	if !cmd.Flags().Changed(name) {
		return nil
	}
	path, _ := cmd.Flags().GetString(name)
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}
	*dst = string(data)
	return nil
}

func printJSON(v any) error {
	enc := json.NewEncoder(os.Stdout)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
