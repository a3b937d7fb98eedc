package adminctl

import (
	"github.com/spf13/cobra"

	"github.com/huaxing/corpsite-api/pkg/client"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage site-wide settings",
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show the current settings",
	RunE:  runSettingsShow,
}

var settingsUpdateCmd = &cobra.Command{
	Use:   "update",
	Short: "Update site settings",
	Long: `Update site settings. Only the provided fields change.

Examples:
  adminctl settings update --contact-email info@example.com
  adminctl settings update --icp "京ICP备00000000号"`,
	RunE: runSettingsUpdate,
}

func init() {
	rootCmd.AddCommand(settingsCmd)
	settingsCmd.AddCommand(settingsShowCmd, settingsUpdateCmd)

	settingsShowCmd.Flags().Bool("json", false, "output as JSON")

	settingsUpdateCmd.Flags().String("site-name-zh", "", "Chinese site name")
	settingsUpdateCmd.Flags().String("site-name-en", "", "English site name")
	settingsUpdateCmd.Flags().String("site-desc-zh", "", "Chinese site description")
	settingsUpdateCmd.Flags().String("site-desc-en", "", "English site description")
	settingsUpdateCmd.Flags().String("contact-email", "", "contact email address")
	settingsUpdateCmd.Flags().String("icp", "", "ICP filing number")
}

func runSettingsShow(cmd *cobra.Command, args []string) error {
	settings, err := apiClient.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(settings)
	}

	printer.Info("Site name (zh):   %s", settings.SiteNameZH)
	printer.Info("Site name (en):   %s", settings.SiteNameEN)
	printer.Info("Description (zh): %s", settings.SiteDescriptionZH)
	printer.Info("Description (en): %s", settings.SiteDescriptionEN)
	printer.Info("Contact email:    %s", settings.ContactEmail)
	printer.Info("ICP number:       %s", settings.ICPNumber)
	return nil
}

func runSettingsUpdate(cmd *cobra.Command, args []string) error {
	current, err := apiClient.GetSettings(cmd.Context())
	if err != nil {
		return err
	}

	input := client.SettingsInput{
		SiteNameZH:        current.SiteNameZH,
		SiteNameEN:        current.SiteNameEN,
		SiteDescriptionZH: current.SiteDescriptionZH,
		SiteDescriptionEN: current.SiteDescriptionEN,
		ContactEmail:      current.ContactEmail,
		ICPNumber:         current.ICPNumber,
	}

	applyFlag(cmd, "site-name-zh", &input.SiteNameZH)
	applyFlag(cmd, "site-name-en", &input.SiteNameEN)
	applyFlag(cmd, "site-desc-zh", &input.SiteDescriptionZH)
	applyFlag(cmd, "site-desc-en", &input.SiteDescriptionEN)
	applyFlag(cmd, "contact-email", &input.ContactEmail)
	applyFlag(cmd, "icp", &input.ICPNumber)

	if _, err := apiClient.UpdateSettings(cmd.Context(), input); err != nil {
		return err
	}
	printer.Success("settings updated")
	return nil
}
