package adminctl

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/huaxing/corpsite-api/internal/adminctl/output"
	"github.com/huaxing/corpsite-api/pkg/client"
)

var productsCmd = &cobra.Command{
	Use:   "products",
	Short: "Manage the product catalog",
}

var productsListCmd = &cobra.Command{
	Use:     "list",
	Aliases: []string{"ls"},
	Short:   "List catalog entries",
	RunE:    runProductsList,
}

var productsCreateCmd = &cobra.Command{
	Use:   "create",
	Short: "Add a catalog entry",
	RunE:  runProductsCreate,
}

var productsUpdateCmd = &cobra.Command{
	Use:   "update <id>",
	Short: "Update a catalog entry",
	Args:  cobra.ExactArgs(1),
	RunE:  runProductsUpdate,
}

var productsDeleteCmd = &cobra.Command{
	Use:     "delete <id>",
	Aliases: []string{"rm"},
	Short:   "Remove a catalog entry",
	Args:    cobra.ExactArgs(1),
	RunE:    runProductsDelete,
}

func init() {
	rootCmd.AddCommand(productsCmd)
	productsCmd.AddCommand(productsListCmd, productsCreateCmd, productsUpdateCmd, productsDeleteCmd)

	productsListCmd.Flags().String("category", "", "filter by category")
	productsListCmd.Flags().Int("page", 1, "page number")
	productsListCmd.Flags().Int("limit", 20, "entries per page")
	productsListCmd.Flags().Bool("json", false, "output as JSON")

	for _, c := range []*cobra.Command{productsCreateCmd, productsUpdateCmd} {
		c.Flags().String("name-zh", "", "Chinese name")
		c.Flags().String("name-en", "", "English name")
		c.Flags().String("desc-zh", "", "Chinese description")
		c.Flags().String("desc-en", "", "English description")
		c.Flags().String("category", "", "category")
		c.Flags().Float64("price", 0, "price")
		c.Flags().String("image-url", "", "image URL")
	}
	_ = productsCreateCmd.MarkFlagRequired("name-zh")
	_ = productsCreateCmd.MarkFlagRequired("category")
}

func runProductsList(cmd *cobra.Command, args []string) error {
	category, _ := cmd.Flags().GetString("category")
	page, _ := cmd.Flags().GetInt("page")
	limit, _ := cmd.Flags().GetInt("limit")

	list, err := apiClient.ListProducts(cmd.Context(), category, page, limit)
	if err != nil {
		return err
	}

	if jsonOut, _ := cmd.Flags().GetBool("json"); jsonOut {
		return printJSON(list)
	}

	table := output.NewTable([]string{"ID", "NAME (ZH)", "NAME (EN)", "CATEGORY", "PRICE"})
	for _, p := range list.Data {
		table.AddRow([]string{p.ID, p.NameZH, p.NameEN, p.Category, fmt.Sprintf("%.2f", p.Price)})
	}
	table.Render()
	printer.Info("page %d of %d (%d total)", list.Pagination.Page, list.Pagination.TotalPages, list.Pagination.Total)
	return nil
}

func productInputFromFlags(cmd *cobra.Command, base client.ProductInput) client.ProductInput {
	applyFlag(cmd, "name-zh", &base.NameZH)
	applyFlag(cmd, "name-en", &base.NameEN)
	applyFlag(cmd, "desc-zh", &base.DescriptionZH)
	applyFlag(cmd, "desc-en", &base.DescriptionEN)
	applyFlag(cmd, "category", &base.Category)
	applyFlag(cmd, "image-url", &base.ImageURL)
	if cmd.Flags().Changed("price") {
		base.Price, _ = cmd.Flags().GetFloat64("price")
	}
	return base
}

func runProductsCreate(cmd *cobra.Command, args []string) error {
	product, err := apiClient.CreateProduct(cmd.Context(), productInputFromFlags(cmd, client.ProductInput{}))
	if err != nil {
		return err
	}
	printer.Success("product %s created (%s)", printer.Bold(product.NameZH), product.ID)
	return nil
}

func runProductsUpdate(cmd *cobra.Command, args []string) error {
	id := args[0]

	// Start from the current entry so omitted flags keep their value.
	current, err := apiClient.GetProduct(cmd.Context(), id)
	if err != nil {
		return err
	}

	input := productInputFromFlags(cmd, client.ProductInput{
		NameZH:        current.NameZH,
		NameEN:        current.NameEN,
		DescriptionZH: current.DescriptionZH,
		DescriptionEN: current.DescriptionEN,
		Category:      current.Category,
		Price:         current.Price,
		ImageURL:      current.ImageURL,
	})

	product, err := apiClient.UpdateProduct(cmd.Context(), id, input)
	if err != nil {
		return err
	}
	printer.Success("product %s updated", printer.Bold(product.ID))
	return nil
}

func runProductsDelete(cmd *cobra.Command, args []string) error {
	if err := apiClient.DeleteProduct(cmd.Context(), args[0]); err != nil {
		return err
	}
	printer.Success("product %s deleted", args[0])
	return nil
}
