package cli

import (
	"github.com/spf13/cobra"

	"github.com/osse101/PlotPlanner_Go/internal/domain"
	"github.com/osse101/PlotPlanner_Go/internal/shop"
)

// NewShopCommand creates the shop command
func NewShopCommand() *cobra.Command {
	var (
		category, sortBy string
		desc, all        bool
	)

	cmd := &cobra.Command{
		Use:   "shop",
		Short: "List purchasable items",
		Long: `List the shop built from the catalog. Only items that can be bought right
now are shown unless --all is given.

Examples:
  planner shop
  planner shop --category Plots --sort price --desc
  planner shop --all`,
		RunE: func(cmd *cobra.Command, args []string) error {
			catalogs, err := loadCatalog(dataDir)
			if err != nil {
				return err
			}
			q, err := shop.ValidateQuery(domain.ShopQuery{
				Category:    category,
				SortBy:      sortBy,
				Descending:  desc,
				InStockOnly: !all,
			})
			if err != nil {
				return err
			}
			items, err := shop.Query(shop.Build(catalogs.Current()), q)
			if err != nil {
				return err
			}
			return printShop(cmd.OutOrStdout(), q.Category, items)
		},
	}

	cmd.Flags().StringVar(&category, "category", domain.ShopCategoryAll, "Seeds, Plots, Lamps, Animals, Auto Harvesters or all")
	cmd.Flags().StringVar(&sortBy, "sort", domain.ShopSortName, "name, price or rarity")
	cmd.Flags().BoolVar(&desc, "desc", false, "Sort descending")
	cmd.Flags().BoolVar(&all, "all", false, "Include items that cannot be bought now")

	return cmd
}
