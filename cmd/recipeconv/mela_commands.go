package main

import (
	"fmt"
	"strings"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"github.com/spf13/cobra"

	"recipeconv/internal/enrich"
	"recipeconv/internal/imagecache"
	"recipeconv/internal/imagesearch"
	"recipeconv/internal/mela"
)

func newMelaCommand(ctx *commandContext) *cobra.Command {
	melaCmd := &cobra.Command{
		Use:   "mela",
		Short: "Inspect and enrich Mela recipe archives",
	}

	melaCmd.AddCommand(newMelaListCommand())
	melaCmd.AddCommand(newMelaAddImagesCommand(ctx))

	return melaCmd
}

func newMelaListCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "list INPUT",
		Short: "List the recipes in a Mela archive",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			recipes, err := mela.Read(args[0])
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			fmt.Fprintln(out, renderRecipeTable(recipes))
			fmt.Fprintf(out, "%d recipes\n", len(recipes))
			return nil
		},
	}
}

// renderRecipeTable lays out one archive row per recipe, image count
// right-aligned.
func renderRecipeTable(recipes []mela.Recipe) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Title", "Categories", "Images", "Link"})
	for _, recipe := range recipes {
		tw.AppendRow(table.Row{
			recipe.Title,
			strings.Join(recipe.Categories, ", "),
			len(recipe.Images),
			recipe.Link,
		})
	}
	tw.SetColumnConfigs([]table.ColumnConfig{
		{Number: 3, Align: text.AlignRight, AlignHeader: text.AlignLeft},
	})
	return tw.Render()
}

func newMelaAddImagesCommand(ctx *commandContext) *cobra.Command {
	var scaleWidth int

	cmd := &cobra.Command{
		Use:   "add-images INPUT OUTPUT",
		Short: "Download an image for every recipe that lacks one",
		Long: `Download an image for every recipe that lacks one.

Each recipe title is used as an image search query. Downloads are cached
between runs when the cache is enabled, so re-enriching the same collection
stays off the network. Recipes whose image cannot be found keep their
current state; the output archive is written either way.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := ctx.ensureConfig()
			if err != nil {
				return err
			}
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			recipes, err := mela.Read(args[0])
			if err != nil {
				return err
			}

			searcher := imagesearch.NewClient(imagesearch.Config{
				BaseURL:        cfg.Search.BaseURL,
				UserAgent:      cfg.Search.UserAgent,
				TimeoutSeconds: cfg.Search.TimeoutSeconds,
			})

			var cache enrich.Cache
			if cfg.Cache.Enabled {
				store, err := imagecache.Open(cfg.Cache.Path)
				if err != nil {
					return fmt.Errorf("open image cache: %w", err)
				}
				defer store.Close()
				cache = store
			}

			width := cfg.Images.ScaleWidth
			if cmd.Flags().Changed("scale-width") {
				width = scaleWidth
			}

			added := enrich.AddImages(cmd.Context(), recipes, searcher, cache, enrich.Options{
				ScaleWidth: width,
				Logger:     logger,
			})

			// Keep whatever was enriched before an interrupt.
			if err := mela.Write(args[1], recipes); err != nil {
				return err
			}
			if err := cmd.Context().Err(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Added images to %d of %d recipes; wrote %s\n", added, len(recipes), args[1])
			return nil
		},
	}

	cmd.Flags().IntVar(&scaleWidth, "scale-width", 0, "Scale embedded images down to this width in pixels (0 keeps originals)")
	return cmd
}
