package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"recipeconv/internal/convert"
)

func newConvertCommand(ctx *commandContext) *cobra.Command {
	return &cobra.Command{
		Use:   "convert INPUT OUTPUT",
		Short: "Convert a recipe collection to another format",
		Long: `Convert a recipe collection to another format.

The conversion is chosen by file suffix. Supported today:

  .mmf -> .melarecipes    MealMaster export to Mela recipe archive`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			logger, err := ctx.ensureLogger()
			if err != nil {
				return err
			}

			inputPath, outputPath := args[0], args[1]
			converter, err := convert.Lookup(inputPath, outputPath)
			if err != nil {
				return err
			}

			count, err := converter(inputPath, outputPath)
			if err != nil {
				return err
			}

			logger.Debug("conversion finished", "input", inputPath, "output", outputPath, "recipes", count)
			fmt.Fprintf(cmd.OutOrStdout(), "Converted %d recipes to %s\n", count, outputPath)
			return nil
		},
	}
}
