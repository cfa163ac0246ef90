package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/martinemde/comeng/inventory"
)

var inventoryCmd = &cobra.Command{
	Use:   "inventory <sitac.xml>",
	Short: "Export the decoded figures to an XLSX sheet",
	Args:  cobra.ExactArgs(1),
	RunE:  runInventory,
}

func init() {
	inventoryCmd.Flags().StringP("output", "o", "figures.xlsx", "Output XLSX file")
	rootCmd.AddCommand(inventoryCmd)
}

func runInventory(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	output, _ := cmd.Flags().GetString("output")

	doc, err := loadDocument(args[0], viper.GetString("syntax"), logger)
	if err != nil {
		return err
	}
	if err := inventory.Write(output, doc.Figures); err != nil {
		return fmt.Errorf("writing inventory: %w", err)
	}

	logger.With("component", "cli").Info("wrote inventory", "path", output, "rows", len(doc.Figures))
	fmt.Fprintln(cmd.OutOrStdout(), output)
	return nil
}
