package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	"github.com/martinemde/comeng/sitac"
)

var treeCmd = &cobra.Command{
	Use:   "tree <sitac.xml>",
	Short: "Print the decoded figures as a tree",
	Args:  cobra.ExactArgs(1),
	RunE:  runTree,
}

func init() {
	treeCmd.Flags().String("format", "text", "Output format (text, yaml)")
	rootCmd.AddCommand(treeCmd)
}

func runTree(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd)
	format, _ := cmd.Flags().GetString("format")

	doc, err := loadDocument(args[0], viper.GetString("syntax"), logger)
	if err != nil {
		return err
	}
	tree := sitac.DescribeAll(doc.Figures)

	switch format {
	case "text":
		fmt.Fprint(cmd.OutOrStdout(), tree.String())
	case "yaml":
		enc := yaml.NewEncoder(cmd.OutOrStdout())
		enc.SetIndent(2)
		if err := enc.Encode(tree); err != nil {
			return fmt.Errorf("encoding tree: %w", err)
		}
		return enc.Close()
	default:
		return fmt.Errorf("unknown format %q (want text or yaml)", format)
	}
	return nil
}
