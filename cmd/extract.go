package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
)

var extractCmd = &cobra.Command{
	Use:   "extract FILE",
	Short: "Print the text extracted from a local PDF",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.ValidateProcessing(); err != nil {
			return err
		}

		processor, err := newProcessor(cfg)
		if err != nil {
			return err
		}

		doc, err := readDocument(args[0])
		if err != nil {
			return err
		}

		text, err := processor.Extract(doc)
		if err != nil {
			return err
		}

		_, err = fmt.Fprintln(cmd.OutOrStdout(), text)
		return err
	},
}

func init() {
	rootCmd.AddCommand(extractCmd)
}
