package cmd

import (
	"encoding/json"

	"github.com/spf13/cobra"
)

var summarizeCmd = &cobra.Command{
	Use:   "summarize FILE",
	Short: "Summarize a local PDF and print the API response as JSON",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig(cmd)
		if err != nil {
			return err
		}
		if err := cfg.Validate(); err != nil {
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

		resp, err := processor.Process(cmd.Context(), doc)
		if err != nil {
			return err
		}

		encoder := json.NewEncoder(cmd.OutOrStdout())
		encoder.SetIndent("", "  ")
		return encoder.Encode(resp)
	},
}

func init() {
	rootCmd.AddCommand(summarizeCmd)
}
