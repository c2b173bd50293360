package cmd

import (
	"fmt"
	"os"
	"path/filepath"

	"pdf-summarizer/internal/config"
	"pdf-summarizer/internal/logger"
	"pdf-summarizer/internal/services"

	"github.com/spf13/cobra"
)

var extractorFlag string

var rootCmd = &cobra.Command{
	Use:   "pdf-summarizer",
	Short: "Summarize PDF documents with an OpenAI chat model",
	Long: `pdf-summarizer extracts the text layer of a PDF and asks an OpenAI
chat model for a short summary. Without a subcommand it runs the HTTP API.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE:          runServe,
}

// Execute runs the root command. It is called once by main.main().
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&extractorFlag, "extractor", "e", "", "PDF engine: pdf or mupdf (overrides PDF_EXTRACTOR)")
}

// loadConfig reads the environment, applies flag overrides and initializes logging.
func loadConfig(cmd *cobra.Command) (*config.Config, error) {
	cfg, err := config.Load()
	if err != nil {
		return nil, err
	}
	if cmd.Flags().Changed("extractor") {
		cfg.Processing.Extractor = extractorFlag
	}
	logger.Init(cfg.LogLevel)
	return cfg, nil
}

// newProcessor builds the pipeline shared by the server and the CLI.
func newProcessor(cfg *config.Config) (*services.DocumentProcessor, error) {
	extractor, err := services.NewTextExtractor(cfg.Processing.Extractor, services.NewTextSanitizer())
	if err != nil {
		return nil, err
	}
	summarizer := services.NewOpenAIService(cfg.OpenAI.APIKey, cfg.OpenAI.Model, cfg.OpenAI.BaseURL)
	return services.NewDocumentProcessor(extractor, summarizer, cfg.Processing.MaxFileSizeBytes()), nil
}

func readDocument(path string) (services.Document, error) {
	content, err := os.ReadFile(path)
	if err != nil {
		return services.Document{}, fmt.Errorf("read %s: %w", path, err)
	}
	return services.Document{Filename: filepath.Base(path), Content: content}, nil
}
