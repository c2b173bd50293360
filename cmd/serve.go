package cmd

import (
	"pdf-summarizer/internal/handlers"
	"pdf-summarizer/internal/logger"

	"github.com/gin-gonic/gin"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var portFlag string

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Run the HTTP API",
	RunE:  runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)
	for _, c := range []*cobra.Command{rootCmd, serveCmd} {
		c.Flags().StringVarP(&portFlag, "port", "p", "", "listen port (overrides PORT)")
	}
}

func runServe(cmd *cobra.Command, _ []string) error {
	cfg, err := loadConfig(cmd)
	if err != nil {
		return err
	}
	if cmd.Flags().Changed("port") {
		cfg.Port = portFlag
	}
	if err := cfg.Validate(); err != nil {
		return err
	}

	processor, err := newProcessor(cfg)
	if err != nil {
		return err
	}

	if cfg.Environment == "production" {
		gin.SetMode(gin.ReleaseMode)
	}

	router := handlers.NewRouter(processor, cfg.Processing.MaxFileSizeBytes())

	logger.WithFields(logrus.Fields{
		"port":          cfg.Port,
		"model":         cfg.OpenAI.Model,
		"extractor":     cfg.Processing.Extractor,
		"maxFileSizeMB": cfg.Processing.MaxFileSizeMB,
	}).Info("🚀 Service listening on port " + cfg.Port)

	return router.Run(":" + cfg.Port)
}
