package main

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/Himesh-1/CraftMyCV/internal/ai"
	"github.com/Himesh-1/CraftMyCV/internal/config"
	"github.com/Himesh-1/CraftMyCV/internal/export"
	"github.com/Himesh-1/CraftMyCV/internal/server"
	"github.com/Himesh-1/CraftMyCV/internal/session"
)

var (
	servePort       int
	serveConfigPath string
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for editing, previewing, exporting, and optimizing a resume.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config and PORT)")
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := &config.Config{}
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded
	}
	if err := cfg.FromEnv(); err != nil {
		return err
	}
	merged := cfg.MergeWithDefaults(config.Defaults())
	if servePort != 0 {
		merged.Port = servePort
	}
	if err := merged.Validate(); err != nil {
		return err
	}

	if merged.APIKey == "" {
		return fmt.Errorf("GEMINI_API_KEY environment variable is required")
	}

	client, err := ai.NewGeminiClient(context.Background(), ai.DefaultConfig(), merged.APIKey)
	if err != nil {
		return fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	pdf := export.NewPDFRenderer()
	if merged.ChromePath != "" {
		pdf.ChromePath = merged.ChromePath
	}
	pipeline := export.NewPipeline(pdf, export.NewDocxClient(merged.DocxServiceURL))

	srv := server.New(
		server.Config{Port: merged.Port},
		session.New(),
		ai.NewGateway(client),
		pipeline,
	)
	return srv.Start()
}
