package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/jonathan/interview-coach/internal/config"
	"github.com/jonathan/interview-coach/internal/logger"
	"github.com/jonathan/interview-coach/internal/server"
	"github.com/spf13/cobra"
)

var (
	serveConfigPath string
	servePort       int
	serveUploadDir  string
	serveLogJSON    bool
	serveDebug      bool
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the REST API server",
	Long:  `Start an HTTP server that exposes REST endpoints for starting interviews, fetching questions, and uploading video answers.`,
	RunE:  runServe,
}

func init() {
	serveCmd.Flags().StringVar(&serveConfigPath, "config", "", "Path to JSON config file")
	serveCmd.Flags().IntVar(&servePort, "port", 0, "Port to listen on (overrides config)")
	serveCmd.Flags().StringVar(&serveUploadDir, "upload-dir", "", "Directory for answer video uploads (overrides config)")
	serveCmd.Flags().BoolVar(&serveLogJSON, "log-json", false, "Emit JSON-encoded logs")
	serveCmd.Flags().BoolVar(&serveDebug, "debug", false, "Enable debug-level logging")
	rootCmd.AddCommand(serveCmd)
}

func runServe(_ *cobra.Command, _ []string) error {
	cfg := config.Defaults()
	if serveConfigPath != "" {
		loaded, err := config.LoadConfig(serveConfigPath)
		if err != nil {
			return err
		}
		cfg = loaded.MergeWithDefaults(config.Defaults())
	}

	// Environment overrides
	if port := os.Getenv("PORT"); port != "" {
		p, err := strconv.Atoi(port)
		if err != nil {
			return fmt.Errorf("invalid PORT environment variable: %q", port)
		}
		cfg.Port = p
	}
	if dir := os.Getenv("UPLOAD_DIR"); dir != "" {
		cfg.UploadDir = dir
	}

	// Flag overrides
	if servePort != 0 {
		cfg.Port = servePort
	}
	if serveUploadDir != "" {
		cfg.UploadDir = serveUploadDir
	}
	if serveLogJSON {
		cfg.LogJSON = true
	}
	if serveDebug {
		cfg.Debug = true
	}

	if err := cfg.Validate(); err != nil {
		return err
	}

	log, err := logger.New(cfg.LogJSON, cfg.Debug)
	if err != nil {
		return fmt.Errorf("failed to create logger: %w", err)
	}
	defer log.Sync() //nolint:errcheck // stdout sync errors are not actionable

	srv := server.New(server.Config{
		Port:          cfg.Port,
		UploadDir:     cfg.UploadDir,
		AllowedOrigin: cfg.AllowedOrigin,
	}, log)

	return srv.Start()
}
