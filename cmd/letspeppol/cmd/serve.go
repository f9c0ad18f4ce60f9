package cmd

import (
	"fmt"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/spf13/cobra"

	"github.com/letspeppol/letspeppol/internal/server"
)

var (
	serverAddr   string
	serverDebug  bool
	readTimeout  time.Duration
	writeTimeout time.Duration
)

var serveCmd = &cobra.Command{
	Use:   "serve",
	Short: "Start the HTTP API server",
	Long: `Start an HTTP API server exposing the codec.

The API provides endpoints for:
  - POST /api/v1/parse    - Parse XML into typed JSON
  - POST /api/v1/build    - Build XML from typed JSON
  - POST /api/v1/totals   - Recalculate totals
  - POST /api/v1/convert  - Convert invoice <-> credit note
  - POST /api/v1/compose  - Compose a draft from the sender profile
  - GET  /health          - Health check

Examples:
  # Start server on the configured address
  letspeppol serve

  # Start on a custom address in debug mode
  letspeppol serve --address :9090 --debug`,
	RunE: runServe,
}

func init() {
	rootCmd.AddCommand(serveCmd)

	serveCmd.Flags().StringVar(&serverAddr, "address", "", "Server listen address (default: from config)")
	serveCmd.Flags().BoolVar(&serverDebug, "debug", false, "Enable debug mode")
	serveCmd.Flags().DurationVar(&readTimeout, "read-timeout", 30*time.Second, "HTTP read timeout")
	serveCmd.Flags().DurationVar(&writeTimeout, "write-timeout", 30*time.Second, "HTTP write timeout")
}

func runServe(cmd *cobra.Command, args []string) error {
	cfg, err := loadConfig()
	if err != nil {
		return err
	}

	addr := serverAddr
	if addr == "" {
		addr = cfg.HTTP.Addr()
	}

	log := newLogger(cfg.LogLevel)
	srv := server.NewServer(&server.Config{
		Address:      addr,
		ReadTimeout:  readTimeout,
		WriteTimeout: writeTimeout,
		Debug:        serverDebug,
	}, cfg, log)

	// Handle graceful shutdown
	go func() {
		sigCh := make(chan os.Signal, 1)
		signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
		<-sigCh
		fmt.Println("\nShutting down server...")
		os.Exit(0)
	}()

	return srv.Run()
}
