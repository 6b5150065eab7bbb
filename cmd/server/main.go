// Package main provides the sphgrid HTTP server.
package main

import (
	"flag"
	"fmt"
	"log"

	"go.ngs.io/sphgrid/internal/config"
	httpHandler "go.ngs.io/sphgrid/internal/http"
	"go.ngs.io/sphgrid/internal/usecase"
)

const version = "0.1.0"

func main() {
	// Parse command-line flags.
	configPath := flag.String("config", "", "Path to YAML config file (optional)")
	showHelp := flag.Bool("help", false, "Show usage information")
	showVersion := flag.Bool("version", false, "Show version information")
	flag.Parse()

	if *showHelp {
		printUsage()
		return
	}

	if *showVersion {
		fmt.Printf("sphgrid version %s\n", version)
		return
	}

	cfg, err := config.Load(*configPath)
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	log.Printf("Starting sphgrid server...")
	log.Printf("Port: %s", cfg.Port)
	if cfg.GMTBin != "" {
		log.Printf("GMT binary: %s", cfg.GMTBin)
	} else {
		log.Printf("GMT binary: gmt (resolved on PATH)")
	}

	// Initialize the gridder.
	gridder := usecase.NewGridder(cfg.GMTBin)

	// Setup router.
	router := httpHandler.SetupRouter(gridder, cfg.CORSAllowedOrigins)

	// Start server.
	addr := fmt.Sprintf(":%s", cfg.Port)
	log.Printf("Server listening on %s", addr)
	log.Printf("Health check: http://localhost:%s/health", cfg.Port)
	log.Printf("API endpoints:")
	log.Printf("  - POST /v1/grids/sphinterpolate")

	if err := router.Run(addr); err != nil {
		log.Fatalf("Failed to start server: %v", err)
	}
}

// printUsage prints usage information.
func printUsage() {
	fmt.Printf("sphgrid Server v%s\n\n", version)
	fmt.Println("USAGE:")
	fmt.Println("  server [flags]")
	fmt.Println()
	fmt.Println("FLAGS:")
	fmt.Println("  -config PATH   Path to YAML config file")
	fmt.Println("  -help          Show this help message")
	fmt.Println("  -version       Show version information")
	fmt.Println()
	fmt.Println("ENVIRONMENT VARIABLES:")
	fmt.Println("  PORT                    Server port (default: 8080)")
	fmt.Println("  GMT_BIN                 Path to the gmt executable (default: gmt on PATH)")
	fmt.Println("  CORS_ALLOWED_ORIGINS    Comma-separated list of allowed origins (default: all origins)")
	fmt.Println()
	fmt.Println("API ENDPOINTS:")
	fmt.Println("  GET  /health                     Health check")
	fmt.Println("  POST /v1/grids/sphinterpolate    Grid scattered lon/lat/value data on a sphere")
	fmt.Println()
}
