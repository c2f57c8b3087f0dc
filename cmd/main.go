// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	"github.com/climatewatch/hub/internal/config"
	"github.com/climatewatch/hub/internal/server"
	nuts "github.com/vaudience/go-nuts"
)

// @title ClimateWatch Hub API
// @version 1.0
// @description Weather station telemetry hub: API key management and sensor reading ingestion and reporting.
// @BasePath /api/v1
// @securityDefinitions.apikey ApiKeyAuth
// @in header
// @name apiKey
func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting ClimateWatch Hub Server v%s", nuts.GetVersion())

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load configuration: %v", err)
	}

	// Create and start server
	srv := server.New(cfg)
	if err := srv.Start(); err != nil {
		nuts.L.Errorf("[Main] Server error: %v", err)
		os.Exit(1)
	}
}

// ClearConsole clears the console screen and draws the logo.
func ClearConsole() {
	tm.Clear()
	tm.MoveCursor(1, 1)
	tm.Flush()
}

func DrawLogo() {
	fmt.Println()
	lines := []string{
		"   _________                __       ",
		"  / ____/ (_)___ ___  ____ _/ /____  ",
		" / /   / / / __ `__ \\/ __ `/ __/ _ \\ ",
		"/ /___/ / / / / / / / /_/ / /_/  __/ ",
		"\\____/_/_/_/ /_/ /_/\\__,_/\\__/\\___/  hub",
		"..........................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
