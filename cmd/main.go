// FilePath: cmd/main.go
package main

import (
	"fmt"
	"log"
	"os"

	tm "github.com/buger/goterm"
	nuts "github.com/vaudience/go-nuts"

	_ "github.com/animalhaven/feederhub/docs"
	"github.com/animalhaven/feederhub/internal/config"
	"github.com/animalhaven/feederhub/internal/server"
)

// @title FeederHub API
// @version 1.0
// @description State hub for the pet feeder dashboard: live status, feeding history and portion control.
// @BasePath /api/v1
func main() {
	// Clear console and draw logo
	ClearConsole()
	DrawLogo()
	// Initialize version info
	nuts.InitVersion()
	nuts.L.Infof("[Main] Starting FeederHub Server v%s", nuts.GetVersion())

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
		"    ______              __          __  __      __  ",
		"   / ____/__  ___  ____/ /__  _____/ / / /_  __/ /_ ",
		"  / /_  / _ \\/ _ \\/ __  / _ \\/ ___/ /_/ / / / / __ \\",
		" / __/ /  __/  __/ /_/ /  __/ /  / __  / /_/ / /_/ /",
		"/_/    \\___/\\___/\\__,_/\\___/_/  /_/ /_/\\__,_/_.___/ ",
		"....................................................  " + nuts.GetVersion(),
	}

	for _, line := range lines {
		fmt.Println(line)
	}
}
