package main

import (
	"fmt"
	"os"
	"sync"
	"time"

	"github.com/lixenwraith/modlog"
)

const configFile = "simple_config.toml"

// Example TOML content
var tomlContent = `
# Example simple_config.toml
[log]
  console_level = "info"
  file_level = "debug"
  enable_file = true
  directory = "./simple_logs"
  name = "simple"
  extension = "log"
  use_icons_in_file = true
  # Other settings use defaults
`

func main() {
	fmt.Println("--- Simple Logger Example ---")

	// --- Setup Config ---
	err := os.WriteFile(configFile, []byte(tomlContent), 0644)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to write dummy config: %v\n", err)
		// Continue with defaults
	} else {
		fmt.Printf("Created dummy config file: %s\n", configFile)
	}

	cfg, err := modlog.NewConfigFromFile(configFile)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Failed to load config: %v. Using defaults.\n", err)
		cfg = modlog.DefaultConfig()
	}

	// --- Initialize Logger ---
	logger := modlog.NewLogger()
	if err := logger.ApplyConfig(cfg); err != nil {
		// Still initialized, console-only
		fmt.Fprintf(os.Stderr, "Logger initialized with errors: %v\n", err)
	}
	fmt.Println("Logger initialized.")

	// --- Logging ---
	logger.Debug(modlog.Str("This is a debug message."), modlog.Str("user_id"), modlog.I32(123))
	logger.Info(modlog.Str("Application starting..."))
	logger.Warning(modlog.Str("Potential issue detected."), modlog.Str("threshold"), modlog.F64(0.95))
	logger.Error(modlog.Str("An error occurred!"), modlog.Str("code"), modlog.U16(500))

	// Logging from goroutines
	var wg sync.WaitGroup
	for i := 0; i < 2; i++ {
		wg.Add(1)
		go func(id int) {
			defer wg.Done()
			worker := logger.Tag(fmt.Sprintf("worker%d", id))
			worker.Info(modlog.Str("Goroutine started"))
			time.Sleep(time.Duration(50+id*50) * time.Millisecond)
			worker.Info(modlog.Str("Goroutine finished"))
		}(i)
	}

	wg.Wait()
	fmt.Println("Goroutines finished.")

	path := logger.LogFilePath()

	// --- Deinit Logger ---
	fmt.Println("Shutting down logger...")
	if err := logger.Deinit(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger deinit error: %v\n", err)
	} else {
		fmt.Println("Logger shutdown complete.")
	}

	fmt.Println("--- Example Finished ---")
	fmt.Printf("Check log file '%s' and the config '%s'.\n", path, configFile)
}
