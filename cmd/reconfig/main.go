package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"sync/atomic"
	"time"

	"github.com/lixenwraith/modlog"
)

// Simulate rapid reconfiguration while records are being written
func main() {
	var count atomic.Int64

	dir, err := os.MkdirTemp("", "modlog_reconfig")
	if err != nil {
		fmt.Printf("Temp dir error: %v\n", err)
		return
	}

	// Initialize the logger with a file first
	logger := modlog.NewLogger()
	err = logger.ApplyConfigString("enable_console=false", "enable_file=true", "directory="+dir)
	if err != nil {
		fmt.Printf("Initial config error: %v\n", err)
		return
	}

	// Log something constantly
	stop := make(chan struct{})
	done := make(chan struct{})
	go func() {
		defer close(done)
		for i := 0; ; i++ {
			select {
			case <-stop:
				return
			default:
			}
			logger.Info(modlog.Str("Test log"), modlog.I64(int64(i)))
			count.Add(1)
			time.Sleep(time.Millisecond)
		}
	}()

	// Trigger multiple reconfigurations rapidly, each one starts a new file
	levels := []string{"verbose", "debug", "info"}
	for i := 0; i < 10; i++ {
		err := logger.ApplyConfigString("file_level=" + levels[i%len(levels)])
		if err != nil {
			fmt.Printf("Reconfig error: %v\n", err)
		}
		time.Sleep(10 * time.Millisecond)
	}

	time.Sleep(100 * time.Millisecond)
	close(stop)
	<-done

	if err := logger.Deinit(); err != nil {
		fmt.Printf("Deinit error: %v\n", err)
	}

	// Every file must hold complete lines only
	entries, err := os.ReadDir(dir)
	if err != nil {
		fmt.Printf("Read dir error: %v\n", err)
		return
	}
	var lines, broken int
	for _, entry := range entries {
		data, err := os.ReadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			fmt.Printf("Read error: %v\n", err)
			continue
		}
		for _, line := range strings.Split(strings.TrimSuffix(string(data), "\n"), "\n") {
			if line == "" {
				continue
			}
			lines++
			if !strings.Contains(line, "INFO Test log") {
				broken++
			}
		}
	}

	stats := logger.Stats()
	fmt.Printf("Total logs attempted: %d\n", count.Load())
	fmt.Printf("Files: %d, lines: %d, malformed: %d, dropped: %d\n", len(entries), lines, broken, stats.Dropped)
	fmt.Printf("Logs kept in '%s'\n", dir)
}
