package main

import (
	"fmt"
	"strings"
	"time"

	"github.com/valyala/fasthttp"

	"github.com/lixenwraith/modlog"
	"github.com/lixenwraith/modlog/compat"
)

var access *modlog.Tagged

func main() {
	// Create and configure logger
	logger, err := modlog.NewBuilder().
		Directory("./fasthttp_logs").
		EnableFile(true).
		ConsoleLevel(modlog.LevelInfo).
		FileLevel(modlog.LevelVerbose).
		Build()
	if err != nil {
		panic(err)
	}
	defer logger.Deinit()
	access = logger.Tag("access")

	// Create fasthttp adapter with custom level detection
	fasthttpAdapter := compat.NewFastHTTPAdapter(
		logger,
		compat.WithDefaultLevel(modlog.LevelInfo),
		compat.WithLevelDetector(customLevelDetector),
	)

	server := &fasthttp.Server{
		Handler: requestHandler,
		Logger:  fasthttpAdapter,

		Name:              "MyServer",
		Concurrency:       fasthttp.DefaultConcurrency,
		ReadTimeout:       5 * time.Second,
		WriteTimeout:      10 * time.Second,
		IdleTimeout:       120 * time.Second,
		TCPKeepalive:      true,
		ReduceMemoryUsage: true,
	}

	fmt.Println("Starting server on :8080")
	if err := server.ListenAndServe(":8080"); err != nil {
		panic(err)
	}
}

func requestHandler(ctx *fasthttp.RequestCtx) {
	ctx.SetContentType("text/plain")
	fmt.Fprintf(ctx, "Hello, world! Path: %s\n", ctx.Path())
	access.Verbose(modlog.Str(string(ctx.Method())), modlog.Str(string(ctx.Path())), modlog.I32(int32(ctx.Response.StatusCode())))
}

func customLevelDetector(msg string) (modlog.Level, bool) {
	// fasthttp message patterns
	if strings.Contains(msg, "connection cannot be served") {
		return modlog.LevelWarning, true
	}
	if strings.Contains(msg, "error when serving connection") {
		return modlog.LevelError, true
	}

	// Use default detection
	return compat.DetectLogLevel(msg)
}
