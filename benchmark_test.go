package modlog

import (
	"io"
	"testing"
)

// benchmarkLogger creates a logger discarding console output, with an optional file sink
func benchmarkLogger(b *testing.B, file bool) *Logger {
	b.Helper()
	logger := NewLogger()
	logger.stdout = io.Discard

	cfg := DefaultConfig()
	cfg.EnableFile = file
	cfg.Directory = b.TempDir()
	if err := logger.ApplyConfig(cfg); err != nil {
		b.Fatal(err)
	}
	b.Cleanup(func() { _ = logger.Deinit() })
	return logger
}

// BenchmarkLoggerInfo benchmarks console-only logging
func BenchmarkLoggerInfo(b *testing.B) {
	logger := benchmarkLogger(b, false)

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(Str("benchmark message"), I64(int64(i)))
	}
}

// BenchmarkLoggerFile benchmarks logging to console and file
func BenchmarkLoggerFile(b *testing.B) {
	logger := benchmarkLogger(b, true)
	tagged := logger.Tag("bench")

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		tagged.Info(Str("benchmark message"), I64(int64(i)), Hex32(uint32(i)), F64(1.5))
	}
}

// BenchmarkLoggerFiltered benchmarks records rejected by both thresholds
func BenchmarkLoggerFiltered(b *testing.B) {
	logger := benchmarkLogger(b, true)
	if err := logger.ApplyConfigString("console_level=error", "file_level=error"); err != nil {
		b.Fatal(err)
	}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Debug(Str("filtered"), I64(int64(i)))
	}
}

// BenchmarkConcurrentLogging benchmarks the logger's performance under concurrent load
func BenchmarkConcurrentLogging(b *testing.B) {
	logger := benchmarkLogger(b, true)

	b.ResetTimer()
	b.RunParallel(func(pb *testing.PB) {
		i := 0
		for pb.Next() {
			logger.Info(Str("concurrent"), I64(int64(i)))
			i++
		}
	})
}

// BenchmarkAnyValue benchmarks rendering of values outside the fixed kinds
func BenchmarkAnyValue(b *testing.B) {
	logger := benchmarkLogger(b, false)
	payload := map[string]int{"a": 1, "b": 2}

	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		logger.Info(Str("payload"), Any(payload))
	}
}
