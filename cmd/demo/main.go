package main

import (
	"fmt"
	"os"

	"github.com/lixenwraith/modlog"
)

func main() {
	// Console and file at verbose, colors, timestamps and file icons
	err := modlog.Init(modlog.LevelVerbose, modlog.LevelVerbose, true, true, true, true)
	if err != nil {
		fmt.Fprintf(os.Stderr, "Logger init: %v\n", err)
	}

	modlog.Fixed(modlog.Str("Starting application"), modlog.I32(123), modlog.Bool(true))

	value := 999
	modlog.Debug(modlog.Str("Value address:"), modlog.Ptr(&value))

	modlog.Verbose(modlog.Hex8(0xAB), modlog.Hex16(4444), modlog.Hex32(0xDEADBEEF), modlog.Hex64(0xCAFEBABEDEADC0DE))

	modlog.Info(
		modlog.Str("Pi approximation:"), modlog.F32(3.1415),
		modlog.Str("..and e approximation:"), modlog.F64(2.718281828),
	)

	modlog.Debug(
		modlog.I8(-8), modlog.I16(-16), modlog.I32(-32), modlog.I64(-64),
		modlog.U8(8), modlog.U16(16), modlog.U32(32), modlog.U64(64),
	)

	modlog.Info(modlog.Str("Char:"), modlog.Char('X'), modlog.Char('✔'))

	demo := modlog.Tag("demo")
	demo.Warning(modlog.Str("tagged records carry a module column"))
	demo.Info(modlog.Str("composite value:"), modlog.Any(map[string]int{"retries": 3, "timeout_ms": 250}))

	modlog.Error(modlog.Str("This is an error caused by the value"), modlog.F64(3.1415926535))
	modlog.Fatal(modlog.Str("and this is a fatal one.."), modlog.F64(3.1415926535))

	modlog.Fixed(modlog.Str("Ending application..."))

	if path := modlog.LogFilePath(); path != "" {
		fmt.Printf("Log file written to: %s\n", path)
	}

	if err := modlog.Deinit(); err != nil {
		fmt.Fprintf(os.Stderr, "Logger deinit: %v\n", err)
	}

	fmt.Println("Logger test complete.")
}
