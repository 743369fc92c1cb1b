package utils

import (
	"fmt"
	"runtime"
	"time"

	"github.com/charmbracelet/log"
)

func GetMemUsage() string {
	var m runtime.MemStats
	runtime.ReadMemStats(&m)
	// For info on each, see: https://golang.org/pkg/runtime/#MemStats
	bToMb := func(b uint64) uint64 {
		return b / 1024 / 1024
	}
	return fmt.Sprintf("Alloc = %v MiB TotalAlloc = %v MiB Sys = %v MiB NumGC = %v",
		bToMb(m.Alloc), bToMb(m.TotalAlloc), bToMb(m.Sys), m.NumGC)
}

// Profile starts a named timing scope on the default logger. Call the
// returned function when the scope ends:
//
//	defer utils.Profile("fem.ShapeFunctionsAt")()
func Profile(name string) (done func()) {
	start := time.Now()
	return func() {
		log.Debug(name, "elapsed", time.Since(start).Round(time.Microsecond))
	}
}
