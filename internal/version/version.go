package version

import (
	"runtime"
	"time"
)

// Build metadata, overridden at link time via -ldflags.
var (
	Version   = "dev"                           // ex: v0.1.0
	Commit    = "none"                          // ex: abcd123
	BuildDate = time.Now().Format(time.RFC3339) // ex: 2026-08-29T18:42:00Z
	GoVersion = runtime.Version()               // toolchain version
)
