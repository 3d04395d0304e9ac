package simd

import (
	"fmt"
	"os"
	"runtime"
	"strings"
	"testing"
)

// TestMain prints which kernel is active so CI logs show what was exercised.
func TestMain(m *testing.M) {
	fmt.Printf("=== SIMD kernel diagnostics ===\n")
	fmt.Printf("GOOS=%s GOARCH=%s\n", runtime.GOOS, runtime.GOARCH)
	fmt.Printf("%s=%q\n", EnvOverride, os.Getenv(EnvOverride))
	fmt.Printf("Active kernel: %s (override: %v)\n", Active(), IsOverridden())
	fmt.Printf("CPU features: %s\n", strings.Join(Features(), ", "))
	fmt.Printf("===============================\n\n")

	os.Exit(m.Run())
}
