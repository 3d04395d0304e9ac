//go:build amd64

package simd

import "golang.org/x/sys/cpu"

func init() {
	hasSSE2 = cpu.X86.HasSSE2
	hasAVX = cpu.X86.HasAVX
	hasAVX2 = cpu.X86.HasAVX2 && cpu.X86.HasFMA
	initCapabilities()
}
