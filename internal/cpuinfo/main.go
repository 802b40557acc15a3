// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package main prints the CPU features that decide how xm computes
// multiply-add.
package main

import (
	"fmt"
	"runtime"

	"golang.org/x/sys/cpu"

	"github.com/ajroetker/go-xmath/xm"
)

func main() {
	fmt.Printf("GOOS: %s\n", runtime.GOOS)
	fmt.Printf("GOARCH: %s\n", runtime.GOARCH)
	fmt.Printf("NumCPU: %d\n", runtime.NumCPU())
	fmt.Println()

	fmt.Printf("xm dispatch level: %s\n", xm.CurrentLevel())
	fmt.Printf("xm dispatch name: %s\n", xm.CurrentName())
	fmt.Printf("xm fused multiply-add: %v\n", xm.HasFusedMultiplyAdd())
	fmt.Printf("XM_NO_FMA set: %v\n", xm.NoFMAEnv())
	fmt.Println()

	switch runtime.GOARCH {
	case "arm64":
		printARM64Features()
	case "amd64":
		printAMD64Features()
	default:
		fmt.Println("no feature report for this architecture")
	}

	fmt.Println()
	s, c := xm.ScalarSinCos(1)
	fmt.Printf("ScalarSinCos(1): %.9g %.9g\n", s, c)
	fmt.Printf("MultiplyAdd(1+2^-12, 1+2^-12, -(1+2^-11)): %g\n", fmaProbe())
}

// fmaProbe returns 2^-24 on the fused path and 0 on the rounded path.
func fmaProbe() float32 {
	a := xm.Replicate(1 + 1.0/4096)
	c := xm.Replicate(-(1 + 1.0/2048))
	return xm.MultiplyAdd(a, a, c).X()
}

func printARM64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.ARM64 ===")
	fmt.Printf("  HasASIMD:    %v (NEON baseline, fmla)\n", cpu.ARM64.HasASIMD)
	fmt.Printf("  HasFP:       %v (Floating point, fmadd)\n", cpu.ARM64.HasFP)
	fmt.Printf("  HasFPHP:     %v (FP16 scalar, ARMv8.2-A)\n", cpu.ARM64.HasFPHP)
	fmt.Printf("  HasASIMDHP:  %v (FP16 NEON, ARMv8.2-A)\n", cpu.ARM64.HasASIMDHP)
	fmt.Printf("  HasSVE:      %v (Scalable Vector Extension)\n", cpu.ARM64.HasSVE)
}

func printAMD64Features() {
	fmt.Println("=== golang.org/x/sys/cpu.X86 ===")
	fmt.Printf("  HasFMA:     %v\n", cpu.X86.HasFMA)
	fmt.Printf("  HasAVX:     %v\n", cpu.X86.HasAVX)
	fmt.Printf("  HasAVX2:    %v\n", cpu.X86.HasAVX2)
	fmt.Printf("  HasSSE2:    %v\n", cpu.X86.HasSSE2)
	fmt.Printf("  HasSSE41:   %v\n", cpu.X86.HasSSE41)
}
