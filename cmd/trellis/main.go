// Package main provides the Trellis CLI.
package main

import (
	"flag"
	"fmt"
	"os"

	"k8s.io/klog/v2"

	"github.com/trellis-ml/trellis/backend/cpu"
)

const version = "v0.1.0-dev"

func main() {
	klog.InitFlags(nil)
	flag.Parse()
	defer klog.Flush()

	switch flag.Arg(0) {
	case "version":
		fmt.Printf("Trellis %s\n", version)
	case "backend":
		b := cpu.New()
		fmt.Printf("backend: %s (device %s)\n", b.Name(), b.Device())
		fmt.Printf("  %s=%s\n", cpu.EnvMatMul, envOr(cpu.EnvMatMul, "blas"))
		fmt.Printf("  %s=%s\n", cpu.EnvWorkers, envOr(cpu.EnvWorkers, "(all CPUs)"))
	default:
		fmt.Printf("Trellis - feature transform modules for Go\n")
		fmt.Printf("Version: %s\n\n", version)
		fmt.Println("Commands:")
		fmt.Println("  version    Show version")
		fmt.Println("  backend    Show compute backend configuration")
	}
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
