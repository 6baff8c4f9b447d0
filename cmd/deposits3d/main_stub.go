//go:build !raylib

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The 3D viewer requires the raylib build tag (and cgo).")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags raylib ./cmd/deposits3d` or build with `-tags raylib`.")
	os.Exit(2)
}
