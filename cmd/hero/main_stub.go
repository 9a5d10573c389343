//go:build !ebiten

package main

import (
	"fmt"
	"os"
)

func main() {
	fmt.Fprintln(os.Stderr, "The hero window requires the ebiten build tag.")
	fmt.Fprintln(os.Stderr, "Re-run with `go run -tags ebiten ./cmd/hero` or build with `-tags ebiten`.")
	fmt.Fprintln(os.Stderr, "For a headless run of the dust field use `go run ./cmd/dust-report`.")
	os.Exit(2)
}
