//go:build !avr

package main

import (
	"log/slog"
	"os"
)

func main() {
	slog.Error("firmware only builds for avr targets, use: tinygo flash -target=<board> ./cmd/firmware")
	os.Exit(1)
}
