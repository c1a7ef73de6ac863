// Package main is the klinescope CLI.
//
//	klinescope run --config configs/config.yaml
//	klinescope compute --kline 600000.kline.json --trends 600000.trends.json
package main

import (
	"os"

	"KlineScope/cmd/klinescope/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
