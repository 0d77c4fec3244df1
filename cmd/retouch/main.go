package main

import (
	"os"

	"github.com/yusufwagh/retouch/cmd"
)

func main() {
	if err := cmd.Execute(); err != nil {
		os.Exit(1)
	}
}
