package main

import (
	"fmt"
	"os"

	"unifarm/cmd"

	_ "go.uber.org/automaxprocs"
)

func main() {
	if err := cmd.Start(); err != nil {
		fmt.Printf("server run into an error: %s", err)
		os.Exit(1)
	}
}
