package main

import (
	"github.com/unyx/random/internal/cli"
)

func main() {
	cli.Execute()
}
