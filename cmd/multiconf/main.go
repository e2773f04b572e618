package main

import (
	"github.com/NVIDIA/multiconf/pkg/cli"
)

func main() {
	cli.Execute()
}
