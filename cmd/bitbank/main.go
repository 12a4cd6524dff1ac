package main

import (
	"github.com/c9s/bitbank/pkg/cmd"
)

func main() {
	cmd.Execute()
}
