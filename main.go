package main

import (
	"github.com/kuxall/portfolio-data/cmd"
)

func main() {
	cmd.Execute()
}
