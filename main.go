package main

import (
	"github.com/DouglasWWolf/ecd-sample-prep/cmd"
)

func main() {
	cmd.Execute() // initialize cobra commands
}
