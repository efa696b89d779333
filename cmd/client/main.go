package main

import (
	"fieldassets/cmd/client/cmd"
)

func main() {
	cmd.Execute()
}
