package main

import "github.com/vorocell/vorocell/cmd/vorocell/cmd"

func main() {
	cmd.Execute()
}
