package main

import "github.com/dirforge/dirindex/cmd"

func main() {
	cmd.Execute()
}
