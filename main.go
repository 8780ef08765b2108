package main

import "github.com/Skyenought/expressgen/cmd"

func main() {
	cmd.Execute()
}
