package main

import "github.com/assetra/assetra-cli/cmd"

func main() {
	cmd.Execute()
}
