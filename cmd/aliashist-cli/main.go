package main

import "aliashist/cmd/aliashist-cli/cmd"

func main() {
	cmd.Execute()
}
