package main

import "interview-cli/cmd"

func main() {
	cmd.Execute()
}
