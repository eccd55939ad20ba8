package main

import "setup-link/cmd"

func main() {
	cmd.Execute()
}
