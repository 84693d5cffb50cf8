package main

import "bughunt-platform.com/bughunt-platform/cmd"

func main() {
	cmd.Execute()
}
