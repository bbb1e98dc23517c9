package main

import "github.com/aockit/cmd"

func main() {
	cmd.Execute()
}
