package main

import "github.com/mouse-blink/schemescope/cmd"

func main() {
	cmd.Execute()
}
