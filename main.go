package main

import "github.com/mouse-blink/hdrlint/cmd"

func main() {
	cmd.Execute()
}
