package main

import "github.com/gucli/gucli/cmd"

func main() {
	cmd.Execute()
}
