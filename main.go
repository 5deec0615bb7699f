package main

import "github.com/martimartins/carbon-lang/cmd"

func main() {
	cmd.Execute()
}
