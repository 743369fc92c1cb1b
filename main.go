package main

import "github.com/notargets/femcore/cmd"

func main() {
	cmd.Execute()
}
