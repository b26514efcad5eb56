package main

import "github.com/farebotics/faresim/cmd"

func main() {
	cmd.Execute()
}
