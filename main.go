package main

import "github.com/mwallis/tablegen/cmd"

func main() {
	cmd.Execute()
}
