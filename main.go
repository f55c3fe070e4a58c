package main

import "country-atlas/cmd"

func main() {
	cmd.Execute()
}
