package main

import "yatzy/cmd"

func main() {
	cmd.Execute()
}
