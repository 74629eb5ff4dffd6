package main

import "workdiff/internal/commands"

func main() {
	commands.Execute()
}
