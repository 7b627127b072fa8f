package main

import "github.com/ktesfay/selam/internal/commands"

func main() {
	commands.Execute()
}
