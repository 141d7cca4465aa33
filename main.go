package main

import (
	"git_shortcuts/cmd"
)

func main() {
	cmd.Initialize()
	cmd.Execute()
}
