package main

import "github.com/codetutor-ai/codetutor/cmd"

func main() {
	cmd.Execute()
}
