package main

import "github.com/crystaldolphin/websearch/cmd"

func main() {
	cmd.Execute()
}
