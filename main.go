package main

import "github.com/papapumpkin/bubbleforge/cmd"

func main() {
	cmd.Execute()
}
