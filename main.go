package main

import "github.com/treekit/treekit/cmd"

func main() {
	cmd.Execute()
}
