package main

import "github.com/bloodmagesoftware/sectors/cmd"

func main() {
	cmd.Execute()
}
