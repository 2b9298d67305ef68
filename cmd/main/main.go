package main

import "github.com/mkarkia/filesort/cmd"

func main() {
	cmd.Execute()
}
