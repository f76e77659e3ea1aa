package main

import "github.com/excuselab/excusegen/cmd"

func main() {
	cmd.Execute()
}
