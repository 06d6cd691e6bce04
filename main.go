package main

import "github.com/arknas/binstat/cmd"

func main() {
	cmd.Execute()
}
