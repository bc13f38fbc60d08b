package main

import "github.com/gdavidss/musicolour/cmd"

func main() {
	cmd.Execute()
}
