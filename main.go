package main

import "arcc/cmd"

func main() {
	cmd.Execute()
}
