package main

import "github.com/user/bark/cmd"

func main() {
	cmd.Execute()
}
