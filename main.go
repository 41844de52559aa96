package main

import "github.com/josephlewis42/catfish/cmd"

func main() {
	cmd.Execute()
}
