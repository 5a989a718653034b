package main

import "ragctl/internal/cli"

func main() {
	cli.Execute()
}
