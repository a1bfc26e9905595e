package main

import "spacyctl/internal/cli"

func main() {
	cli.Execute()
}
