package main

import "github.com/rpupo63/portfolio-sync/cli"

func main() {
	cli.Execute()
}
