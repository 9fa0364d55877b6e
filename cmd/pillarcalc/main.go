package main

import "github.com/rpgo/pillar-calculator/internal/cli"

func main() {
	cli.Execute()
}
