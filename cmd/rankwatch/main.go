package main

import "github.com/pfrederiksen/rankwatch/internal/cli"

func main() {
	cli.Execute()
}
