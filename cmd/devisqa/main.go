package main

import "github.com/dgallion1/devisqa/internal/cli"

func main() {
	cli.Execute()
}
