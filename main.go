package main

import (
	"context"
	"os"

	"oboegaki/cli"
)

func main() {
	os.Exit(cli.New().Execute(context.Background(), os.Args[1:]))
}
