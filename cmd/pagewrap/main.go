package main

import (
	"context"
	"os"

	"github.com/goliatone/go-pagewrap/internal/cli"
)

var version = "dev"

func main() {
	os.Exit(cli.Execute(context.Background(), version, os.Args[1:], os.Stderr))
}
