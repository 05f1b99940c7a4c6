package main

import (
	"github.com/classware/gbctl/pkg/cli"
)

func main() {
	cli.Execute()
}
