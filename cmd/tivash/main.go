package main

import (
	"github.com/robotalks/tiva.go/pkg/cli/sh"
	env "github.com/robotalks/tiva.go/pkg/l1/env/connector"

	_ "github.com/robotalks/tiva.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	env.SetupFlags()
}

func main() {
	sh.Main()
}
