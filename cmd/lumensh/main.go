package main

import (
	"flag"

	"github.com/robotalks/lumen.go/pkg/cli/sh"
	"github.com/robotalks/lumen.go/pkg/transport"

	_ "github.com/robotalks/lumen.go/pkg/cli/cmds/all"
)

//go-build: CGO_ENABLED=0

func init() {
	transport.SetupFlags()
	flag.Set("logtostderr", "true")
}

func main() {
	sh.Main()
}
