package pack

import (
	"fmt"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/lumen.go/pkg/cli/sh"
	"github.com/robotalks/lumen.go/pkg/pack"
)

var (
	// SendCmd sends a pack with literal data.
	SendCmd = ishell.Cmd{
		Name:    "send",
		Aliases: []string{"s"},
		Help:    "PATH [DATA...]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("PATH required"))
				return
			}
			data := strings.Join(c.Args[1:], " ")
			send(c, c.Args[0], pack.PayloadSource{Data: data, HasData: true})
		}),
	}

	// SendFileCmd sends a pack with the content of a file.
	SendFileCmd = ishell.Cmd{
		Name:    "sendfile",
		Aliases: []string{"sf"},
		Help:    "PATH FILE",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("PATH and FILE required"))
				return
			}
			send(c, c.Args[0], pack.PayloadSource{File: c.Args[1]})
		}),
	}
)

func send(c *ishell.Context, path string, src pack.PayloadSource) {
	payload, err := src.Load()
	if err != nil {
		c.Err(err)
		return
	}
	f, err := pack.NewFrame(path, payload)
	if err != nil {
		c.Err(err)
		return
	}
	if err := sh.ShellFrom(c).Send(f); err != nil {
		c.Err(err)
		return
	}
	c.Printf("sent %q, %d bytes\n", f.Path, len(f.Payload))
}

func init() {
	sh.AddCmds(
		&SendCmd,
		&SendFileCmd,
	)
}
