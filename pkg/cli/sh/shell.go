package sh

import (
	"errors"
	"flag"
	"fmt"
	"log"

	"github.com/abiosoft/ishell"
	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/transport"
)

// Shell provides ishell backed interactive shell.
type Shell struct {
	Interactive bool
	AutoOpen    bool

	Shell  *ishell.Shell
	Config *transport.Config
	Conn   transport.Conn
	URL    string
}

const (
	shellKey     = "$shell"
	closedPrompt = "[closed] > "
)

// ErrNotOpen indicates no transport is opened.
var ErrNotOpen = errors.New("not opened, use open [URL]")

var (
	// flags

	evalOnly bool

	// commands
	commands = []*ishell.Cmd{
		&OpenCmd,
		&CloseCmd,
	}
)

func init() {
	flag.BoolVar(&evalOnly, "e", evalOnly, "Evaluation only, no interactive shell.")
}

// AddCmds is used by other commands providers during init func.
func AddCmds(cmds ...*ishell.Cmd) {
	commands = append(commands, cmds...)
}

// New creates a new shell.
func New(conf *transport.Config) *Shell {
	s := &Shell{
		Interactive: !evalOnly,

		Shell:  ishell.New(),
		Config: conf,
	}
	s.Shell.Set(shellKey, s)
	s.Shell.SetPrompt(closedPrompt)
	for _, cmd := range commands {
		s.Shell.AddCmd(cmd)
	}
	return s
}

// ShellFrom gets Shell from ishell context.
func ShellFrom(c *ishell.Context) *Shell {
	return c.Get(shellKey).(*Shell)
}

// MustBeOpen wraps command func requires an opened transport. With
// AutoOpen, the configured transport is opened on first use.
func MustBeOpen(fn func(c *ishell.Context)) func(c *ishell.Context) {
	return func(c *ishell.Context) {
		s := ShellFrom(c)
		if s.Conn == nil {
			if !s.AutoOpen {
				c.Err(ErrNotOpen)
				return
			}
			if err := s.Open(""); err != nil {
				c.Err(err)
				return
			}
		}
		fn(c)
	}
}

// WithAutoOpen sets AutoOpen.
func (s *Shell) WithAutoOpen(en bool) *Shell {
	s.AutoOpen = en
	return s
}

// Open opens the transport at url, or the configured one if url is empty.
// A previously opened transport is closed.
func (s *Shell) Open(url string) error {
	conf := s.Config
	if url != "" {
		conf = conf.WithURL(url)
	}
	conn, err := conf.Open()
	if err != nil {
		return err
	}
	s.Close()
	s.Conn, s.URL = conn, conf.URL
	s.setPrompt(fmt.Sprintf("[%s] > ", conf.URL))
	return nil
}

// Close closes current transport.
func (s *Shell) Close() {
	if s.Conn != nil {
		if err := s.Conn.Close(); err != nil {
			glog.Warningf("close %s: %v", s.URL, err)
		}
		s.Conn, s.URL = nil, ""
		s.setPrompt(closedPrompt)
	}
}

// Send sends one frame over the opened transport. The transport is
// closed when the send fails, since the device may be out of sync.
func (s *Shell) Send(f *pack.Frame) error {
	if s.Conn == nil {
		return ErrNotOpen
	}
	if err := pack.SendFrame(s.Conn, f); err != nil {
		if errors.Is(err, pack.ErrTransportWriteFailed) {
			s.Close()
		}
		return err
	}
	return nil
}

func (s *Shell) setPrompt(prompt string) {
	if s.Shell != nil {
		s.Shell.SetPrompt(prompt)
	}
}

// Run runs the shell.
func (s *Shell) Run(args ...string) {
	defer s.Close()
	if len(args) > 0 {
		if err := s.Shell.Process(args...); err != nil {
			log.Fatalln(err)
		}
		return
	}
	if s.Interactive {
		s.Shell.Run()
		return
	}
	log.Fatalln("command expected")
}

var (
	// OpenCmd opens a transport.
	OpenCmd = ishell.Cmd{
		Name:    "open",
		Aliases: []string{"o"},
		Help:    "[URL]",
		Func: func(c *ishell.Context) {
			var url string
			if len(c.Args) > 0 {
				url = c.Args[0]
			}
			if err := ShellFrom(c).Open(url); err != nil {
				c.Err(err)
			}
		},
	}

	// CloseCmd closes current transport.
	CloseCmd = ishell.Cmd{
		Name:    "close",
		Aliases: []string{"c"},
		Help:    "",
		Func: func(c *ishell.Context) {
			ShellFrom(c).Close()
		},
	}
)

// Main is a helper to provide a single call in main.
func Main() {
	flag.Parse()
	New(transport.Default()).WithAutoOpen(true).Run(flag.Args()...)
}
