package pixel

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/abiosoft/ishell"

	"github.com/robotalks/lumen.go/pkg/cli/sh"
	"github.com/robotalks/lumen.go/pkg/pack"
	"github.com/robotalks/lumen.go/pkg/pixel"
)

var (
	// DecodeCmd converts a payload file into PNG.
	DecodeCmd = ishell.Cmd{
		Name:    "decode",
		Aliases: []string{"dec"},
		Help:    "FILE WIDTH HEIGHT [OUT.png]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 3 {
				c.Err(fmt.Errorf("FILE, WIDTH and HEIGHT required"))
				return
			}
			w, err := strconv.Atoi(c.Args[1])
			if err != nil {
				c.Err(fmt.Errorf("Invalid WIDTH: %v", err))
				return
			}
			h, err := strconv.Atoi(c.Args[2])
			if err != nil {
				c.Err(fmt.Errorf("Invalid HEIGHT: %v", err))
				return
			}
			out := strings.TrimSuffix(c.Args[0], ".bin") + ".png"
			if len(c.Args) > 3 {
				out = c.Args[3]
			}
			data, err := pixel.ReadPayloadFile(c.Args[0])
			if err != nil {
				c.Err(err)
				return
			}
			img, err := pixel.Decode(data, w, h)
			if err != nil {
				c.Err(err)
				return
			}
			if err := pixel.SavePNG(out, img); err != nil {
				c.Err(err)
				return
			}
			c.Printf("saved %s (%dx%d)\n", out, w, h)
		},
	}

	// EncodeCmd prints an image as a C array.
	EncodeCmd = ishell.Cmd{
		Name:    "encode",
		Aliases: []string{"enc"},
		Help:    "IMAGE [NAME] [WxH]",
		Func: func(c *ishell.Context) {
			if len(c.Args) < 1 {
				c.Err(fmt.Errorf("IMAGE required"))
				return
			}
			name := "image"
			if len(c.Args) > 1 {
				name = c.Args[1]
			}
			var resize string
			if len(c.Args) > 2 {
				resize = c.Args[2]
			}
			arr, err := encode(c.Args[0], resize)
			if err != nil {
				c.Err(err)
				return
			}
			c.Print(pixel.FormatCArray(name, arr))
		},
	}

	// SendImageCmd encodes an image and sends the pixels as a pack.
	SendImageCmd = ishell.Cmd{
		Name:    "sendimage",
		Aliases: []string{"si"},
		Help:    "PATH IMAGE [WxH]",
		Func: sh.MustBeOpen(func(c *ishell.Context) {
			if len(c.Args) < 2 {
				c.Err(fmt.Errorf("PATH and IMAGE required"))
				return
			}
			var resize string
			if len(c.Args) > 2 {
				resize = c.Args[2]
			}
			arr, err := encode(c.Args[1], resize)
			if err != nil {
				c.Err(err)
				return
			}
			f, err := pack.NewFrame(c.Args[0], arr.Bytes())
			if err != nil {
				c.Err(err)
				return
			}
			if err := sh.ShellFrom(c).Send(f); err != nil {
				c.Err(err)
				return
			}
			c.Printf("sent %q, %dx%d, %d bytes\n", f.Path, arr.Width, arr.Height, len(f.Payload))
		}),
	}
)

func encode(fn, resize string) (*pixel.RGB565Array, error) {
	var opts pixel.Options
	if resize != "" {
		size, err := pixel.ParseSize(resize)
		if err != nil {
			return nil, err
		}
		opts.Resize = &size
	}
	img, err := pixel.LoadImage(fn)
	if err != nil {
		return nil, err
	}
	return pixel.EncodeImage(img, opts), nil
}

func init() {
	sh.AddCmds(
		&DecodeCmd,
		&EncodeCmd,
		&SendImageCmd,
	)
}
