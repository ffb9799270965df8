package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"path/filepath"

	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/pixel"
	"github.com/robotalks/lumen.go/pkg/preview"
)

var (
	width  int
	height int
	out    string
)

func init() {
	flag.IntVar(&width, "width", 0, "Image width.")
	flag.IntVar(&height, "height", 0, "Image height.")
	flag.StringVar(&out, "out", "", "Output PNG path; opens a preview window if omitted.")
	flag.Set("logtostderr", "true")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] FILE\n\nDisplay an RGB565 big-endian payload.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func run(fn string) error {
	data, err := pixel.ReadPayloadFile(fn)
	if err != nil {
		return err
	}
	img, err := pixel.Decode(data, width, height)
	if err != nil {
		return err
	}
	if out != "" {
		return pixel.SavePNG(out, img)
	}
	return preview.Show(img, fmt.Sprintf("%s (%dx%d)", filepath.Base(fn), width, height))
}

func fail(code int, err error) {
	glog.Error(err)
	glog.Flush()
	os.Exit(code)
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 || width <= 0 || height <= 0 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		if errors.Is(err, pixel.ErrFileNotFound) {
			fail(2, err)
		}
		fail(1, err)
	}
}
