package main

import (
	"errors"
	"flag"
	"fmt"
	"os"

	"github.com/golang/glog"

	"github.com/robotalks/lumen.go/pkg/pixel"
)

var (
	name        = "image_rgb565"
	out         string
	resize      string
	payloadFile string
)

func init() {
	flag.StringVar(&name, "name", name, "C array base name.")
	flag.StringVar(&out, "out", "", "Output .h/.c file (default: stdout).")
	flag.StringVar(&resize, "resize", "", "Optional resize WxH, e.g. 128x128.")
	flag.StringVar(&payloadFile, "payload", "", "Also write a big-endian payload file with width/height header.")
	flag.Set("logtostderr", "true")
	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [options] INPUT\n\nConvert an image to an RGB565 C array.\n\n", os.Args[0])
		flag.PrintDefaults()
	}
}

func run(input string) error {
	var opts pixel.Options
	if resize != "" {
		size, err := pixel.ParseSize(resize)
		if err != nil {
			return err
		}
		opts.Resize = &size
	}
	img, err := pixel.LoadImage(input)
	if err != nil {
		return err
	}
	arr := pixel.EncodeImage(img, opts)
	if payloadFile != "" {
		payload, err := arr.PayloadFile()
		if err != nil {
			return err
		}
		if err := os.WriteFile(payloadFile, payload, 0644); err != nil {
			return err
		}
		glog.V(1).Infof("wrote %s (%dx%d)", payloadFile, arr.Width, arr.Height)
	}
	text := pixel.FormatCArray(name, arr)
	if out == "" {
		fmt.Println(text)
		return nil
	}
	return os.WriteFile(out, []byte(text), 0644)
}

func fail(code int, err error) {
	glog.Error(err)
	glog.Flush()
	os.Exit(code)
}

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		flag.Usage()
		os.Exit(2)
	}
	if err := run(flag.Arg(0)); err != nil {
		if errors.Is(err, pixel.ErrInvalidArguments) || errors.Is(err, pixel.ErrFileNotFound) {
			fail(2, err)
		}
		fail(1, err)
	}
}
