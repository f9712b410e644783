//go:build windows

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"text/tabwriter"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/lazywinapi/clipboard"
	"github.com/Microsoft/lazywinapi/internal/log"
	"github.com/Microsoft/lazywinapi/internal/logfields"
)

const (
	formatFlag = "format"
	maxFlag    = "max"
	hexFlag    = "hex"
	waitFlag   = "wait"
)

var clipboardCommand = &cli.Command{
	Name:    "clipboard",
	Aliases: []string{"clip", "cb"},
	Usage:   "Read and write the clipboard",
	Flags: []cli.Flag{
		&cli.DurationFlag{
			Name:  waitFlag,
			Usage: "retry opening for up to `duration` while another window holds the clipboard",
		},
	},
	Subcommands: []*cli.Command{
		clipGetCommand,
		clipSetCommand,
		{
			Name:  "empty",
			Usage: "Remove everything from the clipboard",
			Action: func(ctx *cli.Context) error {
				return withClipboard(ctx, func(s *clipboard.Session) error {
					return s.Empty()
				})
			},
		},
		{
			Name:    "formats",
			Aliases: []string{"ls"},
			Usage:   "List the formats on the clipboard",
			Action:  listFormats,
		},
		{
			Name:      "name",
			Usage:     "Print the name of a clipboard format",
			ArgsUsage: "<format>...",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() == 0 {
					return errors.New("no format given")
				}
				for _, a := range ctx.Args().Slice() {
					f, err := clipboard.ParseFormat(a)
					if err != nil {
						return err
					}
					name, ok := clipboard.FormatName(f)
					if !ok {
						return errors.Errorf("format 0x%04X has no name", uint32(f))
					}
					fmt.Fprintf(os.Stdout, "0x%04X\t%s\n", uint32(f), name)
				}
				return nil
			},
		},
		{
			Name:      "register",
			Usage:     "Register a clipboard format and print its identifier",
			ArgsUsage: "<name>",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return errors.New("expected exactly one format name")
				}
				name := ctx.Args().First()
				f, err := clipboard.RegisterFormat(name)
				if err != nil {
					return errors.Wrap(err, "could not register format")
				}
				log.G(ctx.Context).WithFields(logrus.Fields{
					logfields.Name:   name,
					logfields.Format: uint32(f),
				}).Debug("registered clipboard format")
				fmt.Fprintf(os.Stdout, "0x%04X\n", uint32(f))
				return nil
			},
		},
		{
			Name:  "seq",
			Usage: "Print the clipboard sequence number",
			Action: func(*cli.Context) error {
				fmt.Fprintln(os.Stdout, clipboard.SequenceNumber())
				return nil
			},
		},
	},
}

var clipGetCommand = &cli.Command{
	Name:  "get",
	Usage: "Print the clipboard data of a format",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  formatFlag,
			Usage: "clipboard `format`, by number or name; defaults to the configured text format",
		},
		&cli.IntFlag{
			Name:  maxFlag,
			Usage: "read at most `N` bytes; defaults to the configured buffer size",
		},
		&cli.BoolFlag{
			Name:  hexFlag,
			Usage: "print the raw bytes as hex",
		},
	},
	Action: func(ctx *cli.Context) error {
		f, err := formatFromFlag(ctx)
		if err != nil {
			return err
		}
		size := conf.BufferSize
		if ctx.IsSet(maxFlag) {
			size = ctx.Int(maxFlag)
		}
		if size <= 0 {
			return errors.Errorf("invalid size %d", size)
		}

		buf := make([]byte, size)
		var n int
		if err := withClipboard(ctx, func(s *clipboard.Session) (err error) {
			n, err = s.Get(f, buf)
			return err
		}); err != nil {
			return err
		}
		buf = buf[:n]
		log.G(ctx.Context).WithFields(logrus.Fields{
			logfields.Format:   uint32(f),
			logfields.Sequence: clipboard.SequenceNumber(),
			logfields.Bytes:    buf,
		}).Debug("read clipboard")

		switch {
		case ctx.Bool(hexFlag):
			fmt.Fprintln(os.Stdout, hex.EncodeToString(buf))
		case f == clipboard.CF_UNICODETEXT:
			fmt.Fprintln(os.Stdout, clipboard.DecodeWideString(buf))
		case f == clipboard.CF_TEXT || f == clipboard.CF_OEMTEXT:
			fmt.Fprintln(os.Stdout, clipboard.DecodeString(buf))
		default:
			_, err = os.Stdout.Write(buf)
			return err
		}
		return nil
	},
}

var clipSetCommand = &cli.Command{
	Name:      "set",
	Usage:     "Replace the clipboard contents",
	ArgsUsage: "<data>",
	Flags: []cli.Flag{
		&cli.StringFlag{
			Name:  formatFlag,
			Usage: "clipboard `format`, by number or name; defaults to the configured text format",
		},
		&cli.BoolFlag{
			Name:  hexFlag,
			Usage: "data is hex encoded bytes, stored as is",
		},
	},
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() != 1 {
			return errors.New("expected exactly one data argument")
		}
		f, err := formatFromFlag(ctx)
		if err != nil {
			return err
		}
		arg := ctx.Args().First()

		return withClipboard(ctx, func(s *clipboard.Session) error {
			switch {
			case ctx.Bool(hexFlag):
				b, err := hex.DecodeString(arg)
				if err != nil {
					return errors.Wrap(err, "invalid hex data")
				}
				return s.Set(f, b)
			case f == clipboard.CF_UNICODETEXT:
				return s.SetWideString(arg)
			case f == clipboard.CF_TEXT:
				return s.SetString(arg)
			default:
				return s.Set(f, []byte(arg))
			}
		})
	},
}

func listFormats(ctx *cli.Context) error {
	var formats []clipboard.Format
	sizes := map[clipboard.Format]int{}
	if err := withClipboard(ctx, func(s *clipboard.Session) (err error) {
		formats, err = s.Formats()
		if err != nil {
			return err
		}
		for _, f := range formats {
			sizes[f] = s.Size(f)
		}
		return nil
	}); err != nil {
		return err
	}

	w := tabwriter.NewWriter(os.Stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(w, "ID\tNAME\tSIZE")
	for _, f := range formats {
		fmt.Fprintf(w, "0x%04X\t%s\t%d\n", uint32(f), f, sizes[f])
	}
	return w.Flush()
}

// withClipboard runs fn with the clipboard open, closing it afterwards.
func withClipboard(ctx *cli.Context, fn func(*clipboard.Session) error) (err error) {
	timeout, err := conf.openTimeout()
	if err != nil {
		return err
	}
	if ctx.IsSet(waitFlag) {
		timeout = ctx.Duration(waitFlag)
	}

	var s *clipboard.Session
	if timeout > 0 {
		s, err = clipboard.OpenWait(ctx.Context, timeout)
	} else {
		s, err = clipboard.Open(ctx.Context)
	}
	if err != nil {
		return errors.Wrap(err, "could not open clipboard")
	}
	defer func() {
		if cerr := s.Close(); cerr != nil && err == nil {
			err = errors.Wrap(cerr, "could not close clipboard")
		}
	}()
	return fn(s)
}

func formatFromFlag(ctx *cli.Context) (clipboard.Format, error) {
	if !ctx.IsSet(formatFlag) {
		return conf.textFormat()
	}
	return clipboard.ParseFormat(ctx.String(formatFlag))
}
