//go:build windows

package main

import (
	"encoding/hex"
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	cli "github.com/urfave/cli/v2"
	"golang.org/x/sys/windows"

	"github.com/Microsoft/lazywinapi/internal/log"
	"github.com/Microsoft/lazywinapi/internal/logfields"
	"github.com/Microsoft/lazywinapi/process"
)

const (
	pidFlag    = "pid"
	addrFlag   = "addr"
	sizeFlag   = "size"
	debugFlag  = "debug-privilege"
	deviceFlag = "device"
)

var processFlags = []cli.Flag{
	&cli.UintFlag{
		Name:  pidFlag,
		Usage: "process `id`; defaults to this process",
	},
	&cli.BoolFlag{
		Name:  debugFlag,
		Usage: "enable SeDebugPrivilege before opening the process",
	},
}

var addrFlagDef = &cli.StringFlag{
	Name:     addrFlag,
	Usage:    "memory `address`, decimal or 0x-prefixed hex",
	Required: true,
}

var processCommand = &cli.Command{
	Name:    "process",
	Aliases: []string{"proc", "ps"},
	Usage:   "Inspect processes and their memory",
	Subcommands: []*cli.Command{
		{
			Name:  "path",
			Usage: "Print the executable path of a process",
			Flags: append([]cli.Flag{
				&cli.BoolFlag{
					Name:  deviceFlag,
					Usage: "print the NT device path instead of the Win32 path",
				},
			}, processFlags...),
			Action: func(ctx *cli.Context) error {
				return withProcess(ctx, process.QueryLimitedInformation, func(p *process.Process) error {
					get := p.ExecutablePath
					if ctx.Bool(deviceFlag) {
						get = p.DevicePath
					}
					path, err := get()
					if err != nil {
						return errors.Wrap(err, "could not get executable path")
					}
					log.G(ctx.Context).WithField(logfields.Path, path).Debug("resolved executable path")
					fmt.Fprintln(os.Stdout, path)
					return nil
				})
			},
		},
		{
			Name:  "read",
			Usage: "Dump process memory as hex",
			Flags: append([]cli.Flag{
				addrFlagDef,
				&cli.IntFlag{
					Name:  sizeFlag,
					Usage: "number of `bytes` to read; defaults to the configured buffer size",
				},
			}, processFlags...),
			Action: func(ctx *cli.Context) error {
				addr, err := parseAddress(ctx.String(addrFlag))
				if err != nil {
					return err
				}
				size := conf.BufferSize
				if ctx.IsSet(sizeFlag) {
					size = ctx.Int(sizeFlag)
				}
				if size <= 0 {
					return errors.Errorf("invalid size %d", size)
				}
				return withProcess(ctx, process.VMRead|process.QueryLimitedInformation, func(p *process.Process) error {
					log.G(ctx.Context).WithFields(logrus.Fields{
						logfields.Address: fmt.Sprintf("0x%x", addr),
						logfields.Size:    size,
					}).Debug("reading process memory")
					buf := make([]byte, size)
					if err := p.ReadMemory(addr, buf); err != nil {
						return errors.Wrapf(err, "could not read %d bytes at 0x%x", size, addr)
					}
					fmt.Fprint(os.Stdout, hex.Dump(buf))
					return nil
				})
			},
		},
		{
			Name:      "write",
			Usage:     "Write hex encoded bytes into process memory",
			ArgsUsage: "<hex>",
			Flags:     append([]cli.Flag{addrFlagDef}, processFlags...),
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return errors.New("expected exactly one hex data argument")
				}
				addr, err := parseAddress(ctx.String(addrFlag))
				if err != nil {
					return err
				}
				data, err := hex.DecodeString(ctx.Args().First())
				if err != nil {
					return errors.Wrap(err, "invalid hex data")
				}
				return withProcess(ctx, process.VMWrite|process.VMOperation|process.QueryLimitedInformation, func(p *process.Process) error {
					if err := p.WriteMemory(addr, data); err != nil {
						return errors.Wrapf(err, "could not write %d bytes at 0x%x", len(data), addr)
					}
					return nil
				})
			},
		},
		{
			Name:      "window",
			Usage:     "Print the process and thread that own a window",
			ArgsUsage: "<hwnd>",
			Action: func(ctx *cli.Context) error {
				if ctx.NArg() != 1 {
					return errors.New("expected exactly one window handle")
				}
				h, err := parseAddress(ctx.Args().First())
				if err != nil {
					return err
				}
				hwnd := windows.HWND(h)
				pid, tid := process.WindowPID(hwnd), process.WindowTID(hwnd)
				log.G(ctx.Context).WithFields(logrus.Fields{
					logfields.Window:    fmt.Sprintf("0x%x", h),
					logfields.ProcessID: pid,
					logfields.ThreadID:  tid,
				}).Debug("window owner")
				if pid == 0 {
					return errors.Errorf("0x%x is not a window", h)
				}
				fmt.Fprintf(os.Stdout, "pid %d tid %d\n", pid, tid)
				return nil
			},
		},
	},
}

// withProcess opens the process named by the pid flag, or uses the current
// process, and runs fn with it.
func withProcess(ctx *cli.Context, access uint32, fn func(*process.Process) error) error {
	if ctx.Bool(debugFlag) {
		if err := process.EnableDebugPrivilege(ctx.Context); err != nil {
			return errors.Wrap(err, "could not enable debug privilege")
		}
	}
	if !ctx.IsSet(pidFlag) {
		return fn(process.Self())
	}

	pid := uint32(ctx.Uint(pidFlag))
	log.G(ctx.Context).WithFields(logrus.Fields{
		logfields.ProcessID: pid,
		logfields.Access:    fmt.Sprintf("0x%x", access),
	}).Debug("opening process")
	p, err := process.Open(ctx.Context, pid, access)
	if err != nil {
		return errors.Wrapf(err, "could not open process %d", pid)
	}
	defer p.Close()
	return fn(p)
}

func parseAddress(s string) (uintptr, error) {
	v, err := strconv.ParseUint(s, 0, 64)
	if err != nil {
		return 0, errors.Errorf("invalid address %q", s)
	}
	return uintptr(v), nil
}
