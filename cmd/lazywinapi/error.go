//go:build windows

package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/pkg/errors"
	cli "github.com/urfave/cli/v2"

	"github.com/Microsoft/lazywinapi/winerror"
)

var errorCommand = &cli.Command{
	Name:      "error",
	Aliases:   []string{"err"},
	Usage:     "Describe Win32 error codes",
	ArgsUsage: "<code>...",
	Action: func(ctx *cli.Context) error {
		if ctx.NArg() == 0 {
			return errors.New("no error code given")
		}
		for _, a := range ctx.Args().Slice() {
			code, err := parseErrorCode(a)
			if err != nil {
				return err
			}
			fmt.Fprintf(os.Stdout, "%d (0x%x): %s\n", code, code, winerror.Describe(code))
		}
		return nil
	},
}

// parseErrorCode accepts decimal, 0x-prefixed hex, and negative HRESULTs as
// printed by some tools (-2147024891).
func parseErrorCode(s string) (uint32, error) {
	if v, err := strconv.ParseUint(s, 0, 32); err == nil {
		return uint32(v), nil
	}
	v, err := strconv.ParseInt(s, 0, 32)
	if err != nil {
		return 0, errors.Errorf("invalid error code %q", s)
	}
	return uint32(int32(v)), nil
}
