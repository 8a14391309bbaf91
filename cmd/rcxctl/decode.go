package main

import (
	"encoding/hex"
	"fmt"
	"io"
	"strings"
	"text/tabwriter"

	"github.com/moffa90/go-rcx/protocol"
)

var hexSeparators = strings.NewReplacer(" ", "", ":", "", ",", "", "0x", "", "0X", "")

// parseHex accepts "55 FF 00", "55:FF:00", "0x55,0xFF" or "55FF00", split
// across any number of arguments.
func parseHex(args []string) ([]byte, error) {
	s := hexSeparators.Replace(strings.Join(args, ""))
	frame, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid hex: %w", err)
	}
	return frame, nil
}

// runDecode prints the structure of a captured frame and reports whether it
// is a well-formed RCX frame.
func runDecode(out io.Writer, args []string) error {
	frame, err := parseHex(args)
	if err != nil {
		return err
	}

	fields, err := protocol.Describe(frame)
	if err != nil {
		return err
	}
	decoded, err := protocol.Decode(frame)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(out, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "FIELD\tOFFSET\tBYTES\tSTATUS")
	for _, f := range fields {
		status := "ok"
		if !f.OK {
			status = "BAD"
		}
		fmt.Fprintf(tw, "%s\t%d\t% X\t%s\n", f.Name, f.Offset, f.Bytes, status)
	}
	if err := tw.Flush(); err != nil {
		return err
	}

	fmt.Fprintf(out, "\nopcode %s (0x%02X), toggle %t, params [% X]\n",
		decoded.BaseOpcode(), byte(decoded.BaseOpcode()), decoded.Toggled(), decoded.ParamValues())

	if err := protocol.Validate(frame); err != nil {
		return err
	}
	if decoded.Preamble != protocol.Preamble() {
		return fmt.Errorf("unexpected preamble % X", decoded.Preamble[:])
	}

	fmt.Fprintln(out, "frame is valid")
	return nil
}
