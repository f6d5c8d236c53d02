// fmtrepl is an interactive driver for the FORMAT runtime: it reads one
// command per line, tokenized with shell-style quoting, and drives a
// single internal formatted-output statement per "begin" command.
//
// Commands:
//
//	begin <width> <format...>   start a new statement over a <width>-byte buffer
//	int <value>                 OutputInteger64
//	real <value>                OutputReal64 (the stub; expect a crash on most FORMATs)
//	end                         EndIoStatement, printing the buffer and status
//	quit                        exit
package main

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/midbel/shlex"

	"github.com/soypat/fortran-format/ioapi"
)

type session struct {
	buf []byte
	io  ioapi.Cookie
}

func main() {
	var sess session
	in := bufio.NewScanner(os.Stdin)
	fmt.Print("fmtrepl> ")
	for in.Scan() {
		fields, err := shlex.Split(strings.NewReader(in.Text()))
		if err != nil {
			fmt.Fprintf(os.Stderr, "parse error: %v\n", err)
			fmt.Print("fmtrepl> ")
			continue
		}
		if len(fields) == 0 {
			fmt.Print("fmtrepl> ")
			continue
		}
		if fields[0] == "quit" {
			break
		}
		if err := sess.dispatch(fields); err != nil {
			fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		fmt.Print("fmtrepl> ")
	}
}

func (s *session) dispatch(fields []string) error {
	switch fields[0] {
	case "begin":
		if len(fields) < 3 {
			return fmt.Errorf("usage: begin <width> <format...>")
		}
		width, err := strconv.Atoi(fields[1])
		if err != nil {
			return fmt.Errorf("invalid width: %v", err)
		}
		f := strings.Join(fields[2:], " ")
		s.buf = make([]byte, width)
		s.io = ioapi.BeginInternalFormattedOutput(s.buf, []byte(f), "<repl>", 0)
		return nil

	case "int":
		if s.io == nil {
			return fmt.Errorf("no statement in progress, run begin first")
		}
		if len(fields) != 2 {
			return fmt.Errorf("usage: int <value>")
		}
		n, err := strconv.ParseInt(fields[1], 10, 64)
		if err != nil {
			return fmt.Errorf("invalid integer: %v", err)
		}
		ok := ioapi.OutputInteger64(s.io, n)
		fmt.Printf("OutputInteger64(%d) -> %v\n", n, ok)
		return nil

	case "real":
		if s.io == nil {
			return fmt.Errorf("no statement in progress, run begin first")
		}
		if len(fields) != 2 {
			return fmt.Errorf("usage: real <value>")
		}
		v, err := strconv.ParseFloat(fields[1], 64)
		if err != nil {
			return fmt.Errorf("invalid real: %v", err)
		}
		ok := ioapi.OutputReal64(s.io, v)
		fmt.Printf("OutputReal64(%g) -> %v\n", v, ok)
		return nil

	case "end":
		if s.io == nil {
			return fmt.Errorf("no statement in progress, run begin first")
		}
		stat := ioapi.EndIoStatement(s.io)
		fmt.Printf("%q iostat=%d\n", string(s.buf), stat)
		s.io = nil
		return nil
	}
	return fmt.Errorf("unknown command %q", fields[0])
}
