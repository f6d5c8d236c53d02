// fmtcheck validates FORMAT strings against the scanner's own grammar: one
// nesting-depth check per string, run concurrently across every file given
// on the command line.
//
// Usage:
//
//	fmtcheck [flags] file.fmt [file2.fmt ...]
//
// Each input file holds one FORMAT string per line; blank lines and lines
// starting with '#' are skipped.
//
// Flags:
//
//	-j num   maximum number of files validated concurrently (default 8)
//	-q       suppress per-line OK output, only report failures
package main

import (
	"bufio"
	"flag"
	"fmt"
	"os"
	"strings"

	"golang.org/x/sync/errgroup"

	"github.com/soypat/fortran-format/format"
)

var (
	flagParallel = flag.Int("j", 8, "maximum number of files validated concurrently")
	flagQuiet    = flag.Bool("q", false, "suppress per-line OK output, only report failures")
)

func main() {
	flag.Parse()
	if flag.NArg() < 1 {
		fmt.Fprintln(os.Stderr, "usage: fmtcheck [flags] file.fmt [file2.fmt ...]")
		flag.PrintDefaults()
		os.Exit(1)
	}

	files := flag.Args()
	if *flagParallel <= 0 {
		*flagParallel = 1
	}

	var (
		group errgroup.Group
		sema  = make(chan struct{}, *flagParallel)
		fail  = make(chan string, len(files))
	)
	for _, name := range files {
		sema <- struct{}{}
		name := name
		group.Go(func() error {
			defer func() { <-sema }()
			if ok := checkFile(name); !ok {
				fail <- name
			}
			return nil
		})
	}
	group.Wait()
	close(fail)

	exitCode := 0
	for name := range fail {
		exitCode = 1
		fmt.Fprintf(os.Stderr, "%s: one or more FORMAT strings failed validation\n", name)
	}
	os.Exit(exitCode)
}

func checkFile(name string) bool {
	f, err := os.Open(name)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return false
	}
	defer f.Close()

	ok := true
	scanner := bufio.NewScanner(f)
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := strings.TrimSpace(scanner.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}
		if !checkLine(name, lineNum, line) {
			ok = false
		}
	}
	if err := scanner.Err(); err != nil {
		fmt.Fprintf(os.Stderr, "%s: %v\n", name, err)
		return false
	}
	return ok
}

func checkLine(file string, line int, text string) bool {
	var failure string
	depth := func() (d int32) {
		defer func() {
			if r := recover(); r != nil {
				if e, ok := r.(*format.Error); ok {
					failure = e.Msg
				} else {
					failure = fmt.Sprint(r)
				}
			}
		}()
		return format.MaxParenthesisNesting([]byte(text), func(msg string, args ...any) {
			panic(&format.Error{Offset: -1, Msg: fmt.Sprintf(msg, args...)})
		})
	}()

	if failure != "" {
		fmt.Printf("%s:%d: FAIL %s (%s)\n", file, line, text, failure)
		return false
	}
	if !*flagQuiet {
		fmt.Printf("%s:%d: OK %s (max nesting %d)\n", file, line, text, depth)
	}
	return true
}
