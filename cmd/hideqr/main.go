package main

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"log"
	"os"
	"path/filepath"
	"strings"
	"syscall"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
	"github.com/pborman/getopt/v2"
	"go.uber.org/zap"
	"golang.org/x/term"
	"gopkg.in/yaml.v3"

	"github.com/unixdj/hideqr"
)

var g = struct {
	lev      hideqr.Level // QR correction level
	format   string       // output file format
	output   string       // default output file
	tmpdir   string       // verification image directory
	logfile  string       // log file
	cmd      string       // command set by flag
	verbose  int          // log verbosity
	truncate bool         // allow truncated secrets
	yaml     bool         // YAML output
	quiet    bool         // no preview
}{}

var errUsage = errors.New("usage")

var formats = []string{"png", "pbm"}

func printUsage(w io.Writer) {
	cl := getopt.CommandLine
	fmt.Fprint(w, "Hide a secret text in a QR code\nUsage: ",
		cl.Program(), " ", cl.UsageLine(), `
Commands:
  create carrier secret [file]
        encode carrier as a QR code with secret hidden in it and write
        it to file [`+g.output+`]; the suffix of the output
        format is appended if missing
  read file
        print the carrier and the secret read from file
  help  print this help

`)
	var b bytes.Buffer
	cl.PrintOptions(&b)
	w.Write(b.Bytes())
}

type opt func()

func (opt) String() string                    { return "" }
func (o opt) Set(string, getopt.Option) error { o(); return nil }

func usage() {
	printUsage(os.Stderr)
	os.Exit(2)
}

func help() {
	printUsage(os.Stdout)
	os.Exit(0)
}

func version() {
	fmt.Println(`hideqr version 0.1.0
Copyright (c) 2011 The Go Authors
Copyright (c) 2026 Vadim Vygonets`)
	os.Exit(0)
}

func parseFlags(cfg config) {
	g.output = cfg.output
	g.tmpdir = cfg.tmpdir
	g.logfile = cfg.logfile
	getopt.SetUsage(usage)
	getopt.SetParameters("command [arg ...]")
	getopt.Flag(opt(help), 'h', "show this help").SetFlag()
	getopt.Flag(opt(version), 'V', "print version and copyright").SetFlag()
	getopt.FlagLong(opt(setCmd("create")), "create", 'c',
		"same as create command").SetFlag()
	getopt.FlagLong(opt(setCmd("read")), "read", 'r',
		"same as read command").SetFlag()
	lev := getopt.Enum('l',
		[]string{"l", "m", "q", "h", "L", "M", "Q", "H"}, cfg.level,
		"error correction level, lowest to highest; "+
			"higher levels hide longer secrets", "l|m|q|h")
	ff := getopt.Enum('t', formats, "", "output format, one of: "+
		strings.Join(formats, ", ")+"; by default "+
		"pbm if the file name ends in .pbm, otherwise png", "type")
	getopt.Flag(&g.tmpdir, 'd', "directory for the image written "+
		"while verifying", "dir")
	getopt.Flag(&g.logfile, 'L', "also log to file in JSON, "+
		"rotating it", "file")
	getopt.Flag(&g.truncate, 'T', "hide as much of a long secret "+
		"as fits instead of failing")
	getopt.Flag(&g.yaml, 'y', "print read results as YAML")
	getopt.Flag(&g.quiet, 'q', "do not preview the created code")
	verbose := getopt.Counter('v', "log progress; -vv: debug")

	getopt.Parse()
	var err error
	if g.lev, err = hideqr.ParseLevel(*lev); err != nil {
		log.Fatalln(err)
	}
	g.format = *ff
	g.verbose = *verbose
}

// setCmd returns an option setting the command.
func setCmd(cmd string) func() { return func() { g.cmd = cmd } }

// outputName returns name with the suffix of format appended unless
// present.  If format is empty, it is inferred from name.
func outputName(name, format string) string {
	ext := strings.ToLower(filepath.Ext(name))
	if format == "" {
		format = "png"
		if ext == ".pbm" {
			format = "pbm"
		}
	}
	if ext != "."+format {
		name += "." + format
	}
	return name
}

// defaultName returns the default output file name for format.  If
// format is set, the extension of name is replaced.
func defaultName(name, format string) string {
	if format == "" {
		return name
	}
	return strings.TrimSuffix(name, filepath.Ext(name)) + "." + format
}

// preview reports whether a symbol of the given size should be
// drawn on standard output.
func preview(size int) bool {
	if g.quiet || !isatty.IsTerminal(uintptr(syscall.Stdout)) {
		return false
	}
	w, _, err := term.GetSize(int(syscall.Stdout))
	return err == nil && w >= size+8
}

func create(w io.Writer, lg *zap.Logger, args []string) error {
	if len(args) < 2 || len(args) > 3 {
		return errUsage
	}
	name := defaultName(g.output, g.format)
	if len(args) == 3 {
		name = args[2]
	}
	name = outputName(name, g.format)
	ov, err := hideqr.Create(name, args[0], args[1], g.lev,
		hideqr.WithLogger(lg),
		hideqr.WithTempDir(g.tmpdir),
		hideqr.WithTruncation(g.truncate))
	if err != nil {
		return err
	}
	if preview(ov.Size()) {
		fmt.Fprint(w, ov)
	}
	color.New(color.FgGreen).Fprintf(w, "%s: version %d, level %v\n",
		name, ov.Version(), g.lev)
	return nil
}

func read(w io.Writer, lg *zap.Logger, args []string) error {
	if len(args) != 1 {
		return errUsage
	}
	res, err := hideqr.ReadFile(args[0], hideqr.WithLogger(lg))
	if err != nil {
		return err
	}
	if g.yaml {
		enc := yaml.NewEncoder(w)
		if err := enc.Encode(res); err != nil {
			return err
		}
		return enc.Close()
	}
	label := color.New(color.FgCyan).SprintFunc()
	fmt.Fprintln(w, label("carrier:"), res.Carrier)
	fmt.Fprintln(w, label("secret: "), res.Secret)
	return nil
}

// run executes the command named by cmd, or by the first argument
// if cmd is empty.  Leading dashes are ignored.
func run(w io.Writer, lg *zap.Logger, cmd string, args []string) error {
	if cmd == "" {
		if len(args) == 0 {
			return errUsage
		}
		cmd, args = args[0], args[1:]
	}
	switch strings.TrimLeft(cmd, "-") {
	case "create", "c":
		return create(w, lg, args)
	case "read", "r":
		return read(w, lg, args)
	case "help", "h":
		printUsage(w)
		return nil
	}
	return fmt.Errorf("%s: unknown command", cmd)
}

func main() {
	log.SetFlags(0)
	parseFlags(loadConfig())
	lg := newLogger(g.verbose, g.logfile)
	defer lg.Sync()

	err := run(os.Stdout, lg, g.cmd, getopt.Args())
	if err == errUsage {
		usage()
	}
	if err != nil {
		lg.Sync()
		log.Fatalln(err)
	}
}
