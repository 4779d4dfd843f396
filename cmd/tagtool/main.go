// Command tagtool inspects, verifies, upgrades and archives Halo tag files.
//
// Usage:
//
//	tagtool [-config file] [-log-level level] <command> [flags] args...
//
// Commands:
//
//	inspect    print a decoded tag as xml, spew output or its references
//	roundtrip  decode and re-encode tags and compare the bytes
//	upgrade    convert an H1 tag to an H2 revision
//	pack       build an archive from a directory of tags
//	unpack     extract every tag of an archive
//	list       list the entries of an archive
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"log/slog"
	"os"
)

type command struct {
	name  string
	usage string
	run   func(a *app, args []string) error
}

var commands = []command{
	{name: "inspect", usage: "inspect [-format xml|spew|refs] file", run: (*app).inspect},
	{name: "roundtrip", usage: "roundtrip file...", run: (*app).roundtrip},
	{name: "upgrade", usage: "upgrade [-target rev] -o output file", run: (*app).upgrade},
	{name: "pack", usage: "pack [-compression type] -o archive dir", run: (*app).pack},
	{name: "unpack", usage: "unpack [-verify] -o dir archive", run: (*app).unpack},
	{name: "list", usage: "list archive", run: (*app).list},
}

var errUsage = errors.New("usage")

func main() {
	if err := run(os.Args[1:], os.Stdout, os.Stderr); err != nil {
		if !errors.Is(err, errUsage) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}

type app struct {
	cfg    Config
	logger *slog.Logger
	stdout io.Writer
	stderr io.Writer
}

func run(args []string, stdout, stderr io.Writer) error {
	fs := flag.NewFlagSet("tagtool", flag.ContinueOnError)
	fs.SetOutput(stderr)
	configPath := fs.String("config", "", "YAML config file")
	logLevel := fs.String("log-level", "", "Log level: debug, info, warn, error")
	fs.Usage = func() {
		fmt.Fprintln(stderr, "usage: tagtool [-config file] [-log-level level] <command> [flags] args...")
		fmt.Fprintln(stderr, "commands:")
		for _, c := range commands {
			fmt.Fprintf(stderr, "  %s\n", c.usage)
		}
	}
	if err := fs.Parse(args); err != nil {
		return errUsage
	}

	cfg, err := loadConfig(*configPath)
	if err != nil {
		return err
	}
	if *logLevel != "" {
		cfg.LogLevel = *logLevel
	}
	level, err := cfg.level()
	if err != nil {
		return err
	}

	a := &app{
		cfg:    cfg,
		logger: slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})),
		stdout: stdout,
		stderr: stderr,
	}

	if fs.NArg() == 0 {
		fs.Usage()
		return errUsage
	}
	name, rest := fs.Arg(0), fs.Args()[1:]
	for _, c := range commands {
		if c.name == name {
			return c.run(a, rest)
		}
	}
	fs.Usage()

	return fmt.Errorf("unknown command: %s", name)
}

func (a *app) flags(name string) *flag.FlagSet {
	fs := flag.NewFlagSet(name, flag.ContinueOnError)
	fs.SetOutput(a.stderr)

	return fs
}
