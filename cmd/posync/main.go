package main

import (
	"fmt"
	"os"
)

func main() {
	if len(os.Args) < 2 {
		usage()
		os.Exit(1)
	}
	sub := os.Args[1]
	args := os.Args[2:]
	var err error
	switch sub {
	case "sync":
		cfg, e := parseSyncFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runSync(cfg)
	case "check":
		cfg, e := parseCheckFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runCheck(cfg, os.Stdout)
	case "stats":
		cfg, e := parseStatsFlags(args)
		if e != nil {
			err = e
			break
		}
		err = runStats(cfg, os.Stdout)
	case "help", "-h", "--help":
		usage()
		os.Exit(0)
	default:
		fmt.Fprintf(os.Stderr, "posync: unknown subcommand %q\n", sub)
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "posync: %v\n", err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Fprintf(os.Stderr, `posync - keep gettext message catalogs in sync with source

usage: posync <command> [options]

commands:
  sync       Regenerate the template, merge catalogs, and compile them.
  check      Validate catalogs against the template and report inconsistencies.
  stats      Show translation completeness per language.

Use 'posync <command> -h' for command-specific flags.
`)
}
