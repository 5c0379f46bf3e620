// Command shoe is an interactive command-line shell.
package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/spf13/pflag"

	"github.com/ardenvale/shoe/internal/shell"
	"github.com/ardenvale/shoe/internal/theme"
)

func main() {
	flags := pflag.NewFlagSet("shoe", pflag.ContinueOnError)
	flags.SetOutput(discard{})

	noHistory := flags.Bool("no-history", false, "disable command history")
	noRC := flags.Bool("no-rc", false, "skip executing ~/.shoerc at startup")
	help := flags.BoolP("help", "h", false, "show this help message")
	command := flags.BoolP("command", "c", false, "run the remaining arguments as one command, then exit")
	commandStay := flags.BoolP("command-but-like-dont-exit-after", "k", false, "run the remaining arguments as one command, then stay interactive")

	if err := flags.Parse(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, theme.New(0).Error(err.Error()))
		os.Exit(1)
	}

	if *help {
		printUsage()
		os.Exit(0)
	}

	opts := []shell.Option{}
	if *noHistory {
		opts = append(opts, shell.WithNoHistory())
	}
	if *noRC {
		opts = append(opts, shell.WithNoRC())
	}

	sh := shell.New(opts...)

	if *command || *commandStay {
		line := strings.Join(flags.Args(), " ")
		sh.RunLine(line)
		if *command {
			os.Exit(0)
		}
	}

	sh.Run()
}

func printUsage() {
	fmt.Println("shoe - an interactive command shell")
	fmt.Println()
	fmt.Println("Usage: shoe [options]")
	fmt.Println()
	fmt.Println("Options:")
	fmt.Println("  --no-history                              disable command history")
	fmt.Println("  --no-rc                                    skip executing ~/.shoerc at startup")
	fmt.Println("  -c, --command                              run the remaining arguments as one command, then exit")
	fmt.Println("  -k, --command-but-like-dont-exit-after      run the remaining arguments as one command, then stay interactive")
	fmt.Println("  -h, --help                                 show this help message")
}

// discard is an io.Writer that drops pflag's own usage/error output so main
// can format it through the theme instead.
type discard struct{}

func (discard) Write(p []byte) (int, error) { return len(p), nil }
