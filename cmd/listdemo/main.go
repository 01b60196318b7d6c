package main

import (
	"errors"
	"flag"
	"log"
	"os"

	"github.com/Edwardok/C-codes/internal/scenario"
	"github.com/Edwardok/C-codes/linkedlist"
)

// exitData is the exit status for unreadable or failing scenarios.
const exitData = 64

func main() {
	path := flag.String("scenario", "", "scenario file to run (default: built-in demo)")
	trace := flag.Bool("trace", false, "print each step before running it")
	flag.Parse()

	logger := log.New(os.Stderr, "listdemo: ", 0)

	s := scenario.Default()
	if *path != "" {
		var err error
		if s, err = scenario.Load(*path); err != nil {
			logger.Print(err)
			os.Exit(exitData)
		}
	}

	_, err := scenario.Run(s,
		scenario.WithOutput(os.Stdout),
		scenario.WithTrace(*trace),
		scenario.WithRecover(true),
	)

	var lerr *linkedlist.Error
	switch {
	case errors.As(err, &lerr):
		// The list was released before the violation was reported.
		logger.Print(lerr)
		os.Exit(lerr.Kind.ExitCode())

	case err != nil:
		logger.Print(err)
		os.Exit(exitData)
	}
}
