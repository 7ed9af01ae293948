package main

import (
	"errors"
	"os"

	"github.com/pterm/pterm"
	"go.shiryu.dev/pkg"
)

var (
	errorColorFG = pterm.FgRed
	errorStyleBG = pterm.NewStyle(pterm.BgRed, pterm.FgWhite)
)

func main() {
	if err := newRootCmd(os.Stdout).Execute(); err != nil {
		printError(err)
		os.Exit(1)
	}
}

func printError(err error) {
	var (
		lexErr   *shiryu.LexError
		parseErr *shiryu.ParseError
	)

	switch {
	case errors.As(err, &lexErr):
		printErrorMessage("Lexical Error", err)
	case errors.As(err, &parseErr):
		printErrorMessage("Syntax Error", err)
	default:
		printErrorMessage("Error", err)
	}
}

// printErrorMessage prints a tagged error to the console
func printErrorMessage(tag string, err error) {
	errorStyleBG.Print(tag)
	errorColorFG.Println(" " + err.Error())
}
