package main

import (
	"strings"

	"github.com/pterm/pterm"
)

func help(topic string) {
	tracer().Infof("help %v", topic)
	t := strings.ToLower(topic)
	switch t {
	case "find":
		pterm.Info.Println("find <id>")
		pterm.Println(`
	Looks up a user by numeric id and prints the username.
	The lookup runs as a pipeline over the fallible containers:

	Try(query) -> map rows to an optional row -> ToOption -> Flatten
	           -> map row to username -> Or("Guest")

	Ids 1, 2 and 7 exist. Unknown ids fall back to "Guest".
	Negative ids make the query fail; the error is traced and the
	pipeline still falls back to "Guest" without any error handling
	at the call site.
	`)
	case "div":
		pterm.Info.Println("div <a> <b>")
		pterm.Println(`
	Divides two integers via Catch: parse errors and division by
	zero panic inside the computation and come back out reified as
	an Err result, which is then printed.
	`)
	default:
		pterm.Info.Println("Commands")
		pterm.Println(`
	find <id>    look up a username (see 'help find')
	div <a> <b>  integer division via Catch (see 'help div')
	help [cmd]   this text
	quit         leave (or <ctrl>D)
	`)
	}
}
