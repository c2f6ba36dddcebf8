package main

import (
	"errors"
	"flag"
	"fmt"
	"os"
	"strconv"
	"strings"

	"github.com/chzyer/readline"
	"github.com/npillmayer/fallible"
	"github.com/npillmayer/schuko/schukonf/testconfig"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
	"github.com/npillmayer/schuko/tracing/trace2go"
	"github.com/pterm/pterm"
)

// tracer traces with key 'fallible'
func tracer() tracing.Trace {
	return tracing.Select("fallible")
}

func main() {
	initDisplay()

	// set up logging
	tracing.RegisterTraceAdapter("go", gologadapter.GetAdapter(), false)
	conf := testconfig.Conf{
		"tracing.adapter": "go",
		"trace.fallible":  "Info",
	}
	if err := trace2go.ConfigureRoot(conf, "trace", trace2go.ReplaceTracers(true)); err != nil {
		fmt.Printf("error configuring tracing")
		os.Exit(1)
	}
	tracing.SetTraceSelector(trace2go.Selector())

	// command line flags
	tlevel := flag.String("trace", "Info", "Trace level [Debug|Info|Error]")
	flag.Parse()
	switch *tlevel {
	case "Debug":
		tracer().SetTraceLevel(tracing.LevelDebug)
	case "Info":
		tracer().SetTraceLevel(tracing.LevelInfo)
	case "Error":
		tracer().SetTraceLevel(tracing.LevelError)
	default:
		tracer().Errorf("Invalid trace level: %s", *tlevel)
		os.Exit(5)
	}
	pterm.Info.Println("Welcome to the fallible playground") // colored welcome message
	//
	// set up REPL
	repl, err := readline.New("try > ")
	if err != nil {
		tracer().Errorf(err.Error())
		os.Exit(3)
	}
	intp := &Intp{repl: repl, users: seedUsers()}
	//
	// start receiving commands
	pterm.Info.Println("Quit with <ctrl>D")
	tracer().Infof("Trace level is %s", *tlevel)
	intp.REPL() // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  " !  ",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  " Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

type user struct {
	id   int
	name string
}

// seedUsers fills the in-memory table the lookup pipeline runs against.
func seedUsers() map[int]user {
	return map[int]user{
		1: {id: 1, name: "alice"},
		2: {id: 2, name: "bob"},
		7: {id: 7, name: "mallory"},
	}
}

// Intp is our interpreter object
type Intp struct {
	repl  *readline.Instance
	users map[int]user
}

// REPL starts interactive mode.
func (intp *Intp) REPL() {
	for {
		line, err := intp.repl.Readline()
		if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		if quit := intp.execute(strings.Fields(line)); quit {
			break
		}
	}
	pterm.Info.Println("Good bye!")
}

func (intp *Intp) execute(fields []string) bool {
	switch fields[0] {
	case "quit":
		return true
	case "help":
		topic := ""
		if len(fields) > 1 {
			topic = fields[1]
		}
		help(topic)
	case "find":
		if len(fields) != 2 {
			tracer().Errorf("usage: find <id>")
			break
		}
		intp.find(fields[1])
	case "div":
		if len(fields) != 3 {
			tracer().Errorf("usage: div <a> <b>")
			break
		}
		intp.div(fields[1], fields[2])
	default:
		tracer().Errorf("unknown command: %s", fields[0])
	}
	return false
}

// find runs the full lookup pipeline: a query that may fail, reduced to
// an optional row, reduced to a username with a guest fallback.
func (intp *Intp) find(arg string) {
	query := func() ([]user, error) {
		id, err := strconv.Atoi(arg)
		if err != nil {
			return nil, err
		}
		if id < 0 {
			return nil, errors.New("backend unavailable") // negative ids simulate an outage
		}
		if u, ok := intp.users[id]; ok {
			return []user{u}, nil
		}
		return nil, nil
	}
	found := fallible.MapResult(fallible.Try(query), func(rows []user) fallible.Option[user] {
		if len(rows) == 0 {
			return fallible.None[user]()
		}
		return fallible.Some(rows[0])
	})
	if err := found.Err(); err != nil {
		tracer().Infof("query failed: %v", err)
	}
	name := fallible.Map(fallible.Flatten(found.ToOption()), func(u user) string {
		return u.name
	})
	pterm.Println("username = " + name.Or("Guest"))
}

// div demonstrates Catch: parse failures and division by zero surface as
// panicking errors and come back out as an Err result.
func (intp *Intp) div(a, b string) {
	quotient := fallible.Catch(func() int {
		return atoi(a) / nonzero(atoi(b))
	})
	if q, err := quotient.Unwrap(); err != nil {
		pterm.Error.Println(err.Error())
	} else {
		pterm.Println(fmt.Sprintf("= %d", q))
	}
}

// atoi parses or panics with the parse error, to be absorbed by Catch.
func atoi(s string) int {
	n, err := strconv.Atoi(s)
	if err != nil {
		panic(err)
	}
	return n
}

func nonzero(n int) int {
	if n == 0 {
		panic(errors.New("division by zero"))
	}
	return n
}
