package main

import (
	"bufio"
	"flag"
	"os"
	"strings"

	"github.com/chzyer/readline"
	"github.com/pterm/pterm"

	"github.com/npillmayer/schuko/gtrace"
	"github.com/npillmayer/schuko/tracing"
	"github.com/npillmayer/schuko/tracing/gologadapter"
)

// main() starts an interactive CLI ("RatREPL"), where users may build
// expression trees over integers and rationals, and evaluate them.
// Arguments, if present, are executed as a single command, without going
// into interactive mode.
func main() {
	// set up logging
	initDisplay()
	tlevel := flag.String("trace", "Error", "Trace level [Debug|Info|Error]")
	initf := flag.String("init", "", "Initial load")
	flag.Parse()
	initTracing(tracing.TraceLevelFromString(*tlevel))
	tracer().Infof("Trace level is %s", *tlevel)
	//
	intp, err := NewIntp()
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	intp.loadInitFile(*initf) // init file name provided by flag
	if input := strings.TrimSpace(strings.Join(flag.Args(), " ")); input != "" {
		tracer().Infof("Input argument is \"%s\"", input)
		if _, err := intp.Execute(input); err != nil {
			report(input, err)
			os.Exit(2)
		}
		return
	}
	//
	// set up REPL
	repl, err := readline.NewEx(&readline.Config{
		Prompt:       "rat> ",
		AutoComplete: intp.completer(),
		EOFPrompt:    "quit",
	})
	if err != nil {
		pterm.Error.Println(err.Error())
		os.Exit(3)
	}
	defer repl.Close()
	pterm.Info.Println("Welcome to RatREPL") // colored welcome message
	pterm.Info.Println("Quit with <ctrl>D")  // inform user how to stop the CLI
	intp.REPL(repl)                          // go into interactive mode
}

// We use pterm for moderately fancy output.
func initDisplay() {
	pterm.EnableDebugMessages()
	pterm.Info.Prefix = pterm.Prefix{
		Text:  "  >>",
		Style: pterm.NewStyle(pterm.BgCyan, pterm.FgBlack),
	}
	pterm.Error.Prefix = pterm.Prefix{
		Text:  "  Error",
		Style: pterm.NewStyle(pterm.BgRed, pterm.FgBlack),
	}
}

// initTracing routes all tracing to a Go standard logger.
func initTracing(level tracing.TraceLevel) {
	adapter := gologadapter.GetAdapter()
	tracing.SetTraceSelector(tracing.SelectorForAdapter(adapter))
	if err := gtrace.CreateTracers(adapter); err != nil {
		pterm.Error.Println(err.Error())
	}
	tracer().SetTraceLevel(level)
	gtrace.EquationsTracer.SetTraceLevel(level)
	gtrace.InterpreterTracer.SetTraceLevel(level)
}

// loadInitFile executes the commands of an init file. Names bound by an init
// file live in the global scope and survive a session reset.
func (intp *Intp) loadInitFile(filename string) {
	if filename == "" {
		return
	}
	f, err := os.Open(filename)
	if err != nil {
		tracer().Errorf("Unable to open init file: %s", filename)
		return
	}
	defer f.Close()
	intp.globals = true
	defer func() { intp.globals = false }()
	scanner := bufio.NewScanner(f)
	lineno := 0
	for scanner.Scan() {
		lineno++
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}
		if _, err := intp.Execute(line); err != nil {
			tracer().Errorf("Error line %d: %v", lineno, err)
		}
	}
	if err := scanner.Err(); err != nil {
		tracer().Errorf("Error while reading init file: %v", err)
	}
}

// REPL starts interactive mode.
func (intp *Intp) REPL(repl *readline.Instance) {
	for {
		line, err := repl.Readline()
		if err == readline.ErrInterrupt {
			continue
		} else if err != nil { // io.EOF
			break
		}
		if line = strings.TrimSpace(line); line == "" {
			continue
		}
		quit, err := intp.Execute(line)
		if err != nil {
			report(line, err)
			continue
		}
		if quit {
			break
		}
	}
	pterm.Println("Good bye!")
}

// completer completes command keywords and bound names.
func (intp *Intp) completer() readline.AutoCompleter {
	names := readline.PcItemDynamic(func(string) []string {
		return intp.rt.Names()
	})
	return readline.NewPrefixCompleter(
		readline.PcItem("let", names),
		readline.PcItem("eval", names),
		readline.PcItem("tree", names),
		readline.PcItem("flat", names),
		readline.PcItem("vars"),
		readline.PcItem("demo"),
		readline.PcItem("reset"),
		readline.PcItem("help"),
		readline.PcItem("quit"),
	)
}
