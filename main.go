package main

import (
	"context"
	"flag"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/pterm/pterm"

	"github.com/alfarttusie/passmaker/gen"
	"github.com/alfarttusie/passmaker/sink"
)

const version = "1.0.0"

// All command-line arguments
var (
	// inputs
	Words    = flag.String("w", "", "Base word(s), comma-separated. Use \"-\" to read from stdin, one word per line")
	WordFile = flag.String("word-file", "", "File with base words, one per line. Combined with -w if both are given")

	// output & display
	OutputPath   = flag.String("o", "", "Output file path. A .gz suffix enables gzip compression. If omitted, no file is written")
	Show         = flag.Bool("s", false, "Print generated passwords to stdout")
	Force        = flag.Bool("force", false, "Overwrite the output file if it already exists")
	ShowProgress = flag.Bool("progress", false, "Show a live progress display")
	Verbose      = flag.Bool("v", false, "Enable debug output")

	// generation controls
	JoinersSpec = flag.String("joiners", ",-,_,.", "Join strings between words as CSV. An empty element means no joiner")
	CasesSpec   = flag.String("cases", "original,lower,upper,title,invert", "Case variants to apply as CSV (any of: original,lower,upper,title,invert)")
	NumbersSpec = flag.String("numbers", "1,12,123,2025,007", "Numbers to try as CSV. An empty element means \"omit this slot\"")
	SymbolsSpec = flag.String("symbols", "!,@,#,$", "Symbols to try as CSV. An empty element means \"omit this slot\"")
	YearsSpec   = flag.String("years", "", "Years as CSV of items like \"1990-1995\", \"2020\", or \"last:5\". Empty = none")

	MaxPermLength = flag.Int("max-permutation-length", 0, "Max number of words combined per candidate (default: all words)")

	// leet
	LeetSpec = flag.String("leet", "a=@,4;s=$,5;e=3;i=1;o=0", "Leet map as semicolon-separated items like \"a=@,4;s=$,5\". Empty to disable")
	LeetMax  = flag.Int("leet-max-expansions", 2, "Max positions leet-substituted at once per candidate")

	// filters & limits
	MinLength     = flag.Int("min-length", 4, "Minimum password length")
	MaxLength     = flag.Int("max-length", 64, "Maximum password length")
	MinEntropy    = flag.Float64("min-entropy", 0, "Minimum Shannon entropy in bits (0 to disable)")
	BlacklistPath = flag.String("blacklist", "", "Path to blacklist file (one password per line) to exclude")
	MaxCount      = flag.Int("max-count", 0, "Stop after emitting this many lines in total (0 = unlimited)")

	// workers
	NumThreads = flag.Int("t", 4, "Number of simultaneous workers")
	Isolated   = flag.Bool("isolated", false, "Give each worker a static output quota instead of a shared live budget (process-pool style)")
)

// -mask may be passed multiple times
type maskList []string

func (m *maskList) String() string { return strings.Join(*m, ", ") }

func (m *maskList) Set(v string) error {
	*m = append(*m, v)
	return nil
}

var Masks maskList

func usage(exitCode int) {
	flag.Usage()
	os.Exit(exitCode)
}

func main() {
	flag.Var(&Masks, "mask", "Mask template using {base} {Base} {BASE} {camel} {num} {sym} {year}. May be repeated. Defaults to a built-in set")

	flag.Usage = func() {
		fmt.Fprintf(flag.CommandLine.Output(), "passmaker v%s\nUSAGE: %s [OPTION]...\n", version, os.Args[0])
		flag.PrintDefaults()
	}

	flag.Parse()

	// Candidates go to stdout, so keep everything else on stderr
	for _, p := range []*pterm.PrefixPrinter{&pterm.Debug, &pterm.Info, &pterm.Warning, &pterm.Error, &pterm.Success} {
		*p = *p.WithWriter(os.Stderr)
	}
	if *Verbose {
		pterm.EnableDebugMessages()
	}

	// Cooperative abort on ctrl+c: workers notice the cancelled context and
	// stop, so sinks (gzip especially) still get closed properly below
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM, syscall.SIGINT)
	defer stop()

	words, err := collectWords(*Words, *WordFile)
	if err != nil {
		pterm.Error.Printf("%s\n", err)
		os.Exit(1)
	}
	if len(words) == 0 {
		pterm.Error.Printf("No words provided. Use -w or -word-file.\n")
		fmt.Println()
		usage(1)
	}

	cases, err := gen.ParseCases(*CasesSpec)
	if err != nil {
		pterm.Error.Printf("%s\n", err)
		usage(1)
	}

	years, err := gen.ParseYears(*YearsSpec, time.Now().Year())
	if err != nil {
		pterm.Error.Printf("%s\n", err)
		usage(1)
	}

	leet, err := gen.ParseLeet(*LeetSpec)
	if err != nil {
		pterm.Error.Printf("%s\n", err)
		usage(1)
	}

	cfg := &gen.Config{
		Words:         words,
		Joiners:       gen.ParseCSVAllowEmpty(*JoinersSpec),
		MaxPermLength: *MaxPermLength,
		Masks:         []string(Masks),
		Numbers:       gen.ParseCSVAllowEmpty(*NumbersSpec),
		Symbols:       gen.ParseCSVAllowEmpty(*SymbolsSpec),
		Years:         years,
		Cases:         cases,
		Leet:          leet,
		LeetMax:       *LeetMax,
		MinLength:     *MinLength,
		MaxLength:     *MaxLength,
		MinEntropy:    *MinEntropy,
		Blacklist:     loadBlacklist(*BlacklistPath),
		MaxCount:      *MaxCount,
		Workers:       *NumThreads,
		Isolated:      *Isolated,
	}
	if err := cfg.Validate(); err != nil {
		pterm.Error.Printf("%s\n", err)
		fmt.Println()
		usage(1)
	}

	pterm.Info.Printf("Starting words: %s\n", strings.Join(words, ", "))
	pterm.Debug.Printf("Joiners: %q\n", cfg.Joiners)
	pterm.Debug.Printf("Numbers: %q\n", cfg.Numbers)
	pterm.Debug.Printf("Symbols: %q\n", cfg.Symbols)
	pterm.Debug.Printf("Years: %q\n", cfg.Years)
	pterm.Debug.Printf("Cases: %v\n", cfg.Cases)
	pterm.Debug.Printf("Masks: %q\n", cfg.Masks)
	pterm.Debug.Printf("Leet map: %v (max %d at once)\n", cfg.Leet, cfg.LeetMax)

	var sinks []sink.Sink
	if *OutputPath != "" {
		fs, err := sink.NewFile(*OutputPath, *Force)
		if err != nil {
			pterm.Error.Printf("%s\n", err)
			os.Exit(2)
		}
		pterm.Info.Printf("Writing: %s\n", *OutputPath)
		sinks = append(sinks, fs)
	}
	if *Show {
		sinks = append(sinks, sink.NewConsole())
	}

	var out sink.Sink
	switch len(sinks) {
	case 0:
		pterm.Warning.Printf("Neither -o nor -s given; generating and counting only\n")
		out = sink.Discard()
	case 1:
		out = sinks[0]
	default:
		out = sink.Multi(sinks...)
	}

	var prog gen.Progress
	var reporter *progressReporter
	if *ShowProgress {
		reporter = newProgress(*MaxCount)
		prog = reporter
	}

	count, runErr := gen.Run(ctx, cfg, out, prog)

	if reporter != nil {
		reporter.Stop()
		fmt.Fprint(os.Stderr, "\033[0m")
	}

	closeErr := out.Close()

	if runErr != nil {
		pterm.Error.Printf("%s\n", runErr)
		os.Exit(1)
	}
	if closeErr != nil {
		pterm.Error.Printf("%s\n", closeErr)
		os.Exit(1)
	}
	if ctx.Err() != nil {
		pterm.Warning.Printf("Interrupted after %d line(s); partial output kept.\n", count)
		os.Exit(130)
	}

	pterm.Success.Printf("Done. Generated %d line(s).\n", count)
}
