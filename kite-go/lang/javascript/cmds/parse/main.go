package main

import (
	"fmt"
	"io"
	"io/ioutil"
	"log"
	"os"
	"runtime/pprof"
	"strings"
	"time"

	arg "github.com/alexflint/go-arg"
	humanize "github.com/dustin/go-humanize"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/parser"
	"github.com/kiteco/joeyscript/kite-go/lang/javascript/scanner"
	"github.com/kiteco/joeyscript/kite-golib/status"
	"github.com/kr/pretty"
	"github.com/montanaflynn/stats"
	"github.com/pkg/errors"
)

type cmdArgs struct {
	Files      []string `arg:"positional,required" help:"javascript files to parse"`
	Repeat     uint64   `help:"parse each file repeatedly (for performance)"`
	Print      bool     `help:"print the AST"`
	Positions  bool     `help:"include node positions in tree output"`
	Format     string   `help:"AST output format: tree, json or yaml"`
	Tokens     bool     `help:"dump the tokens before parsing"`
	Trace      bool     `help:"trace parser rules as they are tried"`
	Time       bool     `help:"print the parse duration"`
	Profile    string   `help:"filename to write cpu profile"`
	Watch      bool     `help:"parse the files again whenever they change"`
	Status     bool     `help:"print scanner and parser metrics before exiting"`
	StatusJSON bool     `help:"print the metrics as JSON instead of text"`
}

func main() {
	os.Exit(run())
}

func run() int {
	args := cmdArgs{
		Repeat: 1,
		Print:  true,
		Format: formatTree,
	}
	arg.MustParse(&args)

	if err := validateFormat(args.Format); err != nil {
		log.Fatalln(err)
	}

	if args.Profile != "" {
		if !strings.HasSuffix(args.Profile, ".prof") {
			args.Profile = args.Profile + ".prof"
		}

		f, err := os.Create(args.Profile)
		if err != nil {
			log.Fatalln(err)
		}
		pprof.StartCPUProfile(f)
		defer pprof.StopCPUProfile()
	}

	opts := parser.DefaultOptions
	opts.Trace = args.Trace
	opts.TraceWriter = os.Stderr
	// repeated parses of the same source would otherwise be timing the cache
	opts.DisableCache = args.Repeat > 1

	var failed int
	for _, path := range args.Files {
		if err := parseFile(os.Stdout, path, args, opts); err != nil {
			log.Println(err)
			failed++
		}
	}

	if args.Watch {
		err := watch(args.Files, func(path string) {
			if err := parseFile(os.Stdout, path, args, opts); err != nil {
				log.Println(err)
			}
		})
		if err != nil {
			log.Println(err)
			failed++
		}
	}

	switch {
	case args.StatusJSON:
		if err := writeStatusJSON(os.Stdout); err != nil {
			log.Println(err)
		}
	case args.Status:
		if err := status.Write(os.Stdout); err != nil {
			log.Println(err)
		}
	}

	if failed > 0 {
		return 1
	}
	return 0
}

// parseFile parses the file at path and writes the requested output to w.
func parseFile(w io.Writer, path string, args cmdArgs, opts parser.Options) error {
	src, err := ioutil.ReadFile(path)
	if err != nil {
		return errors.Wrapf(err, "reading %s", path)
	}
	fmt.Fprintf(w, "%s (%s)\n", path, humanize.Bytes(uint64(len(src))))

	if args.Tokens {
		tokens, err := scanner.Tokenize(src)
		if err != nil {
			return describe(path, src, err)
		}
		pretty.Fprintf(w, "%# v\n", tokens)
	}

	var times []float64
	var result *parseResult
	for i := uint64(0); i < args.Repeat; i++ {
		begin := time.Now()
		prog, err := parser.ParseSource(src, opts)
		if err != nil {
			return describe(path, src, err)
		}
		times = append(times, float64(time.Since(begin)))
		result = &parseResult{prog: prog}
	}

	if args.Print && result != nil {
		if err := render(w, result.prog, args.Format, args.Positions); err != nil {
			return errors.Wrapf(err, "rendering %s", path)
		}
	}

	if args.Time && len(times) > 0 {
		printTimes(w, times)
	}
	return nil
}

func printTimes(w io.Writer, times []float64) {
	fmt.Fprintf(w, "Parse time:\n")
	f, _ := stats.Median(times)
	fmt.Fprintf(w, "  Median: %v\n", time.Duration(f))
	f, _ = stats.Mean(times)
	fmt.Fprintf(w, "  Mean: %v\n", time.Duration(f))
	if len(times) > 1 {
		f, _ = stats.StdDevS(times)
		fmt.Fprintf(w, "  StdDev: %v\n", time.Duration(f))
	}
	f, _ = stats.Min(times)
	fmt.Fprintf(w, "  Min: %v\n", time.Duration(f))
	f, _ = stats.Max(times)
	fmt.Fprintf(w, "  Max: %v\n", time.Duration(f))
}
