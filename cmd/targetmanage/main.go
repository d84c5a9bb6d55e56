// Package main is the targetmanage CLI entry point.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"

	"go.uber.org/zap"

	"github.com/dickey1981/targetmanage/internal/cli"
	"github.com/dickey1981/targetmanage/internal/config"
	"github.com/dickey1981/targetmanage/internal/engine"
	"github.com/dickey1981/targetmanage/internal/models"
	"github.com/dickey1981/targetmanage/pkg/utils"
)

var version = "dev"

func main() {
	if len(os.Args) < 2 {
		printUsage()
		os.Exit(1)
	}
	command := os.Args[1]
	switch command {
	case "analyze":
		runAnalyze()
	case "parse":
		runParse()
	case "validate":
		runValidate()
	case "match":
		runMatch()
	case "process":
		runProcess()
	case "version", "--version", "-v":
		fmt.Printf("targetmanage version %s\n", version)
	case "help", "--help", "-h":
		printUsage()
	default:
		fmt.Printf("Unknown command: %s\n", command)
		printUsage()
		os.Exit(1)
	}
}

// commonFlags registers the flags every command shares.
func commonFlags(fs *flag.FlagSet) (configPath *string, jsonOut *bool, debug *bool) {
	configPath = fs.String("config", "", "config file path (defaults apply when empty)")
	jsonOut = fs.Bool("json", false, "emit JSON instead of text")
	debug = fs.Bool("debug", false, "enable debug logging")
	return
}

func setup(configPath string, debug bool) (*engine.Engine, *zap.Logger) {
	cfg := config.Default()
	if configPath != "" {
		loaded, err := config.Load(configPath)
		if err != nil {
			fmt.Printf("Failed to load config: %v\n", err)
			os.Exit(1)
		}
		cfg = loaded
	}
	logger, err := utils.NewLogger(cfg.Debug || debug)
	if err != nil {
		fmt.Printf("Failed to create logger: %v\n", err)
		os.Exit(1)
	}
	return engine.NewEngine(cfg, engine.WithLogger(logger)), logger
}

func format(jsonOut bool) cli.OutputFormat {
	if jsonOut {
		return cli.OutputJSON
	}
	return cli.OutputText
}

// textArg joins the remaining arguments into the input text, or exits with
// usage when none were given.
func textArg(fs *flag.FlagSet, command string) string {
	text := strings.TrimSpace(strings.Join(fs.Args(), " "))
	if text == "" {
		fmt.Printf("Usage: targetmanage %s [flags] <text>\n", command)
		os.Exit(1)
	}
	return text
}

func runAnalyze() {
	fs := flag.NewFlagSet("analyze", flag.ExitOnError)
	configPath, jsonOut, debug := commonFlags(fs)
	_ = fs.Parse(os.Args[2:])
	text := textArg(fs, "analyze")

	eng, logger := setup(*configPath, *debug)
	defer logger.Sync()

	analysis := eng.Analyze(text)
	if err := cli.WriteAnalysis(os.Stdout, analysis, format(*jsonOut)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func runParse() {
	fs := flag.NewFlagSet("parse", flag.ExitOnError)
	configPath, jsonOut, debug := commonFlags(fs)
	_ = fs.Parse(os.Args[2:])
	text := textArg(fs, "parse")

	eng, logger := setup(*configPath, *debug)
	defer logger.Sync()

	draft, hints := eng.ParseGoal(text)
	if err := cli.WriteDraft(os.Stdout, draft, hints, format(*jsonOut)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func runValidate() {
	fs := flag.NewFlagSet("validate", flag.ExitOnError)
	configPath, jsonOut, debug := commonFlags(fs)
	draftPath := fs.String("draft", "", "JSON goal draft file (when empty, the text argument is parsed first)")
	_ = fs.Parse(os.Args[2:])

	eng, logger := setup(*configPath, *debug)
	defer logger.Sync()

	var draft *models.GoalDraft
	if *draftPath != "" {
		draft = loadDraft(*draftPath)
	} else {
		draft, _ = eng.ParseGoal(textArg(fs, "validate"))
	}

	result := eng.ValidateGoal(draft)
	if err := cli.WriteValidation(os.Stdout, result, format(*jsonOut)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
	if !result.IsValid {
		os.Exit(2)
	}
}

func runMatch() {
	fs := flag.NewFlagSet("match", flag.ExitOnError)
	configPath, jsonOut, debug := commonFlags(fs)
	goalsPath := fs.String("goals", "", "JSON file with candidate goals")
	_ = fs.Parse(os.Args[2:])
	text := textArg(fs, "match")

	eng, logger := setup(*configPath, *debug)
	defer logger.Sync()

	match := eng.MatchGoal(text, loadCandidates(*goalsPath))
	if err := cli.WriteMatch(os.Stdout, match, format(*jsonOut)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func runProcess() {
	fs := flag.NewFlagSet("process", flag.ExitOnError)
	configPath, jsonOut, debug := commonFlags(fs)
	goalsPath := fs.String("goals", "", "JSON file with candidate goals")
	_ = fs.Parse(os.Args[2:])
	text := textArg(fs, "process")

	eng, logger := setup(*configPath, *debug)
	defer logger.Sync()

	outcome, err := eng.ProcessRecord(text, loadCandidates(*goalsPath))
	if err != nil {
		fmt.Printf("Failed to process record: %v\n", err)
		os.Exit(1)
	}
	if err := cli.WriteOutcome(os.Stdout, outcome, format(*jsonOut)); err != nil {
		fmt.Printf("Failed to write output: %v\n", err)
		os.Exit(1)
	}
}

func loadCandidates(path string) []models.GoalCandidate {
	if path == "" {
		fmt.Println("A -goals file is required.")
		os.Exit(1)
	}
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Failed to open goals file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	candidates, err := cli.ReadCandidates(f)
	if err != nil {
		fmt.Printf("Failed to read goals file: %v\n", err)
		os.Exit(1)
	}
	return candidates
}

func loadDraft(path string) *models.GoalDraft {
	f, err := os.Open(path)
	if err != nil {
		fmt.Printf("Failed to open draft file: %v\n", err)
		os.Exit(1)
	}
	defer f.Close()
	draft, err := cli.ReadDraft(f)
	if err != nil {
		fmt.Printf("Failed to read draft file: %v\n", err)
		os.Exit(1)
	}
	return draft
}

func printUsage() {
	fmt.Println(`targetmanage - goal content understanding engine

Usage:
  targetmanage analyze [flags] <text>     classify record content
  targetmanage parse [flags] <text>       parse a goal statement into a draft
  targetmanage validate [flags] <text>    parse and SMART-validate a statement
  targetmanage validate -draft f.json     SMART-validate a draft file
  targetmanage match -goals f.json <text> match content against candidate goals
  targetmanage process -goals f.json <text>
                                          analyze and match in one pass
  targetmanage version                    print version
  targetmanage help                       print this help

Flags:
  -config path   config file (yaml); built-in defaults when omitted
  -json          emit JSON instead of text
  -debug         enable debug logging`)
}
