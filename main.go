package main

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"
	"text/tabwriter"

	"github.com/alecthomas/kong"
	"github.com/sirupsen/logrus"
	"github.com/tidwall/gjson"

	"github.com/mcncl/goadf/internal/analyzer"
	"github.com/mcncl/goadf/internal/config"
	"github.com/mcncl/goadf/internal/errors"
	"github.com/mcncl/goadf/internal/formatter"
	"github.com/mcncl/goadf/internal/generator"
	"github.com/mcncl/goadf/internal/parser"
	"github.com/mcncl/goadf/pkg/adf"
)

// CLI defines the command-line interface
var CLI struct {
	Input       string           `help:"Path to input JSON file. If not specified, reads from stdin." short:"i" type:"path"`
	Output      string           `help:"Path to output file. If not specified, writes to stdout." short:"o" type:"path"`
	Path        string           `help:"gjson path selecting the ADF document inside a larger payload, e.g. fields.description." short:"p"`
	Config      string           `help:"Path to a config file. Defaults to the nearest .goadf.yml." short:"c" type:"path"`
	LogLevel    string           `help:"Log level (trace, debug, info, warn, error)." name:"log-level"`
	Debug       bool             `help:"Enable debug logging." short:"d"`
	Verbose     bool             `help:"Enable info logging."`
	Indent      string           `help:"Indentation for JSON output. Compact when empty."`
	EscapeHTML  bool             `help:"Escape <, > and & in JSON output." name:"escape-html"`
	Interactive bool             `help:"Read the document interactively, finishing with Ctrl+D." short:"I"`
	Version     kong.VersionFlag `help:"Show version information." short:"v"`

	Decode  DecodeCmd  `cmd:"" default:"withargs" help:"Decode a document and report whether it is valid."`
	Fmt     FmtCmd     `cmd:"" help:"Decode a document and print its canonical encoding."`
	Inspect InspectCmd `cmd:"" help:"Print node and mark statistics for a document."`
	Sample  SampleCmd  `cmd:"" help:"Print a sample document."`
}

// Context holds the runtime context shared by every command
type Context struct {
	Config *config.Config
	Logger *logrus.Logger
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// Version information
const (
	Version = "0.1.0"
)

func main() {
	cli := kong.Must(&CLI,
		kong.Name("goadf"),
		kong.Description("Decode, validate and re-encode Atlassian Document Format documents"),
		kong.UsageOnError(),
		kong.Vars{"version": "goadf version " + Version},
	)

	kctx, err := cli.Parse(os.Args[1:])
	if err != nil {
		// kong.UsageOnError has already printed usage
		fmt.Fprintf(os.Stderr, "%v\n", err)
		os.Exit(1)
	}

	ctx, err := newContext()
	if err == nil {
		err = kctx.Run(ctx)
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "%s\n", errors.UserFriendlyError(err))
		fmt.Fprintf(os.Stderr, "\nFor help, run: goadf --help\n")
		os.Exit(1)
	}
}

// newContext loads configuration and sets up logging from the global flags
func newContext() (*Context, error) {
	configPath := CLI.Config
	if configPath == "" {
		configPath = config.FindConfigFile()
	}

	cfg, err := config.LoadConfigWithCLI(configPath, cliOverrides())
	if err != nil {
		return nil, errors.NewConfigError("failed to load configuration", err)
	}

	ctx := &Context{
		Config: cfg,
		Logger: newLogger(cfg, os.Stderr),
		Stdin:  os.Stdin,
		Stdout: os.Stdout,
		Stderr: os.Stderr,
	}
	if configPath != "" {
		ctx.Logger.WithField("config", configPath).Debug("loaded configuration")
	}
	return ctx, nil
}

// cliOverrides collects the global flags that take precedence over the config file
func cliOverrides() config.CLIOverrides {
	return config.CLIOverrides{
		Path:       CLI.Path,
		Indent:     CLI.Indent,
		EscapeHTML: CLI.EscapeHTML,
		LogLevel:   CLI.LogLevel,
		Debug:      CLI.Debug,
		Verbose:    CLI.Verbose,
	}
}

func newLogger(cfg *config.Config, out io.Writer) *logrus.Logger {
	logger := logrus.New()
	logger.SetOutput(out)
	logger.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})
	logger.SetLevel(cfg.LogLevel())
	return logger
}

// DecodeCmd decodes a document and reports the result
type DecodeCmd struct {
	Dump bool `help:"Print the decoded tree instead of a summary."`
}

func (c *DecodeCmd) Run(ctx *Context) error {
	node, err := decodeInput(ctx)
	if err != nil {
		return err
	}

	if c.Dump {
		return writeOutput(ctx, formatter.NewFormatter().Dump(node))
	}

	count := 0
	_ = adf.Walk(node, func(adf.Node, int) error {
		count++
		return nil
	})
	return writeOutput(ctx, fmt.Sprintf("valid %s: %d nodes\n", node.Kind(), count))
}

// FmtCmd re-encodes a document canonically
type FmtCmd struct{}

func (c *FmtCmd) Run(ctx *Context) error {
	node, err := decodeInput(ctx)
	if err != nil {
		return err
	}

	text, err := outputFormatter(ctx.Config).Format(adf.Encode(node))
	if err != nil {
		return err
	}
	return writeOutput(ctx, text)
}

// InspectCmd prints statistics about a document
type InspectCmd struct {
	JSON bool `help:"Print statistics as JSON."`
}

func (c *InspectCmd) Run(ctx *Context) error {
	node, err := decodeInput(ctx)
	if err != nil {
		return err
	}

	a := analyzer.NewAnalyzerWithConfig(ctx.Config)
	stats := a.Analyze(node)
	for _, w := range stats.Warnings {
		ctx.Logger.Warn(w)
	}

	if c.JSON {
		text, err := outputFormatter(ctx.Config).Format(stats)
		if err != nil {
			return err
		}
		return writeOutput(ctx, text)
	}

	var b strings.Builder
	fmt.Fprintf(&b, "Root: %s\nNodes: %d\nMax depth: %d\nText length: %d\n\n",
		ctx.Config.KindLabel(string(node.Kind())), stats.TotalNodes, stats.MaxDepth, stats.TextLength)

	tw := tabwriter.NewWriter(&b, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "KIND\tTYPE\tCOUNT")
	for _, row := range a.Report(stats) {
		group := "node"
		if row.Mark {
			group = "mark"
		}
		fmt.Fprintf(tw, "%s\t%s\t%d\n", row.Label, group, row.Count)
	}
	if err := tw.Flush(); err != nil {
		return errors.NewOutputError("failed to render report", err)
	}

	if len(stats.Warnings) > 0 {
		b.WriteString("\nWarnings:\n")
		for _, w := range stats.Warnings {
			fmt.Fprintf(&b, "  - %s\n", w)
		}
	}
	return writeOutput(ctx, b.String())
}

// SampleCmd prints one of the built-in sample documents
type SampleCmd struct {
	Kind string `help:"Which sample to print." enum:"minimal,full" default:"minimal" short:"k"`
	Dump bool   `help:"Print the typed tree instead of JSON."`
}

func (c *SampleCmd) Run(ctx *Context) error {
	kind, err := generator.ParseSampleKind(c.Kind)
	if err != nil {
		return errors.NewInputError("invalid sample", err)
	}
	doc := generator.NewGenerator().Sample(kind)

	if c.Dump {
		return writeOutput(ctx, formatter.NewFormatter().Dump(doc))
	}

	text, err := outputFormatter(ctx.Config).Format(adf.Encode(doc))
	if err != nil {
		return err
	}
	return writeOutput(ctx, text)
}

// outputFormatter builds a formatter from the merged output options
func outputFormatter(cfg *config.Config) *formatter.Formatter {
	return &formatter.Formatter{
		Indent:     cfg.Output.Indent,
		EscapeHTML: cfg.Output.EscapeHTML,
	}
}

// decodeInput reads the input, applies the configured path and decodes it
func decodeInput(ctx *Context) (adf.Node, error) {
	raw, err := readInput(ctx)
	if err != nil {
		return nil, err
	}

	raw, err = selectDocument(raw, ctx.Config.Input.Path)
	if err != nil {
		return nil, err
	}

	ctx.Logger.WithFields(logrus.Fields{
		"bytes": len(raw),
		"path":  ctx.Config.Input.Path,
	}).Debug("decoding document")

	node, err := adf.DecodeText(raw)
	if err != nil {
		return nil, errors.NewDecodeError("invalid ADF document", err)
	}

	ctx.Logger.WithField("root", node.Kind()).Info("document decoded")
	return node, nil
}

// selectDocument extracts the value at path from raw. Some APIs deliver ADF
// as a JSON string; such a string is unwrapped. Invalid JSON is passed through
// so the decoder reports the syntax error.
func selectDocument(raw, path string) (string, error) {
	if path == "" || !gjson.Valid(raw) {
		return raw, nil
	}

	result := gjson.Get(raw, path)
	if !result.Exists() {
		return "", errors.NewInputError(fmt.Sprintf("path '%s' matched nothing", path), errors.ErrPathNotFound)
	}
	if result.Type == gjson.String {
		return result.Str, nil
	}
	return result.Raw, nil
}

// readInput reads JSON from file or stdin
func readInput(ctx *Context) (string, error) {
	if CLI.Input != "" {
		data, err := parser.ReadFile(CLI.Input)
		if err != nil {
			return "", err
		}
		return string(data), nil
	}

	if f, ok := ctx.Stdin.(*os.File); ok {
		stdinInfo, err := f.Stat()
		if err != nil {
			return "", errors.NewInputError("failed to access stdin", err)
		}
		if (stdinInfo.Mode() & os.ModeCharDevice) != 0 {
			// Terminal is interactive (not piped)
			if CLI.Interactive {
				return readInteractiveInput(ctx)
			}
			return "", errors.NewInputError("no input provided", errors.ErrNoInput)
		}
	}

	data, err := io.ReadAll(ctx.Stdin)
	if err != nil {
		return "", errors.NewInputError("failed to read from stdin", err)
	}
	if len(data) == 0 {
		return "", errors.NewInputError("empty input received from stdin", errors.ErrEmptyInput)
	}
	return string(data), nil
}

// writeOutput writes text to the output file or stdout
func writeOutput(ctx *Context, text string) error {
	if CLI.Output != "" {
		if err := os.WriteFile(CLI.Output, []byte(text), 0o644); err != nil {
			return errors.NewOutputError(fmt.Sprintf("failed to write to file '%s'", CLI.Output), err)
		}
		fmt.Fprintf(ctx.Stderr, "Output written to %s\n", CLI.Output)
		return nil
	}

	if _, err := io.WriteString(ctx.Stdout, text); err != nil {
		return errors.NewOutputError("failed to write to stdout", err)
	}
	return nil
}

// readInteractiveInput lets users paste a document and finish with Ctrl+D (EOF)
func readInteractiveInput(ctx *Context) (string, error) {
	fmt.Fprintln(ctx.Stderr, "goadf interactive mode")
	fmt.Fprintln(ctx.Stderr, "Paste your ADF JSON below and press Ctrl+D (or Ctrl+Z on Windows) when done:")

	reader := bufio.NewReader(ctx.Stdin)
	var jsonBuilder strings.Builder

	for {
		line, err := reader.ReadString('\n')
		jsonBuilder.WriteString(line)
		if err == io.EOF {
			break
		}
		if err != nil {
			return "", errors.NewInputError("error reading input", err)
		}
	}

	jsonData := jsonBuilder.String()
	if strings.TrimSpace(jsonData) == "" {
		return "", errors.NewInputError("empty input received", errors.ErrEmptyInput)
	}

	fmt.Fprintln(ctx.Stderr, "\nProcessing document...")
	return jsonData, nil
}
