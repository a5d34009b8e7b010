package main

import (
	"bytes"
	"encoding/json"
	stderrors "errors"
	"io"
	"os"
	"strings"
	"testing"

	"github.com/sirupsen/logrus"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/goadf/internal/config"
	"github.com/mcncl/goadf/internal/errors"
	"github.com/mcncl/goadf/pkg/adf"
)

const helloDoc = `{"type":"doc","version":1,"content":[{"type":"paragraph","content":[{"type":"text","text":"Hello world"}]}]}`

// testContext builds a Context reading stdin from input and capturing output
func testContext(input string) (*Context, *bytes.Buffer, *bytes.Buffer) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cfg := config.NewConfig()
	return &Context{
		Config: cfg,
		Logger: newLogger(cfg, io.Discard),
		Stdin:  strings.NewReader(input),
		Stdout: stdout,
		Stderr: stderr,
	}, stdout, stderr
}

func writeTempInput(t *testing.T, content string) string {
	t.Helper()
	tmpFile, err := os.CreateTemp("", "test_input_*.json")
	require.NoError(t, err)
	t.Cleanup(func() { _ = os.Remove(tmpFile.Name()) })

	_, err = tmpFile.WriteString(content)
	require.NoError(t, err)
	_ = tmpFile.Close()
	return tmpFile.Name()
}

func TestDecode_Summary(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	ctx, stdout, _ := testContext(helloDoc)
	require.NoError(t, (&DecodeCmd{}).Run(ctx))
	assert.Equal(t, "valid doc: 3 nodes\n", stdout.String())
}

func TestDecode_Dump(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = writeTempInput(t, helloDoc)

	ctx, stdout, _ := testContext("")
	require.NoError(t, (&DecodeCmd{Dump: true}).Run(ctx))

	out := stdout.String()
	assert.Contains(t, out, "(*adf.Doc)")
	assert.Contains(t, out, `"Hello world"`)
}

func TestDecode_InvalidDocument(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	ctx, stdout, _ := testContext(`{"type":"doc","version":1,"content":[{"type":"heading","content":[]}]}`)
	err := (&DecodeCmd{}).Run(ctx)
	require.Error(t, err)
	assert.Empty(t, stdout.String())

	assert.True(t, stderrors.Is(err, adf.ErrMissingField))
	assert.Equal(t,
		`Document error: invalid ADF document: adf: heading: missing field "attrs" at doc.content[0].heading.attrs`,
		errors.UserFriendlyError(err))
}

func TestDecode_MalformedJSON(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = writeTempInput(t, `{"invalid": json}`)

	ctx, _, _ := testContext("")
	err := (&DecodeCmd{}).Run(ctx)
	require.Error(t, err)
	assert.True(t, stderrors.Is(err, adf.ErrMalformedInput))
	assert.True(t, stderrors.Is(err, errors.ErrInvalidJSON))
}

func TestFmt_Canonical(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	input := `{
		"version": 1,
		"type": "doc",
		"content": [{"type": "text", "text": "a < b", "marks": []}]
	}`
	ctx, stdout, _ := testContext(input)
	require.NoError(t, (&FmtCmd{}).Run(ctx))
	assert.Equal(t, `{"content":[{"text":"a < b","type":"text"}],"type":"doc","version":1}`+"\n", stdout.String())
}

func TestFmt_IndentFromConfig(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	ctx, stdout, _ := testContext(`{"type":"rule"}`)
	ctx.Config.Output.Indent = "    "
	require.NoError(t, (&FmtCmd{}).Run(ctx))
	assert.Equal(t, "{\n    \"type\": \"rule\"\n}\n", stdout.String())
}

func TestFmt_EscapeHTML(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	ctx, stdout, _ := testContext(`{"type":"text","text":"<b>"}`)
	ctx.Config.Output.EscapeHTML = true
	require.NoError(t, (&FmtCmd{}).Run(ctx))
	assert.Equal(t, `{"text":"\u003cb\u003e","type":"text"}`+"\n", stdout.String())
}

func TestCLIOverrides_FlagsOverConfig(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Path = "fields.description"
	CLI.Indent = "\t"
	CLI.EscapeHTML = true
	CLI.Verbose = true

	overrides := cliOverrides()
	assert.Equal(t, config.CLIOverrides{
		Path:       "fields.description",
		Indent:     "\t",
		EscapeHTML: true,
		Verbose:    true,
	}, overrides)

	cfg, err := config.LoadConfigWithCLI("", overrides)
	require.NoError(t, err)
	assert.Equal(t, logrus.InfoLevel, newLogger(cfg, io.Discard).GetLevel())

	ctx, stdout, _ := testContext(`{"type":"text","text":"<b>"}`)
	ctx.Config = cfg
	ctx.Config.Input.Path = ""
	CLI.Input = ""
	require.NoError(t, (&FmtCmd{}).Run(ctx))
	assert.Equal(t, "{\n\t\"text\": \"\\u003cb\\u003e\",\n\t\"type\": \"text\"\n}\n", stdout.String())
}

func TestFmt_WithPath(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = writeTempInput(t, `{"key":"PROJ-1","fields":{"summary":"x","description":`+helloDoc+`}}`)

	ctx, stdout, _ := testContext("")
	ctx.Config.Input.Path = "fields.description"
	require.NoError(t, (&FmtCmd{}).Run(ctx))

	doc, err := adf.DecodeDoc(stdout.String())
	require.NoError(t, err)
	assert.Equal(t, adf.EncodeText(doc)+"\n", stdout.String())
}

func TestSelectDocument(t *testing.T) {
	raw := `{"fields":{"description":{"type":"rule"},"embedded":"{\"type\":\"rule\"}","empty":null}}`

	selected, err := selectDocument(raw, "")
	require.NoError(t, err)
	assert.Equal(t, raw, selected)

	selected, err = selectDocument(raw, "fields.description")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"rule"}`, selected)

	selected, err = selectDocument(raw, "fields.embedded")
	require.NoError(t, err)
	assert.Equal(t, `{"type":"rule"}`, selected)

	selected, err = selectDocument(raw, "fields.empty")
	require.NoError(t, err)
	assert.Equal(t, "null", selected)

	_, err = selectDocument(raw, "fields.missing")
	assert.True(t, stderrors.Is(err, errors.ErrPathNotFound))

	// Invalid JSON is left for the decoder to report
	selected, err = selectDocument(`{"fields":`, "fields")
	require.NoError(t, err)
	assert.Equal(t, `{"fields":`, selected)
}

func TestInspect_Text(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	ctx, stdout, _ := testContext(helloDoc)
	require.NoError(t, (&InspectCmd{}).Run(ctx))

	out := stdout.String()
	assert.Contains(t, out, "Root: Doc\n")
	assert.Contains(t, out, "Nodes: 3\n")
	assert.Contains(t, out, "Max depth: 2\n")
	assert.Contains(t, out, "Text length: 11\n")
	assert.Regexp(t, `Paragraph\s+node\s+1`, out)
	assert.NotContains(t, out, "Warnings")
}

func TestInspect_JSONWithWarnings(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	input := `{"type":"paragraph","content":[{"type":"status","attrs":{"text":"Late","color":"orange"}}]}`
	ctx, stdout, _ := testContext(input)
	logs := &bytes.Buffer{}
	ctx.Logger.SetOutput(logs)
	require.NoError(t, (&InspectCmd{JSON: true}).Run(ctx))

	var stats struct {
		Nodes      map[string]int `json:"nodes"`
		TotalNodes int            `json:"totalNodes"`
		Warnings   []string       `json:"warnings"`
	}
	require.NoError(t, json.Unmarshal(stdout.Bytes(), &stats))
	assert.Equal(t, map[string]int{"paragraph": 1, "status": 1}, stats.Nodes)
	assert.Equal(t, 2, stats.TotalNodes)
	require.Len(t, stats.Warnings, 1)
	assert.Contains(t, logs.String(), "level=warning")
}

func TestSample_Minimal(t *testing.T) {
	ctx, stdout, _ := testContext("")
	require.NoError(t, (&SampleCmd{Kind: "minimal"}).Run(ctx))
	assert.Equal(t, mustReencode(t, helloDoc)+"\n", stdout.String())
}

func TestSample_FullDecodes(t *testing.T) {
	ctx, stdout, _ := testContext("")
	ctx.Config.Output.Indent = "  "
	require.NoError(t, (&SampleCmd{Kind: "full"}).Run(ctx))

	_, err := adf.DecodeDoc(stdout.String())
	require.NoError(t, err)
}

func TestSample_UnknownKind(t *testing.T) {
	ctx, _, _ := testContext("")
	err := (&SampleCmd{Kind: "nope"}).Run(ctx)
	require.Error(t, err)
	assert.Contains(t, errors.UserFriendlyError(err), "Input error: invalid sample")
}

func TestReadInput_EmptyFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = writeTempInput(t, "")

	ctx, _, _ := testContext("")
	_, err := readInput(ctx)
	assert.True(t, stderrors.Is(err, errors.ErrFileEmpty))
}

func TestReadInput_NonExistentFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = "/non/existent/file.json"

	ctx, _, _ := testContext("")
	_, err := readInput(ctx)
	assert.True(t, stderrors.Is(err, errors.ErrFileNotFound))
}

func TestReadInput_EmptyStdin(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Input = ""

	ctx, _, _ := testContext("")
	_, err := readInput(ctx)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyInput))
}

func TestWriteOutput_ToFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	tmpFile, err := os.CreateTemp("", "test_write_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpFile.Name()) }()
	_ = tmpFile.Close()

	CLI.Output = tmpFile.Name()

	ctx, stdout, stderr := testContext("")
	require.NoError(t, writeOutput(ctx, helloDoc))

	content, err := os.ReadFile(tmpFile.Name())
	require.NoError(t, err)
	assert.Equal(t, helloDoc, string(content))
	assert.Empty(t, stdout.String())
	assert.Contains(t, stderr.String(), "Output written to")
}

func TestWriteOutput_FileError(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()
	CLI.Output = "/non/existent/dir/output.json"

	ctx, _, _ := testContext("")
	err := writeOutput(ctx, "{}")
	require.Error(t, err)
	assert.Contains(t, errors.UserFriendlyError(err), "Output error: failed to write to file")
}

func TestReadInteractiveInput(t *testing.T) {
	ctx, _, stderr := testContext(helloDoc)
	jsonData, err := readInteractiveInput(ctx)
	require.NoError(t, err)
	assert.Equal(t, helloDoc, jsonData)
	assert.Contains(t, stderr.String(), "interactive mode")

	ctx, _, _ = testContext("  \n")
	_, err = readInteractiveInput(ctx)
	assert.True(t, stderrors.Is(err, errors.ErrEmptyInput))
}

func TestNewLogger(t *testing.T) {
	cfg := config.NewConfig()
	cfg.Log.Level = "debug"
	out := &bytes.Buffer{}

	logger := newLogger(cfg, out)
	assert.Equal(t, logrus.DebugLevel, logger.GetLevel())

	logger.WithField("root", "doc").Debug("document decoded")
	assert.Contains(t, out.String(), `msg="document decoded"`)
	assert.Contains(t, out.String(), "root=doc")
}

func TestFullPipeline_FileToFile(t *testing.T) {
	originalCLI := CLI
	defer func() { CLI = originalCLI }()

	CLI.Input = writeTempInput(t, helloDoc)
	tmpOutput, err := os.CreateTemp("", "integration_output_*.json")
	require.NoError(t, err)
	defer func() { _ = os.Remove(tmpOutput.Name()) }()
	_ = tmpOutput.Close()
	CLI.Output = tmpOutput.Name()

	ctx, _, _ := testContext("")
	require.NoError(t, (&FmtCmd{}).Run(ctx))

	content, err := os.ReadFile(tmpOutput.Name())
	require.NoError(t, err)
	doc, err := adf.DecodeDoc(string(content))
	require.NoError(t, err)
	assert.Len(t, doc.Content, 1)
}

func mustReencode(t *testing.T, text string) string {
	t.Helper()
	n, err := adf.DecodeText(text)
	require.NoError(t, err)
	return adf.EncodeText(n)
}
