package e2e_test

import (
	"bytes"
	"encoding/json"
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestEndToEnd_JiraIssue runs fmt over a Jira issue payload from the samples
func TestEndToEnd_JiraIssue(t *testing.T) {
	tempDir, err := os.MkdirTemp("", "goadf-e2e")
	require.NoError(t, err)
	defer os.RemoveAll(tempDir)

	issueFile := filepath.Join("..", "..", "testdata", "samples", "jira_issue.json")
	outputFile := filepath.Join(tempDir, "description.json")

	cmd := exec.Command("go", "run", "../../main.go", "fmt", "-i", issueFile, "-o", outputFile, "--path", "fields.description")
	output, err := cmd.CombinedOutput()
	require.NoError(t, err, "CLI command failed: %s", string(output))

	canonical, err := os.ReadFile(outputFile)
	require.NoError(t, err)

	// The canonical form is the selected subtree with keys sorted and no
	// insignificant whitespace
	raw, err := os.ReadFile(issueFile)
	require.NoError(t, err)
	var issue struct {
		Fields struct {
			Description json.RawMessage `json:"description"`
		} `json:"fields"`
	}
	require.NoError(t, json.Unmarshal(raw, &issue))

	var want, got any
	require.NoError(t, json.Unmarshal(issue.Fields.Description, &want))
	require.NoError(t, json.Unmarshal(canonical, &got))
	assert.Equal(t, want, got, "fmt must not change the document")
	assert.NotContains(t, string(canonical), "\n  ", "output should be compact")
}

// TestEndToEnd_EverySample decodes each sample file
func TestEndToEnd_EverySample(t *testing.T) {
	files, err := filepath.Glob(filepath.Join("..", "..", "testdata", "samples", "*.json"))
	require.NoError(t, err)
	require.NotEmpty(t, files)

	for _, file := range files {
		t.Run(filepath.Base(file), func(t *testing.T) {
			args := []string{"run", "../../main.go", "decode", "-i", file}
			if strings.HasPrefix(filepath.Base(file), "jira_") {
				args = append(args, "--path", "fields.description")
			}
			output, err := exec.Command("go", args...).CombinedOutput()
			require.NoError(t, err, "CLI command failed: %s", string(output))
			assert.Contains(t, string(output), "valid ")
		})
	}
}

func TestEndToEnd_EdgeCases(t *testing.T) {
	testCases := []struct {
		name     string
		json     string
		expected string
		isError  bool
	}{
		{
			name:     "EmptyDoc",
			json:     `{"type":"doc","version":1,"content":[]}`,
			expected: `{"content":[],"type":"doc","version":1}`,
		},
		{
			name:     "CodeBlockWithoutContent",
			json:     `{"type":"codeBlock","attrs":{"language":"sh"}}`,
			expected: `{"attrs":{"language":"sh"},"type":"codeBlock"}`,
		},
		{
			name:     "CodeBlockEmptyContent",
			json:     `{"type":"codeBlock","content":[]}`,
			expected: `{"content":[],"type":"codeBlock"}`,
		},
		{
			name:     "EmptyMarksDropped",
			json:     `{"type":"text","text":"x","marks":[]}`,
			expected: `{"text":"x","type":"text"}`,
		},
		{
			name:     "NullOptionalDropped",
			json:     `{"type":"emoji","attrs":{"shortName":":x:","id":null}}`,
			expected: `{"attrs":{"shortName":":x:"},"type":"emoji"}`,
		},
		{
			name:     "UnicodeAndHTML",
			json:     `{"type":"text","text":"😀 <tag> & \"quote\""}`,
			expected: `{"text":"😀 <tag> & \"quote\"","type":"text"}`,
		},
		{
			name:     "LargeMediaWidth",
			json:     `{"type":"media","attrs":{"type":"file","id":"a","collection":"c","width":4294967295}}`,
			expected: `"width":4294967295`,
		},
		{
			name:     "SubSupAlias",
			json:     `{"type":"text","text":"2","marks":[{"type":"subSup","attrs":{"type":"sup"}}]}`,
			expected: `{"marks":[{"attrs":{"type":"sup"},"type":"subsup"}],"text":"2","type":"text"}`,
		},
		{
			name:     "DeeplyNested",
			json:     nestedBlockquotes(50),
			expected: `"text":"deep"`,
		},
		{
			name:    "MediaWidthOverflow",
			json:    `{"type":"media","attrs":{"type":"file","id":"a","collection":"c","width":4294967296}}`,
			isError: true,
		},
		{
			name:    "UnknownNode",
			json:    `{"type":"doc","version":1,"content":[{"type":"marquee"}]}`,
			isError: true,
		},
		{
			name:    "TrailingComma",
			json:    `{"type": "rule",}`,
			isError: true,
		},
		{
			name:    "ArrayRoot",
			json:    `[{"type": "rule"}]`,
			isError: true,
		},
		{
			name:    "NullRoot",
			json:    `null`,
			isError: true,
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			cmd := exec.Command("go", "run", "../../main.go", "fmt")
			cmd.Stdin = strings.NewReader(tc.json)
			var stdout bytes.Buffer
			cmd.Stdout = &stdout
			var stderr bytes.Buffer
			cmd.Stderr = &stderr

			err := cmd.Run()

			if tc.isError {
				assert.Error(t, err, "Expected an error for %s", tc.name)
				assert.Contains(t, stderr.String(), "error", "Expected an error message for %s", tc.name)
			} else {
				assert.NoError(t, err, "Unexpected error for %s: %s", tc.name, stderr.String())
				assert.Contains(t, stdout.String(), tc.expected, "Expected output not found for %s", tc.name)
			}
		})
	}
}

func nestedBlockquotes(depth int) string {
	inner := `{"type":"paragraph","content":[{"type":"text","text":"deep"}]}`
	for i := 0; i < depth; i++ {
		inner = fmt.Sprintf(`{"type":"blockquote","content":[%s]}`, inner)
	}
	return inner
}
