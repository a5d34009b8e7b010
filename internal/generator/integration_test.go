package generator

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mcncl/goadf/internal/analyzer"
	"github.com/mcncl/goadf/internal/parser"
	"github.com/mcncl/goadf/pkg/adf"
)

func TestIntegration_SamplesRoundTrip(t *testing.T) {
	g := NewGenerator()
	for _, name := range SampleKinds() {
		t.Run(name, func(t *testing.T) {
			kind, err := ParseSampleKind(name)
			require.NoError(t, err)
			doc := g.Sample(kind)

			// Generator -> Encoder -> Parser -> Decoder
			value, err := parser.ParseString(adf.EncodeText(doc))
			require.NoError(t, err)

			decoded, err := adf.DecodeValue(value)
			require.NoError(t, err)

			if diff := cmp.Diff(adf.Node(doc), decoded, cmpopts.EquateEmpty()); diff != "" {
				t.Errorf("sample %s changed in round trip (-want +got):\n%s", name, diff)
			}
		})
	}
}

func TestIntegration_FullSampleIsClean(t *testing.T) {
	stats := analyzer.NewAnalyzer().Analyze(NewGenerator().Sample(SampleFull))

	assert.Empty(t, stats.Warnings)
	assert.Equal(t, len(adf.NodeKinds()), len(stats.Nodes))
	assert.Equal(t, len(adf.MarkKinds()), len(stats.Marks))
}
