package generator

import (
	"fmt"
	"sort"
	"strings"

	"github.com/mcncl/goadf/pkg/adf"
)

// SampleKind selects one of the built-in sample documents
type SampleKind string

const (
	// SampleMinimal is a single "Hello world" paragraph
	SampleMinimal SampleKind = "minimal"
	// SampleFull uses every node and mark kind at least once
	SampleFull SampleKind = "full"
)

// Generator is responsible for building sample ADF documents
type Generator struct{}

// NewGenerator creates a new Generator instance
func NewGenerator() *Generator {
	return &Generator{}
}

// SampleKinds lists the accepted sample names in sorted order
func SampleKinds() []string {
	kinds := []string{string(SampleMinimal), string(SampleFull)}
	sort.Strings(kinds)
	return kinds
}

// ParseSampleKind validates a sample name
func ParseSampleKind(name string) (SampleKind, error) {
	switch kind := SampleKind(strings.ToLower(strings.TrimSpace(name))); kind {
	case SampleMinimal, SampleFull:
		return kind, nil
	}
	return "", fmt.Errorf("unknown sample %q, expected one of: %s", name, strings.Join(SampleKinds(), ", "))
}

// Sample returns a freshly built document. Unknown kinds fall back to minimal.
func (g *Generator) Sample(kind SampleKind) *adf.Doc {
	if kind == SampleFull {
		return g.full()
	}
	return g.minimal()
}

func (g *Generator) minimal() *adf.Doc {
	return adf.NewDoc(adf.NewParagraph(adf.NewText("Hello world")))
}

func (g *Generator) full() *adf.Doc {
	text := adf.NewText
	cell := func(content ...adf.Node) *adf.TableCell {
		return &adf.TableCell{Content: []adf.Node{adf.NewParagraph(content...)}}
	}

	return adf.NewDoc(
		&adf.Heading{
			Attrs:   adf.HeadingAttrs{Level: 1, LocalID: adf.Ptr("title")},
			Content: []adf.Node{text("Release notes")},
		},
		adf.NewParagraph(
			text("Shipped by "),
			&adf.Mention{Attrs: adf.MentionAttrs{ID: "557058:f2b0c2b0", Text: adf.Ptr("@Ada"), UserType: adf.Ptr("DEFAULT")}},
			text(" on "),
			&adf.Date{Attrs: adf.DateAttrs{Timestamp: "1582152559"}},
			text(" "),
			&adf.Status{Attrs: adf.StatusAttrs{Text: "Done", Color: "green"}},
			text(" "),
			&adf.Emoji{Attrs: adf.EmojiAttrs{ShortName: ":tada:", ID: adf.Ptr("1f389"), Text: adf.Ptr("🎉")}},
			&adf.HardBreak{},
			text("bold", &adf.Strong{}),
			text(" "),
			text("italic", &adf.Em{}),
			text(" "),
			text("code", &adf.Code{}),
			text(" "),
			text("gone", &adf.Strike{}),
			text(" "),
			text("under", &adf.Underline{}),
			text(" H"),
			text("2", &adf.SubSup{Attrs: adf.SubSupAttrs{Type: adf.Sub}}),
			text("O x"),
			text("2", &adf.SubSup{Attrs: adf.SubSupAttrs{Type: adf.Sup}}),
			text(" "),
			text("colour", &adf.TextColor{Attrs: adf.ColorAttrs{Color: "#97a0af"}}),
			text(" "),
			text("highlight", &adf.BackgroundColor{Attrs: adf.ColorAttrs{Color: "#fedec8"}}),
			text(" "),
			text("docs", &adf.Link{Attrs: adf.LinkAttrs{Href: "https://developer.atlassian.com", Title: adf.Ptr("ADF")}}),
			text(" "),
			&adf.InlineCard{Attrs: adf.CardAttrs{URL: adf.Ptr("https://example.com/issue/1")}},
		),
		&adf.Blockquote{Content: []adf.Node{adf.NewParagraph(text("Quoted"))}},
		&adf.BulletList{Content: []adf.Node{
			&adf.ListItem{Content: []adf.Node{adf.NewParagraph(text("one"))}},
			&adf.ListItem{Content: []adf.Node{adf.NewParagraph(text("two"))}},
		}},
		&adf.OrderedList{
			Attrs:   &adf.OrderedListAttrs{Order: 3},
			Content: []adf.Node{&adf.ListItem{Content: []adf.Node{adf.NewParagraph(text("three"))}}},
		},
		adf.NewCodeBlock("go", "fmt.Println(\"hi\")"),
		&adf.Panel{Attrs: adf.PanelAttrs{PanelType: "info"}, Content: []adf.Node{adf.NewParagraph(text("Heads up"))}},
		&adf.Rule{},
		&adf.Expand{
			Attrs: adf.ExpandAttrs{Title: "Details"},
			Content: []adf.Node{
				&adf.NestedExpand{Attrs: adf.ExpandAttrs{Title: "More"}, Content: []adf.Node{adf.NewParagraph(text("Hidden"))}},
			},
		},
		&adf.MediaSingle{
			Attrs: adf.MediaSingleAttrs{Layout: "center", Width: adf.Ptr(float32(50)), WidthType: adf.Ptr("percentage")},
			Content: []adf.Node{
				&adf.Media{Attrs: adf.MediaAttrs{MediaType: "file", ID: "6e7c7f2c", Collection: "attachments", Width: adf.Ptr(uint32(640)), Height: adf.Ptr(uint32(480))}},
			},
		},
		&adf.MediaGroup{Content: []adf.Node{
			&adf.Media{Attrs: adf.MediaAttrs{MediaType: "link", ID: "b1c9", Collection: "attachments", OccurrenceKey: adf.Ptr("k1")}},
		}},
		&adf.Table{
			Attrs: &adf.TableAttrs{IsNumberColumnEnabled: adf.Ptr(false), Layout: adf.Ptr("default")},
			Content: []adf.Node{
				&adf.TableRow{Content: []adf.Node{
					&adf.TableHeader{Attrs: &adf.TableCellAttrs{Colwidth: &[]uint16{120}}, Content: []adf.Node{adf.NewParagraph(text("Key"))}},
					&adf.TableHeader{Content: []adf.Node{adf.NewParagraph(text("Value"))}},
				}},
				&adf.TableRow{Content: []adf.Node{
					cell(text("version")),
					cell(text("1")),
				}},
			},
		},
		&adf.TaskList{Attrs: adf.LocalIDAttrs{LocalID: "tasks"}, Content: []adf.Node{
			&adf.TaskItem{Attrs: adf.ItemStateAttrs{LocalID: "t1", State: "DONE"}, Content: []adf.Node{text("Write notes")}},
		}},
		&adf.DecisionList{Attrs: adf.LocalIDAttrs{LocalID: "decisions"}, Content: []adf.Node{
			&adf.DecisionItem{Attrs: adf.ItemStateAttrs{LocalID: "d1", State: "DECIDED"}, Content: []adf.Node{text("Ship it")}},
		}},
		&adf.LayoutSection{Content: []adf.Node{
			&adf.LayoutColumn{Attrs: adf.LayoutColumnAttrs{Width: 50}, Content: []adf.Node{adf.NewParagraph(text("Left"))}},
			&adf.LayoutColumn{Attrs: adf.LayoutColumnAttrs{Width: 50}, Content: []adf.Node{
				adf.NewParagraph(&adf.Placeholder{Attrs: adf.PlaceholderAttrs{Text: "Right"}}),
			}},
		}},
		&adf.BlockCard{Attrs: adf.CardAttrs{URL: adf.Ptr("https://example.com/page")}},
	)
}
