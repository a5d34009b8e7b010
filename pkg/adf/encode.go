package adf

import (
	"bytes"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/mcncl/goadf/internal/parser"
)

// Encode converts a node tree into a generic JSON value. Absent optional fields
// are omitted rather than written as null, and empty marks are never written.
// Numbers are produced as json.Number.
//
// Encode panics if n is nil or contains a nil node or mark.
func Encode(n Node) Value {
	return encodeNode(n)
}

// EncodeText encodes a node tree as compact JSON with sorted keys. HTML
// characters are not escaped.
//
// Float attributes (MediaSingleAttrs.Width, LayoutColumnAttrs.Width) must be
// finite. Decoding never produces NaN or an infinity, so only a tree built by
// hand can violate this, and EncodeText panics when it does.
func EncodeText(n Node) string {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	if err := enc.Encode(Encode(n)); err != nil {
		// Only a NaN or infinite width can get here
		panic(fmt.Sprintf("adf: encoding %s: %v", n.Kind(), err))
	}
	return strings.TrimSuffix(buf.String(), "\n")
}

// MarshalJSON implements json.Marshaler. It has a value receiver so a Doc
// embedded by value in a larger struct is encoded as ADF too. A non-finite
// float attribute is returned as an error.
func (d Doc) MarshalJSON() ([]byte, error) {
	return json.Marshal(Encode(&d))
}

// UnmarshalJSON implements json.Unmarshaler. The input must be a doc node.
// JSON null leaves d unchanged, as with the standard library types.
func (d *Doc) UnmarshalJSON(data []byte) error {
	if string(bytes.TrimSpace(data)) == "null" {
		return nil
	}
	v, err := parser.ParseBytes(data)
	if err != nil {
		return &DecodeError{Kind: MalformedInput, Err: err}
	}
	doc, err := decodeDoc(v)
	if err != nil {
		return err
	}
	*d = *doc
	return nil
}

func encodeNode(n Node) Object {
	switch n := n.(type) {
	case *Doc:
		return Object{"type": string(KindDoc), "version": intNumber(int64(n.Version)), "content": encodeNodes(n.Content)}
	case *Blockquote:
		return withContent(KindBlockquote, n.Content)
	case *BulletList:
		return withContent(KindBulletList, n.Content)
	case *CodeBlock:
		obj := Object{"type": string(KindCodeBlock)}
		if n.Content != nil {
			obj["content"] = encodeNodes(*n.Content)
		}
		if n.Attrs != nil {
			obj["attrs"] = Object{"language": n.Attrs.Language}
		}
		return obj
	case *Date:
		return withAttrs(KindDate, Object{"timestamp": n.Attrs.Timestamp})
	case *Emoji:
		attrs := Object{"shortName": n.Attrs.ShortName}
		putString(attrs, "id", n.Attrs.ID)
		putString(attrs, "text", n.Attrs.Text)
		return withAttrs(KindEmoji, attrs)
	case *Expand:
		obj := withContent(KindExpand, n.Content)
		obj["attrs"] = Object{"title": n.Attrs.Title}
		putMarks(obj, n.Marks)
		return obj
	case *HardBreak:
		obj := Object{"type": string(KindHardBreak)}
		if n.Attrs != nil {
			obj["attrs"] = Object{"text": n.Attrs.Text}
		}
		return obj
	case *Heading:
		attrs := Object{"level": intNumber(int64(n.Attrs.Level))}
		putString(attrs, "localId", n.Attrs.LocalID)
		obj := withContent(KindHeading, n.Content)
		obj["attrs"] = attrs
		return obj
	case *InlineCard:
		return withAttrs(KindInlineCard, encodeCardAttrs(n.Attrs))
	case *BlockCard:
		return withAttrs(KindBlockCard, encodeCardAttrs(n.Attrs))
	case *ListItem:
		return withContent(KindListItem, n.Content)
	case *Media:
		return withAttrs(KindMedia, encodeMediaAttrs(n.Attrs))
	case *MediaGroup:
		return withContent(KindMediaGroup, n.Content)
	case *MediaSingle:
		attrs := Object{"layout": n.Attrs.Layout}
		if n.Attrs.Width != nil {
			attrs["width"] = floatNumber(*n.Attrs.Width)
		}
		putString(attrs, "widthType", n.Attrs.WidthType)
		obj := withContent(KindMediaSingle, n.Content)
		obj["attrs"] = attrs
		return obj
	case *Mention:
		attrs := Object{"id": n.Attrs.ID}
		putString(attrs, "text", n.Attrs.Text)
		putString(attrs, "userType", n.Attrs.UserType)
		return withAttrs(KindMention, attrs)
	case *NestedExpand:
		obj := withContent(KindNestedExpand, n.Content)
		obj["attrs"] = Object{"title": n.Attrs.Title}
		return obj
	case *OrderedList:
		obj := withContent(KindOrderedList, n.Content)
		if n.Attrs != nil {
			obj["attrs"] = Object{"order": uintNumber(uint64(n.Attrs.Order))}
		}
		return obj
	case *Panel:
		obj := withContent(KindPanel, n.Content)
		obj["attrs"] = Object{"panelType": n.Attrs.PanelType}
		return obj
	case *Paragraph:
		obj := withContent(KindParagraph, n.Content)
		if n.Attrs != nil {
			obj["attrs"] = Object{"localId": n.Attrs.LocalID}
		}
		return obj
	case *Rule:
		return Object{"type": string(KindRule)}
	case *Status:
		attrs := Object{"text": n.Attrs.Text, "color": n.Attrs.Color}
		putString(attrs, "localId", n.Attrs.LocalID)
		return withAttrs(KindStatus, attrs)
	case *Table:
		obj := withContent(KindTable, n.Content)
		if n.Attrs != nil {
			obj["attrs"] = encodeTableAttrs(*n.Attrs)
		}
		return obj
	case *TableCell:
		obj := withContent(KindTableCell, n.Content)
		if n.Attrs != nil {
			obj["attrs"] = encodeTableCellAttrs(*n.Attrs)
		}
		return obj
	case *TableHeader:
		obj := withContent(KindTableHeader, n.Content)
		if n.Attrs != nil {
			obj["attrs"] = encodeTableCellAttrs(*n.Attrs)
		}
		return obj
	case *TableRow:
		return withContent(KindTableRow, n.Content)
	case *Text:
		obj := Object{"type": string(KindText), "text": n.Text}
		putMarks(obj, n.Marks)
		return obj
	case *TaskList:
		obj := withContent(KindTaskList, n.Content)
		obj["attrs"] = Object{"localId": n.Attrs.LocalID}
		return obj
	case *TaskItem:
		obj := withContent(KindTaskItem, n.Content)
		obj["attrs"] = Object{"localId": n.Attrs.LocalID, "state": n.Attrs.State}
		return obj
	case *DecisionList:
		obj := withContent(KindDecisionList, n.Content)
		obj["attrs"] = Object{"localId": n.Attrs.LocalID}
		return obj
	case *DecisionItem:
		obj := withContent(KindDecisionItem, n.Content)
		obj["attrs"] = Object{"localId": n.Attrs.LocalID, "state": n.Attrs.State}
		return obj
	case *LayoutSection:
		return withContent(KindLayoutSection, n.Content)
	case *LayoutColumn:
		obj := withContent(KindLayoutColumn, n.Content)
		obj["attrs"] = Object{"width": floatNumber(n.Attrs.Width)}
		return obj
	case *Placeholder:
		return withAttrs(KindPlaceholder, Object{"text": n.Attrs.Text})
	}
	panic(fmt.Sprintf("adf: cannot encode node of type %T", n))
}

func encodeMark(m Mark) Object {
	switch m := m.(type) {
	case *Code, *Em, *Strike, *Strong, *Underline:
		return Object{"type": string(m.Kind())}
	case *BackgroundColor:
		return Object{"type": string(MarkBackgroundColor), "attrs": Object{"color": m.Attrs.Color}}
	case *TextColor:
		return Object{"type": string(MarkTextColor), "attrs": Object{"color": m.Attrs.Color}}
	case *Link:
		attrs := Object{"href": m.Attrs.Href}
		putString(attrs, "collection", m.Attrs.Collection)
		putString(attrs, "id", m.Attrs.ID)
		putString(attrs, "occurrenceKey", m.Attrs.OccurrenceKey)
		putString(attrs, "title", m.Attrs.Title)
		return Object{"type": string(MarkLink), "attrs": attrs}
	case *SubSup:
		return Object{"type": string(MarkSubSup), "attrs": Object{"type": string(m.Attrs.Type)}}
	}
	panic(fmt.Sprintf("adf: cannot encode mark of type %T", m))
}

// encodeNodes always returns a non-nil array so that required content is
// written as [] rather than null.
func encodeNodes(nodes []Node) Array {
	out := make(Array, 0, len(nodes))
	for _, n := range nodes {
		out = append(out, encodeNode(n))
	}
	return out
}

func withContent(kind NodeKind, content []Node) Object {
	return Object{"type": string(kind), "content": encodeNodes(content)}
}

func withAttrs(kind NodeKind, attrs Object) Object {
	return Object{"type": string(kind), "attrs": attrs}
}

func putMarks(obj Object, marks []Mark) {
	if len(marks) == 0 {
		return
	}
	out := make(Array, 0, len(marks))
	for _, m := range marks {
		out = append(out, encodeMark(m))
	}
	obj["marks"] = out
}

func putString(obj Object, key string, v *string) {
	if v != nil {
		obj[key] = *v
	}
}

func putUint16(obj Object, key string, v *uint16) {
	if v != nil {
		obj[key] = uintNumber(uint64(*v))
	}
}

func encodeCardAttrs(a CardAttrs) Object {
	attrs := Object{}
	putString(attrs, "data", a.Data)
	putString(attrs, "url", a.URL)
	return attrs
}

func encodeMediaAttrs(a MediaAttrs) Object {
	attrs := Object{"type": a.MediaType, "id": a.ID, "collection": a.Collection}
	if a.Width != nil {
		attrs["width"] = uintNumber(uint64(*a.Width))
	}
	if a.Height != nil {
		attrs["height"] = uintNumber(uint64(*a.Height))
	}
	putString(attrs, "occurrenceKey", a.OccurrenceKey)
	return attrs
}

func encodeTableAttrs(a TableAttrs) Object {
	attrs := Object{}
	putString(attrs, "displayMode", a.DisplayMode)
	if a.IsNumberColumnEnabled != nil {
		attrs["isNumberColumnEnabled"] = *a.IsNumberColumnEnabled
	}
	putString(attrs, "layout", a.Layout)
	putUint16(attrs, "width", a.Width)
	return attrs
}

func encodeTableCellAttrs(a TableCellAttrs) Object {
	attrs := Object{}
	putString(attrs, "background", a.Background)
	putUint16(attrs, "colspan", a.Colspan)
	if a.Colwidth != nil {
		widths := make(Array, 0, len(*a.Colwidth))
		for _, w := range *a.Colwidth {
			widths = append(widths, uintNumber(uint64(w)))
		}
		attrs["colwidth"] = widths
	}
	putUint16(attrs, "rowspan", a.Rowspan)
	return attrs
}
