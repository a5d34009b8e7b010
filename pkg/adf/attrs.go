package adf

// ColorAttrs holds an HTML hex color such as "#daa520".
type ColorAttrs struct {
	Color string
}

// CodeBlockAttrs names the language used for highlighting.
type CodeBlockAttrs struct {
	Language string
}

// DateAttrs holds a unix timestamp in seconds, kept as text as ADF does.
type DateAttrs struct {
	Timestamp string
}

// EmojiAttrs identifies an emoji. A standard Unicode emoji has no ID; site and
// customer emoji carry one.
type EmojiAttrs struct {
	ShortName string
	ID        *string
	Text      *string
}

// IsStandard reports whether the emoji is a standard Unicode emoji.
func (a EmojiAttrs) IsStandard() bool {
	return a.ID == nil
}

// ExpandAttrs holds the title shown while collapsed.
type ExpandAttrs struct {
	Title string
}

// HardBreakAttrs holds the break text, normally "\n".
type HardBreakAttrs struct {
	Text string
}

// HeadingAttrs holds the heading level.
type HeadingAttrs struct {
	Level   int8
	LocalID *string
}

// CardAttrs is shared by inlineCard and blockCard.
type CardAttrs struct {
	Data *string
	URL  *string
}

// LinkAttrs is the target of a link mark.
type LinkAttrs struct {
	Href          string
	Collection    *string
	ID            *string
	OccurrenceKey *string
	Title         *string
}

// MediaAttrs describes a media item. MediaType is stored under the JSON key
// "type" inside attrs; it is unrelated to the node's own "type" discriminator.
type MediaAttrs struct {
	MediaType     string
	ID            string
	Collection    string
	Width         *uint32
	Height        *uint32
	OccurrenceKey *string
}

// MediaSingleAttrs places a single media item.
//
// Width must be finite for the node to encode.
type MediaSingleAttrs struct {
	Layout    string
	Width     *float32 // percentage, 0 to 100
	WidthType *string
}

// MentionAttrs identifies the mentioned user.
type MentionAttrs struct {
	ID       string
	Text     *string
	UserType *string
}

// OrderedListAttrs holds the number of the first item.
type OrderedListAttrs struct {
	Order uint16
}

// PanelAttrs selects the panel style.
type PanelAttrs struct {
	PanelType string
}

// ParagraphAttrs carries the paragraph's local ID.
type ParagraphAttrs struct {
	LocalID string
}

// StatusAttrs holds the lozenge label and color.
type StatusAttrs struct {
	Text    string
	Color   string
	LocalID *string
}

// TableAttrs controls table layout. Every field is optional.
type TableAttrs struct {
	DisplayMode           *string
	IsNumberColumnEnabled *bool
	Layout                *string
	Width                 *uint16
}

// TableCellAttrs is shared by tableCell and tableHeader. A nil Colwidth means
// the key was absent; a pointer to an empty slice means "colwidth": [].
type TableCellAttrs struct {
	Background *string
	Colspan    *uint16
	Colwidth   *[]uint16
	Rowspan    *uint16
}

// LocalIDAttrs is shared by taskList and decisionList.
type LocalIDAttrs struct {
	LocalID string
}

// ItemStateAttrs is shared by taskItem ("TODO", "DONE") and decisionItem ("DECIDED").
type ItemStateAttrs struct {
	LocalID string
	State   string
}

// LayoutColumnAttrs holds the column width as a percentage. It must be
// finite for the node to encode.
type LayoutColumnAttrs struct {
	Width float32
}

// PlaceholderAttrs holds the hint text.
type PlaceholderAttrs struct {
	Text string
}

// SubSupType selects subscript or superscript.
type SubSupType string

const (
	Sub SubSupType = "sub"
	Sup SubSupType = "sup"
)

// SubSupAttrs is encoded as a tagged unit: {"type": "sub"} or {"type": "sup"}.
type SubSupAttrs struct {
	Type SubSupType
}
