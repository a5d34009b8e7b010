package adf

// Node is one element of a document tree. The set of implementations is closed;
// every implementation is a pointer to one of the structs in this file.
type Node interface {
	Kind() NodeKind
	isNode()
}

// Version is the ADF version this package writes into new documents.
const Version = 1

// Doc is the root of every document.
type Doc struct {
	Version int8
	Content []Node
}

// Blockquote quotes its block content.
type Blockquote struct {
	Content []Node
}

// BulletList is an unordered list of listItem nodes.
type BulletList struct {
	Content []Node
}

// CodeBlock is the only node whose content may be absent. A nil Content means
// the key was absent; a pointer to an empty slice means "content": [].
type CodeBlock struct {
	Content *[]Node
	Attrs   *CodeBlockAttrs
}

// Date is an inline date.
type Date struct {
	Attrs DateAttrs
}

// Emoji is an inline emoji.
type Emoji struct {
	Attrs EmojiAttrs
}

// Expand is a collapsible block with a title. Unlike NestedExpand it may carry marks.
type Expand struct {
	Content []Node
	Attrs   ExpandAttrs
	Marks   []Mark
}

// HardBreak is an inline line break. Attrs is optional.
type HardBreak struct {
	Attrs *HardBreakAttrs
}

// Heading is a section heading of level 1 to 6.
type Heading struct {
	Content []Node
	Attrs   HeadingAttrs
}

// InlineCard is a link rendered as an inline smart card.
type InlineCard struct {
	Attrs CardAttrs
}

// ListItem is one entry of a bullet or ordered list.
type ListItem struct {
	Content []Node
}

// Media is a single file or link item inside mediaGroup or mediaSingle.
type Media struct {
	Attrs MediaAttrs
}

// MediaGroup lays out several media items together.
type MediaGroup struct {
	Content []Node
}

// MediaSingle lays out one media item.
type MediaSingle struct {
	Content []Node
	Attrs   MediaSingleAttrs
}

// Mention refers to a user by ID.
type Mention struct {
	Attrs MentionAttrs
}

// NestedExpand is an expand placed inside a table cell; it carries no marks.
type NestedExpand struct {
	Content []Node
	Attrs   ExpandAttrs
}

// OrderedList is a numbered list. Attrs holds the starting number when present.
type OrderedList struct {
	Content []Node
	Attrs   *OrderedListAttrs
}

// Panel highlights its content as info, note, warning and so on.
type Panel struct {
	Content []Node
	Attrs   PanelAttrs
}

// Paragraph is a block of inline content.
type Paragraph struct {
	Content []Node
	Attrs   *ParagraphAttrs
}

// Rule is a horizontal rule. It has no fields.
type Rule struct{}

// Status is an inline lozenge with a label and a color.
type Status struct {
	Attrs StatusAttrs
}

// Table is a list of tableRow nodes.
type Table struct {
	Content []Node
	Attrs   *TableAttrs
}

// TableCell is a body cell of a tableRow.
type TableCell struct {
	Content []Node
	Attrs   *TableCellAttrs
}

// TableHeader is a header cell of a tableRow.
type TableHeader struct {
	Content []Node
	Attrs   *TableCellAttrs
}

// TableRow holds tableCell and tableHeader nodes.
type TableRow struct {
	Content []Node
}

// Text is an inline run of characters. An empty Marks slice is never encoded.
type Text struct {
	Text  string
	Marks []Mark
}

// TaskList holds taskItem nodes.
type TaskList struct {
	Content []Node
	Attrs   LocalIDAttrs
}

// TaskItem is one action item.
type TaskItem struct {
	Content []Node
	Attrs   ItemStateAttrs
}

// DecisionList holds decisionItem nodes.
type DecisionList struct {
	Content []Node
	Attrs   LocalIDAttrs
}

// DecisionItem is one recorded decision.
type DecisionItem struct {
	Content []Node
	Attrs   ItemStateAttrs
}

// LayoutSection arranges layoutColumn nodes side by side.
type LayoutSection struct {
	Content []Node
}

// LayoutColumn is one column of a layoutSection.
type LayoutColumn struct {
	Content []Node
	Attrs   LayoutColumnAttrs
}

// BlockCard is a link rendered as a block smart card.
type BlockCard struct {
	Attrs CardAttrs
}

// Placeholder is hint text shown in an empty template field.
type Placeholder struct {
	Attrs PlaceholderAttrs
}

func (*Doc) Kind() NodeKind           { return KindDoc }
func (*Blockquote) Kind() NodeKind    { return KindBlockquote }
func (*BulletList) Kind() NodeKind    { return KindBulletList }
func (*CodeBlock) Kind() NodeKind     { return KindCodeBlock }
func (*Date) Kind() NodeKind          { return KindDate }
func (*Emoji) Kind() NodeKind         { return KindEmoji }
func (*Expand) Kind() NodeKind        { return KindExpand }
func (*HardBreak) Kind() NodeKind     { return KindHardBreak }
func (*Heading) Kind() NodeKind       { return KindHeading }
func (*InlineCard) Kind() NodeKind    { return KindInlineCard }
func (*ListItem) Kind() NodeKind      { return KindListItem }
func (*Media) Kind() NodeKind         { return KindMedia }
func (*MediaGroup) Kind() NodeKind    { return KindMediaGroup }
func (*MediaSingle) Kind() NodeKind   { return KindMediaSingle }
func (*Mention) Kind() NodeKind       { return KindMention }
func (*NestedExpand) Kind() NodeKind  { return KindNestedExpand }
func (*OrderedList) Kind() NodeKind   { return KindOrderedList }
func (*Panel) Kind() NodeKind         { return KindPanel }
func (*Paragraph) Kind() NodeKind     { return KindParagraph }
func (*Rule) Kind() NodeKind          { return KindRule }
func (*Status) Kind() NodeKind        { return KindStatus }
func (*Table) Kind() NodeKind         { return KindTable }
func (*TableCell) Kind() NodeKind     { return KindTableCell }
func (*TableHeader) Kind() NodeKind   { return KindTableHeader }
func (*TableRow) Kind() NodeKind      { return KindTableRow }
func (*Text) Kind() NodeKind          { return KindText }
func (*TaskList) Kind() NodeKind      { return KindTaskList }
func (*TaskItem) Kind() NodeKind      { return KindTaskItem }
func (*DecisionList) Kind() NodeKind  { return KindDecisionList }
func (*DecisionItem) Kind() NodeKind  { return KindDecisionItem }
func (*LayoutSection) Kind() NodeKind { return KindLayoutSection }
func (*LayoutColumn) Kind() NodeKind  { return KindLayoutColumn }
func (*BlockCard) Kind() NodeKind     { return KindBlockCard }
func (*Placeholder) Kind() NodeKind   { return KindPlaceholder }

func (*Doc) isNode()           {}
func (*Blockquote) isNode()    {}
func (*BulletList) isNode()    {}
func (*CodeBlock) isNode()     {}
func (*Date) isNode()          {}
func (*Emoji) isNode()         {}
func (*Expand) isNode()        {}
func (*HardBreak) isNode()     {}
func (*Heading) isNode()       {}
func (*InlineCard) isNode()    {}
func (*ListItem) isNode()      {}
func (*Media) isNode()         {}
func (*MediaGroup) isNode()    {}
func (*MediaSingle) isNode()   {}
func (*Mention) isNode()       {}
func (*NestedExpand) isNode()  {}
func (*OrderedList) isNode()   {}
func (*Panel) isNode()         {}
func (*Paragraph) isNode()     {}
func (*Rule) isNode()          {}
func (*Status) isNode()        {}
func (*Table) isNode()         {}
func (*TableCell) isNode()     {}
func (*TableHeader) isNode()   {}
func (*TableRow) isNode()      {}
func (*Text) isNode()          {}
func (*TaskList) isNode()      {}
func (*TaskItem) isNode()      {}
func (*DecisionList) isNode()  {}
func (*DecisionItem) isNode()  {}
func (*LayoutSection) isNode() {}
func (*LayoutColumn) isNode()  {}
func (*BlockCard) isNode()     {}
func (*Placeholder) isNode()   {}
