package adf

// NodeKind is the discriminator carried in a node's "type" key.
type NodeKind string

// Node discriminators.
const (
	KindBlockquote    NodeKind = "blockquote"
	KindBulletList    NodeKind = "bulletList"
	KindCodeBlock     NodeKind = "codeBlock"
	KindDate          NodeKind = "date"
	KindDoc           NodeKind = "doc"
	KindEmoji         NodeKind = "emoji"
	KindExpand        NodeKind = "expand"
	KindHardBreak     NodeKind = "hardBreak"
	KindHeading       NodeKind = "heading"
	KindInlineCard    NodeKind = "inlineCard"
	KindListItem      NodeKind = "listItem"
	KindMedia         NodeKind = "media"
	KindMediaGroup    NodeKind = "mediaGroup"
	KindMediaSingle   NodeKind = "mediaSingle"
	KindMention       NodeKind = "mention"
	KindNestedExpand  NodeKind = "nestedExpand"
	KindOrderedList   NodeKind = "orderedList"
	KindPanel         NodeKind = "panel"
	KindParagraph     NodeKind = "paragraph"
	KindRule          NodeKind = "rule"
	KindStatus        NodeKind = "status"
	KindTable         NodeKind = "table"
	KindTableCell     NodeKind = "tableCell"
	KindTableHeader   NodeKind = "tableHeader"
	KindTableRow      NodeKind = "tableRow"
	KindText          NodeKind = "text"
	KindTaskList      NodeKind = "taskList"
	KindTaskItem      NodeKind = "taskItem"
	KindDecisionList  NodeKind = "decisionList"
	KindDecisionItem  NodeKind = "decisionItem"
	KindLayoutSection NodeKind = "layoutSection"
	KindLayoutColumn  NodeKind = "layoutColumn"
	KindBlockCard     NodeKind = "blockCard"
	KindPlaceholder   NodeKind = "placeholder"
)

// MarkKind is the discriminator carried in a mark's "type" key.
type MarkKind string

// Mark discriminators.
const (
	MarkBackgroundColor MarkKind = "backgroundColor"
	MarkCode            MarkKind = "code"
	MarkEm              MarkKind = "em"
	MarkLink            MarkKind = "link"
	MarkStrike          MarkKind = "strike"
	MarkStrong          MarkKind = "strong"
	// MarkSubSup is always encoded as "subsup". The camel-case spelling
	// "subSup" is accepted on decode and re-encodes as "subsup".
	MarkSubSup          MarkKind = "subsup"
	MarkTextColor       MarkKind = "textColor"
	MarkUnderline       MarkKind = "underline"
)

// markAliases lists alternative spellings accepted on decode. Encode always
// writes the canonical kind.
var markAliases = map[string]MarkKind{
	"subSup": MarkSubSup,
}

// NodeKinds returns every node discriminator in a stable order.
func NodeKinds() []NodeKind {
	return []NodeKind{
		KindBlockquote, KindBulletList, KindCodeBlock, KindDate, KindDoc, KindEmoji,
		KindExpand, KindHardBreak, KindHeading, KindInlineCard, KindListItem, KindMedia,
		KindMediaGroup, KindMediaSingle, KindMention, KindNestedExpand, KindOrderedList,
		KindPanel, KindParagraph, KindRule, KindStatus, KindTable, KindTableCell,
		KindTableHeader, KindTableRow, KindText, KindTaskList, KindTaskItem,
		KindDecisionList, KindDecisionItem, KindLayoutSection, KindLayoutColumn,
		KindBlockCard, KindPlaceholder,
	}
}

// MarkKinds returns every mark discriminator in a stable order.
func MarkKinds() []MarkKind {
	return []MarkKind{
		MarkBackgroundColor, MarkCode, MarkEm, MarkLink, MarkStrike,
		MarkStrong, MarkSubSup, MarkTextColor, MarkUnderline,
	}
}
