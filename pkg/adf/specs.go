package adf

// Field contracts of every variant. nodeSpecs is filled in init because node
// decoders recurse into decoder.node, which reads nodeSpecs.
var (
	nodeSpecs map[NodeKind]nodeSpec
	markSpecs map[MarkKind]markSpec
)

func init() {
	nodeSpecs = map[NodeKind]nodeSpec{
		KindDoc: {keys("version", "content"), func(f fields) (Node, error) {
			version, err := required(f, "version", int8Type)
			if err != nil {
				return nil, err
			}
			content, err := f.content()
			if err != nil {
				return nil, err
			}
			return &Doc{Version: version, Content: content}, nil
		}},
		KindBlockquote: contentOnly(func(c []Node) Node { return &Blockquote{Content: c} }),
		KindBulletList: contentOnly(func(c []Node) Node { return &BulletList{Content: c} }),
		KindListItem:   contentOnly(func(c []Node) Node { return &ListItem{Content: c} }),
		KindMediaGroup: contentOnly(func(c []Node) Node { return &MediaGroup{Content: c} }),
		KindTableRow:   contentOnly(func(c []Node) Node { return &TableRow{Content: c} }),
		KindLayoutSection: contentOnly(func(c []Node) Node {
			return &LayoutSection{Content: c}
		}),
		KindCodeBlock: {keys("content", "attrs"), func(f fields) (Node, error) {
			content, err := f.optionalContent()
			if err != nil {
				return nil, err
			}
			attrs, err := optionalAttrs(f, codeBlockAttrs)
			if err != nil {
				return nil, err
			}
			return &CodeBlock{Content: content, Attrs: attrs}, nil
		}},
		KindDate: leaf(dateAttrs, func(a DateAttrs) Node { return &Date{Attrs: a} }),
		KindEmoji: leaf(emojiAttrs, func(a EmojiAttrs) Node {
			return &Emoji{Attrs: a}
		}),
		KindInlineCard: leaf(cardAttrs, func(a CardAttrs) Node { return &InlineCard{Attrs: a} }),
		KindBlockCard:  leaf(cardAttrs, func(a CardAttrs) Node { return &BlockCard{Attrs: a} }),
		KindMedia:      leaf(mediaAttrs, func(a MediaAttrs) Node { return &Media{Attrs: a} }),
		KindMention:    leaf(mentionAttrs, func(a MentionAttrs) Node { return &Mention{Attrs: a} }),
		KindStatus:     leaf(statusAttrs, func(a StatusAttrs) Node { return &Status{Attrs: a} }),
		KindPlaceholder: leaf(placeholderAttrs, func(a PlaceholderAttrs) Node {
			return &Placeholder{Attrs: a}
		}),
		KindExpand: {keys("content", "attrs", "marks"), func(f fields) (Node, error) {
			content, err := f.content()
			if err != nil {
				return nil, err
			}
			attrs, err := requiredAttrs(f, expandAttrs)
			if err != nil {
				return nil, err
			}
			marks, err := f.marks()
			if err != nil {
				return nil, err
			}
			return &Expand{Content: content, Attrs: attrs, Marks: marks}, nil
		}},
		KindNestedExpand: container(expandAttrs, func(c []Node, a ExpandAttrs) Node {
			return &NestedExpand{Content: c, Attrs: a}
		}),
		KindHeading: container(headingAttrs, func(c []Node, a HeadingAttrs) Node {
			return &Heading{Content: c, Attrs: a}
		}),
		KindMediaSingle: container(mediaSingleAttrs, func(c []Node, a MediaSingleAttrs) Node {
			return &MediaSingle{Content: c, Attrs: a}
		}),
		KindPanel: container(panelAttrs, func(c []Node, a PanelAttrs) Node {
			return &Panel{Content: c, Attrs: a}
		}),
		KindTaskList: container(localIDAttrs, func(c []Node, a LocalIDAttrs) Node {
			return &TaskList{Content: c, Attrs: a}
		}),
		KindTaskItem: container(itemStateAttrs, func(c []Node, a ItemStateAttrs) Node {
			return &TaskItem{Content: c, Attrs: a}
		}),
		KindDecisionList: container(localIDAttrs, func(c []Node, a LocalIDAttrs) Node {
			return &DecisionList{Content: c, Attrs: a}
		}),
		KindDecisionItem: container(itemStateAttrs, func(c []Node, a ItemStateAttrs) Node {
			return &DecisionItem{Content: c, Attrs: a}
		}),
		KindLayoutColumn: container(layoutColumnAttrs, func(c []Node, a LayoutColumnAttrs) Node {
			return &LayoutColumn{Content: c, Attrs: a}
		}),
		KindHardBreak: {keys("attrs"), func(f fields) (Node, error) {
			attrs, err := optionalAttrs(f, hardBreakAttrs)
			if err != nil {
				return nil, err
			}
			return &HardBreak{Attrs: attrs}, nil
		}},
		KindOrderedList: optionalContainer(orderedListAttrs, func(c []Node, a *OrderedListAttrs) Node {
			return &OrderedList{Content: c, Attrs: a}
		}),
		KindParagraph: optionalContainer(paragraphAttrs, func(c []Node, a *ParagraphAttrs) Node {
			return &Paragraph{Content: c, Attrs: a}
		}),
		KindTable: optionalContainer(tableAttrs, func(c []Node, a *TableAttrs) Node {
			return &Table{Content: c, Attrs: a}
		}),
		KindTableCell: optionalContainer(tableCellAttrs, func(c []Node, a *TableCellAttrs) Node {
			return &TableCell{Content: c, Attrs: a}
		}),
		KindTableHeader: optionalContainer(tableCellAttrs, func(c []Node, a *TableCellAttrs) Node {
			return &TableHeader{Content: c, Attrs: a}
		}),
		KindRule: {keys(), func(fields) (Node, error) {
			return &Rule{}, nil
		}},
		KindText: {keys("text", "marks"), func(f fields) (Node, error) {
			text, err := required(f, "text", stringType)
			if err != nil {
				return nil, err
			}
			marks, err := f.marks()
			if err != nil {
				return nil, err
			}
			return &Text{Text: text, Marks: marks}, nil
		}},
	}

	markSpecs = map[MarkKind]markSpec{
		MarkCode:      unitMark(func() Mark { return &Code{} }),
		MarkEm:        unitMark(func() Mark { return &Em{} }),
		MarkStrike:    unitMark(func() Mark { return &Strike{} }),
		MarkStrong:    unitMark(func() Mark { return &Strong{} }),
		MarkUnderline: unitMark(func() Mark { return &Underline{} }),
		MarkBackgroundColor: attrsMark(colorAttrs, func(a ColorAttrs) Mark {
			return &BackgroundColor{Attrs: a}
		}),
		MarkTextColor: attrsMark(colorAttrs, func(a ColorAttrs) Mark { return &TextColor{Attrs: a} }),
		MarkLink:      attrsMark(linkAttrs, func(a LinkAttrs) Mark { return &Link{Attrs: a} }),
		MarkSubSup:    attrsMark(subSupAttrs, func(a SubSupAttrs) Mark { return &SubSup{Attrs: a} }),
	}
}

// contentOnly is the contract of nodes carrying nothing but required content.
func contentOnly(build func([]Node) Node) nodeSpec {
	return nodeSpec{keys("content"), func(f fields) (Node, error) {
		content, err := f.content()
		if err != nil {
			return nil, err
		}
		return build(content), nil
	}}
}

// leaf is the contract of nodes carrying nothing but required attrs.
func leaf[T any](spec attrsSpec[T], build func(T) Node) nodeSpec {
	return nodeSpec{keys("attrs"), func(f fields) (Node, error) {
		attrs, err := requiredAttrs(f, spec)
		if err != nil {
			return nil, err
		}
		return build(attrs), nil
	}}
}

// container is the contract of nodes with required content and required attrs.
func container[T any](spec attrsSpec[T], build func([]Node, T) Node) nodeSpec {
	return nodeSpec{keys("content", "attrs"), func(f fields) (Node, error) {
		content, err := f.content()
		if err != nil {
			return nil, err
		}
		attrs, err := requiredAttrs(f, spec)
		if err != nil {
			return nil, err
		}
		return build(content, attrs), nil
	}}
}

// optionalContainer is the contract of nodes with required content and optional attrs.
func optionalContainer[T any](spec attrsSpec[T], build func([]Node, *T) Node) nodeSpec {
	return nodeSpec{keys("content", "attrs"), func(f fields) (Node, error) {
		content, err := f.content()
		if err != nil {
			return nil, err
		}
		attrs, err := optionalAttrs(f, spec)
		if err != nil {
			return nil, err
		}
		return build(content, attrs), nil
	}}
}

func unitMark(build func() Mark) markSpec {
	return markSpec{keys(), func(fields) (Mark, error) {
		return build(), nil
	}}
}

func attrsMark[T any](spec attrsSpec[T], build func(T) Mark) markSpec {
	return markSpec{keys("attrs"), func(f fields) (Mark, error) {
		attrs, err := requiredAttrs(f, spec)
		if err != nil {
			return nil, err
		}
		return build(attrs), nil
	}}
}

var colorAttrs = attrsSpec[ColorAttrs]{attrKeys("color"), func(f fields) (ColorAttrs, error) {
	color, err := required(f, "color", stringType)
	return ColorAttrs{Color: color}, err
}}

var codeBlockAttrs = attrsSpec[CodeBlockAttrs]{attrKeys("language"), func(f fields) (CodeBlockAttrs, error) {
	language, err := required(f, "language", stringType)
	return CodeBlockAttrs{Language: language}, err
}}

var dateAttrs = attrsSpec[DateAttrs]{attrKeys("timestamp"), func(f fields) (DateAttrs, error) {
	timestamp, err := required(f, "timestamp", stringType)
	return DateAttrs{Timestamp: timestamp}, err
}}

var emojiAttrs = attrsSpec[EmojiAttrs]{attrKeys("shortName", "id", "text"), func(f fields) (EmojiAttrs, error) {
	var a EmojiAttrs
	var err error
	if a.ShortName, err = required(f, "shortName", stringType); err != nil {
		return a, err
	}
	if a.ID, err = optional(f, "id", stringType); err != nil {
		return a, err
	}
	a.Text, err = optional(f, "text", stringType)
	return a, err
}}

var expandAttrs = attrsSpec[ExpandAttrs]{attrKeys("title"), func(f fields) (ExpandAttrs, error) {
	title, err := required(f, "title", stringType)
	return ExpandAttrs{Title: title}, err
}}

var hardBreakAttrs = attrsSpec[HardBreakAttrs]{attrKeys("text"), func(f fields) (HardBreakAttrs, error) {
	text, err := required(f, "text", stringType)
	return HardBreakAttrs{Text: text}, err
}}

var headingAttrs = attrsSpec[HeadingAttrs]{attrKeys("level", "localId"), func(f fields) (HeadingAttrs, error) {
	var a HeadingAttrs
	var err error
	if a.Level, err = required(f, "level", int8Type); err != nil {
		return a, err
	}
	a.LocalID, err = optional(f, "localId", stringType)
	return a, err
}}

var cardAttrs = attrsSpec[CardAttrs]{attrKeys("data", "url"), func(f fields) (CardAttrs, error) {
	var a CardAttrs
	var err error
	if a.Data, err = optional(f, "data", stringType); err != nil {
		return a, err
	}
	a.URL, err = optional(f, "url", stringType)
	return a, err
}}

var linkAttrs = attrsSpec[LinkAttrs]{
	attrKeys("href", "collection", "id", "occurrenceKey", "title"),
	func(f fields) (LinkAttrs, error) {
		var a LinkAttrs
		var err error
		if a.Href, err = required(f, "href", stringType); err != nil {
			return a, err
		}
		if a.Collection, err = optional(f, "collection", stringType); err != nil {
			return a, err
		}
		if a.ID, err = optional(f, "id", stringType); err != nil {
			return a, err
		}
		if a.OccurrenceKey, err = optional(f, "occurrenceKey", stringType); err != nil {
			return a, err
		}
		a.Title, err = optional(f, "title", stringType)
		return a, err
	},
}

// The "type" key here is the media type ("file", "link", "external"), read
// into MediaType. It is an attrs field and never a discriminator.
var mediaAttrs = attrsSpec[MediaAttrs]{
	attrKeys("type", "id", "collection", "width", "height", "occurrenceKey"),
	func(f fields) (MediaAttrs, error) {
		var a MediaAttrs
		var err error
		if a.MediaType, err = required(f, "type", stringType); err != nil {
			return a, err
		}
		if a.ID, err = required(f, "id", stringType); err != nil {
			return a, err
		}
		if a.Collection, err = required(f, "collection", stringType); err != nil {
			return a, err
		}
		if a.Width, err = optional(f, "width", uint32Type); err != nil {
			return a, err
		}
		if a.Height, err = optional(f, "height", uint32Type); err != nil {
			return a, err
		}
		a.OccurrenceKey, err = optional(f, "occurrenceKey", stringType)
		return a, err
	},
}

var mediaSingleAttrs = attrsSpec[MediaSingleAttrs]{
	attrKeys("layout", "width", "widthType"),
	func(f fields) (MediaSingleAttrs, error) {
		var a MediaSingleAttrs
		var err error
		if a.Layout, err = required(f, "layout", stringType); err != nil {
			return a, err
		}
		if a.Width, err = optional(f, "width", float32Type); err != nil {
			return a, err
		}
		a.WidthType, err = optional(f, "widthType", stringType)
		return a, err
	},
}

var mentionAttrs = attrsSpec[MentionAttrs]{attrKeys("id", "text", "userType"), func(f fields) (MentionAttrs, error) {
	var a MentionAttrs
	var err error
	if a.ID, err = required(f, "id", stringType); err != nil {
		return a, err
	}
	if a.Text, err = optional(f, "text", stringType); err != nil {
		return a, err
	}
	a.UserType, err = optional(f, "userType", stringType)
	return a, err
}}

var orderedListAttrs = attrsSpec[OrderedListAttrs]{attrKeys("order"), func(f fields) (OrderedListAttrs, error) {
	order, err := required(f, "order", uint16Type)
	return OrderedListAttrs{Order: order}, err
}}

var panelAttrs = attrsSpec[PanelAttrs]{attrKeys("panelType"), func(f fields) (PanelAttrs, error) {
	panelType, err := required(f, "panelType", stringType)
	return PanelAttrs{PanelType: panelType}, err
}}

var paragraphAttrs = attrsSpec[ParagraphAttrs]{attrKeys("localId"), func(f fields) (ParagraphAttrs, error) {
	localID, err := required(f, "localId", stringType)
	return ParagraphAttrs{LocalID: localID}, err
}}

var statusAttrs = attrsSpec[StatusAttrs]{attrKeys("text", "color", "localId"), func(f fields) (StatusAttrs, error) {
	var a StatusAttrs
	var err error
	if a.Text, err = required(f, "text", stringType); err != nil {
		return a, err
	}
	if a.Color, err = required(f, "color", stringType); err != nil {
		return a, err
	}
	a.LocalID, err = optional(f, "localId", stringType)
	return a, err
}}

var tableAttrs = attrsSpec[TableAttrs]{
	attrKeys("displayMode", "isNumberColumnEnabled", "layout", "width"),
	func(f fields) (TableAttrs, error) {
		var a TableAttrs
		var err error
		if a.DisplayMode, err = optional(f, "displayMode", stringType); err != nil {
			return a, err
		}
		if a.IsNumberColumnEnabled, err = optional(f, "isNumberColumnEnabled", boolType); err != nil {
			return a, err
		}
		if a.Layout, err = optional(f, "layout", stringType); err != nil {
			return a, err
		}
		a.Width, err = optional(f, "width", uint16Type)
		return a, err
	},
}

var tableCellAttrs = attrsSpec[TableCellAttrs]{
	attrKeys("background", "colspan", "colwidth", "rowspan"),
	func(f fields) (TableCellAttrs, error) {
		var a TableCellAttrs
		var err error
		if a.Background, err = optional(f, "background", stringType); err != nil {
			return a, err
		}
		if a.Colspan, err = optional(f, "colspan", uint16Type); err != nil {
			return a, err
		}
		if a.Colwidth, err = optionalList(f, "colwidth", uint16Type); err != nil {
			return a, err
		}
		a.Rowspan, err = optional(f, "rowspan", uint16Type)
		return a, err
	},
}

var localIDAttrs = attrsSpec[LocalIDAttrs]{attrKeys("localId"), func(f fields) (LocalIDAttrs, error) {
	localID, err := required(f, "localId", stringType)
	return LocalIDAttrs{LocalID: localID}, err
}}

var itemStateAttrs = attrsSpec[ItemStateAttrs]{attrKeys("localId", "state"), func(f fields) (ItemStateAttrs, error) {
	var a ItemStateAttrs
	var err error
	if a.LocalID, err = required(f, "localId", stringType); err != nil {
		return a, err
	}
	a.State, err = required(f, "state", stringType)
	return a, err
}}

var layoutColumnAttrs = attrsSpec[LayoutColumnAttrs]{attrKeys("width"), func(f fields) (LayoutColumnAttrs, error) {
	width, err := required(f, "width", float32Type)
	return LayoutColumnAttrs{Width: width}, err
}}

var placeholderAttrs = attrsSpec[PlaceholderAttrs]{attrKeys("text"), func(f fields) (PlaceholderAttrs, error) {
	text, err := required(f, "text", stringType)
	return PlaceholderAttrs{Text: text}, err
}}

// The sub/sup position is itself a tagged unit: {"type": "sub"} or {"type": "sup"}.
var subSupAttrs = attrsSpec[SubSupAttrs]{attrKeys("type"), func(f fields) (SubSupAttrs, error) {
	tag, err := required(f, "type", stringType)
	if err != nil {
		return SubSupAttrs{}, err
	}
	switch SubSupType(tag) {
	case Sub, Sup:
		return SubSupAttrs{Type: SubSupType(tag)}, nil
	}
	return SubSupAttrs{}, f.d.fail(&DecodeError{Kind: UnknownVariant, Variant: f.variant, Tag: tag})
}}
