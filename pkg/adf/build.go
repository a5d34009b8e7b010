package adf

// NewDoc returns a document at the current Version holding content.
func NewDoc(content ...Node) *Doc {
	return &Doc{Version: Version, Content: nodes(content)}
}

// NewParagraph returns a paragraph without attrs.
func NewParagraph(content ...Node) *Paragraph {
	return &Paragraph{Content: nodes(content)}
}

// NewText returns a text node with optional marks.
func NewText(text string, marks ...Mark) *Text {
	if len(marks) == 0 {
		marks = nil
	}
	return &Text{Text: text, Marks: marks}
}

// NewCodeBlock returns a code block in the given language holding text. An
// empty language leaves attrs absent.
func NewCodeBlock(language, text string) *CodeBlock {
	cb := &CodeBlock{Content: &[]Node{NewText(text)}}
	if language != "" {
		cb.Attrs = &CodeBlockAttrs{Language: language}
	}
	return cb
}

// Ptr returns a pointer to v, for filling optional fields.
func Ptr[T any](v T) *T {
	return &v
}

// nodes matches the shape decode produces: required content is never nil.
func nodes(content []Node) []Node {
	if content == nil {
		return []Node{}
	}
	return content
}
