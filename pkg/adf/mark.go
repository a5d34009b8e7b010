package adf

// Mark is an inline annotation attached to a Text or Expand node. The set of
// implementations is closed.
type Mark interface {
	Kind() MarkKind
	isMark()
}

// BackgroundColor highlights text behind it.
type BackgroundColor struct {
	Attrs ColorAttrs
}

// Code renders text as inline code.
type Code struct{}

// Em renders text in italics.
type Em struct{}

// Link makes text a hyperlink.
type Link struct {
	Attrs LinkAttrs
}

// Strike draws a line through text.
type Strike struct{}

// Strong renders text in bold.
type Strong struct{}

// SubSup renders text as subscript or superscript; the position lives in its
// attrs, not in the mark's own discriminator.
type SubSup struct {
	Attrs SubSupAttrs
}

// TextColor sets the text color.
type TextColor struct {
	Attrs ColorAttrs
}

// Underline underlines text.
type Underline struct{}

func (*BackgroundColor) Kind() MarkKind { return MarkBackgroundColor }
func (*Code) Kind() MarkKind            { return MarkCode }
func (*Em) Kind() MarkKind              { return MarkEm }
func (*Link) Kind() MarkKind            { return MarkLink }
func (*Strike) Kind() MarkKind          { return MarkStrike }
func (*Strong) Kind() MarkKind          { return MarkStrong }
func (*SubSup) Kind() MarkKind          { return MarkSubSup }
func (*TextColor) Kind() MarkKind       { return MarkTextColor }
func (*Underline) Kind() MarkKind       { return MarkUnderline }

func (*BackgroundColor) isMark() {}
func (*Code) isMark()            {}
func (*Em) isMark()              {}
func (*Link) isMark()            {}
func (*Strike) isMark()          {}
func (*Strong) isMark()          {}
func (*SubSup) isMark()          {}
func (*TextColor) isMark()       {}
func (*Underline) isMark()       {}
