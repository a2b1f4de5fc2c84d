package markdown

// SpanKind identifies the styling applied to a clean-view range.
type SpanKind uint8

const (
	KindH1 SpanKind = iota
	KindH2
	KindH3
	KindBold
	KindItalic
	KindInlineCode
	KindCodeBlock
	KindLink
	KindListItem
	KindQuote
)

// String returns the span kind name.
func (k SpanKind) String() string {
	switch k {
	case KindH1:
		return "h1"
	case KindH2:
		return "h2"
	case KindH3:
		return "h3"
	case KindBold:
		return "bold"
	case KindItalic:
		return "italic"
	case KindInlineCode:
		return "inlineCode"
	case KindCodeBlock:
		return "codeBlock"
	case KindLink:
		return "link"
	case KindListItem:
		return "listItem"
	case KindQuote:
		return "quote"
	default:
		return "unknown"
	}
}

// Span is a style annotation over a half-open clean-view range.
type Span struct {
	Start int
	End   int
	Kind  SpanKind
}

// Link pairs a clean-view range with its target URL. The matching style
// span carries only KindLink; the URL lives here.
type Link struct {
	Start int
	End   int
	URL   string
}
