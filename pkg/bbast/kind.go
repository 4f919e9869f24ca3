package bbast

// ElementKind is the closed semantic classification of a tag name, used by
// renderers to select a conversion rule. New kinds require extending this
// enumeration and the name table; there is no runtime registration.
type ElementKind uint8

const (
	// ElemUnrecognized is any tag name not present in the table. The tag is
	// passed through to the output verbatim.
	ElemUnrecognized ElementKind = iota

	ElemBold
	ElemItalic
	ElemUnderline
	ElemCode
	ElemBlockquote
	ElemRule
	ElemLink
	ElemEmail
	ElemList
	ElemListItem
)

// String returns the element kind name.
func (k ElementKind) String() string {
	switch k {
	case ElemBold:
		return "bold"
	case ElemItalic:
		return "italic"
	case ElemUnderline:
		return "underline"
	case ElemCode:
		return "code"
	case ElemBlockquote:
		return "blockquote"
	case ElemRule:
		return "horizontal-rule"
	case ElemLink:
		return "link"
	case ElemEmail:
		return "email"
	case ElemList:
		return "list"
	case ElemListItem:
		return "list-item"
	default:
		return "unrecognized"
	}
}

// IsImplicitClose returns true for kinds that never have a matching close
// tag. The tree builder appends these without opening a nesting level.
func (k ElementKind) IsImplicitClose() bool {
	return k == ElemListItem
}

// elementKinds maps tag names to their semantic kind. Matching is
// byte-exact; dialect case-folding is a caller-side normalization step.
//
//nolint:gochecknoglobals // Read-only lookup table.
var elementKinds = map[string]ElementKind{
	"b":     ElemBold,
	"i":     ElemItalic,
	"u":     ElemUnderline,
	"code":  ElemCode,
	"quote": ElemBlockquote,
	"hr":    ElemRule,
	"url":   ElemLink,
	"email": ElemEmail,
	"list":  ElemList,
	"*":     ElemListItem,
}

// Classify returns the semantic kind for a tag name, or ElemUnrecognized
// when the name is not in the table.
func Classify(name []byte) ElementKind {
	if kind, ok := elementKinds[string(name)]; ok {
		return kind
	}
	return ElemUnrecognized
}
