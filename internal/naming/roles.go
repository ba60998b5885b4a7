package naming

import "strings"

// Name is the structured outcome of a successful parse. An empty Middle
// means the name has no middle slot.
type Name struct {
	First  string `json:"first_name"`
	Middle string `json:"middle_name,omitempty"`
	Last   string `json:"last_name"`
}

// Map key names for the role slots, in field order.
const (
	KeyFirst  = "first_name"
	KeyMiddle = "middle_name"
	KeyLast   = "last_name"
)

// Parts returns the non-empty slots in field order: first, middle, last.
func (n Name) Parts() []string {
	parts := make([]string, 0, 3)
	parts = append(parts, n.First)
	if n.Middle != "" {
		parts = append(parts, n.Middle)
	}
	return append(parts, n.Last)
}

// String joins the slots with single spaces.
func (n Name) String() string { return strings.Join(n.Parts(), " ") }

// AssignRoles maps title-cased fragments onto slots by count:
//
//	0 or 1 -> no name
//	2      -> first, last
//	3      -> first, middle, last
//	n > 3  -> first, middle, last = fragments[2:] joined by a space
//
// The boolean reports whether a name was produced.
func AssignRoles(fragments []string) (Name, bool) {
	switch n := len(fragments); {
	case n <= 1:
		return Name{}, false
	case n == 2:
		return Name{First: fragments[0], Last: fragments[1]}, true
	default:
		return Name{
			First:  fragments[0],
			Middle: fragments[1],
			Last:   strings.Join(fragments[2:], " "),
		}, true
	}
}

// CollapseDuplicate drops the middle name when it is identical to the first
// name, rune for rune and case-sensitive.
func CollapseDuplicate(n Name) Name {
	if n.Middle != "" && n.Middle == n.First {
		n.Middle = ""
	}
	return n
}
