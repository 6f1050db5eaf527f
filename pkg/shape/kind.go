package shape

import "strings"

// Kind is the declared type of a shape.
type Kind int

const (
	KindUnknown Kind = iota
	KindText
	KindBoard
	KindRect
	KindEllipse
	KindGroup
	KindPath
	KindBool
	KindImage
	KindSVGRaw
)

var kindNames = map[string]Kind{
	"text":    KindText,
	"board":   KindBoard,
	"frame":   KindBoard,
	"rect":    KindRect,
	"ellipse": KindEllipse,
	"circle":  KindEllipse,
	"group":   KindGroup,
	"path":    KindPath,
	"vector":  KindPath,
	"bool":    KindBool,
	"image":   KindImage,
	"svg-raw": KindSVGRaw,
}

// ParseKind maps a host type string to a Kind. Unrecognised types are KindUnknown.
func ParseKind(s string) Kind {
	if k, ok := kindNames[strings.ToLower(strings.TrimSpace(s))]; ok {
		return k
	}
	return KindUnknown
}

func (k Kind) String() string {
	names := [...]string{
		"unknown", "text", "board", "rect", "ellipse", "group", "path", "bool", "image", "svg-raw",
	}
	if int(k) >= 0 && int(k) < len(names) {
		return names[k]
	}
	return "unknown"
}

