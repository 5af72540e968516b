package glyph

import "fmt"

// Glyph is one status symbol used by the printers and the terminal UI.
type Glyph struct {
	Key     string
	Symbol  string
	Meaning string
}

func (g Glyph) String() string {
	return g.Symbol
}

const (
	escape        = "\x1b"
	resetCode     = 0
	boldCode      = 1
	underlineCode = 4
	strikeCode    = 9
)

func Strike(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, strikeCode, in, escape, resetCode)
}

func Bold(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, boldCode, in, escape, resetCode)
}

func Underline(in string) string {
	return fmt.Sprintf("%s[%dm%s%s[%dm", escape, underlineCode, in, escape, resetCode)
}

// ForStatus maps any status string from the manifest or work log to its
// glyph. Statuses are open strings, so unknown values get a neutral
// marker rather than an error.
func ForStatus(status string) Glyph {
	if g, ok := statusGlyphs[status]; ok {
		return g
	}
	return Glyph{Key: "", Symbol: "·", Meaning: status}
}

var statusGlyphs = map[string]Glyph{
	// project
	"planning":  {Key: "p", Symbol: "◌", Meaning: "planning"},
	"active":    {Key: "a", Symbol: "●", Meaning: "active"},
	"paused":    {Key: "z", Symbol: "⦷", Meaning: "paused"},
	"completed": {Key: "x", Symbol: "✘", Meaning: "completed"},
	"archived":  {Key: "v", Symbol: "⊞", Meaning: "archived"},

	// milestones
	"pending":     {Key: "-", Symbol: "⁃", Meaning: "pending"},
	"in-progress": {Key: ">", Symbol: "›", Meaning: "in progress"},
	"done":        {Key: "x", Symbol: "✘", Meaning: "done"},
	"blocked":     {Key: "!", Symbol: "!", Meaning: "blocked"},

	// publication
	"drafting":  {Key: "d", Symbol: "○", Meaning: "drafting"},
	"submitted": {Key: "s", Symbol: "›", Meaning: "submitted"},
	"in-review": {Key: "r", Symbol: "?", Meaning: "in review"},
	"published": {Key: "✓", Symbol: "✷", Meaning: "published"},
}

// Problem marks a work-log entry flagged by the sanity checks.
var Problem = Glyph{Key: "?", Symbol: "⚑", Meaning: "needs attention"}
