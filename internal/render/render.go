// Package render turns raw captured command output into safely displayable
// tview markup. Transforms compose as an explicit ordered pipeline; the
// order is part of each entry point's contract, not an accident.
package render

import (
	"regexp"

	"github.com/rivo/tview"
)

// MaxDisplayRunes bounds how much text ever reaches the markup passes, so
// a command that dumps megabytes cannot stall rendering.
const MaxDisplayRunes = 30000

// Transform rewrites display text. Transforms must tolerate arbitrary
// input but may rely on the position they are given in a pipeline.
type Transform func(string) string

// Pipeline applies its transforms strictly in order.
type Pipeline []Transform

// Apply runs every transform in sequence over s.
func (p Pipeline) Apply(s string) string {
	for _, t := range p {
		s = t(s)
	}
	return s
}

// Clamp returns a transform that truncates its input to at most max runes.
// Clamping always runs first so later passes see bounded input.
func Clamp(max int) Transform {
	return func(s string) string {
		runes := []rune(s)
		if len(runes) <= max {
			return s
		}
		return string(runes[:max])
	}
}

// TerminalMarkup converts ANSI color and style escape sequences into the
// equivalent tview tags so terminal output renders styled instead of
// showing raw control bytes.
func TerminalMarkup(s string) string {
	return tview.TranslateANSI(s)
}

// escapeLiterals escapes bracketed text the command itself printed, so a
// literal "[ok]" survives as content instead of being parsed as a tag.
// It must run before TerminalMarkup: only tags inserted by later passes
// are real markup.
func escapeLiterals(s string) string {
	return tview.Escape(s)
}

// The help enrichment passes run in a fixed sequence, each over the text
// the previous pass already annotated. The patterns are written so they
// cannot match inside an inserted tag: tags carry no whitespace, and the
// token patterns all require a leading boundary that tag bodies never
// contain.
var (
	// <https://example.org/page> as man pages print references.
	urlPattern = regexp.MustCompile(`<(https?://[^>\s]+)>`)
	// -v, --help, --no-color and friends at a token boundary.
	flagPattern = regexp.MustCompile(`(^|[\s,=|])(-{1,2}[A-Za-z0-9][A-Za-z0-9_-]*)`)
	// All-uppercase words (section headers, metavars) at a token boundary.
	capsPattern = regexp.MustCompile(`(^|\s)([A-Z][A-Z0-9_]{2,})`)
)

// linkifyURLs wraps bracket-delimited URLs in underlined link markup.
func linkifyURLs(s string) string {
	return urlPattern.ReplaceAllString(s, "[blue::u]$1[-:-:-]")
}

// highlightFlags wraps leading-hyphen option tokens in highlight markup.
func highlightFlags(s string) string {
	return flagPattern.ReplaceAllString(s, "$1[yellow]$2[-]")
}

// highlightCaps wraps all-uppercase words in highlight markup.
func highlightCaps(s string) string {
	return capsPattern.ReplaceAllString(s, "$1[green]$2[-]")
}

// Output prepares captured command output for display: clamp, literal
// escaping, then ANSI conversion. No enrichment is applied.
func Output(raw string) string {
	return Pipeline{Clamp(MaxDisplayRunes), escapeLiterals, TerminalMarkup}.Apply(raw)
}

// HelpText prepares man/--help style output: clamp, literal escaping, ANSI
// conversion, then the three enrichment passes in order (URLs, flags,
// uppercase words).
func HelpText(raw string) string {
	return Pipeline{
		Clamp(MaxDisplayRunes),
		escapeLiterals,
		TerminalMarkup,
		linkifyURLs,
		highlightFlags,
		highlightCaps,
	}.Apply(raw)
}

var escapePattern = regexp.MustCompile(`\x1b\[[0-9;?]*[A-Za-z]`)

func stripEscapes(s string) string {
	return escapePattern.ReplaceAllString(s, "")
}

// PlainText prepares raw output for surfaces with no markup renderer, such
// as the terminal and desktop notifications: clamp and drop ANSI escapes.
// Bracketed text the command printed passes through untouched.
func PlainText(raw string) string {
	return Pipeline{Clamp(MaxDisplayRunes), stripEscapes}.Apply(raw)
}
