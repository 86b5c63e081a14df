package widgets

import (
	"fmt"
	"strings"

	"github.com/alecthomas/chroma/v2"
	"github.com/alecthomas/chroma/v2/lexers"
	"github.com/alecthomas/chroma/v2/styles"
	"github.com/mattn/go-runewidth"

	"github.com/odvcencio/tessera/pkg/backend"
	"github.com/odvcencio/tessera/pkg/color"
	"github.com/odvcencio/tessera/pkg/grid"
	"github.com/odvcencio/tessera/pkg/runtime"
	"github.com/odvcencio/tessera/pkg/theme"
)

// span is a run of same-styled text within one highlighted line.
type span struct {
	text  string
	style grid.Style
}

// codePalette maps token categories to theme styles.
type codePalette struct {
	Keyword     grid.Style
	TypeName    grid.Style
	Function    grid.Style
	String      grid.Style
	Number      grid.Style
	Comment     grid.Style
	Operator    grid.Style
	Punctuation grid.Style
	Builtin     grid.Style
	Variable    grid.Style
	Attribute   grid.Style
	Tag         grid.Style
	Error       grid.Style
	Default     grid.Style
}

func newCodePalette(th *theme.Theme) codePalette {
	return codePalette{
		Keyword:     th.Accent.Bold(true),
		TypeName:    th.Info,
		Function:    th.AccentDim,
		String:      th.Success,
		Number:      th.Warning,
		Comment:     th.TextMuted.Italic(true),
		Operator:    th.TextSecondary,
		Punctuation: th.TextMuted,
		Builtin:     th.Info,
		Variable:    th.TextPrimary,
		Attribute:   th.AccentDim,
		Tag:         th.Accent,
		Error:       th.Error.Bold(true),
		Default:     th.TextPrimary,
	}
}

func (pal codePalette) styleFor(t chroma.TokenType) grid.Style {
	switch {
	case t == chroma.Error:
		return pal.Error
	case t.InCategory(chroma.Comment):
		return pal.Comment
	case t.InCategory(chroma.Keyword):
		return pal.Keyword
	// Strings and numbers share the Literal category, so they need the
	// subcategory check to tell them apart.
	case t.InSubCategory(chroma.LiteralString):
		return pal.String
	case t.InSubCategory(chroma.LiteralNumber):
		return pal.Number
	case t.InCategory(chroma.Operator):
		return pal.Operator
	case t.InCategory(chroma.Punctuation):
		return pal.Punctuation
	case t.InCategory(chroma.Name):
		switch t {
		case chroma.NameFunction, chroma.NameFunctionMagic:
			return pal.Function
		case chroma.NameClass, chroma.NameNamespace:
			return pal.TypeName
		case chroma.NameBuiltin, chroma.NameBuiltinPseudo:
			return pal.Builtin
		case chroma.NameVariable, chroma.NameVariableClass,
			chroma.NameVariableGlobal, chroma.NameVariableInstance,
			chroma.NameVariableMagic:
			return pal.Variable
		case chroma.NameTag:
			return pal.Tag
		case chroma.NameAttribute:
			return pal.Attribute
		case chroma.NameConstant:
			return pal.Number
		default:
			return pal.Default
		}
	default:
		return pal.Default
	}
}

// chromaEntryStyle converts a chroma style entry, whose colors arrive
// as hex strings, into a grid style.
func chromaEntryStyle(entry chroma.StyleEntry, base grid.Style) grid.Style {
	style := base
	if entry.Colour.IsSet() {
		if fg, err := color.ParseHex(entry.Colour.String()); err == nil {
			style = style.Foreground(fg)
		}
	}
	if entry.Bold == chroma.Yes {
		style = style.Bold(true)
	}
	if entry.Italic == chroma.Yes {
		style = style.Italic(true)
	}
	if entry.Underline == chroma.Yes {
		style = style.Underline(true)
	}
	return style
}

// highlight tokenizes source and splits the styled runs into lines.
func highlight(source, language string, styler func(chroma.TokenType) grid.Style) [][]span {
	lexer := lexers.Get(language)
	if lexer == nil {
		lexer = lexers.Analyse(source)
	}
	if lexer == nil {
		lexer = lexers.Fallback
	}
	lexer = chroma.Coalesce(lexer)

	it, err := lexer.Tokenise(nil, source)
	if err != nil {
		return plainLines(source, styler(chroma.Text))
	}

	var lines [][]span
	var current []span
	for token := it(); token != chroma.EOF; token = it() {
		if token.Value == "" {
			continue
		}
		style := styler(token.Type)
		parts := strings.Split(token.Value, "\n")
		for i, part := range parts {
			if i > 0 {
				lines = append(lines, current)
				current = nil
			}
			if part != "" {
				current = append(current, span{text: part, style: style})
			}
		}
	}
	return append(lines, current)
}

func plainLines(source string, style grid.Style) [][]span {
	raw := strings.Split(source, "\n")
	lines := make([][]span, len(raw))
	for i, line := range raw {
		if line != "" {
			lines[i] = []span{{text: line, style: style}}
		}
	}
	return lines
}

// CodeView displays syntax-highlighted source code with scrolling and
// optional line numbers.
type CodeView struct {
	FocusableBase
	source      string
	language    string
	scroll      int
	lineNumbers bool
	syntaxStyle *chroma.Style

	// Highlighting is rebuilt when the theme or source changes.
	lines    [][]span
	themeRef *theme.Theme
}

// NewCodeView creates a code view for the given source. The language
// name selects the lexer; when empty the source is analysed.
func NewCodeView(source, language string) *CodeView {
	return &CodeView{source: source, language: language}
}

// SetSource replaces the displayed code and re-highlights it.
func (cv *CodeView) SetSource(source, language string) {
	if cv.source == source && cv.language == language {
		return
	}
	cv.source = source
	cv.language = language
	cv.lines = nil
	cv.themeRef = nil
	cv.scroll = 0
	cv.Invalidate()
}

// SetSyntaxStyle selects a chroma style by name for token colors.
// Unknown names keep the theme palette.
func (cv *CodeView) SetSyntaxStyle(name string) {
	st := styles.Get(name)
	if st == styles.Fallback {
		st = nil
	}
	if cv.syntaxStyle == st {
		return
	}
	cv.syntaxStyle = st
	cv.lines = nil
	cv.Invalidate()
}

// SetLineNumbers toggles the line number gutter.
func (cv *CodeView) SetLineNumbers(show bool) {
	if cv.lineNumbers == show {
		return
	}
	cv.lineNumbers = show
	cv.Invalidate()
}

// LineCount returns the number of source lines.
func (cv *CodeView) LineCount() int {
	return strings.Count(cv.source, "\n") + 1
}

// ScrollBy moves the viewport by delta lines, clamped to the content.
func (cv *CodeView) ScrollBy(delta int) {
	cv.ScrollTo(cv.scroll + delta)
}

// ScrollTo moves the viewport to the given top line, clamped to the content.
func (cv *CodeView) ScrollTo(line int) {
	maxScroll := cv.LineCount() - cv.Bounds().Height
	if maxScroll < 0 {
		maxScroll = 0
	}
	if line > maxScroll {
		line = maxScroll
	}
	if line < 0 {
		line = 0
	}
	if cv.scroll == line {
		return
	}
	cv.scroll = line
	cv.Invalidate()
}

// Scroll returns the top visible line.
func (cv *CodeView) Scroll() int {
	return cv.scroll
}

// Measure returns the widest source line plus gutter by the line count.
func (cv *CodeView) Measure(c runtime.Constraints) runtime.Size {
	width := 0
	raw := strings.Split(cv.source, "\n")
	for _, line := range raw {
		if w := runewidth.StringWidth(line); w > width {
			width = w
		}
	}
	if cv.lineNumbers {
		width += gutterWidth(len(raw))
	}
	return c.Constrain(runtime.Size{Width: width, Height: len(raw)})
}

// HandleMessage scrolls on arrow keys, paging keys, and the mouse wheel.
func (cv *CodeView) HandleMessage(msg runtime.Message) runtime.HandleResult {
	page := cv.Bounds().Height - 1
	if page < 1 {
		page = 1
	}
	switch m := msg.(type) {
	case runtime.KeyMsg:
		switch m.Key {
		case backend.KeyUp:
			cv.ScrollBy(-1)
			return runtime.Handled()
		case backend.KeyDown:
			cv.ScrollBy(1)
			return runtime.Handled()
		case backend.KeyPageUp:
			cv.ScrollBy(-page)
			return runtime.Handled()
		case backend.KeyPageDown:
			cv.ScrollBy(page)
			return runtime.Handled()
		case backend.KeyHome:
			cv.ScrollTo(0)
			return runtime.Handled()
		case backend.KeyEnd:
			cv.ScrollTo(cv.LineCount())
			return runtime.Handled()
		}
	case runtime.MouseMsg:
		switch m.Button {
		case backend.MouseWheelUp:
			cv.ScrollBy(-3)
			return runtime.Handled()
		case backend.MouseWheelDown:
			cv.ScrollBy(3)
			return runtime.Handled()
		}
	}
	return runtime.Unhandled()
}

// Render draws the visible window of highlighted lines.
func (cv *CodeView) Render(ctx runtime.RenderContext) {
	bounds := cv.Bounds()
	if bounds.IsEmpty() {
		return
	}
	if cv.lines == nil || cv.themeRef != ctx.Theme {
		cv.lines = highlight(cv.source, cv.language, cv.styler(ctx.Theme))
		cv.themeRef = ctx.Theme
	}

	gutter := 0
	if cv.lineNumbers {
		gutter = gutterWidth(len(cv.lines))
	}

	for row := 0; row < bounds.Height; row++ {
		idx := cv.scroll + row
		if idx >= len(cv.lines) {
			break
		}
		y := bounds.Y + row
		x := bounds.X
		if gutter > 0 {
			num := fmt.Sprintf("%*d ", gutter-1, idx+1)
			ctx.Buffer.Write(x, y, num, ctx.Theme.TextMuted)
			x += gutter
		}
		for _, sp := range cv.lines[idx] {
			remaining := bounds.X + bounds.Width - x
			if remaining <= 0 {
				break
			}
			text := sp.text
			if runewidth.StringWidth(text) > remaining {
				text = runewidth.Truncate(text, remaining, "")
			}
			x += ctx.Buffer.Write(x, y, text, sp.style)
		}
	}
	cv.ClearInvalidation()
}

// styler picks between the theme palette and a chroma style.
func (cv *CodeView) styler(th *theme.Theme) func(chroma.TokenType) grid.Style {
	pal := newCodePalette(th)
	if cv.syntaxStyle == nil {
		return pal.styleFor
	}
	st := cv.syntaxStyle
	return func(t chroma.TokenType) grid.Style {
		return chromaEntryStyle(st.Get(t), pal.Default)
	}
}

func gutterWidth(lineCount int) int {
	return len(fmt.Sprintf("%d", lineCount)) + 1
}
