// Package picker implements the interactive terminal front end: a query
// prompt, a ranked candidate list that refreshes per keystroke, and
// selection keys. Ranking runs asynchronously through the finder so a
// fast typist never waits on a superseded query.
package picker

import (
	"fmt"

	"github.com/gdamore/tcell/v2"
	"github.com/kk-code-lab/fpick/internal/finder"
	"github.com/mattn/go-runewidth"
)

// Picker owns one interactive session over a prepared finder.
type Picker struct {
	screen   tcell.Screen
	finder   *finder.Finder
	limit    int
	query    []rune
	results  []finder.Result
	selected int
	offset   int
}

// resultsEvent carries freshly ranked results from the finder goroutine
// into the tcell event loop.
type resultsEvent struct {
	tcell.EventTime
	results []finder.Result
}

// New creates a picker drawing on screen and ranking through f. limit
// caps how many results are requested per keystroke.
func New(screen tcell.Screen, f *finder.Finder, limit int) *Picker {
	if limit <= 0 {
		limit = 100
	}
	return &Picker{
		screen: screen,
		finder: f,
		limit:  limit,
	}
}

// Run drives the event loop until the user accepts a candidate (path,
// true) or aborts (empty, false).
func (p *Picker) Run() (string, bool) {
	// Initial list is ranked synchronously so the screen is never empty
	// while the first async pass runs.
	p.applyResults(p.finder.Rank(string(p.query), p.limit))

	for {
		p.draw()
		ev := p.screen.PollEvent()
		if ev == nil {
			return "", false
		}
		if path, accepted, done := p.handleEvent(ev); done {
			p.finder.CancelOngoingRank()
			return path, accepted
		}
	}
}

func (p *Picker) handleEvent(ev tcell.Event) (string, bool, bool) {
	switch ev := ev.(type) {
	case *resultsEvent:
		p.applyResults(ev.results)
	case *tcell.EventResize:
		p.screen.Sync()
	case *tcell.EventKey:
		return p.handleKey(ev)
	}
	return "", false, false
}

func (p *Picker) handleKey(ev *tcell.EventKey) (string, bool, bool) {
	switch ev.Key() {
	case tcell.KeyEscape, tcell.KeyCtrlC:
		return "", false, true
	case tcell.KeyEnter:
		if p.selected < len(p.results) {
			return p.results[p.selected].Path, true, true
		}
		// Nothing to accept; keep running.
	case tcell.KeyUp, tcell.KeyCtrlP:
		p.moveSelection(-1)
	case tcell.KeyDown, tcell.KeyCtrlN:
		p.moveSelection(1)
	case tcell.KeyBackspace, tcell.KeyBackspace2:
		if len(p.query) > 0 {
			p.query = p.query[:len(p.query)-1]
			p.requestRank()
		}
	case tcell.KeyCtrlU:
		if len(p.query) > 0 {
			p.query = p.query[:0]
			p.requestRank()
		}
	case tcell.KeyRune:
		p.query = append(p.query, ev.Rune())
		p.requestRank()
	}
	return "", false, false
}

func (p *Picker) requestRank() {
	p.finder.RankAsync(string(p.query), p.limit, func(results []finder.Result) {
		event := &resultsEvent{results: results}
		event.SetEventNow()
		p.screen.PostEventWait(event)
	})
}

func (p *Picker) applyResults(results []finder.Result) {
	p.results = results
	if p.selected >= len(results) {
		p.selected = len(results) - 1
	}
	if p.selected < 0 {
		p.selected = 0
	}
	p.offset = 0
}

func (p *Picker) moveSelection(delta int) {
	next := p.selected + delta
	if next < 0 || next >= len(p.results) {
		return
	}
	p.selected = next
}

func (p *Picker) draw() {
	width, height := p.screen.Size()
	p.screen.Clear()

	base := tcell.StyleDefault
	promptStyle := base.Bold(true)
	selectedStyle := base.Reverse(true)

	prompt := "> " + string(p.query)
	drawText(p.screen, 0, 0, promptStyle, runewidth.Truncate(prompt, width, "…"))

	counter := fmt.Sprintf("%d/%d", len(p.results), p.finder.PathCount())
	if cw := runewidth.StringWidth(counter); cw < width-runewidth.StringWidth(prompt)-1 {
		drawText(p.screen, width-cw, 0, base.Dim(true), counter)
	}

	listHeight := height - 1
	if listHeight < 0 {
		listHeight = 0
	}
	if p.selected < p.offset {
		p.offset = p.selected
	}
	if listHeight > 0 && p.selected >= p.offset+listHeight {
		p.offset = p.selected - listHeight + 1
	}

	for row := 0; row < listHeight; row++ {
		idx := p.offset + row
		if idx >= len(p.results) {
			break
		}
		style := base
		if idx == p.selected {
			style = selectedStyle
		}
		line := runewidth.Truncate(p.results[idx].Path, width, "…")
		if idx == p.selected {
			line = runewidth.FillRight(line, width)
		}
		drawText(p.screen, 0, row+1, style, line)
	}

	p.screen.Show()
}

func drawText(screen tcell.Screen, x, y int, style tcell.Style, text string) {
	col := x
	for _, r := range text {
		screen.SetContent(col, y, r, nil, style)
		col += runewidth.RuneWidth(r)
	}
}
