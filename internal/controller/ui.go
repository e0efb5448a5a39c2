// Package controller renders resolution results and hosts the interactive
// scheme editor.
package controller

import (
	"errors"
	"log/slog"

	"github.com/mouse-blink/schemescope/internal/adapter"
	"github.com/mouse-blink/schemescope/internal/domain/engine"
	m "github.com/mouse-blink/schemescope/internal/model"
)

// ErrNotInteractive is returned by Edit when the output is not a terminal.
var ErrNotInteractive = errors.New("the editor needs an interactive terminal")

// EditorKeys are the key bindings of the session commands.
type EditorKeys struct {
	Next   string
	Prev   string
	Toggle string
}

// EditorArgs holds everything the interactive editor needs.
type EditorArgs struct {
	Source m.Path
	Scheme m.Path
	// Line and Column place the initial cursor, 1-based. Zero means start.
	Line   int
	Column int

	FS       adapter.SourceFSAdapter
	Scopes   adapter.ScopeProvider
	Resolver *engine.Resolver
	Logger   *slog.Logger

	Keys  EditorKeys
	Ratio float64
}

// UI defines the interface for displaying scheme scope results.
// Implementations can use different output methods (simple text, TUI, etc).
type UI interface {
	DisplayResolution(reports []m.Report) error
	DisplaySchemes(infos []m.SchemeInfo) error
	Edit(args EditorArgs) error
}
