// Package domain wires the scope engine to files, reports and the UI.
package domain

import (
	"errors"
	"fmt"
	"log/slog"
	"strings"

	"github.com/google/uuid"
	"golang.org/x/sync/errgroup"

	"github.com/mouse-blink/schemescope/internal/adapter"
	"github.com/mouse-blink/schemescope/internal/controller"
	"github.com/mouse-blink/schemescope/internal/domain/engine"
	m "github.com/mouse-blink/schemescope/internal/model"
)

var (
	// ErrNoScheme is returned when no color scheme was given or found.
	ErrNoScheme = errors.New("no color scheme")
	// ErrNoScope is returned when neither a scope nor a source position was given.
	ErrNoScope = errors.New("no scope: pass a scope name or a source position")
)

// ResolveArgs selects the scope to resolve and the schemes to search.
type ResolveArgs struct {
	Schemes []m.Path
	// Scope is used as is when set; otherwise it is read from Source at
	// Line and Column (1-based).
	Scope    string
	Source   m.Path
	Line     int
	Column   int
	Report   m.Path
	Parallel int
}

// ListArgs selects where to look for schemes.
type ListArgs struct {
	Paths    []m.Path
	Parallel int
}

// ViewArgs names a saved report.
type ViewArgs struct {
	Report m.Path
}

// EditArgs starts an interactive session.
type EditArgs struct {
	Source m.Path
	Scheme m.Path
	Line   int
	Column int
	Keys   controller.EditorKeys
	Ratio  float64
}

// Workflow defines the operations exposed by the CLI.
type Workflow interface {
	Resolve(args ResolveArgs) error
	List(args ListArgs) error
	View(args ViewArgs) error
	Edit(args EditArgs) error
}

type workflow struct {
	fs      adapter.SourceFSAdapter
	store   adapter.ReportStore
	ui      controller.UI
	scopes  adapter.ScopeProvider
	matcher adapter.ScopeMatcher
	dedupe  bool
	logger  *slog.Logger
}

// Option configures a Workflow.
type Option func(*workflow)

// WithDedupe collapses matches that point at the same selector.
func WithDedupe(dedupe bool) Option {
	return func(w *workflow) {
		w.dedupe = dedupe
	}
}

// WithLogger sets the workflow logger.
func WithLogger(logger *slog.Logger) Option {
	return func(w *workflow) {
		w.logger = logger
	}
}

// WithScopeProvider replaces the default scope provider.
func WithScopeProvider(scopes adapter.ScopeProvider) Option {
	return func(w *workflow) {
		w.scopes = scopes
	}
}

// WithScopeMatcher replaces the default selector matcher.
func WithScopeMatcher(matcher adapter.ScopeMatcher) Option {
	return func(w *workflow) {
		w.matcher = matcher
	}
}

// NewWorkflow creates a new Workflow instance with the provided adapters.
func NewWorkflow(fs adapter.SourceFSAdapter, store adapter.ReportStore, ui controller.UI, opts ...Option) Workflow {
	w := &workflow{
		fs:      fs,
		store:   store,
		ui:      ui,
		scopes:  adapter.NewScopeProvider(),
		matcher: adapter.NewScopeMatcher(),
		logger:  slog.Default(),
	}

	for _, opt := range opts {
		opt(w)
	}

	return w
}

func (w *workflow) newResolver() *engine.Resolver {
	return engine.NewResolver(w.matcher, engine.WithDedupe(w.dedupe), engine.WithLogger(w.logger))
}

// Resolve ranks the selectors of every scheme for one scope.
func (w *workflow) Resolve(args ResolveArgs) error {
	scope, err := w.scopeFor(args)
	if err != nil {
		return err
	}

	if len(args.Schemes) == 0 {
		return ErrNoScheme
	}

	schemes, err := w.fs.FindSchemes(args.Schemes)
	if err != nil {
		return fmt.Errorf("find schemes: %w", err)
	}

	if len(schemes) == 0 {
		return ErrNoScheme
	}

	reports := make([]m.Report, len(schemes))

	g := new(errgroup.Group)
	g.SetLimit(max(1, args.Parallel))

	for i, scheme := range schemes {
		g.Go(func() error {
			reports[i] = w.resolveScheme(scheme, scope)
			return nil
		})
	}

	_ = g.Wait()

	if err := w.ui.DisplayResolution(reports); err != nil {
		return err
	}

	if args.Report != "" {
		if err := w.store.SaveReports(args.Report, reports); err != nil {
			return fmt.Errorf("save report: %w", err)
		}
	}

	return allFailed(reports)
}

func (w *workflow) scopeFor(args ResolveArgs) (string, error) {
	if scope := strings.TrimSpace(args.Scope); scope != "" {
		return scope, nil
	}

	if args.Source == "" {
		return "", ErrNoScope
	}

	src, err := w.fs.ReadFile(args.Source)
	if err != nil {
		return "", fmt.Errorf("read source: %w", err)
	}

	doc := adapter.NewTextDocument(args.Source, string(src))
	offset := doc.Offset(max(args.Line, 1)-1, max(args.Column, 1)-1)

	scope := w.scopes.ScopeNameAt(args.Source, src, offset)
	w.logger.Debug("scope at position", "source", string(args.Source), "offset", offset, "scope", scope)

	return scope, nil
}

func (w *workflow) resolveScheme(scheme m.Path, scope string) m.Report {
	report := m.Report{Scheme: scheme, Scope: scope}

	doc, err := w.fs.OpenDocument(scheme)
	if err != nil {
		report.Err = fmt.Errorf("open scheme %s: %w", scheme, err)
		return report
	}

	if hash, err := w.fs.HashFile(scheme); err == nil {
		report.SchemeHash = hash
	} else {
		w.logger.Warn("hash scheme", "scheme", string(scheme), "error", err)
	}

	res := w.newResolver().Resolve(doc, scope)
	report.Chain = res.Chain
	report.Matches = reportMatches(doc, res.Matches)

	w.logger.Debug("scheme resolved", "scheme", string(scheme), "matches", len(report.Matches))

	return report
}

func reportMatches(doc adapter.Document, list m.RankedMatchList) []m.ReportMatch {
	matches := make([]m.ReportMatch, 0, len(list))

	for i, c := range list {
		line, col := doc.Position(c.Region.Begin())
		matches = append(matches, m.ReportMatch{
			Rank:     i + 1,
			Score:    c.Score,
			Selector: c.Selector,
			Segment:  c.Segment,
			Region:   c.Region,
			Line:     line + 1,
			Column:   col + 1,
			Context:  strings.TrimSpace(doc.Line(line)),
		})
	}

	return matches
}

func allFailed(reports []m.Report) error {
	errs := make([]error, 0, len(reports))

	for _, r := range reports {
		if r.Err == nil {
			return nil
		}

		errs = append(errs, r.Err)
	}

	return errors.Join(errs...)
}

// List counts the rule entries and selectors of every scheme found.
func (w *workflow) List(args ListArgs) error {
	paths := args.Paths
	if len(paths) == 0 {
		paths = []m.Path{"."}
	}

	schemes, err := w.fs.FindSchemes(paths)
	if err != nil {
		return fmt.Errorf("find schemes: %w", err)
	}

	infos := make([]m.SchemeInfo, len(schemes))

	g := new(errgroup.Group)
	g.SetLimit(max(1, args.Parallel))

	for i, scheme := range schemes {
		g.Go(func() error {
			infos[i] = w.inspect(scheme)
			return nil
		})
	}

	_ = g.Wait()

	return w.ui.DisplaySchemes(infos)
}

func (w *workflow) inspect(scheme m.Path) m.SchemeInfo {
	info := m.SchemeInfo{Path: scheme}

	doc, err := w.fs.OpenDocument(scheme)
	if err != nil {
		info.Err = err
		return info
	}

	rules, selectors := engine.RuleSelectors(doc)
	info.Rules = rules
	info.Selectors = len(selectors)

	return info
}

// View shows a saved report, marking schemes edited since it was written.
func (w *workflow) View(args ViewArgs) error {
	reports, err := w.store.LoadReports(args.Report)
	if err != nil {
		return err
	}

	for i := range reports {
		hash, err := w.fs.HashFile(reports[i].Scheme)
		if err != nil || hash != reports[i].SchemeHash {
			reports[i].Stale = true
			w.logger.Warn("scheme changed since the report was written", "scheme", string(reports[i].Scheme))
		}
	}

	return w.ui.DisplayResolution(reports)
}

// Edit opens the interactive editor on a source file.
func (w *workflow) Edit(args EditArgs) error {
	if args.Scheme == "" {
		return ErrNoScheme
	}

	source, err := w.fs.AbsPath(args.Source)
	if err != nil {
		return fmt.Errorf("source path: %w", err)
	}

	scheme, err := w.fs.AbsPath(args.Scheme)
	if err != nil {
		return fmt.Errorf("scheme path: %w", err)
	}

	logger := w.logger.With("session", uuid.NewString())
	logger.Info("edit session", "source", string(source), "scheme", string(scheme))

	return w.ui.Edit(controller.EditorArgs{
		Source:   source,
		Scheme:   scheme,
		Line:     args.Line,
		Column:   args.Column,
		FS:       w.fs,
		Scopes:   w.scopes,
		Resolver: engine.NewResolver(w.matcher, engine.WithDedupe(w.dedupe), engine.WithLogger(logger)),
		Logger:   logger,
		Keys:     args.Keys,
		Ratio:    args.Ratio,
	})
}
