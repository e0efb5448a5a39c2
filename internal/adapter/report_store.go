package adapter

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"

	m "github.com/mouse-blink/schemescope/internal/model"
)

// ErrEmptyReportPath is returned when no report file was given.
var ErrEmptyReportPath = errors.New("report path is empty")

// ReportStore persists and retrieves resolution reports.
type ReportStore interface {
	SaveReports(path m.Path, reports []m.Report) error
	LoadReports(path m.Path) ([]m.Report, error)
}

// LocalReportStore keeps reports in a single YAML file.
type LocalReportStore struct{}

// NewReportStore constructs a ReportStore implementation.
func NewReportStore() ReportStore {
	return &LocalReportStore{}
}

type reportFileYAML struct {
	Version int          `yaml:"version"`
	Reports []reportYAML `yaml:"reports"`
}

type reportYAML struct {
	Scheme     string      `yaml:"scheme"`
	SchemeHash string      `yaml:"scheme_hash,omitempty"`
	Scope      string      `yaml:"scope"`
	Chain      []string    `yaml:"chain"`
	Matches    []matchYAML `yaml:"matches"`
}

type matchYAML struct {
	Rank     int    `yaml:"rank"`
	Score    int    `yaml:"score"`
	Selector string `yaml:"selector"`
	Segment  string `yaml:"segment"`
	Begin    int    `yaml:"begin"`
	End      int    `yaml:"end"`
	Line     int    `yaml:"line"`
	Column   int    `yaml:"column"`
	Context  string `yaml:"context,omitempty"`
}

const reportFileVersion = 1

// SaveReports writes reports to path, creating parent directories. Reports
// that carry an error are skipped.
func (rs *LocalReportStore) SaveReports(path m.Path, reports []m.Report) error {
	if path == "" {
		return ErrEmptyReportPath
	}

	file := reportFileYAML{Version: reportFileVersion}

	for _, report := range reports {
		if report.Err != nil {
			continue
		}

		file.Reports = append(file.Reports, toReportYAML(report))
	}

	var buf bytes.Buffer

	enc := yaml.NewEncoder(&buf)
	enc.SetIndent(2)

	if err := enc.Encode(file); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	if err := enc.Close(); err != nil {
		return fmt.Errorf("encode reports: %w", err)
	}

	if err := os.MkdirAll(filepath.Dir(string(path)), 0o750); err != nil {
		return fmt.Errorf("create report directory: %w", err)
	}

	if err := os.WriteFile(string(path), buf.Bytes(), 0o600); err != nil {
		return fmt.Errorf("write report %s: %w", path, err)
	}

	return nil
}

// LoadReports reads reports previously written by SaveReports.
func (rs *LocalReportStore) LoadReports(path m.Path) ([]m.Report, error) {
	if path == "" {
		return nil, ErrEmptyReportPath
	}

	data, err := os.ReadFile(string(path))
	if err != nil {
		return nil, fmt.Errorf("read report %s: %w", path, err)
	}

	var file reportFileYAML
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("decode report %s: %w", path, err)
	}

	if file.Version > reportFileVersion {
		return nil, fmt.Errorf("report %s has unsupported version %d", path, file.Version)
	}

	reports := make([]m.Report, 0, len(file.Reports))
	for _, r := range file.Reports {
		reports = append(reports, fromReportYAML(r))
	}

	return reports, nil
}

func toReportYAML(report m.Report) reportYAML {
	out := reportYAML{
		Scheme:     string(report.Scheme),
		SchemeHash: report.SchemeHash,
		Scope:      report.Scope,
		Chain:      []string(report.Chain),
		Matches:    make([]matchYAML, 0, len(report.Matches)),
	}

	for _, match := range report.Matches {
		out.Matches = append(out.Matches, matchYAML{
			Rank:     match.Rank,
			Score:    match.Score,
			Selector: match.Selector,
			Segment:  match.Segment,
			Begin:    match.Region.Begin(),
			End:      match.Region.End(),
			Line:     match.Line,
			Column:   match.Column,
			Context:  match.Context,
		})
	}

	return out
}

func fromReportYAML(in reportYAML) m.Report {
	report := m.Report{
		Scheme:     m.Path(in.Scheme),
		SchemeHash: in.SchemeHash,
		Scope:      in.Scope,
		Chain:      m.ScopeChain(in.Chain),
		Matches:    make([]m.ReportMatch, 0, len(in.Matches)),
	}

	for _, match := range in.Matches {
		report.Matches = append(report.Matches, m.ReportMatch{
			Rank:     match.Rank,
			Score:    match.Score,
			Selector: match.Selector,
			Segment:  match.Segment,
			Region:   m.NewRegion(match.Begin, match.End),
			Line:     match.Line,
			Column:   match.Column,
			Context:  match.Context,
		})
	}

	return report
}
