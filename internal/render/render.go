// SPDX-License-Identifier: MIT

// Package render writes a ScaleIndexer's full index table as a styled text
// table, YAML or TOML.
package render

import (
	"errors"
	"fmt"
	"io"
	"strconv"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"
	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"

	"github.com/katalvlaran/scatspectra/scale"
)

// Format names an output encoding.
type Format string

const (
	Text Format = "text"
	YAML Format = "yaml"
	TOML Format = "toml"
)

// ErrUnknownFormat is returned by ParseFormat and Write for unsupported names.
var ErrUnknownFormat = errors.New("render: unknown format")

// ParseFormat validates a format name.
func ParseFormat(name string) (Format, error) {
	switch f := Format(name); f {
	case Text, YAML, TOML:
		return f, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownFormat, name)
}

// Entry is one index of the table. LowPass is nil for the empty path.
type Entry struct {
	Index   int   `yaml:"index" toml:"index"`
	Order   int   `yaml:"order" toml:"order"`
	Path    []int `yaml:"path,flow" toml:"path"`
	LowPass *bool `yaml:"low_pass,omitempty" toml:"low_pass,omitempty"`
}

// Table is the serializable view of a ScaleIndexer.
type Table struct {
	Octaves   int     `yaml:"octaves" toml:"octaves"`
	Densities []int   `yaml:"densities,flow" toml:"densities"`
	MaxOrder  int     `yaml:"max_order" toml:"max_order"`
	Count     int     `yaml:"count" toml:"count"`
	Entries   []Entry `yaml:"paths" toml:"paths"`
}

// Build snapshots sc into a Table.
func Build(sc *scale.ScaleIndexer) (Table, error) {
	t := Table{
		Octaves:   sc.OctaveCount(),
		Densities: sc.Densities(),
		MaxOrder:  sc.MaxOrder(),
		Count:     sc.PathCount(),
		Entries:   make([]Entry, 0, sc.PathCount()),
	}
	for i, p := range sc.AllPaths() {
		e := Entry{Index: i, Order: len(p), Path: []int(p)}
		if len(p) > 0 {
			low, err := sc.IsLowPass(i)
			if err != nil {
				return Table{}, err
			}
			e.LowPass = &low
		}
		t.Entries = append(t.Entries, e)
	}
	return t, nil
}

// Write encodes t to w in format f.
func Write(w io.Writer, t Table, f Format) error {
	switch f {
	case Text:
		_, err := fmt.Fprintln(w, textTable(t))
		return err
	case YAML:
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(t); err != nil {
			return fmt.Errorf("render yaml: %w", err)
		}
		return enc.Close()
	case TOML:
		if err := toml.NewEncoder(w).Encode(t); err != nil {
			return fmt.Errorf("render toml: %w", err)
		}
		return nil
	}
	return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
}

var (
	headerStyle  = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7C3AED")).Padding(0, 1)
	cellStyle    = lipgloss.NewStyle().Padding(0, 1)
	lowPassStyle = cellStyle.Foreground(lipgloss.Color("#F59E0B"))
)

// textTable renders t with lipgloss; low-pass rows are highlighted.
func textTable(t Table) string {
	rows := make([][]string, len(t.Entries))
	for i, e := range t.Entries {
		low := "-"
		if e.LowPass != nil {
			low = strconv.FormatBool(*e.LowPass)
		}
		rows[i] = []string{strconv.Itoa(e.Index), strconv.Itoa(e.Order), scale.Path(e.Path).String(), low}
	}

	return table.New().
		Border(lipgloss.NormalBorder()).
		Headers("INDEX", "ORDER", "PATH", "LOW-PASS").
		Rows(rows...).
		StyleFunc(func(row, _ int) lipgloss.Style {
			switch {
			case row == table.HeaderRow:
				return headerStyle
			case row >= 0 && row < len(t.Entries) && t.Entries[row].LowPass != nil && *t.Entries[row].LowPass:
				return lowPassStyle
			default:
				return cellStyle
			}
		}).
		String()
}
