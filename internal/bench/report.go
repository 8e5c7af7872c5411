package bench

import (
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/jedib0t/go-pretty/v6/text"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
	"gopkg.in/yaml.v3"
)

// Format selects how a Result is rendered.
type Format string

const (
	FormatTable Format = "table"
	FormatYAML  Format = "yaml"
)

// ParseFormat accepts "table" and "yaml", case-insensitively. Empty means table.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(strings.TrimSpace(s))); f {
	case "", FormatTable:
		return FormatTable, nil
	case FormatYAML:
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("%w: %q", ErrUnknownFormat, s)
	}
}

// Write renders res to w in the given format.
func Write(w io.Writer, f Format, res Result) error {
	switch f {
	case FormatTable:
		return WriteTable(w, res)
	case FormatYAML:
		return WriteYAML(w, res)
	default:
		return fmt.Errorf("%w: %q", ErrUnknownFormat, f)
	}
}

// WriteTable renders res as a two-column table with grouped numbers.
func WriteTable(w io.Writer, res Result) error {
	p := message.NewPrinter(language.English)

	t := table.NewWriter()
	t.SetOutputMirror(w)
	t.SetStyle(table.StyleLight)
	t.SetTitle("lrubench " + res.RunID)
	t.AppendHeader(table.Row{"Metric", "Value"})
	t.SetColumnConfigs([]table.ColumnConfig{
		{Number: 2, Align: text.AlignRight},
	})

	t.AppendRows([]table.Row{
		{"capacity", p.Sprintf("%d", res.Config.Capacity)},
		{"workers", p.Sprintf("%d", res.Config.Workers)},
		{"key space", p.Sprintf("%d", res.Config.KeySpace)},
		{"seed", fmt.Sprintf("%d", res.Config.Seed)},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"ops", p.Sprintf("%d", res.Ops)},
		{"gets", p.Sprintf("%d", res.Gets)},
		{"puts", p.Sprintf("%d", res.Puts)},
		{"removes", p.Sprintf("%d", res.Removes)},
		{"hit ratio", fmt.Sprintf("%.2f%%", res.HitRatio()*100)},
		{"elapsed", res.Elapsed.String()},
		{"ops/sec", p.Sprintf("%d", uint64(res.Throughput()))},
	})
	t.AppendSeparator()
	t.AppendRows([]table.Row{
		{"cache entries", p.Sprintf("%d", res.Cache.Len)},
		{"cache hits", p.Sprintf("%d", res.Cache.Hits)},
		{"cache misses", p.Sprintf("%d", res.Cache.Misses)},
		{"cache evictions", p.Sprintf("%d", res.Cache.Evictions)},
	})

	t.Render()
	return nil
}

type yamlReport struct {
	RunID      string    `yaml:"run_id"`
	Started    string    `yaml:"started"`
	Elapsed    string    `yaml:"elapsed"`
	Config     Config    `yaml:"config"`
	Ops        yamlOps   `yaml:"ops"`
	HitRatio   float64   `yaml:"hit_ratio"`
	Throughput float64   `yaml:"ops_per_sec"`
	Cache      yamlCache `yaml:"cache"`
}

type yamlOps struct {
	Total   uint64 `yaml:"total"`
	Gets    uint64 `yaml:"gets"`
	Hits    uint64 `yaml:"hits"`
	Misses  uint64 `yaml:"misses"`
	Puts    uint64 `yaml:"puts"`
	Removes uint64 `yaml:"removes"`
}

type yamlCache struct {
	Entries   int    `yaml:"entries"`
	Capacity  int    `yaml:"capacity"`
	Hits      uint64 `yaml:"hits"`
	Misses    uint64 `yaml:"misses"`
	Evictions uint64 `yaml:"evictions"`
}

// WriteYAML renders res as a YAML document.
func WriteYAML(w io.Writer, res Result) error {
	doc := yamlReport{
		RunID:   res.RunID,
		Started: res.Started.UTC().Format(time.RFC3339),
		Elapsed: res.Elapsed.String(),
		Config:  res.Config,
		Ops: yamlOps{
			Total:   res.Ops,
			Gets:    res.Gets,
			Hits:    res.Hits,
			Misses:  res.Misses,
			Puts:    res.Puts,
			Removes: res.Removes,
		},
		HitRatio:   res.HitRatio(),
		Throughput: res.Throughput(),
		Cache: yamlCache{
			Entries:   res.Cache.Len,
			Capacity:  res.Cache.Capacity,
			Hits:      res.Cache.Hits,
			Misses:    res.Cache.Misses,
			Evictions: res.Cache.Evictions,
		},
	}

	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(doc); err != nil {
		return fmt.Errorf("encode report: %w", err)
	}
	return enc.Close()
}
