// Package validate checks generated dashboards and rules: every PromQL
// expression must parse and reference only known metrics.
package validate

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/grafana/grafana-foundation-sdk/go/dashboard"
	"github.com/prometheus/prometheus/promql/parser"

	"github.com/donaldgifford/grocery-prices/tools/dashgen/rules"
)

// histogramSuffixes are series suffixes derived from a histogram's base name.
var histogramSuffixes = []string{"_bucket", "_count", "_sum"}

// Result collects validation findings. Errors fail generation; warnings
// do not.
type Result struct {
	Errors   []string
	Warnings []string
}

// Ok reports whether there are no errors.
func (r Result) Ok() bool {
	return len(r.Errors) == 0
}

// Err joins the errors under a label, or returns nil.
func (r Result) Err(label string) error {
	if r.Ok() {
		return nil
	}
	return fmt.Errorf("%s: %w", label, errors.New(strings.Join(r.Errors, "; ")))
}

// Expr validates one PromQL expression in the context named by where.
func (r *Result) Expr(where, expr string, known map[string]bool) {
	if strings.TrimSpace(expr) == "" {
		r.Errors = append(r.Errors, where+": empty expression")
		return
	}

	node, err := parser.ParseExpr(expr)
	if err != nil {
		r.Errors = append(r.Errors, fmt.Sprintf("%s: parsing %q: %v", where, expr, err))
		return
	}

	parser.Inspect(node, func(n parser.Node, _ []parser.Node) error {
		vs, ok := n.(*parser.VectorSelector)
		if !ok || vs.Name == "" {
			return nil
		}
		if !isKnown(vs.Name, known) {
			r.Errors = append(r.Errors, fmt.Sprintf("%s: unknown metric %q", where, vs.Name))
		}
		return nil
	})
}

func isKnown(name string, known map[string]bool) bool {
	if known[name] {
		return true
	}
	for _, suffix := range histogramSuffixes {
		if base, ok := strings.CutSuffix(name, suffix); ok && known[base] {
			return true
		}
	}
	return false
}

// panelJSON is the subset of the Grafana panel model that carries queries.
type panelJSON struct {
	Type    string `json:"type"`
	Title   string `json:"title"`
	Targets []struct {
		Expr string `json:"expr"`
	} `json:"targets"`
	Panels []panelJSON `json:"panels"`
}

// Dashboard validates every Prometheus target in the dashboard, including
// panels nested in rows. It walks the JSON model Grafana will load.
func Dashboard(dash *dashboard.Dashboard, known map[string]bool) Result {
	var res Result

	data, err := json.Marshal(dash)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("encoding dashboard: %v", err))
		return res
	}

	var model struct {
		Panels []panelJSON `json:"panels"`
	}
	if err := json.Unmarshal(data, &model); err != nil {
		res.Errors = append(res.Errors, fmt.Sprintf("decoding dashboard: %v", err))
		return res
	}

	for _, p := range model.Panels {
		if p.Type != "row" {
			res.panel(p, known)
			continue
		}
		if len(p.Panels) == 0 {
			res.Warnings = append(res.Warnings, fmt.Sprintf("row %q has no panels", p.Title))
		}
		for _, inner := range p.Panels {
			res.panel(inner, known)
		}
	}
	return res
}

func (r *Result) panel(p panelJSON, known map[string]bool) {
	title := p.Title
	if title == "" {
		title = "untitled panel"
	}

	if len(p.Targets) == 0 {
		r.Warnings = append(r.Warnings, fmt.Sprintf("panel %q has no targets", title))
	}
	for _, t := range p.Targets {
		r.Expr("panel "+title, t.Expr, known)
	}
}

// Rules validates every rule expression in a PrometheusRule resource.
func Rules(cr rules.PrometheusRule, known map[string]bool) Result {
	var res Result

	for _, g := range cr.Spec.Groups {
		for _, rule := range g.Rules {
			name := rule.Record
			if name == "" {
				name = rule.Alert
			}
			if name == "" {
				res.Errors = append(res.Errors, fmt.Sprintf("group %s: rule has neither record nor alert", g.Name))
				continue
			}
			res.Expr(fmt.Sprintf("group %s rule %s", g.Name, name), rule.Expr, known)
		}
	}
	return res
}
