// Package glossary loads per-domain term glossaries and extraction
// patterns. Glossaries are YAML files with two lists, terms and
// compound_terms; each entry is either a bare string or a map with a
// term and an optional devanagari phonetic spelling. Both shapes are
// normalized to Entry at load time.
package glossary

import (
	"embed"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

//go:embed data/*.yaml
var builtinFS embed.FS

//go:embed data/patterns.json
var builtinPatterns []byte

// Entry is a normalized glossary entry. Devanagari is empty when the
// source entry carried no phonetic spelling.
type Entry struct {
	Term       string
	Devanagari string
}

// UnmarshalYAML accepts either a bare string or a {term, devanagari} map.
func (e *Entry) UnmarshalYAML(value *yaml.Node) error {
	if value.Kind == yaml.ScalarNode {
		var s string
		if err := value.Decode(&s); err != nil {
			return err
		}
		e.Term = s
		return nil
	}

	var rec struct {
		Term       string `yaml:"term"`
		Devanagari string `yaml:"devanagari"`
	}
	if err := value.Decode(&rec); err != nil {
		return err
	}
	if rec.Term == "" {
		return fmt.Errorf("glossary entry missing term field")
	}
	e.Term = rec.Term
	e.Devanagari = rec.Devanagari
	return nil
}

// Glossary holds the normalized term lists for one domain, plus any
// supplementary regex extraction patterns. Immutable after Load.
type Glossary struct {
	Domain        string
	Terms         []Entry `yaml:"terms"`
	CompoundTerms []Entry `yaml:"compound_terms"`
	Patterns      []string
}

// NotFoundError indicates no glossary exists for the requested domain.
type NotFoundError struct {
	Domain string
	Path   string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("glossary not found for domain %q: %s", e.Domain, e.Path)
}

// Load reads the glossary for domain. When dir is non-empty, a
// <dir>/<domain>.yaml file takes precedence; otherwise the builtin
// embedded glossaries are used. Returns *NotFoundError when neither
// location has the domain.
func Load(domain, dir string) (*Glossary, error) {
	var (
		data []byte
		path string
		err  error
	)

	if dir != "" {
		path = filepath.Join(dir, domain+".yaml")
		data, err = os.ReadFile(path)
	}
	if data == nil {
		path = "data/" + domain + ".yaml"
		data, err = builtinFS.ReadFile(path)
	}
	if err != nil {
		return nil, &NotFoundError{Domain: domain, Path: path}
	}

	g := &Glossary{Domain: domain}
	if err := yaml.Unmarshal(data, g); err != nil {
		return nil, fmt.Errorf("parsing glossary %s: %w", path, err)
	}

	g.Patterns = loadPatterns(domain, dir)
	return g, nil
}

// Domains lists the domains available in the builtin glossaries.
func Domains() []string {
	entries, err := builtinFS.ReadDir("data")
	if err != nil {
		return nil
	}
	var domains []string
	for _, e := range entries {
		name := e.Name()
		if strings.HasSuffix(name, ".yaml") {
			domains = append(domains, strings.TrimSuffix(name, ".yaml"))
		}
	}
	return domains
}

// patternEntry accepts either a bare regex string or a {regex: ...} object.
type patternEntry struct {
	Regex string `json:"regex"`
}

func (p *patternEntry) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err == nil {
		p.Regex = s
		return nil
	}
	type alias patternEntry
	var a alias
	if err := json.Unmarshal(data, &a); err != nil {
		return err
	}
	p.Regex = a.Regex
	return nil
}

// loadPatterns reads the supplementary regex list for domain. Patterns
// are an optional extraction signal: a missing or unparseable file
// yields no patterns rather than an error.
func loadPatterns(domain, dir string) []string {
	data := builtinPatterns
	if dir != "" {
		if override, err := os.ReadFile(filepath.Join(dir, "patterns.json")); err == nil {
			data = override
		}
	}

	var all map[string][]patternEntry
	if err := json.Unmarshal(data, &all); err != nil {
		return nil
	}

	var patterns []string
	for _, entry := range all[domain] {
		if entry.Regex != "" {
			patterns = append(patterns, entry.Regex)
		}
	}
	return patterns
}
