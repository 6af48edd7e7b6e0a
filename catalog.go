package barrage

import (
	_ "embed"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

//go:embed catalog.yaml
var defaultCatalogYAML []byte

// CatalogEntry is one weighted pattern with the node shapes it may be used for.
type CatalogEntry struct {
	Pattern Pattern `yaml:"pattern"`
	Weight  float64 `yaml:"weight"`
	// MinNum is the smallest branching factor the pattern is used for.
	MinNum int `yaml:"minNum,omitempty"`
	// MaxNum is the largest branching factor; 0 means unbounded.
	MaxNum int `yaml:"maxNum,omitempty"`
	// MaxDepth is the deepest node the pattern is used for; nil means any.
	MaxDepth *int `yaml:"maxDepth,omitempty"`
}

// admits reports whether the entry may be picked for a node with branching
// factor num at recursion depth depth.
func (e CatalogEntry) admits(num, depth int) bool {
	if !(e.Weight > 0) || num < e.MinNum {
		return false
	}
	if e.MaxNum > 0 && num > e.MaxNum {
		return false
	}
	return e.MaxDepth == nil || depth <= *e.MaxDepth
}

// unconstrained reports whether the entry admits every node.
func (e CatalogEntry) unconstrained() bool {
	return e.Weight > 0 && e.MinNum <= 2 && e.MaxNum == 0 && e.MaxDepth == nil
}

// Catalog is the fixed table of patterns the formulator picks from.
// Build one with LoadCatalog, ParseCatalog or DefaultCatalog; treat it as
// read-only afterwards.
type Catalog struct {
	Patterns []CatalogEntry `yaml:"patterns"`
}

// LoadCatalog reads and validates a YAML catalog file.
func LoadCatalog(path string) (*Catalog, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("barrage: failed to read catalog file: %w", err)
	}
	return ParseCatalog(data)
}

// ParseCatalog decodes and validates a YAML catalog.
func ParseCatalog(data []byte) (*Catalog, error) {
	var c Catalog
	if err := yaml.Unmarshal(data, &c); err != nil {
		return nil, fmt.Errorf("barrage: failed to parse catalog YAML: %w", err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

// DefaultCatalog returns the built-in catalog.
func DefaultCatalog() *Catalog {
	c, err := ParseCatalog(defaultCatalogYAML)
	if err != nil {
		panic(fmt.Sprintf("barrage: embedded catalog: %v", err))
	}
	return c
}

// Validate checks every token the tree builder dispatches on, so that
// unhandled patterns and unknown rudders surface here instead of mid-tree.
func (c *Catalog) Validate() error {
	if len(c.Patterns) == 0 {
		return fmt.Errorf("%w: no patterns", ErrInvalidCatalog)
	}
	fallback := false
	for i, e := range c.Patterns {
		if err := validatePattern(e.Pattern); err != nil {
			return fmt.Errorf("%w: patterns[%d] %q: %w", ErrInvalidCatalog, i, e.Pattern.String(), err)
		}
		if e.Weight < 0 {
			return fmt.Errorf("%w: patterns[%d] %q: weight must be >= 0, got %v", ErrInvalidCatalog, i, e.Pattern.String(), e.Weight)
		}
		if e.MinNum < 0 || e.MaxNum < 0 || (e.MaxNum > 0 && e.MaxNum < e.MinNum) {
			return fmt.Errorf("%w: patterns[%d] %q: bad num bounds [%d, %d]", ErrInvalidCatalog, i, e.Pattern.String(), e.MinNum, e.MaxNum)
		}
		if e.MaxDepth != nil && *e.MaxDepth < 0 {
			return fmt.Errorf("%w: patterns[%d] %q: maxDepth must be >= 0", ErrInvalidCatalog, i, e.Pattern.String())
		}
		if e.unconstrained() {
			fallback = true
		}
	}
	if !fallback {
		return fmt.Errorf("%w: need one positive-weight pattern with no num or depth limits", ErrInvalidCatalog)
	}
	return nil
}

// validatePattern checks the tokens of one descriptor against its family.
func validatePattern(p Pattern) error {
	switch p.Family {
	case FamilyXY, FamilyXZ:
		if p.Mode != modeFull && p.Mode != modeBack && p.Mode != modeFront {
			return fmt.Errorf("mode %q: want %s, %s or %s", p.Mode, modeFull, modeBack, modeFront)
		}
		if !IsRudderToken(p.Param) {
			return &UnknownRudderError{Token: p.Param}
		}
	case FamilyYZ:
		if _, err := angleToken(p.Mode); err != nil {
			return err
		}
		if !IsRudderToken(p.Param) {
			return &UnknownRudderError{Token: p.Param}
		}
	case FamilyRapid:
		if _, err := angleToken(p.Param); err != nil {
			return err
		}
	default:
		return &UnhandledPatternError{Pattern: p}
	}
	_, err := p.Offsets()
	return err
}

// Select picks a pattern for a node with branching factor num at depth.
func (c *Catalog) Select(src Source, num, depth int) (Pattern, error) {
	choices := make([]Choice[Pattern], 0, len(c.Patterns))
	for _, e := range c.Patterns {
		if e.admits(num, depth) {
			choices = append(choices, Choice[Pattern]{Weight: e.Weight, Value: e.Pattern})
		}
	}
	if len(choices) == 0 {
		return Pattern{}, fmt.Errorf("%w: num=%d depth=%d", ErrNoPattern, num, depth)
	}
	return Select(src, choices...), nil
}

// Len returns the number of catalog entries.
func (c *Catalog) Len() int {
	return len(c.Patterns)
}
