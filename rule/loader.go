package rule

import (
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"gopkg.in/yaml.v3"
)

// ruleFile mirrors the YAML rule-definition format. Rows reference their
// dependencies by id; Load resolves those into positional index sets.
type ruleFile struct {
	Name  string    `yaml:"name"`
	Title string    `yaml:"title"`
	Dice  int       `yaml:"dice"`
	Rolls int       `yaml:"rolls"`
	Rows  []rowFile `yaml:"rows"`
}

type rowFile struct {
	ID          string   `yaml:"id"`
	Title       string   `yaml:"title"`
	Formula     string   `yaml:"formula"`
	Limit       int      `yaml:"limit"`
	Max         int      `yaml:"max"`
	Playable    bool     `yaml:"playable"`
	Sum         bool     `yaml:"sum"`
	Bonus       bool     `yaml:"bonus"`
	RollCounter bool     `yaml:"rollCounter"`
	Result      bool     `yaml:"result"`
	Depends     []string `yaml:"depends"`
}

// Load reads a single YAML rule definition and returns the validated rule.
func Load(r io.Reader) (*Rule, error) {
	var rf ruleFile
	if err := yaml.NewDecoder(r).Decode(&rf); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidDefinition, err)
	}
	return rf.build()
}

// LoadFile reads a YAML rule definition from disk.
func LoadFile(path string) (*Rule, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()
	rule, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return rule, nil
}

// LoadDir loads every .yaml/.yml file in dir as a rule definition.
func LoadDir(dir string) ([]*Rule, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, err
	}
	var rules []*Rule
	for _, entry := range entries {
		if entry.IsDir() {
			continue
		}
		ext := strings.ToLower(filepath.Ext(entry.Name()))
		if ext != ".yaml" && ext != ".yml" {
			continue
		}
		rule, err := LoadFile(filepath.Join(dir, entry.Name()))
		if err != nil {
			return nil, err
		}
		rules = append(rules, rule)
	}
	return rules, nil
}

func (rf ruleFile) build() (*Rule, error) {
	rule := &Rule{
		Name:     rf.Name,
		Title:    rf.Title,
		NumDice:  rf.Dice,
		NumRolls: rf.Rolls,
		Rows:     make([]Row, len(rf.Rows)),
	}

	index := make(map[string]int, len(rf.Rows))
	for i, row := range rf.Rows {
		index[row.ID] = i
	}

	for i, row := range rf.Rows {
		deps := make([]int, 0, len(row.Depends))
		for _, ref := range row.Depends {
			j, ok := index[ref]
			if !ok {
				return nil, fmt.Errorf("%w: rule %q row %q depends on unknown row %q",
					ErrInvalidDefinition, rf.Name, row.ID, ref)
			}
			deps = append(deps, j)
		}
		rule.Rows[i] = Row{
			ID:          row.ID,
			Title:       row.Title,
			Expr:        row.Formula,
			Limit:       row.Limit,
			Max:         row.Max,
			Playable:    row.Playable,
			Sum:         row.Sum,
			Bonus:       row.Bonus,
			RollCounter: row.RollCounter,
			Result:      row.Result,
			DependsOn:   deps,
		}
	}

	if err := rule.finalize(); err != nil {
		return nil, err
	}
	return rule, nil
}
