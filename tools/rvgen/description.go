// Package rvgen turns a board description into a Go package of zero-sized
// peripheral handles for that board: the hart identity type, the CLINT and
// PLIC bound to their base addresses, and one accessor per named per-hart
// register.
package rvgen

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// BoardDef is a board description as loaded from YAML.
type BoardDef struct {
	Package     string    `yaml:"package"`
	Description string    `yaml:"description"`
	Harts       []string  `yaml:"harts"`
	Clint       *ClintDef `yaml:"clint"`
	Plic        *PlicDef  `yaml:"plic"`

	SourceFilename string `yaml:"-"` // set by Load
}

// ClintDef places the CLINT.  Freq is the mtime frequency in Hz; without it
// no delays are generated.
type ClintDef struct {
	Base       uint64            `yaml:"base"`
	Freq       uint64            `yaml:"freq"`
	AsyncDelay bool              `yaml:"async_delay"`
	Mtimecmps  []RegisterNameDef `yaml:"mtimecmps"`
	Msips      []RegisterNameDef `yaml:"msips"`
}

type PlicDef struct {
	Base uint64            `yaml:"base"`
	Ctxs []RegisterNameDef `yaml:"ctxs"`
}

// RegisterNameDef asks for a method called Name returning the register (or
// context) of Hart.  Label is used in the method's doc comment.
type RegisterNameDef struct {
	Name  string `yaml:"name"`
	Hart  string `yaml:"hart"`
	Label string `yaml:"label"`
}

// Doc is the label, or the hart name when there is none.
func (r RegisterNameDef) Doc() string {
	if r.Label != "" {
		return r.Label
	}
	return r.Hart
}

// Parse decodes a board description.  It does not validate it.
func Parse(data []byte) (*BoardDef, error) {
	var def BoardDef
	if err := yaml.Unmarshal(data, &def); err != nil {
		return nil, fmt.Errorf("parsing board description: %w", err)
	}
	return &def, nil
}

// Load reads and decodes the board description at path.
func Load(path string) (*BoardDef, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading %s: %w", path, err)
	}
	def, err := Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	def.SourceFilename = path
	return def, nil
}

// hartNumber is the position of name in Harts, or -1.
func (b *BoardDef) hartNumber(name string) int {
	for i, h := range b.Harts {
		if h == name {
			return i
		}
	}
	return -1
}
