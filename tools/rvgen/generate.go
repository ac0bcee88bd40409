package rvgen

import (
	"bytes"
	"fmt"
	"path/filepath"

	"golang.org/x/tools/imports"

	"rvperiph/lib/trust"
)

// DefaultImport is the import path prefix of the hardware packages.
const DefaultImport = "rvperiph/hardware"

// Options control emission.  Empty fields keep the description's values.
type Options struct {
	Package  string // overrides BoardDef.Package
	Import   string // import path prefix of aclint, plic and riscv
	Filename string // name of the file being written, for formatting
}

type hartData struct {
	Name   string
	Number int
}

type boardData struct {
	*BoardDef
	Source  string
	Import  string
	Harts   []hartData
	MaxHart int
}

// Generate validates def and returns the formatted Go source of its board
// package.  When formatting fails the unformatted source is returned with
// the error so it can be inspected.
func Generate(def *BoardDef, opts Options) ([]byte, error) {
	board := *def
	if opts.Package != "" {
		board.Package = opts.Package
	}
	if err := board.Validate(); err != nil {
		return nil, err
	}
	data := boardData{
		BoardDef: &board,
		Source:   "board description",
		Import:   opts.Import,
		MaxHart:  len(board.Harts) - 1,
	}
	if board.SourceFilename != "" {
		data.Source = filepath.Base(board.SourceFilename)
	}
	if data.Import == "" {
		data.Import = DefaultImport
	}
	for i, h := range board.Harts {
		data.Harts = append(data.Harts, hartData{Name: h, Number: i})
	}
	trust.Debugf("rvgen: package %s, %d harts, clint %t, plic %t",
		board.Package, len(board.Harts), board.Clint != nil, board.Plic != nil)

	var buf bytes.Buffer
	if err := templates.ExecuteTemplate(&buf, "board", data); err != nil {
		return nil, fmt.Errorf("executing board template: %w", err)
	}
	filename := opts.Filename
	if filename == "" {
		filename = board.Package + "_gen.go"
	}
	out, err := imports.Process(filename, buf.Bytes(), nil)
	if err != nil {
		return buf.Bytes(), fmt.Errorf("formatting %s: %w", filename, err)
	}
	trust.Debugf("rvgen: %d bytes generated for %s", len(out), filename)
	return out, nil
}
