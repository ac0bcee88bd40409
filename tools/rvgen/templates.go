package rvgen

import (
	"fmt"
	"text/template"
)

var funcMap = template.FuncMap{
	"hex": func(v uint64) string { return fmt.Sprintf("%#x", v) },
}

var templates = template.Must(template.New("").Funcs(funcMap).Parse(
	boardTmpl + hartsTmpl + clintTmpl + plicTmpl,
))

const boardTmpl = `{{define "board" -}}
// Code generated by rvgen from {{.Source}}. DO NOT EDIT.

// Package {{.Package}} gives typed access to the interrupt controllers of
// this board.
{{- with .Description}}
//
// {{.}}
{{- end}}
package {{.Package}}

import (
{{- if .Clint}}
	"{{.Import}}/aclint"
{{- end}}
{{- if .Plic}}
	"{{.Import}}/plic"
{{- end}}
	"{{.Import}}/riscv"
)
{{template "harts" .}}
{{- if .Clint}}{{template "clint" .}}{{end}}
{{- if .Plic}}{{template "plic" .}}{{end}}
{{- end}}
`

const hartsTmpl = `{{define "harts"}}
// HartID identifies a hart of this board.  The values below are the only
// ones that exist.
type HartID struct{ n uint8 }

var (
{{- range .Harts}}
	{{.Name}} = HartID{ {{- .Number -}} }
{{- end}}
)

var hartNames = [...]string{ {{- range $i, $h := .Harts}}{{if $i}}, {{end}}"{{$h.Name}}"{{end -}} }

func (h HartID) Number() int { return int(h.n) }
func (HartID) Min() int { return 0 }
func (HartID) Max() int { return {{.MaxHart}} }
func (h HartID) String() string { return hartNames[h.n] }

// FromNumber fails with riscv.ErrOutOfBounds unless n is a hart of this
// board.
func (HartID) FromNumber(n int) (HartID, error) {
	idx, err := riscv.IndexFrom[HartID](n)
	if err != nil {
		return HartID{}, err
	}
	return HartID{uint8(idx.Inner())}, nil
}
{{end}}`

const clintTmpl = `{{define "clint"}}
type clintBase struct{}

func (clintBase) Base() uintptr { return {{hex .Clint.Base}} }

// CLINT is the core-local interruptor of this board.
type CLINT struct {
	aclint.CLINT[clintBase, HartID]
}
{{- if .Clint.Freq}}

// Freq is the mtime frequency in Hz.
func (CLINT) Freq() uint64 { return {{.Clint.Freq}} }

// Delay busy-waits on mtime.
func (c CLINT) Delay() aclint.Delay {
	return aclint.NewDelay(c.Mtime(), c.Freq())
}
{{- end}}
{{- if .Clint.AsyncDelay}}

// AsyncDelay returns a delay bound to the running hart.  Its machine timer
// interrupt handler must call aclint.HandleMachineTimer(CLINT{}.MTIMER()).
func (c CLINT) AsyncDelay() *aclint.AsyncDelay[HartID] {
	return aclint.NewAsyncDelay(c.MTIMER(), c.Freq())
}
{{- end}}
{{- range .Clint.Mtimecmps}}

// {{.Name}} returns the mtimecmp register of hart {{.Doc}}.
func (c CLINT) {{.Name}}() aclint.MTIMECMP {
	return c.MTIMER().Mtimecmp({{.Hart}})
}
{{- end}}
{{- range .Clint.Msips}}

// {{.Name}} returns the msip register of hart {{.Doc}}.
func (c CLINT) {{.Name}}() aclint.MSIP {
	return c.MSWI().Msip({{.Hart}})
}
{{- end}}
{{end}}`

const plicTmpl = `{{define "plic"}}
type plicBase struct{}

func (plicBase) Base() uintptr { return {{hex .Plic.Base}} }

// PLIC is the platform-level interrupt controller of this board.
type PLIC struct {
	plic.PLIC[plicBase, HartID]
}
{{- range .Plic.Ctxs}}

// {{.Name}} returns the PLIC context of hart {{.Doc}}.
func (p PLIC) {{.Name}}() plic.CTX {
	return p.Ctx({{.Hart}})
}
{{- end}}
{{end}}`
