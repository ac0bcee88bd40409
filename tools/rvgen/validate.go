package rvgen

import (
	"errors"
	"fmt"
	"go/token"
	"strings"
)

// MaxHarts is the largest number of harts a board may declare.
const MaxHarts = 256

// methods the generated CLINT and PLIC already have
var reservedMethods = map[string]bool{
	"Freq": true, "Delay": true, "AsyncDelay": true,
	"MSWI": true, "MTIMER": true, "Mtime": true,
	"Enable": true, "Disable": true, "IsEnabled": true, "IsInterrupting": true,
	"MSWIEnable": true, "MSWIDisable": true, "MSWIIsEnabled": true, "MSWIIsInterrupting": true,
	"MTIMEREnable": true, "MTIMERDisable": true, "MTIMERIsEnabled": true, "MTIMERIsInterrupting": true,
	"Priorities": true, "Pendings": true, "Ctx": true, "CtxMhartid": true,
}

// reserved package level names
var reservedIdents = map[string]bool{
	"HartID": true, "CLINT": true, "PLIC": true,
}

// Validate reports every problem in the description at once.
func (b *BoardDef) Validate() error {
	var errs []error
	fail := func(format string, args ...any) {
		errs = append(errs, fmt.Errorf(format, args...))
	}

	if !token.IsIdentifier(b.Package) {
		fail("package %q is not a Go identifier", b.Package)
	}
	if !oneLine(b.Description) {
		fail("description must be a single line")
	}

	switch {
	case len(b.Harts) == 0:
		fail("at least one hart is required")
	case len(b.Harts) > MaxHarts:
		fail("%d harts declared, at most %d are supported", len(b.Harts), MaxHarts)
	}
	seen := map[string]bool{}
	for _, h := range b.Harts {
		switch {
		case !token.IsIdentifier(h) || !token.IsExported(h):
			fail("hart %q is not an exported Go identifier", h)
		case reservedIdents[h]:
			fail("hart %q collides with a generated type", h)
		case seen[h]:
			fail("hart %q declared twice", h)
		}
		seen[h] = true
	}

	if b.Clint == nil && b.Plic == nil {
		fail("board has neither a clint nor a plic")
	}
	if c := b.Clint; c != nil {
		if c.Base%4 != 0 {
			fail("clint base %#x is not 4 byte aligned", c.Base)
		}
		if c.AsyncDelay && c.Freq == 0 {
			fail("clint async_delay needs freq")
		}
		methods := map[string]bool{}
		b.checkNames("clint mtimecmps", c.Mtimecmps, methods, fail)
		b.checkNames("clint msips", c.Msips, methods, fail)
	}
	if p := b.Plic; p != nil {
		if p.Base%4 != 0 {
			fail("plic base %#x is not 4 byte aligned", p.Base)
		}
		b.checkNames("plic ctxs", p.Ctxs, map[string]bool{}, fail)
	}
	return errors.Join(errs...)
}

// checkNames validates accessors that become methods of the same type; seen
// is shared between lists generated onto one type.
func (b *BoardDef) checkNames(what string, regs []RegisterNameDef, seen map[string]bool,
	fail func(string, ...any)) {
	for _, r := range regs {
		switch {
		case !token.IsIdentifier(r.Name) || !token.IsExported(r.Name):
			fail("%s: %q is not an exported Go identifier", what, r.Name)
		case reservedMethods[r.Name]:
			fail("%s: %q collides with a generated method", what, r.Name)
		case seen[r.Name]:
			fail("%s: %q declared twice", what, r.Name)
		}
		seen[r.Name] = true
		if !oneLine(r.Label) {
			fail("%s: label of %s must be a single line", what, r.Name)
		}
		if b.hartNumber(r.Hart) < 0 {
			fail("%s: %s refers to unknown hart %q", what, r.Name, r.Hart)
		}
	}
}

// description and labels end up in // comments
func oneLine(s string) bool {
	return !strings.ContainsAny(s, "\r\n")
}
