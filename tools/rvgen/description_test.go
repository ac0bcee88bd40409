package rvgen

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const virt3YAML = `
package: virt3
description: QEMU virt machine with three harts.
harts: [H0, H1, H2]
clint:
  base: 0x2000000
  freq: 10000000
  async_delay: true
  mtimecmps:
    - {name: Mtimecmp0, hart: H0, label: "` + "`H0`" + `"}
    - {name: Mtimecmp1, hart: H1}
    - {name: Mtimecmp2, hart: H2}
  msips:
    - {name: Msip0, hart: H0}
    - {name: Msip1, hart: H1}
    - {name: Msip2, hart: H2}
plic:
  base: 0xC000000
  ctxs:
    - {name: Ctx0, hart: H0}
    - {name: Ctx1, hart: H1}
    - {name: Ctx2, hart: H2}
`

func virt3(t *testing.T) *BoardDef {
	t.Helper()
	def, err := Parse([]byte(virt3YAML))
	require.NoError(t, err)
	return def
}

func TestParse(t *testing.T) {
	def := virt3(t)

	assert.Equal(t, "virt3", def.Package)
	assert.Equal(t, []string{"H0", "H1", "H2"}, def.Harts)
	require.NotNil(t, def.Clint)
	assert.Equal(t, uint64(0x2000000), def.Clint.Base)
	assert.Equal(t, uint64(10_000_000), def.Clint.Freq)
	assert.True(t, def.Clint.AsyncDelay)
	require.Len(t, def.Clint.Mtimecmps, 3)
	assert.Equal(t, "`H0`", def.Clint.Mtimecmps[0].Doc())
	assert.Equal(t, "H1", def.Clint.Mtimecmps[1].Doc())
	require.NotNil(t, def.Plic)
	assert.Equal(t, uint64(0xC000000), def.Plic.Base)
	assert.Len(t, def.Plic.Ctxs, 3)
	assert.Empty(t, def.SourceFilename)
	assert.NoError(t, def.Validate())
}

func TestParseErrors(t *testing.T) {
	_, err := Parse([]byte("harts: {not: a list}"))
	assert.ErrorContains(t, err, "parsing board description")
}

func TestLoad(t *testing.T) {
	path := filepath.Join(t.TempDir(), "virt3.yaml")
	require.NoError(t, os.WriteFile(path, []byte(virt3YAML), 0o644))

	def, err := Load(path)
	require.NoError(t, err)
	assert.Equal(t, path, def.SourceFilename)
	assert.Equal(t, "virt3", def.Package)

	_, err = Load(filepath.Join(t.TempDir(), "missing.yaml"))
	assert.ErrorContains(t, err, "reading")
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name   string
		modify func(*BoardDef)
		want   string
	}{
		{"bad package", func(b *BoardDef) { b.Package = "virt-3" }, `package "virt-3"`},
		{"no harts", func(b *BoardDef) { b.Harts = nil }, "at least one hart"},
		{"unexported hart", func(b *BoardDef) { b.Harts[1] = "h1" }, `hart "h1" is not an exported`},
		{"duplicate hart", func(b *BoardDef) { b.Harts[2] = "H0" }, `hart "H0" declared twice`},
		{"reserved hart", func(b *BoardDef) { b.Harts[0] = "CLINT" }, "collides with a generated type"},
		{"nothing", func(b *BoardDef) { b.Clint, b.Plic = nil, nil }, "neither a clint nor a plic"},
		{"clint alignment", func(b *BoardDef) { b.Clint.Base = 0x2000002 }, "clint base 0x2000002"},
		{"plic alignment", func(b *BoardDef) { b.Plic.Base = 0xC000001 }, "plic base 0xc000001"},
		{"async without freq", func(b *BoardDef) { b.Clint.Freq = 0 }, "async_delay needs freq"},
		{"unknown hart", func(b *BoardDef) { b.Plic.Ctxs[2].Hart = "H9" }, `unknown hart "H9"`},
		{"duplicate accessor", func(b *BoardDef) { b.Clint.Msips[0].Name = "Mtimecmp0" }, `"Mtimecmp0" declared twice`},
		{"reserved accessor", func(b *BoardDef) { b.Clint.Msips[0].Name = "Delay" }, "collides with a generated method"},
		{"bad accessor", func(b *BoardDef) { b.Plic.Ctxs[0].Name = "ctx0" }, `"ctx0" is not an exported`},
		{"multiline description", func(b *BoardDef) { b.Description = "virt\nfunc init() {}" }, "description must be a single line"},
		{"multiline label", func(b *BoardDef) { b.Clint.Msips[1].Label = "H1\r\n}" }, "label of Msip1 must be a single line"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			def := virt3(t)
			tt.modify(def)
			assert.ErrorContains(t, def.Validate(), tt.want)
		})
	}
}

func TestValidateReportsEverything(t *testing.T) {
	def := virt3(t)
	def.Package = ""
	def.Clint.Base = 3
	def.Plic.Ctxs[0].Hart = "nobody"

	err := def.Validate()
	require.Error(t, err)
	assert.ErrorContains(t, err, "package")
	assert.ErrorContains(t, err, "clint base 0x3")
	assert.ErrorContains(t, err, `unknown hart "nobody"`)
}

func TestValidateSameNameOnDifferentTypes(t *testing.T) {
	def := virt3(t)
	def.Plic.Ctxs[0].Name = "Msip0"
	assert.NoError(t, def.Validate(), "CLINT and PLIC accessors live on different types")
}

func TestValidateTooManyHarts(t *testing.T) {
	def := virt3(t)
	def.Harts = make([]string, MaxHarts+1)
	for i := range def.Harts {
		def.Harts[i] = "H" + string(rune('A'+i%26)) + string(rune('A'+i/26))
	}
	assert.ErrorContains(t, def.Validate(), "at most 256")
}
