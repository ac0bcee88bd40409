package rvgen

import (
	"go/parser"
	"go/token"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func mustContain(t *testing.T, output, substr string) {
	t.Helper()
	if !strings.Contains(output, substr) {
		t.Errorf("output does not contain %q\nOutput:\n%s", substr, output)
	}
}

func mustNotContain(t *testing.T, output, substr string) {
	t.Helper()
	if strings.Contains(output, substr) {
		t.Errorf("output should not contain %q", substr)
	}
}

func generate(t *testing.T, def *BoardDef, opts Options) string {
	t.Helper()
	src, err := Generate(def, opts)
	require.NoError(t, err)
	_, err = parser.ParseFile(token.NewFileSet(), "board_gen.go", src, parser.ParseComments)
	require.NoError(t, err, "generated code must parse:\n%s", src)
	return string(src)
}

func TestGenerateHeader(t *testing.T) {
	def := virt3(t)
	def.SourceFilename = "boards/virt3/board.yaml"
	out := generate(t, def, Options{})

	mustContain(t, out, "// Code generated by rvgen from board.yaml. DO NOT EDIT.")
	mustContain(t, out, "// QEMU virt machine with three harts.\npackage virt3\n")
	mustContain(t, out, `"rvperiph/hardware/aclint"`)
	mustContain(t, out, `"rvperiph/hardware/plic"`)
	mustContain(t, out, `"rvperiph/hardware/riscv"`)
}

func TestGenerateHarts(t *testing.T) {
	out := generate(t, virt3(t), Options{})

	mustContain(t, out, "type HartID struct{ n uint8 }")
	mustContain(t, out, "H0 = HartID{0}")
	mustContain(t, out, "H2 = HartID{2}")
	mustContain(t, out, `var hartNames = [...]string{"H0", "H1", "H2"}`)
	assert.Regexp(t, `func \(HartID\) Max\(\) int +\{ return 2 \}`, out)
	mustContain(t, out, "func (HartID) FromNumber(n int) (HartID, error) {")
	mustContain(t, out, "riscv.IndexFrom[HartID](n)")
}

func TestGenerateClint(t *testing.T) {
	out := generate(t, virt3(t), Options{})

	mustContain(t, out, "func (clintBase) Base() uintptr { return 0x2000000 }")
	mustContain(t, out, "\taclint.CLINT[clintBase, HartID]\n")
	mustContain(t, out, "func (CLINT) Freq() uint64 { return 10000000 }")
	mustContain(t, out, "func (c CLINT) Delay() aclint.Delay {")
	mustContain(t, out, "func (c CLINT) AsyncDelay() *aclint.AsyncDelay[HartID] {")
	mustContain(t, out, "// Mtimecmp0 returns the mtimecmp register of hart `H0`.")
	mustContain(t, out, "func (c CLINT) Mtimecmp2() aclint.MTIMECMP {\n\treturn c.MTIMER().Mtimecmp(H2)\n}")
	mustContain(t, out, "// Msip1 returns the msip register of hart H1.")
	mustContain(t, out, "func (c CLINT) Msip1() aclint.MSIP {\n\treturn c.MSWI().Msip(H1)\n}")
}

func TestGenerateClintWithoutFreq(t *testing.T) {
	def := virt3(t)
	def.Clint.Freq = 0
	def.Clint.AsyncDelay = false
	out := generate(t, def, Options{})

	mustNotContain(t, out, "Freq()")
	mustNotContain(t, out, "Delay")
}

func TestGeneratePlic(t *testing.T) {
	out := generate(t, virt3(t), Options{})

	mustContain(t, out, "func (plicBase) Base() uintptr { return 0xc000000 }")
	mustContain(t, out, "\tplic.PLIC[plicBase, HartID]\n")
	mustContain(t, out, "func (p PLIC) Ctx1() plic.CTX {\n\treturn p.Ctx(H1)\n}")
}

func TestGenerateClintOnly(t *testing.T) {
	def := virt3(t)
	def.Plic = nil
	out := generate(t, def, Options{})

	mustNotContain(t, out, "plic")
	mustContain(t, out, "type CLINT struct")
}

func TestGeneratePlicOnly(t *testing.T) {
	def := virt3(t)
	def.Clint = nil
	out := generate(t, def, Options{})

	mustNotContain(t, out, "aclint")
	mustContain(t, out, "type PLIC struct")
	mustContain(t, out, `"rvperiph/hardware/riscv"`)
}

func TestGenerateOptions(t *testing.T) {
	out := generate(t, virt3(t), Options{Package: "board", Import: "example.com/hw"})

	mustContain(t, out, "package board\n")
	mustContain(t, out, `"example.com/hw/aclint"`)
	mustNotContain(t, out, "rvperiph")
}

func TestGenerateInvalid(t *testing.T) {
	def := virt3(t)
	def.Harts = nil
	src, err := Generate(def, Options{})
	assert.ErrorContains(t, err, "at least one hart")
	assert.Nil(t, src)

	def = virt3(t)
	_, err = Generate(def, Options{Package: "not a package"})
	assert.ErrorContains(t, err, "is not a Go identifier")
	assert.Equal(t, "virt3", def.Package, "options never modify the description")
}

func TestGenerateCommittedBoards(t *testing.T) {
	for _, board := range []string{"hifive1", "virt3"} {
		t.Run(board, func(t *testing.T) {
			dir := filepath.Join("..", "..", "hardware", "boards", board)
			def, err := Load(filepath.Join(dir, "board.yaml"))
			require.NoError(t, err)
			want, err := os.ReadFile(filepath.Join(dir, "board_gen.go"))
			require.NoError(t, err)

			got := generate(t, def, Options{Filename: "board_gen.go"})
			assert.Equal(t, string(want), got, "%s/board_gen.go is stale, run go generate", board)
		})
	}
}

func TestGenerateWithoutPerHartLists(t *testing.T) {
	def, err := Load(filepath.Join("..", "..", "hardware", "boards", "hifive1", "board.yaml"))
	require.NoError(t, err)
	require.Empty(t, def.Clint.Mtimecmps)
	require.Empty(t, def.Clint.Msips)
	require.Empty(t, def.Plic.Ctxs)

	out := generate(t, def, Options{})
	mustContain(t, out, "func (clintBase) Base() uintptr { return 0x2000000 }")
	mustContain(t, out, "func (CLINT) Freq() uint64 { return 32768 }")
	mustContain(t, out, "func (c CLINT) Delay() aclint.Delay {")
	mustNotContain(t, out, "aclint.MTIMECMP {")
	mustNotContain(t, out, "aclint.MSIP {")
	mustNotContain(t, out, "plic.CTX {")
}
