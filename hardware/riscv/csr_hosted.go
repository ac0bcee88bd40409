//go:build !(tinygo && riscv)

package riscv

// there are no CSR instructions to issue off target
func defaultCSRFile() CSRFile {
	return NewSimCSRFile()
}
