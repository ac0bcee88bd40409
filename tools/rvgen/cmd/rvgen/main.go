// Command rvgen writes the board package for a board description.  It is
// normally run from a go:generate directive next to the description:
//
//	//go:generate go run rvperiph/tools/rvgen/cmd/rvgen -o board_gen.go board.yaml
package main

import (
	"flag"
	"os"
	"path/filepath"

	"rvperiph/lib/trust"
	"rvperiph/tools/rvgen"
)

var outfile = flag.String("o", "", "output filename (default stdout)")
var pkg = flag.String("p", "", "package to emit generated code into (default from the description)")
var imp = flag.String("i", rvgen.DefaultImport, "import path prefix of the aclint, plic and riscv packages")
var verbose = flag.Bool("v", false, "debug logging")

func main() {
	flag.Parse()
	if flag.NArg() != 1 {
		trust.Fatalf(2, "usage: rvgen [-v] [-p <pkg>] [-i <import prefix>] [-o <outputfile>] <board.yaml>")
	}
	if *verbose {
		trust.Verbose()
	}

	def, err := rvgen.Load(flag.Arg(0))
	if err != nil {
		trust.Fatalf(1, "%v", err)
	}
	opts := rvgen.Options{
		Package:  *pkg,
		Import:   *imp,
		Filename: *outfile,
	}
	src, err := rvgen.Generate(def, opts)
	if err != nil {
		if src != nil && *outfile != "" {
			keepBroken(*outfile, src)
		}
		trust.Fatalf(1, "%s: %v", flag.Arg(0), err)
	}

	if *outfile == "" {
		if _, err := os.Stdout.Write(src); err != nil {
			trust.Fatalf(1, "writing output: %v", err)
		}
		return
	}
	if err := os.WriteFile(*outfile, src, 0o644); err != nil {
		trust.Fatalf(1, "writing %s: %v", *outfile, err)
	}
	trust.Infof("generated %s", filepath.Clean(*outfile))
}

// keepBroken saves source that failed to format next to the output so the
// templates can be debugged.
func keepBroken(outfile string, src []byte) {
	if err := os.WriteFile(outfile+".broken", src, 0o644); err != nil {
		trust.Warnf("keeping unformatted output: %v", err)
	}
}
