package hifive1

//go:generate go run rvperiph/tools/rvgen/cmd/rvgen -o board_gen.go board.yaml
