package main

import "github.com/objc-tools/fwkgen/internal/cli"

func main() {
	cli.Execute()
}
