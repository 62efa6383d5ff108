package main

import (
	"fmt"
	"log"
	"os"

	"github.com/objc-tools/fwkgen/internal/objc"
)

func main() {
	path := "testdata/headers/SimpleView.h"
	if len(os.Args) > 1 {
		path = os.Args[1]
	}

	data, err := os.ReadFile(path)
	if err != nil {
		log.Fatal(err)
	}
	text, err := objc.DecodeBytes(data)
	if err != nil {
		log.Fatal(err)
	}

	api := objc.ParseFile(path, text)

	fmt.Println("=== IMPORTS ===")
	fmt.Printf("Count: %d\n", len(api.Imports))
	for _, imp := range api.Imports {
		fmt.Printf("  %s\n", imp)
	}

	fmt.Println("\n=== CLASSES ===")
	fmt.Printf("Count: %d\n", len(api.Classes))
	for _, c := range api.Classes {
		fmt.Printf("  %s : %s %v\n", c.Name, c.Superclass, c.Protocols)
		for _, p := range c.Properties {
			fmt.Printf("    @property(%v) %s %s\n", p.Attributes, p.Type, p.Name)
		}
		for _, m := range c.Methods {
			fmt.Printf("    %s\n", m.Signature)
		}
	}

	fmt.Println("\n=== ENUMS ===")
	fmt.Printf("Count: %d\n", len(api.Enums))
	for _, e := range api.Enums {
		fmt.Printf("  %s\n", e.Name)
		for _, v := range e.Values {
			if v.Value != "" {
				fmt.Printf("    %s = %s\n", v.Name, v.Value)
			} else {
				fmt.Printf("    %s\n", v.Name)
			}
		}
	}

	fmt.Println("\n=== CONSTANTS ===")
	fmt.Printf("Count: %d\n", len(api.Constants))
	for _, c := range api.Constants {
		fmt.Printf("  %s %s\n", c.Type, c.Name)
	}

	fmt.Println("\n=== FUNCTIONS ===")
	fmt.Printf("Count: %d\n", len(api.Functions))
	for _, f := range api.Functions {
		fmt.Printf("  %s %s (%d params)\n", f.ReturnType, f.Name, len(f.Params))
	}
}
