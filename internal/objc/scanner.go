package objc

import "regexp"

// Declaration patterns. The grammar is deliberately tolerant: real
// headers carry macros, nullability annotations and formatting these
// expressions do not model, and any declaration a pattern cannot
// account for is skipped rather than reported as an error.
var (
	lineCommentRe  = regexp.MustCompile(`//.*`)
	blockCommentRe = regexp.MustCompile(`(?s)/\*.*?\*/`)

	importRe = regexp.MustCompile(`#import\s+[<"]([^>"]+)[>"]`)

	// An interface block runs from @interface to the first @end, so a
	// nested @interface truncates the outer block early.
	interfaceBlockRe  = regexp.MustCompile(`(?s)@interface\s+\w+.*?@end`)
	interfaceHeaderRe = regexp.MustCompile(`@interface\s+(\w+)\s*(?::\s*(\w+))?\s*(?:<([^>]+)>)?`)

	propertyRe    = regexp.MustCompile(`@property\s*\(([^)]*)\)\s*([^;]+?)\s*(\w+)\s*;`)
	methodRe      = regexp.MustCompile(`([-+])\s*\(([^)]+)\)\s*([^;{]+)`)
	methodParamRe = regexp.MustCompile(`\(([^)]+)\)\s*(\w+)`)

	// Only the trailing-alias typedef form declares an enum name this
	// grammar can capture; NS_ENUM(type, Name) carries the name inside
	// the macro arguments and is skipped.
	enumRe      = regexp.MustCompile(`typedef\s+(?:NS_ENUM|NS_OPTIONS|enum)\s*(?:\([^)]*\))?\s*(?:\w+\s*)?\{([^}]+)\}\s*(\w+)\s*;`)
	enumValueRe = regexp.MustCompile(`(\w+)(?:\s*=\s*([^,}]+))?`)

	// Constants and free functions are recognized on single lines
	// only. Anchoring at line start keeps property and parameter tails
	// from being misread as constant declarations.
	constantRe = regexp.MustCompile(`(?m)^[ \t]*(?:extern[ \t]+)?(?:const[ \t]+)?(\w+[ \t]*\*?)[ \t]+(\w+)[ \t]*(?:=[ \t]*[^;\n]+)?;[ \t]*$`)
	functionRe = regexp.MustCompile(`(?m)^[ \t]*(?:extern[ \t]+)?(\w+[ \t]*\*?)[ \t]+(\w+)[ \t]*\(([^)\n]*)\)[ \t]*;[ \t]*$`)
)

// StripComments removes // line comments and /* */ block comments,
// including block comments spanning multiple lines. Comment markers
// inside string literals are not recognized; header files do not hit
// this in practice.
func StripComments(src string) string {
	src = lineCommentRe.ReplaceAllString(src, "")
	return blockCommentRe.ReplaceAllString(src, "")
}

// Imports returns the distinct import targets of src in
// first-appearance order.
func Imports(src string) []string {
	var imports []string
	seen := make(map[string]bool)
	for _, m := range importRe.FindAllStringSubmatch(src, -1) {
		if seen[m[1]] {
			continue
		}
		seen[m[1]] = true
		imports = append(imports, m[1])
	}
	return imports
}

// InterfaceBlocks returns every @interface..@end block of src in
// declaration order. Protocol blocks are not included.
func InterfaceBlocks(src string) []string {
	return interfaceBlockRe.FindAllString(src, -1)
}
