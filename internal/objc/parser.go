package objc

import "strings"

// ParseFile extracts the API surface of a single header. name is the
// path recorded on the result; src is the raw file text. Extraction is
// best-effort: declarations the grammar does not model are skipped,
// and a file with no recognizable declarations yields empty
// collections, never an error.
func ParseFile(name, src string) FileAPI {
	clean := StripComments(src)

	api := FileAPI{Path: name, Imports: Imports(clean)}
	for _, block := range InterfaceBlocks(clean) {
		if class, ok := parseInterface(block); ok {
			api.Classes = append(api.Classes, class)
		}
	}
	api.Enums = parseEnums(clean)
	api.Constants = parseConstants(clean)
	api.Functions = parseFunctions(clean)
	return api
}

func parseInterface(block string) (ClassDecl, bool) {
	m := interfaceHeaderRe.FindStringSubmatch(block)
	if m == nil {
		return ClassDecl{}, false
	}

	class := ClassDecl{Name: m[1], Superclass: m[2]}
	if class.Superclass == "" {
		class.Superclass = "NSObject"
	}
	if m[3] != "" {
		for _, p := range strings.Split(m[3], ",") {
			class.Protocols = append(class.Protocols, strings.TrimSpace(p))
		}
	}
	class.Properties = parseProperties(block)
	class.Methods = parseMethods(block)
	return class, true
}

func parseProperties(block string) []PropertyDecl {
	var props []PropertyDecl
	for _, m := range propertyRe.FindAllStringSubmatch(block, -1) {
		prop := PropertyDecl{Name: m[3], Type: strings.TrimSpace(m[2])}
		for _, attr := range strings.Split(m[1], ",") {
			if attr = strings.TrimSpace(attr); attr != "" {
				prop.Attributes = append(prop.Attributes, attr)
			}
		}
		props = append(props, prop)
	}
	return props
}

func parseMethods(block string) []MethodDecl {
	var methods []MethodDecl
	for _, m := range methodRe.FindAllStringSubmatch(block, -1) {
		sigil := m[1]
		ret := strings.TrimSpace(m[2])
		rest := strings.TrimSpace(m[3])

		name, params := parseSelector(rest)
		methods = append(methods, MethodDecl{
			Name:          name,
			ReturnType:    ret,
			Params:        params,
			IsClassMethod: sigil == "+",
			Signature:     sigil + " (" + ret + ")" + rest,
		})
	}
	return methods
}

// parseSelector splits a selector remainder into name and typed
// parameters. Without a colon the whole remainder is the name. With
// colons, the first segment is the name and each following segment is
// scanned for a parenthesized type and an identifier; a segment the
// scan cannot account for (block types, missing names) contributes no
// parameter.
func parseSelector(rest string) (string, []Param) {
	if !strings.Contains(rest, ":") {
		return rest, nil
	}

	parts := strings.Split(rest, ":")
	name := strings.TrimSpace(parts[0])

	var params []Param
	for _, part := range parts[1:] {
		if m := methodParamRe.FindStringSubmatch(part); m != nil {
			params = append(params, Param{Type: strings.TrimSpace(m[1]), Name: m[2]})
		}
	}
	return name, params
}

func parseEnums(src string) []EnumDecl {
	var enums []EnumDecl
	for _, m := range enumRe.FindAllStringSubmatch(src, -1) {
		enum := EnumDecl{Name: m[2]}
		for _, v := range enumValueRe.FindAllStringSubmatch(m[1], -1) {
			enum.Values = append(enum.Values, EnumValue{
				Name:  v[1],
				Value: strings.TrimSpace(v[2]),
			})
		}
		enums = append(enums, enum)
	}
	return enums
}

func parseConstants(src string) []ConstantDecl {
	var consts []ConstantDecl
	for _, m := range constantRe.FindAllStringSubmatch(src, -1) {
		consts = append(consts, ConstantDecl{
			Name: m[2],
			Type: strings.TrimSpace(m[1]),
		})
	}
	return consts
}

func parseFunctions(src string) []FunctionDecl {
	var funcs []FunctionDecl
	for _, m := range functionRe.FindAllStringSubmatch(src, -1) {
		funcs = append(funcs, FunctionDecl{
			Name:       m[2],
			ReturnType: strings.TrimSpace(m[1]),
			Params:     parseFunctionParams(m[3]),
		})
	}
	return funcs
}

// parseFunctionParams splits a C parameter list on commas. The last
// whitespace-separated token of each entry is taken as the name and
// the rest as the type; a bare "void" list declares no parameters.
func parseFunctionParams(list string) []Param {
	list = strings.TrimSpace(list)
	if list == "" || list == "void" {
		return nil
	}

	var params []Param
	for _, entry := range strings.Split(list, ",") {
		fields := strings.Fields(entry)
		if len(fields) < 2 {
			continue
		}
		params = append(params, Param{
			Type: strings.Join(fields[:len(fields)-1], " "),
			Name: fields[len(fields)-1],
		})
	}
	return params
}
