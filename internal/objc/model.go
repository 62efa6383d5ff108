package objc

// Param is a single declared parameter: the raw type text as written
// in the declaration, and the parameter name.
type Param struct {
	Type string `json:"type"`
	Name string `json:"name"`
}

// MethodDecl is one method declared inside an interface block.
type MethodDecl struct {
	Name          string  `json:"name"`
	ReturnType    string  `json:"return_type"`
	Params        []Param `json:"parameters,omitempty"`
	IsClassMethod bool    `json:"is_class_method"`

	// Signature is the normalized declaration text, rebuilt as
	// "<sigil> (<return type>)<selector remainder>".
	Signature string `json:"signature"`
}

// PropertyDecl is one @property declaration of a class.
type PropertyDecl struct {
	Name       string   `json:"name"`
	Type       string   `json:"type"`
	Attributes []string `json:"attributes,omitempty"`
}

// ClassDecl is one @interface declaration with its members.
type ClassDecl struct {
	Name       string         `json:"name"`
	Superclass string         `json:"superclass"`
	Protocols  []string       `json:"protocols,omitempty"`
	Properties []PropertyDecl `json:"properties,omitempty"`
	Methods    []MethodDecl   `json:"methods,omitempty"`
}

// EnumValue is one entry of an enum body. Value holds the raw
// initializer expression text, empty when the entry has none.
type EnumValue struct {
	Name  string `json:"name"`
	Value string `json:"value,omitempty"`
}

// EnumDecl is a typedef'd enum with a trailing alias name.
type EnumDecl struct {
	Name   string      `json:"name"`
	Values []EnumValue `json:"values,omitempty"`
}

// ConstantDecl is a single-line constant declaration.
type ConstantDecl struct {
	Name string `json:"name"`
	Type string `json:"type"`
}

// FunctionDecl is a single-line free function declaration.
type FunctionDecl struct {
	Name       string  `json:"name"`
	ReturnType string  `json:"return_type"`
	Params     []Param `json:"parameters,omitempty"`
}

// FileAPI is the extraction result for a single header file. Results
// for different files are independent and safe to produce in parallel.
type FileAPI struct {
	Path      string         `json:"path"`
	Classes   []ClassDecl    `json:"classes,omitempty"`
	Enums     []EnumDecl     `json:"enums,omitempty"`
	Constants []ConstantDecl `json:"constants,omitempty"`
	Functions []FunctionDecl `json:"functions,omitempty"`
	Imports   []string       `json:"imports,omitempty"`
}

// APIModel is the merged API surface of a header set.
type APIModel struct {
	Classes   []ClassDecl    `json:"classes"`
	Enums     []EnumDecl     `json:"enums"`
	Constants []ConstantDecl `json:"constants"`
	Functions []FunctionDecl `json:"functions"`
	Imports   []string       `json:"imports"`
}

// Aggregate merges per-file extraction results, in input order, into a
// single model. Imports are deduplicated across files with the first
// appearance winning; every other collection concatenates as-is, so
// two files declaring the same class name yield two entries.
func Aggregate(files []FileAPI) *APIModel {
	model := &APIModel{}
	seen := make(map[string]bool)
	for _, f := range files {
		model.Classes = append(model.Classes, f.Classes...)
		model.Enums = append(model.Enums, f.Enums...)
		model.Constants = append(model.Constants, f.Constants...)
		model.Functions = append(model.Functions, f.Functions...)
		for _, imp := range f.Imports {
			if seen[imp] {
				continue
			}
			seen[imp] = true
			model.Imports = append(model.Imports, imp)
		}
	}
	return model
}

// Summary reports aggregate counts and name lists for display.
type Summary struct {
	TotalClasses    int      `json:"total_classes"`
	TotalMethods    int      `json:"total_methods"`
	TotalProperties int      `json:"total_properties"`
	TotalEnums      int      `json:"total_enums"`
	TotalConstants  int      `json:"total_constants"`
	TotalFunctions  int      `json:"total_functions"`
	Imports         []string `json:"imports"`
	ClassNames      []string `json:"class_names"`
}

// Summary computes display counts over the model. Method and property
// totals are summed across classes.
func (m *APIModel) Summary() Summary {
	s := Summary{
		TotalClasses:   len(m.Classes),
		TotalEnums:     len(m.Enums),
		TotalConstants: len(m.Constants),
		TotalFunctions: len(m.Functions),
		Imports:        m.Imports,
	}
	for _, c := range m.Classes {
		s.TotalMethods += len(c.Methods)
		s.TotalProperties += len(c.Properties)
		s.ClassNames = append(s.ClassNames, c.Name)
	}
	return s
}
