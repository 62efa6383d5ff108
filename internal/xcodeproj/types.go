// Package xcodeproj constructs and serializes the object graph of a
// single-target framework project in the pbxproj ASCII format. The
// graph is built first as plain data, checked for referential
// integrity, and only then rendered to text.
package xcodeproj

// Ref couples a node id with the comment label the format writes
// beside every use of that id. An empty label emits no comment.
type Ref struct {
	ID    string
	Label string
}

// FileKind selects the emission shape of a file reference.
type FileKind int

const (
	// FileProduct is the built framework bundle reference.
	FileProduct FileKind = iota
	// FileHeader is a public header in the artifact group.
	FileHeader
	// FileSource is an implementation file in the artifact group.
	FileSource
)

// FileReference is a PBXFileReference node.
type FileReference struct {
	ID   string
	Name string
	Kind FileKind
	Path string
}

// BuildFile is a PBXBuildFile node joining one file reference into one
// build phase. Public joins carry the Public header attribute.
type BuildFile struct {
	ID      string
	Name    string
	Phase   string
	FileRef Ref
	Public  bool
}

// BuildPhase is one of the target's three build phases. Files holds
// build-file references in discovery order; the frameworks phase has
// none.
type BuildPhase struct {
	ID    string
	Name  string
	Isa   string
	Files []Ref
}

// Group is a PBXGroup node. Label is the comment beside the id (the
// main group has none). Name and Path are optional emitted fields.
type Group struct {
	ID       string
	Label    string
	Children []Ref
	Name     string
	Path     string
}

// NativeTarget is the single PBXNativeTarget node.
type NativeTarget struct {
	ID                string
	Name              string
	ConfigurationList Ref
	BuildPhases       []Ref
	ProductReference  Ref
}

// Project is the PBXProject root node.
type Project struct {
	ID                string
	Name              string
	ConfigurationList Ref
	MainGroup         string
	ProductRefGroup   Ref
	Targets           []Ref
}

// Setting is one buildSettings entry. Scalar values are emitted
// verbatim, so any quoting is part of the value; a non-nil List
// renders as a parenthesized block instead.
type Setting struct {
	Key   string
	Value string
	List  []string
}

// BuildConfiguration is one XCBuildConfiguration node.
type BuildConfiguration struct {
	ID       string
	Name     string
	Settings []Setting
}

// ConfigurationList is one XCConfigurationList node.
type ConfigurationList struct {
	ID             string
	Label          string
	Configurations []Ref
	DefaultName    string
}

// Document is the complete node set of a generated project. Slices
// hold nodes in emission order; the serializer never reorders.
type Document struct {
	ArtifactName string

	BuildFiles      []BuildFile
	FileReferences  []FileReference
	FrameworksPhase BuildPhase
	Groups          []Group
	HeadersPhase    BuildPhase
	Target          NativeTarget
	Project         Project
	SourcesPhase    BuildPhase
	Configurations  []BuildConfiguration
	Lists           []ConfigurationList
}
