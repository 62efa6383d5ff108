package xcodeproj

import (
	"fmt"
	"path/filepath"
)

// Framework describes the single dynamic-framework artifact a project
// is generated for.
type Framework struct {
	// Name is the artifact name. It names the target, the product
	// bundle and the project itself.
	Name string

	// Configurations holds exactly two configuration names. The first
	// receives the debug-flavored settings; the second receives the
	// release-flavored ones and becomes the default configuration.
	Configurations [2]string

	// Headers and Sources are discovered file paths in a stable order.
	// Only the base name is recorded in the project; the artifact
	// group is flat.
	Headers []string
	Sources []string

	// InfoPlist overrides the INFOPLIST_FILE setting when non-empty.
	InfoPlist string
}

// BuildDocument constructs the complete node set for fw. Ids are
// allocated deterministically from the artifact name, an id always
// exists before anything references it, and every reference points at
// a node created here, so the result passes Verify by construction.
func BuildDocument(fw Framework) *Document {
	ids := newIDAllocator(fw.Name)
	infoPlist := fw.InfoPlist
	if infoPlist == "" {
		infoPlist = DefaultInfoPlist
	}
	product := fw.Name + ".framework"

	projectID := ids.next()
	targetID := ids.next()
	mainGroupID := ids.next()
	artifactGroupID := ids.next()
	productsGroupID := ids.next()
	productRefID := ids.next()
	headersPhaseID := ids.next()
	sourcesPhaseID := ids.next()
	frameworksPhaseID := ids.next()
	projectListID := ids.next()
	targetListID := ids.next()
	projectDebugID := ids.next()
	projectReleaseID := ids.next()
	targetDebugID := ids.next()
	targetReleaseID := ids.next()

	doc := &Document{
		ArtifactName:    fw.Name,
		HeadersPhase:    BuildPhase{ID: headersPhaseID, Name: "Headers", Isa: "PBXHeadersBuildPhase"},
		SourcesPhase:    BuildPhase{ID: sourcesPhaseID, Name: "Sources", Isa: "PBXSourcesBuildPhase"},
		FrameworksPhase: BuildPhase{ID: frameworksPhaseID, Name: "Frameworks", Isa: "PBXFrameworksBuildPhase"},
	}

	doc.FileReferences = append(doc.FileReferences, FileReference{
		ID:   productRefID,
		Name: product,
		Kind: FileProduct,
		Path: product,
	})

	var headerRefs, sourceRefs []Ref
	for _, h := range fw.Headers {
		name := filepath.Base(h)
		fileID := ids.next()
		buildID := ids.next()
		doc.FileReferences = append(doc.FileReferences, FileReference{
			ID: fileID, Name: name, Kind: FileHeader, Path: name,
		})
		doc.BuildFiles = append(doc.BuildFiles, BuildFile{
			ID: buildID, Name: name, Phase: "Headers",
			FileRef: Ref{ID: fileID, Label: name},
			Public:  true,
		})
		doc.HeadersPhase.Files = append(doc.HeadersPhase.Files, Ref{ID: buildID, Label: name + " in Headers"})
		headerRefs = append(headerRefs, Ref{ID: fileID, Label: name})
	}
	for _, s := range fw.Sources {
		name := filepath.Base(s)
		fileID := ids.next()
		buildID := ids.next()
		doc.FileReferences = append(doc.FileReferences, FileReference{
			ID: fileID, Name: name, Kind: FileSource, Path: name,
		})
		doc.BuildFiles = append(doc.BuildFiles, BuildFile{
			ID: buildID, Name: name, Phase: "Sources",
			FileRef: Ref{ID: fileID, Label: name},
		})
		doc.SourcesPhase.Files = append(doc.SourcesPhase.Files, Ref{ID: buildID, Label: name + " in Sources"})
		sourceRefs = append(sourceRefs, Ref{ID: fileID, Label: name})
	}

	doc.Groups = []Group{
		{
			ID: mainGroupID,
			Children: []Ref{
				{ID: artifactGroupID, Label: fw.Name},
				{ID: productsGroupID, Label: "Products"},
			},
		},
		{
			ID:       productsGroupID,
			Label:    "Products",
			Children: []Ref{{ID: productRefID, Label: product}},
			Name:     "Products",
		},
		{
			ID:       artifactGroupID,
			Label:    fw.Name,
			Children: append(headerRefs, sourceRefs...),
			Path:     fw.Name,
		},
	}

	doc.Target = NativeTarget{
		ID:   targetID,
		Name: fw.Name,
		ConfigurationList: Ref{
			ID:    targetListID,
			Label: fmt.Sprintf("Build configuration list for PBXNativeTarget %q", fw.Name),
		},
		BuildPhases: []Ref{
			{ID: headersPhaseID, Label: "Headers"},
			{ID: sourcesPhaseID, Label: "Sources"},
			{ID: frameworksPhaseID, Label: "Frameworks"},
		},
		ProductReference: Ref{ID: productRefID, Label: product},
	}

	doc.Project = Project{
		ID:   projectID,
		Name: fw.Name,
		ConfigurationList: Ref{
			ID:    projectListID,
			Label: fmt.Sprintf("Build configuration list for PBXProject %q", fw.Name),
		},
		MainGroup:       mainGroupID,
		ProductRefGroup: Ref{ID: productsGroupID, Label: "Products"},
		Targets:         []Ref{{ID: targetID, Label: fw.Name}},
	}

	debugName, releaseName := fw.Configurations[0], fw.Configurations[1]
	doc.Configurations = []BuildConfiguration{
		{ID: projectDebugID, Name: debugName, Settings: projectSettings(infoPlist, false)},
		{ID: projectReleaseID, Name: releaseName, Settings: projectSettings(infoPlist, true)},
		{ID: targetDebugID, Name: debugName, Settings: targetSettings(fw.Name, infoPlist)},
		{ID: targetReleaseID, Name: releaseName, Settings: targetSettings(fw.Name, infoPlist)},
	}

	doc.Lists = []ConfigurationList{
		{
			ID:    projectListID,
			Label: fmt.Sprintf("Build configuration list for PBXProject %q", fw.Name),
			Configurations: []Ref{
				{ID: projectDebugID, Label: debugName},
				{ID: projectReleaseID, Label: releaseName},
			},
			DefaultName: releaseName,
		},
		{
			ID:    targetListID,
			Label: fmt.Sprintf("Build configuration list for PBXNativeTarget %q", fw.Name),
			Configurations: []Ref{
				{ID: targetDebugID, Label: debugName},
				{ID: targetReleaseID, Label: releaseName},
			},
			DefaultName: releaseName,
		},
	}

	return doc
}
