package xcodeproj

import (
	"bytes"
	"fmt"
)

// Serialize renders doc in the pbxproj ASCII format. The document is
// integrity-checked first and nothing is emitted when a reference does
// not resolve. Output is a pure function of the document: serializing
// the same document twice yields identical bytes.
func Serialize(doc *Document) ([]byte, error) {
	if err := Verify(doc); err != nil {
		return nil, err
	}

	var b bytes.Buffer
	b.WriteString("// !$*UTF8*$!\n")
	b.WriteString("{\n")
	b.WriteString("\tarchiveVersion = 1;\n")
	b.WriteString("\tclasses = {\n\t};\n")
	b.WriteString("\tobjectVersion = 56;\n")
	b.WriteString("\tobjects = {\n")

	section(&b, "PBXBuildFile", func(b *bytes.Buffer) {
		writeBuildFiles(b, doc.BuildFiles)
	})
	section(&b, "PBXFileReference", func(b *bytes.Buffer) {
		writeFileReferences(b, doc.FileReferences)
	})
	section(&b, "PBXFrameworksBuildPhase", func(b *bytes.Buffer) {
		writePhase(b, doc.FrameworksPhase)
	})
	section(&b, "PBXGroup", func(b *bytes.Buffer) {
		writeGroups(b, doc.Groups)
	})
	section(&b, "PBXHeadersBuildPhase", func(b *bytes.Buffer) {
		writePhase(b, doc.HeadersPhase)
	})
	section(&b, "PBXNativeTarget", func(b *bytes.Buffer) {
		writeTarget(b, doc.Target)
	})
	section(&b, "PBXProject", func(b *bytes.Buffer) {
		writeProject(b, doc.Project, doc.Target.ID)
	})
	section(&b, "PBXSourcesBuildPhase", func(b *bytes.Buffer) {
		writePhase(b, doc.SourcesPhase)
	})
	section(&b, "XCBuildConfiguration", func(b *bytes.Buffer) {
		writeConfigurations(b, doc.Configurations)
	})
	section(&b, "XCConfigurationList", func(b *bytes.Buffer) {
		writeLists(b, doc.Lists)
	})

	b.WriteString("\t};\n")
	fmt.Fprintf(&b, "\trootObject = %s /* Project object */;\n", doc.Project.ID)
	b.WriteString("}\n")
	return b.Bytes(), nil
}

// section writes the begin/end delimiters around one isa section.
// Sections appear in a fixed alphabetical order regardless of content.
func section(b *bytes.Buffer, name string, body func(*bytes.Buffer)) {
	fmt.Fprintf(b, "\n/* Begin %s section */\n", name)
	body(b)
	fmt.Fprintf(b, "/* End %s section */\n", name)
}

func writeBuildFiles(b *bytes.Buffer, files []BuildFile) {
	for _, bf := range files {
		if bf.Public {
			fmt.Fprintf(b, "\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; settings = {ATTRIBUTES = (Public, ); }; };\n",
				bf.ID, bf.Name, bf.Phase, bf.FileRef.ID, bf.FileRef.Label)
		} else {
			fmt.Fprintf(b, "\t\t%s /* %s in %s */ = {isa = PBXBuildFile; fileRef = %s /* %s */; };\n",
				bf.ID, bf.Name, bf.Phase, bf.FileRef.ID, bf.FileRef.Label)
		}
	}
}

func writeFileReferences(b *bytes.Buffer, refs []FileReference) {
	for _, fr := range refs {
		switch fr.Kind {
		case FileProduct:
			fmt.Fprintf(b, "\t\t%s /* %s */ = {isa = PBXFileReference; explicitFileType = wrapper.framework; includeInIndex = 0; path = %s; sourceTree = BUILT_PRODUCTS_DIR; };\n",
				fr.ID, fr.Name, fr.Path)
		case FileHeader:
			fmt.Fprintf(b, "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.c.h; path = %s; sourceTree = \"<group>\"; };\n",
				fr.ID, fr.Name, fr.Path)
		case FileSource:
			fmt.Fprintf(b, "\t\t%s /* %s */ = {isa = PBXFileReference; lastKnownFileType = sourcecode.c.objc; path = %s; sourceTree = \"<group>\"; };\n",
				fr.ID, fr.Name, fr.Path)
		}
	}
}

func writePhase(b *bytes.Buffer, p BuildPhase) {
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", p.ID, p.Name)
	fmt.Fprintf(b, "\t\t\tisa = %s;\n", p.Isa)
	b.WriteString("\t\t\tbuildActionMask = 2147483647;\n")
	b.WriteString("\t\t\tfiles = (\n")
	for _, f := range p.Files {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", f.ID, f.Label)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\trunOnlyForDeploymentPostprocessing = 0;\n")
	b.WriteString("\t\t};\n")
}

func writeGroups(b *bytes.Buffer, groups []Group) {
	for _, g := range groups {
		if g.Label != "" {
			fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", g.ID, g.Label)
		} else {
			fmt.Fprintf(b, "\t\t%s = {\n", g.ID)
		}
		b.WriteString("\t\t\tisa = PBXGroup;\n")
		b.WriteString("\t\t\tchildren = (\n")
		for _, c := range g.Children {
			fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", c.ID, c.Label)
		}
		b.WriteString("\t\t\t);\n")
		if g.Name != "" {
			fmt.Fprintf(b, "\t\t\tname = %s;\n", g.Name)
		}
		if g.Path != "" {
			fmt.Fprintf(b, "\t\t\tpath = %s;\n", g.Path)
		}
		b.WriteString("\t\t\tsourceTree = \"<group>\";\n")
		b.WriteString("\t\t};\n")
	}
}

func writeTarget(b *bytes.Buffer, t NativeTarget) {
	fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", t.ID, t.Name)
	b.WriteString("\t\t\tisa = PBXNativeTarget;\n")
	fmt.Fprintf(b, "\t\t\tbuildConfigurationList = %s /* %s */;\n", t.ConfigurationList.ID, t.ConfigurationList.Label)
	b.WriteString("\t\t\tbuildPhases = (\n")
	for _, p := range t.BuildPhases {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", p.ID, p.Label)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tbuildRules = (\n")
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t\tdependencies = (\n")
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tname = %s;\n", t.Name)
	fmt.Fprintf(b, "\t\t\tproductName = %s;\n", t.Name)
	fmt.Fprintf(b, "\t\t\tproductReference = %s /* %s */;\n", t.ProductReference.ID, t.ProductReference.Label)
	b.WriteString("\t\t\tproductType = \"com.apple.product-type.framework\";\n")
	b.WriteString("\t\t};\n")
}

func writeProject(b *bytes.Buffer, p Project, targetID string) {
	fmt.Fprintf(b, "\t\t%s /* Project object */ = {\n", p.ID)
	b.WriteString("\t\t\tisa = PBXProject;\n")
	b.WriteString("\t\t\tattributes = {\n")
	b.WriteString("\t\t\t\tBuildIndependentTargetsInParallel = 1;\n")
	b.WriteString("\t\t\t\tLastUpgradeCheck = 1500;\n")
	b.WriteString("\t\t\t\tTargetAttributes = {\n")
	fmt.Fprintf(b, "\t\t\t\t\t%s = {\n", targetID)
	b.WriteString("\t\t\t\t\t\tCreatedOnToolsVersion = 15.0;\n")
	b.WriteString("\t\t\t\t\t};\n")
	b.WriteString("\t\t\t\t};\n")
	b.WriteString("\t\t\t};\n")
	fmt.Fprintf(b, "\t\t\tbuildConfigurationList = %s /* %s */;\n", p.ConfigurationList.ID, p.ConfigurationList.Label)
	b.WriteString("\t\t\tcompatibilityVersion = \"Xcode 14.0\";\n")
	b.WriteString("\t\t\tdevelopmentRegion = en;\n")
	b.WriteString("\t\t\thasScannedForEncodings = 0;\n")
	b.WriteString("\t\t\tknownRegions = (\n")
	b.WriteString("\t\t\t\ten,\n")
	b.WriteString("\t\t\t\tBase,\n")
	b.WriteString("\t\t\t);\n")
	fmt.Fprintf(b, "\t\t\tmainGroup = %s;\n", p.MainGroup)
	fmt.Fprintf(b, "\t\t\tproductRefGroup = %s /* %s */;\n", p.ProductRefGroup.ID, p.ProductRefGroup.Label)
	b.WriteString("\t\t\tprojectDirPath = \"\";\n")
	b.WriteString("\t\t\tprojectRoot = \"\";\n")
	b.WriteString("\t\t\ttargets = (\n")
	for _, t := range p.Targets {
		fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", t.ID, t.Label)
	}
	b.WriteString("\t\t\t);\n")
	b.WriteString("\t\t};\n")
}

func writeConfigurations(b *bytes.Buffer, configs []BuildConfiguration) {
	for _, c := range configs {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", c.ID, c.Name)
		b.WriteString("\t\t\tisa = XCBuildConfiguration;\n")
		b.WriteString("\t\t\tbuildSettings = {\n")
		for _, s := range c.Settings {
			if s.List != nil {
				fmt.Fprintf(b, "\t\t\t\t%s = (\n", s.Key)
				for _, item := range s.List {
					fmt.Fprintf(b, "\t\t\t\t\t%s,\n", item)
				}
				b.WriteString("\t\t\t\t);\n")
			} else {
				fmt.Fprintf(b, "\t\t\t\t%s = %s;\n", s.Key, s.Value)
			}
		}
		b.WriteString("\t\t\t};\n")
		fmt.Fprintf(b, "\t\t\tname = %s;\n", c.Name)
		b.WriteString("\t\t};\n")
	}
}

func writeLists(b *bytes.Buffer, lists []ConfigurationList) {
	for _, l := range lists {
		fmt.Fprintf(b, "\t\t%s /* %s */ = {\n", l.ID, l.Label)
		b.WriteString("\t\t\tisa = XCConfigurationList;\n")
		b.WriteString("\t\t\tbuildConfigurations = (\n")
		for _, c := range l.Configurations {
			fmt.Fprintf(b, "\t\t\t\t%s /* %s */,\n", c.ID, c.Label)
		}
		b.WriteString("\t\t\t);\n")
		b.WriteString("\t\t\tdefaultConfigurationIsVisible = 0;\n")
		fmt.Fprintf(b, "\t\t\tdefaultConfigurationName = %s;\n", l.DefaultName)
		b.WriteString("\t\t};\n")
	}
}
