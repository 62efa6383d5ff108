package xcodeproj

// Test Plan for graph construction:
// 1. One node per discovered file on each side of the join (file
//    reference + build file), fixed singleton nodes, and wiring that
//    mirrors discovery order: headers before sources everywhere.
// 2. Ids derive from the artifact name: rebuilding the same input
//    yields identical ids, a different artifact yields different ones.
// 3. Configuration names are caller input; the first is debug-flavored,
//    the second release-flavored and the default.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func demoFramework() Framework {
	return Framework{
		Name:           "Demo",
		Configurations: [2]string{"Debug", "Release"},
		Headers:        []string{"Demo/Alpha.h", "Demo/Beta.h"},
		Sources:        []string{"Demo/Alpha.m"},
	}
}

func TestBuildDocumentWiring(t *testing.T) {
	t.Parallel()

	doc := BuildDocument(demoFramework())

	require.Len(t, doc.BuildFiles, 3)
	require.Len(t, doc.FileReferences, 4, "Product reference plus one per file")
	assert.Equal(t, FileProduct, doc.FileReferences[0].Kind)
	assert.Equal(t, "Demo.framework", doc.FileReferences[0].Name)

	assert.Equal(t, "Alpha.h", doc.BuildFiles[0].Name, "Paths are reduced to base names")
	assert.True(t, doc.BuildFiles[0].Public)
	assert.Equal(t, "Headers", doc.BuildFiles[0].Phase)
	assert.False(t, doc.BuildFiles[2].Public)
	assert.Equal(t, "Sources", doc.BuildFiles[2].Phase)

	require.Len(t, doc.HeadersPhase.Files, 2)
	require.Len(t, doc.SourcesPhase.Files, 1)
	assert.Empty(t, doc.FrameworksPhase.Files)
	assert.Equal(t, doc.BuildFiles[0].ID, doc.HeadersPhase.Files[0].ID)
	assert.Equal(t, "Alpha.h in Headers", doc.HeadersPhase.Files[0].Label)

	require.Len(t, doc.Groups, 3)
	main, products, artifact := doc.Groups[0], doc.Groups[1], doc.Groups[2]
	assert.Empty(t, main.Label, "The main group carries no comment label")
	require.Len(t, main.Children, 2)
	assert.Equal(t, artifact.ID, main.Children[0].ID)
	assert.Equal(t, products.ID, main.Children[1].ID)
	assert.Equal(t, "Products", products.Name)
	assert.Equal(t, "Demo", artifact.Path)
	require.Len(t, artifact.Children, 3, "Artifact group lists headers then sources")
	assert.Equal(t, "Alpha.h", artifact.Children[0].Label)
	assert.Equal(t, "Beta.h", artifact.Children[1].Label)
	assert.Equal(t, "Alpha.m", artifact.Children[2].Label)

	require.Len(t, doc.Target.BuildPhases, 3)
	assert.Equal(t, doc.HeadersPhase.ID, doc.Target.BuildPhases[0].ID)
	assert.Equal(t, doc.SourcesPhase.ID, doc.Target.BuildPhases[1].ID)
	assert.Equal(t, doc.FrameworksPhase.ID, doc.Target.BuildPhases[2].ID)

	require.Len(t, doc.Project.Targets, 1)
	assert.Equal(t, doc.Target.ID, doc.Project.Targets[0].ID)
	assert.Equal(t, main.ID, doc.Project.MainGroup)
	assert.Equal(t, products.ID, doc.Project.ProductRefGroup.ID)

	require.Len(t, doc.Configurations, 4)
	require.Len(t, doc.Lists, 2)
	assert.Equal(t, doc.Project.ConfigurationList.ID, doc.Lists[0].ID)
	assert.Equal(t, doc.Target.ConfigurationList.ID, doc.Lists[1].ID)
	assert.Equal(t, "Release", doc.Lists[0].DefaultName)
	assert.Equal(t, "Release", doc.Lists[1].DefaultName)
}

func TestBuildDocumentIDsAreDeterministic(t *testing.T) {
	t.Parallel()

	a := BuildDocument(demoFramework())
	b := BuildDocument(demoFramework())
	assert.Equal(t, a, b, "Rebuilding from the same input yields an identical document")

	other := demoFramework()
	other.Name = "Other"
	c := BuildDocument(other)
	assert.NotEqual(t, a.Project.ID, c.Project.ID, "Ids are seeded by the artifact name")
}

func TestBuildDocumentIDFormat(t *testing.T) {
	t.Parallel()

	doc := BuildDocument(demoFramework())
	for _, n := range doc.nodes() {
		assert.Regexp(t, `^[0-9A-F]{24}$`, n.id)
	}
}

func TestBuildDocumentSettingsFlavors(t *testing.T) {
	t.Parallel()

	fw := demoFramework()
	fw.Configurations = [2]string{"Dev", "Prod"}
	doc := BuildDocument(fw)

	dev, prod := doc.Configurations[0], doc.Configurations[1]
	assert.Equal(t, "Dev", dev.Name)
	assert.Equal(t, "Prod", prod.Name)

	devKeys := settingKeys(dev.Settings)
	prodKeys := settingKeys(prod.Settings)
	assert.Contains(t, devKeys, "GCC_OPTIMIZATION_LEVEL")
	assert.Contains(t, devKeys, "ENABLE_TESTABILITY")
	assert.Contains(t, devKeys, "ONLY_ACTIVE_ARCH")
	assert.NotContains(t, prodKeys, "GCC_OPTIMIZATION_LEVEL")
	assert.Contains(t, prodKeys, "ENABLE_NS_ASSERTIONS")
	assert.Contains(t, prodKeys, "VALIDATE_PRODUCT")

	assert.Equal(t, "INFOPLIST_FILE", dev.Settings[0].Key, "INFOPLIST_FILE always leads")
	assert.Equal(t, `"$(SRCROOT)/Info.plist"`, dev.Settings[0].Value)

	target := doc.Configurations[2]
	assert.Equal(t, "Dev", target.Name)
	assert.Contains(t, settingKeys(target.Settings), "PRODUCT_BUNDLE_IDENTIFIER")
	assert.Equal(t, doc.Configurations[3].Settings, target.Settings,
		"Target settings are identical across configurations")
}

func TestBuildDocumentInfoPlistOverride(t *testing.T) {
	t.Parallel()

	fw := demoFramework()
	fw.InfoPlist = "Custom/Info.plist"
	doc := BuildDocument(fw)

	for _, c := range doc.Configurations {
		assert.Equal(t, `"Custom/Info.plist"`, c.Settings[0].Value)
	}
}

func settingKeys(settings []Setting) []string {
	keys := make([]string, 0, len(settings))
	for _, s := range settings {
		keys = append(keys, s.Key)
	}
	return keys
}
