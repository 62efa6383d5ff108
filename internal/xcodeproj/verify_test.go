package xcodeproj

// Test Plan for integrity verification:
// 1. A constructed document always verifies.
// 2. A dangling reference or a duplicated node id is reported as an
//    integrity violation, never silently tolerated.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVerifyConstructedDocument(t *testing.T) {
	t.Parallel()

	require.NoError(t, Verify(BuildDocument(demoFramework())))
}

func TestVerifyDanglingReference(t *testing.T) {
	t.Parallel()

	doc := BuildDocument(demoFramework())
	doc.BuildFiles[0].FileRef.ID = "FFFFFFFFFFFFFFFFFFFFFFFF"

	err := Verify(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)
	assert.Contains(t, err.Error(), "FFFFFFFFFFFFFFFFFFFFFFFF")
}

func TestVerifyDuplicateNodeID(t *testing.T) {
	t.Parallel()

	doc := BuildDocument(demoFramework())
	doc.FileReferences[1].ID = doc.FileReferences[2].ID

	err := Verify(doc)
	require.Error(t, err)
	assert.ErrorIs(t, err, ErrIntegrity)
}

func TestVerifyMissingConfigurationList(t *testing.T) {
	t.Parallel()

	doc := BuildDocument(demoFramework())
	doc.Lists = doc.Lists[:1]

	err := Verify(doc)
	require.Error(t, err, "The target references its configuration list; dropping it must fail")
	assert.ErrorIs(t, err, ErrIntegrity)
}
