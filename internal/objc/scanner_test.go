package objc

// Test Plan for the scanner:
// 1. Comment stripping removes line comments and multi-line block
//    comments before any pattern runs, so commented-out declarations
//    never reach the parser.
// 2. Interface blocks end at the first @end; protocol blocks are not
//    returned.
// 3. Imports keep first-appearance order and deduplicate within a file.

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestStripComments(t *testing.T) {
	t.Parallel()

	src := `// file header
@interface Widget : NSObject // trailing note
/* block
   spanning
   lines */
- (void)refresh;
@end
`
	clean := StripComments(src)
	assert.NotContains(t, clean, "file header")
	assert.NotContains(t, clean, "trailing note")
	assert.NotContains(t, clean, "spanning")
	assert.Contains(t, clean, "@interface Widget : NSObject")
	assert.Contains(t, clean, "- (void)refresh;")
}

func TestCommentedOutDeclarationsAreIgnored(t *testing.T) {
	t.Parallel()

	api := ParseFile("Widget.h", `@interface Widget : NSObject
// - (void)legacyMethod;
/*
- (void)olderMethod:(NSInteger)x;
*/
- (void)refresh;
@end
`)

	require.Len(t, api.Classes, 1)
	require.Len(t, api.Classes[0].Methods, 1)
	assert.Equal(t, "refresh", api.Classes[0].Methods[0].Name)
}

func TestInterfaceBlocks(t *testing.T) {
	t.Parallel()

	src := `@protocol Observer <NSObject>
- (void)didChange;
@end

@interface First : NSObject
- (void)one;
@end

@interface Second : First
- (void)two;
@end
`
	blocks := InterfaceBlocks(src)
	require.Len(t, blocks, 2, "Protocol blocks must not be returned")
	assert.Contains(t, blocks[0], "First")
	assert.Contains(t, blocks[1], "Second")
	assert.NotContains(t, blocks[0], "Second", "A block ends at its own @end")
}

func TestImports(t *testing.T) {
	t.Parallel()

	src := `#import <Foundation/Foundation.h>
#import <UIKit/UIKit.h>
#import "Internal/Config.h"
#import <Foundation/Foundation.h>
`
	assert.Equal(t,
		[]string{"Foundation/Foundation.h", "UIKit/UIKit.h", "Internal/Config.h"},
		Imports(src))
}
