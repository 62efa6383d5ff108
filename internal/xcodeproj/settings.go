package xcodeproj

import "fmt"

// DefaultInfoPlist is the INFOPLIST_FILE value used when no override
// is supplied.
const DefaultInfoPlist = "$(SRCROOT)/Info.plist"

// projectSettings returns the project-level build settings for one
// configuration, keys in emission order. The two flavors share one
// exhaustive table and differ only in the documented deltas: debug
// disables optimization and keeps testability, release strips debug
// info to dSYM, drops assertions and validates the product. These
// values are a fixed contract, never computed from input.
func projectSettings(infoPlist string, release bool) []Setting {
	var s []Setting
	add := func(key, value string) {
		s = append(s, Setting{Key: key, Value: value})
	}

	add("INFOPLIST_FILE", fmt.Sprintf("%q", infoPlist))
	add("ALWAYS_SEARCH_USER_PATHS", "NO")
	add("BUILD_LIBRARY_FOR_DISTRIBUTION", "YES")
	add("CLANG_ANALYZER_NONNULL", "YES")
	add("CLANG_ANALYZER_NUMBER_OBJECT_CONVERSION", "YES_AGGRESSIVE")
	add("CLANG_CXX_LANGUAGE_STANDARD", `"gnu++20"`)
	add("CLANG_ENABLE_MODULES", "YES")
	add("CLANG_ENABLE_OBJC_ARC", "YES")
	add("CLANG_ENABLE_OBJC_WEAK", "YES")
	add("CLANG_WARN_BLOCK_CAPTURE_AUTORELEASING", "YES")
	add("CLANG_WARN_BOOL_CONVERSION", "YES")
	add("CLANG_WARN_COMMA", "YES")
	add("CLANG_WARN_CONSTANT_CONVERSION", "YES")
	add("CLANG_WARN_DEPRECATED_OBJC_IMPLEMENTATIONS", "YES")
	add("CLANG_WARN_DIRECT_OBJC_ISA_USAGE", "YES_ERROR")
	add("CLANG_WARN_DOCUMENTATION_COMMENTS", "YES")
	add("CLANG_WARN_EMPTY_BODY", "YES")
	add("CLANG_WARN_ENUM_CONVERSION", "YES")
	add("CLANG_WARN_INFINITE_RECURSION", "YES")
	add("CLANG_WARN_INT_CONVERSION", "YES")
	add("CLANG_WARN_NON_LITERAL_NULL_CONVERSION", "YES")
	add("CLANG_WARN_OBJC_IMPLICIT_RETAIN_SELF", "YES")
	add("CLANG_WARN_OBJC_LITERAL_CONVERSION", "YES")
	add("CLANG_WARN_OBJC_ROOT_CLASS", "YES_ERROR")
	add("CLANG_WARN_QUOTED_INCLUDE_IN_FRAMEWORK_HEADER", "YES")
	add("CLANG_WARN_RANGE_LOOP_ANALYSIS", "YES")
	add("CLANG_WARN_STRICT_PROTOTYPES", "YES")
	add("CLANG_WARN_SUSPICIOUS_MOVE", "YES")
	add("CLANG_WARN_UNGUARDED_AVAILABILITY", "YES_AGGRESSIVE")
	add("CLANG_WARN_UNREACHABLE_CODE", "YES")
	add("CLANG_WARN__DUPLICATE_METHOD_MATCH", "YES")
	add("COPY_PHASE_STRIP", "NO")
	if release {
		add("DEBUG_INFORMATION_FORMAT", `"dwarf-with-dsym"`)
		add("ENABLE_NS_ASSERTIONS", "NO")
		add("ENABLE_STRICT_OBJC_MSGSEND", "YES")
	} else {
		add("DEBUG_INFORMATION_FORMAT", "dwarf")
		add("ENABLE_STRICT_OBJC_MSGSEND", "YES")
		add("ENABLE_TESTABILITY", "YES")
	}
	add("GCC_C_LANGUAGE_STANDARD", "gnu11")
	if !release {
		add("GCC_DYNAMIC_NO_PIC", "NO")
	}
	add("GCC_NO_COMMON_BLOCKS", "YES")
	if !release {
		add("GCC_OPTIMIZATION_LEVEL", "0")
		s = append(s, Setting{
			Key:  "GCC_PREPROCESSOR_DEFINITIONS",
			List: []string{`"DEBUG=1"`, `"$(inherited)"`},
		})
	}
	add("GCC_WARN_64_TO_32_BIT_CONVERSION", "YES")
	add("GCC_WARN_ABOUT_RETURN_TYPE", "YES_ERROR")
	add("GCC_WARN_UNDECLARED_SELECTOR", "YES")
	add("GCC_WARN_UNINITIALIZED_AUTOS", "YES_AGGRESSIVE")
	add("GCC_WARN_UNUSED_FUNCTION", "YES")
	add("GCC_WARN_UNUSED_VARIABLE", "YES")
	add("IPHONEOS_DEPLOYMENT_TARGET", "12.0")
	if release {
		add("MTL_ENABLE_DEBUG_INFO", "NO")
	} else {
		add("MTL_ENABLE_DEBUG_INFO", "INCLUDE_SOURCE")
	}
	add("MTL_FAST_MATH", "YES")
	if !release {
		add("ONLY_ACTIVE_ARCH", "YES")
	}
	add("SDKROOT", "iphoneos")
	add("SKIP_INSTALL", "NO")
	if release {
		add("VALIDATE_PRODUCT", "YES")
	}
	return s
}

// targetSettings returns the target-level build settings, identical
// for both configurations.
func targetSettings(artifact, infoPlist string) []Setting {
	return []Setting{
		{Key: "INFOPLIST_FILE", Value: fmt.Sprintf("%q", infoPlist)},
		{Key: "CODE_SIGN_STYLE", Value: "Automatic"},
		{Key: "CURRENT_PROJECT_VERSION", Value: "1"},
		{Key: "DEFINES_MODULE", Value: "YES"},
		{Key: "DYLIB_COMPATIBILITY_VERSION", Value: "1"},
		{Key: "DYLIB_CURRENT_VERSION", Value: "1"},
		{Key: "DYLIB_INSTALL_NAME_BASE", Value: `"@rpath"`},
		{Key: "INFOPLIST_KEY_NSHumanReadableCopyright", Value: `""`},
		{Key: "INSTALL_PATH", Value: `"$(LOCAL_LIBRARY_DIR)/Frameworks"`},
		{Key: "LD_RUNPATH_SEARCH_PATHS", List: []string{
			`"$(inherited)"`,
			`"@executable_path/Frameworks"`,
			`"@loader_path/Frameworks"`,
		}},
		{Key: "MARKETING_VERSION", Value: "1.0"},
		{Key: "PRODUCT_BUNDLE_IDENTIFIER", Value: fmt.Sprintf("%q", "com.example."+artifact)},
		{Key: "PRODUCT_NAME", Value: `"$(TARGET_NAME:c99extidentifier)"`},
		{Key: "SKIP_INSTALL", Value: "YES"},
		{Key: "SWIFT_EMIT_LOC_STRINGS", Value: "YES"},
		{Key: "TARGETED_DEVICE_FAMILY", Value: `"1,2"`},
		{Key: "VERSIONING_SYSTEM", Value: `"apple-generic"`},
	}
}
