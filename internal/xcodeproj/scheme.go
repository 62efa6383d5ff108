package xcodeproj

import (
	"encoding/hex"
	"fmt"
	"strings"

	"github.com/google/uuid"
)

const schemeTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<Scheme
   LastUpgradeVersion = "1500"
   version = "1.3">
   <BuildAction
      parallelizeBuildables = "YES"
      buildImplicitDependencies = "YES">
      <BuildActionEntries>
         <BuildActionEntry
            buildForTesting = "YES"
            buildForRunning = "YES"
            buildForProfiling = "YES"
            buildForArchiving = "YES"
            buildForAnalyzing = "YES">
            <BuildableReference
               BuildableIdentifier = "primary"
               BlueprintIdentifier = "%[1]s"
               BuildableName = "%[2]s.framework"
               BlueprintName = "%[2]s"
               ReferencedContainer = "container:%[2]s.xcodeproj">
            </BuildableReference>
         </BuildActionEntry>
      </BuildActionEntries>
   </BuildAction>
   <TestAction
      buildConfiguration = "%[3]s"
      selectedDebuggerIdentifier = "Xcode.DebuggerFoundation.Debugger.LLDB"
      selectedLauncherIdentifier = "Xcode.DebuggerFoundation.Launcher.LLDB"
      shouldUseLaunchSchemeArgsEnv = "YES">
      <Testables>
      </Testables>
   </TestAction>
   <LaunchAction
      buildConfiguration = "%[3]s"
      selectedDebuggerIdentifier = "Xcode.DebuggerFoundation.Debugger.LLDB"
      selectedLauncherIdentifier = "Xcode.DebuggerFoundation.Launcher.LLDB"
      launchStyle = "0"
      useCustomWorkingDirectory = "NO"
      ignoresPersistentStateOnLaunch = "NO"
      debugDocumentVersioning = "YES"
      debugServiceExtension = "internal"
      allowLocationSimulation = "YES">
   </LaunchAction>
   <ProfileAction
      buildConfiguration = "%[4]s"
      shouldUseLaunchSchemeArgsEnv = "YES"
      savedToolIdentifier = ""
      useCustomWorkingDirectory = "NO"
      debugDocumentVersioning = "YES">
   </ProfileAction>
   <AnalyzeAction
      buildConfiguration = "%[3]s">
   </AnalyzeAction>
   <ArchiveAction
      buildConfiguration = "%[4]s"
      revealArchiveInOrganizer = "YES">
   </ArchiveAction>
</Scheme>`

// GenerateScheme renders the shared scheme document. debugCfg drives
// the test, launch and analyze actions; releaseCfg drives profile and
// archive. The blueprint identifier is freshly allocated on every
// call: schemes are not part of the reproducible-output contract.
func GenerateScheme(artifact, debugCfg, releaseCfg string) []byte {
	return fmt.Appendf(nil, schemeTemplate, blueprintID(), artifact, debugCfg, releaseCfg)
}

func blueprintID() string {
	u := uuid.New()
	return strings.ToUpper(hex.EncodeToString(u[:]))[:24]
}
