package xcodeproj

import "fmt"

const workspaceTemplate = `<?xml version="1.0" encoding="UTF-8"?>
<Workspace
   version = "1.0">
   <FileRef
      location = "self:%s.xcodeproj">
   </FileRef>
</Workspace>`

// GenerateWorkspace renders the workspace contents document pointing
// the workspace at its own project.
func GenerateWorkspace(artifact string) []byte {
	return fmt.Appendf(nil, workspaceTemplate, artifact)
}
