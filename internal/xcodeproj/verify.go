package xcodeproj

import (
	"errors"
	"fmt"

	"github.com/dominikbraun/graph"
)

// ErrIntegrity reports a duplicate node id or a reference to a node
// that is not part of the document. BuildDocument never produces
// either; the serializer refuses to emit a document failing this
// check.
var ErrIntegrity = errors.New("project graph integrity violation")

type node struct {
	id  string
	isa string
}

// Verify checks that every node id in doc is unique and that every
// cross-reference resolves to an emitted node.
func Verify(doc *Document) error {
	g := graph.New(func(n node) string { return n.id }, graph.Directed())

	for _, n := range doc.nodes() {
		if err := g.AddVertex(n); err != nil {
			return fmt.Errorf("%w: duplicate node id %s (%s)", ErrIntegrity, n.id, n.isa)
		}
	}
	for _, e := range doc.edges() {
		err := g.AddEdge(e[0], e[1])
		if err != nil && !errors.Is(err, graph.ErrEdgeAlreadyExists) {
			return fmt.Errorf("%w: node %s references unknown node %s", ErrIntegrity, e[0], e[1])
		}
	}
	return nil
}

func (d *Document) nodes() []node {
	var nodes []node
	for _, bf := range d.BuildFiles {
		nodes = append(nodes, node{bf.ID, "PBXBuildFile"})
	}
	for _, fr := range d.FileReferences {
		nodes = append(nodes, node{fr.ID, "PBXFileReference"})
	}
	for _, p := range d.phases() {
		nodes = append(nodes, node{p.ID, p.Isa})
	}
	for _, g := range d.Groups {
		nodes = append(nodes, node{g.ID, "PBXGroup"})
	}
	nodes = append(nodes,
		node{d.Target.ID, "PBXNativeTarget"},
		node{d.Project.ID, "PBXProject"})
	for _, c := range d.Configurations {
		nodes = append(nodes, node{c.ID, "XCBuildConfiguration"})
	}
	for _, l := range d.Lists {
		nodes = append(nodes, node{l.ID, "XCConfigurationList"})
	}
	return nodes
}

func (d *Document) edges() [][2]string {
	var edges [][2]string
	edge := func(from, to string) {
		edges = append(edges, [2]string{from, to})
	}
	refs := func(from string, rs []Ref) {
		for _, r := range rs {
			edge(from, r.ID)
		}
	}

	for _, bf := range d.BuildFiles {
		edge(bf.ID, bf.FileRef.ID)
	}
	for _, p := range d.phases() {
		refs(p.ID, p.Files)
	}
	for _, g := range d.Groups {
		refs(g.ID, g.Children)
	}
	edge(d.Target.ID, d.Target.ConfigurationList.ID)
	refs(d.Target.ID, d.Target.BuildPhases)
	edge(d.Target.ID, d.Target.ProductReference.ID)
	edge(d.Project.ID, d.Project.ConfigurationList.ID)
	edge(d.Project.ID, d.Project.MainGroup)
	edge(d.Project.ID, d.Project.ProductRefGroup.ID)
	refs(d.Project.ID, d.Project.Targets)
	for _, l := range d.Lists {
		refs(l.ID, l.Configurations)
	}
	return edges
}

func (d *Document) phases() []BuildPhase {
	return []BuildPhase{d.FrameworksPhase, d.HeadersPhase, d.SourcesPhase}
}
