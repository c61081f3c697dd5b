// Package graph folds raw ego-network rows into the deduplicated node/link
// view served to clients.
package graph

import (
	"github.com/corporate-radar/backend/pkg/store/base"
)

// Node is one vertex of the assembled view.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name,omitempty"`
	Type string `json:"type"`
}

// Link is one directed edge of the assembled view.
type Link struct {
	Source string `json:"source"`
	Target string `json:"target"`
	Role   string `json:"role,omitempty"`
}

// View is the client-facing shape of a company's 2-hop neighborhood.
type View struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

const (
	nodeTypeCompany = "company"
	nodeTypePerson  = "person"
)

// Assemble folds ego-network rows into a deduplicated view. Nodes keep the
// order in which their identifier first appeared; a node seen first without
// a name picks one up from a later row, and a name once set is never
// replaced. Links are unique per (source, target, role) triple. Rows with
// missing identifiers contribute nothing for the absent part.
func Assemble(rows []base.EgoRow) *View {
	view := &View{
		Nodes: []Node{},
		Links: []Link{},
	}

	nodeIndex := map[string]int{}
	seenLinks := map[linkKey]struct{}{}

	addNode := func(id, name, typ string) {
		if id == "" {
			return
		}
		if i, ok := nodeIndex[id]; ok {
			if view.Nodes[i].Name == "" && name != "" {
				view.Nodes[i].Name = name
			}
			return
		}
		nodeIndex[id] = len(view.Nodes)
		view.Nodes = append(view.Nodes, Node{ID: id, Name: name, Type: typ})
	}

	addLink := func(source, target, role string) {
		if source == "" || target == "" {
			return
		}
		key := linkKey{source: source, target: target, role: role}
		if _, ok := seenLinks[key]; ok {
			return
		}
		seenLinks[key] = struct{}{}
		view.Links = append(view.Links, Link{Source: source, Target: target, Role: role})
	}

	for _, row := range rows {
		addNode(row.RootID, row.RootName, nodeTypeCompany)
		addNode(row.PersonID, row.PersonName, nodeTypePerson)
		addNode(row.OtherID, row.OtherName, nodeTypeCompany)
		addLink(row.PersonID, row.RootID, row.RoleToRoot)
		addLink(row.PersonID, row.OtherID, row.RoleToOther)
	}

	return view
}

type linkKey struct {
	source string
	target string
	role   string
}
