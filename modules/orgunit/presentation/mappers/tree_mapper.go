package mappers

import (
	"sort"

	"github.com/google/uuid"

	"github.com/campuskit/campuskit/modules/orgunit/presentation/viewmodels"
	"github.com/campuskit/campuskit/modules/orgunit/services"
)

// ItemsToTree flattens tree items into pre-order, children grouped by
// parent and siblings sorted by sortOrder, then name, then id. Items
// whose parent is absent from the set are treated as roots so a
// status-filtered result still renders.
func ItemsToTree(items []*services.TreeItem) *viewmodels.Tree {
	byID := make(map[uuid.UUID]*services.TreeItem, len(items))
	for _, item := range items {
		byID[item.Unit.ID()] = item
	}

	childrenByParent := make(map[uuid.UUID][]*services.TreeItem, len(items))
	roots := make([]*services.TreeItem, 0, 8)
	for _, item := range items {
		parentID := item.Unit.ParentID()
		if parentID == nil || byID[*parentID] == nil {
			roots = append(roots, item)
			continue
		}
		childrenByParent[*parentID] = append(childrenByParent[*parentID], item)
	}

	sortSiblings(roots)
	for parentID := range childrenByParent {
		sortSiblings(childrenByParent[parentID])
	}

	nodes := make([]viewmodels.TreeNode, 0, len(items))
	var walk func(item *services.TreeItem)
	walk = func(item *services.TreeItem) {
		unit := item.Unit
		node := viewmodels.TreeNode{
			ID:         unit.ID().String(),
			Name:       unit.Name(),
			Code:       unit.Code(),
			Type:       string(unit.Type()),
			Status:     string(unit.Status()),
			Depth:      unit.Depth(),
			SortOrder:  unit.SortOrder(),
			ChildCount: item.ChildCount,
		}
		if unit.ParentID() != nil {
			parentID := unit.ParentID().String()
			node.ParentID = &parentID
		}
		nodes = append(nodes, node)
		for _, child := range childrenByParent[unit.ID()] {
			walk(child)
		}
	}
	for _, root := range roots {
		walk(root)
	}

	return &viewmodels.Tree{Nodes: nodes}
}

func sortSiblings(siblings []*services.TreeItem) {
	sort.SliceStable(siblings, func(i, j int) bool {
		a, b := siblings[i].Unit, siblings[j].Unit
		if a.SortOrder() != b.SortOrder() {
			return a.SortOrder() < b.SortOrder()
		}
		if a.Name() != b.Name() {
			return a.Name() < b.Name()
		}
		return a.ID().String() < b.ID().String()
	})
}
