package pager

import (
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// Control is a bound pager found in a rendered tree.
type Control struct {
	Action   string
	Active   int
	LastPage int
}

// Controls lists the bound pagers of tree in document order. Pagers rendered
// without a page change handler are skipped.
func Controls(tree *render.Node) []Control {
	var out []Control
	for _, node := range tree.FindKind(Kind) {
		action := node.Attrs[ActionAttr]
		if action == "" {
			continue
		}
		active, _ := schema.ToInt(node.Props["activePage"])
		last, _ := schema.ToInt(node.Props["lastPage"])
		out = append(out, Control{Action: action, Active: max(active, 1), LastPage: max(last, 1)})
	}
	return out
}
