package basic

import (
	"maps"
	"strconv"

	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// RenderEach repeats the "items" schema for every element of the list found
// at "name" (default "items"). Each element is rendered with the ambient data
// plus item, index and, for object elements, the element's own fields.
func RenderEach(host render.Host, node schema.Node) (*render.Node, error) {
	name := node.String("name", "items")
	template := schema.Collection(node.Props["items"])
	root := render.El(node.String("wrapperComponent", "div"), []string{"Each", node.String("className", "")})

	raw, _ := schema.Lookup(host.Data(), name)
	list, _ := raw.([]any)
	if len(list) == 0 || len(template) == 0 {
		if placeholder := node.String("placeholder", ""); placeholder != "" {
			root.Append(render.Text("span", host.Translate(placeholder), "Each-placeholder"))
		}
		return root, nil
	}

	for idx, item := range list {
		scope := make(map[string]any, len(host.Data())+2)
		maps.Copy(scope, host.Data())
		if fields, ok := item.(map[string]any); ok {
			maps.Copy(scope, fields)
		}
		scope["item"] = item
		scope["index"] = idx

		child, err := host.Render("item"+strconv.Itoa(idx), schema.Fragment(template...), render.Overrides{
			render.OverrideData: scope,
		})
		if err != nil {
			return nil, err
		}
		root.Append(child)
	}
	root.SetAttr("data-count", strconv.Itoa(len(list)))
	return root, nil
}

// RenderContainer renders body inside a div.
func RenderContainer(host render.Host, node schema.Node) (*render.Node, error) {
	root := render.El(node.String("wrapperComponent", "div"), []string{"Container", node.String("className", "")})
	body := schema.Collection(node.Props["body"])
	if len(body) == 0 {
		return root, nil
	}
	child, err := host.Render("body", schema.Fragment(body...), nil)
	if err != nil {
		return nil, err
	}
	return root.Append(child), nil
}
