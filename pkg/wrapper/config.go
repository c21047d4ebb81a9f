package wrapper

import (
	"strings"

	"github.com/goliatone/go-pagewrap/pkg/schema"
	"github.com/goliatone/go-pagewrap/pkg/store"
)

// Position selects where the pager is rendered relative to the body.
type Position string

const (
	PositionTop    Position = "top"
	PositionBottom Position = "bottom"
	PositionNone   Position = "none"
)

const (
	DefaultInputName  = "items"
	DefaultOutputName = "items"
	DefaultPerPage    = 10
	// DefaultMaxButtons is the value the component applies when the schema
	// omits maxButtons.
	DefaultMaxButtons = 50
	// DocumentedMaxButtons is the value the schema documentation recommends.
	// It disagrees with DefaultMaxButtons; hosts pick one through Defaults.
	DocumentedMaxButtons = 25
	DefaultPosition      = PositionTop
)

// Config is the resolved configuration of one wrapper instance for a render
// pass.
type Config struct {
	InputName     string
	OutputName    string
	PerPage       int
	MaxButtons    int
	Mode          string
	Position      Position
	ShowPageInput bool
	Class         string
	Body          []schema.Node
	// BodySet is true when the body property is present, even as an empty
	// list.
	BodySet bool
}

// Defaults holds the values applied to properties the schema omits.
type Defaults struct {
	InputName  string
	OutputName string
	PerPage    int
	MaxButtons int
	Position   Position
}

// ComponentDefaults returns the defaults the component applies out of the box.
func ComponentDefaults() Defaults {
	return Defaults{
		InputName:  DefaultInputName,
		OutputName: DefaultOutputName,
		PerPage:    DefaultPerPage,
		MaxButtons: DefaultMaxButtons,
		Position:   DefaultPosition,
	}
}

// DocumentedDefaults returns the component defaults with the documented
// maxButtons value instead of the effective one.
func DocumentedDefaults() Defaults {
	d := ComponentDefaults()
	d.MaxButtons = DocumentedMaxButtons
	return d
}

// ConfigFromNode decodes a schema node using d for omitted properties.
// Values are not validated: a non positive perPage is forwarded as-is and left
// to the store to clamp. Unknown properties are ignored.
func ConfigFromNode(node schema.Node, d Defaults) Config {
	return Config{
		InputName:     node.String("inputName", d.InputName),
		OutputName:    node.String("outputName", d.OutputName),
		PerPage:       node.Int("perPage", d.PerPage),
		MaxButtons:    node.Int("maxButtons", d.MaxButtons),
		Mode:          node.String("mode", ""),
		Position:      Position(strings.ToLower(node.String("position", string(d.Position)))),
		ShowPageInput: node.Bool("showPageInput", false),
		Class:         node.String("className", ""),
		Body:          schema.Collection(node.Props["body"]),
		BodySet:       bodySet(node.Props["body"]),
	}
}

// HasBody reports whether nested content is configured. An empty body list
// counts and renders as empty content.
func (c Config) HasBody() bool {
	return c.BodySet || len(c.Body) > 0
}

// bodySet treats null, false and "" as absent.
func bodySet(raw any) bool {
	switch value := raw.(type) {
	case nil:
		return false
	case bool:
		return value
	case string:
		return value != ""
	}
	return true
}

// Props returns the full configuration snapshot handed to the store. The
// store picks the watched fields out of it.
func (c Config) Props() store.Props {
	return store.Props{
		FieldPerPage:       c.PerPage,
		FieldMode:          c.Mode,
		FieldMaxButtons:    c.MaxButtons,
		FieldInputName:     c.InputName,
		FieldOutputName:    c.OutputName,
		FieldPosition:      string(c.Position),
		FieldShowPageInput: c.ShowPageInput,
		FieldClassName:     c.Class,
		FieldBody:          c.Body,
	}
}
