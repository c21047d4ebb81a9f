// Package schema holds the declarative node tree consumed by the rendering
// engine. Documents are plain JSON or YAML objects where the "type" key selects
// the component kind and every other key is a property of that component.
package schema
