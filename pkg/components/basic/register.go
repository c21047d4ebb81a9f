package basic

import "github.com/goliatone/go-pagewrap/pkg/render"

const (
	KindTpl       = "tpl"
	KindEach      = "each"
	KindContainer = "container"
)

// Register binds every basic component to reg.
func Register(reg *render.Registry) error {
	for _, def := range []render.Definition{
		{Kind: KindTpl, Factory: render.Stateless(RenderTpl)},
		{Kind: KindEach, Factory: render.Stateless(RenderEach)},
		{Kind: KindContainer, Factory: render.Stateless(RenderContainer)},
	} {
		if err := reg.Register(def); err != nil {
			return err
		}
	}
	return nil
}
