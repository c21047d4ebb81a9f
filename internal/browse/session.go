// Package browse pages through a rendered schema interactively in a terminal.
package browse

import (
	"context"
	"errors"
	"fmt"
	"strconv"
	"strings"

	"github.com/rs/zerolog"

	"github.com/goliatone/go-pagewrap/pkg/components/pager"
	"github.com/goliatone/go-pagewrap/pkg/render"
	"github.com/goliatone/go-pagewrap/pkg/schema"
)

// Navigation choices.
const (
	ChoiceNext = "Next page"
	ChoicePrev = "Previous page"
	ChoiceGoto = "Go to page…"
	ChoiceQuit = "Quit"
)

// Engine is the subset of the render engine a session drives.
type Engine interface {
	Render(ctx context.Context, root schema.Node, data map[string]any) (*render.Node, error)
	Dispatch(ctx context.Context, id string, page int) error
}

// Printer turns a rendered tree into terminal output.
type Printer interface {
	Render(node *render.Node) string
}

// Session loops render, print, prompt, dispatch until the user quits.
type Session struct {
	Engine  Engine
	Printer Printer
	Driver  PromptDriver
	Root    schema.Node
	Data    map[string]any
	Logger  zerolog.Logger
}

// Run drives the session. Aborting a prompt ends it without error.
func (s *Session) Run(ctx context.Context) error {
	for {
		tree, err := s.Engine.Render(ctx, s.Root, s.Data)
		if err != nil {
			return err
		}
		if err := s.Driver.Info(ctx, s.Printer.Render(tree)); err != nil {
			return err
		}

		controls := pager.Controls(tree)
		if len(controls) == 0 {
			return nil
		}

		control, page, err := s.prompt(ctx, controls)
		if errors.Is(err, ErrAborted) {
			return nil
		}
		if err != nil {
			return err
		}
		if page == 0 {
			return nil
		}

		s.Logger.Debug().Str("action", control.Action).Int("page", page).Msg("switching page")
		if err := s.Engine.Dispatch(ctx, control.Action, page); err != nil {
			return err
		}
	}
}

// prompt returns the chosen control and target page; page 0 means quit.
func (s *Session) prompt(ctx context.Context, controls []pager.Control) (pager.Control, int, error) {
	control := controls[0]
	if len(controls) > 1 {
		options := make([]string, len(controls))
		for i, c := range controls {
			options[i] = fmt.Sprintf("%s (page %d of %d)", c.Action, c.Active, c.LastPage)
		}
		idx, err := s.Driver.Select(ctx, SelectConfig{Message: "Pager", Options: options})
		if err != nil {
			return pager.Control{}, 0, err
		}
		if idx < 0 || idx >= len(controls) {
			return pager.Control{}, 0, nil
		}
		control = controls[idx]
	}

	options := []string{ChoiceNext, ChoicePrev, ChoiceGoto, ChoiceQuit}
	idx, err := s.Driver.Select(ctx, SelectConfig{
		Message: fmt.Sprintf("Page %d of %d", control.Active, control.LastPage),
		Options: options,
	})
	if err != nil {
		return pager.Control{}, 0, err
	}
	if idx < 0 {
		return control, 0, nil
	}

	switch options[idx] {
	case ChoiceNext:
		return control, min(control.Active+1, control.LastPage), nil
	case ChoicePrev:
		return control, max(control.Active-1, 1), nil
	case ChoiceGoto:
		raw, err := s.Driver.Input(ctx, InputConfig{
			Message:   "Page",
			Default:   strconv.Itoa(control.Active),
			Validator: pageValidator(control.LastPage),
		})
		if err != nil {
			return pager.Control{}, 0, err
		}
		page, _ := strconv.Atoi(strings.TrimSpace(raw))
		return control, page, nil
	default:
		return control, 0, nil
	}
}

func pageValidator(last int) func(string) error {
	return func(raw string) error {
		page, err := strconv.Atoi(strings.TrimSpace(raw))
		if err != nil {
			return fmt.Errorf("enter a number")
		}
		if page < 1 || page > last {
			return fmt.Errorf("enter a page between 1 and %d", last)
		}
		return nil
	}
}
