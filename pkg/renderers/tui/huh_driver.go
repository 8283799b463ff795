package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"
)

type huhDriver struct {
	out   io.Writer
	style lipgloss.Style
}

// NewHuhDriver returns a driver backed by charmbracelet/huh forms. Info lines
// are styled with lipgloss and written to out (stdout when nil).
func NewHuhDriver(out io.Writer) PromptDriver {
	if out == nil {
		out = os.Stdout
	}
	return &huhDriver{
		out:   out,
		style: lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#3b82f6")),
	}
}

func (d *huhDriver) Input(ctx context.Context, cfg InputConfig) (string, error) {
	value := cfg.Default
	field := huh.NewInput().
		Title(cfg.Message).
		Description(cfg.Help).
		Placeholder(cfg.Placeholder).
		Value(&value)
	if cfg.Validator != nil {
		field = field.Validate(cfg.Validator)
	}
	if err := huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx); err != nil {
		return "", translateHuhErr(err)
	}
	return value, nil
}

func (d *huhDriver) Select(ctx context.Context, cfg SelectConfig) (int, error) {
	idx := 0
	if cfg.DefaultIndex >= 0 && cfg.DefaultIndex < len(cfg.Options) {
		idx = cfg.DefaultIndex
	}
	options := make([]huh.Option[int], len(cfg.Options))
	for i, label := range cfg.Options {
		options[i] = huh.NewOption(label, i)
	}
	field := huh.NewSelect[int]().
		Title(cfg.Message).
		Description(cfg.Help).
		Options(options...).
		Value(&idx)
	if cfg.PageSize > 0 {
		field = field.Height(cfg.PageSize + 2)
	}
	if err := huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx); err != nil {
		return 0, translateHuhErr(err)
	}
	return idx, nil
}

func (d *huhDriver) MultiSelect(ctx context.Context, cfg SelectConfig) ([]int, error) {
	selected := make([]int, 0, len(cfg.Defaults))
	preselected := make(map[int]bool, len(cfg.Defaults))
	for _, idx := range cfg.Defaults {
		if idx >= 0 && idx < len(cfg.Options) && !preselected[idx] {
			preselected[idx] = true
			selected = append(selected, idx)
		}
	}
	options := make([]huh.Option[int], len(cfg.Options))
	for i, label := range cfg.Options {
		options[i] = huh.NewOption(label, i).Selected(preselected[i])
	}
	field := huh.NewMultiSelect[int]().
		Title(cfg.Message).
		Description(cfg.Help).
		Options(options...).
		Value(&selected)
	if err := huh.NewForm(huh.NewGroup(field)).RunWithContext(ctx); err != nil {
		return nil, translateHuhErr(err)
	}
	return selected, nil
}

func (d *huhDriver) Info(ctx context.Context, msg string) error {
	if err := ctx.Err(); err != nil {
		return err
	}
	_, err := fmt.Fprintln(d.out, d.style.Render(msg))
	return err
}

func translateHuhErr(err error) error {
	if errors.Is(err, huh.ErrUserAborted) {
		return ErrAborted
	}
	return err
}
