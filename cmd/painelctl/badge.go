package main

import (
	"context"

	"github.com/nisiafloresta/painel-bi/components/transparency"
)

type badgeCmd struct {
	Tag    string `arg:"" help:"Provenance tag (real, ibge, estimativa, simulado)."`
	Source string `help:"Source shown in the badge tooltip."`
}

type badgeOutput struct {
	transparency.Badge
	Known   bool   `json:"known"`
	Classes string `json:"classes"`
	Caption string `json:"caption"`
}

func (c *badgeCmd) Run(_ context.Context) error {
	badge := transparency.For(c.Tag, c.Source)
	return writeJSON(badgeOutput{
		Badge:   badge,
		Known:   transparency.Known(c.Tag),
		Classes: badge.Classes(),
		Caption: badge.Caption(),
	})
}
