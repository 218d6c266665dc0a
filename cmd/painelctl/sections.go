package main

import (
	"context"
	"fmt"
	"strings"
	"text/tabwriter"

	"github.com/nisiafloresta/painel-bi/pkg/config"
)

type sectionsCmd struct {
	JSON bool `help:"Print the catalog as JSON."`
}

func (c *sectionsCmd) Run(_ context.Context, cfg *config.Config) error {
	catalog, err := loadCatalog(cfg)
	if err != nil {
		return err
	}
	if c.JSON {
		return writeJSON(catalog.Sections)
	}
	tw := tabwriter.NewWriter(stdout, 0, 4, 2, ' ', 0)
	fmt.Fprintln(tw, "ID\tRÓTULO\tSUGESTÕES")
	for _, s := range catalog.Sections {
		fmt.Fprintf(tw, "%s\t%s\t%s\n", s.ID, s.Label, strings.Join(s.Suggestions, " | "))
	}
	return tw.Flush()
}
