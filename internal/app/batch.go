package app

import (
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/five82/thronedex/internal/pipeline"
	"github.com/five82/thronedex/internal/query"
	"github.com/five82/thronedex/internal/render"
	"github.com/five82/thronedex/internal/state"
)

const defaultExportTitle = "Game of Thrones Characters"

// Filters are the view-state inputs a batch command starts from.
type Filters struct {
	Query      string
	Family     string // empty means All
	Descending bool
}

// ListOptions configure the list command.
type ListOptions struct {
	Filters
	Format   string // table, json or yaml
	Families bool   // print the family set above the table
}

// ExportOptions configure the export command.
type ExportOptions struct {
	Filters
	Title string
}

// List loads the characters once and writes the filtered, sorted view to w.
// Unlike the TUI, a failed load is returned so the process exits non-zero.
func List(ctx context.Context, opts Options, list ListOptions, w io.Writer) error {
	sink, err := listSink(w, list)
	if err != nil {
		return err
	}

	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	_, err = runBatch(ctx, rt, sink, list.Filters)
	return err
}

// Export loads the characters once and writes a standalone HTML page with
// the family options and the card fragments for the filtered view.
func Export(ctx context.Context, opts Options, export ExportOptions, w io.Writer) error {
	rt, err := setup(opts)
	if err != nil {
		return err
	}
	defer rt.close()

	markup := &render.Markup{}
	if _, err := runBatch(ctx, rt, markup, export.Filters); err != nil {
		return err
	}

	title := strings.TrimSpace(export.Title)
	if title == "" {
		title = defaultExportTitle
	}
	return markup.WritePage(w, title)
}

func listSink(w io.Writer, list ListOptions) (render.Sink, error) {
	switch format := strings.ToLower(strings.TrimSpace(list.Format)); format {
	case "", "table":
		return render.NewTable(w, list.Families), nil
	case string(render.FormatJSON), string(render.FormatYAML):
		return render.NewEncoded(w, render.Format(format))
	default:
		return nil, fmt.Errorf("unsupported format %q (want table, json or yaml)", list.Format)
	}
}

// runBatch seeds the store with the filters, then performs the single load.
// Inputs set before the load are recorded without rendering, so the sink
// sees exactly one category list and one view.
func runBatch(ctx context.Context, rt *runtime, sink render.Sink, filters Filters) (*state.Store, error) {
	store := state.NewStore()
	store.SetQuery(filters.Query)
	store.SetCategory(strings.TrimSpace(filters.Family))
	if filters.Descending {
		store.SetDirection(query.Descending)
	}

	controller, err := pipeline.New(pipeline.Options{
		Fetcher: rt.fetcher,
		Sink:    sink,
		Sorter:  rt.sorter,
		Store:   store,
		Logger:  rt.logger,
	})
	if err != nil {
		return nil, fmt.Errorf("init pipeline: %w", err)
	}
	if err := controller.Load(ctx); err != nil {
		return store, fmt.Errorf("load characters: %w", err)
	}
	return store, nil
}
