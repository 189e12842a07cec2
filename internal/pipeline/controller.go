// Package pipeline drives the load, filter, sort and render cycle behind
// every view of the character list.
package pipeline

import (
	"context"
	"fmt"

	"go.uber.org/zap"

	"github.com/five82/thronedex/internal/character"
	"github.com/five82/thronedex/internal/query"
	"github.com/five82/thronedex/internal/render"
	"github.com/five82/thronedex/internal/state"
	"github.com/five82/thronedex/internal/thronesapi"
)

// Options configure a Controller.
type Options struct {
	Fetcher thronesapi.Fetcher
	Sink    render.Sink
	Sorter  *query.Sorter
	Store   *state.Store // nil creates a fresh store
	Logger  *zap.Logger  // nil disables logging
}

// Controller owns the store and recomputes the view on every trigger: load,
// query change, category change, sort toggle and reset.
type Controller struct {
	fetcher thronesapi.Fetcher
	sink    render.Sink
	sorter  *query.Sorter
	store   *state.Store
	logger  *zap.Logger
}

// New validates opts and returns a Controller.
func New(opts Options) (*Controller, error) {
	if opts.Fetcher == nil {
		return nil, fmt.Errorf("pipeline requires a fetcher")
	}
	if opts.Sink == nil {
		return nil, fmt.Errorf("pipeline requires a render sink")
	}
	if opts.Sorter == nil {
		return nil, fmt.Errorf("pipeline requires a sorter")
	}
	store := opts.Store
	if store == nil {
		store = state.NewStore()
	}
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Controller{
		fetcher: opts.Fetcher,
		sink:    opts.Sink,
		sorter:  opts.Sorter,
		store:   store,
		logger:  logger,
	}, nil
}

// Store exposes the controller's store for read access.
func (c *Controller) Store() *state.Store {
	return c.store
}

// Fetch performs the single network request. It does not touch the store, so
// it may run off the event loop; pass the result to Apply.
func (c *Controller) Fetch(ctx context.Context) ([]thronesapi.Record, error) {
	c.logger.Info("loading characters")
	records, err := c.fetcher.FetchCharacters(ctx)
	if err != nil {
		return nil, fmt.Errorf("fetch characters: %w", err)
	}
	return records, nil
}

// Apply stores a fetch result, publishes the category set and recomputes the
// view. A non-nil err leaves the list empty; the sink still receives the
// empty view. The fetch error is returned unchanged so callers can report it.
func (c *Controller) Apply(records []thronesapi.Record, err error) error {
	if err != nil {
		c.logger.Error("load failed", zap.Error(err))
		c.store.Load(nil, err)
	} else {
		chars, dups := character.FromRecords(records)
		if len(dups) > 0 {
			c.logger.Warn("dropped duplicate character ids", zap.Ints("ids", dups))
		}
		c.store.Load(chars, nil)
		c.logger.Info("characters loaded",
			zap.Int("count", len(chars)),
			zap.Int("families", len(c.store.Categories())-1),
		)
	}

	if rerr := c.sink.RenderCategories(c.store.Categories()); rerr != nil {
		return fmt.Errorf("render categories: %w", rerr)
	}
	if rerr := c.recompute(); rerr != nil {
		return rerr
	}
	return err
}

// Load fetches and applies in one step.
func (c *Controller) Load(ctx context.Context) error {
	records, err := c.Fetch(ctx)
	return c.Apply(records, err)
}

// SetQuery updates the query text and recomputes.
func (c *Controller) SetQuery(q string) error {
	c.store.SetQuery(q)
	return c.recompute()
}

// SetCategory selects a category and recomputes. Unknown categories are
// accepted and yield an empty view.
func (c *Controller) SetCategory(category string) error {
	c.store.SetCategory(category)
	return c.recompute()
}

// SetDirection sets the sort direction without toggling and recomputes.
func (c *Controller) SetDirection(dir query.Direction) error {
	c.store.SetDirection(dir)
	return c.recompute()
}

// ToggleSort flips the sort direction and recomputes.
func (c *Controller) ToggleSort() error {
	c.store.SetDirection(c.store.Direction().Toggle())
	return c.recompute()
}

// Reset clears the query, keeps the selected category and recomputes.
func (c *Controller) Reset() error {
	c.store.SetQuery("")
	return c.recompute()
}

// recompute rebuilds the view from the full list. Before the first load there
// is nothing to show, so inputs are recorded without rendering.
func (c *Controller) recompute() error {
	if !c.store.Loaded() {
		return nil
	}
	filtered := query.Filter(c.store.Characters(), c.store.Query(), c.store.Category())
	view := c.sorter.Sort(filtered, c.store.Direction())
	c.store.SetView(view)
	if err := c.sink.RenderCharacters(view); err != nil {
		return fmt.Errorf("render characters: %w", err)
	}
	return nil
}
