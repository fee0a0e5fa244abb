// Package pager keeps page/limit state for a list view and calls a fetch
// callback whenever that state, the filter, or a watched dependency changes.
package pager

import (
	"context"
	"sync"

	"go.uber.org/zap"
	"golang.org/x/exp/maps"

	"posyandu/internal/models"
)

// FetchFunc loads one page. It owns the result: it is expected to update the
// total signals and the caller's item state itself.
type FetchFunc func(ctx context.Context, params Params)

// Executor runs a scheduled fetch.
type Executor func(fn func())

// Go runs each fetch on its own goroutine. It is the default executor.
func Go(fn func()) { go fn() }

// Inline runs each fetch on the goroutine that triggered it.
func Inline(fn func()) { fn() }

type Option func(*Controller)

func WithInitialPage(page int) Option {
	return func(c *Controller) { c.state.Page = page }
}

func WithInitialLimit(limit int) Option {
	return func(c *Controller) { c.state.Limit = limit }
}

// WithTotalPages supplies an explicit page count. When set it always takes
// precedence over the count derived from the total.
func WithTotalPages(totalPages *Signal[int]) Option {
	return func(c *Controller) { c.totalPages = totalPages }
}

func WithFilter(filter *Signal[Filter]) Option {
	return func(c *Controller) { c.filter = filter }
}

func WithDependencies(deps ...Dependency) Option {
	return func(c *Controller) { c.deps = append(c.deps, deps...) }
}

func WithExecutor(exec Executor) Option {
	return func(c *Controller) { c.exec = exec }
}

func WithLogger(logger *zap.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

type Controller struct {
	ctx        context.Context
	cancel     context.CancelFunc
	fetch      FetchFunc
	total      *Signal[int]
	totalPages *Signal[int]
	filter     *Signal[Filter]
	deps       []Dependency
	exec       Executor
	logger     *zap.Logger

	mu       sync.Mutex
	state    models.Pagination
	batch    int
	pending  bool
	closed   bool
	unsubs   []func()
	inflight int
	idle     *sync.Cond
}

// New creates a controller and schedules the first fetch. total is read to
// compute Meta and is never written by the controller.
func New(ctx context.Context, fetch FetchFunc, total *Signal[int], opts ...Option) *Controller {
	if fetch == nil {
		panic("pager: nil fetch func")
	}
	if total == nil {
		total = NewSignal(0)
	}

	c := &Controller{
		fetch:  fetch,
		total:  total,
		exec:   Go,
		logger: zap.NewNop(),
	}
	c.idle = sync.NewCond(&c.mu)
	for _, opt := range opts {
		opt(c)
	}
	c.state = *models.NewPagination(c.state.Page, c.state.Limit)
	c.ctx, c.cancel = context.WithCancel(ctx)

	if c.filter != nil {
		c.unsubs = append(c.unsubs, c.filter.Subscribe(c.invalidate))
	}
	for _, dep := range c.deps {
		c.unsubs = append(c.unsubs, dep.Subscribe(c.invalidate))
	}

	c.invalidate()
	return c
}

func (c *Controller) CurrentPage() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Page
}

func (c *Controller) CurrentLimit() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Limit
}

func (c *Controller) Meta() models.Meta {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.metaLocked()
}

// Params returns the parameters the next fetch would be called with.
func (c *Controller) Params() Params {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.paramsLocked()
}

// SetPage moves to page if it lies within [1, totalPage]. Out-of-range
// pages are ignored and SetPage reports false.
func (c *Controller) SetPage(page int) bool {
	c.mu.Lock()
	if page < 1 || page > c.metaLocked().TotalPage {
		c.mu.Unlock()
		return false
	}
	c.state.Page = page
	c.commitLocked()
	return true
}

// SetLimit changes the page size and always returns to page 1. Non-positive
// limits are ignored.
func (c *Controller) SetLimit(limit int) bool {
	c.mu.Lock()
	if limit < 1 {
		c.mu.Unlock()
		return false
	}
	c.state.Limit = limit
	c.state.Page = 1
	c.commitLocked()
	return true
}

// ResetPage returns to page 1 and refetches, even when already there.
func (c *Controller) ResetPage() {
	c.mu.Lock()
	c.state.Page = 1
	c.commitLocked()
}

// Batch runs fn and folds every change it makes into at most one fetch.
func (c *Controller) Batch(fn func()) {
	c.mu.Lock()
	c.batch++
	c.mu.Unlock()

	defer func() {
		c.mu.Lock()
		c.batch--
		if c.batch > 0 || !c.pending {
			c.mu.Unlock()
			return
		}
		c.pending = false
		c.commitLocked()
	}()
	fn()
}

// Wait blocks until no fetch is in flight. It may run alongside mutations;
// fetches they schedule are waited for too.
func (c *Controller) Wait() {
	c.mu.Lock()
	defer c.mu.Unlock()
	for c.inflight > 0 {
		c.idle.Wait()
	}
}

// Close stops watching dependencies, cancels the fetch context and waits for
// in-flight fetches. Later mutations no longer fetch.
func (c *Controller) Close() {
	c.mu.Lock()
	if c.closed {
		c.mu.Unlock()
		return
	}
	c.closed = true
	unsubs := c.unsubs
	c.unsubs = nil
	c.mu.Unlock()

	for _, unsub := range unsubs {
		unsub()
	}
	c.cancel()
	c.Wait()
}

func (c *Controller) invalidate() {
	c.mu.Lock()
	c.commitLocked()
}

// commitLocked schedules a fetch for the current state and releases c.mu.
func (c *Controller) commitLocked() {
	if c.closed {
		c.mu.Unlock()
		return
	}
	if c.batch > 0 {
		c.pending = true
		c.mu.Unlock()
		return
	}
	params := c.paramsLocked()
	c.inflight++
	c.mu.Unlock()

	c.logger.Debug("pager: fetch scheduled",
		zap.Int("page", params.Page),
		zap.Int("limit", params.Limit),
		zap.Any("filter", params.Filter))

	c.exec(func() {
		defer c.done()
		c.fetch(c.ctx, params)
	})
}

func (c *Controller) done() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.inflight--
	if c.inflight == 0 {
		c.idle.Broadcast()
	}
}

func (c *Controller) paramsLocked() Params {
	params := Params{Page: c.state.Page, Limit: c.state.Limit}
	if c.filter != nil {
		params.Filter = maps.Clone(c.filter.Get())
	}
	return params
}

func (c *Controller) metaLocked() models.Meta {
	totalData := c.total.Get()
	totalPage := models.TotalPages(totalData, c.state.Limit)
	if c.totalPages != nil {
		totalPage = max(c.totalPages.Get(), 1)
	}
	return models.Meta{
		TotalData:   totalData,
		TotalPage:   totalPage,
		CurrentPage: c.state.Page,
		Limit:       c.state.Limit,
	}
}
