// Package listview binds a pager.Controller to a remote list: it owns the
// item, total and error state that the fetch callback fills in.
package listview

import (
	"context"

	"go.uber.org/zap"

	"posyandu/internal/lib/logger/utils"
	"posyandu/internal/models"
	"posyandu/internal/pager"
)

// Lister loads one page of T.
type Lister[T any] interface {
	List(ctx context.Context, params pager.Params) (*models.Page[T], error)
}

// ListerFunc adapts a function to Lister.
type ListerFunc[T any] func(ctx context.Context, params pager.Params) (*models.Page[T], error)

func (f ListerFunc[T]) List(ctx context.Context, params pager.Params) (*models.Page[T], error) {
	return f(ctx, params)
}

// Snapshot is a consistent read of the view's state.
type Snapshot[T any] struct {
	Items   []T
	Meta    models.Meta
	Filter  pager.Filter
	Err     error
	Loading bool
}

type View[T any] struct {
	lister Lister[T]

	items      *pager.Signal[[]T]
	total      *pager.Signal[int]
	totalPages *pager.Signal[int]
	err        *pager.Signal[error]
	loading    *pager.Signal[int]
	filter     *pager.Signal[pager.Filter]

	ctrl *pager.Controller
}

// New builds the view and starts loading the first page. Controller options
// (initial page/limit, executor, extra dependencies) pass straight through.
func New[T any](ctx context.Context, lister Lister[T], filter pager.Filter, opts ...pager.Option) *View[T] {
	v := &View[T]{
		lister:     lister,
		items:      pager.NewSignal[[]T](nil),
		total:      pager.NewSignal(0),
		totalPages: pager.NewSignal(1),
		err:        pager.NewSignal[error](nil),
		loading:    pager.NewSignal(0),
		filter:     pager.NewFilter(filter),
	}

	opts = append([]pager.Option{
		pager.WithTotalPages(v.totalPages),
		pager.WithFilter(v.filter),
		pager.WithLogger(utils.Logger),
	}, opts...)
	v.ctrl = pager.New(ctx, v.fetch, v.total, opts...)
	return v
}

// fetch applies results as they arrive; when fetches overlap the last one
// to finish wins.
func (v *View[T]) fetch(ctx context.Context, params pager.Params) {
	v.loading.Update(func(n int) int { return n + 1 })
	defer v.loading.Update(func(n int) int { return n - 1 })

	page, err := v.lister.List(ctx, params)
	if err != nil {
		utils.Logger.Error("listview - fetch failed", zap.Error(err), zap.Int("page", params.Page), zap.Int("limit", params.Limit))
		v.err.Set(err)
		return
	}

	v.err.Set(nil)
	v.items.Set(page.Data)
	v.total.Set(page.Meta.TotalData)
	v.totalPages.Set(page.Meta.TotalPage)
}

func (v *View[T]) Next() bool { return v.ctrl.SetPage(v.ctrl.CurrentPage() + 1) }

func (v *View[T]) Prev() bool { return v.ctrl.SetPage(v.ctrl.CurrentPage() - 1) }

func (v *View[T]) Goto(page int) bool { return v.ctrl.SetPage(page) }

func (v *View[T]) SetLimit(limit int) bool { return v.ctrl.SetLimit(limit) }

func (v *View[T]) Reset() { v.ctrl.ResetPage() }

// SetFilter sets one filter entry, or clears it when value is empty, and goes
// back to page 1 in a single fetch.
func (v *View[T]) SetFilter(key, value string) {
	v.ctrl.Batch(func() {
		v.filter.Update(func(f pager.Filter) pager.Filter { return f.With(key, value) })
		v.ctrl.ResetPage()
	})
}

// Wait blocks until in-flight fetches finish.
func (v *View[T]) Wait() { v.ctrl.Wait() }

func (v *View[T]) Close() { v.ctrl.Close() }

func (v *View[T]) Snapshot() Snapshot[T] {
	return Snapshot[T]{
		Items:   v.items.Get(),
		Meta:    v.ctrl.Meta(),
		Filter:  v.filter.Get(),
		Err:     v.err.Get(),
		Loading: v.loading.Get() > 0,
	}
}
