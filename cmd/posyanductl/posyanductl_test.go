package main

import (
	"bytes"
	"context"
	"fmt"
	"net/http"
	"net/http/httptest"
	"strconv"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"posyandu/internal/listview"
	"posyandu/internal/models"
	"posyandu/internal/pager"
)

// portalStub serves /posyandu pages over a fixed number of rows.
type portalStub struct {
	mu      sync.Mutex
	total   int
	queries []string
}

func (s *portalStub) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.mu.Lock()
	s.queries = append(s.queries, r.URL.RawQuery)
	s.mu.Unlock()

	q := r.URL.Query()
	page, _ := strconv.Atoi(q.Get("page"))
	limit, _ := strconv.Atoi(q.Get("limit"))
	pagination := models.NewPagination(page, limit)

	data := []string{}
	for i := pagination.GetOffset() + 1; i <= min(pagination.GetOffset()+pagination.GetLimit(), s.total); i++ {
		data = append(data, fmt.Sprintf(`{"id":%d,"name":"Posyandu %02d","kelurahan":"Pakansari","kecamatan":"%s"}`, i, i, q.Get("kecamatan")))
	}
	meta := models.NewMeta(s.total, pagination)

	w.Header().Set("Content-Type", "application/json")
	fmt.Fprintf(w, `{"data":[%s],"meta":{"totalData":%d,"totalPage":%d,"currentPage":%d,"limit":%d}}`,
		strings.Join(data, ","), meta.TotalData, meta.TotalPage, meta.CurrentPage, meta.Limit)
}

func (s *portalStub) lastQuery() string {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.queries[len(s.queries)-1]
}

func runCLI(t *testing.T, stdin string, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetIn(strings.NewReader(stdin))
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

func TestListCommand(t *testing.T) {
	stub := &portalStub{total: 23}
	server := httptest.NewServer(stub)
	defer server.Close()

	out, err := runCLI(t, "", "list", "--api-url", server.URL, "--page", "3", "--kecamatan", "Cibinong")
	require.NoError(t, err)

	assert.Equal(t, "kecamatan=Cibinong&limit=10&page=3", stub.lastQuery())
	assert.Contains(t, out, "Posyandu 21")
	assert.Contains(t, out, "Posyandu 23")
	assert.NotContains(t, out, "Posyandu 20")
	assert.Contains(t, out, "page 3/3")
	assert.Contains(t, out, "kecamatan=Cibinong")
}

func TestListCommand_UpstreamError(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"Failed to list posyandu"}`, http.StatusInternalServerError)
	}))
	defer server.Close()

	_, err := runCLI(t, "", "list", "--api-url", server.URL)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "Failed to list posyandu")
}

func TestBrowseCommand(t *testing.T) {
	stub := &portalStub{total: 23}
	server := httptest.NewServer(stub)
	defer server.Close()

	out, err := runCLI(t, "n\nn\nn\ng 1\nl 5\nf kecamatan=Bogor\nbogus\nq\n", "browse", "--api-url", server.URL)
	require.NoError(t, err)

	assert.Contains(t, out, "page 1/3")
	assert.Contains(t, out, "page 3/3")
	assert.Contains(t, out, "nothing to show there")
	assert.Contains(t, out, "page 1/5 · 5 per page · 23 total")
	assert.Contains(t, out, "kecamatan=Bogor")
	assert.Contains(t, out, `unknown command "bogus"`)
	assert.Equal(t, "kecamatan=Bogor&limit=5&page=1", stub.lastQuery())
}

func TestBrowse_InlineView(t *testing.T) {
	calls := 0
	lister := listview.ListerFunc[models.Posyandu](func(ctx context.Context, params pager.Params) (*models.Page[models.Posyandu], error) {
		calls++
		return &models.Page[models.Posyandu]{
			Data: []models.Posyandu{{ID: params.Page, Name: "Posyandu Melati"}},
			Meta: models.NewMeta(2, params.Pagination()),
		}, nil
	})
	view := listview.New[models.Posyandu](context.Background(), lister, nil, pager.WithExecutor(pager.Inline))
	defer view.Close()

	var out bytes.Buffer
	err := browse(strings.NewReader("p\nf bad\nr\n"), &out, view)
	require.NoError(t, err)

	assert.Equal(t, 2, calls, "initial load and reload")
	assert.Contains(t, out.String(), "nothing to show there")
	assert.Contains(t, out.String(), "usage: f key=value")
	assert.Equal(t, 2, strings.Count(out.String(), "page 1/1"))
}

func TestMetaLine(t *testing.T) {
	meta := models.Meta{TotalData: 23, TotalPage: 3, CurrentPage: 2, Limit: 10}

	assert.Equal(t, "page 2/3 · 10 per page · 23 total", metaLine(meta, nil))
	assert.Equal(t, "page 2/3 · 10 per page · 23 total · kecamatan=Cibinong name=melati",
		metaLine(meta, map[string]string{"name": "melati", "kecamatan": "Cibinong"}))
}
