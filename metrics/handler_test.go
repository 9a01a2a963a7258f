package metrics

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"btreekit/btree"
)

func TestHandler(t *testing.T) {
	tree, err := btree.New[int, string](5)
	require.NoError(t, err)
	for k := 0; k < 10; k++ {
		tree.Insert(k, "")
	}

	srv := httptest.NewServer(Handler(NewCollector("btree", tree.Stats)))
	defer srv.Close()

	resp, err := http.Get(srv.URL)
	require.NoError(t, err)
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	require.NoError(t, err)

	assert.Equal(t, http.StatusOK, resp.StatusCode)
	assert.Contains(t, string(body), "btree_keys 10")
	assert.Contains(t, string(body), "go_goroutines")
}
