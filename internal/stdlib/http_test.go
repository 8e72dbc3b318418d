package stdlib_test

import (
	"io"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/quest-lang/quest/internal/object"
	"github.com/quest-lang/quest/internal/stdlib"
)

func TestHttpGetReturnsStatusAndBody(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("X-Quest", "yes")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte("hello"))
	}))
	defer srv.Close()

	mod := stdlib.Http()
	result := callBuiltin(t, mod, "get", &object.Str{Value: srv.URL})
	d, ok := result.(*object.Dict)
	require.True(t, ok)

	status, ok := d.Get("status")
	require.True(t, ok)
	assert.Equal(t, int64(200), status.(*object.Int).Value)

	body, ok := d.Get("body")
	require.True(t, ok)
	assert.Equal(t, "hello", body.(*object.Str).Value)

	headers, ok := d.Get("headers")
	require.True(t, ok)
	hv, ok := headers.(*object.Dict).Get("X-Quest")
	require.True(t, ok)
	assert.Equal(t, "yes", hv.(*object.Str).Value)
}

func TestHttpPostSendsBodyAndContentType(t *testing.T) {
	var gotBody, gotContentType string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		b, _ := io.ReadAll(r.Body)
		gotBody = string(b)
		gotContentType = r.Header.Get("Content-Type")
		w.WriteHeader(http.StatusCreated)
	}))
	defer srv.Close()

	mod := stdlib.Http()
	result := callBuiltin(t, mod, "post",
		&object.Str{Value: srv.URL},
		&object.Str{Value: `{"a":1}`},
		&object.Str{Value: "application/json"},
	)
	d := result.(*object.Dict)
	status, _ := d.Get("status")
	assert.Equal(t, int64(201), status.(*object.Int).Value)
	assert.Equal(t, `{"a":1}`, gotBody)
	assert.Equal(t, "application/json", gotContentType)
}
