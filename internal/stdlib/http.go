package stdlib

import (
	"io"
	"net/http"
	"strings"

	"github.com/quest-lang/quest/internal/object"
)

// Http builds the std/http module implementing spec.md §1's "HTTP" stdlib
// entry with the standard library's net/http (no pack dependency fits a
// plain client/server better than what ships in Go itself).
func Http() *object.Module {
	exports := map[string]object.Value{
		"get": fn("http.get", func(args []object.Value) (object.Value, error) {
			url, err := urlArg("http.get", args)
			if err != nil {
				return nil, err
			}
			resp, err := http.Get(url)
			if err != nil {
				return nil, err
			}
			return responseDict(resp)
		}),
		"post": fn("http.post", func(args []object.Value) (object.Value, error) {
			if len(args) < 2 {
				return nil, errArgs("http.post", 2, len(args))
			}
			url, ok := args[0].(*object.Str)
			if !ok {
				return nil, errType("http.post", "Str", args[0])
			}
			body, ok := args[1].(*object.Str)
			if !ok {
				return nil, errType("http.post", "Str body", args[1])
			}
			contentType := "application/octet-stream"
			if len(args) >= 3 {
				if ct, ok := args[2].(*object.Str); ok {
					contentType = ct.Value
				}
			}
			resp, err := http.Post(url.Value, contentType, strings.NewReader(body.Value))
			if err != nil {
				return nil, err
			}
			return responseDict(resp)
		}),
	}
	return &object.Module{Name: "http", Exports: exports}
}

func urlArg(name string, args []object.Value) (string, error) {
	if len(args) != 1 {
		return "", errArgs(name, 1, len(args))
	}
	s, ok := args[0].(*object.Str)
	if !ok {
		return "", errType(name, "Str", args[0])
	}
	return s.Value, nil
}

func responseDict(resp *http.Response) (object.Value, error) {
	defer resp.Body.Close()
	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, err
	}
	headers := object.NewDict()
	for k := range resp.Header {
		headers.Set(k, &object.Str{Value: resp.Header.Get(k)})
	}
	d := object.NewDict()
	d.Set("status", &object.Int{Value: int64(resp.StatusCode)})
	d.Set("body", &object.Str{Value: string(body)})
	d.Set("headers", headers)
	return d, nil
}
