package api

import (
	"strings"

	json "github.com/goccy/go-json"
	"github.com/valyala/fasthttp"
)

type errorResponse struct {
	Error string `json:"error"`
}

func writeJSON(ctx *fasthttp.RequestCtx, status int, v any) {
	b, err := json.Marshal(v)
	if err != nil {
		writeRaw(ctx, fasthttp.StatusInternalServerError, []byte(`{"error":"Failed to encode response"}`))
		return
	}
	writeRaw(ctx, status, b)
}

func writeRaw(ctx *fasthttp.RequestCtx, status int, body []byte) {
	ctx.SetContentType("application/json")
	ctx.SetStatusCode(status)
	ctx.SetBody(body)
}

func writeError(ctx *fasthttp.RequestCtx, status int, message string) {
	writeJSON(ctx, status, errorResponse{Error: message})
}

// allow reports whether the request method is one of methods, answering 405 otherwise.
func allow(ctx *fasthttp.RequestCtx, methods ...string) bool {
	m := string(ctx.Method())
	for _, want := range methods {
		if m == want {
			return true
		}
	}
	ctx.Response.Header.Set(fasthttp.HeaderAllow, strings.Join(methods, ", "))
	writeError(ctx, fasthttp.StatusMethodNotAllowed, "Method not allowed")
	return false
}

func decodeBody(ctx *fasthttp.RequestCtx, v any) error {
	return json.Unmarshal(ctx.PostBody(), v)
}
