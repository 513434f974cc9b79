package httpadapter

import (
	"context"
	"testing"

	"github.com/cloudwego/hertz/pkg/app"
	"github.com/cloudwego/hertz/pkg/protocol/consts"
)

func TestApplyCORSHeaders_Wildcard(t *testing.T) {
	ctx := &app.RequestContext{}
	applyCORSHeaders(ctx, []string{"*"})

	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")), "*"; got != want {
		t.Fatalf("allow-origin mismatch: got=%q want=%q", got, want)
	}
	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Methods")), corsAllowMethods; got != want {
		t.Fatalf("allow-methods mismatch: got=%q want=%q", got, want)
	}
	if got, want := string(ctx.Response.Header.Peek("Access-Control-Allow-Headers")), corsAllowHeaders; got != want {
		t.Fatalf("allow-headers mismatch: got=%q want=%q", got, want)
	}
}

func TestApplyCORSHeaders_EchoesListedOrigin(t *testing.T) {
	allow := []string{"https://shop.example"}

	ctx := &app.RequestContext{}
	ctx.Request.Header.Set("Origin", "https://shop.example")
	applyCORSHeaders(ctx, allow)
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "https://shop.example" {
		t.Fatalf("expected listed origin echoed, got %q", got)
	}
	if got := string(ctx.Response.Header.Peek("Vary")); got != "Origin" {
		t.Fatalf("expected Vary: Origin, got %q", got)
	}

	ctx = &app.RequestContext{}
	ctx.Request.Header.Set("Origin", "https://evil.example")
	applyCORSHeaders(ctx, allow)
	if got := string(ctx.Response.Header.Peek("Access-Control-Allow-Origin")); got != "" {
		t.Fatalf("unlisted origin must not be allowed, got %q", got)
	}
}

func TestCORSMiddleware_ShortCircuitsPreflight(t *testing.T) {
	ctx := &app.RequestContext{}
	ctx.Request.Header.SetMethod(consts.MethodOptions)
	corsMiddleware([]string{"*"})(context.Background(), ctx)

	if got, want := ctx.Response.StatusCode(), consts.StatusNoContent; got != want {
		t.Fatalf("status mismatch: got=%d want=%d", got, want)
	}
	if !ctx.IsAborted() {
		t.Fatalf("expected preflight to abort the chain")
	}
}
