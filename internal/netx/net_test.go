package netx

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"testing"
)

func TestIsTransportError(t *testing.T) {
	t.Run("nil", func(t *testing.T) {
		if IsTransportError(nil) {
			t.Fatal("nil must not be a transport error")
		}
	})

	t.Run("closed server", func(t *testing.T) {
		ts := httptest.NewServer(http.NotFoundHandler())
		url := ts.URL
		ts.Close()

		_, err := http.Get(url)
		if err == nil {
			t.Fatal("expected error, got nil")
		}
		if !IsTransportError(err) {
			t.Fatalf("expected transport error, got %T: %v", err, err)
		}
	})

	t.Run("deadline exceeded", func(t *testing.T) {
		err := fmt.Errorf("call: %w", context.DeadlineExceeded)
		if !IsTransportError(err) {
			t.Fatal("deadline must be a transport error")
		}
	})

	t.Run("canceled by caller", func(t *testing.T) {
		err := fmt.Errorf("call: %w", context.Canceled)
		if IsTransportError(err) {
			t.Fatal("cancellation must not be a transport error")
		}
	})

	t.Run("plain error", func(t *testing.T) {
		if IsTransportError(errors.New("decode failed")) {
			t.Fatal("plain error must not be a transport error")
		}
	})
}
