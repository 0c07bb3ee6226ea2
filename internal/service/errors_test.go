package service

import (
	"errors"
	"fmt"
	"net/http"
	"testing"
)

func TestErrorClassification(t *testing.T) {
	tests := []struct {
		err    *Error
		kind   ErrorKind
		status int
	}{
		{NewValidationError("bad input"), KindValidation, http.StatusBadRequest},
		{NewNotFoundError("nothing"), KindNotFound, http.StatusNotFound},
		{NewAPIError("upstream", 0), KindAPI, http.StatusInternalServerError},
		{NewAPIError("forbidden", http.StatusForbidden), KindAPI, http.StatusForbidden},
		{NewNetworkError("net", errors.New("refused")), KindNetwork, http.StatusInternalServerError},
		{NewTimeoutError("slow", errors.New("deadline")), KindTimeout, http.StatusInternalServerError},
		{NewParseError("bad json", errors.New("syntax")), KindParse, http.StatusInternalServerError},
	}
	for _, tt := range tests {
		if tt.err.Kind != tt.kind {
			t.Errorf("kind = %s, want %s", tt.err.Kind, tt.kind)
		}
		if StatusOf(tt.err) != tt.status {
			t.Errorf("StatusOf(%s) = %d, want %d", tt.err.Kind, StatusOf(tt.err), tt.status)
		}
	}
}

func TestAsErrorUnwrapsThroughChain(t *testing.T) {
	inner := NewValidationError("You must supply a title!")
	wrapped := fmt.Errorf("搜索失败: %w", inner)

	e, ok := AsError(wrapped)
	if !ok {
		t.Fatal("AsError() 未能从包装链中提取 *Error")
	}
	if e.Message != "You must supply a title!" {
		t.Errorf("message = %q", e.Message)
	}
	if !IsKind(wrapped, KindValidation) {
		t.Error("IsKind() = false, want true")
	}
	if StatusOf(wrapped) != http.StatusBadRequest {
		t.Errorf("StatusOf() = %d", StatusOf(wrapped))
	}
}

func TestMessageOfHidesInternalDetail(t *testing.T) {
	if got := MessageOf(errors.New("pq: connection refused")); got != "Internal server error" {
		t.Errorf("MessageOf(plain error) = %q", got)
	}
	if got := MessageOf(NewNotFoundError("No movies found for title: x")); got != "No movies found for title: x" {
		t.Errorf("MessageOf(*Error) = %q", got)
	}
}
