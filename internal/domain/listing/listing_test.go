package listing

import (
	"errors"
	"testing"

	"pet-care-registry/internal/domain/apperr"
)

func TestFilter_NilKeepReturnsAll(t *testing.T) {
	out, err := Filter([]int{3, 1, 2}, nil, "no numbers")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 3 || out[0] != 3 || out[2] != 2 {
		t.Fatalf("expected input order preserved, got %v", out)
	}
}

func TestFilter_EmptyIsNotFound(t *testing.T) {
	_, err := Filter([]int{}, nil, "no numbers found")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound, got %v", err)
	}
	if err.Error() != "no numbers found" {
		t.Fatalf("unexpected message %q", err.Error())
	}

	_, err = Filter([]int{1, 3}, func(n int) bool { return n%2 == 0 }, "no even numbers")
	if !errors.Is(err, apperr.ErrNotFound) {
		t.Fatalf("expected NotFound after filtering, got %v", err)
	}
}
