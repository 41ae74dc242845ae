package follow

import (
	"errors"
	"testing"
)

func TestParsePair(t *testing.T) {
	tests := []struct {
		name    string
		args    []string
		a, b    int
		wantErr bool
	}{
		{"valid", []string{"1", "2"}, 1, 2, false},
		{"negative", []string{"-1", "7"}, -1, 7, false},
		{"first invalid", []string{"one", "2"}, 0, 0, true},
		{"second invalid", []string{"1", "2.5"}, 0, 0, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			a, b, err := parsePair(tt.args)
			if (err != nil) != tt.wantErr {
				t.Fatalf("parsePair(%v) error = %v, wantErr %v", tt.args, err, tt.wantErr)
			}
			if !tt.wantErr && (a != tt.a || b != tt.b) {
				t.Errorf("parsePair(%v) = (%d, %d), want (%d, %d)", tt.args, a, b, tt.a, tt.b)
			}
		})
	}
}

func TestIDListQuery(t *testing.T) {
	errStore := errors.New("store failed")

	tests := []struct {
		name     string
		arg      string
		queryErr error
		wantID   int
		wantErr  bool
		called   bool
	}{
		{"found", "42", nil, 42, false, true},
		{"invalid id", "abc", nil, 0, true, false},
		{"query error", "7", errStore, 7, true, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			called := false
			run := idListQuery(func(id int) ([]int, bool, error) {
				called = true
				if id != tt.wantID {
					t.Errorf("expected id %d, got %d", tt.wantID, id)
				}
				return []int{1, 2}, true, tt.queryErr
			})

			err := run(nil, []string{tt.arg})
			if (err != nil) != tt.wantErr {
				t.Fatalf("error = %v, wantErr %v", err, tt.wantErr)
			}
			if tt.queryErr != nil && !errors.Is(err, tt.queryErr) {
				t.Errorf("expected the query error, got %v", err)
			}
			if called != tt.called {
				t.Errorf("query called = %v, want %v", called, tt.called)
			}
		})
	}
}

func TestPairListQuery(t *testing.T) {
	var gotA, gotB int
	run := pairListQuery(func(a, b int) ([]int, bool, error) {
		gotA, gotB = a, b
		return nil, false, nil
	})

	if err := run(nil, []string{"3", "4"}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if gotA != 3 || gotB != 4 {
		t.Errorf("expected ids (3, 4), got (%d, %d)", gotA, gotB)
	}
	if err := run(nil, []string{"3", "x"}); err == nil {
		t.Error("expected an error for an invalid second id")
	}
}
