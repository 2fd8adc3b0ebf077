package report

import (
	"errors"
	"testing"
)

func TestExtractPayload(t *testing.T) {
	tests := []struct {
		name      string
		raw       string
		want      string
		wantError bool
	}{
		{
			name: "fenced block with surrounding prose",
			raw:  "Here is your summary:\n```json\n{\"a\": 1}\n```\nLet me know if you need more.",
			want: `{"a": 1}`,
		},
		{
			name: "fenced block with embedded newlines",
			raw:  "```json\n{\n  \"a\": 1,\n  \"b\": [2, 3]\n}\n```",
			want: "{\n  \"a\": 1,\n  \"b\": [2, 3]\n}",
		},
		{
			name: "first fence wins when two are present",
			raw:  "```json\n{\"first\": true}\n```\ntext\n```json\n{\"second\": true}\n```",
			want: `{"first": true}`,
		},
		{
			name: "bare JSON with whitespace",
			raw:  "  \n{\"a\": 1}\n  ",
			want: `{"a": 1}`,
		},
		{
			name:      "no payload at all",
			raw:       "no json here",
			wantError: true,
		},
		{
			name:      "object fragment without closing brace",
			raw:       "{\"a\": 1",
			wantError: true,
		},
		{
			name:      "empty input",
			raw:       "",
			wantError: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ExtractPayload(tt.raw)
			if tt.wantError {
				if err == nil {
					t.Fatalf("expected error, got %q", got)
				}
				var formatErr *FormatError
				if !errors.As(err, &formatErr) {
					t.Fatalf("expected *FormatError, got %T: %v", err, err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Errorf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestParsePayload(t *testing.T) {
	t.Run("valid fenced payload", func(t *testing.T) {
		doc, err := ParsePayload("```json\n{\"summary\": {}}\n```")
		if err != nil {
			t.Fatalf("unexpected error: %v", err)
		}
		if _, ok := doc["summary"]; !ok {
			t.Error("expected summary key in document")
		}
	})

	t.Run("fenced but malformed JSON is a ParseError", func(t *testing.T) {
		_, err := ParsePayload("```json\n{\"a\": }\n```")
		if err == nil {
			t.Fatal("expected error")
		}
		var parseErr *ParseError
		if !errors.As(err, &parseErr) {
			t.Fatalf("expected *ParseError, got %T: %v", err, err)
		}
	})

	t.Run("missing payload stays a FormatError", func(t *testing.T) {
		_, err := ParsePayload("the market was calm today")
		var formatErr *FormatError
		if !errors.As(err, &formatErr) {
			t.Fatalf("expected *FormatError, got %T: %v", err, err)
		}
	})
}
