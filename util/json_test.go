// util/json_test.go
// Copyright(c) 2022-2025 flyable contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

import (
	"strings"
	"testing"
)

func TestFindDuplicateJSONKeys(t *testing.T) {
	tests := []struct {
		name     string
		json     string
		expected []DuplicateJSONKey
	}{
		{
			name:     "no duplicates",
			json:     `{"seed": 1, "flyers": [], "legs": []}`,
			expected: nil,
		},
		{
			name: "simple duplicate at root",
			json: `{"seed": 1, "legs": [], "seed": 3}`,
			expected: []DuplicateJSONKey{
				{Path: "", Key: "seed"},
			},
		},
		{
			name: "duplicate in nested object",
			json: `{"options": {"dump": true, "dump": false}}`,
			expected: []DuplicateJSONKey{
				{Path: "options", Key: "dump"},
			},
		},
		{
			name: "multiple duplicates at different levels",
			json: `{"a": 1, "a": 2, "nested": {"b": 1, "b": 2}}`,
			expected: []DuplicateJSONKey{
				{Path: "", Key: "a"},
				{Path: "nested", Key: "b"},
			},
		},
		{
			name:     "array with objects no duplicates",
			json:     `{"flyers": [{"name": "a"}, {"name": "b"}]}`,
			expected: nil,
		},
		{
			name: "duplicate inside array element",
			json: `{"flyers": [{"kind": "bird", "kind": "drone"}]}`,
			expected: []DuplicateJSONKey{
				{Path: "flyers", Key: "kind"},
			},
		},
		{
			name: "deeply nested",
			json: `{"a": {"b": [[{"c": {"d": 1, "d": 2}}]]}}`,
			expected: []DuplicateJSONKey{
				{Path: "a.b.c", Key: "d"},
			},
		},
		{
			name:     "invalid JSON",
			json:     `{"a": 1,`,
			expected: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			result := FindDuplicateJSONKeys([]byte(tt.json))

			if len(result) != len(tt.expected) {
				t.Errorf("expected %d duplicates, got %d", len(tt.expected), len(result))
				return
			}

			for i, exp := range tt.expected {
				if result[i].Path != exp.Path || result[i].Key != exp.Key {
					t.Errorf("duplicate %d: expected {Path: %q, Key: %q}, got {Path: %q, Key: %q}",
						i, exp.Path, exp.Key, result[i].Path, result[i].Key)
				}
			}
		})
	}
}

func TestUnmarshalJSONBytes(t *testing.T) {
	type flyer struct {
		Name  string `json:"name"`
		Speed int    `json:"speed"`
	}

	var f flyer
	if err := UnmarshalJSONBytes([]byte(`{"name": "quad", "speed": 60}`), &f); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if f.Name != "quad" || f.Speed != 60 {
		t.Errorf("got %+v", f)
	}

	err := UnmarshalJSONBytes([]byte("{\n  \"name\": \"quad\",\n  \"speed\": \"fast\"\n}"), &f)
	if err == nil {
		t.Fatalf("expected an error for a string speed")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should point at line 3", err)
	}

	err = UnmarshalJSONBytes([]byte("{\n\n  \"name\": ]"), &f)
	if err == nil {
		t.Fatalf("expected a syntax error")
	}
	if !strings.Contains(err.Error(), "line 3") {
		t.Errorf("error %q should point at line 3", err)
	}
}
