package tokens_test

import (
	"encoding/json"
	"reflect"
	"strings"
	"testing"

	"github.com/localnerve/brandkit-tokens/internal/tokens"
)

func TestDiffIdentity(t *testing.T) {
	a := baseRawTokens()
	changes := tokens.Diff(&a, a)
	if len(changes) != 0 {
		t.Errorf("Expected no changes for identical trees, got %d", len(changes))
	}
}

func TestDiffBootstrap(t *testing.T) {
	a := baseRawTokens()
	changes := tokens.Diff(nil, a)

	if len(changes) != rawLeafCount {
		t.Errorf("Expected %d created records, got %d", rawLeafCount, len(changes))
	}
	for _, ch := range changes {
		if ch.Kind != tokens.ChangeCreated {
			t.Errorf("Expected only created records on bootstrap, got %s for %s", ch.Kind, ch.Path)
		}
		if ch.OldValue != nil {
			t.Errorf("Expected nil old value on created record %s", ch.Path)
		}
	}
}

func TestDiffSingleFieldUpdate(t *testing.T) {
	a := baseRawTokens()
	b := baseRawTokens()
	b.Colors.BrandPrimaryBase = "#FF0000"

	changes := tokens.Diff(&a, b)

	if len(changes) != 1 {
		t.Fatalf("Expected exactly one change, got %d: %+v", len(changes), changes)
	}
	ch := changes[0]
	if ch.Path != "colors.brandPrimaryBase" {
		t.Errorf("Expected path colors.brandPrimaryBase, got %s", ch.Path)
	}
	if ch.Category != tokens.CategoryColor {
		t.Errorf("Expected color category, got %s", ch.Category)
	}
	if ch.Kind != tokens.ChangeUpdated {
		t.Errorf("Expected updated, got %s", ch.Kind)
	}
	if ch.OldValue != "#0052CC" || ch.NewValue != "#FF0000" {
		t.Errorf("Expected #0052CC -> #FF0000, got %v -> %v", ch.OldValue, ch.NewValue)
	}
}

// TestDiffComponentsAppearDisappear verifies the optional components block is
// treated as an empty object when absent, so its fields are created and
// deleted rather than skipped.
func TestDiffComponentsAppearDisappear(t *testing.T) {
	plain := baseRawTokens()
	withComps := baseRawTokens()
	withComps.Components = &tokens.RawComponents{
		Button: map[string]string{"background": "brandPrimaryBase"},
		Input:  map[string]string{"border": "#CCCCCC"},
	}

	created := tokens.Diff(&plain, withComps)
	if len(created) != 2 {
		t.Fatalf("Expected 2 created component records, got %d", len(created))
	}
	for _, ch := range created {
		if ch.Kind != tokens.ChangeCreated || ch.Category != tokens.CategoryComponent {
			t.Errorf("Expected created component record, got %+v", ch)
		}
		if !strings.HasPrefix(ch.Path, "components.") {
			t.Errorf("Expected components path, got %s", ch.Path)
		}
	}

	deleted := tokens.Diff(&withComps, plain)
	if len(deleted) != 2 {
		t.Fatalf("Expected 2 deleted component records, got %d", len(deleted))
	}
	for _, ch := range deleted {
		if ch.Kind != tokens.ChangeDeleted {
			t.Errorf("Expected deleted record, got %+v", ch)
		}
		if ch.NewValue != nil {
			t.Errorf("Expected nil new value on deleted record %s", ch.Path)
		}
	}
}

// TestDiffStableOrder verifies category grouping in the fixed order with
// declaration order inside each category.
func TestDiffStableOrder(t *testing.T) {
	a := baseRawTokens()
	a.Components = &tokens.RawComponents{Card: map[string]string{"border": "#111111"}}
	changes := tokens.Diff(nil, a)

	rank := map[tokens.Category]int{
		tokens.CategoryTypography:   0,
		tokens.CategoryColor:        1,
		tokens.CategorySpacing:      2,
		tokens.CategoryBorderRadius: 3,
		tokens.CategoryComponent:    4,
	}
	for i := 1; i < len(changes); i++ {
		if rank[changes[i-1].Category] > rank[changes[i].Category] {
			t.Fatalf("Categories out of order at %d: %s after %s",
				i, changes[i].Category, changes[i-1].Category)
		}
	}
	if changes[0].Path != "typography.fontSizeBase" {
		t.Errorf("Expected first record typography.fontSizeBase, got %s", changes[0].Path)
	}
	last := changes[len(changes)-1]
	if last.Path != "components.card.border" {
		t.Errorf("Expected last record components.card.border, got %s", last.Path)
	}
}

// TestDiffRoundTrip verifies that applying a diff to the old tree
// reconstructs the new tree: created/updated set the field, deleted removes
// it.
func TestDiffRoundTrip(t *testing.T) {
	a := baseRawTokens()
	a.Components = &tokens.RawComponents{
		Button: map[string]string{"background": "#101010", "text": "#FAFAFA"},
	}

	b := baseRawTokens()
	b.Typography.FontSizeBase = 1.125
	b.Colors.BrandPrimaryBase = "#FF0000"
	b.Components = &tokens.RawComponents{
		Button: map[string]string{"background": "#202020"},
		Card:   map[string]string{"border": "errorBase"},
	}

	applied := flattenTree(t, a)
	for _, ch := range tokens.Diff(&a, b) {
		switch ch.Kind {
		case tokens.ChangeCreated, tokens.ChangeUpdated:
			applied[ch.Path] = normalize(t, ch.NewValue)
		case tokens.ChangeDeleted:
			delete(applied, ch.Path)
		}
	}

	want := flattenTree(t, b)
	if !reflect.DeepEqual(applied, want) {
		t.Errorf("Round trip mismatch.\napplied: %v\nwant:    %v", applied, want)
	}
}

func TestSummary(t *testing.T) {
	cases := []struct {
		changes []tokens.Change
		want    string
	}{
		{nil, "No changes"},
		{[]tokens.Change{
			{Kind: tokens.ChangeCreated}, {Kind: tokens.ChangeCreated},
		}, "2 created"},
		{[]tokens.Change{
			{Kind: tokens.ChangeCreated},
			{Kind: tokens.ChangeUpdated}, {Kind: tokens.ChangeUpdated},
			{Kind: tokens.ChangeDeleted},
		}, "1 created, 2 updated, 1 deleted"},
		{[]tokens.Change{{Kind: tokens.ChangeDeleted}}, "1 deleted"},
	}

	for _, tc := range cases {
		if got := tokens.Summary(tc.changes); got != tc.want {
			t.Errorf("Summary mismatch: got %q, want %q", got, tc.want)
		}
	}
}

// flattenTree reduces a raw tree to dotted path -> JSON-normalized value.
func flattenTree(t *testing.T, raw tokens.RawTokens) map[string]any {
	t.Helper()

	data, err := json.Marshal(raw)
	if err != nil {
		t.Fatalf("Failed to marshal raw tokens: %v", err)
	}
	var tree map[string]any
	if err := json.Unmarshal(data, &tree); err != nil {
		t.Fatalf("Failed to unmarshal raw tokens: %v", err)
	}

	out := make(map[string]any)
	var walk func(prefix string, node any)
	walk = func(prefix string, node any) {
		m, ok := node.(map[string]any)
		if !ok {
			out[prefix] = node
			return
		}
		for k, v := range m {
			walk(prefix+"."+k, v)
		}
	}
	for k, v := range tree {
		walk(k, v)
	}
	return out
}

// normalize round-trips a value through JSON so numbers compare as float64.
func normalize(t *testing.T, v any) any {
	t.Helper()
	data, err := json.Marshal(v)
	if err != nil {
		t.Fatalf("Failed to marshal value: %v", err)
	}
	var out any
	if err := json.Unmarshal(data, &out); err != nil {
		t.Fatalf("Failed to unmarshal value: %v", err)
	}
	return out
}
