package studypath

import "testing"

func TestPrerequisiteChain(t *testing.T) {
	tests := []struct {
		name      string
		contentID string
		prereqs   map[string][]string
		want      []string
	}{
		{
			name:      "linear chain in dependency order",
			contentID: "c",
			prereqs: map[string][]string{
				"c": {"b"},
				"b": {"a"},
			},
			want: []string{"a", "b", "c"},
		},
		{
			name:      "no prerequisites",
			contentID: "a",
			prereqs:   map[string][]string{},
			want:      []string{"a"},
		},
		{
			name:      "diamond dependency visited once",
			contentID: "d",
			prereqs: map[string][]string{
				"d": {"b", "c"},
				"b": {"a"},
				"c": {"a"},
			},
			want: []string{"a", "b", "c", "d"},
		},
		{
			name:      "cycle terminates",
			contentID: "a",
			prereqs: map[string][]string{
				"a": {"b"},
				"b": {"a"},
			},
			want: []string{"b", "a"},
		},
		{
			name:      "self cycle terminates",
			contentID: "a",
			prereqs: map[string][]string{
				"a": {"a"},
			},
			want: []string{"a"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := PrerequisiteChain(tt.contentID, tt.prereqs)
			if len(got) != len(tt.want) {
				t.Fatalf("PrerequisiteChain() = %v, want %v", got, tt.want)
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("got[%d] = %v, want %v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

func TestPrerequisiteChainTargetLast(t *testing.T) {
	prereqs := map[string][]string{
		"goal": {"x", "y", "z"},
	}
	got := PrerequisiteChain("goal", prereqs)
	if got[len(got)-1] != "goal" {
		t.Errorf("last element = %v, want goal", got[len(got)-1])
	}
}
