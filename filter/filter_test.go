package filter

import (
	"context"
	"testing"

	"github.com/lumina-edu/edukit/core"
	"github.com/lumina-edu/edukit/pkg/utils"
)

func TestSeenFilter(t *testing.T) {
	tests := []struct {
		name string
		lctx *core.LearnerContext
		item string
		want bool
	}{
		{
			name: "seen in history snapshot",
			lctx: &core.LearnerContext{
				UserID: "u",
				History: []core.Interaction{
					{UserID: "u", ContentID: "m1"},
				},
			},
			item: "m1",
			want: true,
		},
		{
			name: "unseen passes",
			lctx: &core.LearnerContext{
				UserID: "u",
				History: []core.Interaction{
					{UserID: "u", ContentID: "m1"},
				},
			},
			item: "m2",
			want: false,
		},
		{
			name: "nil context passes",
			lctx: nil,
			item: "m1",
			want: false,
		},
	}

	f := &SeenFilter{}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := f.ShouldFilter(context.Background(), tt.lctx, core.NewItem(tt.item))
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestBlacklistFilter(t *testing.T) {
	f := NewBlacklistFilter([]string{"banned"}, nil, "")

	got, err := f.ShouldFilter(context.Background(), nil, core.NewItem("banned"))
	if err != nil || !got {
		t.Errorf("ShouldFilter(banned) = %v, %v, want true, nil", got, err)
	}
	got, err = f.ShouldFilter(context.Background(), nil, core.NewItem("ok"))
	if err != nil || got {
		t.Errorf("ShouldFilter(ok) = %v, %v, want false, nil", got, err)
	}
}

func TestRuleFilter(t *testing.T) {
	quiz := core.NewItem("m1")
	quiz.PutLabel("content_type", utils.Label{Value: "quiz", Source: "catalog"})
	video := core.NewItem("m2")
	video.PutLabel("content_type", utils.Label{Value: "video", Source: "catalog"})

	tests := []struct {
		name string
		expr string
		item *core.Item
		lctx *core.LearnerContext
		want bool
	}{
		{
			name: "label match filters",
			expr: `label.content_type == "quiz"`,
			item: quiz,
			lctx: &core.LearnerContext{UserID: "u"},
			want: true,
		},
		{
			name: "label mismatch passes",
			expr: `label.content_type == "quiz"`,
			item: video,
			lctx: &core.LearnerContext{UserID: "u"},
			want: false,
		},
		{
			name: "scene-scoped rule",
			expr: `label.content_type == "quiz" && lctx.scene == "preview"`,
			item: quiz,
			lctx: &core.LearnerContext{UserID: "u", Scene: "dashboard"},
			want: false,
		},
		{
			name: "empty expression never filters",
			expr: "",
			item: quiz,
			lctx: &core.LearnerContext{UserID: "u"},
			want: false,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			f := &RuleFilter{Expr: tt.expr}
			got, err := f.ShouldFilter(context.Background(), tt.lctx, tt.item)
			if err != nil {
				t.Fatalf("ShouldFilter() error = %v", err)
			}
			if got != tt.want {
				t.Errorf("ShouldFilter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterNode(t *testing.T) {
	node := &FilterNode{
		Filters: []Filter{
			NewBlacklistFilter([]string{"m2"}, nil, ""),
		},
	}

	items := []*core.Item{
		core.NewItem("m1"),
		core.NewItem("m2"),
		core.NewItem("m3"),
	}
	out, err := node.Process(context.Background(), &core.LearnerContext{UserID: "u"}, items)
	if err != nil {
		t.Fatalf("Process() error = %v", err)
	}
	if len(out) != 2 || out[0].ID != "m1" || out[1].ID != "m3" {
		t.Fatalf("Process() = %v, want [m1 m3]", out)
	}

	// 被过滤的候选打上 filtered label，来源是过滤器名
	filtered := items[1]
	if lbl, ok := filtered.Labels["filtered"]; !ok || lbl.Value != "true" || lbl.Source != "filter.blacklist" {
		t.Errorf("filtered label = %+v, want value true source filter.blacklist", filtered.Labels["filtered"])
	}
}
