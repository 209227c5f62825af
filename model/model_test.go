package model

import "testing"

func TestBlockKinds(t *testing.T) {
	cases := []struct {
		block Block
		want  BlockKind
		name  string
	}{
		{&Section{}, BlockKindSection, "Section"},
		{&Paragraph{}, BlockKindParagraph, "Paragraph"},
		{&List{}, BlockKindList, "List"},
	}

	for _, tc := range cases {
		if tc.block.Kind() != tc.want {
			t.Errorf("Expected kind %v, got %v", tc.want, tc.block.Kind())
		}
		if tc.block.Kind().String() != tc.name {
			t.Errorf("Expected name %q, got %q", tc.name, tc.block.Kind().String())
		}
	}
}

func TestSpanKinds(t *testing.T) {
	var spans Spans = Spans{
		Text("hello"),
		&Emphasis{Strong: true, Content: Plain("world")},
		EntityNDash,
	}

	want := []SpanKind{SpanKindText, SpanKindEmphasis, SpanKindEntity}
	for i, s := range spans {
		if s.SpanKind() != want[i] {
			t.Errorf("Expected span kind %v at index %d, got %v", want[i], i, s.SpanKind())
		}
	}
}

func TestSectionsNestAsBlocks(t *testing.T) {
	inner := &Section{Title: Plain("Inner")}
	outer := &Section{
		Title: Plain("Outer"),
		Blocks: []Block{
			&Paragraph{Content: Plain("intro")},
			inner,
		},
	}

	if len(outer.Blocks) != 2 {
		t.Fatalf("Expected 2 blocks, got %d", len(outer.Blocks))
	}

	sub, ok := outer.Blocks[1].(*Section)
	if !ok {
		t.Fatal("Expected second block to be a section")
	}
	if sub != inner {
		t.Error("Expected the nested section to be reachable through Blocks")
	}
}
