package ui

import (
	"strings"
	"testing"

	"github.com/atomicstack/popup-select/internal/combobox"
	"github.com/atomicstack/popup-select/internal/option"
	"github.com/atomicstack/popup-select/internal/source"
	"github.com/atomicstack/popup-select/internal/testutil"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/x/ansi"
)

func TestOpenMenuGolden(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Width = 24
		o.Height = 10
		o.Initial = combobox.Single("UK")
	})
	h.Press(tea.KeyDown)
	testutil.AssertGolden(t, "ui_open_menu.golden", h.View())
}

func TestControlShowsAffordances(t *testing.T) {
	h := newTestHarness(t, nil)
	view := h.View()
	if strings.Contains(view, clearGlyph) {
		t.Fatalf("expected no clear affordance without a value:\n%s", view)
	}
	if !strings.Contains(view, openGlyph) {
		t.Fatalf("expected toggle affordance:\n%s", view)
	}

	h.Press(tea.KeyDown)
	h.Press(tea.KeyEnter)
	view = h.View()
	if !strings.Contains(view, clearGlyph) {
		t.Fatalf("expected clear affordance with a value:\n%s", view)
	}

	h.Model().setLoading(true)
	view = h.View()
	if strings.Contains(view, clearGlyph) || strings.Contains(view, openGlyph) {
		t.Fatalf("expected affordances hidden while loading:\n%s", view)
	}
	if !strings.Contains(view, loadingGlyph) {
		t.Fatalf("expected loading indicator:\n%s", view)
	}
}

func TestDescriptionsAlignInColumns(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Options = []option.Option[string]{
			{Label: "a", Value: "a", Extra: map[string]any{source.KeyDescription: "first"}},
			{Label: "bbb", Value: "b", Extra: map[string]any{source.KeyDescription: "second"}},
		}
	})
	h.Press(tea.KeyDown)
	view := h.View()
	if !strings.Contains(view, "a    first") || !strings.Contains(view, "bbb  second") {
		t.Fatalf("expected aligned description column:\n%s", view)
	}
}

func TestMultiRendersTagsAndCheckboxes(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Combobox.IsMulti = true
		o.Initial = combobox.List("DE")
	})
	h.Press(tea.KeyDown)
	lines := strings.Split(h.View(), "\n")
	if !strings.Contains(lines[0], " Germany "+removeGlyph) {
		t.Fatalf("expected tag row first, got %q", lines[0])
	}
	view := strings.Join(lines, "\n")
	if !strings.Contains(view, "[✓] Germany") || !strings.Contains(view, "[ ] France") {
		t.Fatalf("expected checkbox marks:\n%s", view)
	}
}

func TestDisabledOptionIsSkipped(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Options = []option.Option[string]{
			{Label: "one", Value: "1"},
			{Label: "two", Value: "2", Disabled: true},
			{Label: "three", Value: "3"},
		}
	})
	h.Press(tea.KeyDown)
	h.Press(tea.KeyDown)
	if got := h.Model().Machine().FocusedIndex(); got != 2 {
		t.Fatalf("expected disabled row skipped, focus %d", got)
	}
	h.View()
	h.Click(3, h.Model().layout.menuTop+1)
	if !h.Model().value.IsEmpty() {
		t.Fatalf("expected click on disabled row ignored")
	}
}

func TestHeightLimitTruncates(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Height = 2
		o.ShowFooter = true
	})
	h.Press(tea.KeyDown)
	lines := strings.Split(h.View(), "\n")
	if len(lines) != 2 {
		t.Fatalf("expected 2 lines, got %d:\n%s", len(lines), strings.Join(lines, "\n"))
	}
	if lines[1] != "…" {
		t.Fatalf("expected ellipsis row, got %q", lines[1])
	}
}

func TestTruncateText(t *testing.T) {
	if got := truncateText("abcdef", 4); got != "abc…" {
		t.Fatalf("unexpected truncation %q", got)
	}
	if got := truncateText("abc", 4); got != "abc" {
		t.Fatalf("unexpected truncation %q", got)
	}
}

func TestSlotsReplaceRowAndTagRendering(t *testing.T) {
	h := newTestHarness(t, func(o *Options) {
		o.Combobox.IsMulti = true
		o.Initial = combobox.List("FR")
		o.Slots = Slots{
			Option: func(r Row) string {
				if r.Selected {
					return "* " + r.Option.Value
				}
				return "- " + r.Option.Value
			},
			Tag: func(o option.Option[string]) string { return "#" + o.Value },
		}
	})
	h.Press(tea.KeyDown)
	view := h.View()
	for _, want := range []string{" #FR " + removeGlyph, "▌ * FR", "▌ - DE"} {
		if !strings.Contains(view, want) {
			t.Fatalf("expected %q in view:\n%s", want, view)
		}
	}
}

func TestLabelProjectionAppliesToControlAndTags(t *testing.T) {
	upper := func(o option.Option[string]) string { return strings.ToUpper(o.Label) }
	h := newTestHarness(t, func(o *Options) {
		o.Combobox.Projection.Label = upper
		o.Initial = combobox.Single("DE")
	})
	if view := h.View(); !strings.Contains(view, "GERMANY") || strings.Contains(view, "Germany") {
		t.Fatalf("expected projected label in control, got:\n%s", view)
	}

	h = newTestHarness(t, func(o *Options) {
		o.Combobox.Projection.Label = upper
		o.Combobox.IsMulti = true
		o.Initial = combobox.List("FR")
	})
	if lines := strings.Split(h.View(), "\n"); !strings.Contains(lines[0], " FRANCE "+removeGlyph) {
		t.Fatalf("expected projected tag label, got:\n%s", h.View())
	}
}

func TestApplyWidthKeepsEscapesInStyledLines(t *testing.T) {
	line := styledLine{text: "\x1b[1mabcdef\x1b[0m", raw: true}
	got := applyWidth([]styledLine{line}, 4)[0].text
	if plain := ansi.Strip(got); plain != "abc…" {
		t.Fatalf("expected visible text truncated to abc…, got %q", plain)
	}
	if !strings.HasPrefix(got, "\x1b[1m") {
		t.Fatalf("expected leading escape kept, got %q", got)
	}

	short := styledLine{text: "\x1b[1mab\x1b[0m", raw: true}
	if got := applyWidth([]styledLine{short}, 4)[0].text; got != short.text {
		t.Fatalf("expected short line untouched, got %q", got)
	}
}
