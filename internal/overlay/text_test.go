package overlay

import "testing"

func TestTextWidthScalesWithSize(t *testing.T) {
	w12 := textWidth("Hello", "Helvetica", 12)
	w24 := textWidth("Hello", "Helvetica", 24)
	if w24 != w12*2 {
		t.Errorf("textWidth should scale linearly with size: w12=%v w24=%v", w12, w24)
	}
}

func TestLayoutTextFitsOnOneLineAtFullSize(t *testing.T) {
	res := layoutText("Hi", "Helvetica", 12, 0, 0, 200, 20, "left", "")
	if res.Shrunk {
		t.Error("short text should not be shrunk")
	}
	if len(res.Lines) != 1 {
		t.Fatalf("expected 1 line, got %d", len(res.Lines))
	}
	if res.FontSize != 12 {
		t.Errorf("FontSize = %v, want 12", res.FontSize)
	}
}

func TestLayoutTextShrinksThenWraps(t *testing.T) {
	long := "This is a long piece of text that will not fit on one line at all"
	res := layoutText(long, "Helvetica", 12, 0, 0, 80, 200, "left", "top")
	if !res.Shrunk {
		t.Error("long text should trigger shrink")
	}
	if len(res.Lines) < 2 {
		t.Errorf("expected wrapping into multiple lines, got %d", len(res.Lines))
	}
	if res.FontSize != 12*0.9 {
		t.Errorf("FontSize = %v, want %v", res.FontSize, 12*0.9)
	}
}

func TestLayoutTextHorizontalAlignment(t *testing.T) {
	left := layoutText("Hi", "Helvetica", 12, 0, 0, 200, 20, "left", "")
	right := layoutText("Hi", "Helvetica", 12, 0, 0, 200, 20, "right", "")
	center := layoutText("Hi", "Helvetica", 12, 0, 0, 200, 20, "center", "")

	if left.Lines[0].X != textPadding {
		t.Errorf("left align X = %v, want %v", left.Lines[0].X, textPadding)
	}
	if right.Lines[0].X <= left.Lines[0].X {
		t.Errorf("right align X = %v should be greater than left align X = %v", right.Lines[0].X, left.Lines[0].X)
	}
	if center.Lines[0].X <= left.Lines[0].X || center.Lines[0].X >= right.Lines[0].X {
		t.Errorf("center align X = %v should be between left %v and right %v", center.Lines[0].X, left.Lines[0].X, right.Lines[0].X)
	}
}

func TestLayoutTextVerticalAlignment(t *testing.T) {
	top := layoutText("Hi", "Helvetica", 12, 0, 0, 200, 100, "left", "top")
	bottom := layoutText("Hi", "Helvetica", 12, 0, 0, 200, 100, "left", "bottom")
	if top.Lines[0].Y <= bottom.Lines[0].Y {
		t.Errorf("top baseline %v should be above bottom baseline %v", top.Lines[0].Y, bottom.Lines[0].Y)
	}
}

func TestLayoutTextBaselineUsesYDirectly(t *testing.T) {
	res := layoutText("Hi", "Helvetica", 12, 10, 55, 200, 100, "left", "baseline")
	if res.Lines[0].Y != 55 {
		t.Errorf("baseline Y = %v, want 55", res.Lines[0].Y)
	}
}

func TestWrapTextNeverSplitsAWordShorterThanMaxWidth(t *testing.T) {
	lines := wrapText("one two three four", "Helvetica", 12, 1000)
	if len(lines) != 1 {
		t.Errorf("wide box should fit everything on one line, got %d lines", len(lines))
	}
}

func TestWrapTextOverlongWordKeptOnOwnLine(t *testing.T) {
	lines := wrapText("supercalifragilisticexpialidocious", "Helvetica", 12, 10)
	if len(lines) != 1 || lines[0] != "supercalifragilisticexpialidocious" {
		t.Errorf("overlong single word should be emitted unbroken, got %#v", lines)
	}
}
