package lexer

import "testing"

func TestScanCommandLiteralOnly(t *testing.T) {
	segs, err := ScanCommand("alacritty --hold", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Kind != CommandLiteral || segs[0].Text != "alacritty --hold" {
		t.Fatalf("got %+v", segs)
	}
}

func TestScanCommandAmpAmpAndShorthand(t *testing.T) {
	segs, err := ScanCommand("notify-send hi && {firefox,brave}", 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 4 {
		t.Fatalf("got %d segments, want 4: %+v", len(segs), segs)
	}
	if segs[0].Kind != CommandLiteral || segs[0].Text != "notify-send hi " {
		t.Errorf("segs[0] = %+v", segs[0])
	}
	if segs[1].Kind != CommandAmpAmp {
		t.Errorf("segs[1] = %+v", segs[1])
	}
	if segs[2].Kind != CommandLiteral || segs[2].Text != " " {
		t.Errorf("segs[2] = %+v", segs[2])
	}
	if segs[3].Kind != CommandShorthand || segs[3].Text != "firefox,brave" {
		t.Errorf("segs[3] = %+v", segs[3])
	}
}

func TestScanCommandEscapedBraceDoesNotClose(t *testing.T) {
	segs, err := ScanCommand(`{a\}b,c}`, 1, 1)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(segs) != 1 || segs[0].Kind != CommandShorthand || segs[0].Text != `a\}b,c` {
		t.Fatalf("got %+v", segs)
	}
}

func TestScanCommandUnterminatedGroup(t *testing.T) {
	_, err := ScanCommand("{firefox", 1, 1)
	if err == nil {
		t.Fatal("expected an unterminated-group error")
	}
	if _, ok := err.(*ErrUnterminatedGroup); !ok {
		t.Errorf("got %T, want *ErrUnterminatedGroup", err)
	}
}
