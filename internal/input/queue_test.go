package input

import (
	"testing"

	"sokoban/internal/gamemap"
)

func TestQueueFIFO(t *testing.T) {
	var q Queue
	q.Push(KeyUp)
	q.Push(KeyLeft)
	q.Push(KeyRestart)

	want := []Key{KeyUp, KeyLeft, KeyRestart}
	for i, w := range want {
		k, ok := q.Pop()
		if !ok || k != w {
			t.Fatalf("pop %d = (%v,%v); want (%v,true)", i, k, ok, w)
		}
	}
	if k, ok := q.Pop(); ok || k != KeyNone {
		t.Fatalf("pop on empty = (%v,%v); want (None,false)", k, ok)
	}
}

func TestQueueLen(t *testing.T) {
	var q Queue
	q.Push(KeyDown)
	q.Push(KeyDown)
	if q.Len() != 2 {
		t.Fatalf("Len() = %d; want 2", q.Len())
	}
	q.Pop()
	if q.Len() != 1 {
		t.Fatalf("Len() after Pop = %d; want 1", q.Len())
	}
}

func TestKeyDirection(t *testing.T) {
	cases := []struct {
		key  Key
		want gamemap.Direction
	}{
		{KeyUp, gamemap.DirUp},
		{KeyDown, gamemap.DirDown},
		{KeyLeft, gamemap.DirLeft},
		{KeyRight, gamemap.DirRight},
		{KeyRestart, gamemap.DirNone},
		{KeyNone, gamemap.DirNone},
	}
	for _, tc := range cases {
		t.Run(tc.key.String(), func(t *testing.T) {
			if got := tc.key.Direction(); got != tc.want {
				t.Errorf("Direction() = %v; want %v", got, tc.want)
			}
		})
	}
}
