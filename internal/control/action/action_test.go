package action_test

import (
	"testing"

	"github.com/ja-he/blocknote/internal/control/action"
)

func TestSimple(t *testing.T) {

	t.Run("Do", func(t *testing.T) {
		calls := 0
		s := action.NewSimple(func() string { return "counts" }, func() { calls++ })
		s.Do()
		s.Do()
		if calls != 2 {
			t.Error("expected two calls, got", calls)
		}
	})

	t.Run("Explain is evaluated on every call", func(t *testing.T) {
		e := "does nothing"
		s := action.NewSimple(func() string { return e }, func() {})
		if s.Explain() != "does nothing" {
			t.Error("initial explanation wrong:", s.Explain())
		}
		e = "does nothing, very well"
		if s.Explain() != "does nothing, very well" {
			t.Error("changed explanation wrong:", s.Explain())
		}
	})

}

func TestOnBlock(t *testing.T) {
	target := "a"
	var got []string
	a := action.NewOnBlock("records block", func() string { return target }, func(id string) { got = append(got, id) })

	a.Do()
	target = "b"
	a.Do()
	target = ""
	a.Do()

	if len(got) != 2 || got[0] != "a" || got[1] != "b" {
		t.Error("unexpected targets:", got)
	}
	if a.Explain() != "records block" {
		t.Error("unexpected explanation:", a.Explain())
	}
}
