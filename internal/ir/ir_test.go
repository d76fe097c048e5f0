package ir

import "testing"

func TestRegByName(t *testing.T) {
	for _, name := range []string{"a", "F", "hl", "SP", "pc"} {
		if _, ok := RegByName(name); !ok {
			t.Fatalf("RegByName(%q) not found", name)
		}
	}
	if r, _ := RegByName("de"); r != DE || !r.Wide() {
		t.Fatalf("de got %s", r)
	}
	if r, _ := RegByName("l"); r != L || r.Wide() {
		t.Fatalf("l got %s", r)
	}
	if _, ok := RegByName("nz"); ok {
		t.Fatal("nz is not a register")
	}
}

func TestFragment_CostsAndFailure(t *testing.T) {
	f := &Fragment{Nodes: []Node{
		Branch{
			Cond: Cond{Flag: FlagZ},
			Then: []Node{Read{Dst: 0, Src: Loc{Kind: LocImmSigned}}, Return{Cycles: 12}},
			Else: []Node{AdvancePC{N: 1}, Return{Cycles: 8}},
		},
	}}
	got := f.Costs()
	if len(got) != 2 || got[0] != 12 || got[1] != 8 {
		t.Fatalf("Costs got %v want [12 8]", got)
	}
	if _, failed := f.Failure(); failed {
		t.Fatal("branch fragment reported as failure")
	}

	f = &Fragment{Nodes: []Node{Fail{Reason: "no routine"}}}
	if r, failed := f.Failure(); !failed || r != "no routine" {
		t.Fatalf("Failure got %q %v", r, failed)
	}
	if len(f.Costs()) != 0 {
		t.Fatal("failure fragment has no costs")
	}
}

func TestCond_String(t *testing.T) {
	if s := (Cond{Flag: FlagZ}).String(); s != "NZ" {
		t.Fatalf("got %s want NZ", s)
	}
	if s := (Cond{Flag: FlagC, Set: true}).String(); s != "C" {
		t.Fatalf("got %s want C", s)
	}
}
