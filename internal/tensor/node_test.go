package tensor

import "testing"

func TestOp_String(t *testing.T) {
	cases := map[Op]string{
		OpAdd:    "add",
		OpSub:    "sub",
		OpMul:    "mul",
		OpDiv:    "div",
		OpMatMul: "matmul",
		OpRelu:   "relu",
		Op(999):  "unknown",
	}
	for op, want := range cases {
		if got := op.String(); got != want {
			t.Errorf("Op(%d).String() = %q, want %q", op, got, want)
		}
	}
}

func TestOpCount_MatchesEnumeration(t *testing.T) {
	if OpCount() != 6 {
		t.Errorf("OpCount() = %d, want 6", OpCount())
	}
}

func TestNode_Numel(t *testing.T) {
	out, _ := NewRaw(Shape{4, 5}, Float32, CPU)
	n := &Node{Output: out}
	if got := n.Numel(); got != 20 {
		t.Errorf("Numel() = %d, want 20", got)
	}
}

func TestNode_NumelNilSafety(t *testing.T) {
	var n *Node
	if got := n.Numel(); got != 0 {
		t.Errorf("Numel() on nil Node = %d, want 0", got)
	}
	n = &Node{}
	if got := n.Numel(); got != 0 {
		t.Errorf("Numel() on Node with nil Output = %d, want 0", got)
	}
}
