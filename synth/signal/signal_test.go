package signal

import (
	"testing"

	"github.com/cwbudde/algo-synth/synth/sample"
)

type counter struct {
	n    int
	stop int
}

func (c *counter) Frame() sample.Mono { return sample.Mono(c.n) }
func (c *counter) Advance()           { c.n++ }
func (c *counter) Retrigger()         { c.n = 0 }
func (c *counter) Done() bool         { return c.n >= c.stop }

type endless struct{}

func (endless) Frame() sample.Mono { return 0 }
func (endless) Advance()           {}
func (endless) Retrigger()         {}

func TestIsDone(t *testing.T) {
	c := &counter{stop: 2}
	if IsDone(c) {
		t.Fatal("fresh counter reported done")
	}
	c.Advance()
	c.Advance()
	if !IsDone(c) {
		t.Fatal("exhausted counter not done")
	}
	if IsDone(endless{}) {
		t.Fatal("node without completion capability reported done")
	}
}

func TestNext(t *testing.T) {
	c := &counter{stop: 10}
	for i := 0; i < 3; i++ {
		if got := Next[sample.Mono](c); got != sample.Mono(i) {
			t.Fatalf("frame %d: got %v", i, got)
		}
	}
	if c.Frame() != 3 {
		t.Fatalf("after three pulls: got %v, want 3", c.Frame())
	}
}
