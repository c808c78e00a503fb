package core_test

import (
	"fmt"

	"github.com/lvlath-labs/hsearch/core"
)

// fakeState is a minimal core.State double used across this package's
// tests: an integer identity with a fixed, pre-sorted successor list.
type fakeState struct {
	id   int
	succ []core.Successor
}

func newFakeState(id int, succ ...core.Successor) *fakeState {
	return &fakeState{id: id, succ: succ}
}

func (s *fakeState) Equal(other core.State) bool {
	o, ok := other.(*fakeState)
	return ok && o.id == s.id
}

func (s *fakeState) Hash() uint64 { return uint64(s.id) }

func (s *fakeState) Successors(_ *core.Problem) []core.Successor { return s.succ }

func (s *fakeState) NumSuccessors(_ *core.Problem) int { return len(s.succ) }

func (s *fakeState) String() string { return fmt.Sprintf("fake(%d)", s.id) }
