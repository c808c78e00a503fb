package tsp

import (
	"encoding/binary"
	"hash/fnv"
	"math"
	"sort"
	"strconv"
	"strings"

	"github.com/lvlath-labs/hsearch/core"
)

// Point is one city's coordinates.
type Point struct {
	X, Y float64
}

// visitLabel mirrors original_source's City.visited: 0 marks the current
// city, and the two non-zero values (+1/-1) mark a city as visited in the
// forward or backward sense depending on which frontier produced it.
type visitLabel int8

const (
	labelCurrent  visitLabel = 0
	labelForward  visitLabel = 1
	labelBackward visitLabel = -1
)

type cityLabel struct {
	point   Point
	visited visitLabel
}

// State is a partial TSP tour: every city is labeled current, or visited
// in the direction this state's search frontier runs. direction is +1 for
// a state grown forward from the start city, -1 for a state grown
// backward from the end city.
type State struct {
	cities    []cityLabel
	direction visitLabel

	hash     uint64
	succ     []core.Successor
	memoized bool
}

func newState(cities []cityLabel, direction visitLabel) *State {
	return &State{cities: cities, direction: direction, hash: hashCities(cities)}
}

func hashCities(cities []cityLabel) uint64 {
	h := fnv.New64a()
	var buf [8]byte
	mix := func(v uint64) {
		binary.LittleEndian.PutUint64(buf[:], v)
		h.Write(buf[:])
	}
	for _, c := range cities {
		mix(math.Float64bits(c.point.X))
		mix(math.Float64bits(c.point.Y))
		mix(uint64(int64(c.visited)))
	}
	return h.Sum64()
}

func (s *State) Equal(other core.State) bool {
	o, ok := other.(*State)
	if !ok || len(o.cities) != len(s.cities) {
		return false
	}
	for i, c := range s.cities {
		if o.cities[i] != c {
			return false
		}
	}
	return true
}

func (s *State) Hash() uint64 { return s.hash }

func (s *State) currentIndex() int {
	for i, c := range s.cities {
		if c.visited == labelCurrent {
			return i
		}
	}
	return -1
}

// NumSuccessors reports the number of unvisited cities reachable directly
// from the current one, equal to len(Successors(problem)).
func (s *State) NumSuccessors(_ *core.Problem) int {
	n := 0
	unvisited := -1 * s.direction
	for _, c := range s.cities {
		if c.visited == unvisited {
			n++
		}
	}
	return n
}

// Successors enumerates one successor per unvisited city: make it current,
// mark the previously current city visited in this state's direction.
// Grounded on original_source's State.successors.
func (s *State) Successors(_ *core.Problem) []core.Successor {
	if s.memoized {
		return s.succ
	}

	currentIdx := s.currentIndex()
	unvisited := -1 * s.direction
	out := make([]core.Successor, 0, s.NumSuccessors(nil))
	for idx, c := range s.cities {
		if c.visited != unvisited {
			continue
		}
		child := make([]cityLabel, len(s.cities))
		copy(child, s.cities)
		child[currentIdx].visited = s.direction
		child[idx].visited = labelCurrent
		cs := newState(child, s.direction)
		out = append(out, core.Successor{State: cs, Cost: dist(s.cities[currentIdx].point, c.point)})
	}

	sort.SliceStable(out, func(a, b int) bool { return out[a].Cost < out[b].Cost })
	s.succ = out
	s.memoized = true
	return out
}

func dist(a, b Point) int {
	return int(math.Ceil(math.Sqrt((a.X-b.X)*(a.X-b.X) + (a.Y-b.Y)*(a.Y-b.Y))))
}

func (s *State) String() string {
	parts := make([]string, len(s.cities))
	for i, c := range s.cities {
		parts[i] = strconv.FormatFloat(c.point.X, 'f', 3, 64) + " " +
			strconv.FormatFloat(c.point.Y, 'f', 3, 64) + "/" + strconv.Itoa(int(c.visited))
	}
	return strings.Join(parts, ",")
}
