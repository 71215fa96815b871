// Package idlist handles cpuset list-format strings ("0-3,8,12-15") for
// numeric hardware IDs such as PU or NUMA node numbers.
//
// See the List Format section of
// https://www.man7.org/linux/man-pages/man7/cpuset.7.html for the syntax.
package idlist

import (
	"fmt"
	"regexp"
	"slices"
	"strconv"
	"strings"

	"github.com/hashicorp/go-set/v2"
)

// An ID is a non-negative identifier of something like a PU ID or a NUMA
// node ID.
type ID interface {
	~uint8 | ~uint16 | ~uint32 | ~uint64 | ~uint
}

// A Set contains some IDs.
type Set[T ID] struct {
	items *set.Set[T]
}

// Empty creates a fresh Set with no elements.
func Empty[T ID]() *Set[T] {
	return &Set[T]{items: set.New[T](0)}
}

// From returns a Set created from the given slice.
func From[T ID, U ID](ids []U) *Set[T] {
	result := Empty[T]()
	for _, id := range ids {
		result.items.Insert(T(id))
	}
	return result
}

var (
	numberRe = regexp.MustCompile(`^\d+$`)
	spanRe   = regexp.MustCompile(`^(\d+)-(\d+)$`)
)

// parseID converts a digit string, rejecting values that do not fit T.
func parseID[T ID](s string) (T, bool) {
	u, err := strconv.ParseUint(s, 10, 64)
	if err != nil {
		return 0, false
	}
	id := T(u)
	if uint64(id) != u {
		return 0, false
	}
	return id, true
}

// Parse reads a list-format string into a Set. Malformed or out-of-range
// pieces are ignored; use Valid to reject them up front.
func Parse[T ID](list string) *Set[T] {
	result := Empty[T]()
	for _, piece := range strings.Split(list, ",") {
		piece = strings.TrimSpace(piece)
		switch {
		case numberRe.MatchString(piece):
			if id, ok := parseID[T](piece); ok {
				result.items.Insert(id)
			}
		case spanRe.MatchString(piece):
			values := spanRe.FindStringSubmatch(piece)
			low, lowOK := parseID[T](values[1])
			high, highOK := parseID[T](values[2])
			if !lowOK || !highOK {
				continue
			}
			if low > high {
				low, high = high, low
			}
			for i := low; ; i++ {
				result.items.Insert(i)
				if i == high {
					break
				}
			}
		}
	}
	return result
}

// Valid reports whether the string is well-formed list format with all
// numbers in uint64 range.
func Valid(list string) bool {
	if strings.TrimSpace(list) == "" {
		return false
	}
	for _, piece := range strings.Split(list, ",") {
		piece = strings.TrimSpace(piece)
		switch {
		case numberRe.MatchString(piece):
			if _, ok := parseID[uint64](piece); !ok {
				return false
			}
		case spanRe.MatchString(piece):
			values := spanRe.FindStringSubmatch(piece)
			if _, ok := parseID[uint64](values[1]); !ok {
				return false
			}
			if _, ok := parseID[uint64](values[2]); !ok {
				return false
			}
		default:
			return false
		}
	}
	return true
}

// Insert adds an ID to the Set.
func (s *Set[T]) Insert(id T) {
	s.items.Insert(id)
}

// Contains reports whether the Set holds the ID.
func (s *Set[T]) Contains(id T) bool {
	return s.items.Contains(id)
}

// Size returns the number of IDs in the Set.
func (s *Set[T]) Size() int {
	return s.items.Size()
}

// Empty reports whether the Set holds no IDs.
func (s *Set[T]) Empty() bool {
	return s == nil || s.items == nil || s.items.Empty()
}

// Slice returns the IDs in increasing order.
func (s *Set[T]) Slice() []T {
	ids := s.items.Slice()
	slices.Sort(ids)
	return ids
}

// String renders the Set in canonical list format, collapsing runs into
// spans.
func (s *Set[T]) String() string {
	if s.Empty() {
		return ""
	}

	var parts []string
	ids := s.Slice()

	low, high := ids[0], ids[0]
	flush := func() {
		if low == high {
			parts = append(parts, fmt.Sprintf("%d", low))
		} else {
			parts = append(parts, fmt.Sprintf("%d-%d", low, high))
		}
	}
	for _, id := range ids[1:] {
		if id == high+1 {
			high = id
			continue
		}
		flush()
		low, high = id, id
	}
	flush()

	return strings.Join(parts, ",")
}
