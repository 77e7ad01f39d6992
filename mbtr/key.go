/*
 * key.go, part of gochem.
 *
 * Copyright 2024 Raul Mera A. (raulpuntomeraatusachpuntocl)
 *
    This program is free software: you can redistribute it and/or modify
    it under the terms of the GNU Lesser General Public License as published by
    the Free Software Foundation, either version 2.1 of the License, or
    (at your option) any later version.

    This program is distributed in the hope that it will be useful,
    but WITHOUT ANY WARRANTY; without even the implied warranty of
    MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
    GNU General Public License for more details.

    You should have received a copy of the GNU Lesser General Public License
    along with this program.  If not, see <http://www.gnu.org/licenses/>.
 *
 *
*/

package mbtr

import (
	"fmt"
	"strconv"
	"strings"
)

// Key identifies one channel of the descriptor: one element index for k=1,
// a pair of element indexes for k=2 and a center plus a pair of neighbors for
// k=3. Keys built with NewKey are canonical: the pair is stored with the smaller
// index first. The center of a k=3 key is not interchangeable with its neighbors.
type Key struct {
	Len int
	I   [3]int
}

// NewKey returns the canonical key for the given element indexes.
// It panics if given more than 3 indexes.
func NewKey(idx ...int) Key {
	var k Key
	switch len(idx) {
	case 0:
	case 1:
		k.I[0] = idx[0]
	case 2:
		k.I[0], k.I[1] = sorted2(idx[0], idx[1])
	case 3:
		k.I[0] = idx[0]
		k.I[1], k.I[2] = sorted2(idx[1], idx[2])
	default:
		panic(fmt.Sprintf("goChem/mbtr: Keys have at most 3 indexes, got %d", len(idx)))
	}
	k.Len = len(idx)
	return k
}

func sorted2(a, b int) (int, int) {
	if a > b {
		return b, a
	}
	return a, b
}

// Indexes returns the element indexes of the key.
func (k Key) Indexes() []int {
	return append([]int(nil), k.I[:k.Len]...)
}

// Less orders keys lexicographically, shorter keys first.
func (k Key) Less(o Key) bool {
	if k.Len != o.Len {
		return k.Len < o.Len
	}
	for i := 0; i < k.Len; i++ {
		if k.I[i] != o.I[i] {
			return k.I[i] < o.I[i]
		}
	}
	return false
}

// String returns the indexes separated by commas, between parentheses.
func (k Key) String() string {
	s := make([]string, k.Len)
	for i := range s {
		s[i] = strconv.Itoa(k.I[i])
	}
	return "(" + strings.Join(s, ",") + ")"
}

func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

func (k *Key) UnmarshalText(b []byte) error {
	s := strings.TrimSpace(string(b))
	if len(s) < 2 || s[0] != '(' || s[len(s)-1] != ')' {
		return fmt.Errorf("goChem/mbtr: Ill formed key %q", s)
	}
	s = s[1 : len(s)-1]
	var fields []string
	if s != "" {
		fields = strings.Split(s, ",")
	}
	if len(fields) > 3 {
		return fmt.Errorf("goChem/mbtr: Ill formed key %q", s)
	}
	idx := make([]int, len(fields))
	var err error
	for i, f := range fields {
		idx[i], err = strconv.Atoi(strings.TrimSpace(f))
		if err != nil {
			return fmt.Errorf("goChem/mbtr: Ill formed key %q: %v", s, err)
		}
	}
	*k = NewKey(idx...)
	return nil
}
