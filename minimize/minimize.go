// Package minimize reduces a Boolean function given by its true rows to a
// sum of products with the Quine-McCluskey method.
package minimize

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// ErrMintermRange is returned for a row index outside [0, 2^n).
var ErrMintermRange = errors.New("minterm out of range")

// Result is the outcome of a minimization.
type Result struct {
	Vars       []string
	Minterms   []uint      // patterns of the true rows, ascending
	Primes     []Implicant // in the order they were found prime
	Essentials []Implicant
	Selected   []Implicant // essentials first, then the greedy picks
}

// Minimize returns the canonical sum of products for the function over
// vars that holds exactly on trueRows, which are truth-table row indices.
// The empty function is "0" and the full function "1".
func Minimize(vars []string, trueRows []int) (string, error) {
	r, err := Solve(vars, trueRows)
	if err != nil {
		return "", err
	}
	return r.String(), nil
}

// Solve runs the full minimization and keeps the intermediate results.
func Solve(vars []string, trueRows []int) (*Result, error) {
	n := len(vars)
	size := 1 << n
	full := uint(size - 1)

	seen := make(map[uint]bool, len(trueRows))
	var minterms []uint
	for _, row := range trueRows {
		if row < 0 || row >= size {
			return nil, fmt.Errorf("%w: row %d with %d variables", ErrMintermRange, row, n)
		}
		// Row 0 is the all-true assignment, so flip every bit to make a
		// set bit mean a true variable.
		m := full ^ uint(row)
		if !seen[m] {
			seen[m] = true
			minterms = append(minterms, m)
		}
	}
	slices.Sort(minterms)

	r := &Result{Vars: vars, Minterms: minterms}
	if len(minterms) == 0 || len(minterms) == size {
		return r, nil
	}
	r.Primes = PrimeImplicants(n, minterms)
	r.Essentials, r.Selected = Cover(r.Primes, minterms)
	return r, nil
}

// String renders the selected implicants with the canonical AND, OR and
// "NOT " tokens. Terms are ordered by the first variable they mention,
// positive literals before negated ones.
func (r *Result) String() string {
	switch {
	case len(r.Minterms) == 0:
		return "0"
	case len(r.Minterms) == 1<<len(r.Vars):
		return "1"
	}
	ordered := slices.Clone(r.Selected)
	slices.SortStableFunc(ordered, func(x, y Implicant) int {
		return strings.Compare(termKey(x), termKey(y))
	})
	terms := make([]string, len(ordered))
	for i, im := range ordered {
		t, count := im.Literals(r.Vars)
		if count > 1 && len(r.Selected) > 1 {
			t = "(" + t + ")"
		}
		terms[i] = t
	}
	return strings.Join(terms, " OR ")
}

// termKey maps the "1-0" notation onto a string that sorts true before
// false before don't-care at each position.
func termKey(im Implicant) string {
	return strings.NewReplacer("1", "a", "0", "b", "-", "c").Replace(im.String())
}

// PrimeImplicants merges minterm patterns over n variables until no pair
// combines. Terms are grouped by their number of one bits and only
// neighbouring groups are compared. Terms never consumed by a merge are
// prime and are returned in the order they were found.
func PrimeImplicants(n int, minterms []uint) []Implicant {
	current := make([]Implicant, 0, len(minterms))
	for _, m := range minterms {
		current = append(current, newMinterm(n, m))
	}

	var primes []Implicant
	for len(current) > 0 {
		groups := make([][]int, n+1)
		for i, im := range current {
			groups[im.ones()] = append(groups[im.ones()], i)
		}

		used := make([]bool, len(current))
		type key struct{ value, mask uint }
		found := make(map[key]bool)
		var next []Implicant
		for k := 0; k < n; k++ {
			for _, i := range groups[k] {
				for _, j := range groups[k+1] {
					m, ok := merge(current[i], current[j])
					if !ok {
						continue
					}
					used[i], used[j] = true, true
					if id := (key{m.value, m.mask}); !found[id] {
						found[id] = true
						next = append(next, m)
					}
				}
			}
		}

		for i, im := range current {
			if !used[i] {
				primes = append(primes, im)
			}
		}
		current = next
	}
	return primes
}

// Cover picks implicants from primes until every minterm is covered.
// Essential primes, the only cover of some minterm, are taken first in
// minterm order. The remaining minterms are covered greedily by the prime
// covering the most of them; ties go to the prime with fewer don't-cares
// and then to the earlier prime.
func Cover(primes []Implicant, minterms []uint) (essentials, selected []Implicant) {
	chosen := make([]bool, len(primes))
	covered := make(map[uint]bool, len(minterms))
	take := func(i int) {
		chosen[i] = true
		selected = append(selected, primes[i])
		for _, m := range minterms {
			if primes[i].Covers(m) {
				covered[m] = true
			}
		}
	}

	for _, m := range minterms {
		only := -1
		for i, p := range primes {
			if !p.Covers(m) {
				continue
			}
			if only != -1 {
				only = -2
				break
			}
			only = i
		}
		if only >= 0 && !chosen[only] {
			take(only)
			essentials = append(essentials, primes[only])
		}
	}

	for len(covered) < len(minterms) {
		best, bestCount := -1, 0
		for i, p := range primes {
			if chosen[i] {
				continue
			}
			count := 0
			for _, m := range minterms {
				if !covered[m] && p.Covers(m) {
					count++
				}
			}
			if count == 0 {
				continue
			}
			if best == -1 || count > bestCount ||
				(count == bestCount && p.DontCares() < primes[best].DontCares()) {
				best, bestCount = i, count
			}
		}
		if best == -1 {
			// Unreachable for primes built from the same minterms.
			break
		}
		take(best)
	}
	return essentials, selected
}
