package dimension

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/cscmnu/lmfdb/internal/platform/errors"
)

const (
	maxWeight      = 1000
	maxWeightCount = 500
)

const sp4zDoc = `Dimensions of the spaces M_k(Sp(4,Z)) of Siegel modular forms of degree 2
and weight k on the full modular group, split into Siegel Eisenstein series,
Klingen Eisenstein series, Saito-Kurokawa (Maass) lifts and the remaining
"interesting" forms. Argument wt_range is a weight "k" or an inclusive range "k1-k2".`

var sp4zHeaders = []string{"Total", "Eisenstein", "Klingen", "Maass", "Interesting"}

// Sp4Z tabulates dim M_k(Sp(4,Z)) and its decomposition for a weight range.
func Sp4Z(args ...string) (*Table, error) {
	if len(args) != 1 {
		return nil, invalidArgs(fmt.Sprintf("Sp4Z takes exactly 1 argument (wt_range), %d given", len(args)))
	}
	lo, hi, err := ParseWeightRange(args[0])
	if err != nil {
		return nil, err
	}

	table := &Table{Headers: append([]string(nil), sp4zHeaders...)}
	for k := lo; k <= hi; k++ {
		table.Rows = append(table.Rows, Row{
			Key:    strconv.Itoa(k),
			Values: sp4zRow(k),
		})
	}
	return table, nil
}

func sp4zRow(k int) []int64 {
	total := sp4zTotal(k)
	if k%2 == 1 {
		return []int64{total, 0, 0, 0, total}
	}
	switch k {
	case 0:
		return []int64{total, 1, 0, 0, 0}
	case 2:
		return []int64{0, 0, 0, 0, 0}
	}
	eisenstein := int64(1)
	klingen := ellipticCusp(k)
	maass := ellipticCusp(2*k - 2)
	return []int64{total, eisenstein, klingen, maass, total - eisenstein - klingen - maass}
}

// sp4zTotal counts monomials in Igusa's generators of weights 4, 6, 10, 12;
// odd weights carry the extra weight 35 generator.
func sp4zTotal(k int) int64 {
	if k%2 == 1 {
		k -= 35
		if k < 0 {
			return 0
		}
	}
	var n int64
	for d := 0; 12*d <= k; d++ {
		for c := 0; 12*d+10*c <= k; c++ {
			for b := 0; 12*d+10*c+6*b <= k; b++ {
				if (k-12*d-10*c-6*b)%4 == 0 {
					n++
				}
			}
		}
	}
	return n
}

// ellipticCusp is dim S_k(SL(2,Z)) for even k >= 0.
func ellipticCusp(k int) int64 {
	if k < 12 || k%2 == 1 {
		return 0
	}
	m := int64(k / 12)
	if k%12 == 2 {
		m--
	}
	return m
}

// ParseWeightRange parses "k" or "k1-k2" into an inclusive range.
func ParseWeightRange(raw string) (int, int, error) {
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return 0, 0, invalidArgs("weight range is empty")
	}
	loText, hiText, isRange := strings.Cut(raw, "-")
	lo, err := strconv.Atoi(strings.TrimSpace(loText))
	if err != nil {
		return 0, 0, invalidArgs(fmt.Sprintf("weight %q is not an integer", loText))
	}
	hi := lo
	if isRange {
		hi, err = strconv.Atoi(strings.TrimSpace(hiText))
		if err != nil {
			return 0, 0, invalidArgs(fmt.Sprintf("weight %q is not an integer", hiText))
		}
	}
	switch {
	case lo < 0 || hi < 0:
		return 0, 0, invalidArgs("weights must be non-negative")
	case hi < lo:
		return 0, 0, invalidArgs(fmt.Sprintf("range %d-%d is empty", lo, hi))
	case hi > maxWeight:
		return 0, 0, invalidArgs(fmt.Sprintf("weights above %d are not tabulated", maxWeight))
	case hi-lo+1 > maxWeightCount:
		return 0, 0, invalidArgs(fmt.Sprintf("at most %d weights per request", maxWeightCount))
	}
	return lo, hi, nil
}

func invalidArgs(reason string) error {
	return apperrors.WithMetadata(apperrors.CodeDimensionArgsInvalid, "invalid dimension arguments: "+reason, map[string]string{
		"reason": reason,
	})
}
