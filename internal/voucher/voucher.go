// Package voucher formats the sequential references written into the
// description column, like "0001/UMPEG".
package voucher

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/kasva-dev/kasva/internal/model"
)

// FormatRef returns a voucher reference like "0001/UMPEG".
func FormatRef(seq int, categoryCode string) string {
	return fmt.Sprintf("%04d/%s", seq, categoryCode)
}

// ParseRef parses "0001/UMPEG" into sequence and category code.
func ParseRef(ref string) (seq int, categoryCode string, err error) {
	parts := strings.SplitN(ref, "/", 2)
	if len(parts) != 2 || parts[1] == "" {
		return 0, "", fmt.Errorf("invalid voucher reference: %q", ref)
	}

	seq, err = strconv.Atoi(parts[0])
	if err != nil {
		return 0, "", fmt.Errorf("invalid sequence in voucher reference %q: %w", ref, err)
	}
	if seq <= 0 {
		return 0, "", fmt.Errorf("non-positive sequence in voucher reference %q", ref)
	}
	return seq, parts[1], nil
}

// NextSeq scans existing transactions for voucher references in the
// given category and returns the next free sequence. Descriptions
// that are not voucher references are skipped.
func NextSeq(txns []model.Transaction, categoryCode string) int {
	maxSeq := 0
	for _, t := range txns {
		seq, code, err := ParseRef(t.Description)
		if err != nil || code != categoryCode {
			continue
		}
		if seq > maxSeq {
			maxSeq = seq
		}
	}
	return maxSeq + 1
}
