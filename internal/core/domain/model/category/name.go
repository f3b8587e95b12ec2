package category

import (
	"fmt"
	"regexp"
	"strings"

	"storefront/internal/pkg/errs"
)

// partitionNamePattern is the shape every partition identifier must match.
// The identifier doubles as the physical table name of the partition, so the
// alphabet is deliberately restricted.
var partitionNamePattern = regexp.MustCompile(`^[A-Z0-9_]+$`)

// separatorRuns matches the character runs that normalization collapses
// into a single underscore.
var separatorRuns = regexp.MustCompile(`[\s\-_]+`)

// NormalizeName derives the canonical partition identifier from a category
// display name: trim, uppercase, collapse whitespace/hyphen/underscore runs
// into single underscores. Normalization is idempotent, so "Sparkler Items",
// "sparkler-items" and "SPARKLER_ITEMS" all map to "SPARKLER_ITEMS".
func NormalizeName(name string) (string, error) {
	normalized := strings.TrimSpace(name)
	if normalized == "" {
		return "", errs.NewValueIsRequiredError("category name")
	}

	normalized = strings.ToUpper(normalized)
	normalized = separatorRuns.ReplaceAllString(normalized, "_")
	normalized = strings.Trim(normalized, "_")

	if !partitionNamePattern.MatchString(normalized) {
		return "", errs.NewValueIsInvalidErrorWithCause("category name",
			fmt.Errorf("%q does not normalize to a valid partition identifier", name))
	}

	return normalized, nil
}

// IsPartitionName reports whether s is a well-formed partition identifier.
// Used by the structural partition scan to filter catalog tables from the
// rest of the schema.
func IsPartitionName(s string) bool {
	return partitionNamePattern.MatchString(s)
}
