package provider

import (
	"fmt"
	"strconv"
	"strings"

	apperrors "github.com/louisbranch/im-hungry/internal/platform/errors"
)

const (
	tagSeparator = "-"
	itemInfix    = "item-"
)

// RestaurantID formats the id a provider issues for its seq-th restaurant.
func RestaurantID(p Provider, seq int) string {
	return p.Tag() + tagSeparator + strconv.Itoa(seq)
}

// MenuItemID formats the id a provider issues for its seq-th menu item.
func MenuItemID(p Provider, seq int) string {
	return p.Tag() + tagSeparator + itemInfix + strconv.Itoa(seq)
}

// ParseID decodes the provider tag from any restaurant or menu item id.
// It fails with an InvalidIdentifier error when the prefix is not one of the
// known tags or nothing follows it.
func ParseID(id string) (Provider, error) {
	for _, p := range All {
		prefix := p.Tag() + tagSeparator
		if strings.HasPrefix(id, prefix) && len(id) > len(prefix) {
			return p, nil
		}
	}
	return Unknown, invalidIdentifier(id)
}

// ParseRestaurantID decodes a restaurant id into its provider and sequence
// number. Menu item ids and non-numeric sequences are rejected.
func ParseRestaurantID(id string) (Provider, int, error) {
	p, err := ParseID(id)
	if err != nil {
		return Unknown, 0, err
	}
	rest := strings.TrimPrefix(id, p.Tag()+tagSeparator)
	seq, err := strconv.Atoi(rest)
	if err != nil || seq <= 0 || strconv.Itoa(seq) != rest {
		return Unknown, 0, invalidIdentifier(id)
	}
	return p, seq, nil
}

func invalidIdentifier(id string) error {
	return apperrors.WithMetadata(
		apperrors.CodeInvalidIdentifier,
		fmt.Sprintf("invalid restaurant ID format %q: expected dd-{id}, ue-{id}, or gh-{id}", id),
		map[string]string{"id": id},
	)
}
