package util

import (
	"fmt"
	"net/url"

	"github.com/feedbook/feedbook-be/config"
)

// Avatar derives a stable avatar URL from a seed (the user's display name).
// Avatars are derived, never persisted.
func Avatar(seed string) string {
	return fmt.Sprintf("https://avatars.dicebear.com/api/bottts/%v.svg?size=%v",
		url.PathEscape(seed), config.AvatarSize)
}
