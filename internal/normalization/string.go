package normalization

import (
  "strings"
)

// TrimInputString trims surrounding whitespace from a display name, keeping
// its casing intact.
func TrimInputString(input string) string {
  return strings.TrimSpace(input)
}

// ParseInputString lowercases and trims an input used as a natural
// identifier, such as an IFP key or an access code.
func ParseInputString(input string) string {
  normalized := strings.ToLower(strings.TrimSpace(input))
  return normalized
}
