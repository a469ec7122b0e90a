package normalize

import "strings"

// ParseList parses the bracketed list fields carried by the incoming bundle
// ("disciplines", "events", "athletes_codes"), which arrive as stringified
// lists with inconsistent quoting:
//
//	'["Women"]'              -> ["Women"]
//	`"['Men\'s 100m']"`      -> ["Men's 100m"]
//	'[]', ''                 -> nil
//	'[Invalid]'              -> ["Invalid"]
//
// Anything not bracketed is treated as empty rather than guessed at.
func ParseList(s string) []string {
	s = strings.TrimSpace(s)
	if s == "" {
		return nil
	}

	// Strip one layer of outer quotes if present
	if len(s) >= 2 {
		if (s[0] == '"' && s[len(s)-1] == '"') || (s[0] == '\'' && s[len(s)-1] == '\'') {
			s = strings.TrimSpace(s[1 : len(s)-1])
		}
	}

	if !strings.HasPrefix(s, "[") || !strings.HasSuffix(s, "]") {
		return nil
	}

	content := strings.TrimSpace(s[1 : len(s)-1])
	if content == "" {
		return nil
	}

	var result []string
	i, n := 0, len(content)
	for i < n {
		// Skip separators
		for i < n && (content[i] == ' ' || content[i] == ',') {
			i++
		}
		if i >= n {
			break
		}

		if content[i] == '"' || content[i] == '\'' {
			quote := content[i]
			i++
			start := i
			for i < n && content[i] != quote {
				i++
			}
			result = append(result, content[start:i])
			i++ // closing quote
		} else {
			start := i
			for i < n && content[i] != ',' {
				i++
			}
			if item := strings.TrimSpace(content[start:i]); item != "" {
				result = append(result, item)
			}
		}
	}

	return result
}
