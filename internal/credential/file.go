package credential

import (
	"bufio"
	"fmt"
	"os"
	"strings"
)

// ReadFile loads credentials from path, one per line. Surrounding whitespace
// is trimmed; blank lines and lines starting with "#" are skipped.
func ReadFile(path string) ([]string, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("could not open keys file: %w", err)
	}
	defer func() {
		_ = f.Close()
	}()

	var keys []string
	sc := bufio.NewScanner(f)
	for sc.Scan() {
		line := strings.TrimSpace(sc.Text())
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		keys = append(keys, line)
	}
	if err := sc.Err(); err != nil {
		return nil, fmt.Errorf("could not read keys file: %w", err)
	}

	return keys, nil
}

// Mask hides all but the first and last four characters of key so it can be
// shown in operator notices.
func Mask(key string) string {
	const visible = 4
	if len(key) <= 2*visible {
		return strings.Repeat("*", len(key))
	}

	return key[:visible] + strings.Repeat("*", len(key)-2*visible) + key[len(key)-visible:]
}
