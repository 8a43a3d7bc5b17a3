package commit

import (
	"fmt"
	"strconv"
	"strings"
	"time"
)

// Signature is an author or committer line: who, reachable where, when.
// Timestamps are stored as unix seconds and always rendered with the
// fixed +0000 offset the on-disk format uses.
type Signature struct {
	Name  string
	Email string
	When  time.Time
}

// NewSignature creates a Signature with the given identity, stamped now.
func NewSignature(name, email string) Signature {
	return Signature{Name: name, Email: email, When: time.Now()}
}

// FormatLine renders the signature in commit-object form:
// "<name> <<email>> <unix-timestamp> +0000"
func (s Signature) FormatLine() string {
	return fmt.Sprintf("%s <%s> %d +0000", s.Name, s.Email, s.When.Unix())
}

// parseSignature parses a signature line back into its parts. Tolerant of
// names containing spaces; the email is located by its angle brackets.
func parseSignature(line string) (Signature, error) {
	open := strings.LastIndex(line, "<")
	close := strings.LastIndex(line, ">")
	if open == -1 || close == -1 || close < open {
		return Signature{}, fmt.Errorf("malformed signature line: %q", line)
	}

	sig := Signature{
		Name:  strings.TrimSpace(line[:open]),
		Email: line[open+1 : close],
	}

	rest := strings.Fields(line[close+1:])
	if len(rest) >= 1 {
		unix, err := strconv.ParseInt(rest[0], 10, 64)
		if err != nil {
			return Signature{}, fmt.Errorf("malformed timestamp in signature: %q", line)
		}
		sig.When = time.Unix(unix, 0).UTC()
	}

	return sig, nil
}
