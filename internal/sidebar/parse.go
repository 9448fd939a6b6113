// internal/sidebar/parse.go
package sidebar

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"io"
)

// callPrefix is the wrapper the documentation generator emits around the
// JSON payload of every fragment.
const callPrefix = "initSidebarItems("

// Parse errors for the fragment wrapper and payload shape.
var (
	ErrEmptyFragment  = errors.New("empty fragment")
	ErrBadWrapper     = errors.New("malformed initSidebarItems wrapper")
	ErrNotObject      = errors.New("fragment payload is not a JSON object")
	ErrBadEntry       = errors.New("entry is not a [name, description] pair")
	ErrTrailingTokens = errors.New("unexpected data after fragment payload")
)

// Parse decodes a sidebar fragment into an Index. The input may be the full
// call literal ("initSidebarItems({...});", trailing semicolon and newline
// optional) or the bare JSON object. Category and entry order from the
// source are preserved, and duplicate category keys — which a plain JSON
// decode would silently collapse — are rejected.
func Parse(src []byte) (*Index, error) {
	payload, err := unwrap(src)
	if err != nil {
		return nil, err
	}
	return parseObject(payload)
}

// unwrap strips the initSidebarItems(...) call wrapper, returning the inner
// JSON object. Bare objects pass through untouched.
func unwrap(src []byte) ([]byte, error) {
	s := bytes.TrimSpace(src)
	if len(s) == 0 {
		return nil, ErrEmptyFragment
	}
	if s[0] == '{' {
		return s, nil
	}
	if !bytes.HasPrefix(s, []byte(callPrefix)) {
		return nil, fmt.Errorf("%w: expected %q prefix", ErrBadWrapper, callPrefix)
	}
	s = s[len(callPrefix):]
	s = bytes.TrimSpace(s)
	s = bytes.TrimSuffix(s, []byte(";"))
	s = bytes.TrimSpace(s)
	if !bytes.HasSuffix(s, []byte(")")) {
		return nil, fmt.Errorf("%w: missing closing parenthesis", ErrBadWrapper)
	}
	s = bytes.TrimSpace(s[:len(s)-1])
	if len(s) == 0 || s[0] != '{' {
		return nil, fmt.Errorf("%w: call argument is not an object", ErrBadWrapper)
	}
	return s, nil
}

// parseObject walks the payload token by token so that category order is
// kept and duplicate keys are caught.
func parseObject(payload []byte) (*Index, error) {
	dec := json.NewDecoder(bytes.NewReader(payload))

	tok, err := dec.Token()
	if err != nil {
		return nil, fmt.Errorf("decode fragment: %w", err)
	}
	if delim, ok := tok.(json.Delim); !ok || delim != '{' {
		return nil, ErrNotObject
	}

	idx := &Index{}
	seen := make(map[Category]bool)
	for dec.More() {
		keyTok, err := dec.Token()
		if err != nil {
			return nil, fmt.Errorf("decode fragment: %w", err)
		}
		key, ok := keyTok.(string)
		if !ok {
			return nil, fmt.Errorf("decode fragment: non-string category key %v", keyTok)
		}
		cat := Category(key)
		if seen[cat] {
			return nil, fmt.Errorf("%w: %q", ErrDuplicateCategory, cat)
		}
		seen[cat] = true

		var pairs [][]json.RawMessage
		if err := dec.Decode(&pairs); err != nil {
			return nil, fmt.Errorf("category %q: %w", cat, err)
		}
		if len(pairs) == 0 {
			return nil, fmt.Errorf("%w: %q", ErrEmptyCategory, cat)
		}
		for i, pair := range pairs {
			if len(pair) != 2 {
				return nil, fmt.Errorf("%w: category %q entry %d has %d elements", ErrBadEntry, cat, i, len(pair))
			}
			name, err := stringElement(pair[0])
			if err != nil {
				return nil, fmt.Errorf("%w: category %q entry %d: %v", ErrBadEntry, cat, i, err)
			}
			desc, err := stringElement(pair[1])
			if err != nil {
				return nil, fmt.Errorf("%w: category %q entry %d: %v", ErrBadEntry, cat, i, err)
			}
			if err := idx.Add(cat, Entry{Name: name, Description: desc}); err != nil {
				return nil, err
			}
		}
	}

	// Consume the closing brace and make sure nothing follows it.
	if _, err := dec.Token(); err != nil {
		return nil, fmt.Errorf("decode fragment: %w", err)
	}
	if _, err := dec.Token(); err != io.EOF {
		return nil, ErrTrailingTokens
	}
	return idx, nil
}

// stringElement decodes one element of an entry pair, accepting only a JSON
// string. The token kind is checked first: unmarshalling null into a string
// is a no-op, not an error, and would coerce it to "".
func stringElement(raw json.RawMessage) (string, error) {
	trimmed := bytes.TrimSpace(raw)
	if len(trimmed) == 0 || trimmed[0] != '"' {
		return "", fmt.Errorf("element %s is not a string", trimmed)
	}
	var s string
	if err := json.Unmarshal(trimmed, &s); err != nil {
		return "", err
	}
	return s, nil
}
