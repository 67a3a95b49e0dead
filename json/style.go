package json

import (
	"errors"
	"fmt"
)

// Style selects how a JSON tree renders to text.
type Style int

const (
	// Compact renders a document on one line: {"key": true}.
	Compact Style = iota
	// Pretty renders containers across multiple indented lines.
	Pretty
)

var ErrBadStyle = errors.New("bad style")

func ParseStyle(v string) (Style, error) {
	s, ok := map[string]Style{
		"c":       Compact,
		"compact": Compact,
		"p":       Pretty,
		"pretty":  Pretty,
	}[v]
	if ok {
		return s, nil
	}
	return 0, fmt.Errorf("%w: %q", ErrBadStyle, v)
}

func (s Style) String() string {
	d, err := s.MarshalText()
	if err != nil {
		return err.Error()
	}
	return string(d)
}

func (s Style) MarshalText() ([]byte, error) {
	switch s {
	case Compact:
		return []byte("compact"), nil
	case Pretty:
		return []byte("pretty"), nil
	default:
		return nil, fmt.Errorf("<err: %d is not a style>", s)
	}
}

func (s *Style) UnmarshalText(d []byte) error {
	ps, err := ParseStyle(string(d))
	if err != nil {
		return err
	}
	*s = ps
	return nil
}
