// Package commandline contains helper types for collecting
// command-line arguments.
package commandline

import (
	"bytes"
	"fmt"
	"strings"
)

// A Pair holds one key=value command-line argument.
type Pair struct {
	Key, Value string
}

// Pairs is used to collect multiple key=value options from the
// command line, in the order provided.
type Pairs []Pair

func (p *Pairs) String() string {
	var buf bytes.Buffer
	for _, item := range *p {
		fmt.Fprintf(&buf, "%s=%s\n", item.Key, item.Value)
	}
	return buf.String()
}

// Set adds a key=value option to the Pairs, in the order provided
// on the command line.
func (p *Pairs) Set(s string) error {
	parts := strings.SplitN(s, "=", 2)
	if len(parts) != 2 {
		return fmt.Errorf("invalid option %q. must be \"key=value\"", s)
	}
	*p = append(*p, Pair{Key: strings.TrimSpace(parts[0]), Value: parts[1]})
	return nil
}

// The Strings type can be used to collect multiple command-line options,
// in the order provided.
type Strings []string

func (s *Strings) String() string {
	return strings.Join(*s, ",")
}

func (s *Strings) Set(val string) error {
	*s = append(*s, val)
	return nil
}
