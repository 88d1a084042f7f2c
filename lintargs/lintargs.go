// Package lintargs parses the argument lists configured for
// flake8-style checker hooks into typed options.
package lintargs

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/grovetools/hooks/errors"
)

var codeRegex = regexp.MustCompile(`^[A-Z]+[0-9]*$`)

// Options holds the recognized checker options parsed from a hook's args.
// Zero values mean the option was not present.
type Options struct {
	MaxLineLength int      `json:"maxLineLength,omitempty"`
	MaxComplexity int      `json:"maxComplexity,omitempty"`
	Select        []string `json:"select,omitempty"`
	Ignore        []string `json:"ignore,omitempty"`

	// Extra keeps unrecognized arguments in their original order.
	Extra []string `json:"extra,omitempty"`
}

// Parse decodes an args slice into Options. A recognized option that
// appears more than once, or carries a malformed value, is an error.
func Parse(args []string) (*Options, error) {
	opts := &Options{}
	seen := make(map[string]bool)

	for _, arg := range args {
		name, value, isOption := splitOption(arg)
		if !isOption || !recognized(name) {
			opts.Extra = append(opts.Extra, arg)
			continue
		}

		// Only the recognized options are once-only; arbitrary hook
		// args may repeat freely.
		if seen[name] {
			return nil, errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("duplicate option %s", name)).
				WithDetail("option", name)
		}
		seen[name] = true

		switch name {
		case "--max-line-length":
			n, err := parsePositiveInt(name, value)
			if err != nil {
				return nil, err
			}
			opts.MaxLineLength = n
		case "--max-complexity":
			n, err := parsePositiveInt(name, value)
			if err != nil {
				return nil, err
			}
			opts.MaxComplexity = n
		case "--select":
			codes, err := parseCodeList(name, value)
			if err != nil {
				return nil, err
			}
			opts.Select = codes
		case "--ignore":
			codes, err := parseCodeList(name, value)
			if err != nil {
				return nil, err
			}
			opts.Ignore = codes
		}
	}

	return opts, nil
}

// recognized reports whether the option name is one of the typed
// checker options.
func recognized(name string) bool {
	switch name {
	case "--max-line-length", "--max-complexity", "--select", "--ignore":
		return true
	}
	return false
}

// Validate checks an args slice without keeping the parsed result.
func Validate(args []string) error {
	_, err := Parse(args)
	return err
}

// Args renders the options back into a flake8-style argument slice.
// Recognized options come first in canonical order, then Extra.
func (o *Options) Args() []string {
	var args []string
	if o.MaxLineLength > 0 {
		args = append(args, fmt.Sprintf("--max-line-length=%d", o.MaxLineLength))
	}
	if o.MaxComplexity > 0 {
		args = append(args, fmt.Sprintf("--max-complexity=%d", o.MaxComplexity))
	}
	if len(o.Select) > 0 {
		args = append(args, "--select="+strings.Join(o.Select, ","))
	}
	if len(o.Ignore) > 0 {
		args = append(args, "--ignore="+strings.Join(o.Ignore, ","))
	}
	return append(args, o.Extra...)
}

// splitOption splits "--name=value" into its parts. Arguments that are
// not long options with an inline value are passed through untouched.
func splitOption(arg string) (name, value string, ok bool) {
	if !strings.HasPrefix(arg, "--") {
		return "", "", false
	}
	idx := strings.Index(arg, "=")
	if idx < 0 {
		return "", "", false
	}
	return arg[:idx], arg[idx+1:], true
}

func parsePositiveInt(name, value string) (int, error) {
	n, err := strconv.Atoi(value)
	if err != nil || n <= 0 {
		return 0, errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("%s requires a positive integer, got %q", name, value)).
			WithDetail("option", name).
			WithDetail("value", value)
	}
	return n, nil
}

func parseCodeList(name, value string) ([]string, error) {
	if value == "" {
		return nil, errors.New(errors.ErrCodeConfigValidation,
			fmt.Sprintf("%s requires a comma-separated code list", name)).
			WithDetail("option", name)
	}

	codes := strings.Split(value, ",")
	for _, code := range codes {
		if !codeRegex.MatchString(code) {
			return nil, errors.New(errors.ErrCodeConfigValidation,
				fmt.Sprintf("%s contains malformed diagnostic code %q", name, code)).
				WithDetail("option", name).
				WithDetail("code", code)
		}
	}
	return codes, nil
}
