// Package scalar parses FHIR primitive literals.
//
// Converters receive primitive values as the literal text of a node. The
// numeric, boolean and binary types are parsed into Go values; the string
// based types are kept as text and can be checked against the FHIR lexical
// formats with Check.
package scalar

import (
	"encoding/base64"
	"errors"
	"fmt"
	"math"
	"regexp"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

// SyntaxError reports a literal that is not valid for its FHIR type.
type SyntaxError struct {
	Type    string
	Literal string
	Err     error
}

func (e *SyntaxError) Error() string {
	if e.Err == nil {
		return fmt.Sprintf("invalid %s literal %q", e.Type, e.Literal)
	}
	return fmt.Sprintf("invalid %s literal %q: %v", e.Type, e.Literal, e.Err)
}

func (e *SyntaxError) Unwrap() error { return e.Err }

func syntaxError(typ, literal string, err error) error {
	return &SyntaxError{Type: typ, Literal: literal, Err: err}
}

var (
	errRange  = errors.New("out of range")
	errFormat = errors.New("does not match the lexical format")
)

// FHIR lexical formats.
var (
	decimalRegex   = regexp.MustCompile(`^-?(0|[1-9]\d*)(\.\d+)?([eE][+-]?\d+)?$`)
	urlRegex       = regexp.MustCompile(`^\S+$`)
	canonicalRegex = regexp.MustCompile(`^\S+(\|\S+)?$`)
	codeRegex      = regexp.MustCompile(`^\S+(\s\S+)*$`)
	idRegex        = regexp.MustCompile(`^[A-Za-z0-9\-.]{1,64}$`)
	oidRegex       = regexp.MustCompile(`^urn:oid:[012](\.(0|[1-9]\d*))+$`)
	uuidRegex      = regexp.MustCompile(`^urn:uuid:[0-9a-fA-F]{8}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{4}-[0-9a-fA-F]{12}$`)
	instantRegex   = regexp.MustCompile(`^(\d{4})-(0[1-9]|1[012])-(0[1-9]|[12]\d|3[01])T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))$`)
	dateRegex      = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01]))?)?$`)
	dateTimeRegex  = regexp.MustCompile(`^(\d{4})(-(0[1-9]|1[012])(-(0[1-9]|[12]\d|3[01])(T([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?(Z|[+-]((0\d|1[0-3]):[0-5]\d|14:00))?)?)?)?$`)
	timeRegex      = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d:([0-5]\d|60)(\.\d+)?$`)
)

// Bool parses a FHIR boolean. Only "true" and "false" are accepted.
func Bool(s string) (bool, error) {
	switch s {
	case "true":
		return true, nil
	case "false":
		return false, nil
	}
	return false, syntaxError("boolean", s, errFormat)
}

// Int32 parses a FHIR integer.
func Int32(s string) (int32, error) {
	i, err := strconv.ParseInt(s, 10, 32)
	if err != nil {
		return 0, syntaxError("integer", s, numError(err))
	}
	return int32(i), nil
}

// Int64 parses a FHIR integer64.
func Int64(s string) (int64, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, syntaxError("integer64", s, numError(err))
	}
	return i, nil
}

// UnsignedInt parses a FHIR unsignedInt (0 to 2147483647).
func UnsignedInt(s string) (uint32, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, syntaxError("unsignedInt", s, numError(err))
	}
	if i < 0 || i > math.MaxInt32 {
		return 0, syntaxError("unsignedInt", s, errRange)
	}
	return uint32(i), nil
}

// PositiveInt parses a FHIR positiveInt (1 to 2147483647).
func PositiveInt(s string) (uint32, error) {
	i, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, syntaxError("positiveInt", s, numError(err))
	}
	if i < 1 || i > math.MaxInt32 {
		return 0, syntaxError("positiveInt", s, errRange)
	}
	return uint32(i), nil
}

// Decimal parses a FHIR decimal keeping its precision.
func Decimal(s string) (decimal.Decimal, error) {
	if !decimalRegex.MatchString(s) {
		return decimal.Decimal{}, syntaxError("decimal", s, errFormat)
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Decimal{}, syntaxError("decimal", s, err)
	}
	return d, nil
}

// Base64 decodes a FHIR base64Binary. Embedded whitespace is ignored.
func Base64(s string) ([]byte, error) {
	b, err := base64.StdEncoding.DecodeString(stripSpace(s))
	if err != nil {
		return nil, syntaxError("base64Binary", s, err)
	}
	return b, nil
}

// Check validates a string based primitive against its FHIR lexical format.
// Types that are parsed into Go values are checked by parsing. Unknown type
// names pass.
func Check(typ, s string) error {
	var ok bool
	switch typ {
	case "boolean":
		_, err := Bool(s)
		return err
	case "integer":
		_, err := Int32(s)
		return err
	case "integer64":
		_, err := Int64(s)
		return err
	case "unsignedInt":
		_, err := UnsignedInt(s)
		return err
	case "positiveInt":
		_, err := PositiveInt(s)
		return err
	case "decimal":
		_, err := Decimal(s)
		return err
	case "base64Binary":
		_, err := Base64(s)
		return err
	case "string", "markdown":
		ok = utf8.ValidString(s) && strings.TrimSpace(s) != ""
	case "uri":
		ok = s != "" && !strings.ContainsAny(s, " \t\r\n")
	case "url":
		ok = urlRegex.MatchString(s)
	case "canonical":
		ok = canonicalRegex.MatchString(s)
	case "code":
		ok = codeRegex.MatchString(s)
	case "id":
		ok = idRegex.MatchString(s)
	case "oid":
		ok = oidRegex.MatchString(s)
	case "uuid":
		ok = uuidRegex.MatchString(s)
	case "instant":
		ok = instantRegex.MatchString(s)
	case "date":
		ok = dateRegex.MatchString(s)
	case "dateTime":
		ok = dateTimeRegex.MatchString(s)
	case "time":
		ok = timeRegex.MatchString(s)
	case "xhtml":
		ok = strings.HasPrefix(strings.TrimSpace(s), "<div")
	default:
		return nil
	}
	if !ok {
		return syntaxError(typ, s, errFormat)
	}
	return nil
}

func numError(err error) error {
	var ne *strconv.NumError
	if errors.As(err, &ne) {
		if errors.Is(ne.Err, strconv.ErrRange) {
			return errRange
		}
		return errFormat
	}
	return err
}

func stripSpace(s string) string {
	if !strings.ContainsAny(s, " \t\r\n") {
		return s
	}
	return strings.Map(func(r rune) rune {
		switch r {
		case ' ', '\t', '\r', '\n':
			return -1
		}
		return r
	}, s)
}
