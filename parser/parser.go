// Package parser tokenizes grocery input lines into typed commands.
//
// A line is a whitespace-separated sequence of tokens whose first token is
// the command keyword. Blank lines and lines starting with '#' are skipped.
// The parser never returns an error for bad input: an unknown keyword, a
// wrong argument count or a malformed numeric token yields a
// command.Invalid value, which the engine treats as a semantic violation.
//
// Numeric coercion follows the input format: quantities are integers but
// decimal-formatted tokens are tolerated and truncated toward zero
// ("10.0" parses as 10, "10.7" as 10). Prices and percentages are parsed
// as exact decimals so that "5.0" and "5.00" compare equal.
package parser

import (
	"bufio"
	"bytes"
	"fmt"
	"strings"

	"github.com/shopspring/decimal"

	"github.com/robinvdvleuten/grocer/command"
)

// ParseLine parses a single input line into a command. It returns nil for
// blank lines and comments. The line number is recorded on the returned
// command for diagnostics.
func ParseLine(line string, lineNum int) command.Command {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	fields := strings.Fields(line)

	switch fields[0] {
	case "STOCK":
		if len(fields) != 4 {
			return invalidf(lineNum, "STOCK expects 3 arguments")
		}
		qty, err := parseQuantity(fields[2])
		if err != nil {
			return invalidf(lineNum, "malformed quantity %q", fields[2])
		}
		cost, err := decimal.NewFromString(fields[3])
		if err != nil {
			return invalidf(lineNum, "malformed cost %q", fields[3])
		}
		return &command.Stock{Line: lineNum, Item: fields[1], Qty: qty, Cost: cost}

	case "ORDER":
		if len(fields) != 4 {
			return invalidf(lineNum, "ORDER expects 3 arguments")
		}
		qty, err := parseQuantity(fields[2])
		if err != nil {
			return invalidf(lineNum, "malformed quantity %q", fields[2])
		}
		sell, err := decimal.NewFromString(fields[3])
		if err != nil {
			return invalidf(lineNum, "malformed sell price %q", fields[3])
		}
		return &command.Order{Line: lineNum, Item: fields[1], Qty: qty, Sell: sell}

	case "EXPIRE":
		if len(fields) != 3 {
			return invalidf(lineNum, "EXPIRE expects 2 arguments")
		}
		qty, err := parseQuantity(fields[2])
		if err != nil {
			return invalidf(lineNum, "malformed quantity %q", fields[2])
		}
		return &command.Expire{Line: lineNum, Item: fields[1], Qty: qty}

	case "RETURN":
		if len(fields) != 4 {
			return invalidf(lineNum, "RETURN expects 3 arguments")
		}
		qty, err := parseQuantity(fields[2])
		if err != nil {
			return invalidf(lineNum, "malformed quantity %q", fields[2])
		}
		sell, err := decimal.NewFromString(fields[3])
		if err != nil {
			return invalidf(lineNum, "malformed sell price %q", fields[3])
		}
		return &command.Return{Line: lineNum, Item: fields[1], Qty: qty, Sell: sell}

	case "DISCOUNT":
		if len(fields) != 3 {
			return invalidf(lineNum, "DISCOUNT expects 2 arguments")
		}
		pct, err := decimal.NewFromString(fields[2])
		if err != nil {
			return invalidf(lineNum, "malformed percentage %q", fields[2])
		}
		return &command.Discount{Line: lineNum, Item: fields[1], Pct: pct}

	case "DISCOUNT_END":
		if len(fields) != 2 {
			return invalidf(lineNum, "DISCOUNT_END expects 1 argument")
		}
		return &command.DiscountEnd{Line: lineNum, Item: fields[1]}

	case "CHECK":
		if len(fields) != 1 {
			return invalidf(lineNum, "CHECK expects no arguments")
		}
		return &command.Check{Line: lineNum}

	case "PROFIT":
		if len(fields) != 1 {
			return invalidf(lineNum, "PROFIT expects no arguments")
		}
		return &command.Profit{Line: lineNum}
	}

	return invalidf(lineNum, "unknown command %q", fields[0])
}

// ParseBytes parses a complete input source into its command sequence,
// skipping blank lines and comments.
func ParseBytes(src []byte) []command.Command {
	var cmds []command.Command

	scanner := bufio.NewScanner(bytes.NewReader(src))
	lineNum := 0
	for scanner.Scan() {
		lineNum++
		if cmd := ParseLine(scanner.Text(), lineNum); cmd != nil {
			cmds = append(cmds, cmd)
		}
	}

	return cmds
}

// parseQuantity parses an integer quantity, tolerating decimal-formatted
// tokens by truncating toward zero.
func parseQuantity(tok string) (int64, error) {
	d, err := decimal.NewFromString(tok)
	if err != nil {
		return 0, err
	}
	return d.IntPart(), nil
}

func invalidf(lineNum int, format string, args ...interface{}) *command.Invalid {
	return &command.Invalid{Line: lineNum, Reason: fmt.Sprintf(format, args...)}
}
