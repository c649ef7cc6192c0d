// Package parser extracts structured transaction records from free-text
// commands such as:
//
//	register 150,00 of revenue on 12/05/2024 with description rent
//
// The grammar is a single production rule with ordered slots. Extraction is
// stateless and pure: text either yields a record or a no-match, and a
// no-match is a normal negative result rather than an error.
package parser

import (
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"

	"github.com/fintrack/fintrack/internal/ledger"
)

// command is the single production rule, matched case-insensitively against
// trimmed input. Slots, in order:
//
//  1. optional "register" phrase, optionally "in the database"
//  2. optional currency marker ("$" or "R$")
//  3. numeric literal, "." thousands / "," decimal separators
//  4. "of"
//  5. kind keyword, optionally pluralized
//  6. "on"
//  7. DD/MM/YYYY date, "/" or "-" separators
//  8. optional "with description <text>" tail
//
// Trailing whitespace and periods are consumed outside the capture groups.
var command = regexp.MustCompile(
	`(?i)(?:register(?:\s+in\s+the\s+database)?\s+)?(?:R?\$\s*)?([\d.,]+)\s+of\s+` +
		`(revenue|expense)s?\s+on\s+(\d{1,2}[/-]\d{1,2}[/-]\d{4})` +
		`(?:\s+with\s+description\s+(.+?))?[\s.]*$`)

// Extract attempts to parse text as a transaction command. The boolean
// reports whether the command grammar matched with valid slot values.
//
// A sentence that matches the surface pattern but carries an impossible
// calendar date ("31/02/2024") or an unparseable numeric literal is treated
// as a no-match as well.
func Extract(text string) (*ledger.Record, bool) {
	text = norm.NFC.String(strings.TrimSpace(text))

	m := command.FindStringSubmatch(text)
	if m == nil {
		return nil, false
	}

	amount, err := ledger.ParseAmount(m[1])
	if err != nil {
		return nil, false
	}

	kind, err := ledger.ParseKind(m[2])
	if err != nil {
		return nil, false
	}

	date, err := ledger.ParseDate(m[3])
	if err != nil {
		return nil, false
	}

	var description *string
	if m[4] != "" {
		d := strings.TrimSpace(m[4])
		description = &d
	}

	return &ledger.Record{
		Date:        date,
		Kind:        kind,
		Amount:      amount,
		Description: description,
	}, true
}
