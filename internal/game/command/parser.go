package command

import (
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

// ParseResult holds the verb and noun phrase parsed from a text line.
type ParseResult struct {
	// Verb is the first word of the input, lowercased.
	Verb string
	// Args are the remaining lowercased words.
	Args []string
	// Noun is Args joined by single spaces; empty when there are no args.
	Noun string
}

// Parse lowercases a line, splits it on whitespace, and separates the verb from the noun phrase.
//
// Postcondition: Returns a ParseResult. If line is blank, Verb is empty.
func Parse(line string) ParseResult {
	fields := strings.Fields(cases.Lower(language.Und).String(line))
	if len(fields) == 0 {
		return ParseResult{}
	}

	var args []string
	if len(fields) > 1 {
		args = fields[1:]
	}

	return ParseResult{
		Verb: fields[0],
		Args: args,
		Noun: strings.Join(args, " "),
	}
}
