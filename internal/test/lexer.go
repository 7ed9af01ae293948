package test

import (
	"math/rand"
	"strings"
)

var validTokens = []string{
	"int", "float", "uint", "string",
	"x", "total", "únicódeShouldBeVàlid", "snake_case_2",
	"=", "+", "-", ";", "(", ")",
	"0", "123", "321", "3.14", "10.",
	`"this is a string"`,
	`"this is a longer string containing a bunch of text: Lorem ipsum dolor sit amet, consectetur adipiscing elit, sed do eiusmod tempor incididunt ut labore et dolore magna aliqua."`,
	`""`,
	"\n",
}

func GetRandomTokens(size int) string {
	return GetRandomTokensWithSep(size, " ")
}

func GetRandomTokensWithSep(size int, sep string) string {
	var toks []string
	for len(toks) < size {
		toks = append(toks, validTokens[rand.Intn(len(validTokens))])
	}

	return strings.Join(toks, sep)
}

// GetRandomStatements returns size syntactically valid statements.
func GetRandomStatements(size int) string {
	operands := []string{"x", "total", "42", "3.14", `"text"`}
	types := []string{"int", "float", "uint", "string"}

	var sb strings.Builder
	for i := 0; i < size; i++ {
		if rand.Intn(2) == 0 {
			sb.WriteString(types[rand.Intn(len(types))])
			sb.WriteString(" v = ")
		}

		sb.WriteString(operands[rand.Intn(len(operands))])
		for n := rand.Intn(4); n > 0; n-- {
			if rand.Intn(2) == 0 {
				sb.WriteString(" + ")
			} else {
				sb.WriteString(" - ")
			}
			sb.WriteString(operands[rand.Intn(len(operands))])
		}

		sb.WriteString(";\n")
	}

	return sb.String()
}
