package renderer

import (
	"fmt"
	"regexp"

	"github.com/leonelquinteros/gotext"
)

// Markup tags understood by every renderer:
//
//	GT{KEY}      translated message
//	ACTION{x}    key or command the player can use
//	WORD{x}      a crossword answer
//	CLUE{x}      a clue
//	DENIED{x}    something that failed
//	SUBTLE{x}    de-emphasised text
var markupPattern = regexp.MustCompile(`([A-Z_]+)\{([^{}]*)\}`)

// dynamicGet is used for runtime translation key lookups.
// We use a function variable to avoid go vet's non-constant format string check,
// since we intentionally look up translation keys dynamically from markup.
var dynamicGet = gotext.Get

// ApplyMarkup formats msg and resolves GT{} tags, leaving style tags for the
// renderer. Messages stored in the game log go through here.
func ApplyMarkup(msg string, args ...any) string {
	if len(args) > 0 {
		msg = fmt.Sprintf(msg, args...)
	}
	return markupPattern.ReplaceAllStringFunc(msg, func(m string) string {
		sub := markupPattern.FindStringSubmatch(m)
		if sub[1] != "GT" {
			return m
		}
		return dynamicGet(sub[2])
	})
}

// ReplaceMarkup rewrites every tag with fn(tag, operand). Unknown tags are
// passed to fn too.
func ReplaceMarkup(s string, fn func(tag, operand string) string) string {
	return markupPattern.ReplaceAllStringFunc(s, func(m string) string {
		sub := markupPattern.FindStringSubmatch(m)
		return fn(sub[1], sub[2])
	})
}

// StripMarkup removes tags, keeping their (translated) text
func StripMarkup(s string) string {
	return ReplaceMarkup(s, func(tag, operand string) string {
		if tag == "GT" {
			return dynamicGet(operand)
		}
		return operand
	})
}
