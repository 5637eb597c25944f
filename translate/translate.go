// Copyright 2025, Jason S. McMullan <jason.mcmullan@gmail.com>

// Package translate formats user-visible messages for the current locale.
//
// The language is taken from the OS locale at startup, and may be replaced
// with Use, ie from a command line flag.
package translate

import (
	"log"
	"sync/atomic"

	"github.com/jeandeaual/go-locale"

	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// DEFAULT_LOCALE is used when the OS reports no locale.
const DEFAULT_LOCALE = "en-US"

var printer atomic.Pointer[message.Printer]

func init() {
	locales, err := locale.GetLocales()
	if err != nil {
		log.Printf("sap1: locale: %v", err)
	}

	Use(locales...)
}

// Use selects the best supported language for the locales, in order of
// preference, and returns it.
func Use(locales ...string) language.Tag {
	if len(locales) == 0 {
		locales = []string{DEFAULT_LOCALE}
	}

	tag := message.MatchLanguage(locales...)
	printer.Store(message.NewPrinter(tag))
	return tag
}

// From an en-US Sprintf() format, translate to string.
func From(key message.Reference, args ...any) string {
	return printer.Load().Sprintf(key, args...)
}
