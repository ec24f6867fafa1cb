// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package latex turns a résumé record into a complete LaTeX document.
//
// All free text that reaches the document passes through Escape; all URLs
// pass through FormatURL. Section generators return an empty fragment for
// empty input so that any record, however sparse, yields a valid document.
package latex

import (
	"fmt"
	"regexp"
	"strings"

	"golang.org/x/text/unicode/norm"
)

const (
	// defaultScheme is prepended to links typed without one.
	defaultScheme = "https://"
	// doiResolver turns a bare DOI into a URL.
	doiResolver = "https://doi.org/"
)

// escaper substitutes every LaTeX special character in a single pass, so
// the braces and backslashes it emits are never escaped again.
var escaper = strings.NewReplacer(
	`\`, `\textbackslash{}`,
	`&`, `\&`,
	`%`, `\%`,
	`$`, `\$`,
	`#`, `\#`,
	`_`, `\_`,
	`{`, `\{`,
	`}`, `\}`,
	`~`, `\textasciitilde{}`,
	`^`, `\^{}`,
)

// urlEscaper makes a link target safe inside macro arguments, where
// catcodes are already fixed. hyperref accepts \# and \%; characters it
// cannot take escaped are percent-encoded, and that % is escaped in turn.
var urlEscaper = strings.NewReplacer(
	`#`, `\#`,
	`%`, `\%`,
	`\`, `\%5C`,
	`{`, `\%7B`,
	`}`, `\%7D`,
	`~`, `\%7E`,
	` `, `\%20`,
)

// httpPattern matches http and https URLs in any letter case.
var httpPattern = regexp.MustCompile(`^(?i:https?://)`)

// schemePattern matches URLs that already carry a scheme.
var schemePattern = regexp.MustCompile(`^(?i:[a-z][a-z0-9+.\-]*://|mailto:|tel:)`)

// Escape returns text with LaTeX special characters escaped. The text is
// normalised to NFC first so composed and decomposed accents typeset alike.
func Escape(text string) string {
	if text == "" {
		return ""
	}
	return escaper.Replace(norm.NFC.String(text))
}

// EnsureScheme prefixes url with https:// when it has no scheme.
func EnsureScheme(url string) string {
	url = strings.TrimSpace(url)
	if url == "" || schemePattern.MatchString(url) {
		return url
	}
	return defaultScheme + url
}

// FormatURL renders a hyperlink whose visible text is the escaped display
// text, or the URL itself when text is empty. An empty URL yields "".
func FormatURL(url, text string) string {
	url = EnsureScheme(url)
	if url == "" {
		return ""
	}
	if text == "" {
		text = url
	}
	return hyperlink(url, Escape(text))
}

// EscapeURL returns url in a form that can be used as an \href target
// anywhere in the document, including inside other macros' arguments.
func EscapeURL(url string) string {
	return urlEscaper.Replace(url)
}

// hyperlink wraps already-rendered LaTeX in a coloured \href. url is the
// raw target and is escaped here.
func hyperlink(url, rendered string) string {
	return fmt.Sprintf(`\href{%s}{\textcolor{linkcolor}{%s}}`, EscapeURL(url), rendered)
}

// DOIURL normalises a DOI to an absolute URL. Bare DOIs ("10.1000/xyz" or
// "doi:10.1000/xyz") are resolved through doi.org; URLs are kept as-is.
func DOIURL(doi string) string {
	doi = strings.TrimSpace(doi)
	if doi == "" {
		return ""
	}
	if httpPattern.MatchString(doi) {
		return doi
	}
	if len(doi) > 4 && strings.EqualFold(doi[:4], "doi:") {
		doi = strings.TrimSpace(doi[4:])
	}
	return doiResolver + doi
}
