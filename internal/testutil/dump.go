// Package testutil holds test-only helpers shared across the core
// packages' test suites, grounded on sqltest's QueryDump/DumpRows: a
// thin repr.String wrapper with a banner, here repurposed to pretty-
// print Translation/TextAtom trees instead of SQL result rows.
package testutil

import (
	"fmt"

	"github.com/alecthomas/repr"

	"github.com/stenoproject/plojo/translation"
)

// DumpTranslations prints each translation's full repr-formatted tree,
// banner-separated the way QueryDump separates each dumped query.
func DumpTranslations(translations []translation.Translation) {
	fmt.Println("============================")
	for _, t := range translations {
		fmt.Println(repr.String(t, repr.Indent("  ")))
		fmt.Println("----------------------------")
	}
}
