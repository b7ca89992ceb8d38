package scanner

import "github.com/kiteco/joeyscript/kite-golib/status"

var (
	section          = status.NewSection("lang/javascript (scanner)")
	tokenizeDuration = section.SampleDuration("Tokenize")
	tokenCount       = section.Counter("Tokens")
	tokenizeErrors   = section.Breakdown("Tokenize errors")
)

func init() {
	tokenizeErrors.AddCategories(UnexpectedToken.String(), UnterminatedStringLiteral.String())
}
