/*
Package resolution defines the outcome of classifying a line of address-bar
input: the category it fell into and the destination it resolves to.
*/
package resolution

// Kind identifies which stage of the classification chain matched.
type Kind string

const (
	KindDirectURL      Kind = "direct_url"
	KindAlias          Kind = "alias"
	KindLocalhostPort  Kind = "localhost_port"
	KindComputedValue  Kind = "computed_value"
	KindSearchFallback Kind = "search_fallback"
)

/*
Result is the single destination action produced for an input.
Destination is always populated. The remaining fields carry the payload of
the matched Kind and are zero for every other kind.
*/
type Result struct {
	Kind        Kind
	Destination string

	Alias string  // KindAlias
	Port  int     // KindLocalhostPort
	Value float64 // KindComputedValue
	Query string  // KindSearchFallback
}

// Suggestion is one alias match offered while the user is still typing.
type Suggestion struct {
	Alias       string
	Destination string
	Description string
}

/*
Preview is the live-suggestion form of a classification. Default is what
submitting the input right now would do; Suggestions holds the remaining
alias matches in store order.
*/
type Preview struct {
	Default     Result
	Description string
	Suggestions []Suggestion
}
