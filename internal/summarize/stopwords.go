package summarize

// stopwords is the fixed filter list applied before keyword counting.
var stopwords = map[string]bool{
	"the": true, "and": true, "for": true, "are": true, "but": true,
	"not": true, "you": true, "all": true, "any": true, "can": true,
	"had": true, "her": true, "was": true, "one": true, "our": true,
	"out": true, "day": true, "get": true, "has": true, "him": true,
	"his": true, "how": true, "man": true, "new": true, "now": true,
	"old": true, "see": true, "two": true, "way": true, "who": true,
	"its": true, "did": true, "yes": true, "your": true, "from": true,
	"they": true, "will": true, "with": true, "have": true, "this": true,
	"that": true, "there": true, "their": true, "what": true, "which": true,
	"when": true, "where": true, "would": true, "could": true, "should": true,
	"been": true, "being": true, "into": true, "than": true, "then": true,
	"them": true, "these": true, "those": true, "were": true, "some": true,
	"such": true, "only": true, "other": true, "more": true, "most": true,
	"also": true, "over": true, "just": true, "about": true, "after": true,
	"before": true, "because": true, "between": true, "through": true,
	"each": true, "very": true, "much": true, "many": true, "here": true,
	"does": true, "while": true, "upon": true, "both": true, "same": true,
}
