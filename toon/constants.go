package toon

// TOON format constants (spec §6.3 reserved line shapes).
const (
	// List markers
	listItemMarker = "-"
	listItemPrefix = "- "

	// Structure characters
	colon        = ":"
	comma        = ","
	space        = " "
	pipe         = "|"
	tab          = "\t"
	newline      = "\n"
	openBracket  = "["
	closeBracket = "]"
	openBrace    = "{"
	closeBrace   = "}"
	doubleQuote  = "\""
	backslash    = "\\"
	at           = "@"

	// Literals
	nullLiteral  = "null"
	trueLiteral  = "true"
	falseLiteral = "false"

	// Reserved empty-collection markers (spec §4.3, §4.6, §6.3).
	emptyListMarker = "[0]:"
	emptyMapMarker  = "{0}:"

	// Default options
	indentWidth      = 2
	defaultDelimiter = comma
)

// Valid delimiters for tabular/inline values (spec §6.1).
var validDelimiters = []string{comma, pipe, tab}

// isValidDelimiter checks if a delimiter is one of the three allowed.
func isValidDelimiter(delimiter string) bool {
	for _, valid := range validDelimiters {
		if delimiter == valid {
			return true
		}
	}
	return false
}
