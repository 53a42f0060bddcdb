// Package urls parses URLs into scheme, domain, and path with the parse
// combinators. The grammar is small on purpose: it is a usable parser and
// the module's reference for authoring rules against the engine.
package urls

import (
	"github.com/dhamidi/parc/input"
	"github.com/dhamidi/parc/parse"
)

// rule pins the grammar to text cursors.
type rule[O any] = parse.Rule[*input.Text, O]

// URL holds the pieces of a parsed URL. Parts absent from the input are
// empty strings.
type URL struct {
	Protocol string
	Domain   string
	Path     string
}

func token(text string) rule[string] {
	return parse.Token[*input.Text](text)
}

func ws() rule[byte] {
	return parse.Whitespace[*input.Text]()
}

func eoi() rule[parse.Unit] {
	return parse.EOF[byte, *input.Text]()
}

func until[O any](terminator rule[O]) rule[string] {
	return parse.Until[string](terminator)
}

var (
	// scheme is everything before "://". The scan exhausts the input when
	// no separator exists, so it is settled into a plain Fail; otherwise
	// the Incomplete would leak through the alternation below and starve
	// the relative arm.
	scheme = parse.Trace("urls.scheme", parse.Settle(parse.Seq2(
		until(token("://")),
		parse.Must(token("://")),
		func(name string, _ string) string { return name },
	), `no "://" in input`))

	// domain runs to the first "/", whitespace, or end of input. Domains
	// do not start with a slash.
	domain = parse.Trace("urls.domain", parse.Seq2(
		parse.Peek(parse.Not(token("/"))),
		until(parse.Either(
			parse.Discard(token("/")),
			parse.Discard(ws()),
			eoi(),
		)),
		func(_ parse.Unit, name string) string { return name },
	))

	path = parse.Trace("urls.path", until(parse.Either(parse.Discard(ws()), eoi())))

	// A scheme with an empty or malformed domain is not a URL anything
	// else could parse, so the domain is required once the scheme matched.
	full = parse.Trace("urls.full", parse.Seq3(
		scheme,
		parse.Must(domain),
		parse.Optional(path),
		func(proto, name string, p parse.Opt[string]) URL {
			return URL{Protocol: proto, Domain: name, Path: p.Or("")}
		},
	))

	relative = parse.Trace("urls.relative", parse.Seq2(
		parse.Not(parse.Either(token("//"), scheme)),
		path,
		func(_ parse.Unit, p string) URL { return URL{Path: p} },
	))

	url = parse.Trace("urls.url", parse.Either(full, relative))
)

// Rule returns the URL grammar as a rule, for embedding in larger
// grammars. The rule leaves input after the URL unconsumed.
func Rule() parse.Rule[*input.Text, URL] {
	return url
}

// Parse runs the URL grammar over s. Parts absent from the input are empty
// strings in the result; trailing input after the URL is not an error. The
// returned error is a *parse.Error carrying position and cause chain.
func Parse(s string) (URL, error) {
	res := url(input.NewText(s))
	switch res.Kind() {
	case parse.KindComplete:
		return res.Value(), nil
	case parse.KindIncomplete:
		return URL{}, parse.NewError("input ended before a url could be parsed", res.Rest())
	default:
		return URL{}, res.Err()
	}
}
