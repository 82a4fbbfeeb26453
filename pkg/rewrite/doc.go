// Package rewrite converts createElement-style component calls into tag
// syntax. Pass one rewrites single-argument literal calls with a regular
// expression; pass two scans line-by-line for property-bag calls, collects
// each call span by parenthesis balancing, and re-emits recognized
// properties as tag attributes. Spans that do not match pass through
// byte-for-byte and are surfaced as diagnostics on the Result, never as
// errors.
package rewrite
