// Package symrs implements symbolic arithmetic expressions.
//
// An Expr is an immutable tree over arbitrary-precision integers, float
// approximations, and symbols. Symbols are interned in a Table, which is safe
// for concurrent use and is owned by whoever needs to create or resolve them;
// there is no global table.
//
// Parse turns text like "2 * x^2 - y / 3" into an Expr, and Expr.String turns
// it back into text with the fewest parentheses needed to parse it again to
// the same tree. "-x^2" is "-(x^2)", "x^y^z" is "x^(y^z)", and "2 * x * 5" is
// a single product of three terms.
package symrs
