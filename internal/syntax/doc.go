// Package syntax is the SCs front end: it turns source text into a Forest of
// tagged nodes for the compiler.
//
// The node set is closed. Node is a sealed interface; every concrete kind is
// declared in node.go and consumers switch over it exhaustively.
//
// Grammar (statements end with ";;"):
//
//	statement  := element '|' element '|' element ';;'    SimpleSentence
//	            | element '=' element ';;'                Synonym
//	            | element internal ';;'                   IdentifierWithInternalList
//	            | element connector objectlist ';;'       Sentence
//	objectlist := { element ':' } object { ',' object }
//	object     := element [ internal ]
//	internal   := '(*' { connector objectlist ';;' } '*)'
//	element    := '@'name | '/!* keyword: name */' | '"' text '"'
//	            | '{' members '}' | '[' members ']'
//	            | '(' element connector element ')' | name
//
// A quoted literal whose text starts with a URL scheme ("http://...",
// "file://...") is a URL; any other quoted literal is Content.
package syntax
