// Package router parses free-text bot commands and dispatches them to the
// catalog client and the list store.
//
// # Grammar
//
// Commands are token-positional, which keeps listnames containing the words
// "add", "remove" or "show" unambiguous:
//
//	help
//	search <query>
//	add <query>                (default list)
//	remove <query>             (default list)
//	<listname> add <query>
//	<listname> remove <query>
//	show [listname]
//
// A listname is one bare token of letters, digits, dashes or underscores.
//
// # Error policy
//
// Every failure surfaces to the user as a fixed, friendly one-line reply;
// internal detail goes only to the log. No failure propagates out of
// [Router.Execute], so one bad command can never take down the handler loop.
package router
