// Package ui implements an interactive terminal interface using bubbletea's Elm architecture.
//
// Two views exist:
//  1. [BrowserModel] : page through search results one book at a time,
//     driven by the same pager state machine the Discord gateway uses
//  2. [ListModel] : browse a stored reading list with bubbles/list
//
// Both implement bubbletea's standard Init/Update/View pattern. The browser
// binds ←/→ (and h/l) to the pager's previous/next inputs, o to open the
// current book's preview link in the system browser, and q to quit.
package ui
