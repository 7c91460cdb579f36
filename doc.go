// Package controls provides dropdown and combo-box widgets for terminal UIs.
//
// Users import this single package for the common API: the dropdown control,
// its popup menu, scrolling containers, the group that routes events and
// manages focus, and the event and geometry types they share. The pkg/
// subpackages hold the implementations.
//
// Every widget's rectangle is expressed in its parent's frame. Events and
// canvases are passed down in the parent's frame too; each widget localizes
// by its own location before acting or forwarding, and the first widget to
// claim an event stops its routing.
package controls
