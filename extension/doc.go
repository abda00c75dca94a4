// Package extension provides the run-time registry for named text
// transforms used by interpreter descriptors (rephrase and preprocess
// hooks). Transform prototypes are Go types registered by name; instances
// are created per lookup and populated from the descriptor's `with:`
// option map.
//
// The registry is normally configured through options on the root repline
// package, therefore most applications do not need to import this package
// directly.
package extension
