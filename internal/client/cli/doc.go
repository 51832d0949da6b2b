// Package cli provides the interactive storefront command-line client.
//
// It wires configuration, the local catalog cache, the state store, metrics
// and services, then runs a REPL whose commands stand in for the storefront
// pages: home, product listing, product detail, cart and login.
//
// Typical flow: the catalog is loaded in the background as the REPL starts,
// a refresher reloads it periodically, and user commands go through services
// that dispatch actions to the store. A store subscriber keeps the prompt
// status (user and cart size) current.
//
// The REPL is started via App.Run(ctx), which blocks until the user exits.
// See App and runREPL for details.
package cli
