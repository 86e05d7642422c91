// Package catalog provides the client side of the product catalog: a REST
// gateway over the /api/products endpoints, a reducer-style application
// state holding the local product mirror and UI state, and the derived view
// that filters, sorts and paginates the mirror entirely client-side. Network
// effects are isolated behind the Gateway interface; Reduce itself is pure.
// The state machinery is event-driven and single-threaded, matching the
// one-in-flight-request-per-action model of the catalog UI; it is not safe
// for concurrent use.
package catalog
