/*
Package observability counts what the chatbot does.

It exposes Prometheus counters for answered turns and for the pattern that
produced each response (labelled "default" for the fallback). Counters are
registered on a caller supplied registry; nothing is served over the
network. The command line logs a snapshot on exit when --debug is set.
*/
package observability
