/*
Package observability provides Prometheus metrics for test orchestration.

Metrics live on a private registry so several Testers can coexist in one process.
The CLI dumps them in the node-exporter textfile format after a run.
*/
package observability
