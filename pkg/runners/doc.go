/*
Package runners translates the unified configuration into runner invocations.

Two dialects are supported:

  - mocha: the BDD runner. Platform exclusion uses two flags (--grep and --invert).
  - jest: the snapshot/parallel runner. Platform exclusion is a single --testNamePattern
    regular expression, and most options travel through the environment so that every
    worker sees them.

Each dialect pairs a flag normalizer with a pure builder that turns a Context into an
invocation.Descriptor. Builders never fail; unsupported runners are rejected by the
Registry before any building happens.
*/
package runners
