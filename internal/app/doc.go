// Package app wires configuration, calculators, orchestration and
// presentation into the dangle command. It owns the process lifecycle:
// signal handling, exit codes and the metrics textfile.
package app
