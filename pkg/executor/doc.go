// Package executor prints and runs compiled rsync commands.
//
// Commands run one at a time, each waiting for the previous to finish. The
// first command that cannot be started or that exits non-zero stops the run;
// transfers that already completed are left in place.
package executor
