/*
Package ranch provides a blackbox for running RANCH to generate ensembles
of multi-domain protein models, and for recovering independent chains from
the models RANCH produces.

RANCH models a single chain: a sequence with rigid bodies pinned to parts
of it. To model a protein with several chains anyway, the partner chains of
a multi-chain domain are embedded into the chain being modeled (hidden
between its first two residues and the rest), so that RANCH perceives one
chain. After the run, ExtractEmbedded and ExtractSymmetric undo the trick
and return the embedded and symmetry-replicated chains as independent
chains again.

This package also provides RunAll which can be used to run many RANCH
instances in parallel.
*/
package ranch
