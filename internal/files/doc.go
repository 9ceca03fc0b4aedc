// Package files provides input file discovery for the combiner: locating the
// .dat files inside the input directory and creating the output directory.
package files
