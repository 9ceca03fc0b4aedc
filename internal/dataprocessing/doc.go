// Package dataprocessing implements the transformation stages of the combiner
// pipeline: parsing tab-delimited .dat files, merging and deduplicating their
// rows with the derived gross salary appended, and computing the aggregate
// salary statistics.
package dataprocessing
