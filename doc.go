// Package probeplot summarizes and plots the bubble event logs of an
// optical fiber probe.
//
//
// Event Logs
//
// Each measurement condition is one tab separated text file with a header
// line. The columns Number, Valid, Veloc, Size and Duration are required,
// others are ignored:
//     Number  Valid  Veloc  Size   Duration
//     1       1      0.41   512.3  0.0011
//     2       0      0.00   0      0.0004
// Valid is a 0/1 flag set by the probe software, Size is in µm and
// Duration is the chord duration in seconds. Decimal commas are accepted.
// Files compressed with gzip, bzip2 or xz are recognized by their magic
// bytes.
//
//
// Pipeline
//
// A run processes the conditions one after the other:
//     ReadEvents   read and validate the event log
//     Classify     split the events into masks: valid, valid and larger
//                  than the size threshold, invalid
//     Summarize    counts, validation rate, size moments and quartiles,
//                  mean chord durations in ms
//     WriteReport  print the summary block
//     Distribution size histogram and stacked duration histogram
// The size samples of all successful conditions are collected in a Corpus
// which is rendered as two boxplots, on a log10 and on a linear scale,
// once all conditions are done.
//
// A failing condition is reported and skipped; the other conditions and
// the boxplots are still produced.
//
//
// Output Files
//
// Figures are PNG files named by condition ordinal and title:
//     0_Water-10-L_min.png
//     1_Water_SDS_(20-ppm).png
//     2_boxplot_all_data_log.png
//     3_boxplot_all_data.png
// Existing files are not replaced unless the run is configured to
// overwrite them.
//
package probeplot
