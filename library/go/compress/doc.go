// Package compress opens and creates files compressed with an algorithm
// chosen by the file name suffix.
//
// Supported suffixes are .gz, .zst, .br, .lz4, .sz (framed snappy), .ybc
// (YT block codecs framing) and .bz2 (read only). Files with other suffixes are read and written as is.
package compress
