// SPDX-License-Identifier: MIT

// Command seqalign aligns two sequences and prints "score;alignedA;alignedB".
//
//	seqalign [flags] <first-sequence> <second-sequence>
//
// Example:
//
//	$ seqalign GCATGCU GATTACA
//	0;GCA-TGCU;G-ATTACA
//
//	$ seqalign -m GG --gap-opening=-5 -f pretty CGGTCATAC CGGAT
package main

import "os"

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}
