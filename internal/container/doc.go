// Package container reads and writes the on-disk encrypted diary file.
//
// Layout (bit-exact, no magic number, no version byte):
//
//	[ext_len: 1][extension: ext_len][nonce: 12][tag: 16][ciphertext: rest]
//
// The codec only frames bytes. It never encrypts or decrypts, and it does not
// know which diary entry a file belongs to: that association lives in the
// caller's path bookkeeping.
package container
