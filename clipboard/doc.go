// Package clipboard reads and writes the Windows clipboard by format.
//
// The clipboard belongs to one OS thread at a time. [Open] locks the calling
// goroutine to its thread and returns a [Session]; every call that needs the
// clipboard open is a method on it, and [Session.Close] releases both the
// clipboard and the thread. A Session must not be shared between goroutines.
//
// Format queries that do not need an open clipboard ([IsFormatAvailable],
// [RegisterFormat], [FormatName], [SequenceNumber]) are package functions.
package clipboard
