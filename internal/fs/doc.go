// Package fs abstracts the file operations of the local blob store so tests
// can inject I/O failures.
//
// Production code uses fs.Default (a [LocalFS]). Tests wrap it in a
// [FaultyFS]:
//
//	ffs := fs.NewFaultyFS(nil)
//	ffs.AddRule("labels", fs.Fault{FailAfterBytes: 1024})
package fs
