// Package dicom provides lazy access to the Data Elements of DICOM files.
// Opening a file only walks its element headers: the position, VR and length of every top level
// Data Element are indexed in a LazyObject, and values are skipped. A value is read and decoded
// the first time it is requested through Element, ElementByName or PixelData, and is then cached
// for the lifetime of the object.
//
// The low level API consists of the StreamParser, a HeaderIterator over the element headers of a
// file, the Decoder turning value fields into Go values and the Dictionary resolving attribute
// names. Assemble builds a LazyObject from any HeaderIterator and Parser, which allows sources
// other than plain files to be indexed.
//
// Sequences are decoded as a whole into DataSets when their element is requested. Encapsulated
// pixel data is returned as fragments and is never decompressed.
//
// A LazyObject is not safe for concurrent use.
package dicom
