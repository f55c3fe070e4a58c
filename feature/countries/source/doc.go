// Package source downloads the country dataset from a restcountries v2
// compatible endpoint.
//
// FetchAll makes one bounded request and either returns the whole dataset or a
// classified error. Nothing is partially returned.
package source
